package lexer

import "testing"

func TestIsNewline(t *testing.T) {
	for _, r := range []rune{'\n', '\v', '\f', '\r', '\u0085', '\u2028', '\u2029'} {
		if !IsNewline(r) {
			t.Errorf("IsNewline(%q) = false, want true", r)
		}
	}
	for _, r := range []rune{'a', ' ', '\t', 0} {
		if IsNewline(r) {
			t.Errorf("IsNewline(%q) = true, want false", r)
		}
	}
}

func TestIsSpaceMarkupIsNarrower(t *testing.T) {
	// Markup only treats ' ', '\t' and newlines as whitespace; a
	// non-breaking space or other Unicode space separator is text.
	if !IsSpace(' ', ModeMarkup) || !IsSpace('\t', ModeMarkup) || !IsSpace('\n', ModeMarkup) {
		t.Fatalf("plain space/tab/newline must count as Markup whitespace")
	}
	if IsSpace('\u00a0', ModeMarkup) {
		t.Errorf("non-breaking space should not count as Markup whitespace")
	}
	// Code and Math use Go's general Unicode whitespace notion.
	if !IsSpace('\u00a0', ModeCode) {
		t.Errorf("non-breaking space should count as whitespace outside Markup")
	}
}

func TestIsIDStartContinue(t *testing.T) {
	if !IsIDStart('a') || !IsIDStart('_') || !IsIDStart('日') {
		t.Errorf("letters and underscore should start an identifier")
	}
	if IsIDStart('1') {
		t.Errorf("a digit must not start an identifier")
	}
	if !IsIDContinue('1') || !IsIDContinue('-') || !IsIDContinue('_') {
		t.Errorf("digits, hyphen and underscore must continue an identifier")
	}
	if IsIDContinue(' ') {
		t.Errorf("space must not continue an identifier")
	}
}

func TestMathIDExcludesUnderscore(t *testing.T) {
	if IsMathIDContinue('_') {
		t.Errorf("underscore is its own token in Math, must not continue a math identifier")
	}
	if !IsMathIDContinue('a') {
		t.Errorf("letters must continue a math identifier")
	}
	if IsMathIDStart('_') {
		t.Errorf("underscore must not start a math identifier either")
	}
}

func TestIsIdent(t *testing.T) {
	cases := map[string]bool{
		"":        false,
		"foo":     true,
		"_foo":    true,
		"foo-bar": true,
		"1foo":    false,
		"foo bar": false,
	}
	for s, want := range cases {
		if got := IsIdent(s); got != want {
			t.Errorf("IsIdent(%q) = %v, want %v", s, got, want)
		}
	}
}

func TestIsWordScriptExcludesCJK(t *testing.T) {
	if !isWordScript('a') {
		t.Errorf("ASCII letters should be word-script")
	}
	if isWordScript('日') {
		t.Errorf("Han characters should not be word-script (no inter-word spaces)")
	}
	if isWordScript(0) {
		t.Errorf("the zero rune (used as an out-of-bounds sentinel) must not be word-script")
	}
}

func TestFirstGraphemeLen(t *testing.T) {
	if n := firstGraphemeLen(""); n != 0 {
		t.Errorf("firstGraphemeLen(\"\") = %d, want 0", n)
	}
	if n := firstGraphemeLen("abc"); n != 1 {
		t.Errorf("firstGraphemeLen(\"abc\") = %d, want 1", n)
	}
	// "e" + combining acute accent (U+0301) is a single extended
	// grapheme cluster, 1 + 2 = 3 bytes.
	combining := "éxyz"
	if n := firstGraphemeLen(combining); n != 3 {
		t.Errorf("firstGraphemeLen(%q) = %d, want 3", combining, n)
	}
}

func TestLinkPrefixBasic(t *testing.T) {
	link, balanced := LinkPrefix("example.com/path more text")
	if link != "example.com/path" || !balanced {
		t.Errorf("LinkPrefix = (%q, %v), want (%q, true)", link, balanced, "example.com/path")
	}
}

func TestLinkPrefixTrimsTrailingPunctuation(t *testing.T) {
	link, balanced := LinkPrefix("example.com.")
	if link != "example.com" || !balanced {
		t.Errorf("LinkPrefix = (%q, %v), want (%q, true)", link, balanced, "example.com")
	}
}

func TestLinkPrefixBalancedBrackets(t *testing.T) {
	link, balanced := LinkPrefix("example.com/a(b)c rest")
	if link != "example.com/a(b)c" || !balanced {
		t.Errorf("LinkPrefix = (%q, %v), want (%q, true)", link, balanced, "example.com/a(b)c")
	}
}

func TestLinkPrefixMismatchedBracketPopsStack(t *testing.T) {
	// A ']' pops the stack unconditionally even when the top is '(',
	// not '['. The stack ends up empty, so this reports balanced
	// despite the visible mismatch.
	link, balanced := LinkPrefix("a(b]c")
	if link != "a(b" || !balanced {
		t.Errorf("LinkPrefix(%q) = (%q, %v), want (%q, true)", "a(b]c", link, balanced, "a(b")
	}
}

func TestLinkPrefixUnmatchedCloseOnEmptyStack(t *testing.T) {
	link, balanced := LinkPrefix("a]b")
	if link != "a" || !balanced {
		t.Errorf("LinkPrefix(%q) = (%q, %v), want (%q, true)", "a]b", link, balanced, "a")
	}
}

func TestSplitNewlines(t *testing.T) {
	cases := map[string][]string{
		"":         {""},
		"a":        {"a"},
		"a\nb":     {"a", "b"},
		"a\r\nb":   {"a", "b"},
		"a\nb\n":   {"a", "b", ""},
		"\n\n":     {"", "", ""},
	}
	for in, want := range cases {
		got := SplitNewlines(in)
		if len(got) != len(want) {
			t.Errorf("SplitNewlines(%q) = %v, want %v", in, got, want)
			continue
		}
		for i := range got {
			if got[i] != want[i] {
				t.Errorf("SplitNewlines(%q) = %v, want %v", in, got, want)
				break
			}
		}
	}
}

func TestCountNewlines(t *testing.T) {
	cases := map[string]int{
		"":         0,
		"abc":      0,
		"a\nb":     1,
		"a\r\nb":   1,
		"a\n\nb":   2,
		"a\rb\nc":  2,
	}
	for in, want := range cases {
		if got := countNewlines(in); got != want {
			t.Errorf("countNewlines(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestIsValidInLabelLiteral(t *testing.T) {
	for _, r := range []rune{'a', '_', '-', '.', ':'} {
		if !IsValidInLabelLiteral(r) {
			t.Errorf("IsValidInLabelLiteral(%q) = false, want true", r)
		}
	}
	if IsValidInLabelLiteral(' ') {
		t.Errorf("a space must not be valid inside a label literal")
	}
}
