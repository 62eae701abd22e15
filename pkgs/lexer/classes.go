package lexer

import (
	"unicode"

	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/rangetable"
)

// IsNewline reports whether r is one of the seven code points this
// language treats as a line break: LF, VT, FF, CR, NEL, LS, PS.
func IsNewline(r rune) bool {
	switch r {
	case '\n', '\v', '\f', '\r', '\u0085', '\u2028', '\u2029':
		return true
	default:
		return false
	}
}

// IsSpace reports whether r counts as whitespace in the given mode.
// Markup only treats plain spaces, tabs and newlines as whitespace —
// everything else (including other Unicode space separators) is
// textual content there. Every other mode uses Go's general notion of
// whitespace.
func IsSpace(r rune, mode Mode) bool {
	if mode == ModeMarkup {
		return r == ' ' || r == '\t' || IsNewline(r)
	}
	return unicode.IsSpace(r)
}

// IsIDStart reports whether r can start an identifier: Unicode
// XID_Start plus '_'.
func IsIDStart(r rune) bool {
	return isXIDStart(r) || r == '_'
}

// IsIDContinue reports whether r can continue an identifier: Unicode
// XID_Continue plus '_' and '-'.
func IsIDContinue(r rune) bool {
	return isXIDContinue(r) || r == '_' || r == '-'
}

// IsMathIDStart reports whether r can start a math identifier: plain
// XID_Start, without the '_' extension identifiers get elsewhere.
func IsMathIDStart(r rune) bool {
	return isXIDStart(r)
}

// IsMathIDContinue reports whether r can continue a math identifier:
// XID_Continue, excluding '_' (which is its own token in math).
func IsMathIDContinue(r rune) bool {
	return isXIDContinue(r) && r != '_'
}

// isXIDStart and isXIDContinue approximate the Unicode XID_Start and
// XID_Continue derived properties (UAX #31) from the standard
// library's general category tables — the same approach go/scanner
// takes for identifier runes, since no Go package exposes the derived
// identifier-class tables directly.
func isXIDStart(r rune) bool {
	return unicode.IsOneOf(xidStartCategories, r)
}

func isXIDContinue(r rune) bool {
	return unicode.IsOneOf(xidContinueCategories, r)
}

var xidStartCategories = []*unicode.RangeTable{
	unicode.L,  // letters
	unicode.Nl, // letter numbers (Roman numerals etc.)
}

var xidContinueCategories = []*unicode.RangeTable{
	unicode.L,
	unicode.Nl,
	unicode.Nd, // decimal digits
	unicode.Mn, // nonspacing marks
	unicode.Mc, // spacing combining marks
	unicode.Pc, // connector punctuation (mostly underscores in other scripts)
}

// cjkScripts merges the four scripts that are written without
// word-separating spaces; isWordScript excludes them so that emphasis
// markers bordered by CJK text are recognized as markers rather than
// suppressed by the "in a word" rule meant for space-joined scripts.
var cjkScripts = rangetable.Merge(unicode.Han, unicode.Hiragana, unicode.Katakana, unicode.Hangul)

// isWordScript reports whether r is alphanumeric in a script where
// adjacent letters join into words separated by spaces, as opposed to
// scripts like Han where every character already stands alone.
func isWordScript(r rune) bool {
	if r == 0 {
		return false
	}
	if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
		return false
	}
	return !unicode.Is(cjkScripts, r)
}

// IsIdent reports whether s is a valid identifier on its own: non-empty,
// starting with an identifier-start character, continuing with
// identifier-continue characters.
func IsIdent(s string) bool {
	first := true
	for _, r := range s {
		if first {
			if !IsIDStart(r) {
				return false
			}
			first = false
			continue
		}
		if !IsIDContinue(r) {
			return false
		}
	}
	return !first
}

// firstGraphemeLen returns the byte length of the first extended
// grapheme cluster in s, per Unicode UAX #29. Used by the math
// dispatcher to keep combining-mark sequences together as one atom.
func firstGraphemeLen(s string) int {
	if s == "" {
		return 0
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(s, -1)
	return len(cluster)
}

// linkCharSet reports whether r belongs to the character set an
// automatic link is built from: ASCII alphanumerics, a fixed set of
// ASCII punctuation, and (handled separately, since they must nest) the
// bracket pair characters.
func linkCharSet(r rune) bool {
	switch {
	case r >= '0' && r <= '9', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return true
	case r == '!' || r == '#' || r == '$' || r == '%' || r == '&' || r == '*' || r == '+' ||
		r == ',' || r == '-' || r == '.' || r == '/' || r == ':' || r == ';' || r == '=' ||
		r == '?' || r == '@' || r == '_' || r == '~' || r == '\'':
		return true
	default:
		return false
	}
}

// linkTrailingPunct is trimmed off the end of an automatic link since
// it is more likely to be sentence punctuation than part of the URL.
func linkTrailingPunct(r rune) bool {
	switch r {
	case '!', ',', '.', ':', ';', '?', '\'':
		return true
	default:
		return false
	}
}

// LinkPrefix extracts the longest prefix of text that forms a valid
// automatic link, trimming likely-to-be-prose trailing punctuation. It
// also reports whether the brackets and parentheses within the link
// were balanced.
//
// A closing bracket pops the stack unconditionally, even when it
// doesn't match the top — mismatched brackets still empty the stack
// out from under a later one, so e.g. "a(b]" reports balanced (the
// stray ']' pops the unmatched '(' away) even though a reader would
// call that mismatched.
func LinkPrefix(text string) (link string, balanced bool) {
	s := NewScanner(text)
	var brackets []byte

	pop := func(open byte) bool {
		if len(brackets) == 0 {
			return false
		}
		top := brackets[len(brackets)-1]
		brackets = brackets[:len(brackets)-1]
		return top == open
	}

	for !s.Done() {
		c := s.Peek()
		switch {
		case linkCharSet(c):
			s.Eat()
		case c == '[':
			brackets = append(brackets, '[')
			s.Eat()
		case c == '(':
			brackets = append(brackets, '(')
			s.Eat()
		case c == ']':
			if !pop('[') {
				return trimLinkTail(s), len(brackets) == 0
			}
			s.Eat()
		case c == ')':
			if !pop('(') {
				return trimLinkTail(s), len(brackets) == 0
			}
			s.Eat()
		default:
			return trimLinkTail(s), len(brackets) == 0
		}
	}

	return trimLinkTail(s), len(brackets) == 0
}

func trimLinkTail(s Scanner) string {
	for linkTrailingPunct(s.Scout(-1)) {
		s.Uneat()
	}
	return s.Before()
}

// IsValidInLabelLiteral reports whether r may appear inside a label or
// reference marker body (identifier-continue plus the path separators
// '.' and ':').
func IsValidInLabelLiteral(r rune) bool {
	return IsIDContinue(r) || r == ':' || r == '.'
}

// SplitNewlines splits text at newline boundaries (recognizing CRLF as
// a single delimiter) without keeping the delimiters. It always
// returns at least one element, even for the empty string.
func SplitNewlines(text string) []string {
	var lines []string
	s := NewScanner(text)
	start := 0
	end := 0

	for {
		c := s.Eat()
		if c == 0 && s.Done() {
			break
		}
		if IsNewline(c) {
			if c == '\r' {
				s.EatIf('\n')
			}
			lines = append(lines, text[start:end])
			start = s.Cursor()
		}
		end = s.Cursor()
	}

	lines = append(lines, text[start:])
	return lines
}

// countNewlines counts the newlines in text, treating CRLF as one.
func countNewlines(text string) int {
	count := 0
	s := NewScanner(text)
	for {
		c := s.Eat()
		if c == 0 && s.Done() {
			break
		}
		if IsNewline(c) {
			if c == '\r' {
				s.EatIf('\n')
			}
			count++
		}
	}
	return count
}
