package lexer

import "unicode/utf8"

// lexRaw is entered on a backtick in Markup or Code. It front-loads
// the entire block into the pending stack so that none of it is ever
// retokenized: everything between the opening and closing delimiter is
// computed once, here, and replayed one pop at a time once the caller
// switches to ModeRaw.
func (l *Lexer) lexRaw() Kind {
	start := l.s.Cursor() - 1
	l.raw = l.raw[:0]

	backticks := 1
	for l.s.EatIf('`') {
		backticks++
	}

	// `` on its own is an empty raw span: a single trailing RawDelim
	// sub-token, no body.
	if backticks == 2 {
		l.pushRaw(RawDelim)
		l.s.Jump(start + 1)
		return RawDelim
	}

	found := 0
	for found < backticks {
		if l.s.Done() {
			break
		}
		if l.s.Eat() == '`' {
			found++
		} else {
			found = 0
		}
	}

	if found != backticks {
		return l.error("unclosed raw text")
	}

	end := l.s.Cursor()
	if backticks >= 3 {
		l.blockyRaw(start, end, backticks)
	} else {
		l.inlineRaw(start, end, backticks)
	}

	l.pushRaw(RawDelim)
	reverseRawStack(l.raw)

	l.s.Jump(start + backticks)
	return RawDelim
}

func reverseRawStack(raw []rawSegment) {
	for i, j := 0, len(raw)-1; i < j; i, j = i+1, j-1 {
		raw[i], raw[j] = raw[j], raw[i]
	}
}

// blockyRaw handles three-or-more-backtick raw blocks: an optional
// language tag, then a body dedented uniformly across its lines.
func (l *Lexer) blockyRaw(start, end, backticks int) {
	l.s.Jump(start + backticks)
	if l.s.AtRune(IsIDStart) {
		l.s.Eat()
		l.s.EatWhile(IsIDContinue)
		l.pushRaw(RawLang)
	}

	l.s.EatIf(' ')
	inner := l.s.To(end - backticks)
	if endsWithBacktick(trimTrailingWhitespace(inner)) {
		inner = trimOneTrailingSpace(inner)
	}

	lines := SplitNewlines(inner)
	dedent := blockyDedent(lines)

	startsWhitespace := len(lines) > 0 && isAllWhitespace(lines[0])
	endsWhitespace := len(lines) > 0 && isAllWhitespace(lines[len(lines)-1])

	skipped := false
	if startsWhitespace {
		l.s.Advance(len(lines[0]))
		lines = lines[1:]
		skipped = true
	}
	if endsWhitespace && len(lines) > 0 {
		lines = lines[:len(lines)-1]
	}

	for i, line := range lines {
		d := dedent
		if i == 0 && !skipped {
			d = 0
		}
		offset := runePrefixByteLen(line, d)
		l.s.EatNewline()
		l.s.Advance(offset)
		l.pushRaw(RawTrimmed)
		l.s.Advance(len(line) - offset)
		l.pushRaw(Text)
	}

	if l.s.Cursor() < end-backticks {
		l.s.Jump(end - backticks)
		l.pushRaw(RawTrimmed)
	}
	l.s.Jump(end)
}

// inlineRaw handles single-backtick raw spans: no dedent, but a
// newline inside one still splits it into alternating Text/RawTrimmed
// sub-tokens so a parser can lay each line out separately.
func (l *Lexer) inlineRaw(start, end, backticks int) {
	l.s.Jump(start + backticks)

	for l.s.Cursor() < end-backticks {
		if l.s.AtRune(IsNewline) {
			l.pushRaw(Text)
			l.s.EatNewline()
			l.pushRaw(RawTrimmed)
			continue
		}
		l.s.Eat()
	}
	l.pushRaw(Text)

	l.s.Jump(end)
}

// blockyDedent computes the minimum leading-whitespace width shared by
// every non-first non-blank line, plus the last line unconditionally
// (since the closing delimiter line always participates even if it is
// the only one, or blank).
func blockyDedent(lines []string) int {
	min := -1
	consider := func(line string) {
		n := leadingWhitespaceCount(line)
		if min == -1 || n < min {
			min = n
		}
	}
	for i, line := range lines {
		if i == 0 {
			continue
		}
		if isAllWhitespace(line) {
			continue
		}
		consider(line)
	}
	if len(lines) > 0 {
		consider(lines[len(lines)-1])
	}
	if min == -1 {
		return 0
	}
	return min
}

func isAllWhitespace(line string) bool {
	for _, r := range line {
		if !IsSpace(r, ModeCode) {
			return false
		}
	}
	return true
}

func leadingWhitespaceCount(line string) int {
	count := 0
	for _, r := range line {
		if !IsSpace(r, ModeCode) {
			break
		}
		count++
	}
	return count
}

// runePrefixByteLen returns the byte length of the first n characters
// of s (or all of s, if it has fewer than n).
func runePrefixByteLen(s string, n int) int {
	i := 0
	for n > 0 && i < len(s) {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		n--
	}
	return i
}

// trimTrailingWhitespace strips trailing Unicode whitespace, for the
// backtick-before-space check in blockyRaw.
func trimTrailingWhitespace(s string) string {
	for len(s) > 0 {
		r, size := utf8.DecodeLastRuneInString(s)
		if !IsSpace(r, ModeCode) {
			break
		}
		s = s[:len(s)-size]
	}
	return s
}

func endsWithBacktick(s string) bool {
	return len(s) > 0 && s[len(s)-1] == '`'
}

func trimOneTrailingSpace(s string) string {
	if len(s) > 0 && s[len(s)-1] == ' ' {
		return s[:len(s)-1]
	}
	return s
}
