package lexer

import "unicode"

// math dispatches the first character of a Math-mode token, after the
// shared trivia/comment checks in Next have already passed. The
// shorthand cases are ordered longest-match-first per prefix
// character; the order is load-bearing.
func (l *Lexer) math(start int, c rune) Kind {
	switch {
	case c == '\\':
		return l.backslash()
	case c == '"':
		return l.stringLiteral()

	case c == '-' && l.s.EatIfStr(">>"):
		return Shorthand
	case c == '-' && l.s.EatIf('>'):
		return Shorthand
	case c == '-' && l.s.EatIfStr("->"):
		return Shorthand
	case c == ':' && l.s.EatIf('='):
		return Shorthand
	case c == ':' && l.s.EatIfStr(":="):
		return Shorthand
	case c == '!' && l.s.EatIf('='):
		return Shorthand
	case c == '.' && l.s.EatIfStr(".."):
		return Shorthand
	case c == '[' && l.s.EatIf('|'):
		return Shorthand
	case c == '<' && l.s.EatIfStr("==>"):
		return Shorthand
	case c == '<' && l.s.EatIfStr("-->"):
		return Shorthand
	case c == '<' && l.s.EatIfStr("--"):
		return Shorthand
	case c == '<' && l.s.EatIfStr("-<"):
		return Shorthand
	case c == '<' && l.s.EatIfStr("->"):
		return Shorthand
	case c == '<' && l.s.EatIfStr("<-"):
		return Shorthand
	case c == '<' && l.s.EatIfStr("<<"):
		return Shorthand
	case c == '<' && l.s.EatIfStr("=>"):
		return Shorthand
	case c == '<' && l.s.EatIfStr("=="):
		return Shorthand
	case c == '<' && l.s.EatIfStr("~~"):
		return Shorthand
	case c == '<' && l.s.EatIf('='):
		return Shorthand
	case c == '<' && l.s.EatIf('<'):
		return Shorthand
	case c == '<' && l.s.EatIf('-'):
		return Shorthand
	case c == '<' && l.s.EatIf('~'):
		return Shorthand
	case c == '>' && l.s.EatIfStr("->"):
		return Shorthand
	case c == '>' && l.s.EatIfStr(">>"):
		return Shorthand
	case c == '=' && l.s.EatIfStr("=>"):
		return Shorthand
	case c == '=' && l.s.EatIf('>'):
		return Shorthand
	case c == '=' && l.s.EatIf(':'):
		return Shorthand
	case c == '>' && l.s.EatIf('='):
		return Shorthand
	case c == '>' && l.s.EatIf('>'):
		return Shorthand
	case c == '|' && l.s.EatIfStr("->"):
		return Shorthand
	case c == '|' && l.s.EatIfStr("=>"):
		return Shorthand
	case c == '|' && l.s.EatIf(']'):
		return Shorthand
	case c == '|' && l.s.EatIf('|'):
		return Shorthand
	case c == '~' && l.s.EatIfStr("~>"):
		return Shorthand
	case c == '~' && l.s.EatIf('>'):
		return Shorthand
	case c == '*' || c == '-':
		return Shorthand

	case c == '#':
		return Hash
	case c == '_':
		return Underscore
	case c == '$':
		return Dollar
	case c == '/':
		return Slash
	case c == '^':
		return Hat
	case c == '\'':
		return Prime
	case c == '&':
		return MathAlignPoint
	case c == '√' || c == '∛' || c == '∜':
		return Root

	case IsMathIDStart(c) && l.s.AtRune(IsMathIDContinue):
		l.s.EatWhile(IsMathIDContinue)
		return MathIdent

	default:
		return l.mathText(start, c)
	}
}

// mathText keeps a run of digits (plus one optional fractional part)
// or exactly one grapheme cluster together as a single atom, so that
// e.g. a combining accent stays glued to the base character it
// modifies.
func (l *Lexer) mathText(start int, c rune) Kind {
	if unicode.IsNumber(c) {
		l.s.EatWhile(unicode.IsNumber)
		probe := l.s.Clone()
		if probe.EatIf('.') && probe.EatWhile(unicode.IsNumber) != "" {
			l.s = probe
		}
	} else {
		rest := l.s.Get(start, l.s.Len())
		n := firstGraphemeLen(rest)
		l.s.Jump(start + n)
	}
	return Text
}
