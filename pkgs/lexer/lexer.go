package lexer

import "unicode"

// Mode selects which of the four interleaved sub-languages the lexer
// is currently tokenizing. The surrounding parser (out of scope here)
// drives mode changes between calls to Next; the lexer itself never
// switches mode on its own, except that entering a raw block always
// leaves the cursor positioned for a caller-issued SetMode(ModeRaw).
type Mode int

const (
	ModeMarkup Mode = iota // Prose, headings, lists, links, labels.
	ModeMath               // Math atoms, operators, identifiers.
	ModeCode               // Keywords, literals, operators.
	ModeRaw                // Contents of a raw block, replayed from the pending stack.
)

// SyntaxError is the single-slot side channel a lexer uses to report a
// malformed token.
type SyntaxError struct {
	Message string
}

func newSyntaxError(message string) *SyntaxError {
	return &SyntaxError{Message: message}
}

// rawSegment is one pending sub-token queued by the raw segmenter,
// waiting to be replayed once the caller switches to ModeRaw. end is
// the scanner position the segment's span ends at; its start is
// implicitly the end of the previously replayed segment (or the
// opening delimiter's end, for the first one).
type rawSegment struct {
	kind Kind
	end  int
}

// Lexer tokenizes a borrowed input string under external mode
// control. It performs no I/O and holds no shared-mutable state; it
// is built to be driven by a single goroutine for one pass over the
// text. The input must not change while the Lexer is alive.
type Lexer struct {
	s       Scanner
	mode    Mode
	newline bool
	raw     []rawSegment // pending raw sub-tokens, popped in source order
	err     *SyntaxError
}

// New creates a lexer over text starting in the given mode. It does
// no work beyond storing the borrowed string.
func New(text string, mode Mode) *Lexer {
	return &Lexer{s: NewScanner(text), mode: mode}
}

// Mode returns the current lexing mode.
func (l *Lexer) Mode() Mode {
	return l.mode
}

// SetMode changes the lexing mode. It does not clear the pending raw
// stack — callers are expected to enter ModeRaw only right after
// receiving a RawDelim token from Markup or Code, and to leave it once
// the stack has drained back to End.
func (l *Lexer) SetMode(mode Mode) {
	l.mode = mode
}

// Cursor returns the offset where the most recently emitted token
// ends, which is also where the next token will start.
func (l *Lexer) Cursor() int {
	return l.s.Cursor()
}

// Jump repositions the cursor to an absolute offset. It clears neither
// Newline nor the pending error — the caller owns correctness across a
// jump and is expected to pair it with a SetMode call when retokenizing
// under a different mode.
func (l *Lexer) Jump(offset int) {
	l.s.Jump(offset)
}

// Newline reports whether the most recently returned token's span
// contained at least one newline.
func (l *Lexer) Newline() bool {
	return l.newline
}

// TakeError returns and clears the error message for the last Error
// token, if any. It returns nil once called for a given token, or if
// the last token was not Error.
func (l *Lexer) TakeError() *SyntaxError {
	err := l.err
	l.err = nil
	return err
}

// error records a syntax error and returns the Error kind, the
// pattern every malformed-token rule in this package returns through.
func (l *Lexer) error(message string) Kind {
	l.err = newSyntaxError(message)
	return Error
}

// Next advances the lexer by exactly one token and returns its kind.
// Progress is guaranteed: the cursor strictly advances unless the
// returned kind is End, which is a fixpoint — once reached, Next keeps
// returning End without moving the cursor.
func (l *Lexer) Next() Kind {
	if l.mode == ModeRaw {
		return l.popRaw()
	}

	l.newline = false
	l.err = nil
	start := l.s.Cursor()
	if l.s.Done() {
		return End
	}
	c := l.s.Eat()

	switch {
	case IsSpace(c, l.mode):
		return l.whitespace(start, c)
	case c == '/' && l.s.EatIf('/'):
		return l.lineComment()
	case c == '/' && l.s.EatIf('*'):
		return l.blockComment()
	case c == '*' && l.s.EatIf('/'):
		return l.error("unexpected end of block comment")
	}

	switch l.mode {
	case ModeMarkup:
		return l.markup(start, c)
	case ModeMath:
		return l.math(start, c)
	case ModeCode:
		return l.code(start, c)
	default:
		return End
	}
}

// popRaw pops one pending raw sub-token and jumps the scanner to its
// end, or returns End without moving the cursor once the stack has
// drained. This is the only way Next behaves in ModeRaw — the segmenter
// front-loads all the work at the opening backtick (see raw.go).
func (l *Lexer) popRaw() Kind {
	if len(l.raw) == 0 {
		return End
	}
	seg := l.raw[len(l.raw)-1]
	l.raw = l.raw[:len(l.raw)-1]
	l.s.Jump(seg.end)
	return seg.kind
}

// pushRaw records the end of a raw sub-token of the given kind at the
// scanner's current cursor. The raw segmenter pushes these in forward
// (left-to-right) order and reverses the slice once at the end, so
// popRaw drains them back out in source order.
func (l *Lexer) pushRaw(kind Kind) {
	l.raw = append(l.raw, rawSegment{kind: kind, end: l.s.Cursor()})
}

// whitespace consumes a maximal run of mode-space characters starting
// with c (already eaten) and classifies it as Space or, in Markup with
// two or more newlines, Parbreak.
func (l *Lexer) whitespace(start int, c rune) Kind {
	more := l.s.EatWhile(func(r rune) bool { return IsSpace(r, l.mode) })

	var newlines int
	if c == ' ' && more == "" {
		newlines = 0
	} else {
		newlines = countNewlines(l.s.From(start))
	}

	l.newline = newlines > 0
	if l.mode == ModeMarkup && newlines >= 2 {
		return Parbreak
	}
	return Space
}

func (l *Lexer) lineComment() Kind {
	l.s.EatUntil(IsNewline)
	return LineComment
}

// blockComment consumes a nested /* ... */ comment. An unterminated
// block comment is not an error: end of input simply closes it.
func (l *Lexer) blockComment() Kind {
	depth := 1
	state := rune('_')

	for {
		c := l.s.Eat()
		if c == 0 && l.s.Done() {
			break
		}
		switch {
		case state == '*' && c == '/':
			depth--
			if depth == 0 {
				return BlockComment
			}
			state = '_'
		case state == '/' && c == '*':
			depth++
			state = '_'
		default:
			state = c
		}
	}

	return BlockComment
}

// spaceOrEnd reports whether the cursor sits at end of input or at a
// whitespace character, used by the marker/heading rules to decide
// whether a leading glyph is actually acting as a marker. This uses
// Unicode's general whitespace notion regardless of mode, not the
// narrower Markup is_space used for trivia runs.
func (l *Lexer) spaceOrEnd() bool {
	return l.s.Done() || l.s.AtRune(unicode.IsSpace)
}
