package lexer

import "unicode/utf8"

// Scanner is a byte-indexed cursor over a borrowed UTF-8 string. It is
// the lexer's only primitive for moving through source text; every
// mode dispatcher is built entirely out of Scanner calls.
//
// A Scanner is a small value type (a string header plus an int) and
// is cheap to copy — callers that need to look ahead speculatively
// without committing can just copy it (see Clone) and discard the
// copy if the speculation doesn't pan out.
type Scanner struct {
	text string
	pos  int // byte offset, always on a rune boundary
}

// NewScanner creates a scanner positioned at the start of text.
func NewScanner(text string) Scanner {
	return Scanner{text: text}
}

// Clone returns an independent copy positioned at the same cursor.
func (s Scanner) Clone() Scanner {
	return s
}

// Cursor returns the current byte offset.
func (s Scanner) Cursor() int {
	return s.pos
}

// Len returns the total byte length of the underlying text.
func (s Scanner) Len() int {
	return len(s.text)
}

// Done reports whether the cursor has reached the end of the text.
func (s Scanner) Done() bool {
	return s.pos >= len(s.text)
}

// Peek returns the character at the cursor without consuming it, or 0
// at end of input.
func (s Scanner) Peek() rune {
	if s.Done() {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s.text[s.pos:])
	return r
}

// Scout looks delta characters ahead (positive) or behind (negative)
// of the cursor without mutating the scanner. Scout(0) is equivalent
// to Peek. Returns 0 if the offset runs off either end of the text.
func (s Scanner) Scout(delta int) rune {
	if delta >= 0 {
		rest := s.text[s.pos:]
		var r rune
		for {
			if len(rest) == 0 {
				return 0
			}
			var size int
			r, size = utf8.DecodeRuneInString(rest)
			if delta == 0 {
				return r
			}
			rest = rest[size:]
			delta--
		}
	}

	before := s.text[:s.pos]
	var r rune
	for {
		if len(before) == 0 {
			return 0
		}
		var size int
		r, size = utf8.DecodeLastRuneInString(before)
		delta++
		before = before[:len(before)-size]
		if delta == 0 {
			return r
		}
	}
}

// At reports whether the text starting at the cursor has prefix s.
func (s Scanner) At(prefix string) bool {
	rest := s.text[s.pos:]
	if len(prefix) > len(rest) {
		return false
	}
	return rest[:len(prefix)] == prefix
}

// AtRune reports whether the character at the cursor satisfies pred.
// It is false at end of input.
func (s Scanner) AtRune(pred func(rune) bool) bool {
	if s.Done() {
		return false
	}
	return pred(s.Peek())
}

// AtAny reports whether the character at the cursor is one of runes.
func (s Scanner) AtAny(runes ...rune) bool {
	if s.Done() {
		return false
	}
	c := s.Peek()
	for _, r := range runes {
		if c == r {
			return true
		}
	}
	return false
}

// Eat consumes and returns the character at the cursor, or 0 at end
// of input (in which case the cursor does not move).
func (s *Scanner) Eat() rune {
	if s.Done() {
		return 0
	}
	r, size := utf8.DecodeRuneInString(s.text[s.pos:])
	s.pos += size
	return r
}

// EatIf consumes the character at the cursor if it equals r, reporting
// whether it did.
func (s *Scanner) EatIf(r rune) bool {
	if s.Peek() == r {
		s.Eat()
		return true
	}
	return false
}

// EatIfStr consumes the text at the cursor if it has prefix str,
// reporting whether it did.
func (s *Scanner) EatIfStr(str string) bool {
	if s.At(str) {
		s.pos += len(str)
		return true
	}
	return false
}

// EatWhile consumes a maximal run of characters satisfying pred and
// returns the consumed slice.
func (s *Scanner) EatWhile(pred func(rune) bool) string {
	start := s.pos
	for s.AtRune(pred) {
		s.Eat()
	}
	return s.text[start:s.pos]
}

// EatUntil consumes characters up to (not including) the first one
// satisfying pred, or to the end of input if none does, and returns
// the consumed slice.
func (s *Scanner) EatUntil(pred func(rune) bool) string {
	start := s.pos
	for !s.Done() && !s.AtRune(pred) {
		s.Eat()
	}
	return s.text[start:s.pos]
}

// EatNewline consumes one newline at the cursor, treating CRLF as a
// single newline. Reports whether a newline was consumed.
func (s *Scanner) EatNewline() bool {
	ate := s.EatIf('\r')
	if !ate {
		ate = s.AtRune(IsNewline)
		if ate {
			s.Eat()
		}
		return ate
	}
	s.EatIf('\n')
	return true
}

// Jump repositions the cursor to an absolute byte offset. The caller
// is responsible for passing a rune-boundary-aligned offset (every
// offset handed back by a Scanner accessor qualifies).
func (s *Scanner) Jump(index int) {
	s.pos = index
}

// Advance moves the cursor forward by a relative number of bytes.
func (s *Scanner) Advance(by int) {
	s.pos += by
}

// Uneat steps the cursor back by one character, UTF-8 safely. It is a
// no-op at the start of input.
func (s *Scanner) Uneat() {
	if s.pos == 0 {
		return
	}
	_, size := utf8.DecodeLastRuneInString(s.text[:s.pos])
	s.pos -= size
}

// Before returns the slice of text from the start of input to the
// cursor.
func (s Scanner) Before() string {
	return s.text[:s.pos]
}

// After returns the slice of text from the cursor to the end of
// input.
func (s Scanner) After() string {
	return s.text[s.pos:]
}

// From returns the slice of text between a previously recorded
// offset and the current cursor.
func (s Scanner) From(start int) string {
	return s.text[start:s.pos]
}

// To returns the slice of text between the current cursor and a given
// end offset.
func (s Scanner) To(end int) string {
	return s.text[s.pos:end]
}

// Get returns an arbitrary slice of the underlying text by byte
// offsets.
func (s Scanner) Get(start, end int) string {
	return s.text[start:end]
}
