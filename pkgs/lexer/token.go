package lexer

import "fmt"

// Kind is the lexical category of a token. A Kind carries no text or
// position of its own; the caller pairs it with the cursor positions
// returned by the Lexer to recover the span.
type Kind int

const (
	// Special tokens.
	End Kind = iota
	Error

	// Trivia: whitespace and comments a parser is free to discard.
	Space
	Parbreak
	LineComment
	BlockComment

	// Markup.
	Text
	Escape
	Linebreak
	Shorthand
	SmartQuote
	Link
	Label
	RefMarker
	HeadingMarker
	ListMarker
	EnumMarker
	TermMarker

	// Punctuation shared across modes.
	Hash
	LeftBracket
	RightBracket
	Star
	Underscore
	Dollar
	Colon

	// Raw blocks.
	RawDelim
	RawLang
	RawTrimmed

	// Math.
	MathIdent
	MathAlignPoint
	Prime
	Hat
	Slash
	Root

	// Code literals.
	Ident
	Int
	Float
	Numeric
	Str
	Bool
	None
	Auto

	// Code operators and punctuation.
	Eq
	EqEq
	ExclEq
	Lt
	LtEq
	Gt
	GtEq
	Plus
	PlusEq
	Minus
	HyphEq
	StarEq
	SlashEq
	Dot
	Dots
	Arrow
	Comma
	Semicolon
	LeftBrace
	RightBrace
	LeftParen
	RightParen

	// Keywords.
	Let
	Set
	Show
	Context
	If
	Else
	For
	In
	While
	Break
	Continue
	Return
	Import
	Include
	As
	Not
	And
	Or
)

var kindNames = [...]string{
	End:            "End",
	Error:          "Error",
	Space:          "Space",
	Parbreak:       "Parbreak",
	LineComment:    "LineComment",
	BlockComment:   "BlockComment",
	Text:           "Text",
	Escape:         "Escape",
	Linebreak:      "Linebreak",
	Shorthand:      "Shorthand",
	SmartQuote:     "SmartQuote",
	Link:           "Link",
	Label:          "Label",
	RefMarker:      "RefMarker",
	HeadingMarker:  "HeadingMarker",
	ListMarker:     "ListMarker",
	EnumMarker:     "EnumMarker",
	TermMarker:     "TermMarker",
	Hash:           "Hash",
	LeftBracket:    "LeftBracket",
	RightBracket:   "RightBracket",
	Star:           "Star",
	Underscore:     "Underscore",
	Dollar:         "Dollar",
	Colon:          "Colon",
	RawDelim:       "RawDelim",
	RawLang:        "RawLang",
	RawTrimmed:     "RawTrimmed",
	MathIdent:      "MathIdent",
	MathAlignPoint: "MathAlignPoint",
	Prime:          "Prime",
	Hat:            "Hat",
	Slash:          "Slash",
	Root:           "Root",
	Ident:          "Ident",
	Int:            "Int",
	Float:          "Float",
	Numeric:        "Numeric",
	Str:            "Str",
	Bool:           "Bool",
	None:           "None",
	Auto:           "Auto",
	Eq:             "Eq",
	EqEq:           "EqEq",
	ExclEq:         "ExclEq",
	Lt:             "Lt",
	LtEq:           "LtEq",
	Gt:             "Gt",
	GtEq:           "GtEq",
	Plus:           "Plus",
	PlusEq:         "PlusEq",
	Minus:          "Minus",
	HyphEq:         "HyphEq",
	StarEq:         "StarEq",
	SlashEq:        "SlashEq",
	Dot:            "Dot",
	Dots:           "Dots",
	Arrow:          "Arrow",
	Comma:          "Comma",
	Semicolon:      "Semicolon",
	LeftBrace:      "LeftBrace",
	RightBrace:     "RightBrace",
	LeftParen:      "LeftParen",
	RightParen:     "RightParen",
	Let:            "Let",
	Set:            "Set",
	Show:           "Show",
	Context:        "Context",
	If:             "If",
	Else:           "Else",
	For:            "For",
	In:             "In",
	While:          "While",
	Break:          "Break",
	Continue:       "Continue",
	Return:         "Return",
	Import:         "Import",
	Include:        "Include",
	As:             "As",
	Not:            "Not",
	And:            "And",
	Or:             "Or",
}

// String renders the kind's name for debugging and test failure output.
func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsTrivia reports whether a parser may discard a token of this kind
// without losing syntactic information.
func (k Kind) IsTrivia() bool {
	switch k {
	case Space, Parbreak, LineComment, BlockComment:
		return true
	default:
		return false
	}
}

// keyword looks up a reserved word. It returns (kind, true) if ident
// names a keyword, or (End, false) otherwise — End is never itself a
// keyword, so it doubles as the "not found" sentinel.
func keyword(ident string) (Kind, bool) {
	switch ident {
	case "none":
		return None, true
	case "auto":
		return Auto, true
	case "true", "false":
		return Bool, true
	case "not":
		return Not, true
	case "and":
		return And, true
	case "or":
		return Or, true
	case "let":
		return Let, true
	case "set":
		return Set, true
	case "show":
		return Show, true
	case "context":
		return Context, true
	case "if":
		return If, true
	case "else":
		return Else, true
	case "for":
		return For, true
	case "in":
		return In, true
	case "while":
		return While, true
	case "break":
		return Break, true
	case "continue":
		return Continue, true
	case "return":
		return Return, true
	case "import":
		return Import, true
	case "include":
		return Include, true
	case "as":
		return As, true
	default:
		return End, false
	}
}
