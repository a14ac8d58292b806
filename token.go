package lexer

import "fmt"

// --- A general purpose interface for tokens --------------------------------

// TokType is the category type of a Token. The configured token categories
// of a Lexer get the consecutive types 0..n-1, in declaration order.
type TokType int

// EOFType is the token type a streaming Scanner yields once input is
// exhausted.
const EOFType TokType = -1

// TokTypeStringer is a function for printing out token categories.
type TokTypeStringer func(TokType) string

// Tokens represent pieces of lexed input. An example would be a token for a
// number literal:
//
//    TokType = 2           // the NUM category was declared third
//    Lexeme  = "3.1416"    // lexeme as it appeared in the input
//    Value   = nil         // may be filled in by a downstream consumer
//    Span    = 67…73       // occurred at position 67 in the input
type Token interface {
	TokType() TokType
	Lexeme() string
	Value() interface{}
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a run of input. It denotes a start
// position and the position just behind the end, as byte offsets.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) IsNull() bool {
	return s == Span{}
}

func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
