package regex

import (
	"errors"
	"fmt"
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=Op

// Op identifies a regular expression operator. The zero value Illegal marks
// literal tokens, which carry no operator at all.
type Op int

// Operators of the surface language. Brackets are structural and never
// compared by precedence.
const (
	Illegal Op = iota
	Union
	Concat
	Star
	Plus
	Maybe
	LParen
	RParen
)

// Keyword returns the operator's prenex keyword, or "" for brackets.
func (op Op) Keyword() string {
	switch op {
	case Union:
		return "UNION"
	case Concat:
		return "CONCAT"
	case Star:
		return "STAR"
	case Plus:
		return "PLUS"
	case Maybe:
		return "MAYBE"
	}
	return ""
}

// Prec returns the operator's binding strength. Repetition binds tightest,
// union weakest. Brackets rank 0.
func (op Op) Prec() int {
	switch op {
	case Star, Plus, Maybe:
		return 3
	case Concat:
		return 2
	case Union:
		return 1
	}
	return 0
}

// Arity returns the operand count of an operator: 1 for the repetition
// operators, 2 for union and concatenation, 0 otherwise.
func (op Op) Arity() int {
	switch op {
	case Star, Plus, Maybe:
		return 1
	case Union, Concat:
		return 2
	}
	return 0
}

// Epsilon and Void are the sentinel literal runes representing the reserved
// atoms eps (the empty string) and void (the empty language). They are
// negative and can never clash with input runes.
const (
	Epsilon rune = -1
	Void    rune = -2
)

// Token is a lexical atom of a regular expression: an operator, or a literal
// rune. Quoted records that a literal was written as 'x' in the source.
type Token struct {
	Op     Op
	Lit    rune
	Quoted bool
}

// IsLiteral tells if the token is a literal (including eps and void).
func (t Token) IsLiteral() bool {
	return t.Op == Illegal
}

func (t Token) String() string {
	if t.IsLiteral() {
		return atomText(t.Lit)
	}
	if kw := t.Op.Keyword(); kw != "" {
		return kw
	}
	if t.Op == LParen {
		return "("
	}
	return ")"
}

// Errors reported while scanning a pattern. Callers match them with
// errors.Is; positions are attached via wrapping.
var (
	ErrEmptyPattern      = errors.New("empty pattern")
	ErrUnterminatedQuote = errors.New("unterminated quoted literal")
	ErrBadRange          = errors.New("malformed character range")
)

// Tokenize scans a pattern into a normalized token stream: quoted literals
// are resolved, reserved atoms recognized, ranges expanded to union chains,
// and implicit concatenation operators inserted. It fails on empty input,
// an unterminated quote, or a malformed range.
func Tokenize(pattern string) ([]Token, error) {
	if pattern == "" {
		return nil, ErrEmptyPattern
	}
	toks, err := scan(pattern)
	if err != nil {
		return nil, err
	}
	return insertConcat(toks), nil
}

// scan resolves quoting, reserved atoms and ranges; it does not yet insert
// concatenation operators.
func scan(pattern string) ([]Token, error) {
	rs := []rune(pattern)
	toks := make([]Token, 0, len(rs))
	for i := 0; i < len(rs); {
		switch r := rs[i]; {
		case r == '\'':
			if i+2 >= len(rs) || rs[i+2] != '\'' {
				return nil, fmt.Errorf("%w at position %d", ErrUnterminatedQuote, i)
			}
			toks = append(toks, Token{Lit: rs[i+1], Quoted: true})
			i += 3
		case r == '[':
			if i+4 >= len(rs) || rs[i+2] != '-' || rs[i+4] != ']' {
				return nil, fmt.Errorf("%w at position %d", ErrBadRange, i)
			}
			lo, hi := rs[i+1], rs[i+3]
			if lo > hi {
				return nil, fmt.Errorf("%w at position %d: %q > %q", ErrBadRange, i, lo, hi)
			}
			toks = append(toks, Token{Op: LParen})
			for c := lo; c <= hi; c++ {
				if c > lo {
					toks = append(toks, Token{Op: Union})
				}
				toks = append(toks, Token{Lit: c})
			}
			toks = append(toks, Token{Op: RParen})
			i += 5
		case wordAt(rs, i, "eps"):
			toks = append(toks, Token{Lit: Epsilon})
			i += 3
		case wordAt(rs, i, "void"):
			toks = append(toks, Token{Lit: Void})
			i += 4
		default:
			if op := glyphOp(r); op != Illegal {
				toks = append(toks, Token{Op: op})
			} else {
				toks = append(toks, Token{Lit: r})
			}
			i++
		}
	}
	return toks, nil
}

// glyphOp maps an unquoted operator glyph to its operator.
func glyphOp(r rune) Op {
	switch r {
	case '|':
		return Union
	case '.':
		return Concat
	case '*':
		return Star
	case '+':
		return Plus
	case '?':
		return Maybe
	case '(':
		return LParen
	case ')':
		return RParen
	}
	return Illegal
}

func wordAt(rs []rune, i int, w string) bool {
	for _, c := range w {
		if i >= len(rs) || rs[i] != c {
			return false
		}
		i++
	}
	return true
}

// insertConcat normalizes the stream by inserting an explicit concatenation
// operator wherever two adjacent tokens juxtapose: literal/literal,
// literal/'(', ')'/literal, ')'/'(' and repetition-operator/literal or '('.
func insertConcat(toks []Token) []Token {
	out := make([]Token, 0, 2*len(toks))
	for i, t := range toks {
		if i > 0 && needsConcat(toks[i-1], t) {
			out = append(out, Token{Op: Concat})
		}
		out = append(out, t)
	}
	return out
}

func needsConcat(prev, next Token) bool {
	prevJoins := prev.IsLiteral() || prev.Op == RParen || prev.Op.Arity() == 1
	nextJoins := next.IsLiteral() || next.Op == LParen
	return prevJoins && nextJoins
}
