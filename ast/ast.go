package ast

import (
	"errors"
	"fmt"
)

// Expr is a node of a regular expression tree. The node types form a closed
// sum: Atom, Star, Plus, Maybe, Concat and Union, nothing else implements
// Expr. Every node exclusively owns its children.
type Expr interface {
	fmt.Stringer
	isExpr()
}

// AtomKind distinguishes the payload of an Atom leaf.
type AtomKind int8

const (
	Char AtomKind = iota // a literal rune
	Eps                  // the empty string
	Void                 // the empty language
)

// Atom is a leaf node: a literal rune, eps or void.
type Atom struct {
	Kind AtomKind
	Ch   rune
}

// Star repeats its child zero or more times.
type Star struct {
	Child Expr
}

// Plus repeats its child one or more times.
type Plus struct {
	Child Expr
}

// Maybe matches its child zero or one times.
type Maybe struct {
	Child Expr
}

// Concat matches Left followed by Right.
type Concat struct {
	Left, Right Expr
}

// Union matches either Left or Right.
type Union struct {
	Left, Right Expr
}

func (*Atom) isExpr()   {}
func (*Star) isExpr()   {}
func (*Plus) isExpr()   {}
func (*Maybe) isExpr()  {}
func (*Concat) isExpr() {}
func (*Union) isExpr()  {}

func (a *Atom) String() string {
	switch a.Kind {
	case Eps:
		return "eps"
	case Void:
		return "void"
	}
	return string(a.Ch)
}

func (s *Star) String() string   { return "(STAR " + s.Child.String() + ")" }
func (p *Plus) String() string   { return "(PLUS " + p.Child.String() + ")" }
func (m *Maybe) String() string  { return "(MAYBE " + m.Child.String() + ")" }
func (c *Concat) String() string { return "(CONCAT " + c.Left.String() + " " + c.Right.String() + ")" }
func (u *Union) String() string  { return "(UNION " + u.Left.String() + " " + u.Right.String() + ")" }

// ErrMalformedPrenex is reported when a prenex token stream cannot be parsed:
// it ran dry before an operator's arity was satisfied, carries an
// unrecognizable token, or has tokens trailing the root expression.
var ErrMalformedPrenex = errors.New("malformed prenex")

// Parse parses a prenex string into an expression tree.
func Parse(prenex string) (Expr, error) {
	return ParseTokens(SplitTokens(prenex))
}

// ParseTokens parses a prenex token stream into an expression tree. The
// whole stream must be consumed; trailing tokens are an error.
func ParseTokens(toks []string) (Expr, error) {
	p := &parser{toks: toks}
	e, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.toks) {
		return nil, fmt.Errorf("%w: %d token(s) trailing the expression, starting with %q",
			ErrMalformedPrenex, len(p.toks)-p.pos, p.toks[p.pos])
	}
	return e, nil
}

// SplitTokens splits a prenex string into its tokens. Quoted tokens ('x')
// are kept intact, so a quoted space does not act as a separator.
func SplitTokens(prenex string) []string {
	rs := []rune(prenex)
	toks := make([]string, 0, 8)
	for i := 0; i < len(rs); {
		switch {
		case rs[i] == ' ':
			i++
		case rs[i] == '\'' && i+2 < len(rs) && rs[i+2] == '\'':
			toks = append(toks, string(rs[i:i+3]))
			i += 3
		default:
			j := i
			for j < len(rs) && rs[j] != ' ' {
				j++
			}
			toks = append(toks, string(rs[i:j]))
			i = j
		}
	}
	return toks
}

type parser struct {
	toks []string
	pos  int
}

func (p *parser) next() (string, error) {
	if p.pos >= len(p.toks) {
		return "", fmt.Errorf("%w: token stream exhausted", ErrMalformedPrenex)
	}
	t := p.toks[p.pos]
	p.pos++
	return t, nil
}

func (p *parser) parseExpr() (Expr, error) {
	t, err := p.next()
	if err != nil {
		return nil, err
	}
	switch t {
	case "UNION":
		return p.parseBinary(func(l, r Expr) Expr { return &Union{Left: l, Right: r} })
	case "CONCAT":
		return p.parseBinary(func(l, r Expr) Expr { return &Concat{Left: l, Right: r} })
	case "STAR":
		return p.parseUnary(func(c Expr) Expr { return &Star{Child: c} })
	case "PLUS":
		return p.parseUnary(func(c Expr) Expr { return &Plus{Child: c} })
	case "MAYBE":
		return p.parseUnary(func(c Expr) Expr { return &Maybe{Child: c} })
	case "eps":
		return &Atom{Kind: Eps}, nil
	case "void":
		return &Atom{Kind: Void}, nil
	}
	return p.atom(t)
}

func (p *parser) parseUnary(mk func(Expr) Expr) (Expr, error) {
	c, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return mk(c), nil
}

func (p *parser) parseBinary(mk func(l, r Expr) Expr) (Expr, error) {
	l, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	r, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return mk(l, r), nil
}

// atom interprets a non-keyword token: either a single rune or a quoted rune.
func (p *parser) atom(t string) (Expr, error) {
	rs := []rune(t)
	switch {
	case len(rs) == 3 && rs[0] == '\'' && rs[2] == '\'':
		return &Atom{Kind: Char, Ch: rs[1]}, nil
	case len(rs) == 1:
		return &Atom{Kind: Char, Ch: rs[0]}, nil
	}
	return nil, fmt.Errorf("%w: unrecognized token %q", ErrMalformedPrenex, t)
}
