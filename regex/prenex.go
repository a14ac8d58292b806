package regex

import "strings"

// ToPrenex compiles an infix pattern to its prenex form: a space-separated,
// fully prefix-ordered stream of operator keywords and atoms. Literal
// whitespace, control characters and the quote character are re-quoted as
// 'x' so they survive the space-delimited encoding.
func ToPrenex(pattern string) (string, error) {
	toks, err := Tokenize(pattern)
	if err != nil {
		return "", err
	}
	if len(toks) == 1 { // single atom, nothing to normalize
		return emit(toks), nil
	}
	rev := reverseSwap(toks)
	wrapped := make([]Token, 0, len(rev)+2)
	wrapped = append(wrapped, Token{Op: LParen})
	wrapped = append(wrapped, rev...)
	wrapped = append(wrapped, Token{Op: RParen})
	post := toPostfix(wrapped)
	reverse(post)
	prenex := emit(post)
	tracer().Debugf("prenex(%q) = %q", pattern, prenex)
	return prenex, nil
}

// reverseSwap returns the token stream in reverse order with opening and
// closing brackets exchanged, the form the postfix pass operates on.
func reverseSwap(toks []Token) []Token {
	out := make([]Token, len(toks))
	for i, t := range toks {
		switch t.Op {
		case LParen:
			t.Op = RParen
		case RParen:
			t.Op = LParen
		}
		out[len(toks)-1-i] = t
	}
	return out
}

// toPostfix is a shunting-yard pass over the reversed stream. Brackets are
// matched structurally. Unbalanced brackets are tolerated, matching the
// contract that scanning alone decides well-formedness.
func toPostfix(toks []Token) []Token {
	out := make([]Token, 0, len(toks))
	stack := make([]Token, 0, 8)
	for _, t := range toks {
		switch {
		case t.IsLiteral():
			out = append(out, t)
		case t.Op == LParen:
			stack = append(stack, t)
		case t.Op == RParen:
			for len(stack) > 0 && stack[len(stack)-1].Op != LParen {
				out = append(out, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		default:
			for len(stack) > 0 && pops(t.Op, stack[len(stack)-1].Op) {
				out = append(out, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, t)
		}
	}
	for len(stack) > 0 {
		if top := stack[len(stack)-1]; top.Op != LParen {
			out = append(out, top)
		}
		stack = stack[:len(stack)-1]
	}
	return out
}

// pops tells if an incoming operator must first pop the stack top. The
// repetition operators pop entries of equal-or-higher precedence; union and
// concatenation pop only strictly higher ones.
func pops(op, top Op) bool {
	if top == LParen {
		return false
	}
	if op.Arity() == 1 {
		return top.Prec() >= op.Prec()
	}
	return top.Prec() > op.Prec()
}

func reverse(toks []Token) {
	for i, j := 0, len(toks)-1; i < j; i, j = i+1, j-1 {
		toks[i], toks[j] = toks[j], toks[i]
	}
}

func emit(toks []Token) string {
	var b strings.Builder
	for i, t := range toks {
		if i > 0 {
			b.WriteByte(' ')
		}
		if t.IsLiteral() {
			b.WriteString(atomText(t.Lit))
		} else {
			b.WriteString(t.Op.Keyword())
		}
	}
	return b.String()
}

// atomText renders a literal rune as a prenex atom token.
func atomText(r rune) string {
	switch r {
	case Epsilon:
		return "eps"
	case Void:
		return "void"
	}
	if r == '\'' || r == ' ' || r == '\t' || r == '\n' || r == '\r' {
		return "'" + string(r) + "'"
	}
	return string(r)
}
