package lexer

import "fmt"

// NoViableAltError is the lexical error: at some position of the input, no
// configured token category was able to match. The position reported is the
// furthest any category's automaton reached before dying, which is usually
// the most helpful place to point a user at.
type NoViableAltError struct {
	Pos   int  // byte index the furthest-reaching automaton stopped at
	Line  int  // line number, starting at 0
	Col   int  // column within the line, starting at 1
	AtEOF bool // the position is the end of input
}

func (e *NoViableAltError) Error() string {
	if e.AtEOF {
		return fmt.Sprintf("No viable alternative at character EOF, line %d", e.Line)
	}
	return fmt.Sprintf("No viable alternative at character %d, line %d", e.Col, e.Line)
}

// newNoViableAlt locates a lexical error at byte index pos of input,
// counting line breaks up to (not including) pos.
func newNoViableAlt(input string, pos int) *NoViableAltError {
	e := &NoViableAltError{Pos: pos, AtEOF: pos >= len(input)}
	lastNL := -1
	for i := 0; i < pos && i < len(input); i++ {
		if input[i] == '\n' {
			e.Line++
			lastNL = i
		}
	}
	e.Col = pos - lastNL
	return e
}
