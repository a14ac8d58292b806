package nfa

import (
	"fmt"
	"io"
	"strings"
)

// Dot writes the automaton in Graphviz dot format: the accept state is drawn
// as a double circle, an arrow from an unlabeled point marks the start.
func (n *NFA) Dot(w io.Writer) error {
	var b strings.Builder
	b.WriteString("digraph NFA {\n")
	b.WriteString("\trankdir=LR;\n")
	b.WriteString("\tnode [shape=circle, fontname=Helvetica, fontsize=10];\n")
	fmt.Fprintf(&b, "\tq%d [shape=doublecircle];\n", n.accept)
	b.WriteString("\t_start [shape=point];\n")
	fmt.Fprintf(&b, "\t_start -> q%d;\n", n.start)
	it := n.transitions.Iterator()
	for it.Next() {
		t := it.Value().(*Transition)
		fmt.Fprintf(&b, "\tq%d -> q%d [label=%s];\n", t.From, t.To, dotLabel(t.Sym))
	}
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func dotLabel(sym rune) string {
	if sym == Epsilon {
		return `"ε"`
	}
	return fmt.Sprintf("%q", string(sym))
}
