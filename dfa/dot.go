package dfa

import (
	"fmt"
	"io"
	"strings"
)

// Dot writes the automaton in Graphviz dot format. Accepting states are
// drawn as double circles, the sink is grayed out, and parallel transitions
// between the same pair of states are folded into one labeled edge.
func (d *DFA) Dot(w io.Writer) error {
	var b strings.Builder
	b.WriteString("digraph DFA {\n")
	b.WriteString("\trankdir=LR;\n")
	b.WriteString("\tnode [shape=circle, fontname=Helvetica, fontsize=10];\n")
	for _, f := range d.Finals() {
		fmt.Fprintf(&b, "\tq%d [shape=doublecircle];\n", f)
	}
	fmt.Fprintf(&b, "\tq%d [style=filled, fillcolor=lightgray];\n", d.sink)
	b.WriteString("\t_start [shape=point];\n")
	fmt.Fprintf(&b, "\t_start -> q%d;\n", d.start)
	for i := 0; i < d.table.M(); i++ {
		// fold symbols sharing a target into one edge label
		targets := make([]int, 0, 2)
		labels := make(map[int][]string)
		for j, sym := range d.alphabet {
			to := int(d.table.At(i, j))
			if _, ok := labels[to]; !ok {
				targets = append(targets, to)
			}
			labels[to] = append(labels[to], string(sym))
		}
		for _, to := range targets {
			fmt.Fprintf(&b, "\tq%d -> q%d [label=%q];\n", i, to, strings.Join(labels[to], ","))
		}
	}
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	return err
}
