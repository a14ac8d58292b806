package dfa

import (
	"strconv"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// Minimize merges indistinguishable states and returns the reduced
// automaton. Partition refinement starts from the accepting/non-accepting
// split and refines on transition signatures until stable (Moore's
// algorithm). The result accepts exactly the same language, stays complete,
// and keeps a sink. Class ids are assigned in state-id order, so the result
// is deterministic. The receiver is left untouched.
func (d *DFA) Minimize() *DFA {
	m := d.table.M()
	class := make([]int, m)
	for i := 0; i < m; i++ {
		if d.finals.Contains(i) {
			class[i] = 1
		}
	}
	classes := countDistinct(class)
	for {
		next := make([]int, m)
		seen := make(map[string]int, classes)
		for i := 0; i < m; i++ {
			sig := signature(d.table, class, i)
			id, ok := seen[sig]
			if !ok {
				id = len(seen)
				seen[sig] = id
			}
			next[i] = id
		}
		class = next
		if len(seen) == classes { // fixpoint
			break
		}
		classes = len(seen)
	}

	min := &DFA{
		alphabet: d.Alphabet(),
		table:    newTable(classes, len(d.alphabet)),
		finals:   treeset.NewWith(utils.IntComparator),
		start:    class[d.start],
		sink:     class[d.sink],
	}
	for i := 0; i < m; i++ {
		for j := 0; j < d.table.N(); j++ {
			min.table.set(class[i], j, int32(class[int(d.table.At(i, j))]))
		}
		if d.finals.Contains(i) {
			min.finals.Add(class[i])
		}
	}
	tracer().Debugf("minimized %d states down to %d", m, classes)
	return min
}

// signature renders a state's class and the classes of all its targets; two
// states with equal signatures are indistinguishable in this round.
func signature(t *Table, class []int, i int) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(class[i]))
	for j := 0; j < t.N(); j++ {
		b.WriteByte('_')
		b.WriteString(strconv.Itoa(class[int(t.At(i, j))]))
	}
	return b.String()
}

func countDistinct(class []int) int {
	seen := make(map[int]bool, 2)
	for _, c := range class {
		seen[c] = true
	}
	return len(seen)
}
