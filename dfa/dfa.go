package dfa

import (
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"golang.org/x/exp/slices"

	"github.com/Iulian277-University/Lexer/ast"
	"github.com/Iulian277-University/Lexer/intset"
	"github.com/Iulian277-University/Lexer/nfa"
)

// DFA is a complete deterministic finite automaton. The transition function
// is total over states × alphabet, and a sink state always exists: reaching
// it means no suffix of the input can ever be accepted.
type DFA struct {
	table    *Table
	alphabet []rune // sorted distinct input symbols
	start    int
	finals   *treeset.Set
	sink     int
}

// FromNFA subset-constructs the deterministic equivalent of n. Deterministic
// state ids are assigned in first-discovery (breadth-first) order.
func FromNFA(n *nfa.NFA) *DFA {
	tracer().Debugf("=== subset construction =========================================")
	d := &DFA{
		alphabet: n.Alphabet(),
		finals:   treeset.NewWith(utils.IntComparator),
	}
	d.table = newTable(0, len(d.alphabet))

	// non-epsilon edges per symbol, for the move computation
	edges := make(map[rune][]nfa.Transition, len(d.alphabet))
	n.EachTransition(func(t nfa.Transition) {
		if t.Sym != nfa.Epsilon {
			edges[t.Sym] = append(edges[t.Sym], t)
		}
	})

	// admit hands out dense ids keyed by the subset's canonical form
	ids := make(map[string]int)
	subsets := make([]intset.Set, 0, 8)
	admit := func(subset intset.Set) int {
		key := subset.Key()
		if id, ok := ids[key]; ok {
			return id
		}
		id := d.table.appendRow()
		ids[key] = id
		subsets = append(subsets, subset)
		if subset.Contains(n.Accept()) {
			d.finals.Add(id)
		}
		tracer().Debugf("state %d = %v", id, subset)
		return id
	}

	d.start = admit(n.Closure(n.Start()))
	for frontier := 0; frontier < len(subsets); frontier++ {
		subset := subsets[frontier]
		for j, sym := range d.alphabet {
			var target intset.Set
			for _, e := range edges[sym] {
				if subset.Contains(e.From) {
					target = target.Union(n.Closure(e.To))
				}
			}
			// the target is recorded whether it is new or not; the empty
			// subset materializes here and becomes the natural sink
			d.table.set(frontier, j, int32(admit(target)))
		}
	}

	d.adoptSink()
	tracer().Debugf("DFA has %d states over an alphabet of %d", d.table.M(), len(d.alphabet))
	return d
}

// FromPrenex parses a prenex string and constructs its deterministic
// automaton.
func FromPrenex(prenex string) (*DFA, error) {
	root, err := ast.Parse(prenex)
	if err != nil {
		return nil, err
	}
	n, err := nfa.FromAST(root)
	if err != nil {
		return nil, err
	}
	return FromNFA(n), nil
}

// adoptSink finds a non-accepting all-self-loop state, or synthesizes one,
// and patches any remaining null transition to point at it. Afterwards the
// transition function is total.
func (d *DFA) adoptSink() {
	d.sink = -1
	for i := 0; i < d.table.M(); i++ {
		if d.finals.Contains(i) {
			continue
		}
		loops := true
		for j := 0; j < d.table.N(); j++ {
			if d.table.At(i, j) != int32(i) {
				loops = false
				break
			}
		}
		if loops {
			d.sink = i
			break
		}
	}
	if d.sink < 0 {
		d.sink = d.table.appendRow()
		for j := 0; j < d.table.N(); j++ {
			d.table.set(d.sink, j, int32(d.sink))
		}
		tracer().Debugf("no sink emerged, synthesized state %d", d.sink)
	}
	if patched := d.table.fill(int32(d.sink)); patched > 0 {
		tracer().Debugf("%d undefined transitions now target the sink", patched)
	}
}

// Start returns the start state.
func (d *DFA) Start() int {
	return d.start
}

// Sink returns the sink state.
func (d *DFA) Sink() int {
	return d.sink
}

// NumStates returns the number of states, the sink included.
func (d *DFA) NumStates() int {
	return d.table.M()
}

// Alphabet returns the sorted input symbols. The returned slice is a copy.
func (d *DFA) Alphabet() []rune {
	alphabet := make([]rune, len(d.alphabet))
	copy(alphabet, d.alphabet)
	return alphabet
}

// Finals returns the accepting states in ascending order.
func (d *DFA) Finals() []int {
	finals := make([]int, 0, d.finals.Size())
	for _, x := range d.finals.Values() {
		finals = append(finals, x.(int))
	}
	return finals
}

// IsFinal tells if state is accepting.
func (d *DFA) IsFinal(state int) bool {
	return d.finals.Contains(state)
}

// Step advances one transition. A symbol outside the alphabet yields -1;
// callers treat -1 and the sink alike, as no progress is possible either
// way.
func (d *DFA) Step(state int, sym rune) int {
	j, ok := slices.BinarySearch(d.alphabet, sym)
	if !ok {
		return -1
	}
	return int(d.table.At(state, j))
}

// Table returns the transition table, a read-only view for tooling.
func (d *DFA) Table() *Table {
	return d.table
}

// Accepts walks the automaton over input and tells if it ends in an
// accepting state.
func (d *DFA) Accepts(input string) bool {
	state := d.start
	for _, r := range input {
		state = d.Step(state, r)
		if state < 0 || state == d.sink {
			return false
		}
	}
	return d.IsFinal(state)
}

func (d *DFA) String() string {
	return fmt.Sprintf("(DFA states=%d alphabet=%d start=%d sink=%d)",
		d.table.M(), len(d.alphabet), d.start, d.sink)
}
