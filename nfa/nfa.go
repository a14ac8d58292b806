package nfa

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"golang.org/x/exp/slices"

	"github.com/Iulian277-University/Lexer/ast"
	"github.com/Iulian277-University/Lexer/intset"
)

// Epsilon labels transitions that consume no input. It is negative and can
// never clash with an input rune.
const Epsilon rune = -1

// Transition is a directed edge between two states, labeled with an input
// rune or with Epsilon.
type Transition struct {
	From int
	Sym  rune
	To   int
}

func (t Transition) String() string {
	if t.Sym == Epsilon {
		return fmt.Sprintf("%d --ε--> %d", t.From, t.To)
	}
	return fmt.Sprintf("%d --%c--> %d", t.From, t.Sym, t.To)
}

// NFA is a nondeterministic finite automaton in Thompson normal form: a
// single start state, a single accept state, and a transition list whose
// epsilon edges glue the fragments together.
type NFA struct {
	states      *treeset.Set    // all state ids
	transitions *arraylist.List // all *Transition edges, in creation order
	start       int
	accept      int
	closures    map[int]intset.Set // epsilon closure per state, self-inclusive
}

// FromAST Thompson-constructs an automaton from an expression tree.
func FromAST(root ast.Expr) (*NFA, error) {
	if root == nil {
		return nil, errors.New("cannot construct automaton from nil expression")
	}
	n := &NFA{
		states:      treeset.NewWith(utils.IntComparator),
		transitions: arraylist.New(),
	}
	b := &builder{nfa: n}
	f := b.build(root)
	n.start = f.start
	n.accept = f.accept
	n.computeClosures()
	tracer().Debugf("NFA(%s) with %d states, %d transitions", root, n.states.Size(), n.transitions.Size())
	return n, nil
}

// FromPrenex parses a prenex string and constructs its automaton.
func FromPrenex(prenex string) (*NFA, error) {
	root, err := ast.Parse(prenex)
	if err != nil {
		return nil, err
	}
	return FromAST(root)
}

// Start returns the single start state.
func (n *NFA) Start() int {
	return n.start
}

// Accept returns the single accepting state.
func (n *NFA) Accept() int {
	return n.accept
}

// NumStates returns the number of states.
func (n *NFA) NumStates() int {
	return n.states.Size()
}

// NumTransitions returns the number of transitions, epsilon edges included.
func (n *NFA) NumTransitions() int {
	return n.transitions.Size()
}

// States returns all state ids in ascending order.
func (n *NFA) States() []int {
	ids := make([]int, 0, n.states.Size())
	for _, x := range n.states.Values() {
		ids = append(ids, x.(int))
	}
	return ids
}

// EachTransition calls f for every transition, in creation order.
func (n *NFA) EachTransition(f func(Transition)) {
	it := n.transitions.Iterator()
	for it.Next() {
		f(*it.Value().(*Transition))
	}
}

// Closure returns the precomputed epsilon closure of a state. The closure
// contains the state itself.
func (n *NFA) Closure(s int) intset.Set {
	return n.closures[s]
}

// Alphabet returns the sorted distinct non-epsilon symbols of the automaton.
func (n *NFA) Alphabet() []rune {
	seen := make(map[rune]bool)
	it := n.transitions.Iterator()
	for it.Next() {
		if t := it.Value().(*Transition); t.Sym != Epsilon {
			seen[t.Sym] = true
		}
	}
	alphabet := make([]rune, 0, len(seen))
	for r := range seen {
		alphabet = append(alphabet, r)
	}
	slices.Sort(alphabet)
	return alphabet
}

// Accepts simulates the automaton directly and tells if it accepts input.
// This is an exploration and testing aid; matching in production goes
// through the derived DFA.
func (n *NFA) Accepts(input string) bool {
	current := n.Closure(n.start)
	for _, r := range input {
		var next intset.Set
		it := n.transitions.Iterator()
		for it.Next() {
			t := it.Value().(*Transition)
			if t.Sym == r && current.Contains(t.From) {
				next = next.Union(n.closures[t.To])
			}
		}
		if next.Empty() {
			return false
		}
		current = next
	}
	return current.Contains(n.accept)
}

func (n *NFA) String() string {
	return fmt.Sprintf("(NFA states=%d start=%d accept=%d)", n.states.Size(), n.start, n.accept)
}

// --- Construction ----------------------------------------------------------

// frag is a single-entry/single-exit piece of the automaton under
// construction.
type frag struct {
	start, accept int
}

// builder owns the state id allocator for one construction run. Ids are
// never reused within a build, so fragments cannot merge by accident.
type builder struct {
	nextID int
	nfa    *NFA
}

func (b *builder) fresh() int {
	id := b.nextID
	b.nextID++
	b.nfa.states.Add(id)
	return id
}

func (b *builder) edge(from int, sym rune, to int) {
	b.nfa.transitions.Add(&Transition{From: from, Sym: sym, To: to})
}

func (b *builder) build(e ast.Expr) frag {
	switch x := e.(type) {
	case *ast.Atom:
		f := frag{start: b.fresh(), accept: b.fresh()}
		switch x.Kind {
		case ast.Char:
			b.edge(f.start, x.Ch, f.accept)
		case ast.Eps:
			b.edge(f.start, Epsilon, f.accept)
		case ast.Void:
			// no edge at all: the accept state is unreachable
		}
		return f
	case *ast.Concat:
		a := b.build(x.Left)
		c := b.build(x.Right)
		b.edge(a.accept, Epsilon, c.start)
		return frag{start: a.start, accept: c.accept}
	case *ast.Union:
		a := b.build(x.Left)
		c := b.build(x.Right)
		f := frag{start: b.fresh(), accept: b.fresh()}
		b.edge(f.start, Epsilon, a.start)
		b.edge(f.start, Epsilon, c.start)
		b.edge(a.accept, Epsilon, f.accept)
		b.edge(c.accept, Epsilon, f.accept)
		return f
	case *ast.Star:
		a := b.build(x.Child)
		f := frag{start: b.fresh(), accept: b.fresh()}
		b.edge(f.start, Epsilon, a.start)
		b.edge(a.accept, Epsilon, f.accept)
		b.edge(f.start, Epsilon, f.accept) // zero iterations
		b.edge(a.accept, Epsilon, a.start) // repeat
		return f
	case *ast.Plus:
		a := b.build(x.Child)
		f := frag{start: b.fresh(), accept: b.fresh()}
		b.edge(f.start, Epsilon, a.start)
		b.edge(a.accept, Epsilon, f.accept)
		b.edge(a.accept, Epsilon, a.start) // repeat, but no zero case
		return f
	case *ast.Maybe:
		a := b.build(x.Child)
		b.edge(a.start, Epsilon, a.accept) // skip case, endpoints reused
		return a
	}
	panic(fmt.Sprintf("unreachable expression node %T", e))
}

// computeClosures precomputes the epsilon closure of every state by
// depth-first reachability over epsilon edges. The visited set is scoped to
// each computation.
func (n *NFA) computeClosures() {
	eps := make(map[int][]int)
	it := n.transitions.Iterator()
	for it.Next() {
		if t := it.Value().(*Transition); t.Sym == Epsilon {
			eps[t.From] = append(eps[t.From], t.To)
		}
	}
	n.closures = make(map[int]intset.Set, n.states.Size())
	for _, x := range n.states.Values() {
		s := x.(int)
		visited := make(map[int]bool)
		closureDFS(s, eps, visited)
		ids := make([]int, 0, len(visited))
		for id := range visited {
			ids = append(ids, id)
		}
		n.closures[s] = intset.New(ids...)
	}
}

func closureDFS(s int, eps map[int][]int, visited map[int]bool) {
	if visited[s] {
		return
	}
	visited[s] = true
	for _, t := range eps[s] {
		closureDFS(t, eps, visited)
	}
}
