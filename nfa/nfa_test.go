package nfa

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func mustBuild(t *testing.T, prenex string) *NFA {
	t.Helper()
	n, err := FromPrenex(prenex)
	if err != nil {
		t.Fatalf("FromPrenex(%q) failed: %v", prenex, err)
	}
	return n
}

func TestFragmentShapes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexer.fa")
	defer teardown()
	//
	cases := []struct {
		prenex      string
		states      int
		transitions int
	}{
		{"a", 2, 1},
		{"eps", 2, 1},
		{"void", 2, 0},
		{"CONCAT a b", 4, 3},
		{"UNION a b", 6, 6},
		{"STAR a", 4, 5},
		{"PLUS a", 4, 4},
		{"MAYBE a", 2, 2},
	}
	for _, c := range cases {
		n := mustBuild(t, c.prenex)
		if n.NumStates() != c.states {
			t.Errorf("%q: expected %d states, have %d", c.prenex, c.states, n.NumStates())
		}
		if n.NumTransitions() != c.transitions {
			t.Errorf("%q: expected %d transitions, have %d", c.prenex, c.transitions, n.NumTransitions())
		}
	}
}

func TestThompsonInvariant(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexer.fa")
	defer teardown()
	//
	// one start, one accept, and all ids allocated by this build
	n := mustBuild(t, "UNION CONCAT a b STAR c")
	ids := n.States()
	for i, id := range ids {
		if id != i {
			t.Fatalf("Expected dense ids starting at 0, have %v", ids)
		}
	}
	if !n.Closure(n.Start()).Contains(n.Start()) {
		t.Errorf("Closures must be self-inclusive")
	}
}

func TestAllocatorPerBuild(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexer.fa")
	defer teardown()
	//
	// two builds of the same expression are structurally identical: the id
	// allocator is owned by the build, not shared process-wide
	a := mustBuild(t, "CONCAT a STAR b")
	b := mustBuild(t, "CONCAT a STAR b")
	if a.NumStates() != b.NumStates() || a.Start() != b.Start() || a.Accept() != b.Accept() {
		t.Errorf("Expected independent builds to be structurally identical")
	}
}

func TestClosureZeroCase(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexer.fa")
	defer teardown()
	//
	star := mustBuild(t, "STAR a")
	if !star.Closure(star.Start()).Contains(star.Accept()) {
		t.Errorf("STAR must epsilon-reach its accept state")
	}
	plus := mustBuild(t, "PLUS a")
	if plus.Closure(plus.Start()).Contains(plus.Accept()) {
		t.Errorf("PLUS must not epsilon-reach its accept state")
	}
}

func TestAccepts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexer.fa")
	defer teardown()
	//
	cases := []struct {
		prenex string
		yes    []string
		no     []string
	}{
		{"a", []string{"a"}, []string{"", "b", "aa"}},
		{"eps", []string{""}, []string{"a"}},
		{"void", nil, []string{"", "a"}},
		{"CONCAT a b", []string{"ab"}, []string{"", "a", "b", "ba", "abb"}},
		{"UNION a b", []string{"a", "b"}, []string{"", "ab", "c"}},
		{"STAR a", []string{"", "a", "aaaa"}, []string{"b", "ab"}},
		{"PLUS a", []string{"a", "aa"}, []string{"", "b"}},
		{"MAYBE a", []string{"", "a"}, []string{"aa"}},
		{"CONCAT STAR UNION 0 1 x", []string{"x", "0x", "1101x"}, []string{"", "x0", "2x"}},
	}
	for _, c := range cases {
		n := mustBuild(t, c.prenex)
		for _, input := range c.yes {
			if !n.Accepts(input) {
				t.Errorf("%q: expected to accept %q", c.prenex, input)
			}
		}
		for _, input := range c.no {
			if n.Accepts(input) {
				t.Errorf("%q: expected to reject %q", c.prenex, input)
			}
		}
	}
}

func TestAlphabet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexer.fa")
	defer teardown()
	//
	n := mustBuild(t, "UNION CONCAT b a STAR b")
	alpha := n.Alphabet()
	if len(alpha) != 2 || alpha[0] != 'a' || alpha[1] != 'b' {
		t.Errorf("Expected alphabet [a b], have %q", string(alpha))
	}
}

func TestDot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexer.fa")
	defer teardown()
	//
	n := mustBuild(t, "UNION a eps")
	var sb strings.Builder
	if err := n.Dot(&sb); err != nil {
		t.Fatal(err)
	}
	out := sb.String()
	for _, want := range []string{"digraph NFA", "rankdir=LR", "doublecircle", `label="a"`, `label="ε"`} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected dot output to contain %q", want)
		}
	}
}
