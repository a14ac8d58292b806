package dfa

// TableNull marks a transition not yet recorded. A finished automaton has no
// null cells left.
const TableNull int32 = -1

// Table is the transition function of a deterministic automaton, stored as a
// dense states × alphabet matrix of int32 state ids. Construct with
//
//     T := newTable(0, 2)     // no states yet, alphabet of 2 symbols
//     s := T.appendRow()      // admit a state
//     T.set(s, 1, 0)          // state s goes to state 0 on symbol #1
//     v := T.At(s, 0)         // returns TableNull, nothing recorded yet
//
// Subset construction guarantees near-total rows, so a sparse triplet
// encoding would buy nothing here; rows are appended as states are
// discovered and cells overwritten in place.
type Table struct {
	cells  []int32
	rowcnt int
	colcnt int
}

// newTable creates a table for m states over an alphabet of n symbols, with
// every cell null.
func newTable(m, n int) *Table {
	t := &Table{
		cells:  make([]int32, m*n),
		rowcnt: m,
		colcnt: n,
	}
	for i := range t.cells {
		t.cells[i] = TableNull
	}
	return t
}

// M returns the row (state) count.
func (t *Table) M() int {
	return t.rowcnt
}

// N returns the column (alphabet) count.
func (t *Table) N() int {
	return t.colcnt
}

// At returns the target state recorded for (state i, symbol #j), or
// TableNull. Out-of-range indices are null as well.
func (t *Table) At(i, j int) int32 {
	if i < 0 || i >= t.rowcnt || j < 0 || j >= t.colcnt {
		return TableNull
	}
	return t.cells[i*t.colcnt+j]
}

// ValueCount returns the number of non-null cells.
func (t *Table) ValueCount() int {
	n := 0
	for _, v := range t.cells {
		if v != TableNull {
			n++
		}
	}
	return n
}

// set records a transition.
func (t *Table) set(i, j int, target int32) {
	t.cells[i*t.colcnt+j] = target
}

// appendRow grows the table by one all-null row and returns its index.
func (t *Table) appendRow() int {
	for j := 0; j < t.colcnt; j++ {
		t.cells = append(t.cells, TableNull)
	}
	t.rowcnt++
	return t.rowcnt - 1
}

// fill replaces every remaining null cell with target and returns how many
// cells were patched.
func (t *Table) fill(target int32) int {
	patched := 0
	for i, v := range t.cells {
		if v == TableNull {
			t.cells[i] = target
			patched++
		}
	}
	return patched
}
