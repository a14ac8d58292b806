package intset

import (
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// Set is an ordered set of integers, intended for small sets of state ids.
// The zero value is the empty set. Sets are values: operations return a new
// set (or the receiver unchanged) and never mutate shared storage.
type Set struct {
	ids []int
}

// New creates a set from the given ids, dropping duplicates.
func New(ids ...int) Set {
	sorted := make([]int, len(ids))
	copy(sorted, ids)
	slices.Sort(sorted)
	s := Set{ids: sorted[:0]}
	for _, id := range sorted {
		n := len(s.ids)
		if n == 0 || s.ids[n-1] != id {
			s.ids = append(s.ids, id)
		}
	}
	return s
}

// Add returns a set containing id in addition to the receiver's members.
func (s Set) Add(id int) Set {
	at, found := slices.BinarySearch(s.ids, id)
	if found {
		return s
	}
	ids := make([]int, 0, len(s.ids)+1)
	ids = append(ids, s.ids[:at]...)
	ids = append(ids, id)
	ids = append(ids, s.ids[at:]...)
	return Set{ids: ids}
}

// Contains tells if id is a member of the set.
func (s Set) Contains(id int) bool {
	_, found := slices.BinarySearch(s.ids, id)
	return found
}

// Union returns the set of members of s and other.
func (s Set) Union(other Set) Set {
	if len(other.ids) == 0 {
		return s
	}
	if len(s.ids) == 0 {
		return other
	}
	ids := make([]int, 0, len(s.ids)+len(other.ids))
	i, j := 0, 0
	for i < len(s.ids) && j < len(other.ids) {
		switch {
		case s.ids[i] < other.ids[j]:
			ids = append(ids, s.ids[i])
			i++
		case s.ids[i] > other.ids[j]:
			ids = append(ids, other.ids[j])
			j++
		default:
			ids = append(ids, s.ids[i])
			i++
			j++
		}
	}
	ids = append(ids, s.ids[i:]...)
	ids = append(ids, other.ids[j:]...)
	return Set{ids: ids}
}

// Equal tells if both sets have exactly the same members.
func (s Set) Equal(other Set) bool {
	return slices.Equal(s.ids, other.ids)
}

// Len returns the number of members.
func (s Set) Len() int {
	return len(s.ids)
}

// Empty tells if the set has no members.
func (s Set) Empty() bool {
	return len(s.ids) == 0
}

// Values returns the members in ascending order. The returned slice is a copy.
func (s Set) Values() []int {
	ids := make([]int, len(s.ids))
	copy(ids, s.ids)
	return ids
}

// Each calls f for every member, in ascending order.
func (s Set) Each(f func(id int)) {
	for _, id := range s.ids {
		f(id)
	}
}

// Key returns a canonical textual form of the set, usable as a map key.
// Two sets have the same key iff they are Equal. The empty set's key is "".
func (s Set) Key() string {
	if len(s.ids) == 0 {
		return ""
	}
	var b strings.Builder
	for i, id := range s.ids {
		if i > 0 {
			b.WriteByte('_')
		}
		b.WriteString(strconv.Itoa(id))
	}
	return b.String()
}

func (s Set) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, id := range s.ids {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(id))
	}
	b.WriteByte('}')
	return b.String()
}
