// Package partition extracts equivalence classes from a saturated
// marking table using a disjoint-set (union-find) structure.
package partition

import (
	"errors"

	"github.com/katalvlaran/dfamin/marking"
)

// ErrNilTable is returned if a nil table pointer is passed.
var ErrNilTable = errors.New("partition: table is nil")

// Partition groups the states of one automaton into equivalence
// classes. Immutable after FromTable.
type Partition struct {
	classes [][]string
	classOf map[string]int
}

// FromTable builds the partition induced by t: for every unmarked
// canonical pair the two states are merged into one class.
func FromTable(t *marking.Table) (*Partition, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	a := t.Automaton()
	n := a.NumStates()

	// Disjoint-set over dense indices: parent[i] == i for roots,
	// union by size with iterative path compression.
	parent := make([]int, n)
	size := make([]int, n)
	for i := range parent {
		parent[i] = i
		size[i] = 1
	}
	find := func(u int) int {
		for parent[u] != u {
			// Path compression: point u at its grandparent.
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}
	union := func(u, v int) {
		ru, rv := find(u), find(v)
		if ru == rv {
			return
		}
		if size[ru] < size[rv] {
			ru, rv = rv, ru
		}
		parent[rv] = ru
		size[ru] += size[rv]
	}

	// One union per equivalent (unmarked) pair.
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			if !t.MarkedIndex(i, j) {
				union(i, j)
			}
		}
	}

	// Collect classes ordered by smallest member index; members end up
	// in declared order because i ascends.
	classIdx := make(map[int]int, n)
	p := &Partition{classOf: make(map[string]int, n)}
	for i := 0; i < n; i++ {
		root := find(i)
		c, seen := classIdx[root]
		if !seen {
			c = len(p.classes)
			classIdx[root] = c
			p.classes = append(p.classes, nil)
		}
		p.classes[c] = append(p.classes[c], a.StateAt(i))
		p.classOf[a.StateAt(i)] = c
	}

	return p, nil
}

// NumClasses returns the number of equivalence classes.
func (p *Partition) NumClasses() int { return len(p.classes) }

// Classes returns the classes ordered by their smallest declared state
// index, each class listing members in declared order. The outer slice
// is a copy; the inner slices are shared and must not be mutated.
func (p *Partition) Classes() [][]string {
	return append([][]string(nil), p.classes...)
}

// ClassOf returns the class index of a state identifier.
func (p *Partition) ClassOf(id string) (int, bool) {
	c, ok := p.classOf[id]
	return c, ok
}
