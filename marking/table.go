// Package marking implements the distinguishability Table and its two
// marking phases (accepting split + transition-driven fixpoint closure).
package marking

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/dfamin/dfa"
)

// Trace reasons, one per marking rule.
const (
	reasonAcceptingSplit = "one state is accepting, the other is not"
	reasonSuccessor      = "a symbol leads to a pair already marked"
)

// Table is the distinguishability relation over all C(n,2) canonical
// state pairs of one automaton. A set bit means "distinguishable";
// bits are only ever set, never cleared (monotonic marking).
type Table struct {
	a      *dfa.Automaton
	n      int
	bits   *bitset.BitSet // triangular: pair (i<j) at bit j*(j-1)/2+i
	trace  []Phase
	passes int
}

// idxPair is a canonical pair in dense-index form (i < j).
type idxPair struct {
	i, j int
}

// Compute builds the pair universe for a and saturates the marking to
// its fixpoint. The automaton should already be reduced to its
// reachable states (see package reach); Compute does not prune.
//
// This stage cannot fail on a validated automaton: the pair set is
// finite and marking is monotonic, so termination is guaranteed.
func Compute(a *dfa.Automaton, opts ...Option) (*Table, error) {
	if a == nil {
		return nil, ErrAutomatonNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := a.NumStates()
	t := &Table{
		a:    a,
		n:    n,
		bits: bitset.New(uint(n * (n - 1) / 2)),
	}

	seeds := t.markAcceptingSplit()
	if o.Worklist {
		t.saturateWorklist(seeds)
	} else {
		t.saturatePasses()
	}

	return t, nil
}

// Marked reports whether the pair (p, q) is distinguishable. The order
// of p and q is irrelevant; a state paired with itself is unmarked.
func (t *Table) Marked(p, q string) (bool, error) {
	i, ok := t.a.Index(p)
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrTableMismatch, p)
	}
	j, ok := t.a.Index(q)
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrTableMismatch, q)
	}
	if i == j {
		return false, nil
	}

	return t.MarkedIndex(i, j), nil
}

// MarkedIndex reports distinguishability for two distinct dense indices,
// in either order. Panics on out-of-range indices, like a slice access.
func (t *Table) MarkedIndex(i, j int) bool {
	if i > j {
		i, j = j, i
	}

	return t.bits.Test(triIndex(i, j))
}

// Pairs returns the size of the pair universe, C(n,2).
func (t *Table) Pairs() int { return t.n * (t.n - 1) / 2 }

// Passes returns the number of Phase B sweeps executed (including the
// final sweep that marked nothing); 1 under the worklist strategy.
func (t *Table) Passes() int { return t.passes }

// Trace returns the ordered marking history: the accepting-split phase
// first, then one phase per productive Phase B sweep (or a single
// worklist phase). The slice is shared; treat it as read-only.
func (t *Table) Trace() []Phase { return t.trace }

// Automaton returns the automaton this table was computed over.
func (t *Table) Automaton() *dfa.Automaton { return t.a }

// triIndex maps a canonical pair (i < j) to its bit position in the
// lower-triangular layout.
func triIndex(i, j int) uint {
	return uint(j*(j-1)/2 + i)
}

// set marks the canonical pair (i < j).
func (t *Table) set(i, j int) {
	t.bits.Set(triIndex(i, j))
}

// pair builds the identifier form of a canonical index pair.
func (t *Table) pair(i, j int) Pair {
	return Pair{P: t.a.StateAt(i), Q: t.a.StateAt(j)}
}

// markAcceptingSplit runs Phase A: mark every pair with exactly one
// accepting member. Returns the marked pairs as worklist seeds.
// The phase is always traced, even when it marks nothing.
func (t *Table) markAcceptingSplit() []idxPair {
	var seeds []idxPair
	marks := make([]Mark, 0)
	for i := 0; i < t.n-1; i++ {
		for j := i + 1; j < t.n; j++ {
			if t.a.IsAcceptingIndex(i) == t.a.IsAcceptingIndex(j) {
				continue
			}
			t.set(i, j)
			seeds = append(seeds, idxPair{i, j})
			marks = append(marks, Mark{Pair: t.pair(i, j)})
		}
	}
	t.trace = append(t.trace, Phase{
		Label:  "accepting split",
		Marks:  marks,
		Reason: reasonAcceptingSplit,
	})

	return seeds
}

// saturatePasses runs Phase B as repeated full-table sweeps until a
// sweep marks nothing new.
//
// Policy: a symbol with either move undefined is skipped — a partial
// transition never distinguishes a pair by itself.
func (t *Table) saturatePasses() {
	for {
		t.passes++
		var marks []Mark
		for i := 0; i < t.n-1; i++ {
			for j := i + 1; j < t.n; j++ {
				if t.bits.Test(triIndex(i, j)) {
					continue
				}
				if m, ok := t.scanSymbols(i, j); ok {
					t.set(i, j)
					marks = append(marks, m)
				}
			}
		}
		if len(marks) == 0 {
			return
		}
		t.trace = append(t.trace, Phase{
			Label:  fmt.Sprintf("pass %d", t.passes),
			Marks:  marks,
			Reason: reasonSuccessor,
		})
	}
}

// scanSymbols looks for the first symbol whose successor pair is already
// marked. One distinguishing symbol is sufficient.
func (t *Table) scanSymbols(i, j int) (Mark, bool) {
	for k := 0; k < t.a.NumSymbols(); k++ {
		di := t.a.StepIndex(i, k)
		dj := t.a.StepIndex(j, k)
		if di == dfa.NoMove || dj == dfa.NoMove {
			// skip-don't-distinguish: partial moves are not evidence
			continue
		}
		if di == dj {
			continue
		}
		lo, hi := di, dj
		if lo > hi {
			lo, hi = hi, lo
		}
		if t.bits.Test(triIndex(lo, hi)) {
			return Mark{
				Pair:   t.pair(i, j),
				Symbol: t.a.SymbolAt(k),
				Via:    t.pair(lo, hi),
			}, true
		}
	}

	return Mark{}, false
}

// saturateWorklist runs Phase B as a queue over the inverse transition
// relation: when (r, s) is marked, every pair that steps into it on some
// symbol becomes markable. Functionally equivalent to saturatePasses —
// the fixpoint is scan-order independent — but O(n²·s) instead of O(n⁴·s).
func (t *Table) saturateWorklist(seeds []idxPair) {
	t.passes = 1

	// Inverse delta: inv[k][target] = sources stepping into target on k.
	inv := make([][][]int, t.a.NumSymbols())
	for k := range inv {
		inv[k] = make([][]int, t.n)
	}
	for i := 0; i < t.n; i++ {
		for k := 0; k < t.a.NumSymbols(); k++ {
			if j := t.a.StepIndex(i, k); j != dfa.NoMove {
				inv[k][j] = append(inv[k][j], i)
			}
		}
	}

	queue := append([]idxPair(nil), seeds...)
	var marks []Mark
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for k := 0; k < t.a.NumSymbols(); k++ {
			for _, p := range inv[k][cur.i] {
				for _, q := range inv[k][cur.j] {
					if p == q {
						continue
					}
					lo, hi := p, q
					if lo > hi {
						lo, hi = hi, lo
					}
					if t.bits.Test(triIndex(lo, hi)) {
						continue
					}
					t.set(lo, hi)
					marks = append(marks, Mark{
						Pair:   t.pair(lo, hi),
						Symbol: t.a.SymbolAt(k),
						Via:    t.pair(cur.i, cur.j),
					})
					queue = append(queue, idxPair{lo, hi})
				}
			}
		}
	}
	if len(marks) > 0 {
		t.trace = append(t.trace, Phase{
			Label:  "worklist",
			Marks:  marks,
			Reason: reasonSuccessor,
		})
	}
}
