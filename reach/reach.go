// Package reach implements breadth-first reachability over an
// Automaton's transition function and the projection of the automaton
// onto its reachable subset.
package reach

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/dfamin/dfa"
)

// walker encapsulates mutable traversal state for one run.
type walker struct {
	a       *dfa.Automaton
	opts    Options
	queue   []int
	visited *bitset.BitSet
}

// Reachable returns the identifiers of all states reachable from the
// start state, in declared order. The start state is always included.
func Reachable(a *dfa.Automaton, opts ...Option) ([]string, error) {
	visited, err := reachable(a, opts)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, visited.Count())
	for i := 0; i < a.NumStates(); i++ {
		if visited.Test(uint(i)) {
			out = append(out, a.StateAt(i))
		}
	}

	return out, nil
}

// Reduce projects a onto its reachable state set and returns the pruned
// automaton as a fresh value; the input is left untouched.
func Reduce(a *dfa.Automaton, opts ...Option) (*dfa.Automaton, error) {
	visited, err := reachable(a, opts)
	if err != nil {
		return nil, err
	}

	states := make([]string, 0, visited.Count())
	accepting := make([]string, 0, visited.Count())
	transitions := make(map[string]map[string]string, visited.Count())
	for i := 0; i < a.NumStates(); i++ {
		if !visited.Test(uint(i)) {
			continue
		}
		id := a.StateAt(i)
		states = append(states, id)
		if a.IsAcceptingIndex(i) {
			accepting = append(accepting, id)
		}
		var row map[string]string
		for k := 0; k < a.NumSymbols(); k++ {
			j := a.StepIndex(i, k)
			if j == dfa.NoMove {
				continue
			}
			if row == nil {
				row = make(map[string]string, a.NumSymbols())
			}
			row[a.SymbolAt(k)] = a.StateAt(j)
		}
		if row != nil {
			transitions[id] = row
		}
	}

	return dfa.New(states, a.Alphabet(), a.Start(), accepting, transitions)
}

// reachable runs the BFS and returns the visited set as a bitset over
// dense state indices.
func reachable(a *dfa.Automaton, opts []Option) (*bitset.BitSet, error) {
	if a == nil {
		return nil, ErrAutomatonNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	w := &walker{
		a:       a,
		opts:    o,
		queue:   make([]int, 0, a.NumStates()),
		visited: bitset.New(uint(a.NumStates())),
	}
	w.enqueue(a.StartIndex())
	w.loop()

	return w.visited, nil
}

// enqueue marks i visited and adds it to the queue.
func (w *walker) enqueue(i int) {
	w.visited.Set(uint(i))
	w.queue = append(w.queue, i)
}

// loop processes the queue until empty, expanding each state once.
func (w *walker) loop() {
	for len(w.queue) > 0 {
		i := w.queue[0]
		w.queue = w.queue[1:]
		w.opts.OnVisit(w.a.StateAt(i))

		// Follow every defined move, in alphabet order.
		for k := 0; k < w.a.NumSymbols(); k++ {
			j := w.a.StepIndex(i, k)
			if j == dfa.NoMove || w.visited.Test(uint(j)) {
				continue
			}
			w.enqueue(j)
		}
	}
}
