// Package dfa implements the immutable Automaton value type: eager
// validation, dense interning of states and symbols, and O(1) read-only
// transition lookups.
package dfa

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Automaton is a deterministic finite automaton, immutable after New.
//
// States and symbols are interned to dense indices in declared order;
// the transition function is stored as a delta table with NoMove for
// undefined entries.
type Automaton struct {
	states    []string
	alphabet  []string
	stateIdx  map[string]int
	symbolIdx map[string]int
	start     int
	accepting *bitset.BitSet
	delta     [][]int // delta[state][symbol] = target index, or NoMove
}

// New builds and validates an Automaton from its components.
//
// Validation (all failures wrap ErrMalformedAutomaton):
//  1. states must be non-empty, with non-empty, distinct identifiers;
//  2. alphabet symbols must be non-empty and distinct;
//  3. start must be a declared state;
//  4. every accepting identifier must be a declared state;
//  5. every transition source, symbol, and destination must be known;
//  6. with WithRequireTotal, every (state, symbol) must have a move.
//
// The input slices and maps are copied; the caller keeps ownership.
func New(states, alphabet []string, start string, accepting []string, transitions map[string]map[string]string, opts ...Option) (*Automaton, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if len(states) == 0 {
		return nil, fmt.Errorf("%w: no states", ErrMalformedAutomaton)
	}
	stateIdx := make(map[string]int, len(states))
	for i, id := range states {
		if id == "" {
			return nil, fmt.Errorf("%w: empty state identifier at position %d", ErrMalformedAutomaton, i)
		}
		if _, dup := stateIdx[id]; dup {
			return nil, fmt.Errorf("%w: duplicate state %q", ErrMalformedAutomaton, id)
		}
		stateIdx[id] = i
	}

	symbolIdx := make(map[string]int, len(alphabet))
	for i, sym := range alphabet {
		if sym == "" {
			return nil, fmt.Errorf("%w: empty alphabet symbol at position %d", ErrMalformedAutomaton, i)
		}
		if _, dup := symbolIdx[sym]; dup {
			return nil, fmt.Errorf("%w: duplicate alphabet symbol %q", ErrMalformedAutomaton, sym)
		}
		symbolIdx[sym] = i
	}

	startIdx, ok := stateIdx[start]
	if !ok {
		return nil, fmt.Errorf("%w: start state %q not in states", ErrMalformedAutomaton, start)
	}

	acc := bitset.New(uint(len(states)))
	for _, id := range accepting {
		i, known := stateIdx[id]
		if !known {
			return nil, fmt.Errorf("%w: accepting state %q not in states", ErrMalformedAutomaton, id)
		}
		acc.Set(uint(i))
	}

	// Dense delta table, NoMove everywhere a transition is undefined.
	delta := make([][]int, len(states))
	for i := range delta {
		row := make([]int, len(alphabet))
		for k := range row {
			row[k] = NoMove
		}
		delta[i] = row
	}
	for src, moves := range transitions {
		i, known := stateIdx[src]
		if !known {
			return nil, fmt.Errorf("%w: transition source %q not in states", ErrMalformedAutomaton, src)
		}
		for sym, dst := range moves {
			k, knownSym := symbolIdx[sym]
			if !knownSym {
				return nil, fmt.Errorf("%w: transition symbol %q from %q not in alphabet", ErrMalformedAutomaton, sym, src)
			}
			j, knownDst := stateIdx[dst]
			if !knownDst {
				return nil, fmt.Errorf("%w: transition destination %q from %q on %q not in states", ErrMalformedAutomaton, dst, src, sym)
			}
			delta[i][k] = j
		}
	}

	if o.RequireTotal {
		for i, row := range delta {
			for k, j := range row {
				if j == NoMove {
					return nil, fmt.Errorf("%w: no move from %q on %q (total automaton required)", ErrMalformedAutomaton, states[i], alphabet[k])
				}
			}
		}
	}

	a := &Automaton{
		states:    append([]string(nil), states...),
		alphabet:  append([]string(nil), alphabet...),
		stateIdx:  stateIdx,
		symbolIdx: symbolIdx,
		start:     startIdx,
		accepting: acc,
		delta:     delta,
	}

	return a, nil
}

// NumStates returns the number of declared states.
func (a *Automaton) NumStates() int { return len(a.states) }

// NumSymbols returns the alphabet size.
func (a *Automaton) NumSymbols() int { return len(a.alphabet) }

// States returns the state identifiers in declared order (a copy).
func (a *Automaton) States() []string {
	return append([]string(nil), a.states...)
}

// Alphabet returns the alphabet symbols in declared order (a copy).
func (a *Automaton) Alphabet() []string {
	return append([]string(nil), a.alphabet...)
}

// Start returns the start state identifier.
func (a *Automaton) Start() string { return a.states[a.start] }

// StartIndex returns the dense index of the start state.
func (a *Automaton) StartIndex() int { return a.start }

// Index returns the dense index of a state identifier.
func (a *Automaton) Index(id string) (int, bool) {
	i, ok := a.stateIdx[id]
	return i, ok
}

// StateAt returns the identifier of the state at dense index i.
// Panics if i is out of range, like any slice access.
func (a *Automaton) StateAt(i int) string { return a.states[i] }

// SymbolIndex returns the dense index of an alphabet symbol.
func (a *Automaton) SymbolIndex(sym string) (int, bool) {
	k, ok := a.symbolIdx[sym]
	return k, ok
}

// SymbolAt returns the alphabet symbol at dense index k.
func (a *Automaton) SymbolAt(k int) string { return a.alphabet[k] }

// IsAccepting reports whether the given state identifier is accepting.
// Unknown identifiers are simply not accepting.
func (a *Automaton) IsAccepting(id string) bool {
	i, ok := a.stateIdx[id]
	return ok && a.accepting.Test(uint(i))
}

// IsAcceptingIndex reports whether the state at dense index i is accepting.
func (a *Automaton) IsAcceptingIndex(i int) bool {
	return a.accepting.Test(uint(i))
}

// AcceptingStates returns the accepting identifiers in declared order.
func (a *Automaton) AcceptingStates() []string {
	out := make([]string, 0, a.accepting.Count())
	for i, id := range a.states {
		if a.accepting.Test(uint(i)) {
			out = append(out, id)
		}
	}

	return out
}

// Step performs one transition from a state on a symbol.
// The second return value is false when no move is defined; Step never
// fails on unknown identifiers, it reports "no move" for them as well.
func (a *Automaton) Step(state, symbol string) (string, bool) {
	i, ok := a.stateIdx[state]
	if !ok {
		return "", false
	}
	k, ok := a.symbolIdx[symbol]
	if !ok {
		return "", false
	}
	j := a.delta[i][k]
	if j == NoMove {
		return "", false
	}

	return a.states[j], true
}

// StepIndex performs one transition on dense indices, returning NoMove
// when the transition function has no entry.
func (a *Automaton) StepIndex(state, symbol int) int {
	return a.delta[state][symbol]
}

// Accepts runs the automaton on the given input word from the start
// state. A missing move rejects immediately (there is no implicit sink).
func (a *Automaton) Accepts(word ...string) bool {
	cur := a.start
	for _, sym := range word {
		k, ok := a.symbolIdx[sym]
		if !ok {
			return false
		}
		next := a.delta[cur][k]
		if next == NoMove {
			return false
		}
		cur = next
	}

	return a.accepting.Test(uint(cur))
}

// TransitionMap materializes the transition function as nested maps,
// suitable for serialization. Only defined moves appear. The result is
// freshly allocated on every call.
func (a *Automaton) TransitionMap() map[string]map[string]string {
	out := make(map[string]map[string]string, len(a.states))
	for i, src := range a.states {
		var row map[string]string
		for k, sym := range a.alphabet {
			j := a.delta[i][k]
			if j == NoMove {
				continue
			}
			if row == nil {
				row = make(map[string]string, len(a.alphabet))
			}
			row[sym] = a.states[j]
		}
		if row != nil {
			out[src] = row
		}
	}

	return out
}
