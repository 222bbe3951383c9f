// Package dfa defines the Automaton value type shared by every stage of
// the minimization pipeline: an immutable deterministic finite automaton
// with an ordered state list, a finite alphabet, a start state, an
// accepting set, and a partial transition function.
//
// What
//
//   - New validates all components eagerly and interns every state and
//     symbol to a dense integer index, so later stages perform O(1)
//     array lookups instead of string searches.
//   - The transition function is partial: a missing (state, symbol)
//     entry means "no defined move", not an implicit reject sink.
//     Step reports the absence via its second return value; StepIndex
//     returns NoMove.
//   - All getters either return scalars or defensive copies; an
//     Automaton never changes after New returns. Transformations
//     (pruning, minimizing) always build a fresh value.
//
// Why
//
//   - The declared state order is load-bearing: it fixes the canonical
//     form of unordered state pairs, the member order inside equivalence
//     classes, and ultimately the byte-identical output guarantee of the
//     whole pipeline. Keeping order and interning in one place lets the
//     algorithm packages stay order-free.
//
// Determinism
//
//	States() and Alphabet() always iterate in declared order.
//	AcceptingStates() is the declared order filtered to accepting.
//
// Concurrency
//
//	Immutable after construction; safe for concurrent readers without
//	locks. There is deliberately no mutation API.
//
// Complexity (n = |states|, s = |alphabet|)
//
//   - New:  O(n·s) time and space (dense delta table).
//   - All queries: O(1), except getters returning copies (O(n) or O(s)).
//
// Usage
//
//	a, err := dfa.New(
//	    []string{"q0", "q1", "q2"},
//	    []string{"a", "b"},
//	    "q0",
//	    []string{"q2"},
//	    map[string]map[string]string{
//	        "q0": {"a": "q1", "b": "q0"},
//	        "q1": {"a": "q2", "b": "q0"},
//	        "q2": {"a": "q2", "b": "q2"},
//	    },
//	)
//	if err != nil {
//	    // errors.Is(err, dfa.ErrMalformedAutomaton)
//	}
//	next, ok := a.Step("q0", "a") // "q1", true
//
// Errors
//
//   - ErrMalformedAutomaton  if states are empty or duplicated, start or
//     an accepting state is unknown, a transition references an unknown
//     state or symbol, or WithRequireTotal is set and a move is missing.
package dfa
