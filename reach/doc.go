// Package reach eliminates unreachable states: it projects an Automaton
// onto the subset of states reachable from the start state.
//
// What
//
//   - Reachable performs a breadth-first traversal from the start state,
//     following every symbol whose transition is defined, and returns
//     the visited identifiers in declared order.
//   - Reduce builds a fresh Automaton from the visited set: states is
//     the declared order filtered to visited, accepting is intersected
//     with visited, and only transitions with a visited source survive
//     (destinations outside the visited set cannot occur, since
//     reachability is transitively closed).
//   - The start state is always retained, even with an empty alphabet.
//
// Why
//
//	The table-filling algorithm is only correct, and its pair count only
//	minimal, over reachable states. Unreachable states can look
//	"equivalent" in ways irrelevant to the accepted language; pruning
//	them first avoids wasted pair work and spurious output states.
//
// Determinism
//
//	BFS enqueues successors in alphabet order, and the reduced state
//	list preserves the declared order of the input, so repeated runs
//	produce identical automata.
//
// Complexity (n = |states|, s = |alphabet|)
//
//   - Time:   O(n·s)  (each state expanded once, one lookup per symbol)
//   - Memory: O(n)    (queue + visited bitset)
//
// Usage
//
//	pruned, err := reach.Reduce(a)
//	if err != nil {
//	    // reach.ErrAutomatonNil
//	}
//
//	// Observe the traversal:
//	ids, _ := reach.Reachable(a, reach.WithOnVisit(func(id string) {
//	    fmt.Println("visited", id)
//	}))
//
// Errors
//
//   - ErrAutomatonNil  if the automaton pointer is nil.
package reach
