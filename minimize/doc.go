// Package minimize wires the pipeline together and synthesizes the
// reduced automaton: reachability pruning, distinguishability marking,
// equivalence-class extraction, and class-based reconstruction.
//
// What
//
//   - Minimize runs: validate (done at construction) → reach.Reduce →
//     marking.Compute → partition.FromTable → rebuild, and returns a
//     Result holding the minimized automaton, the pruned (unreachable)
//     states, the equivalence classes, and the full marking trace.
//   - Each class becomes one state, named by its members in declared
//     order wrapped in braces: {q0,q1}. The start class is the class of
//     the original start state; a class is accepting iff it contains an
//     accepting state (the accepting split guarantees no class mixes
//     accepting and non-accepting members).
//   - The transition of class C on symbol a comes from the class's
//     first member r: if δ(r,a) is defined, the target is δ(r,a)'s
//     class. That all members agree is guaranteed by the theorem, not
//     by construction — so it is verified, not assumed: every other
//     member's defined move must land in that same target class.
//
// Partial inputs
//
//	The skip policy (see package marking) can merge states whose
//	defined-move sets differ. The merged class keeps the
//	representative's row only — partial rows are never unioned — so
//	language preservation is guaranteed for total automata, while
//	partial automata reproduce the original minimizer's behavior
//	rather than the textbook guarantee.
//
// Determinism
//
//	Identical input produces byte-identical output: class member order,
//	class order, naming, accepting order, and the transition map all
//	derive from the declared state order of the input.
//
// Failure modes
//
//	All errors are terminal for the call; the computation is
//	deterministic, so retrying reproduces the identical error, and no
//	partial result is ever returned.
//
// Usage
//
//	res, err := minimize.Minimize(a)
//	if err != nil {
//	    // minimize.ErrAutomatonNil, minimize.ErrNameCollision,
//	    // or minimize.ErrInvariantViolation
//	}
//	fmt.Println(res.Automaton.NumStates(), "states, pruned:", res.Pruned)
//
// Errors
//
//   - ErrAutomatonNil       if the automaton pointer is nil.
//   - ErrNameCollision      if two distinct classes would receive the
//     same canonical name; minimization must not silently merge them.
//   - ErrInvariantViolation if class members disagree on a target class
//     — an upstream bug, surfaced loudly instead of emitting an
//     automaton derived from an arbitrary representative.
package minimize
