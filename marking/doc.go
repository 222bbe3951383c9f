// Package marking implements the table-filling (Moore) distinguishability
// fixpoint: it decides, for every unordered pair of states, whether some
// input word is accepted from one state and rejected from the other.
//
// What
//
//   - Compute builds the pair universe — exactly C(n,2) canonical pairs
//     over the automaton's states, lower declared index first — and runs
//     two phases:
//   - Phase A (accepting split): every pair with exactly one accepting
//     member is marked; the empty word already distinguishes them.
//   - Phase B (fixpoint closure): a still-unmarked pair (p, q) is
//     marked as soon as some symbol a has both moves defined, with
//     δ(p,a) ≠ δ(q,a) and the pair (δ(p,a), δ(q,a)) already marked.
//     The first distinguishing symbol wins; which one is irrelevant
//     to the result, it only shows up in the trace.
//   - Marking is monotonic: once marked, never unmarked. A pair that
//     stays unmarked at the fixpoint is language-equivalent.
//   - Every mark is recorded in a structured trace (phase label, marked
//     pairs, reason) for presentation layers; callers that ignore the
//     trace see no behavior change.
//
// Partial transitions
//
//	If, for a symbol, one move is defined and the other is not, the
//	symbol is skipped: a missing move is NOT evidence of inequivalence.
//	This deliberately diverges from the textbook "complete DFA"
//	assumption and must be preserved exactly for reproducibility —
//	treating a missing move as a reject sink would mark more pairs.
//
// Scanning strategies
//
//	The default repeats full-table passes until a pass marks nothing,
//	the formulation the fixpoint semantics is specified against
//	(O(n⁴·s) worst case, but simple and cache-friendly for small n).
//	WithWorklist switches to a queue-driven formulation over the inverse
//	transition relation (O(n²·s)). Both reach the same fixpoint, since
//	the final marked set is scan-order independent.
//
// Determinism
//
//	Pairs are visited in canonical order (outer index ascending), the
//	worklist is seeded in that same order, and symbols are scanned in
//	alphabet order, so traces are reproducible run to run.
//
// Complexity (n = |states|, s = |alphabet|)
//
//   - Memory: O(n²) — one bit per pair, allocated once, never rebuilt.
//   - Time:   O(n⁴·s) naive passes, O(n²·s) with WithWorklist.
//
// Usage
//
//	t, err := marking.Compute(a)
//	if err != nil {
//	    // marking.ErrAutomatonNil
//	}
//	eq, err := t.Marked("q0", "q1") // false ⇒ equivalent
//	for _, ph := range t.Trace() {
//	    fmt.Println(ph.Label, len(ph.Marks))
//	}
//
// Errors
//
//   - ErrAutomatonNil  if the automaton pointer is nil.
//   - ErrTableMismatch if Marked is queried with an unknown state.
package marking
