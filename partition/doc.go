// Package partition turns a saturated distinguishability table into a
// partition of the automaton's states into equivalence classes.
//
// What
//
//   - FromTable unions the two members of every still-unmarked pair in
//     a disjoint-set structure; the final connected components are the
//     equivalence classes. Two states land in the same class iff their
//     canonical pair is unmarked (or they are the same state).
//   - Classes partition the state set: every state belongs to exactly
//     one class, classes are pairwise disjoint, and their union is the
//     full state set of the table's automaton.
//
// Why union-find
//
//	Merging by scanning a growing list of sets is quadratic or worse in
//	the number of states. A disjoint-set with path compression and union
//	by size gives near-linear amortized merge cost over the C(n,2)
//	unmarked pairs.
//
// Determinism
//
//	Classes are unordered sets, but their presentation is fixed: members
//	are listed in declared state order, and classes are ordered by the
//	smallest declared index they contain. Repeated runs on identical
//	input produce identical output.
//
// Complexity (n = |states|)
//
//   - Time:   O(n² · α(n))  (one find/union per pair, inverse-Ackermann α)
//   - Memory: O(n)
//
// Usage
//
//	p, err := partition.FromTable(t)
//	if err != nil {
//	    // partition.ErrNilTable
//	}
//	for _, class := range p.Classes() {
//	    fmt.Println(class)
//	}
//
// Errors
//
//   - ErrNilTable  if the table pointer is nil.
package partition
