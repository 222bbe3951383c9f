// Package dfamin minimizes deterministic finite automata: given a DFA it
// produces the unique (up to state renaming) smallest DFA accepting the
// same language.
//
// 🚀 What is dfamin?
//
//	A small, deterministic, pure-Go library built from five composable stages:
//		• dfa/       — immutable Automaton value type with eager validation
//		• reach/     — unreachable-state elimination (BFS from the start state)
//		• marking/   — table-filling (Moore) distinguishability fixpoint
//		• partition/ — equivalence classes via union-find
//		• minimize/  — class naming + reduced-automaton synthesis, end-to-end pipeline
//
//	Plus I/O collaborators kept strictly outside the core:
//		• dfaio/     — JSON and compact-text persistence of automata
//		• dot/       — Graphviz DOT rendering
//		• cmd/dfamin — CLI that narrates the marking process
//
// ✨ Why choose dfamin?
//
//   - Deterministic – identical input yields byte-identical output
//     (declared state order drives pair ordering, class naming, and serialization)
//   - Rock-solid guarantees – eager validation, loud invariant checks,
//     no silent merging of unrelated states
//   - Pure Go core – the algorithm performs no I/O and no logging;
//     observability comes from a structured trace returned with the result
//
// Typical usage:
//
//	a, err := dfa.New(states, alphabet, start, accepting, transitions)
//	if err != nil { ... }          // dfa.ErrMalformedAutomaton
//	res, err := minimize.Minimize(a)
//	if err != nil { ... }          // minimize.ErrNameCollision / ErrInvariantViolation
//	fmt.Println(res.Automaton.States())
//
// See each subpackage's doc.go for contracts, complexity, and errors.
package dfamin
