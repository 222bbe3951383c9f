// Package marking provides pair, trace, option, and error definitions
// for the distinguishability table.
package marking

import "errors"

// Sentinel errors for table construction and queries.
var (
	// ErrAutomatonNil is returned if a nil automaton pointer is passed.
	ErrAutomatonNil = errors.New("marking: automaton is nil")

	// ErrTableMismatch is returned when a table is queried with a state
	// identifier the underlying automaton does not know.
	ErrTableMismatch = errors.New("marking: state not covered by table")
)

// Pair is an unordered pair of states in canonical form: P is the state
// with the lower declared index, Q the higher. (p, q) and (q, p) always
// canonicalize to the same Pair.
type Pair struct {
	P, Q string
}

// Mark records one marking event for the trace.
type Mark struct {
	// Pair is the canonical pair that was marked.
	Pair Pair

	// Symbol is the first distinguishing symbol found, empty for the
	// accepting-split phase (the empty word distinguishes there).
	Symbol string

	// Via is the already-marked successor pair that caused this mark;
	// zero for the accepting-split phase.
	Via Pair
}

// Phase is one entry of the structured trace: a labeled group of marks
// with a human-readable reason, in the order they were applied.
type Phase struct {
	Label  string
	Marks  []Mark
	Reason string
}

// Option configures the fixpoint computation via functional arguments.
type Option func(*Options)

// Options holds parameters for Compute.
type Options struct {
	// Worklist selects the queue-driven closure over the inverse
	// transition relation instead of repeated full-table passes.
	Worklist bool
}

// DefaultOptions returns the naive repeated-pass strategy, the
// formulation the fixpoint semantics is specified against.
func DefaultOptions() Options {
	return Options{Worklist: false}
}

// WithWorklist switches Phase B to the queue-driven formulation.
// The resulting marked set is identical; only the trace grouping and
// the asymptotic cost differ.
func WithWorklist() Option {
	return func(o *Options) { o.Worklist = true }
}
