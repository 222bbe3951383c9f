// Package minimize provides result, option, and error definitions for
// the minimization pipeline.
package minimize

import (
	"errors"

	"github.com/katalvlaran/dfamin/dfa"
	"github.com/katalvlaran/dfamin/marking"
)

// Sentinel errors for the minimization pipeline.
var (
	// ErrAutomatonNil is returned if a nil automaton pointer is passed.
	ErrAutomatonNil = errors.New("minimize: automaton is nil")

	// ErrNameCollision is returned when two distinct equivalence classes
	// would receive identical canonical names.
	ErrNameCollision = errors.New("minimize: class name collision")

	// ErrInvariantViolation is returned when members of one class
	// disagree on the target class of some symbol. This indicates an
	// internal bug (an incorrectly computed partition), not bad input.
	ErrInvariantViolation = errors.New("minimize: inconsistent class transition")
)

// Result holds the outcome of one minimization run.
type Result struct {
	// Automaton is the minimized automaton; its states are the class
	// names, in class order.
	Automaton *dfa.Automaton

	// Pruned lists the unreachable states removed before marking, in
	// declared order.
	Pruned []string

	// Classes are the equivalence classes over the reachable states:
	// members in declared order, classes ordered by smallest member.
	Classes [][]string

	// Trace is the structured marking history (see marking.Phase),
	// for presentation layers; ignoring it changes nothing.
	Trace []marking.Phase
}

// Option configures the pipeline via functional arguments.
type Option func(*Options)

// Options holds pipeline parameters.
type Options struct {
	// Worklist is forwarded to marking.Compute.
	Worklist bool
}

// DefaultOptions returns the naive-pass marking strategy.
func DefaultOptions() Options {
	return Options{Worklist: false}
}

// WithWorklist selects the queue-driven marking strategy.
func WithWorklist() Option {
	return func(o *Options) { o.Worklist = true }
}
