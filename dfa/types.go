// Package dfa provides option and error definitions for Automaton
// construction.
package dfa

import "errors"

// ErrMalformedAutomaton is returned (wrapped with detail) whenever the
// components handed to New do not form a well-formed automaton. It is
// detected eagerly at construction and never propagates into the
// minimization algorithm.
var ErrMalformedAutomaton = errors.New("dfa: malformed automaton")

// NoMove is the sentinel returned by StepIndex when the transition
// function has no entry for the given (state, symbol).
const NoMove = -1

// Option configures Automaton construction via functional arguments.
type Option func(*Options)

// Options holds construction-time policy flags.
type Options struct {
	// RequireTotal, if true, makes New reject automata whose transition
	// function is not defined for every (state, symbol).
	RequireTotal bool
}

// DefaultOptions returns the construction defaults: partial transition
// functions are accepted.
func DefaultOptions() Options {
	return Options{RequireTotal: false}
}

// WithRequireTotal makes New fail with ErrMalformedAutomaton unless
// every state defines a move for every alphabet symbol.
func WithRequireTotal() Option {
	return func(o *Options) { o.RequireTotal = true }
}
