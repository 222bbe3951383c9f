// Package reach provides option and error definitions for the
// reachability reducer.
package reach

import "errors"

// ErrAutomatonNil is returned if a nil automaton pointer is passed.
var ErrAutomatonNil = errors.New("reach: automaton is nil")

// Option configures the traversal via functional arguments.
type Option func(*Options)

// Options holds callbacks to observe the reachability traversal.
type Options struct {
	// OnVisit is called once per reachable state, in visit order.
	OnVisit func(id string)
}

// DefaultOptions returns no-op traversal hooks.
func DefaultOptions() Options {
	return Options{OnVisit: func(string) {}}
}

// WithOnVisit registers a callback invoked for every visited state.
func WithOnVisit(fn func(id string)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
