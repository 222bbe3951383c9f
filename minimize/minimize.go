// Package minimize implements the end-to-end minimization pipeline and
// the class-based reconstruction of the reduced automaton.
package minimize

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/dfamin/dfa"
	"github.com/katalvlaran/dfamin/marking"
	"github.com/katalvlaran/dfamin/partition"
	"github.com/katalvlaran/dfamin/reach"
)

// Minimize computes the minimal automaton accepting the same language
// as a. The input is read-only; the result is a fresh value.
func Minimize(a *dfa.Automaton, opts ...Option) (*Result, error) {
	if a == nil {
		return nil, ErrAutomatonNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	reduced, err := reach.Reduce(a)
	if err != nil {
		return nil, err
	}

	var mopts []marking.Option
	if o.Worklist {
		mopts = append(mopts, marking.WithWorklist())
	}
	table, err := marking.Compute(reduced, mopts...)
	if err != nil {
		return nil, err
	}

	part, err := partition.FromTable(table)
	if err != nil {
		return nil, err
	}

	minimized, err := rebuild(reduced, part)
	if err != nil {
		return nil, err
	}

	return &Result{
		Automaton: minimized,
		Pruned:    prunedStates(a, reduced),
		Classes:   part.Classes(),
		Trace:     table.Trace(),
	}, nil
}

// prunedStates lists the states of a that did not survive reduction,
// in declared order.
func prunedStates(a, reduced *dfa.Automaton) []string {
	pruned := make([]string, 0, a.NumStates()-reduced.NumStates())
	for _, id := range a.States() {
		if _, kept := reduced.Index(id); !kept {
			pruned = append(pruned, id)
		}
	}

	return pruned
}

// className derives the canonical name of a class from its members.
// Members arrive in declared order, so the name is reproducible.
func className(members []string) string {
	return "{" + strings.Join(members, ",") + "}"
}

// rebuild maps the reduced automaton through the partition: one state
// per class, transitions via class representatives (verified across all
// members), accepting iff the class contains an accepting state.
func rebuild(reduced *dfa.Automaton, part *partition.Partition) (*dfa.Automaton, error) {
	classes := part.Classes()

	// Canonical names must be injective across the produced class set;
	// colliding names would silently merge unrelated classes.
	names := make([]string, len(classes))
	byName := make(map[string]int, len(classes))
	for c, members := range classes {
		name := className(members)
		if prev, dup := byName[name]; dup {
			return nil, fmt.Errorf("%w: classes %v and %v both map to %q",
				ErrNameCollision, classes[prev], members, name)
		}
		byName[name] = c
		names[c] = name
	}

	alphabet := reduced.Alphabet()
	accepting := make([]string, 0, len(classes))
	transitions := make(map[string]map[string]string, len(classes))
	for c, members := range classes {
		if reduced.IsAccepting(members[0]) {
			accepting = append(accepting, names[c])
		}

		// The class keeps its first member's transition row. Moves the
		// representative lacks are dropped even when another member
		// defines them: merging under the skip policy must not union
		// the members' partial rows, or the result accepts words the
		// input rejects.
		var row map[string]string
		rep := members[0]
		for _, sym := range alphabet {
			dst, defined := reduced.Step(rep, sym)
			if !defined {
				continue
			}
			target, _ := part.ClassOf(dst)
			// Post-condition of the table-filling theorem: every other
			// member's defined move lands in the same class.
			for _, m := range members[1:] {
				other, ok := reduced.Step(m, sym)
				if !ok {
					continue
				}
				if tc, _ := part.ClassOf(other); tc != target {
					return nil, fmt.Errorf("%w: class %v on %q reaches both %v and %v",
						ErrInvariantViolation, members, sym, classes[target], classes[tc])
				}
			}
			if row == nil {
				row = make(map[string]string, len(alphabet))
			}
			row[sym] = names[target]
		}
		if row != nil {
			transitions[names[c]] = row
		}
	}

	startClass, _ := part.ClassOf(reduced.Start())

	return dfa.New(names, alphabet, names[startClass], accepting, transitions)
}
