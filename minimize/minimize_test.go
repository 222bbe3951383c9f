package minimize_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dfamin/dfa"
	"github.com/katalvlaran/dfamin/minimize"
)

// containsAA is the four-state "contains aa" automaton with an
// unreachable q3, the canonical end-to-end fixture.
func containsAA(t *testing.T) *dfa.Automaton {
	t.Helper()
	a, err := dfa.New(
		[]string{"q0", "q1", "q2", "q3"},
		[]string{"a", "b"},
		"q0",
		[]string{"q2"},
		map[string]map[string]string{
			"q0": {"a": "q1", "b": "q0"},
			"q1": {"a": "q2", "b": "q0"},
			"q2": {"a": "q2", "b": "q2"},
			"q3": {"a": "q3", "b": "q3"},
		},
	)
	require.NoError(t, err)

	return a
}

func TestMinimize_Nil(t *testing.T) {
	_, err := minimize.Minimize(nil)
	require.ErrorIs(t, err, minimize.ErrAutomatonNil)
}

// TestMinimize_PruneWithoutMerge: q3 is pruned, q0/q1 stay separate,
// q2 is its own accepting class — three states total.
func TestMinimize_PruneWithoutMerge(t *testing.T) {
	res, err := minimize.Minimize(containsAA(t))
	require.NoError(t, err)

	require.Equal(t, []string{"q3"}, res.Pruned)
	require.Equal(t, [][]string{{"q0"}, {"q1"}, {"q2"}}, res.Classes)

	m := res.Automaton
	require.Equal(t, []string{"{q0}", "{q1}", "{q2}"}, m.States())
	require.Equal(t, "{q0}", m.Start())
	require.Equal(t, []string{"{q2}"}, m.AcceptingStates())
	require.Equal(t, map[string]map[string]string{
		"{q0}": {"a": "{q1}", "b": "{q0}"},
		"{q1}": {"a": "{q2}", "b": "{q0}"},
		"{q2}": {"a": "{q2}", "b": "{q2}"},
	}, m.TransitionMap())
	require.NotEmpty(t, res.Trace)
}

// TestMinimize_FullMerge: two mutually reachable, indistinguishable
// accepting states collapse into a single self-looping accepting state.
func TestMinimize_FullMerge(t *testing.T) {
	a, err := dfa.New(
		[]string{"A", "B"},
		[]string{"a"},
		"A",
		[]string{"A", "B"},
		map[string]map[string]string{
			"A": {"a": "B"},
			"B": {"a": "A"},
		},
	)
	require.NoError(t, err)

	res, err := minimize.Minimize(a)
	require.NoError(t, err)
	require.Empty(t, res.Pruned)
	m := res.Automaton
	require.Equal(t, []string{"{A,B}"}, m.States())
	require.Equal(t, "{A,B}", m.Start())
	require.Equal(t, []string{"{A,B}"}, m.AcceptingStates())
	next, ok := m.Step("{A,B}", "a")
	require.True(t, ok)
	require.Equal(t, "{A,B}", next)
}

// TestMinimize_UnreachableTwin: when the equivalent twin is not
// reachable, reduction runs first and prunes it; the result is still a
// single self-looping accepting state.
func TestMinimize_UnreachableTwin(t *testing.T) {
	a, err := dfa.New(
		[]string{"A", "B"},
		[]string{"a"},
		"A",
		[]string{"A", "B"},
		map[string]map[string]string{
			"A": {"a": "A"},
			"B": {"a": "B"},
		},
	)
	require.NoError(t, err)

	res, err := minimize.Minimize(a)
	require.NoError(t, err)
	require.Equal(t, []string{"B"}, res.Pruned)
	m := res.Automaton
	require.Equal(t, []string{"{A}"}, m.States())
	require.Equal(t, "{A}", m.Start())
	require.Equal(t, []string{"{A}"}, m.AcceptingStates())
	next, ok := m.Step("{A}", "a")
	require.True(t, ok)
	require.Equal(t, "{A}", next)
}

// TestMinimize_MalformedInput: validation happens at construction,
// before any table work can begin.
func TestMinimize_MalformedInput(t *testing.T) {
	_, err := dfa.New(
		[]string{"q0", "q1"},
		[]string{"a"},
		"missing",
		nil,
		nil,
	)
	require.ErrorIs(t, err, dfa.ErrMalformedAutomaton)
}

// TestMinimize_Idempotent: minimizing a minimal automaton changes
// nothing but the state names, and a second minimization is a fixpoint.
func TestMinimize_Idempotent(t *testing.T) {
	res, err := minimize.Minimize(containsAA(t))
	require.NoError(t, err)

	again, err := minimize.Minimize(res.Automaton)
	require.NoError(t, err)
	require.Equal(t, res.Automaton.NumStates(), again.Automaton.NumStates())
	require.Empty(t, again.Pruned)
	for _, class := range again.Classes {
		require.Len(t, class, 1, "already-minimal automaton must not merge")
	}
}

// TestMinimize_Deterministic: two runs produce structurally identical
// results (naming, ordering, transition map).
func TestMinimize_Deterministic(t *testing.T) {
	first, err := minimize.Minimize(containsAA(t))
	require.NoError(t, err)
	second, err := minimize.Minimize(containsAA(t))
	require.NoError(t, err)

	require.Equal(t, first.Automaton.States(), second.Automaton.States())
	require.Equal(t, first.Automaton.AcceptingStates(), second.Automaton.AcceptingStates())
	require.Equal(t, first.Automaton.TransitionMap(), second.Automaton.TransitionMap())
	require.Equal(t, first.Classes, second.Classes)
	require.Equal(t, first.Trace, second.Trace)
}

// words enumerates every word over alphabet up to maxLen symbols.
func words(alphabet []string, maxLen int) [][]string {
	out := [][]string{{}}
	frontier := [][]string{{}}
	for l := 0; l < maxLen; l++ {
		var next [][]string
		for _, w := range frontier {
			for _, sym := range alphabet {
				ext := append(append([]string(nil), w...), sym)
				next = append(next, ext)
				out = append(out, ext)
			}
		}
		frontier = next
	}

	return out
}

// TestMinimize_PreservesLanguage: original and minimized automata agree
// on every word up to a bounded length. The guarantee holds for total
// automata; see the Partial inputs section of the package doc.
func TestMinimize_PreservesLanguage(t *testing.T) {
	// Total automaton with two genuine merges: {s1,s2} and {s3,s4}.
	branches, err := dfa.New(
		[]string{"s0", "s1", "s2", "s3", "s4", "dead"},
		[]string{"a", "b"},
		"s0",
		[]string{"s3", "s4"},
		map[string]map[string]string{
			"s0":   {"a": "s1", "b": "s2"},
			"s1":   {"a": "s3", "b": "dead"},
			"s2":   {"a": "s4", "b": "dead"},
			"s3":   {"a": "s3", "b": "s3"},
			"s4":   {"a": "s4", "b": "s4"},
			"dead": {"a": "dead", "b": "dead"},
		},
	)
	require.NoError(t, err)

	for _, a := range []*dfa.Automaton{containsAA(t), branches} {
		res, err := minimize.Minimize(a)
		require.NoError(t, err)
		for _, w := range words(a.Alphabet(), 6) {
			require.Equal(t, a.Accepts(w...), res.Automaton.Accepts(w...),
				"word %v must be classified identically", w)
		}
	}
}

// TestMinimize_PartialMergeKeepsRepresentativeRow: merging states with
// differing defined-move sets keeps only the first member's row. s1 and
// s2 merge, the class inherits s1's a-move, and s2's b-move is dropped
// rather than unioned in — the class must not accept words neither
// member accepts ("ab" stays rejected), at the cost of "bb", which the
// original accepts via s2.
func TestMinimize_PartialMergeKeepsRepresentativeRow(t *testing.T) {
	a, err := dfa.New(
		[]string{"s0", "s1", "s2", "s3"},
		[]string{"a", "b"},
		"s0",
		[]string{"s3"},
		map[string]map[string]string{
			"s0": {"a": "s1", "b": "s2"},
			"s1": {"a": "s3"},
			"s2": {"b": "s3"},
			"s3": {"a": "s3", "b": "s3"},
		},
	)
	require.NoError(t, err)
	require.False(t, a.Accepts("a", "b"))

	res, err := minimize.Minimize(a)
	require.NoError(t, err)
	require.Equal(t, [][]string{{"s0"}, {"s1", "s2"}, {"s3"}}, res.Classes)
	require.Equal(t, map[string]map[string]string{
		"{s0}":    {"a": "{s1,s2}", "b": "{s1,s2}"},
		"{s1,s2}": {"a": "{s3}"},
		"{s3}":    {"a": "{s3}", "b": "{s3}"},
	}, res.Automaton.TransitionMap())
	require.False(t, res.Automaton.Accepts("a", "b"))
	// Divergence on partial input: the original reaches s3 on "bb" via
	// s2, the minimized class no longer has a b-move.
	require.True(t, a.Accepts("b", "b"))
	require.False(t, res.Automaton.Accepts("b", "b"))
}

// TestMinimize_NoIncrease: the result never exceeds the reachable state
// count, and shrinks exactly when something was pruned or merged.
func TestMinimize_NoIncrease(t *testing.T) {
	a := containsAA(t)
	res, err := minimize.Minimize(a)
	require.NoError(t, err)

	reachable := a.NumStates() - len(res.Pruned)
	require.LessOrEqual(t, res.Automaton.NumStates(), reachable)
	require.Less(t, res.Automaton.NumStates(), a.NumStates())
}

// TestMinimize_NameCollision: the states "a", "b" merge into a class
// named "{a,b}", which collides with the literal state "a,b" — the
// pipeline must refuse rather than silently merge.
func TestMinimize_NameCollision(t *testing.T) {
	a, err := dfa.New(
		[]string{"a", "b", "a,b"},
		[]string{"x", "y"},
		"a",
		[]string{"a", "b"},
		map[string]map[string]string{
			"a": {"x": "b", "y": "a,b"},
			"b": {"x": "a", "y": "a,b"},
		},
	)
	require.NoError(t, err)

	_, err = minimize.Minimize(a)
	require.ErrorIs(t, err, minimize.ErrNameCollision)
}

// TestMinimize_WorklistMatchesDefault: both marking strategies yield
// the same minimized automaton.
func TestMinimize_WorklistMatchesDefault(t *testing.T) {
	def, err := minimize.Minimize(containsAA(t))
	require.NoError(t, err)
	wl, err := minimize.Minimize(containsAA(t), minimize.WithWorklist())
	require.NoError(t, err)

	require.Equal(t, def.Automaton.States(), wl.Automaton.States())
	require.Equal(t, def.Automaton.TransitionMap(), wl.Automaton.TransitionMap())
	require.Equal(t, def.Automaton.AcceptingStates(), wl.Automaton.AcceptingStates())
	require.Equal(t, def.Classes, wl.Classes)
}

// TestMinimize_UnreachableAcceptingState: an accepting state that is
// unreachable is pruned and leaves the accepting set of the result.
func TestMinimize_UnreachableAcceptingState(t *testing.T) {
	a, err := dfa.New(
		[]string{"p", "q", "r", "s"},
		[]string{"0"},
		"p",
		[]string{"q", "r"},
		map[string]map[string]string{
			"p": {"0": "q"},
			"q": {"0": "s"},
			"r": {"0": "s"},
			"s": {"0": "s"},
		},
	)
	require.NoError(t, err)

	res, err := minimize.Minimize(a)
	require.NoError(t, err)
	// r is unreachable; q stays, s stays: 3 states and no merge beyond
	// the pruning.
	require.Equal(t, []string{"r"}, res.Pruned)
	require.Equal(t, 3, res.Automaton.NumStates())
	require.Equal(t, [][]string{{"p"}, {"q"}, {"s"}}, res.Classes)
	require.Equal(t, []string{"{q}"}, res.Automaton.AcceptingStates())
}
