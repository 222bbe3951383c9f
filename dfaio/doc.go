// Package dfaio persists automata: it decodes and encodes the JSON
// schema used by the minimizer's callers, and decodes a compact text
// format for hand-written automata. The core packages never touch I/O;
// this is the loading/saving collaborator.
//
// JSON schema
//
//	{
//	    "states": ["q0", "q1", "q2"],
//	    "alphabet": ["a", "b"],
//	    "start": "q0",
//	    "accepting": ["q2"],
//	    "transitions": {
//	        "q0": {"a": "q1", "b": "q0"},
//	        "q1": {"a": "q2", "b": "q0"},
//	        "q2": {"a": "q2", "b": "q2"}
//	    }
//	}
//
// EncodeJSON emits this schema indented, with object keys sorted, so
// encoding the same automaton twice is byte-identical.
//
// Text format
//
// Hand-written automata read nicer in the .dfa form: a header of four
// declarations followed by one transition rule per line, # comments
// allowed anywhere:
//
//	# strings over {a,b} containing "aa"
//	states q0 q1 q2;
//	alphabet a b;
//	start q0;
//	accepting q2;
//	q0 a -> q1;
//	q0 b -> q0;
//	q1 a -> q2;
//	q1 b -> q0;
//	q2 a -> q2;
//	q2 b -> q2;
//
// The grammar is declared as participle struct tags; identifiers are
// runs of [A-Za-z0-9_.] (the arrow keeps '-' out of identifiers).
//
// Validation split
//
//	dfaio only checks syntax (and duplicate transition rules); semantic
//	validation is dfa.New's job, so malformed automata surface as
//	dfa.ErrMalformedAutomaton unchanged, exactly as when the automaton
//	is built in code.
//
// Errors
//
//   - ErrDecode         on syntax errors (wraps the parser's detail).
//   - ErrUnknownFormat  when LoadFile sees an extension it cannot map.
//   - dfa.ErrMalformedAutomaton pass through from construction.
package dfaio
