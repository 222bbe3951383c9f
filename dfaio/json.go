// Package dfaio implements the JSON codec for the automaton schema.
package dfaio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/dfamin/dfa"
)

// Sentinel errors for decoding and file dispatch.
var (
	// ErrDecode is returned (wrapped with detail) on malformed input
	// syntax, JSON or text.
	ErrDecode = errors.New("dfaio: cannot decode automaton")

	// ErrUnknownFormat is returned by LoadFile for file extensions it
	// cannot map to a codec.
	ErrUnknownFormat = errors.New("dfaio: unknown automaton format")
)

// document is the wire shape of an automaton.
type document struct {
	States      []string                     `json:"states"`
	Alphabet    []string                     `json:"alphabet"`
	Start       string                       `json:"start"`
	Accepting   []string                     `json:"accepting"`
	Transitions map[string]map[string]string `json:"transitions"`
}

// DecodeJSON reads one automaton document from r and constructs the
// validated automaton. Syntax problems wrap ErrDecode; semantic
// problems surface as dfa.ErrMalformedAutomaton.
func DecodeJSON(r io.Reader) (*dfa.Automaton, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return dfa.New(doc.States, doc.Alphabet, doc.Start, doc.Accepting, doc.Transitions)
}

// EncodeJSON writes a as an indented JSON document with sorted object
// keys; encoding the same automaton twice yields identical bytes.
func EncodeJSON(w io.Writer, a *dfa.Automaton) error {
	doc := document{
		States:      a.States(),
		Alphabet:    a.Alphabet(),
		Start:       a.Start(),
		Accepting:   a.AcceptingStates(),
		Transitions: a.TransitionMap(),
	}
	buf, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return err
	}
	buf = append(buf, '\n')
	_, err = w.Write(buf)

	return err
}
