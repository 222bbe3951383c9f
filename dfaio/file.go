// Package dfaio implements extension-dispatched file helpers.
package dfaio

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/dfamin/dfa"
)

// LoadFile reads an automaton from path, choosing the codec by file
// extension: ".json" for the JSON schema, ".dfa" for the text format.
func LoadFile(path string) (*dfa.Automaton, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch filepath.Ext(path) {
	case ".json":
		return DecodeJSON(f)
	case ".dfa":
		return DecodeText(f)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// SaveFile writes a to path as a JSON document.
func SaveFile(path string, a *dfa.Automaton) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := EncodeJSON(f, a); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
