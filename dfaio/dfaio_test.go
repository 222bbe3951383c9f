package dfaio_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dfamin/dfa"
	"github.com/katalvlaran/dfamin/dfaio"
	"github.com/katalvlaran/dfamin/minimize"
)

const sampleJSON = `{
    "states": ["q0", "q1", "q2"],
    "alphabet": ["a", "b"],
    "start": "q0",
    "accepting": ["q2"],
    "transitions": {
        "q0": {"a": "q1", "b": "q0"},
        "q1": {"a": "q2", "b": "q0"},
        "q2": {"a": "q2", "b": "q2"}
    }
}`

const sampleText = `# strings over {a,b} containing "aa"
states q0 q1 q2;
alphabet a b;
start q0;
accepting q2;
q0 a -> q1;
q0 b -> q0;
q1 a -> q2;
q1 b -> q0;
q2 a -> q2;
q2 b -> q2;
`

func TestDecodeJSON(t *testing.T) {
	a, err := dfaio.DecodeJSON(strings.NewReader(sampleJSON))
	require.NoError(t, err)
	require.Equal(t, []string{"q0", "q1", "q2"}, a.States())
	require.Equal(t, "q0", a.Start())
	require.Equal(t, []string{"q2"}, a.AcceptingStates())
	next, ok := a.Step("q1", "a")
	require.True(t, ok)
	require.Equal(t, "q2", next)
}

func TestDecodeJSON_Syntax(t *testing.T) {
	_, err := dfaio.DecodeJSON(strings.NewReader(`{"states": [`))
	require.ErrorIs(t, err, dfaio.ErrDecode)
}

func TestDecodeJSON_Semantic(t *testing.T) {
	_, err := dfaio.DecodeJSON(strings.NewReader(`{
        "states": ["q0"], "alphabet": ["a"],
        "start": "ghost", "accepting": [], "transitions": {}
    }`))
	require.ErrorIs(t, err, dfa.ErrMalformedAutomaton)
}

func TestEncodeJSON_RoundTrip(t *testing.T) {
	a, err := dfaio.DecodeJSON(strings.NewReader(sampleJSON))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, dfaio.EncodeJSON(&buf, a))
	back, err := dfaio.DecodeJSON(&buf)
	require.NoError(t, err)

	require.Equal(t, a.States(), back.States())
	require.Equal(t, a.Alphabet(), back.Alphabet())
	require.Equal(t, a.Start(), back.Start())
	require.Equal(t, a.AcceptingStates(), back.AcceptingStates())
	require.Equal(t, a.TransitionMap(), back.TransitionMap())
}

// TestEncodeJSON_Deterministic pins the byte-identical-output property:
// two independent minimization runs encode to the same bytes.
func TestEncodeJSON_Deterministic(t *testing.T) {
	var outputs [][]byte
	for i := 0; i < 2; i++ {
		a, err := dfaio.DecodeJSON(strings.NewReader(sampleJSON))
		require.NoError(t, err)
		res, err := minimize.Minimize(a)
		require.NoError(t, err)
		var buf bytes.Buffer
		require.NoError(t, dfaio.EncodeJSON(&buf, res.Automaton))
		outputs = append(outputs, buf.Bytes())
	}
	require.Equal(t, outputs[0], outputs[1])
}

func TestDecodeText(t *testing.T) {
	a, err := dfaio.DecodeText(strings.NewReader(sampleText))
	require.NoError(t, err)
	require.Equal(t, []string{"q0", "q1", "q2"}, a.States())
	require.Equal(t, []string{"a", "b"}, a.Alphabet())
	require.Equal(t, "q0", a.Start())
	require.Equal(t, []string{"q2"}, a.AcceptingStates())
	next, ok := a.Step("q0", "a")
	require.True(t, ok)
	require.Equal(t, "q1", next)
}

func TestDecodeText_PartialAndEmptyAccepting(t *testing.T) {
	a, err := dfaio.DecodeText(strings.NewReader(`
states p q;
alphabet x;
start p;
accepting ;
p x -> q;
`))
	require.NoError(t, err)
	require.Empty(t, a.AcceptingStates())
	_, ok := a.Step("q", "x")
	require.False(t, ok, "q's move must stay undefined")
}

func TestDecodeText_DuplicateRule(t *testing.T) {
	_, err := dfaio.DecodeText(strings.NewReader(`
states p q;
alphabet x;
start p;
accepting q;
p x -> q;
p x -> p;
`))
	require.ErrorIs(t, err, dfaio.ErrDecode)
}

func TestDecodeText_Syntax(t *testing.T) {
	_, err := dfaio.DecodeText(strings.NewReader("states p\nalphabet x;"))
	require.ErrorIs(t, err, dfaio.ErrDecode)
}

func TestLoadSaveFile(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "in.json")
	require.NoError(t, writeFile(t, jsonPath, sampleJSON))
	a, err := dfaio.LoadFile(jsonPath)
	require.NoError(t, err)

	outPath := filepath.Join(dir, "out.json")
	require.NoError(t, dfaio.SaveFile(outPath, a))
	back, err := dfaio.LoadFile(outPath)
	require.NoError(t, err)
	require.Equal(t, a.States(), back.States())

	textPath := filepath.Join(dir, "in.dfa")
	require.NoError(t, writeFile(t, textPath, sampleText))
	fromText, err := dfaio.LoadFile(textPath)
	require.NoError(t, err)
	require.Equal(t, a.TransitionMap(), fromText.TransitionMap())

	_, err = dfaio.LoadFile(filepath.Join(dir, "in.json.bak"))
	require.Error(t, err) // missing file
}

func TestLoadFile_UnknownFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.txt")
	require.NoError(t, writeFile(t, path, sampleText))
	_, err := dfaio.LoadFile(path)
	require.ErrorIs(t, err, dfaio.ErrUnknownFormat)
}

func writeFile(t *testing.T, path, content string) error {
	t.Helper()
	return os.WriteFile(path, []byte(content), 0o644)
}
