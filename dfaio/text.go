// Package dfaio implements the compact .dfa text format via a
// participle grammar.
package dfaio

import (
	"fmt"
	"io"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/katalvlaran/dfamin/dfa"
)

// textDFA mirrors the JSON schema: header declarations, then rules.
type textDFA struct {
	States    []string    `parser:"'states' @Ident+ ';'"`
	Alphabet  []string    `parser:"'alphabet' @Ident+ ';'"`
	Start     string      `parser:"'start' @Ident ';'"`
	Accepting []string    `parser:"'accepting' @Ident* ';'"`
	Rules     []*textRule `parser:"@@*"`
}

// textRule is one transition: "q0 a -> q1;".
type textRule struct {
	From   string `parser:"@Ident"`
	Symbol string `parser:"@Ident"`
	To     string `parser:"Arrow @Ident ';'"`
}

// Arrow must precede Ident so "->" never lexes as part of anything else;
// '-' is deliberately excluded from identifiers.
var textLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Arrow", Pattern: `->`},
	{Name: "Ident", Pattern: `[A-Za-z0-9_.]+`},
	{Name: "Punct", Pattern: `;`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
})

var textParser = participle.MustBuild[textDFA](
	participle.Lexer(textLexer),
	participle.Elide("Whitespace", "Comment"),
)

// DecodeText reads one automaton in the .dfa text format from r and
// constructs the validated automaton. Duplicate rules for the same
// (state, symbol) are a syntax error: the format has no "last wins".
func DecodeText(r io.Reader) (*dfa.Automaton, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	doc, err := textParser.ParseBytes("dfa", src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	transitions := make(map[string]map[string]string, len(doc.States))
	for _, rule := range doc.Rules {
		row := transitions[rule.From]
		if row == nil {
			row = make(map[string]string, len(doc.Alphabet))
			transitions[rule.From] = row
		}
		if _, dup := row[rule.Symbol]; dup {
			return nil, fmt.Errorf("%w: duplicate rule for %q on %q", ErrDecode, rule.From, rule.Symbol)
		}
		row[rule.Symbol] = rule.To
	}

	return dfa.New(doc.States, doc.Alphabet, doc.Start, doc.Accepting, transitions)
}
