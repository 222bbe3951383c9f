// Package dot implements Graphviz DOT text rendering of automata.
package dot

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/dfamin/dfa"
)

// Option configures rendering via functional arguments.
type Option func(*Options)

// Options holds rendering parameters.
type Options struct {
	// Title, when non-empty, becomes the graph label.
	Title string
}

// DefaultOptions returns an untitled rendering.
func DefaultOptions() Options {
	return Options{}
}

// WithTitle sets the graph label.
func WithTitle(title string) Option {
	return func(o *Options) { o.Title = title }
}

// Marshal renders a as DOT text.
func Marshal(a *dfa.Automaton, opts ...Option) []byte {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var sb strings.Builder
	sb.WriteString("digraph {\n")
	sb.WriteString("\trankdir=\"LR\";\n")
	if o.Title != "" {
		fmt.Fprintf(&sb, "\tlabel=\"%s\";\n\tfontsize=\"16\";\n", escape(o.Title))
	}

	// Invisible node feeding the start-state arrow.
	sb.WriteString("\t__start [shape=none,label=\"\"];\n")

	for _, id := range a.States() {
		shape := "circle"
		if a.IsAccepting(id) {
			shape = "doublecircle"
		}
		fmt.Fprintf(&sb, "\t\"%s\" [shape=%s];\n", escape(id), shape)
	}
	fmt.Fprintf(&sb, "\t__start -> \"%s\";\n", escape(a.Start()))

	alphabet := a.Alphabet()
	for _, src := range a.States() {
		// Group symbols per destination, destinations in first-use order.
		var order []string
		bySymbol := make(map[string][]string, len(alphabet))
		for _, sym := range alphabet {
			dst, ok := a.Step(src, sym)
			if !ok {
				continue
			}
			if _, seen := bySymbol[dst]; !seen {
				order = append(order, dst)
			}
			bySymbol[dst] = append(bySymbol[dst], sym)
		}
		for _, dst := range order {
			symbols := bySymbol[dst]
			sort.Strings(symbols)
			fmt.Fprintf(&sb, "\t\"%s\" -> \"%s\" [label=\"%s\"];\n",
				escape(src), escape(dst), escape(strings.Join(symbols, ",")))
		}
	}
	sb.WriteString("}\n")

	return []byte(sb.String())
}

// escape protects quotes and backslashes inside DOT string literals.
func escape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}
