// Package dot renders automata as Graphviz DOT text: accepting states
// as double circles, an arrow from an invisible node into the start
// state, and one edge per (source, destination) with the symbols
// grouped into a comma-separated label.
//
// The package only emits text — running graphviz, or any other
// rendering, stays with the caller. Output is deterministic: states in
// declared order, destinations in first-use alphabet order, symbols
// sorted inside each label.
//
// Usage
//
//	buf := dot.Marshal(a, dot.WithTitle("original"))
//	os.WriteFile("original.dot", buf, 0o644)
package dot
