// Command dfamin loads a DFA from a .json or .dfa file, minimizes it,
// narrates the marking process, and writes the minimized automaton back
// out (plus optional Graphviz DOT renderings).
//
// Usage:
//
//	dfamin [-quiet] [-worklist] [-dot] [-o out.json] input.{json,dfa}
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/dfamin/dfa"
	"github.com/katalvlaran/dfamin/dfaio"
	"github.com/katalvlaran/dfamin/dot"
	"github.com/katalvlaran/dfamin/marking"
	"github.com/katalvlaran/dfamin/minimize"
)

func main() {
	var (
		outPath  = flag.String("o", "", "output path for the minimized JSON (default: minimized.json next to the input)")
		emitDot  = flag.Bool("dot", false, "also write <input>_original.dot and <input>_minimized.dot")
		quiet    = flag.Bool("quiet", false, "suppress narration, print only the summary")
		worklist = flag.Bool("worklist", false, "use the queue-driven marking strategy")
	)
	flag.Parse()
	if flag.NArg() != 1 {
		log.Fatalf("usage: %s [-quiet] [-worklist] [-dot] [-o out.json] input.{json,dfa}", os.Args[0])
	}
	input := flag.Arg(0)

	a, err := dfaio.LoadFile(input)
	if err != nil {
		log.Fatal(err)
	}

	if !*quiet {
		fmt.Printf("loaded %s: %d states, %d symbols, start %s, accepting %v\n",
			input, a.NumStates(), a.NumSymbols(), a.Start(), a.AcceptingStates())
	}

	var opts []minimize.Option
	if *worklist {
		opts = append(opts, minimize.WithWorklist())
	}
	res, err := minimize.Minimize(a, opts...)
	if err != nil {
		log.Fatal(err)
	}

	if !*quiet {
		narrate(a, res)
	}
	fmt.Printf("minimized: %d -> %d states (%d pruned, %d merged)\n",
		a.NumStates(), res.Automaton.NumStates(),
		len(res.Pruned), a.NumStates()-len(res.Pruned)-res.Automaton.NumStates())

	out := *outPath
	if out == "" {
		out = filepath.Join(filepath.Dir(input), "minimized.json")
	}
	if err := dfaio.SaveFile(out, res.Automaton); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("wrote %s\n", out)

	if *emitDot {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		for _, f := range []struct {
			path  string
			a     *dfa.Automaton
			title string
		}{
			{base + "_original.dot", a, "original"},
			{base + "_minimized.dot", res.Automaton, "minimized"},
		} {
			if err := os.WriteFile(f.path, dot.Marshal(f.a, dot.WithTitle(f.title)), 0o644); err != nil {
				log.Fatal(err)
			}
			fmt.Printf("wrote %s\n", f.path)
		}
	}
}

// narrate prints the pruning result, every marking phase, the final
// triangular table, and the equivalence classes.
func narrate(a *dfa.Automaton, res *minimize.Result) {
	if len(res.Pruned) > 0 {
		fmt.Printf("stage 1: removed unreachable states %v\n", res.Pruned)
	} else {
		fmt.Println("stage 1: no unreachable states")
	}

	fmt.Println("stage 2: marking distinguishable pairs")
	for _, ph := range res.Trace {
		fmt.Printf("  %s: %d pair(s) marked (%s)\n", ph.Label, len(ph.Marks), ph.Reason)
		for _, m := range ph.Marks {
			if m.Symbol == "" {
				fmt.Printf("    (%s,%s)\n", m.Pair.P, m.Pair.Q)
				continue
			}
			fmt.Printf("    (%s,%s) via %q -> (%s,%s)\n",
				m.Pair.P, m.Pair.Q, m.Symbol, m.Via.P, m.Via.Q)
		}
	}

	reachable := reachableStates(a, res.Pruned)
	printTable(reachable, markedPairs(res.Trace))

	fmt.Println("stage 3: equivalence classes")
	for i, class := range res.Classes {
		fmt.Printf("  class %d: %v\n", i+1, class)
	}
}

// reachableStates filters the declared order down to surviving states.
func reachableStates(a *dfa.Automaton, pruned []string) []string {
	gone := make(map[string]bool, len(pruned))
	for _, id := range pruned {
		gone[id] = true
	}
	var out []string
	for _, id := range a.States() {
		if !gone[id] {
			out = append(out, id)
		}
	}

	return out
}

// markedPairs flattens the trace into the final marked-pair set.
func markedPairs(trace []marking.Phase) map[marking.Pair]bool {
	marked := make(map[marking.Pair]bool)
	for _, ph := range trace {
		for _, m := range ph.Marks {
			marked[m.Pair] = true
		}
	}

	return marked
}

// printTable renders the lower-triangular marking table:
// X = distinguishable, - = equivalent.
func printTable(states []string, marked map[marking.Pair]bool) {
	if len(states) < 2 {
		return
	}
	width := 0
	for _, id := range states {
		if len(id) > width {
			width = len(id)
		}
	}

	fmt.Printf("  %*s", width, "")
	for _, id := range states[:len(states)-1] {
		fmt.Printf(" | %*s", width, id)
	}
	fmt.Println(" |")
	for i := 1; i < len(states); i++ {
		fmt.Printf("  %*s", width, states[i])
		for j := 0; j < i; j++ {
			cell := "-"
			if marked[marking.Pair{P: states[j], Q: states[i]}] {
				cell = "X"
			}
			fmt.Printf(" | %*s", width, cell)
		}
		fmt.Println(" |")
	}
	fmt.Println("  legend: X = distinguishable, - = equivalent")
}
