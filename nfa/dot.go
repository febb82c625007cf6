package nfa

import (
	"bufio"
	"fmt"
	"io"
)

// WriteDOT writes a Graphviz digraph of n to w. Accepting states are drawn
// as double circles and the start state gets an arrow from a point node.
func WriteDOT(w io.Writer, n *NFA) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "digraph NFA {")
	fmt.Fprintln(bw, "    rankdir=LR;")
	for i := range n.states {
		s := &n.states[i]
		shape := "circle"
		if s.accepting {
			shape = "doublecircle"
		}
		fmt.Fprintf(bw, "    q%d [shape=%s];\n", s.id, shape)
	}
	for i := range n.states {
		s := &n.states[i]
		for _, t := range s.transitions {
			fmt.Fprintf(bw, "    q%d -> q%d [label=%q];\n", s.id, t.Next, t.Label.String())
		}
	}
	fmt.Fprintf(bw, "    _start [shape=point]; _start -> q%d;\n", n.start)
	fmt.Fprintln(bw, "}")

	return bw.Flush()
}
