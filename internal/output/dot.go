package output

import (
	"bufio"
	"fmt"
	"strings"
)

// DOTGraphWriter writes lineage graphs as Graphviz DOT.
type DOTGraphWriter struct{}

// Write outputs the graph as a DOT digraph.
func (w *DOTGraphWriter) Write(report *GraphReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	g := report.Graph
	ids := shortIDs(g, options.shortLength())

	bw := bufio.NewWriter(out)
	fmt.Fprintln(bw, "digraph G {")
	for _, n := range g.Nodes() {
		id := ids[n.ID()]
		fmt.Fprintf(bw, "  node_%s [label=\"%s\\n%s\"];\n", id, id, escapeDOT(n.Message()))
	}
	for _, e := range g.Edges() {
		fmt.Fprintf(bw, "  node_%s -> node_%s;\n", ids[e.From], ids[e.To])
	}
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}

var dotEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
)

func escapeDOT(s string) string {
	return dotEscaper.Replace(s)
}
