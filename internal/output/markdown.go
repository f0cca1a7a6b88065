package output

import (
	"fmt"
	"strings"
)

// MarkdownGraphWriter writes lineage graphs as a Markdown document with a
// mermaid flowchart.
type MarkdownGraphWriter struct{}

// Write outputs the graph as Markdown.
func (w *MarkdownGraphWriter) Write(report *GraphReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	g := report.Graph
	ids := shortIDs(g, options.shortLength())

	// Header
	fmt.Fprintln(out, "# Commit Lineage")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "**Repository:** %s\n\n", report.RepoPath)
	fmt.Fprintf(out, "**Generated:** %s\n\n", report.GeneratedAt.Format(reportDateTimeLayout))
	fmt.Fprintf(out, "**Commits:** %d, **Edges:** %d\n\n", g.NodeCount(), g.EdgeCount())

	fmt.Fprintln(out, "```mermaid")
	fmt.Fprintln(out, "flowchart TD")
	for _, n := range g.Nodes() {
		id := ids[n.ID()]
		fmt.Fprintf(out, "    c%s[\"%s<br/>%s\"]\n", id, id, escapeMermaid(n.Message()))
	}
	for _, e := range g.Edges() {
		fmt.Fprintf(out, "    c%s --> c%s\n", ids[e.From], ids[e.To])
	}
	fmt.Fprintln(out, "```")

	return nil
}

// Mermaid labels are quoted, so quotes and markup-significant characters are
// written as entity codes.
var mermaidEscaper = strings.NewReplacer(
	`"`, "#quot;",
	"<", "#lt;",
	">", "#gt;",
)

func escapeMermaid(s string) string {
	return mermaidEscaper.Replace(s)
}
