package output

import (
	"fmt"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/masmgr/gitlineage/internal/lineage"
)

// ConsoleGraphWriter writes lineage graphs as a human-readable listing.
type ConsoleGraphWriter struct{}

// Write outputs the graph to the console.
func (w *ConsoleGraphWriter) Write(report *GraphReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	g := report.Graph
	ids := shortIDs(g, options.shortLength())
	heading := color.New(color.FgGreen)

	heading.Fprintln(out, "Commit Lineage")
	fmt.Fprintf(out, "Repository: %s\n", report.RepoPath)
	fmt.Fprintf(out, "Commits: %d, Edges: %d\n\n", g.NodeCount(), g.EdgeCount())

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tCommit\tOrigin\tMessage")
	for i, n := range g.Nodes() {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n",
			i+1,
			ids[n.ID()],
			originColor(n.Origin)(n.Origin.String()),
			truncateMessage(n.Message(), 60),
		)
	}
	tw.Flush()

	if edges := g.Edges(); len(edges) > 0 {
		fmt.Fprintln(out)
		heading.Fprintln(out, "Edges (ancestor -> descendant)")
		for _, e := range edges {
			fmt.Fprintf(out, "  %s -> %s\n", ids[e.From], ids[e.To])
		}
	}

	fmt.Fprintln(out)
	heading.Fprintln(out, "Roots")
	for _, n := range g.Roots() {
		fmt.Fprintf(out, "  %s %s\n", ids[n.ID()], truncateMessage(n.Message(), 60))
	}

	fmt.Fprintln(out)
	heading.Fprintln(out, "Tips")
	for _, n := range g.Tips() {
		fmt.Fprintf(out, "  %s %s\n", ids[n.ID()], truncateMessage(n.Message(), 60))
	}

	return nil
}

func originColor(origin lineage.Origin) func(string, ...interface{}) string {
	if origin == lineage.OriginMergeBase {
		return color.YellowString
	}
	return color.CyanString
}
