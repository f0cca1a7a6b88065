package cmd

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/masmgr/gitlineage/internal/lineage"
	"github.com/masmgr/gitlineage/internal/output"
)

// GraphCmd returns the graph command.
func GraphCmd() *cli.Command {
	return &cli.Command{
		Name:      "graph",
		Aliases:   []string{"g"},
		Usage:     "Draw the lineage graph of the given revisions",
		ArgsUsage: "<rev>...",
		Flags:     graphFlags(),
		Action:    graphAction,
	}
}

func graphAction(c *cli.Context) error {
	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}
	revs, err := ctx.expandMatches(c.Args().Slice())
	if err != nil {
		return err
	}
	if err := ctx.ResolveRevisions(revs); err != nil {
		return err
	}

	start := time.Now()
	builder, err := lineage.NewBuilder(ctx.Repo, lineage.Options{
		CacheSize: ctx.Config.Lineage.CacheSize,
		OnProgress: func(done, total int) {
			ctx.logf("Inserted %d/%d commits", done, total)
		},
	})
	if err != nil {
		return err
	}

	g, err := builder.Build(ctx.Commits)
	if err != nil {
		return fmt.Errorf("failed to build graph: %w", err)
	}
	ctx.logf("Built graph with %d nodes and %d edges in %s", g.NodeCount(), g.EdgeCount(), time.Since(start))

	report := &output.GraphReport{
		RepoPath:    ctx.RepoPath,
		GeneratedAt: time.Now(),
		Graph:       g,
	}
	return writeGraphReport(ctx, c, report)
}
