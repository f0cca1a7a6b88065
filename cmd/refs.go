package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	"github.com/masmgr/gitlineage/internal/git"
)

// RefsCmd returns the refs command.
func RefsCmd() *cli.Command {
	return &cli.Command{
		Name:  "refs",
		Usage: "List branches and tags, optionally filtered by glob",
		Flags: append(commonFlags(),
			&cli.StringSliceFlag{
				Name:    "match",
				Aliases: []string{"m"},
				Usage:   "Glob patterns to match ref names (can be specified multiple times)",
			},
		),
		Action: refsAction,
	}
}

func refsAction(c *cli.Context) error {
	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	refs, err := ctx.Repo.Refs()
	if err != nil {
		return fmt.Errorf("failed to list refs: %w", err)
	}
	if patterns := ctx.Config.Refs.Match; len(patterns) > 0 {
		if refs, err = git.MatchRefs(refs, patterns); err != nil {
			return err
		}
	}

	n := ctx.Config.Output.ShortHashLength
	tw := tabwriter.NewWriter(c.App.Writer, 0, 0, 2, ' ', 0)
	for _, ref := range refs {
		commit, err := ctx.Repo.Resolve(ref.FullName)
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", ref.FullName, err)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", commit.ShortSHA(n), ref.Kind, ref.Name)
	}
	return tw.Flush()
}
