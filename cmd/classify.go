package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/urfave/cli/v2"

	"github.com/masmgr/gitlineage/internal/git"
	"github.com/masmgr/gitlineage/internal/lineage"
)

// ClassifyCmd returns the classify command.
func ClassifyCmd() *cli.Command {
	return &cli.Command{
		Name:      "classify",
		Usage:     "Print how the first revision relates to the second",
		ArgsUsage: "<revA> <revB>",
		Flags:     commonFlags(),
		Action:    classifyAction,
	}
}

func classifyAction(c *cli.Context) error {
	if c.NArg() != 2 {
		return errors.New("classify takes exactly two revisions")
	}

	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}
	if err := ctx.ResolveRevisions(c.Args().Slice()); err != nil {
		return err
	}

	builder, err := lineage.NewBuilder(ctx.Repo, lineage.Options{CacheSize: ctx.Config.Lineage.CacheSize})
	if err != nil {
		return err
	}

	a, b := ctx.Commits[0], ctx.Commits[1]
	rel, err := builder.Classifier().Classify(a, b)
	if err != nil {
		return fmt.Errorf("failed to classify: %w", err)
	}

	printRelationship(c.App.Writer, a, b, rel, ctx.Config.Output.ShortHashLength)
	return nil
}

func printRelationship(w io.Writer, a, b git.CommitInfo, rel lineage.Relationship, n int) {
	sa, sb := a.ShortSHA(n), b.ShortSHA(n)
	switch rel.Kind {
	case lineage.AncestorOf:
		fmt.Fprintf(w, "ancestor: %s is an ancestor of %s\n", sa, sb)
	case lineage.DescendantOf:
		fmt.Fprintf(w, "descendant: %s is a descendant of %s\n", sa, sb)
	case lineage.Diverged:
		fmt.Fprintf(w, "diverged: %s and %s diverged from %s\n", sa, sb, rel.Base.ShortSHA(n))
	default:
		fmt.Fprintf(w, "unrelated: %s and %s share no lineage\n", sa, sb)
	}
}
