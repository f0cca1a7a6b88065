package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/masmgr/gitlineage/internal/output"
)

func writeGraphReport(ctx *CommandContext, c *cli.Context, report *output.GraphReport) error {
	opts := ctx.OutputOptions(c)
	writer := output.NewGraphWriter(opts.Format)
	return writer.Write(report, opts)
}
