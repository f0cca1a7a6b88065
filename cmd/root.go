package cmd

import (
	"fmt"
	"os"

	"github.com/masmgr/gitlineage/config"
	"github.com/masmgr/gitlineage/internal/output"
	"github.com/urfave/cli/v2"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:      "gitlineage",
		Usage:     "Draw the ancestry graph between Git commits",
		Version:   "1.0.0",
		ArgsUsage: "<rev>...",
		Commands: []*cli.Command{
			GraphCmd(),
			ClassifyCmd(),
			RefsCmd(),
		},
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
			},
		}, graphFlags()...),
		Action: legacyAction,
	}
}

// Common flags shared across commands
func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "repo",
			Aliases: []string{"p", "r"},
			Usage:   "Path to Git repository",
			Value:   ".",
		},
		&cli.StringFlag{
			Name:  "backend",
			Usage: "Repository backend (go-git, git)",
		},
		&cli.IntFlag{
			Name:  "cache-size",
			Usage: "Reachability cache entries (0 disables caching)",
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "Print progress to stderr",
		},
	}
}

// graphFlags are the flags of the graph command and the legacy invocation.
func graphFlags() []cli.Flag {
	return append(commonFlags(),
		&cli.StringSliceFlag{
			Name:    "match",
			Aliases: []string{"m"},
			Usage:   "Add refs matching this glob as inputs (can be specified multiple times)",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format (dot, json, mermaid, markdown, console)",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output file path (default: stdout)",
		},
		&cli.IntFlag{
			Name:  "short-length",
			Usage: "Number of hash characters in node ids",
		},
	)
}

// getOutputFormat parses the output format flag.
func getOutputFormat(s string) output.OutputFormat {
	switch s {
	case "json":
		return output.FormatJSON
	case "mermaid":
		return output.FormatMermaid
	case "markdown", "md":
		return output.FormatMarkdown
	case "console", "text":
		return output.FormatConsole
	default:
		return output.FormatDOT
	}
}

// loadConfig loads configuration from file or defaults, then applies flag
// overrides.
func loadConfig(c *cli.Context) (*config.Config, error) {
	configPath := c.String("config")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if c.IsSet("backend") {
		cfg.Repository.Backend = c.String("backend")
	}
	if c.IsSet("cache-size") {
		cfg.Lineage.CacheSize = c.Int("cache-size")
	}
	if c.IsSet("format") {
		cfg.Output.Format = c.String("format")
	}
	if c.IsSet("short-length") {
		cfg.Output.ShortHashLength = c.Int("short-length")
	}
	if matches := c.StringSlice("match"); len(matches) > 0 {
		cfg.Refs.Match = matches
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// legacyAction handles the default (legacy) command behavior: revisions given
// without a subcommand are drawn as a graph.
func legacyAction(c *cli.Context) error {
	if c.NArg() == 0 && len(c.StringSlice("match")) == 0 {
		return cli.ShowAppHelp(c)
	}
	return graphAction(c)
}

// Run executes the CLI application.
func Run() {
	if err := App().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
