package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/masmgr/gitlineage/config"
	"github.com/masmgr/gitlineage/internal/git"
	"github.com/masmgr/gitlineage/internal/output"
)

// CommandContext holds common state for command execution.
// It encapsulates the shared setup logic across all commands.
type CommandContext struct {
	Config   *config.Config
	RepoPath string
	Repo     git.Repository
	Commits  []git.CommitInfo

	verbose bool
	stderr  io.Writer
}

// NewCommandContext creates a context from CLI flags. It loads configuration
// and opens the repository.
func NewCommandContext(c *cli.Context) (*CommandContext, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}

	ctx := &CommandContext{
		Config:   cfg,
		RepoPath: c.String("repo"),
		verbose:  c.Bool("verbose"),
		stderr:   c.App.ErrWriter,
	}

	ctx.Repo, err = git.Open(git.OpenOptions{
		Path:    ctx.RepoPath,
		Backend: git.Backend(cfg.Repository.Backend),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}
	ctx.logf("Opened %s (%s backend)", ctx.RepoPath, cfg.Repository.Backend)

	return ctx, nil
}

// ResolveRevisions resolves every revision into ctx.Commits, failing on the
// first one that does not name a commit.
func (ctx *CommandContext) ResolveRevisions(revs []string) error {
	if len(revs) == 0 {
		return errors.New("no revisions given")
	}
	commits, err := git.ResolveAll(ctx.Repo, revs)
	if err != nil {
		return fmt.Errorf("failed to resolve revisions: %w", err)
	}
	ctx.Commits = commits
	ctx.logf("Resolved %d revisions", len(commits))
	return nil
}

// expandMatches appends the refs matching the configured patterns after the
// explicit revisions, in ref name order.
func (ctx *CommandContext) expandMatches(revs []string) ([]string, error) {
	patterns := ctx.Config.Refs.Match
	if len(patterns) == 0 {
		return revs, nil
	}

	refs, err := ctx.Repo.Refs()
	if err != nil {
		return nil, fmt.Errorf("failed to list refs: %w", err)
	}
	matched, err := git.MatchRefs(refs, patterns)
	if err != nil {
		return nil, err
	}
	ctx.logf("Matched %d refs", len(matched))

	expanded := append([]string(nil), revs...)
	for _, ref := range matched {
		expanded = append(expanded, ref.FullName)
	}
	return expanded, nil
}

// OutputOptions creates OutputOptions from configuration and CLI flags.
func (ctx *CommandContext) OutputOptions(c *cli.Context) output.OutputOptions {
	return output.OutputOptions{
		Format:          getOutputFormat(ctx.Config.Output.Format),
		OutputPath:      c.String("output"),
		ShortHashLength: ctx.Config.Output.ShortHashLength,
	}
}

// logf prints a progress line to stderr when --verbose is set.
func (ctx *CommandContext) logf(format string, args ...interface{}) {
	if !ctx.verbose || ctx.stderr == nil {
		return
	}
	fmt.Fprintln(ctx.stderr, color.CyanString(format, args...))
}
