package git

import (
	"errors"
	"fmt"
)

// Repository defines read access to the commit history of a Git repository.
// This abstraction allows for easier testing and alternative implementations.
type Repository interface {
	// Resolve resolves a revision (hash, branch, tag, expression) to a commit.
	Resolve(rev string) (CommitInfo, error)
	// Commit looks up a commit by its full hash.
	Commit(sha string) (CommitInfo, error)
	// MergeBases returns the best common ancestors of two commits, or none
	// when their histories never converge.
	MergeBases(a, b string) ([]CommitInfo, error)
	// Refs lists branches, remote branches and tags.
	Refs() ([]RefInfo, error)
}

var (
	// ErrRepositoryNotFound is returned when a path holds no Git repository.
	ErrRepositoryNotFound = errors.New("repository not found")
	// ErrReferenceNotFound is returned when a revision or object does not resolve to a commit.
	ErrReferenceNotFound = errors.New("reference not found")
	// ErrTraversal is returned when reading history fails for any other reason.
	ErrTraversal = errors.New("history traversal failed")
)

// Open opens the repository at opts.Path with the configured backend.
func Open(opts OpenOptions) (Repository, error) {
	path := opts.Path
	if path == "" {
		path = "."
	}

	switch opts.Backend {
	case "", BackendGoGit:
		return OpenGoGit(path)
	case BackendCLI:
		return OpenCLI(path)
	default:
		return nil, fmt.Errorf("unknown backend %q (expected %q or %q)", opts.Backend, BackendGoGit, BackendCLI)
	}
}

// ResolveAll resolves every revision before returning, so that a bad
// revision late in the list is reported before any work starts.
func ResolveAll(repo Repository, revs []string) ([]CommitInfo, error) {
	commits := make([]CommitInfo, 0, len(revs))
	for _, rev := range revs {
		c, err := repo.Resolve(rev)
		if err != nil {
			return nil, err
		}
		commits = append(commits, c)
	}
	return commits, nil
}

// Compile-time interface conformance checks.
var (
	_ Repository = (*GoGitRepository)(nil)
	_ Repository = (*CLIRepository)(nil)
	_ Repository = (*MockRepository)(nil)
)
