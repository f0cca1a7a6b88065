package git

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"sort"
	"strings"
	"time"
)

// CLIRepository reads commit history by shelling out to the git executable.
// Commits are cached after the first read since the history is immutable.
type CLIRepository struct {
	path  string
	cache map[string]CommitInfo
}

// commitFormat prints one NUL-separated record per commit; the message comes last
// because it may contain newlines.
const commitFormat = "%H%x00%P%x00%cI%x00%an%x00%ae%x00%B"

// OpenCLI opens the repository containing path using the git executable.
func OpenCLI(path string) (*CLIRepository, error) {
	if _, err := exec.LookPath("git"); err != nil {
		return nil, fmt.Errorf("git executable not found: %w", err)
	}

	r := &CLIRepository{path: path, cache: make(map[string]CommitInfo)}
	if _, err := r.run("rev-parse", "--git-dir"); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrRepositoryNotFound, path)
	}
	return r, nil
}

// Resolve resolves a revision to a commit. Annotated tags are peeled.
func (r *CLIRepository) Resolve(rev string) (CommitInfo, error) {
	out, err := r.run("rev-parse", "--verify", "--quiet", "--end-of-options", rev+"^{commit}")
	if err != nil {
		// With --quiet, exit status 1 means the revision names no commit.
		if exitCode(err) == 1 {
			return CommitInfo{}, fmt.Errorf("%w: %s", ErrReferenceNotFound, rev)
		}
		return CommitInfo{}, fmt.Errorf("%w: resolve %s: %v", ErrTraversal, rev, err)
	}
	return r.Commit(strings.TrimSpace(string(out)))
}

// Commit looks up a commit by its full hash.
func (r *CLIRepository) Commit(sha string) (CommitInfo, error) {
	if c, ok := r.cache[sha]; ok {
		return c, nil
	}

	if _, err := r.run("cat-file", "-e", sha+"^{commit}"); err != nil {
		return CommitInfo{}, fmt.Errorf("%w: %s", ErrReferenceNotFound, sha)
	}

	out, err := r.run("show", "-s", "--no-color", "--format="+commitFormat, sha)
	if err != nil {
		return CommitInfo{}, fmt.Errorf("%w: read commit %s: %v", ErrTraversal, sha, err)
	}

	c, err := parseCommitRecord(out)
	if err != nil {
		return CommitInfo{}, fmt.Errorf("%w: %v", ErrTraversal, err)
	}
	r.cache[c.SHA] = c
	return c, nil
}

// MergeBases returns the best common ancestors of a and b, newest first.
func (r *CLIRepository) MergeBases(a, b string) ([]CommitInfo, error) {
	out, err := r.run("merge-base", "--all", a, b)
	if err != nil {
		// git merge-base exits 1 without output when there is no common ancestor.
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 && len(bytes.TrimSpace(out)) == 0 {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: merge-base %s %s: %v", ErrTraversal, a, b, err)
	}

	var bases []CommitInfo
	for _, line := range strings.Fields(string(out)) {
		c, err := r.Commit(line)
		if err != nil {
			return nil, err
		}
		bases = append(bases, c)
	}
	SortNewestFirst(bases)
	return bases, nil
}

// Refs lists local branches, remote branches and tags sorted by full name.
func (r *CLIRepository) Refs() ([]RefInfo, error) {
	out, err := r.run("for-each-ref", "--format=%(refname)", "refs/heads", "refs/remotes", "refs/tags")
	if err != nil {
		return nil, fmt.Errorf("%w: list references: %v", ErrTraversal, err)
	}
	return parseRefNames(out), nil
}

func (r *CLIRepository) run(args ...string) ([]byte, error) {
	cmd := exec.Command("git", append([]string{"-C", r.path}, args...)...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return out, fmt.Errorf("git %s failed: %w: %s", args[0], err, strings.TrimSpace(stderr.String()))
		}
		return out, fmt.Errorf("git %s failed: %w", args[0], err)
	}
	return out, nil
}

// exitCode returns the exit status of a failed git run, or -1 when git did
// not run to completion.
func exitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

func parseCommitRecord(rec []byte) (CommitInfo, error) {
	fields := bytes.SplitN(rec, []byte{0x00}, 6)
	if len(fields) < 6 {
		return CommitInfo{}, fmt.Errorf("unexpected git show format: %q", string(rec))
	}

	when, err := time.Parse(time.RFC3339, string(fields[2]))
	if err != nil {
		return CommitInfo{}, fmt.Errorf("parse committer date: %w", err)
	}

	return CommitInfo{
		SHA:     string(fields[0]),
		Parents: strings.Fields(string(fields[1])),
		When:    when,
		Author:  AuthorInfo{Name: string(fields[3]), Email: string(fields[4])},
		Message: strings.TrimRight(string(fields[5]), "\n"),
	}, nil
}

func parseRefNames(out []byte) []RefInfo {
	var refs []RefInfo
	for _, line := range strings.Split(string(out), "\n") {
		full := strings.TrimSpace(line)
		var kind RefKind
		var short string
		switch {
		case strings.HasPrefix(full, "refs/heads/"):
			kind, short = RefKindBranch, strings.TrimPrefix(full, "refs/heads/")
		case strings.HasPrefix(full, "refs/remotes/"):
			kind, short = RefKindRemote, strings.TrimPrefix(full, "refs/remotes/")
		case strings.HasPrefix(full, "refs/tags/"):
			kind, short = RefKindTag, strings.TrimPrefix(full, "refs/tags/")
		default:
			continue
		}
		// Symbolic remote HEADs are not branches of their own.
		if kind == RefKindRemote && strings.HasSuffix(short, "/HEAD") {
			continue
		}
		refs = append(refs, RefInfo{Name: short, FullName: full, Kind: kind})
	}
	sort.Slice(refs, func(i, j int) bool { return refs[i].FullName < refs[j].FullName })
	return refs
}
