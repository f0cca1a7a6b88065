// Package gittest builds throwaway Git repositories for tests.
package gittest

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// Repo is a repository in a temporary directory with a worktree.
type Repo struct {
	t    *testing.T
	Dir  string
	Repo *gogit.Repository
	wt   *gogit.Worktree
	n    int
	base time.Time
}

// New initializes an empty repository in t.TempDir().
func New(t *testing.T) *Repo {
	t.Helper()

	dir := t.TempDir()
	repo, err := gogit.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("PlainInit: %v", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Worktree: %v", err)
	}

	return &Repo{
		t:    t,
		Dir:  dir,
		Repo: repo,
		wt:   wt,
		base: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

// Commit writes a new file and commits it. Without parents the commit
// goes on top of HEAD; with parents it becomes a commit (or merge) of exactly
// those parents. Every commit is one minute newer than the previous one.
func (r *Repo) Commit(message string, parents ...plumbing.Hash) plumbing.Hash {
	r.t.Helper()

	r.n++
	name := fmt.Sprintf("file%03d.txt", r.n)
	if err := os.WriteFile(filepath.Join(r.Dir, name), []byte(message+"\n"), 0o644); err != nil {
		r.t.Fatalf("WriteFile: %v", err)
	}
	if _, err := r.wt.Add(name); err != nil {
		r.t.Fatalf("Add: %v", err)
	}

	sig := &object.Signature{
		Name:  "Test",
		Email: "test@example.com",
		When:  r.base.Add(time.Duration(r.n) * time.Minute),
	}
	hash, err := r.wt.Commit(message, &gogit.CommitOptions{
		Author:    sig,
		Committer: sig,
		Parents:   parents,
	})
	if err != nil {
		r.t.Fatalf("Commit(%q): %v", message, err)
	}
	return hash
}

// Branch points a branch at a commit.
func (r *Repo) Branch(name string, hash plumbing.Hash) {
	r.t.Helper()

	ref := plumbing.NewHashReference(plumbing.NewBranchReferenceName(name), hash)
	if err := r.Repo.Storer.SetReference(ref); err != nil {
		r.t.Fatalf("SetReference(%s): %v", name, err)
	}
}

// Tag creates an annotated tag on a commit.
func (r *Repo) Tag(name string, hash plumbing.Hash) {
	r.t.Helper()

	_, err := r.Repo.CreateTag(name, hash, &gogit.CreateTagOptions{
		Tagger:  &object.Signature{Name: "Test", Email: "test@example.com", When: r.base},
		Message: name,
	})
	if err != nil {
		r.t.Fatalf("CreateTag(%s): %v", name, err)
	}
}

// Orphan points HEAD at a branch that does not exist yet, so the next
// Commit without parents starts an unrelated history.
func (r *Repo) Orphan(name string) {
	r.t.Helper()

	head := plumbing.NewSymbolicReference(plumbing.HEAD, plumbing.NewBranchReferenceName(name))
	if err := r.Repo.Storer.SetReference(head); err != nil {
		r.t.Fatalf("SetReference(HEAD): %v", err)
	}
}
