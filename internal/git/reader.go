package git

import (
	"errors"
	"fmt"
	"io"
	"sort"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// GoGitRepository reads commit history using go-git.
type GoGitRepository struct {
	repo *gogit.Repository
	path string
}

// OpenGoGit opens the repository containing path. Parent directories are
// searched for a .git directory.
func OpenGoGit(path string) (*GoGitRepository, error) {
	repo, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%w: %s", ErrRepositoryNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrRepositoryNotFound, path, err)
	}
	return &GoGitRepository{repo: repo, path: path}, nil
}

// Resolve resolves a revision to a commit. Annotated tags are peeled.
func (r *GoGitRepository) Resolve(rev string) (CommitInfo, error) {
	hash, err := r.repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return CommitInfo{}, resolveError(rev, err)
	}

	c, err := r.commitObject(*hash)
	if err != nil {
		return CommitInfo{}, fmt.Errorf("%s: %w", rev, err)
	}
	return toCommitInfo(c), nil
}

// resolveError classifies a ResolveRevision failure. Only a missing ref,
// object or parent means the revision names nothing; any other failure is a
// problem reading the repository.
func resolveError(rev string, err error) error {
	switch {
	case errors.Is(err, plumbing.ErrReferenceNotFound),
		errors.Is(err, plumbing.ErrObjectNotFound),
		errors.Is(err, object.ErrParentNotFound),
		// rev~N and rev^N past a root commit
		errors.Is(err, io.EOF):
		return fmt.Errorf("%w: %s", ErrReferenceNotFound, rev)
	}
	return fmt.Errorf("%w: resolve %s: %v", ErrTraversal, rev, err)
}

// Commit looks up a commit by its full hash.
func (r *GoGitRepository) Commit(sha string) (CommitInfo, error) {
	c, err := r.commitObject(plumbing.NewHash(sha))
	if err != nil {
		return CommitInfo{}, err
	}
	return toCommitInfo(c), nil
}

// MergeBases returns the best common ancestors of a and b, newest first.
func (r *GoGitRepository) MergeBases(a, b string) ([]CommitInfo, error) {
	ca, err := r.commitObject(plumbing.NewHash(a))
	if err != nil {
		return nil, err
	}
	cb, err := r.commitObject(plumbing.NewHash(b))
	if err != nil {
		return nil, err
	}

	bases, err := ca.MergeBase(cb)
	if err != nil {
		return nil, fmt.Errorf("%w: merge-base %s %s: %v", ErrTraversal, a, b, err)
	}

	result := make([]CommitInfo, 0, len(bases))
	for _, c := range bases {
		result = append(result, toCommitInfo(c))
	}
	SortNewestFirst(result)
	return result, nil
}

// Refs lists local branches, remote branches and tags sorted by full name.
func (r *GoGitRepository) Refs() ([]RefInfo, error) {
	iter, err := r.repo.References()
	if err != nil {
		return nil, fmt.Errorf("%w: list references: %v", ErrTraversal, err)
	}
	defer iter.Close()

	var refs []RefInfo
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		if ref.Type() != plumbing.HashReference {
			return nil
		}
		name := ref.Name()
		var kind RefKind
		switch {
		case name.IsBranch():
			kind = RefKindBranch
		case name.IsRemote():
			kind = RefKindRemote
		case name.IsTag():
			kind = RefKindTag
		default:
			return nil
		}
		refs = append(refs, RefInfo{Name: name.Short(), FullName: name.String(), Kind: kind})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: list references: %v", ErrTraversal, err)
	}

	sort.Slice(refs, func(i, j int) bool { return refs[i].FullName < refs[j].FullName })
	return refs, nil
}

// commitObject loads a commit, peeling an annotated tag if the hash names one.
func (r *GoGitRepository) commitObject(hash plumbing.Hash) (*object.Commit, error) {
	c, err := r.repo.CommitObject(hash)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, plumbing.ErrObjectNotFound) {
		return nil, fmt.Errorf("%w: read commit %s: %v", ErrTraversal, hash, err)
	}

	tag, tagErr := r.repo.TagObject(hash)
	if tagErr != nil {
		return nil, fmt.Errorf("%w: %s", ErrReferenceNotFound, hash)
	}
	c, err = tag.Commit()
	if err != nil {
		return nil, fmt.Errorf("%w: tag %s does not point to a commit", ErrReferenceNotFound, tag.Name)
	}
	return c, nil
}

func toCommitInfo(c *object.Commit) CommitInfo {
	parents := make([]string, 0, len(c.ParentHashes))
	for _, p := range c.ParentHashes {
		parents = append(parents, p.String())
	}
	return CommitInfo{
		SHA:     c.Hash.String(),
		Parents: parents,
		When:    c.Committer.When,
		Author:  AuthorInfo{Name: c.Author.Name, Email: c.Author.Email},
		Message: c.Message,
	}
}
