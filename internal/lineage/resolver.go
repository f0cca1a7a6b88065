package lineage

import "github.com/masmgr/gitlineage/internal/git"

// Resolver finds the nearest common ancestor of two commits.
type Resolver struct {
	repo git.Repository
}

// NewResolver creates a Resolver backed by the repository's merge-base primitive.
func NewResolver(repo git.Repository) *Resolver {
	return &Resolver{repo: repo}
}

// MergeBase returns the nearest common ancestor of a and b, or nil when their
// histories never converge. When several best common ancestors exist the
// newest one is returned, ties broken by hash.
func (r *Resolver) MergeBase(a, b git.CommitInfo) (*git.CommitInfo, error) {
	bases, err := r.repo.MergeBases(a.SHA, b.SHA)
	if err != nil {
		return nil, err
	}
	if len(bases) == 0 {
		return nil, nil
	}

	git.SortNewestFirst(bases)
	base := bases[0]
	return &base, nil
}
