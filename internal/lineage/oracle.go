package lineage

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/masmgr/gitlineage/internal/git"
)

type commitPair struct {
	ancestor   string
	descendant string
}

// Oracle answers reachability questions over commit history.
// Answers are memoized when a cache size is configured; history is
// immutable so a cached answer never goes stale within a run.
type Oracle struct {
	repo  git.Repository
	cache *lru.Cache[commitPair, bool]
}

// NewOracle creates an Oracle. A cacheSize of zero disables memoization.
func NewOracle(repo git.Repository, cacheSize int) (*Oracle, error) {
	o := &Oracle{repo: repo}
	if cacheSize > 0 {
		cache, err := lru.New[commitPair, bool](cacheSize)
		if err != nil {
			return nil, fmt.Errorf("create reachability cache: %w", err)
		}
		o.cache = cache
	}
	return o, nil
}

// IsAncestor reports whether ancestor is reachable from descendant by
// following parent links. A commit is never its own ancestor.
func (o *Oracle) IsAncestor(ancestor, descendant git.CommitInfo) (bool, error) {
	if ancestor.SHA == descendant.SHA {
		return false, nil
	}

	key := commitPair{ancestor: ancestor.SHA, descendant: descendant.SHA}
	if o.cache != nil {
		if found, ok := o.cache.Get(key); ok {
			return found, nil
		}
	}

	found, err := git.Reaches(o.repo, descendant, ancestor.SHA)
	if err != nil {
		return false, err
	}

	if o.cache != nil {
		o.cache.Add(key, found)
	}
	return found, nil
}
