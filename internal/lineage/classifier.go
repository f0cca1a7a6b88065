package lineage

import "github.com/masmgr/gitlineage/internal/git"

// Classifier decides the relationship between two commits.
type Classifier struct {
	oracle   *Oracle
	resolver *Resolver
}

// NewClassifier creates a Classifier from its two collaborators.
func NewClassifier(oracle *Oracle, resolver *Resolver) *Classifier {
	return &Classifier{oracle: oracle, resolver: resolver}
}

// Classify returns the relationship of a to b. The checks run in a fixed
// order and the first match wins:
//
//  1. b is an ancestor of a: DescendantOf
//  2. a is an ancestor of b: AncestorOf
//  3. their merge base exists and differs from both: Diverged
//  4. otherwise: Unrelated
//
// The merge base of an ancestor/descendant pair is the ancestor itself, so
// the first two checks and the third never both apply.
func (c *Classifier) Classify(a, b git.CommitInfo) (Relationship, error) {
	if a.SHA == b.SHA {
		return Relationship{Kind: Unrelated}, nil
	}

	ok, err := c.oracle.IsAncestor(b, a)
	if err != nil {
		return Relationship{}, err
	}
	if ok {
		return Relationship{Kind: DescendantOf}, nil
	}

	ok, err = c.oracle.IsAncestor(a, b)
	if err != nil {
		return Relationship{}, err
	}
	if ok {
		return Relationship{Kind: AncestorOf}, nil
	}

	base, err := c.resolver.MergeBase(a, b)
	if err != nil {
		return Relationship{}, err
	}
	if base != nil && base.SHA != a.SHA && base.SHA != b.SHA {
		return Relationship{Kind: Diverged, Base: base}, nil
	}

	return Relationship{Kind: Unrelated}, nil
}
