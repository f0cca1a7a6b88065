// Package lineage classifies how commits relate to each other and folds
// those relationships into a lineage graph.
package lineage

import "github.com/masmgr/gitlineage/internal/git"

// Kind is the relationship of one commit to another.
type Kind int

const (
	// Unrelated commits share no history, or are the same commit.
	Unrelated Kind = iota
	// AncestorOf means the first commit is an ancestor of the second.
	AncestorOf
	// DescendantOf means the first commit is a descendant of the second.
	DescendantOf
	// Diverged means neither commit reaches the other but both descend from a
	// common ancestor distinct from either of them.
	Diverged
)

// String returns a string representation of the kind.
func (k Kind) String() string {
	switch k {
	case Unrelated:
		return "unrelated"
	case AncestorOf:
		return "ancestor"
	case DescendantOf:
		return "descendant"
	case Diverged:
		return "diverged"
	default:
		return "unknown"
	}
}

// Relationship is the result of classifying an ordered pair of commits.
type Relationship struct {
	Kind Kind
	Base *git.CommitInfo // Nearest common ancestor, set only for Diverged
}

// Inverse returns the relationship seen from the other commit of the pair.
func (r Relationship) Inverse() Relationship {
	switch r.Kind {
	case AncestorOf:
		return Relationship{Kind: DescendantOf}
	case DescendantOf:
		return Relationship{Kind: AncestorOf}
	default:
		return r
	}
}
