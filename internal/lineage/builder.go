package lineage

import (
	"fmt"

	"github.com/masmgr/gitlineage/internal/git"
)

// Options configures a Builder.
type Options struct {
	CacheSize  int                   // Reachability cache entries; 0 disables caching
	OnProgress func(done, total int) // Called after each input commit is inserted
}

// Builder folds commits into a lineage graph.
type Builder struct {
	classifier *Classifier
	opts       Options
}

// NewBuilder creates a Builder reading history from repo.
func NewBuilder(repo git.Repository, opts Options) (*Builder, error) {
	oracle, err := NewOracle(repo, opts.CacheSize)
	if err != nil {
		return nil, err
	}
	return &Builder{
		classifier: NewClassifier(oracle, NewResolver(repo)),
		opts:       opts,
	}, nil
}

// Classifier returns the classifier used by the builder.
func (b *Builder) Classifier() *Classifier {
	return b.classifier
}

// Build inserts the commits into a new graph in the given order.
func (b *Builder) Build(commits []git.CommitInfo) (*Graph, error) {
	g := NewGraph()
	for i, c := range commits {
		if err := b.Insert(g, c); err != nil {
			return nil, fmt.Errorf("insert %s: %w", c.ShortSHA(7), err)
		}
		if b.opts.OnProgress != nil {
			b.opts.OnProgress(i+1, len(commits))
		}
	}
	return g, nil
}

// Insert classifies c against every node already in g, in insertion order,
// and adds the resulting edges:
//
//   - c is an ancestor of the node: c -> node
//   - c is a descendant of the node: node -> c
//   - they diverged: base -> c and base -> node, adding base as a node first
//   - unrelated: nothing
//
// c itself is added as a node if it is not present yet.
//
// A commit that is already an input node is skipped: every node added since
// its first insertion was either classified against it then or is a merge
// base connecting two later inputs, so the graph already holds what
// inserting it once produces. A commit present only as a merge base goes
// through the full pass and becomes an input.
//
// A merge base added here is only a connective node: it is not classified
// against the other nodes, so the graph is complete only for relationships
// among inputs and the bases that connect them. Later inputs are still
// classified against it like any other node.
func (b *Builder) Insert(g *Graph, c git.CommitInfo) error {
	if n, ok := g.Node(c.SHA); ok && n.Origin == OriginInput {
		return nil
	}

	for _, n := range g.Nodes() {
		rel, err := b.classifier.Classify(c, n.Commit)
		if err != nil {
			return err
		}

		switch rel.Kind {
		case AncestorOf:
			g.AddNode(c, OriginInput)
			g.AddEdge(c.SHA, n.ID())
		case DescendantOf:
			g.AddNode(c, OriginInput)
			g.AddEdge(n.ID(), c.SHA)
		case Diverged:
			g.AddNode(*rel.Base, OriginMergeBase)
			g.AddNode(c, OriginInput)
			g.AddEdge(rel.Base.SHA, c.SHA)
			g.AddEdge(rel.Base.SHA, n.ID())
		}
	}

	g.AddNode(c, OriginInput)
	return nil
}
