package lineage

import "github.com/masmgr/gitlineage/internal/git"

// Origin records why a node is part of the graph.
type Origin int

const (
	// OriginInput marks a commit that was supplied as input.
	OriginInput Origin = iota
	// OriginMergeBase marks a common ancestor added to connect two diverging inputs.
	OriginMergeBase
)

// String returns a string representation of the origin.
func (o Origin) String() string {
	switch o {
	case OriginInput:
		return "input"
	case OriginMergeBase:
		return "merge-base"
	default:
		return "unknown"
	}
}

// Node is a commit in the lineage graph.
type Node struct {
	Commit git.CommitInfo
	Origin Origin
}

// ID returns the full commit hash.
func (n *Node) ID() string {
	return n.Commit.SHA
}

// Message returns the first line of the commit message.
func (n *Node) Message() string {
	return n.Commit.Subject()
}

// Edge points from an ancestor to one of its descendants.
type Edge struct {
	From string
	To   string
}

// Graph is a directed lineage graph. Nodes and edges keep insertion order so
// that enumerating them is reproducible.
type Graph struct {
	nodes   []*Node
	index   map[string]*Node
	edges   []Edge
	edgeSet map[Edge]struct{}
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{
		index:   make(map[string]*Node),
		edgeSet: make(map[Edge]struct{}),
	}
}

// AddNode adds a commit as a node and reports whether it was new. Adding a
// commit that is already present is a no-op, except that a merge-base node
// supplied later as input is marked as an input.
func (g *Graph) AddNode(c git.CommitInfo, origin Origin) (*Node, bool) {
	if n, ok := g.index[c.SHA]; ok {
		if origin == OriginInput {
			n.Origin = OriginInput
		}
		return n, false
	}

	n := &Node{Commit: c, Origin: origin}
	g.nodes = append(g.nodes, n)
	g.index[c.SHA] = n
	return n, true
}

// AddEdge adds an edge between two existing nodes and reports whether it was
// new. Self loops, duplicates and edges touching unknown nodes are refused.
func (g *Graph) AddEdge(from, to string) bool {
	if from == to {
		return false
	}
	if _, ok := g.index[from]; !ok {
		return false
	}
	if _, ok := g.index[to]; !ok {
		return false
	}

	e := Edge{From: from, To: to}
	if _, ok := g.edgeSet[e]; ok {
		return false
	}
	g.edges = append(g.edges, e)
	g.edgeSet[e] = struct{}{}
	return true
}

// Node returns the node for a commit hash.
func (g *Graph) Node(sha string) (*Node, bool) {
	n, ok := g.index[sha]
	return n, ok
}

// HasEdge reports whether the edge from -> to exists.
func (g *Graph) HasEdge(from, to string) bool {
	_, ok := g.edgeSet[Edge{From: from, To: to}]
	return ok
}

// Nodes returns the nodes in insertion order.
func (g *Graph) Nodes() []*Node {
	return append([]*Node(nil), g.nodes...)
}

// Edges returns the edges in insertion order.
func (g *Graph) Edges() []Edge {
	return append([]Edge(nil), g.edges...)
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// Roots returns the nodes without incoming edges, in insertion order.
func (g *Graph) Roots() []*Node {
	hasIncoming := make(map[string]bool, len(g.edges))
	for _, e := range g.edges {
		hasIncoming[e.To] = true
	}
	return g.filter(func(n *Node) bool { return !hasIncoming[n.ID()] })
}

// Tips returns the nodes without outgoing edges, in insertion order.
func (g *Graph) Tips() []*Node {
	hasOutgoing := make(map[string]bool, len(g.edges))
	for _, e := range g.edges {
		hasOutgoing[e.From] = true
	}
	return g.filter(func(n *Node) bool { return !hasOutgoing[n.ID()] })
}

func (g *Graph) filter(keep func(*Node) bool) []*Node {
	var out []*Node
	for _, n := range g.nodes {
		if keep(n) {
			out = append(out, n)
		}
	}
	return out
}
