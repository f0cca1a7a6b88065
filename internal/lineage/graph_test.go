package lineage

import (
	"reflect"
	"testing"
)

func TestGraph_AddNodeIsIdempotent(t *testing.T) {
	g := NewGraph()

	if _, added := g.AddNode(commitAt("a", 1), OriginInput); !added {
		t.Fatal("first AddNode reported existing node")
	}
	if _, added := g.AddNode(commitAt("a", 1), OriginInput); added {
		t.Fatal("second AddNode reported new node")
	}
	if g.NodeCount() != 1 {
		t.Fatalf("NodeCount = %d, want 1", g.NodeCount())
	}
}

func TestGraph_OriginPromotion(t *testing.T) {
	g := NewGraph()

	g.AddNode(commitAt("m", 1), OriginMergeBase)
	g.AddNode(commitAt("m", 1), OriginMergeBase)
	n, _ := g.Node("m")
	if n.Origin != OriginMergeBase {
		t.Fatalf("Origin = %v, want merge-base", n.Origin)
	}

	g.AddNode(commitAt("m", 1), OriginInput)
	if n.Origin != OriginInput {
		t.Fatalf("Origin = %v, want input after promotion", n.Origin)
	}

	// An input never turns back into a merge base.
	g.AddNode(commitAt("m", 1), OriginMergeBase)
	if n.Origin != OriginInput {
		t.Fatalf("Origin = %v, want input", n.Origin)
	}
}

func TestGraph_AddEdge(t *testing.T) {
	g := NewGraph()
	g.AddNode(commitAt("a", 1), OriginInput)
	g.AddNode(commitAt("b", 2, "a"), OriginInput)

	tests := []struct {
		name      string
		from, to  string
		wantAdded bool
	}{
		{name: "New edge", from: "a", to: "b", wantAdded: true},
		{name: "Duplicate edge", from: "a", to: "b", wantAdded: false},
		{name: "Self loop", from: "a", to: "a", wantAdded: false},
		{name: "Unknown source", from: "x", to: "b", wantAdded: false},
		{name: "Unknown target", from: "a", to: "x", wantAdded: false},
	}

	for _, tt := range tests {
		if got := g.AddEdge(tt.from, tt.to); got != tt.wantAdded {
			t.Errorf("%s: AddEdge(%s, %s) = %v, want %v", tt.name, tt.from, tt.to, got, tt.wantAdded)
		}
	}

	if g.EdgeCount() != 1 || !g.HasEdge("a", "b") || g.HasEdge("b", "a") {
		t.Fatalf("edges = %v, want [a->b]", edgeStrings(g))
	}
}

func TestGraph_RootsAndTips(t *testing.T) {
	g := NewGraph()
	for _, sha := range []string{"m", "a", "b", "u"} {
		g.AddNode(commitAt(sha, 1), OriginInput)
	}
	g.AddEdge("m", "a")
	g.AddEdge("m", "b")

	var roots, tips []string
	for _, n := range g.Roots() {
		roots = append(roots, n.ID())
	}
	for _, n := range g.Tips() {
		tips = append(tips, n.ID())
	}

	if want := []string{"m", "u"}; !reflect.DeepEqual(roots, want) {
		t.Errorf("Roots = %v, want %v", roots, want)
	}
	if want := []string{"a", "b", "u"}; !reflect.DeepEqual(tips, want) {
		t.Errorf("Tips = %v, want %v", tips, want)
	}
}

func TestGraph_EnumerationIsACopy(t *testing.T) {
	g := NewGraph()
	g.AddNode(commitAt("a", 1), OriginInput)
	g.AddNode(commitAt("b", 2), OriginInput)
	g.AddEdge("a", "b")

	nodes := g.Nodes()
	nodes[0] = nil
	edges := g.Edges()
	edges[0] = Edge{From: "x", To: "y"}

	if g.Nodes()[0] == nil || g.Edges()[0].From != "a" {
		t.Fatal("modifying enumerated slices changed the graph")
	}
}

func TestNode_Message(t *testing.T) {
	n := &Node{Commit: commitAt("a", 1)}
	if n.Message() != "Commit a" {
		t.Errorf("Message() = %q, want %q", n.Message(), "Commit a")
	}
	if n.ID() != "a" {
		t.Errorf("ID() = %q, want %q", n.ID(), "a")
	}
}

func TestOrigin_String(t *testing.T) {
	if OriginInput.String() != "input" || OriginMergeBase.String() != "merge-base" || Origin(7).String() != "unknown" {
		t.Fatal("unexpected Origin strings")
	}
}
