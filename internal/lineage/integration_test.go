package lineage_test

import (
	"reflect"
	"testing"

	"github.com/masmgr/gitlineage/internal/git"
	"github.com/masmgr/gitlineage/internal/gittest"
	"github.com/masmgr/gitlineage/internal/lineage"
)

func TestBuild_RealRepository(t *testing.T) {
	fx := gittest.New(t)
	root := fx.Commit("root")
	base := fx.Commit("base")
	left := fx.Commit("left work")
	right := fx.Commit("right work", base)
	merge := fx.Commit("merge left into right", right, left)
	fx.Branch("left", left)
	fx.Branch("right", right)
	fx.Branch("merged", merge)
	fx.Orphan("docs")
	docs := fx.Commit("docs root")

	repo, err := git.OpenGoGit(fx.Dir)
	if err != nil {
		t.Fatalf("OpenGoGit: %v", err)
	}
	b, err := lineage.NewBuilder(repo, lineage.Options{CacheSize: 128})
	if err != nil {
		t.Fatalf("NewBuilder: %v", err)
	}

	type edge = lineage.Edge
	tests := []struct {
		name      string
		revs      []string
		wantNodes []string
		wantEdges []edge
	}{
		{
			name:      "Diverged branches pull in their merge base",
			revs:      []string{"left", "right"},
			wantNodes: []string{left.String(), base.String(), right.String()},
			wantEdges: []edge{
				{From: base.String(), To: right.String()},
				{From: base.String(), To: left.String()},
			},
		},
		{
			name:      "Merge commit descends from both sides",
			revs:      []string{"merged", "left", "right"},
			wantNodes: []string{merge.String(), left.String(), right.String(), base.String()},
			wantEdges: []edge{
				{From: left.String(), To: merge.String()},
				{From: right.String(), To: merge.String()},
				{From: base.String(), To: right.String()},
				{From: base.String(), To: left.String()},
			},
		},
		{
			name:      "Unrelated history stays disconnected",
			revs:      []string{"docs", root.String()},
			wantNodes: []string{docs.String(), root.String()},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			commits, err := git.ResolveAll(repo, tt.revs)
			if err != nil {
				t.Fatalf("ResolveAll: %v", err)
			}
			g, err := b.Build(commits)
			if err != nil {
				t.Fatalf("Build: %v", err)
			}

			var nodes []string
			for _, n := range g.Nodes() {
				nodes = append(nodes, n.ID())
			}
			if !reflect.DeepEqual(nodes, tt.wantNodes) {
				t.Errorf("nodes = %v, want %v", nodes, tt.wantNodes)
			}
			if got := g.Edges(); !reflect.DeepEqual(got, tt.wantEdges) {
				t.Errorf("edges = %v, want %v", got, tt.wantEdges)
			}
		})
	}
}
