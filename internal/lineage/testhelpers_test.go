package lineage

import (
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/masmgr/gitlineage/internal/git"
)

// commitAt builds a commit whose committer time is `minute` minutes after a fixed base.
func commitAt(sha string, minute int, parents ...string) git.CommitInfo {
	return git.CommitInfo{
		SHA:     sha,
		Parents: parents,
		When:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(minute) * time.Minute),
		Message: "Commit " + sha + "\n\nDetails for " + sha,
	}
}

// sampleHistory builds:
//
//	r0 - r - a - a2
//	      \
//	       b - b2
//	        \
//	         c
//	u                 (unrelated root)
func sampleHistory() *git.MockRepository {
	return git.NewMockRepository(
		commitAt("r0", 0),
		commitAt("r", 1, "r0"),
		commitAt("a", 2, "r"),
		commitAt("a2", 3, "a"),
		commitAt("b", 4, "r"),
		commitAt("b2", 5, "b"),
		commitAt("c", 6, "b"),
		commitAt("u", 7),
	)
}

func newTestBuilder(t *testing.T, repo git.Repository) *Builder {
	t.Helper()

	b, err := NewBuilder(repo, Options{CacheSize: 64})
	if err != nil {
		t.Fatalf("NewBuilder: %v", err)
	}
	return b
}

func commitsFor(t *testing.T, repo git.Repository, shas ...string) []git.CommitInfo {
	t.Helper()

	commits, err := git.ResolveAll(repo, shas)
	if err != nil {
		t.Fatalf("ResolveAll(%v): %v", shas, err)
	}
	return commits
}

func nodeIDs(g *Graph) []string {
	var ids []string
	for _, n := range g.Nodes() {
		ids = append(ids, n.ID())
	}
	return ids
}

func edgeStrings(g *Graph) []string {
	var out []string
	for _, e := range g.Edges() {
		out = append(out, fmt.Sprintf("%s->%s", e.From, e.To))
	}
	return out
}

func sortedCopy(in []string) []string {
	out := append([]string(nil), in...)
	sort.Strings(out)
	return out
}
