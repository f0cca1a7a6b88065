package output

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/masmgr/gitlineage/internal/git"
	"github.com/masmgr/gitlineage/internal/lineage"
)

const (
	shaBase  = "1111111aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	shaLeft  = "2222222bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
	shaRight = "3333333ccccccccccccccccccccccccccccccccc"
)

// sampleReport builds a diverged pair joined by their merge base.
func sampleReport() *GraphReport {
	when := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	g := lineage.NewGraph()
	g.AddNode(git.CommitInfo{SHA: shaLeft, Parents: []string{shaBase}, When: when, Message: "Add \"quoted\" feature\n\nbody"}, lineage.OriginInput)
	g.AddNode(git.CommitInfo{SHA: shaBase, When: when, Message: "Initial commit"}, lineage.OriginMergeBase)
	g.AddNode(git.CommitInfo{SHA: shaRight, Parents: []string{shaBase}, When: when, Message: `Fix C:\path handling`}, lineage.OriginInput)
	g.AddEdge(shaBase, shaRight)
	g.AddEdge(shaBase, shaLeft)

	return &GraphReport{
		RepoPath:    "/tmp/repo",
		GeneratedAt: time.Date(2024, 2, 1, 9, 30, 0, 0, time.UTC),
		Graph:       g,
	}
}

// writeToFile runs a writer against a temp file and returns what it wrote.
func writeToFile(t *testing.T, w GraphWriter, report *GraphReport, options OutputOptions) string {
	t.Helper()
	options.OutputPath = filepath.Join(t.TempDir(), "out")
	if err := w.Write(report, options); err != nil {
		t.Fatalf("Write: %v", err)
	}
	data, err := os.ReadFile(options.OutputPath)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	return string(data)
}

func assertContains(t *testing.T, got string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(got, want) {
			t.Errorf("output does not contain %q:\n%s", want, got)
		}
	}
}
