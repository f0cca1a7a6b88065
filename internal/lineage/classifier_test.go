package lineage

import (
	"testing"

	"github.com/masmgr/gitlineage/internal/git"
)

func newTestClassifier(t *testing.T, repo git.Repository) *Classifier {
	t.Helper()

	oracle, err := NewOracle(repo, 0)
	if err != nil {
		t.Fatalf("NewOracle: %v", err)
	}
	return NewClassifier(oracle, NewResolver(repo))
}

func TestClassifier_Classify(t *testing.T) {
	repo := sampleHistory()
	c := newTestClassifier(t, repo)

	tests := []struct {
		name     string
		a, b     string
		wantKind Kind
		wantBase string
	}{
		{name: "Direct parent", a: "a", b: "r", wantKind: DescendantOf},
		{name: "Grandchild", a: "a2", b: "r0", wantKind: DescendantOf},
		{name: "Ancestor", a: "r", b: "a2", wantKind: AncestorOf},
		{name: "Diverged", a: "a2", b: "b2", wantKind: Diverged, wantBase: "r"},
		{name: "Diverged siblings", a: "b2", b: "c", wantKind: Diverged, wantBase: "b"},
		{name: "Unrelated roots", a: "u", b: "r0", wantKind: Unrelated},
		{name: "Unrelated branches", a: "c", b: "u", wantKind: Unrelated},
		{name: "Same commit", a: "a", b: "a", wantKind: Unrelated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _ := repo.Commit(tt.a)
			b, _ := repo.Commit(tt.b)

			rel, err := c.Classify(a, b)
			if err != nil {
				t.Fatalf("Classify: %v", err)
			}
			if rel.Kind != tt.wantKind {
				t.Fatalf("Classify(%s, %s) = %v, want %v", tt.a, tt.b, rel.Kind, tt.wantKind)
			}
			if tt.wantBase == "" {
				if rel.Base != nil {
					t.Fatalf("Base = %s, want none", rel.Base.SHA)
				}
				return
			}
			if rel.Base == nil || rel.Base.SHA != tt.wantBase {
				t.Fatalf("Base = %v, want %s", rel.Base, tt.wantBase)
			}
		})
	}
}

func TestClassifier_CrissCrossPicksNewestBase(t *testing.T) {
	repo := git.NewMockRepository(
		commitAt("r", 1),
		commitAt("p", 2, "r"),
		commitAt("q", 3, "r"),
		commitAt("x", 4, "p", "q"),
		commitAt("y", 5, "q", "p"),
	)
	c := newTestClassifier(t, repo)

	x, _ := repo.Commit("x")
	y, _ := repo.Commit("y")
	rel, err := c.Classify(x, y)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if rel.Kind != Diverged || rel.Base == nil || rel.Base.SHA != "q" {
		t.Fatalf("Classify(x, y) = %+v, want diverged at q", rel)
	}
}

func TestRelationship_Inverse(t *testing.T) {
	base := commitAt("m", 1)
	tests := []struct {
		in   Relationship
		want Kind
	}{
		{in: Relationship{Kind: AncestorOf}, want: DescendantOf},
		{in: Relationship{Kind: DescendantOf}, want: AncestorOf},
		{in: Relationship{Kind: Unrelated}, want: Unrelated},
		{in: Relationship{Kind: Diverged, Base: &base}, want: Diverged},
	}

	for _, tt := range tests {
		got := tt.in.Inverse()
		if got.Kind != tt.want {
			t.Errorf("%v.Inverse() = %v, want %v", tt.in.Kind, got.Kind, tt.want)
		}
		if got.Base != tt.in.Base {
			t.Errorf("%v.Inverse() changed the base", tt.in.Kind)
		}
	}
}

func TestKind_String(t *testing.T) {
	tests := map[Kind]string{
		Unrelated:    "unrelated",
		AncestorOf:   "ancestor",
		DescendantOf: "descendant",
		Diverged:     "diverged",
		Kind(42):     "unknown",
	}
	for kind, want := range tests {
		if got := kind.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", kind, got, want)
		}
	}
}
