package git

import (
	"fmt"
	"sort"
	"strings"
)

// MockRepository is an in-memory Repository for tests.
// It allows tests to describe a commit DAG without needing a real Git repository.
type MockRepository struct {
	Commits map[string]CommitInfo
	Names   map[string]string // ref name -> commit hash
	Error   error             // returned by every lookup when set
}

// NewMockRepository creates a MockRepository holding the given commits.
func NewMockRepository(commits ...CommitInfo) *MockRepository {
	m := &MockRepository{
		Commits: make(map[string]CommitInfo, len(commits)),
		Names:   make(map[string]string),
	}
	for _, c := range commits {
		m.Commits[c.SHA] = c
	}
	return m
}

// Add adds a commit to the repository.
func (m *MockRepository) Add(c CommitInfo) {
	m.Commits[c.SHA] = c
}

// Name points a branch name at a commit.
func (m *MockRepository) Name(name, sha string) {
	m.Names[name] = sha
}

// Resolve resolves a ref name, a full hash or a unique hash prefix.
func (m *MockRepository) Resolve(rev string) (CommitInfo, error) {
	if m.Error != nil {
		return CommitInfo{}, m.Error
	}
	if sha, ok := m.Names[rev]; ok {
		return m.Commit(sha)
	}
	if c, ok := m.Commits[rev]; ok {
		return c, nil
	}

	var match *CommitInfo
	for sha, c := range m.Commits {
		if rev != "" && strings.HasPrefix(sha, rev) {
			if match != nil {
				return CommitInfo{}, fmt.Errorf("%w: %s is ambiguous", ErrReferenceNotFound, rev)
			}
			c := c
			match = &c
		}
	}
	if match == nil {
		return CommitInfo{}, fmt.Errorf("%w: %s", ErrReferenceNotFound, rev)
	}
	return *match, nil
}

// Commit looks up a commit by its full hash.
func (m *MockRepository) Commit(sha string) (CommitInfo, error) {
	if m.Error != nil {
		return CommitInfo{}, m.Error
	}
	c, ok := m.Commits[sha]
	if !ok {
		return CommitInfo{}, fmt.Errorf("%w: %s", ErrReferenceNotFound, sha)
	}
	return c, nil
}

// MergeBases computes the best common ancestors from the in-memory DAG.
func (m *MockRepository) MergeBases(a, b string) ([]CommitInfo, error) {
	return FindMergeBases(m, a, b)
}

// Refs returns every name as a local branch.
func (m *MockRepository) Refs() ([]RefInfo, error) {
	if m.Error != nil {
		return nil, m.Error
	}
	refs := make([]RefInfo, 0, len(m.Names))
	for name := range m.Names {
		refs = append(refs, RefInfo{Name: name, FullName: "refs/heads/" + name, Kind: RefKindBranch})
	}
	sort.Slice(refs, func(i, j int) bool { return refs[i].FullName < refs[j].FullName })
	return refs, nil
}
