package git

import (
	"strings"
	"time"
)

// CommitInfo represents the information about a Git commit needed to place it in a lineage graph.
type CommitInfo struct {
	SHA     string
	Parents []string
	When    time.Time
	Author  AuthorInfo
	Message string
}

// AuthorInfo represents commit author information.
type AuthorInfo struct {
	Name  string
	Email string
}

// Subject returns the first line of the commit message.
func (c CommitInfo) Subject() string {
	message := c.Message
	if idx := strings.IndexByte(message, '\n'); idx != -1 {
		message = message[:idx]
	}
	return strings.TrimRight(message, " \t\r")
}

// ShortSHA returns the first n characters of the commit hash.
func (c CommitInfo) ShortSHA(n int) string {
	if n <= 0 || n >= len(c.SHA) {
		return c.SHA
	}
	return c.SHA[:n]
}

// IsRoot returns true if the commit has no parents.
func (c CommitInfo) IsRoot() bool {
	return len(c.Parents) == 0
}

// RefKind represents the namespace a reference lives in.
type RefKind int

const (
	RefKindBranch RefKind = iota
	RefKindRemote
	RefKindTag
)

// String returns a string representation of the ref kind.
func (k RefKind) String() string {
	switch k {
	case RefKindBranch:
		return "branch"
	case RefKindRemote:
		return "remote"
	case RefKindTag:
		return "tag"
	default:
		return "unknown"
	}
}

// RefInfo describes a named reference in the repository.
type RefInfo struct {
	Name     string // Short name, e.g. "main", "origin/main", "v1.0"
	FullName string // e.g. "refs/heads/main"
	Kind     RefKind
}

// Backend selects the implementation used to read a repository.
type Backend string

const (
	BackendGoGit Backend = "go-git"
	BackendCLI   Backend = "git"
)

// OpenOptions configures how a repository is opened.
type OpenOptions struct {
	Path    string
	Backend Backend
}
