package git

import (
	"container/heap"
	"errors"
	"sort"
)

// ErrStopWalk can be returned by a Walk callback to end the walk early without error.
var ErrStopWalk = errors.New("stop walk")

// Walk visits from and every commit reachable from it through parent links
// in topological order: a commit is visited only after all of its children
// within the walk. Commits that become ready at the same time are visited
// newest first, ties broken by hash, so the order is reproducible.
//
// Each commit is visited exactly once regardless of how many paths lead to it.
// The whole ancestry of from is read before the first visit, so returning
// ErrStopWalk saves callback work but no commit lookups. Use Reaches to test
// reachability without reading the full history.
func Walk(repo Repository, from CommitInfo, fn func(CommitInfo) error) error {
	commits, err := collectAncestry(repo, from)
	if err != nil {
		return err
	}

	// Number of not yet visited children of each commit, within the walk.
	pending := make(map[string]int, len(commits))
	for _, c := range commits {
		for _, p := range uniqueParents(c.Parents) {
			pending[p]++
		}
	}

	queue := &commitQueue{}
	heap.Push(queue, from)

	for queue.Len() > 0 {
		c := heap.Pop(queue).(CommitInfo)
		if err := fn(c); err != nil {
			if errors.Is(err, ErrStopWalk) {
				return nil
			}
			return err
		}

		for _, p := range uniqueParents(c.Parents) {
			pending[p]--
			if pending[p] == 0 {
				heap.Push(queue, commits[p])
			}
		}
	}

	return nil
}

// FindMergeBases computes the best common ancestors of two commits by
// intersecting their ancestries and dropping every common ancestor that is
// itself an ancestor of another one. The result is sorted newest first.
func FindMergeBases(repo Repository, a, b string) ([]CommitInfo, error) {
	ca, err := repo.Commit(a)
	if err != nil {
		return nil, err
	}
	cb, err := repo.Commit(b)
	if err != nil {
		return nil, err
	}

	ancB, err := collectAncestry(repo, cb)
	if err != nil {
		return nil, err
	}

	// Walking a's ancestry topologically visits every common ancestor after
	// all commits between it and a, so "below" is complete when it is checked.
	// A common ancestor reachable from another common ancestor is not "best".
	var bases []CommitInfo
	below := make(map[string]bool)
	err = Walk(repo, ca, func(c CommitInfo) error {
		_, common := ancB[c.SHA]
		if common && !below[c.SHA] {
			bases = append(bases, c)
		}
		if common || below[c.SHA] {
			for _, p := range c.Parents {
				below[p] = true
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	SortNewestFirst(bases)

	return bases, nil
}

// SortNewestFirst sorts commits by committer time (newest first), then by hash.
func SortNewestFirst(commits []CommitInfo) {
	sort.SliceStable(commits, func(i, j int) bool {
		return newerThan(commits[i], commits[j])
	})
}

func newerThan(a, b CommitInfo) bool {
	if !a.When.Equal(b.When) {
		return a.When.After(b.When)
	}
	return a.SHA < b.SHA
}

// Reaches reports whether target is from or one of its ancestors. Commits are
// read lazily, breadth first, and the search returns as soon as target shows
// up as a parent, so a near ancestor costs a handful of lookups however deep
// the history is. A negative answer reads the whole ancestry of from.
func Reaches(repo Repository, from CommitInfo, target string) (bool, error) {
	if from.SHA == target {
		return true, nil
	}

	seen := map[string]bool{from.SHA: true}
	queue := []CommitInfo{from}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]

		for _, p := range c.Parents {
			if p == target {
				return true, nil
			}
			if seen[p] {
				continue
			}
			seen[p] = true
			parent, err := repo.Commit(p)
			if err != nil {
				return false, err
			}
			queue = append(queue, parent)
		}
	}

	return false, nil
}

// collectAncestry returns from and all of its ancestors keyed by hash.
func collectAncestry(repo Repository, from CommitInfo) (map[string]CommitInfo, error) {
	commits := map[string]CommitInfo{from.SHA: from}
	stack := []CommitInfo{from}

	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, p := range c.Parents {
			if _, seen := commits[p]; seen {
				continue
			}
			parent, err := repo.Commit(p)
			if err != nil {
				return nil, err
			}
			commits[p] = parent
			stack = append(stack, parent)
		}
	}

	return commits, nil
}

func uniqueParents(parents []string) []string {
	if len(parents) < 2 {
		return parents
	}
	seen := make(map[string]bool, len(parents))
	out := make([]string, 0, len(parents))
	for _, p := range parents {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	return out
}

// commitQueue is a heap of commits ready to be visited.
type commitQueue []CommitInfo

func (q commitQueue) Len() int           { return len(q) }
func (q commitQueue) Less(i, j int) bool { return newerThan(q[i], q[j]) }
func (q commitQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }

func (q *commitQueue) Push(x any) {
	*q = append(*q, x.(CommitInfo))
}

func (q *commitQueue) Pop() any {
	old := *q
	n := len(old)
	c := old[n-1]
	*q = old[:n-1]
	return c
}
