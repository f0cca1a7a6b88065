package git

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
)

// MatchRefs returns the refs whose short or full name matches any of the glob
// patterns, keeping the input order. Patterns use doublestar syntax, so
// "release/**" matches nested branch names.
func MatchRefs(refs []RefInfo, patterns []string) ([]RefInfo, error) {
	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid ref pattern %q: %w", pattern, doublestar.ErrBadPattern)
		}
	}

	var matched []RefInfo
	for _, ref := range refs {
		if matchesAny(ref, patterns) {
			matched = append(matched, ref)
		}
	}
	return matched, nil
}

func matchesAny(ref RefInfo, patterns []string) bool {
	for _, pattern := range patterns {
		if ok, _ := doublestar.Match(pattern, ref.Name); ok {
			return true
		}
		if ok, _ := doublestar.Match(pattern, ref.FullName); ok {
			return true
		}
	}
	return false
}
