package batch

import (
	"path/filepath"
	"sort"
	"strings"
)

// ApplyOrder returns a copy of deltas ordered deepest directory first.
// Renaming a folder moves everything inside it, so nested entries must be
// renamed before their parents. Deltas at the same depth keep their order.
func ApplyOrder(deltas []Delta) []Delta {
	ordered := make([]Delta, len(deltas))
	copy(ordered, deltas)

	sort.SliceStable(ordered, func(i, j int) bool {
		return depth(ordered[i].Dir) > depth(ordered[j].Dir)
	})
	return ordered
}

func depth(dir string) int {
	return strings.Count(filepath.Clean(dir), string(filepath.Separator))
}

// Summary counts the deltas that change a name.
func Summary(deltas []Delta) (changed, unchanged int) {
	for _, d := range deltas {
		if d.Changed() {
			changed++
		} else {
			unchanged++
		}
	}
	return changed, unchanged
}
