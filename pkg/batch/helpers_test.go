package batch

import (
	"os"
	"path/filepath"
	"testing"
)

// makeTree creates the given files (and directories ending in "/") under a
// temporary root.
func makeTree(t *testing.T, paths ...string) string {
	t.Helper()

	root := t.TempDir()
	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(p))
		if p[len(p)-1] == '/' {
			if err := os.MkdirAll(full, 0o755); err != nil {
				t.Fatalf("failed to create dir %s: %v", p, err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatalf("failed to create parent of %s: %v", p, err)
		}
		if err := os.WriteFile(full, nil, 0o644); err != nil {
			t.Fatalf("failed to create file %s: %v", p, err)
		}
	}
	return root
}

// renames renders deltas as "old -> new" using names only.
func renames(deltas []Delta) []string {
	out := make([]string, len(deltas))
	for i, d := range deltas {
		out[i] = d.OldName + " -> " + d.NewName
	}
	return out
}
