package walker

import (
	"os"
	"path/filepath"
	"testing"
)

// makeTree creates files (paths ending without "/") and directories (paths
// ending with "/") below a fresh temporary root.
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
		if err := os.WriteFile(full, []byte(p), 0o644); err != nil {
			t.Fatalf("failed to create file %s: %v", p, err)
		}
	}
	return root
}

// relNames renders entries as slash separated paths relative to root.
func relNames(t *testing.T, root string, entries []Entry) []string {
	t.Helper()

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		rel, err := filepath.Rel(root, e.Path())
		if err != nil {
			t.Fatalf("failed to relativise %s: %v", e.Path(), err)
		}
		names = append(names, filepath.ToSlash(rel))
	}
	return names
}
