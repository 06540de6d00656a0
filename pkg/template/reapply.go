package template

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tragoedia0722/batchrename/pkg/applier"
)

// Reapply reads the edited template at path, applies its moves through a
// and removes the template file whatever the outcome. Lines whose name is
// unchanged are counted as unchanged by the applier. A missing template
// applies nothing.
func Reapply(s *Snapshot, a *applier.Applier, path string) (res applier.Result[Move], err error) {
	defer func() {
		if rmErr := os.Remove(path); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) && err == nil {
			err = rmErr
		}
	}()

	entries, err := ReadFile(path)
	if err != nil {
		return res, err
	}

	moves := s.Moves(entries)
	// nested entries first, so renaming a folder does not strand its children
	sort.SliceStable(moves, func(i, j int) bool {
		return depth(moves[i].From) > depth(moves[j].From)
	})

	res = applier.Apply(a, moves)

	log.Debugf("reapplied %s: %d renamed, %d failed", path, res.Succeeded, len(res.Failures))
	return res, nil
}

func depth(path string) int {
	return strings.Count(filepath.Clean(path), string(filepath.Separator))
}
