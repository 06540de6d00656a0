// Package walker enumerates the rename candidates below a root directory.
package walker

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	logging "github.com/ipfs/go-log/v2"

	"github.com/tragoedia0722/batchrename/pkg/filename"
)

var log = logging.Logger("walker")

var (
	// ErrNotDirectory is returned when the walk root is not a directory
	ErrNotDirectory = errors.New("root is not a directory")
)

// Options selects which entries a walk yields.
type Options struct {
	// Recursive also lists every descendant directory of the root.
	Recursive bool
	// Folders yields directories instead of files.
	Folders bool
	// SplitExtension separates the extension from file names. It has no
	// effect when Folders is set.
	SplitExtension bool
}

// Entry is one candidate. Ext is empty unless the extension was split off.
type Entry struct {
	Dir  string
	Base string
	Ext  string
}

// Name returns the full entry name.
func (e Entry) Name() string {
	return e.Base + e.Ext
}

// Path returns the entry path.
func (e Entry) Path() string {
	return filepath.Join(e.Dir, e.Name())
}

// Walk lists the direct children of root, and of every directory below it
// when opts.Recursive is set. Directories are visited breadth first, with
// siblings in name order. Symlinked directories are neither yielded as
// folders nor descended into. A subdirectory that cannot be read is
// skipped; an unreadable root is an error.
func Walk(root string, opts Options) ([]Entry, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, &os.PathError{Op: "walk", Path: root, Err: ErrNotDirectory}
	}

	var entries []Entry
	queue := []string{root}

	for len(queue) > 0 {
		dir := queue[0]
		queue = queue[1:]

		children, err := os.ReadDir(dir)
		if err != nil {
			if dir == root {
				return nil, fmt.Errorf("read root: %w", err)
			}
			log.Warnf("skipping unreadable directory %s: %v", dir, err)
			continue
		}

		for _, child := range children {
			isDir := child.IsDir()

			if isDir && opts.Recursive {
				queue = append(queue, filepath.Join(dir, child.Name()))
			}
			if isDir != opts.Folders {
				continue
			}
			if !isDir && !child.Type().IsRegular() && !isSymlinkToFile(dir, child) {
				continue
			}

			entries = append(entries, newEntry(dir, child.Name(), opts))
		}
	}

	log.Debugf("walked %s: %d entries", root, len(entries))
	return entries, nil
}

func newEntry(dir, name string, opts Options) Entry {
	if opts.Folders || !opts.SplitExtension {
		return Entry{Dir: dir, Base: name}
	}
	base, ext := filename.SplitExt(name)
	return Entry{Dir: dir, Base: base, Ext: ext}
}

// isSymlinkToFile reports whether child is a symlink that does not resolve
// to a directory.
func isSymlinkToFile(dir string, child os.DirEntry) bool {
	if child.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(dir, child.Name()))
	if err != nil {
		// dangling links can still be renamed
		return true
	}
	return !info.IsDir()
}
