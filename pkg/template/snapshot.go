// Package template implements hand-edited batch renames.
//
// A Snapshot records the entries of a directory tree once. Write dumps it as
// a numbered text file the user edits freely; Read parses the edited file
// back and Moves maps every line onto the snapshot entry with the same
// index.
//
// Indices are only meaningful against the snapshot they were written from.
// If the tree changes between dump and reapplication the edits land on the
// wrong entries; nothing re-checks the tree.
package template

import (
	"path/filepath"
	"strings"
	"time"

	logging "github.com/ipfs/go-log/v2"

	"github.com/tragoedia0722/batchrename/pkg/walker"
)

var log = logging.Logger("template")

// FileName is the name of the template file written into the root.
const FileName = "batch.renaming"

// Item is one entry of a snapshot.
type Item struct {
	Dir  string `json:"dir"`
	Name string `json:"name"`
}

// Path returns the on-disk path of the item.
func (i Item) Path() string {
	return filepath.Join(i.Dir, i.Name)
}

// Snapshot is the enumeration a template indexes into.
type Snapshot struct {
	Root    string         `json:"root"`
	Options walker.Options `json:"options"`
	Items   []Item         `json:"items"`
	Created time.Time      `json:"created"`
}

// Capture enumerates root with opts. Names are always taken whole, so the
// template shows and edits extensions.
func Capture(root string, opts walker.Options) (*Snapshot, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	opts.SplitExtension = false
	entries, err := walker.Walk(abs, opts)
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{
		Root:    abs,
		Options: opts,
		Items:   make([]Item, 0, len(entries)),
		Created: time.Now(),
	}
	for _, e := range entries {
		// a template left over from an earlier dump is not a rename candidate
		if e.Dir == abs && e.Name() == FileName {
			continue
		}
		snap.Items = append(snap.Items, Item{Dir: e.Dir, Name: e.Name()})
	}

	log.Debugf("captured %d entries under %s", len(snap.Items), abs)
	return snap, nil
}

// Path returns where the template file for the snapshot lives.
func (s *Snapshot) Path() string {
	return filepath.Join(s.Root, FileName)
}

// rel renders an item relative to the root: the bare name for entries of
// the root itself, otherwise the relative directory, a separator and the
// name.
func (s *Snapshot) rel(item Item) string {
	dir, err := filepath.Rel(s.Root, item.Dir)
	if err != nil || dir == "." {
		return item.Name
	}
	return dir + string(filepath.Separator) + item.Name
}

// Moves pairs every entry with the snapshot item at its index. The new path
// is the entry name below the root, with either slash accepted as a
// separator. Entries whose index is outside the snapshot are dropped.
func (s *Snapshot) Moves(entries []Entry) []Move {
	moves := make([]Move, 0, len(entries))
	for _, e := range entries {
		if e.Index < 0 || e.Index >= len(s.Items) {
			log.Debugf("ignoring out of range index %d", e.Index)
			continue
		}
		moves = append(moves, Move{
			Index: e.Index,
			From:  s.Items[e.Index].Path(),
			To:    filepath.Join(s.Root, normalize(e.Name)),
		})
	}
	return moves
}

func normalize(name string) string {
	sep := string(filepath.Separator)
	name = strings.ReplaceAll(name, `\`, sep)
	return strings.ReplaceAll(name, "/", sep)
}

// Move is a rename produced from one template line.
type Move struct {
	Index int
	From  string
	To    string
}

func (m Move) Source() string { return m.From }
func (m Move) Target() string { return m.To }
