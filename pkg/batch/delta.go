package batch

import (
	"path/filepath"

	"github.com/tragoedia0722/batchrename/pkg/match"
)

// Delta is one planned rename. OriginalSpans index OldName and
// ReplacementSpans index NewName; both have one span per match.
type Delta struct {
	Dir              string
	OldName          string
	NewName          string
	OriginalSpans    []match.Span
	ReplacementSpans []match.Span
}

// OldPath returns the current path of the entry.
func (d Delta) OldPath() string {
	return filepath.Join(d.Dir, d.OldName)
}

// NewPath returns the path the entry is renamed to.
func (d Delta) NewPath() string {
	return filepath.Join(d.Dir, d.NewName)
}

// Source implements applier.Move.
func (d Delta) Source() string {
	return d.OldPath()
}

// Target implements applier.Move.
func (d Delta) Target() string {
	return d.NewPath()
}

// Changed reports whether applying the delta alters the name.
func (d Delta) Changed() bool {
	return d.OldName != d.NewName
}
