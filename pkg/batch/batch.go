// Package batch builds the list of renames a search and replace produces
// over a directory tree.
//
// Build is a pure function of its Input and the state of the filesystem:
// calling it again with the same input over an unchanged tree yields the
// same deltas, so it can run on every edit of the pattern.
package batch

import (
	"errors"
	"fmt"
	"os"

	logging "github.com/ipfs/go-log/v2"

	"github.com/tragoedia0722/batchrename/pkg/match"
	"github.com/tragoedia0722/batchrename/pkg/replace"
	"github.com/tragoedia0722/batchrename/pkg/walker"
)

var log = logging.Logger("batch")

// Flags are the switches that shape a batch.
type Flags struct {
	UseRegex              bool
	ModifyExtension       bool
	IncludeSubdirectories bool
	RenameFolders         bool
}

// WalkOptions translates the flags into walker options.
func (f Flags) WalkOptions() walker.Options {
	return walker.Options{
		Recursive:      f.IncludeSubdirectories,
		Folders:        f.RenameFolders,
		SplitExtension: !f.RenameFolders && !f.ModifyExtension,
	}
}

// Input is everything a batch is computed from.
type Input struct {
	Root        string
	Pattern     string
	Replacement string
	Flags       Flags
}

// Validate explains why Build would return an empty batch for reasons other
// than no entry matching. It returns ErrEmptyPattern, ErrRootNotFound,
// ErrRootNotDirectory, a *match.PatternError or the error reading the root,
// and nil when the input is usable.
func Validate(in Input) error {
	if _, err := match.New(in.Pattern, in.Flags.UseRegex); err != nil {
		return err
	}

	info, err := os.Stat(in.Root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrRootNotFound, in.Root)
		}
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrRootNotDirectory, in.Root)
	}

	if _, err := os.ReadDir(in.Root); err != nil {
		return err
	}

	return nil
}

// Build computes the deltas for in, in walk order. Entries the pattern does
// not match are left out. An empty pattern, an invalid regex or a missing
// root yields an empty batch; Validate reports which.
func Build(in Input) []Delta {
	m, err := match.New(in.Pattern, in.Flags.UseRegex)
	if err != nil {
		log.Debugf("no batch: %v", err)
		return nil
	}

	entries, err := walker.Walk(in.Root, in.Flags.WalkOptions())
	if err != nil {
		log.Debugf("no batch: %v", err)
		return nil
	}

	planner := replace.ForMatcher(in.Replacement, m)

	var deltas []Delta
	for _, entry := range entries {
		matches := m.Match(entry.Base)
		if len(matches) == 0 {
			continue
		}

		newBase, spans := planner.Plan(entry.Base, matches)
		deltas = append(deltas, Delta{
			Dir:              entry.Dir,
			OldName:          entry.Name(),
			NewName:          newBase + entry.Ext,
			OriginalSpans:    match.Spans(matches),
			ReplacementSpans: spans,
		})
	}

	log.Debugf("built batch over %s: %d of %d entries match", in.Root, len(deltas), len(entries))
	return deltas
}
