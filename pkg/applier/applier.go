// Package applier executes batches of renames. Every move is attempted
// independently: a failure is recorded and the batch carries on, and
// nothing already renamed is rolled back.
package applier

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	logging "github.com/ipfs/go-log/v2"
	"go.uber.org/multierr"

	"github.com/tragoedia0722/batchrename/pkg/filename"
)

var log = logging.Logger("applier")

// Move is a single rename from Source to Target.
type Move interface {
	Source() string
	Target() string
}

// Pair is a plain Move.
type Pair struct {
	From string
	To   string
}

func (p Pair) Source() string { return p.From }
func (p Pair) Target() string { return p.To }

// Failure is a move that could not be carried out.
type Failure[M Move] struct {
	Move M
	Err  error
}

// Result summarises an applied batch.
type Result[M Move] struct {
	Succeeded int
	Unchanged int
	Failures  []Failure[M]
}

// Failed returns the moves that failed, in batch order.
func (r Result[M]) Failed() []M {
	if len(r.Failures) == 0 {
		return nil
	}
	moves := make([]M, len(r.Failures))
	for i, f := range r.Failures {
		moves[i] = f.Move
	}
	return moves
}

// Err combines the failure errors, or returns nil when every move succeeded.
func (r Result[M]) Err() error {
	var err error
	for _, f := range r.Failures {
		err = multierr.Append(err, f.Err)
	}
	return err
}

// Applier holds the filesystem and checks used by Apply.
type Applier struct {
	fs         FS
	checkNames bool
}

// Option configures an Applier.
type Option func(*Applier)

// WithFS replaces the host filesystem.
func WithFS(fsys FS) Option {
	return func(a *Applier) {
		a.fs = fsys
	}
}

// WithNameCheck toggles validating target names with filename.Check before
// renaming. It is on by default.
func WithNameCheck(enabled bool) Option {
	return func(a *Applier) {
		a.checkNames = enabled
	}
}

// New returns an applier working on the host filesystem.
func New(opts ...Option) *Applier {
	a := &Applier{fs: OS(), checkNames: true}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// errUnchanged marks a move whose target equals its source.
var errUnchanged = errors.New("unchanged")

// move renames one entry. It refuses to replace an existing destination
// unless the destination is the source itself, which happens for case-only
// renames on case-insensitive filesystems.
func (a *Applier) move(m Move) error {
	src := filepath.Clean(m.Source())
	dst := filepath.Clean(m.Target())
	if src == dst {
		return errUnchanged
	}

	if a.checkNames {
		if err := filename.Check(filepath.Base(dst)); err != nil {
			return wrapMove("check", m, err)
		}
	}

	srcInfo, err := a.fs.Lstat(src)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return wrapMove("rename", m, ErrSourceMissing)
		}
		return wrapMove("stat", m, err)
	}

	dstInfo, err := a.fs.Lstat(dst)
	switch {
	case err == nil:
		if !os.SameFile(srcInfo, dstInfo) {
			return wrapMove("rename", m, ErrDestinationExists)
		}
	case !errors.Is(err, fs.ErrNotExist):
		return wrapMove("stat", m, err)
	}

	if err := a.fs.Rename(src, dst); err != nil {
		return wrapMove("rename", m, err)
	}
	return nil
}

// Apply attempts every move in order using a. A nil applier uses New().
func Apply[M Move](a *Applier, moves []M) Result[M] {
	if a == nil {
		a = New()
	}

	var res Result[M]
	for _, m := range moves {
		err := a.move(m)
		switch {
		case err == nil:
			res.Succeeded++
			log.Debugf("renamed %s -> %s", m.Source(), m.Target())
		case errors.Is(err, errUnchanged):
			res.Unchanged++
		default:
			res.Failures = append(res.Failures, Failure[M]{Move: m, Err: err})
			log.Warnf("rename failed: %v", err)
		}
	}

	log.Debugf("applied %d moves: %d renamed, %d unchanged, %d failed",
		len(moves), res.Succeeded, res.Unchanged, len(res.Failures))
	return res
}
