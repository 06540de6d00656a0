package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tragoedia0722/batchrename/internal/config"
	"github.com/tragoedia0722/batchrename/internal/display"
	"github.com/tragoedia0722/batchrename/internal/logging"
	"github.com/tragoedia0722/batchrename/internal/term"
	"github.com/tragoedia0722/batchrename/pkg/applier"
	"github.com/tragoedia0722/batchrename/pkg/batch"
)

func runRename(cfg *config.Config, log *logging.Logger, stdin io.Reader, stdout io.Writer) int {
	in := cfg.Input()
	kind := display.Kind(cfg.Folders)

	var session batch.Session
	deltas := session.Recompute(in)
	if len(deltas) == 0 {
		if err := batch.Validate(in); err != nil {
			log.Error("%v", err)
			return exitFailure
		}
		log.Warn("No %s names match %q", kind, in.Pattern)
		return exitOK
	}

	for _, d := range deltas {
		log.Print(display.FormatDelta(in.Root, d))
	}

	changed, unchanged := batch.Summary(deltas)
	log.Info("%s to rename", display.Plural(changed, kind))
	if unchanged > 0 {
		log.Info("%s already named as replaced", display.Plural(unchanged, kind))
	}

	if cfg.DryRun {
		log.Info("Dry run: nothing renamed")
		return exitOK
	}
	if changed == 0 {
		return exitOK
	}

	if !cfg.AssumeYes && isTerminal(stdin) {
		if !confirm(stdin, stdout, fmt.Sprintf("Rename %s?", display.Plural(changed, kind))) {
			log.Warn("Aborted")
			return exitFailure
		}
	}

	a := applier.New(applier.WithNameCheck(cfg.NameCheck))
	res := applier.Apply(a, batch.ApplyOrder(deltas))
	session.Reset()

	return report(log, kind, res.Succeeded, failures(res.Failures))
}

type failure struct {
	from, to string
	err      error
}

func failures[M applier.Move](fs []applier.Failure[M]) []failure {
	out := make([]failure, len(fs))
	for i, f := range fs {
		err := f.Err
		var moveErr *applier.MoveError
		if errors.As(err, &moveErr) {
			err = moveErr.Err
		}
		out[i] = failure{from: f.Move.Source(), to: f.Move.Target(), err: err}
	}
	return out
}

// report prints the outcome of an applied batch and returns the exit code.
func report(log *logging.Logger, kind string, succeeded int, failed []failure) int {
	log.Success("%s successfully renamed", display.Plural(succeeded, kind))
	if len(failed) == 0 {
		return exitOK
	}

	log.Error("%s could not be renamed:", display.Plural(len(failed), kind))
	for _, f := range failed {
		log.Error("%s", display.FormatFailure(f.from, f.to, f.err))
	}
	return exitFailure
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(f)
}

// confirm asks a yes/no question; anything but y or yes is a no.
func confirm(r io.Reader, w io.Writer, question string) bool {
	fmt.Fprintf(w, "%s [y/N] ", question)
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
