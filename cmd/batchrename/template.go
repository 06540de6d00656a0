package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/tragoedia0722/batchrename/internal/config"
	"github.com/tragoedia0722/batchrename/internal/display"
	"github.com/tragoedia0722/batchrename/internal/logging"
	"github.com/tragoedia0722/batchrename/internal/storage"
	"github.com/tragoedia0722/batchrename/pkg/applier"
	"github.com/tragoedia0722/batchrename/pkg/template"
	"github.com/tragoedia0722/batchrename/pkg/walker"
)

func walkOptions(cfg *config.Config) walker.Options {
	return walker.Options{Recursive: cfg.Recursive, Folders: cfg.Folders}
}

func openStore(cfg *config.Config) (*storage.Storage, *template.Store, error) {
	st, err := storage.Open(cfg.StateDir)
	if err != nil {
		return nil, nil, err
	}
	return st, template.NewStore(st.Datastore()), nil
}

// runTemplateDump snapshots the tree, stores the snapshot and writes the
// template file for the user to edit.
func runTemplateDump(cfg *config.Config, log *logging.Logger) int {
	ctx := context.Background()

	snap, err := template.Capture(cfg.Root, walkOptions(cfg))
	if err != nil {
		log.Error("%v", err)
		return exitFailure
	}

	st, store, err := openStore(cfg)
	if err != nil {
		log.Error("%v", err)
		return exitFailure
	}
	defer st.Close()

	if err := store.Save(ctx, snap); err != nil {
		log.Error("%v", err)
		return exitFailure
	}

	path, err := template.WriteFile(snap)
	if err != nil {
		log.Error("%v", err)
		return exitFailure
	}

	kind := display.Kind(cfg.Folders)
	log.Success("Wrote %s to %s", display.Plural(len(snap.Items), kind), path)
	log.Info("Edit the names, keep the numbers, then run: batchrename template apply %s", cfg.Root)
	return exitOK
}

// runTemplateApply reapplies an edited template against the stored
// snapshot and forgets the snapshot.
func runTemplateApply(cfg *config.Config, log *logging.Logger) int {
	ctx := context.Background()

	st, store, err := openStore(cfg)
	if err != nil {
		log.Error("%v", err)
		return exitFailure
	}
	defer st.Close()

	snap, err := store.Load(ctx, cfg.Root)
	if err != nil {
		log.Error("%v", err)
		log.Info("Run 'batchrename template dump %s' first", cfg.Root)
		return exitFailure
	}

	code := reapply(cfg, log, snap)
	if err := store.Delete(ctx, cfg.Root); err != nil {
		log.Warn("Could not forget snapshot: %v", err)
	}
	return code
}

// runTemplateEdit dumps the template, waits for the editor and reapplies
// the result with the in-memory snapshot.
func runTemplateEdit(cfg *config.Config, log *logging.Logger, stdin io.Reader, stdout, stderr io.Writer) int {
	snap, err := template.Capture(cfg.Root, walkOptions(cfg))
	if err != nil {
		log.Error("%v", err)
		return exitFailure
	}

	path, err := template.WriteFile(snap)
	if err != nil {
		log.Error("%v", err)
		return exitFailure
	}

	argv := editorCommand(path)
	log.Debug("running editor: %s", strings.Join(argv, " "))

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin, cmd.Stdout, cmd.Stderr = stdin, stdout, stderr
	if err := cmd.Run(); err != nil {
		_ = os.Remove(path)
		log.Error("Editor failed: %v", err)
		return exitFailure
	}

	return reapply(cfg, log, snap)
}

func reapply(cfg *config.Config, log *logging.Logger, snap *template.Snapshot) int {
	a := applier.New(applier.WithNameCheck(cfg.NameCheck))
	res, err := template.Reapply(snap, a, snap.Path())
	if err != nil {
		log.Error("%v", err)
		return exitFailure
	}
	if res.Unchanged > 0 {
		log.Debug("%d entries unchanged", res.Unchanged)
	}
	return report(log, display.Kind(snap.Options.Folders), res.Succeeded, failures(res.Failures))
}

func runTemplateList(cfg *config.Config, log *logging.Logger) int {
	st, store, err := openStore(cfg)
	if err != nil {
		log.Error("%v", err)
		return exitFailure
	}
	defer st.Close()

	snaps, err := store.List(context.Background())
	if err != nil {
		log.Error("%v", err)
		return exitFailure
	}
	if len(snaps) == 0 {
		log.Info("No pending templates")
		return exitOK
	}

	for _, s := range snaps {
		log.Print(fmt.Sprintf("%s  %s  %s",
			s.Created.Format("2006-01-02 15:04:05"),
			display.Plural(len(s.Items), display.Kind(s.Options.Folders)),
			s.Root))
	}
	return exitOK
}

// editorCommand returns the argv that edits path: $VISUAL, then $EDITOR,
// then a platform default. The variables may carry arguments.
func editorCommand(path string) []string {
	for _, env := range []string{"VISUAL", "EDITOR"} {
		if fields := strings.Fields(os.Getenv(env)); len(fields) > 0 {
			return append(fields, path)
		}
	}
	if runtime.GOOS == "windows" {
		return []string{"notepad", path}
	}
	return []string{"vi", path}
}
