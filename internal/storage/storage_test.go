package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	ds "github.com/ipfs/go-datastore"
)

func TestOpen(t *testing.T) {
	t.Run("initialises a fresh directory", func(t *testing.T) {
		s, dir := SetupStorage(t)

		AssertFileExists(t, DatastoreSpecPath(dir))
		AssertFileExists(t, filepath.Join(dir, LockFile))
		AssertFileExists(t, filepath.Join(dir, "snapshots"))

		if s.Datastore() == nil {
			t.Fatal("expected datastore")
		}
		if s.Path() != dir {
			t.Errorf("Path() = %q, want %q", s.Path(), dir)
		}
	})

	t.Run("creates missing parent directories", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "a", "b", "state")
		s, err := Open(dir)
		if err != nil {
			t.Fatalf("Open failed: %v", err)
		}
		defer s.Close()

		AssertFileExists(t, DatastoreSpecPath(dir))
	})

	t.Run("fails with empty path", func(t *testing.T) {
		_, err := Open("  ")
		var pathErr *InvalidPathError
		if !errors.As(err, &pathErr) {
			t.Errorf("Open(\"  \") error = %v, want *InvalidPathError", err)
		}
	})

	t.Run("rejects a foreign spec", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(DatastoreSpecPath(dir), []byte(`{"type":"flatfs"}`), 0o600); err != nil {
			t.Fatal(err)
		}

		_, err := Open(dir)
		if !errors.Is(err, ErrSpecMismatch) {
			t.Fatalf("Open error = %v, want ErrSpecMismatch", err)
		}
		AssertFileNotExists(t, filepath.Join(dir, LockFile))
	})
}

func TestNewStorage_ExpandsTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory available")
	}

	s, err := newStorage("~/state")
	if err != nil {
		t.Fatalf("newStorage failed: %v", err)
	}
	if want := filepath.Join(home, "state"); s.path != want {
		t.Errorf("path = %q, want %q", s.path, want)
	}
}

func TestStorage_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	key := ds.NewKey("/snapshots/abc")

	s, err := Open(dir)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := s.Datastore().Put(ctx, key, []byte("value")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	AssertFileNotExists(t, filepath.Join(dir, LockFile))

	s, err = Open(dir)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer s.Close()

	got, err := s.Datastore().Get(ctx, key)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != "value" {
		t.Errorf("Get = %q, want %q", got, "value")
	}

	if _, err := s.DiskUsage(ctx); err != nil {
		t.Errorf("DiskUsage failed: %v", err)
	}
}

func TestStorage_Close(t *testing.T) {
	s, _ := SetupStorage(t)

	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}
	if s.Datastore() != nil {
		t.Error("Datastore() after Close should be nil")
	}
	if _, err := s.DiskUsage(context.Background()); !errors.Is(err, ErrClosed) {
		t.Errorf("DiskUsage after Close = %v, want ErrClosed", err)
	}
}

func TestStorage_Destroy(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "state")
	s, err := Open(dir)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	if err := s.Destroy(); err != nil {
		t.Fatalf("Destroy failed: %v", err)
	}
	AssertFileNotExists(t, dir)
}
