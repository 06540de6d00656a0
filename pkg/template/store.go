package template

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/cespare/xxhash/v2"
	ds "github.com/ipfs/go-datastore"
	"github.com/ipfs/go-datastore/query"
)

// ErrNoSnapshot is returned when no snapshot is stored for a root
var ErrNoSnapshot = errors.New("no snapshot stored for root")

const snapshotPrefix = "/snapshots"

// Store keeps snapshots in a datastore between the dump and the
// reapplication of a template, one per root directory.
type Store struct {
	d ds.Datastore
}

// NewStore returns a store backed by d.
func NewStore(d ds.Datastore) *Store {
	return &Store{d: d}
}

// Key returns the datastore key of the snapshot for root.
func Key(root string) (ds.Key, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return ds.Key{}, err
	}
	sum := xxhash.Sum64String(abs)
	return ds.NewKey(snapshotPrefix).ChildString(strconv.FormatUint(sum, 16)), nil
}

// Save stores snap, replacing any earlier snapshot of the same root.
func (s *Store) Save(ctx context.Context, snap *Snapshot) error {
	key, err := Key(snap.Root)
	if err != nil {
		return err
	}

	value, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	if err := s.d.Put(ctx, key, value); err != nil {
		return fmt.Errorf("save snapshot of %s: %w", snap.Root, err)
	}
	return s.d.Sync(ctx, key)
}

// Load returns the snapshot stored for root, or ErrNoSnapshot.
func (s *Store) Load(ctx context.Context, root string) (*Snapshot, error) {
	key, err := Key(root)
	if err != nil {
		return nil, err
	}

	value, err := s.d.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ds.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNoSnapshot, root)
		}
		return nil, err
	}

	return decode(value)
}

// Delete removes the snapshot of root. Deleting a missing snapshot is not an
// error.
func (s *Store) Delete(ctx context.Context, root string) error {
	key, err := Key(root)
	if err != nil {
		return err
	}
	if err := s.d.Delete(ctx, key); err != nil && !errors.Is(err, ds.ErrNotFound) {
		return err
	}
	return nil
}

// List returns every stored snapshot, oldest first.
func (s *Store) List(ctx context.Context) ([]*Snapshot, error) {
	results, err := s.d.Query(ctx, query.Query{Prefix: snapshotPrefix})
	if err != nil {
		return nil, err
	}
	defer results.Close()

	all, err := results.Rest()
	if err != nil {
		return nil, err
	}

	snaps := make([]*Snapshot, 0, len(all))
	for _, entry := range all {
		snap, err := decode(entry.Value)
		if err != nil {
			log.Warnf("skipping unreadable snapshot %s: %v", entry.Key, err)
			continue
		}
		snaps = append(snaps, snap)
	}

	sort.SliceStable(snaps, func(i, j int) bool {
		return snaps[i].Created.Before(snaps[j].Created)
	})
	return snaps, nil
}

func decode(value []byte) (*Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(value, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &snap, nil
}
