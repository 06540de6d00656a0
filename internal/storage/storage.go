package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	ds "github.com/ipfs/go-datastore"
	logging "github.com/ipfs/go-log/v2"
	"github.com/mitchellh/go-homedir"
	"github.com/rogpeppe/go-internal/lockedfile"
	"go.uber.org/multierr"
)

var log = logging.Logger("storage")

// LockFile 是状态目录中的进程锁文件名。
const LockFile = ".storage.lock"

// Storage 是一个打开的状态目录。
// 同一时间只有一个进程可以持有它；其他进程在 Open 中等待锁。
type Storage struct {
	locker   sync.Mutex
	closed   bool
	path     string
	lockFile *lockedfile.File
	ds       Datastore
}

// Path 返回展开后的状态目录路径。
func (r *Storage) Path() string {
	return r.path
}

// Datastore 返回底层 datastore。关闭后返回 nil。
func (r *Storage) Datastore() Datastore {
	r.locker.Lock()
	defer r.locker.Unlock()

	if r.closed {
		return nil
	}
	return r.ds
}

// DiskUsage 返回 datastore 占用的磁盘空间。
func (r *Storage) DiskUsage(ctx context.Context) (uint64, error) {
	d := r.Datastore()
	if d == nil {
		return 0, ErrClosed
	}
	return ds.DiskUsage(ctx, d)
}

// Close 关闭 datastore 并释放进程锁。重复调用是安全的。
func (r *Storage) Close() error {
	r.locker.Lock()
	defer r.locker.Unlock()

	return r.closeLocked()
}

func (r *Storage) closeLocked() error {
	if r.closed {
		return nil
	}
	r.closed = true

	var err error
	if r.ds != nil {
		if e := r.ds.Close(); e != nil {
			err = multierr.Append(err, &StorageError{Operation: "close datastore", Path: r.path, Err: e})
		}
	}

	if r.lockFile != nil {
		lockPath := r.lockFile.Name()
		if e := r.lockFile.Close(); e != nil {
			err = multierr.Append(err, &LockError{Path: lockPath, Err: e})
		}
		if e := os.Remove(lockPath); e != nil && !os.IsNotExist(e) {
			err = multierr.Append(err, &LockError{Path: lockPath, Err: e})
		}
	}

	return err
}

// Destroy 关闭存储并删除整个状态目录。
func (r *Storage) Destroy() error {
	r.locker.Lock()
	defer r.locker.Unlock()

	err := r.closeLocked()
	return multierr.Append(err, os.RemoveAll(r.path))
}

// Open 打开（必要时初始化）path 处的状态目录。
// path 支持 "~" 开头的家目录写法。
func Open(path string) (*Storage, error) {
	r, err := newStorage(path)
	if err != nil {
		return nil, err
	}

	if err = Writable(r.path); err != nil {
		return nil, err
	}

	if err = initSpec(r.path, DefaultDiskSpec()); err != nil {
		return nil, err
	}

	if err = r.lock(); err != nil {
		return nil, err
	}

	if err = r.openDatastore(); err != nil {
		_ = r.Close()
		return nil, err
	}

	log.Debugf("opened storage at %s", r.path)
	return r, nil
}

func newStorage(path string) (*Storage, error) {
	if strings.TrimSpace(path) == "" {
		return nil, &InvalidPathError{Path: path, Reason: "no path provided"}
	}

	expPath, err := homedir.Expand(filepath.Clean(path))
	if err != nil {
		return nil, &InvalidPathError{Path: path, Reason: err.Error()}
	}

	return &Storage{path: expPath}, nil
}

func initSpec(path string, conf DiskSpec) error {
	specPath := DatastoreSpecPath(path)
	if FileExists(specPath) {
		return nil
	}

	dsc, err := AnyDatastoreConfig(conf)
	if err != nil {
		return err
	}

	if err := os.WriteFile(specPath, dsc.DiskSpec().Bytes(), 0o600); err != nil {
		return &StorageError{Operation: "write spec", Path: specPath, Err: err}
	}
	return nil
}

// lock 获取进程锁并写入当前 pid。
func (r *Storage) lock() error {
	lockPath := filepath.Join(r.path, LockFile)

	file, err := lockedfile.Create(lockPath)
	if err != nil {
		return &LockError{Path: lockPath, Err: err}
	}

	if _, err := file.WriteString(strconv.Itoa(os.Getpid())); err != nil {
		_ = file.Close()
		return &LockError{Path: lockPath, Err: err}
	}

	r.lockFile = file
	return nil
}

func (r *Storage) openDatastore() error {
	dsc, err := AnyDatastoreConfig(DefaultDiskSpec())
	if err != nil {
		return err
	}
	spec := dsc.DiskSpec()

	oldSpec, err := r.readSpec()
	if err != nil {
		return err
	}

	if oldSpec != spec.String() {
		return fmt.Errorf("%w: configured '%s', on disk '%s'", ErrSpecMismatch, spec.String(), oldSpec)
	}

	d, err := dsc.Create(r.path)
	if err != nil {
		return err
	}

	r.ds = d
	return nil
}

func (r *Storage) readSpec() (string, error) {
	path := DatastoreSpecPath(r.path)

	b, err := os.ReadFile(path)
	if err != nil {
		return "", &StorageError{Operation: "read spec", Path: path, Err: err}
	}

	return strings.TrimSpace(string(b)), nil
}
