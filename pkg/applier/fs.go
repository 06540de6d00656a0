package applier

import (
	"io/fs"
	"os"
)

// FS is the part of the filesystem the applier touches.
type FS interface {
	Lstat(name string) (fs.FileInfo, error)
	Rename(oldpath, newpath string) error
}

type osFS struct{}

func (osFS) Lstat(name string) (fs.FileInfo, error) { return os.Lstat(name) }

func (osFS) Rename(oldpath, newpath string) error { return os.Rename(oldpath, newpath) }

// OS returns the host filesystem.
func OS() FS {
	return osFS{}
}
