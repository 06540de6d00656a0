package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// Writable 检查目录是否可写，必要时创建它。
// 通过创建并同步一个临时文件来验证可写性。
func Writable(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return &StorageError{
			Operation: "create directory",
			Path:      path,
			Err:       err,
		}
	}

	testFile := filepath.Join(path, "._check_writable")
	f, err := os.Create(testFile)
	if err != nil {
		return &StorageError{
			Operation: "check writability",
			Path:      path,
			Err:       fmt.Errorf("cannot create test file: %w", err),
		}
	}

	defer func() {
		f.Close()
		os.Remove(testFile)
	}()

	if err := f.Sync(); err != nil {
		return &StorageError{
			Operation: "check writability",
			Path:      path,
			Err:       fmt.Errorf("cannot sync test file: %w", err),
		}
	}

	return nil
}

// DatastoreSpecPath 返回状态目录中 datastore_spec 文件的路径。
func DatastoreSpecPath(statePath string) string {
	return filepath.Join(statePath, "datastore_spec")
}

// FileExists 检查文件是否存在且非空。
//
// 注意：大小为 0 的文件会被视为不存在。
func FileExists(filename string) bool {
	fi, err := os.Stat(filename)
	if err != nil {
		return false
	}

	return fi.Size() > 0
}

// resolvePath 解析路径。
//
// basePath 为绝对路径时直接返回，否则连接到 rootPath。
//
//	resolvePath("/home/user", "data") → "/home/user/data"
//	resolvePath("/home/user", "/opt/data") → "/opt/data"
func resolvePath(rootPath, basePath string) string {
	if filepath.IsAbs(basePath) {
		return basePath
	}
	return filepath.Join(rootPath, basePath)
}
