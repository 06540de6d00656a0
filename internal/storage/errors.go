package storage

import (
	"errors"
	"fmt"
)

var (
	// ErrClosed 在存储已关闭后继续使用时返回。
	ErrClosed = errors.New("storage is closed")

	// ErrSpecMismatch 在磁盘上的 datastore_spec 与当前配置不一致时返回。
	ErrSpecMismatch = errors.New("datastore spec does not match disk")
)

// StorageError 表示存储操作期间的错误。
type StorageError struct {
	// Operation 是正在执行的操作
	Operation string
	// Path 是相关的存储路径
	Path string
	// Err 是底层错误
	Err error
}

func (e *StorageError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s failed at %s: %v", e.Operation, e.Path, e.Err)
	}
	return fmt.Sprintf("%s failed: %v", e.Operation, e.Err)
}

// Unwrap 返回底层错误，支持 errors.Is 和 errors.As。
func (e *StorageError) Unwrap() error {
	return e.Err
}

// ConfigError 表示 datastore 配置字段的错误。
type ConfigError struct {
	Field string
	// Value 是字段值（可选）
	Value interface{}
	Err   error
}

func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("config field '%s' (value: %v): %v", e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("config field '%s': %v", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// LockError 表示锁文件相关的错误。
type LockError struct {
	Path string
	Err  error
}

func (e *LockError) Error() string {
	return fmt.Sprintf("lock file error at %s: %v", e.Path, e.Err)
}

func (e *LockError) Unwrap() error {
	return e.Err
}

// InvalidPathError 表示无效的存储路径。
type InvalidPathError struct {
	Path   string
	Reason string
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("invalid path '%s': %s", e.Path, e.Reason)
}
