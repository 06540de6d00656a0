package filename

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyName 表示文件名为空或仅为 "." / ".."
	ErrEmptyName = errors.New("empty name")

	// ErrInvalidChars 表示文件名包含无效字符
	ErrInvalidChars = errors.New("invalid characters")

	// ErrReservedName 表示文件名是 Windows 保留的设备名
	ErrReservedName = errors.New("reserved name")

	// ErrTrailingDot 表示文件名以空格或点结尾
	ErrTrailingDot = errors.New("trailing space or dot")

	// ErrTooLong 表示文件名超过 MaxLength 字节
	ErrTooLong = errors.New("name too long")
)

// NameError 描述一个不合法的文件名。
type NameError struct {
	// Name 是被校验的文件名
	Name string
	// Err 是具体原因（上面的哨兵错误之一）
	Err error
}

// Error 实现 error 接口。
func (e *NameError) Error() string {
	return fmt.Sprintf("invalid name %q: %v", e.Name, e.Err)
}

// Unwrap 返回底层错误，支持 errors.Is 和 errors.As。
func (e *NameError) Unwrap() error {
	return e.Err
}
