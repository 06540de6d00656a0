package filename

import (
	"strings"
)

// Check 校验一个完整的目标文件名
//
// 校验顺序：空名、无效字符、保留设备名、结尾的空格或点、长度。
// 返回的错误类型为 *NameError，可以用 errors.Is 判断具体原因。
func Check(name string) error {
	if name == "" || name == "." || name == ".." {
		return &NameError{Name: name, Err: ErrEmptyName}
	}

	if ContainsInvalid(name) {
		return &NameError{Name: name, Err: ErrInvalidChars}
	}

	if strings.TrimSpace(name) == "" {
		return &NameError{Name: name, Err: ErrEmptyName}
	}

	if IsReserved(name) {
		return &NameError{Name: name, Err: ErrReservedName}
	}

	if strings.HasSuffix(name, " ") || strings.HasSuffix(name, ".") {
		return &NameError{Name: name, Err: ErrTrailingDot}
	}

	if len(name) > MaxLength {
		return &NameError{Name: name, Err: ErrTooLong}
	}

	return nil
}
