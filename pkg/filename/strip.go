package filename

import (
	"strings"
	"unicode/utf8"
)

// Strip 移除字符串中所有在文件名中无效的字符
//
// 与替换不同，Strip 只删除字符，不做任何其他改写。
// 没有无效字符时直接返回原字符串，不产生内存分配。
func Strip(s string) string {
	i := indexInvalid(s)
	if i < 0 {
		return s
	}

	var builder strings.Builder
	builder.Grow(len(s))
	builder.WriteString(s[:i])

	for j := i; j < len(s); {
		r, size := utf8.DecodeRuneInString(s[j:])
		if !(r == utf8.RuneError && size <= 1) && !isInvalid(r) {
			builder.WriteString(s[j : j+size])
		}
		j += size
	}

	return builder.String()
}

// ContainsInvalid 报告字符串是否包含无效字符
func ContainsInvalid(s string) bool {
	return indexInvalid(s) >= 0
}

// indexInvalid 返回第一个无效字符的字节位置，没有时返回 -1
// 无效的 UTF-8 序列同样视为无效字符
func indexInvalid(s string) int {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if (r == utf8.RuneError && size <= 1) || isInvalid(r) {
			return i
		}
		i += size
	}
	return -1
}
