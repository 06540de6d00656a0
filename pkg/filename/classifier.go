package filename

import (
	"unicode"
)

// 无效字符查找表 - 包初始化时自动构建
var invalidCharTable [128]bool

func init() {
	for _, c := range invalidChars {
		invalidCharTable[c] = true
	}
}

// isInvalid 判断字符是否不能出现在文件名中
func isInvalid(r rune) bool {
	// 快速路径：ASCII
	if r < 128 {
		return invalidCharTable[r] || r < 32 || r == runeDEL
	}

	if unicode.IsControl(r) || isFormatRune(r) {
		return true
	}

	return !unicode.IsPrint(r) && !unicode.IsSpace(r)
}

// isFormatRune 判断是否为不可见的格式控制字符
// 这些字符在文件名中没有意义，而且会让显示长度与实际长度不一致
func isFormatRune(r rune) bool {
	switch {
	case r == runeLTRMark || r == runeRTLMark:
		return true
	case r >= runeLRE && r <= runeRLO:
		return true
	case r >= runeZeroWidthSpace && r <= runeZeroWidthJoiner:
		return true
	case r == runeWordJoiner || r == runeBOM:
		return true
	}

	switch r {
	case runeSoftHyphen, runeArabicLetterMark, runeMongolianVowelSep:
		return true
	}

	return false
}
