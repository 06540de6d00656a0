package filename

const (
	// MaxLength 是单个文件名允许的最大字节数
	MaxLength = 255
)

// Unicode 字符常量
const (
	// LTR/RTL 标记
	runeLTRMark = 0x200E // Left-to-Right Mark
	runeRTLMark = 0x200F // Right-to-Left Mark

	// 双向嵌入字符
	runeLRE = 0x202A // Left-to-Right Embedding
	runeRLO = 0x202E // Right-to-Left Override

	// 零宽字符
	runeZeroWidthSpace    = 0x200B // Zero Width Space
	runeZeroWidthJoiner   = 0x200D // Zero Width Joiner
	runeWordJoiner        = 0x2060 // Word Joiner
	runeBOM               = 0xFEFF // Byte Order Mark
	runeSoftHyphen        = 0x00AD // Soft Hyphen
	runeArabicLetterMark  = 0x061C // Arabic Letter Mark
	runeMongolianVowelSep = 0x180E // Mongolian Vowel Separator

	runeDEL = 0x007F // DEL character
)

// 路径名中的无效字符（与 Windows 的限制一致，在所有平台上统一使用）
const invalidChars = `<>:"/\|?*` + "\x00"
