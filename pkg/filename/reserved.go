package filename

import (
	"strings"
)

// 保留名集合 - O(1) 查找
var reservedNameSet = map[string]bool{
	"con": true, "prn": true, "aux": true, "nul": true,
	"com1": true, "com2": true, "com3": true, "com4": true,
	"com5": true, "com6": true, "com7": true, "com8": true,
	"com9": true,
	"lpt1": true, "lpt2": true, "lpt3": true, "lpt4": true,
	"lpt5": true, "lpt6": true, "lpt7": true, "lpt8": true,
	"lpt9": true,
}

// ReservedNames 返回所有 Windows 保留的设备名列表
// 这些名称（不区分大小写，忽略扩展名）不能用作文件名
func ReservedNames() []string {
	return []string{
		"CON", "PRN", "AUX", "NUL",
		"COM1", "COM2", "COM3", "COM4", "COM5",
		"COM6", "COM7", "COM8", "COM9",
		"LPT1", "LPT2", "LPT3", "LPT4", "LPT5",
		"LPT6", "LPT7", "LPT8", "LPT9",
	}
}

// IsReserved 检查文件名是否是 Windows 保留的设备名
//
// 设备名后面跟任何扩展名都仍是保留名，因此只看第一个点之前的部分
//
// 例如: "CON", "con.txt", "Lpt1.log", "con.tar.gz" 都是保留名
func IsReserved(name string) bool {
	stem, _, _ := strings.Cut(name, ".")
	return reservedNameSet[strings.ToLower(stem)]
}

// SplitExt 分离主文件名和扩展名
// 返回 (base, ext)，ext 包含开头的点
//
// 例如:
//
//	"file.txt"   -> ("file", ".txt")
//	"a.tar.gz"   -> ("a.tar", ".gz")
//	"file"       -> ("file", "")
//	".gitignore" -> ("", ".gitignore")
//	"file."      -> ("file.", "")
//
// 以点开头且没有其他点的名称整体视为扩展名
func SplitExt(name string) (string, string) {
	dotIndex := strings.LastIndex(name, ".")

	// 没有点，或点在末尾
	if dotIndex < 0 || dotIndex >= len(name)-1 {
		return name, ""
	}

	return name[:dotIndex], name[dotIndex:]
}
