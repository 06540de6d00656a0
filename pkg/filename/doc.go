// Package filename 提供文件名的字符清理与合法性校验
//
// 本包服务于批量重命名：替换模板展开后的文本在写入新文件名之前，
// 必须去掉所有在路径名中非法的字符，否则高亮区间的偏移量会与
// 实际写入磁盘的名称不一致。
//
// 主要功能：
//
//   - Strip: 移除无效字符（<, >, :, ", /, \, |, ?, *, null 字符）、
//     控制字符以及不可见的 Unicode 格式字符
//   - Check: 校验完整的目标文件名（空名、保留设备名、结尾的点或空格、长度）
//   - SplitExt: 按最后一个点拆分主文件名与扩展名，点文件整体视为扩展名
//
// 基本用法：
//
//	import "github.com/tragoedia0722/batchrename/pkg/filename"
//
//	s := filename.Strip("a<b>c")
//	// 结果: "abc"
//
//	err := filename.Check("CON.txt")
//	// errors.Is(err, filename.ErrReservedName) == true
//
// 与清理不同，Strip 不会替换字符也不会合并空格：它只删除字符，
// 因此调用方可以用结果的长度直接计算区间。
package filename
