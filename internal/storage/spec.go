// Package storage 提供 batchrename 的持久化状态目录。
//
// 状态目录保存模板快照，使 "template dump" 与 "template apply" 可以在两个
// 独立的进程中完成。目录结构：
//
//	<state>/datastore_spec   datastore 配置（JSON）
//	<state>/snapshots/       LevelDB 数据
//	<state>/.storage.lock    进程锁
//
// 基本使用：
//
//	store, err := storage.Open("~/.local/state/batchrename")
//	if err != nil {
//	    return err
//	}
//	defer store.Close()
//
//	d := store.Datastore()
//	// 使用 datastore...
package storage

import (
	"bytes"
	"encoding/json"
)

// DiskSpec 表示存储配置的磁盘规范。
//
// DiskSpec 是一个键值对映射，序列化后写入 datastore_spec 文件，
// 打开时与当前配置比较，防止用不同的后端打开同一目录。
type DiskSpec map[string]interface{}

// DefaultDiskSpec 返回默认的存储配置：
// 一个带 measure 统计的 LevelDB，数据放在 snapshots 子目录。
func DefaultDiskSpec() DiskSpec {
	return map[string]interface{}{
		"type":   "measure",
		"prefix": "leveldb.datastore",
		"child": map[string]interface{}{
			"type":        "levelds",
			"path":        "snapshots",
			"compression": "snappy",
		},
	}
}

// Bytes 将 DiskSpec 序列化为 JSON 字节数组。
//
// 如果序列化失败会 panic（规范只包含基本类型，不应失败）。
func (s DiskSpec) Bytes() []byte {
	b, err := json.Marshal(s)
	if err != nil {
		panic(err)
	}

	return bytes.TrimSpace(b)
}

// String 将 DiskSpec 序列化为 JSON 字符串。
func (s DiskSpec) String() string {
	return string(s.Bytes())
}
