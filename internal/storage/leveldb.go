package storage

import (
	"fmt"

	levelds "github.com/ipfs/go-ds-leveldb"
	ldbopts "github.com/syndtr/goleveldb/leveldb/opt"
)

// levelDBDatastoreConfig LevelDB datastore 的配置。
type levelDBDatastoreConfig struct {
	path        string
	compression ldbopts.Compression
}

// LevelDBDatastoreConfig 从配置映射创建 LevelDB datastore 配置。
//
// params 必须包含 "path"；"compression" 可选，取值 "none"、"snappy"，
// 缺省时使用 goleveldb 的默认压缩。
func LevelDBDatastoreConfig(params map[string]interface{}) (DatastoreConfig, error) {
	path, ok := params["path"].(string)
	if !ok {
		return nil, &ConfigError{Field: "path", Err: fmt.Errorf("missing or not a string")}
	}

	var compression ldbopts.Compression
	switch compressionValue := params["compression"]; compressionValue {
	case "none":
		compression = ldbopts.NoCompression
	case "snappy":
		compression = ldbopts.SnappyCompression
	case "", nil:
		compression = ldbopts.DefaultCompression
	default:
		return nil, &ConfigError{
			Field: "compression",
			Value: compressionValue,
			Err:   fmt.Errorf("unrecognized compression"),
		}
	}

	return &levelDBDatastoreConfig{
		path:        path,
		compression: compression,
	}, nil
}

// DiskSpec 返回 LevelDB 的磁盘配置规范。
func (cfg *levelDBDatastoreConfig) DiskSpec() DiskSpec {
	return map[string]interface{}{
		"type": "levelds",
		"path": cfg.path,
	}
}

// Create 在 path 下（或 cfg.path 为绝对路径时直接在该处）打开 LevelDB。
func (cfg *levelDBDatastoreConfig) Create(path string) (Datastore, error) {
	fullPath := resolvePath(path, cfg.path)

	d, err := levelds.NewDatastore(fullPath, &levelds.Options{
		Compression: cfg.compression,
	})
	if err != nil {
		return nil, &StorageError{Operation: "open leveldb", Path: fullPath, Err: err}
	}
	return d, nil
}
