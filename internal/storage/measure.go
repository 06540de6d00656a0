package storage

import (
	"fmt"

	measure "github.com/ipfs/go-ds-measure"
)

// measureDatastoreConfig 给子 datastore 包一层操作统计。
type measureDatastoreConfig struct {
	child  DatastoreConfig
	prefix string
}

// MeasureDatastoreConfig 从配置映射创建 measure 配置。
// params 需要 "child"（子配置映射）和 "prefix"（指标前缀）。
func MeasureDatastoreConfig(params map[string]interface{}) (DatastoreConfig, error) {
	childField, ok := params["child"].(map[string]interface{})
	if !ok {
		return nil, &ConfigError{Field: "child", Err: fmt.Errorf("missing or not a map")}
	}

	child, err := AnyDatastoreConfig(childField)
	if err != nil {
		return nil, err
	}

	prefix, ok := params["prefix"].(string)
	if !ok {
		return nil, &ConfigError{Field: "prefix", Err: fmt.Errorf("missing or not a string")}
	}

	return &measureDatastoreConfig{child, prefix}, nil
}

func (c *measureDatastoreConfig) DiskSpec() DiskSpec {
	return c.child.DiskSpec()
}

func (c *measureDatastoreConfig) Create(path string) (Datastore, error) {
	child, err := c.child.Create(path)
	if err != nil {
		return nil, err
	}

	return measure.New(c.prefix, child), nil
}
