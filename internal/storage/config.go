package storage

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	ds "github.com/ipfs/go-datastore"
)

// Datastore 是数据存储接口，嵌入 ds.Batching 提供批处理能力。
type Datastore interface {
	ds.Batching
}

// DatastoreConfig 定义了创建 datastore 所需的配置。
type DatastoreConfig interface {
	DiskSpec() DiskSpec
	Create(path string) (Datastore, error)
}

// ConfigFactory 是从配置映射创建 DatastoreConfig 的工厂函数。
type ConfigFactory func(map[string]interface{}) (DatastoreConfig, error)

// configRegistry 管理 datastore 类型配置的注册表。
type configRegistry struct {
	mu        sync.RWMutex
	factories map[string]ConfigFactory
}

var globalConfigRegistry = &configRegistry{
	factories: make(map[string]ConfigFactory),
}

var registryOnce sync.Once

func ensureInitialized() {
	registryOnce.Do(func() {
		globalConfigRegistry.register("measure", MeasureDatastoreConfig)
		globalConfigRegistry.register("levelds", LevelDBDatastoreConfig)
	})
}

// RegisterDatastoreType 注册一个新的 datastore 类型。
// 同名类型会被覆盖。
func RegisterDatastoreType(name string, factory ConfigFactory) {
	ensureInitialized()
	globalConfigRegistry.register(strings.ToLower(name), factory)
}

func (r *configRegistry) register(name string, factory ConfigFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = factory
}

func (r *configRegistry) get(name string) ConfigFactory {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.factories[name]
}

// list 返回排序后的已注册类型名称。
func (r *configRegistry) list() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]string, 0, len(r.factories))
	for name := range r.factories {
		types = append(types, name)
	}
	sort.Strings(types)
	return types
}

// AnyDatastoreConfig 根据配置映射创建任意类型的 datastore 配置。
//
// params 必须包含 "type" 字段；类型名不区分大小写。
// 默认支持的类型：measure, levelds
func AnyDatastoreConfig(params map[string]interface{}) (DatastoreConfig, error) {
	ensureInitialized()

	datastoreType, ok := params["type"].(string)
	if !ok {
		return nil, &ConfigError{Field: "type", Err: fmt.Errorf("missing or not a string")}
	}

	datastoreType = strings.ToLower(datastoreType)

	configFactory := globalConfigRegistry.get(datastoreType)
	if configFactory == nil {
		return nil, &ConfigError{
			Field: "type",
			Value: datastoreType,
			Err:   fmt.Errorf("unknown datastore type (available: %v)", globalConfigRegistry.list()),
		}
	}

	return configFactory(params)
}
