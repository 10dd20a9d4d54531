package game

import (
	"fmt"
	"reflect"

	"github.com/quasilyte/gdata/v2"
)

// OpenStore 打开 gdata 跨平台存储
// 失败时返回 nil Store 和错误，调用方应降级为内存模式
func OpenStore(appName string) (Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("failed to open storage %q: %w", appName, err)
	}
	return m, nil
}

// isNilStore 处理接口中包了 nil 指针的情况（例如 (*gdata.Manager)(nil)）
func isNilStore(s Store) bool {
	if s == nil {
		return true
	}
	v := reflect.ValueOf(s)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
