package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/decker502/galaxy-defender/internal/logging"
	"github.com/rs/zerolog"
)

// 存储路径常量
const (
	highScoreObject   = "highscore"
	highScoreProperty = "best"
)

// Store 持久化存储接口
// *gdata.Manager 满足该接口
type Store interface {
	ObjectPropExists(objectKey, propKey string) bool
	LoadObjectProp(objectKey, propKey string) ([]byte, error)
	SaveObjectProp(objectKey, propKey string, data []byte) error
}

// HighScoreManager 最高分管理器
//
// 唯一的持久化数据是一个整数。存储不可用时退化为仅内存记录。
type HighScoreManager struct {
	store  Store
	best   int
	logger zerolog.Logger
	warn   logging.Once
}

// NewHighScoreManager 创建最高分管理器并读取已保存的值
//
// 参数：
//   - store: 存储，可为 nil（降级模式）
//   - logger: 日志器
//
// 读取失败不影响创建，记录警告后从 0 开始
func NewHighScoreManager(store Store, logger zerolog.Logger) *HighScoreManager {
	hm := &HighScoreManager{
		store:  store,
		logger: logger.With().Str("component", "highscore").Logger(),
	}
	if err := hm.Load(); err != nil {
		hm.logger.Warn().Err(err).Msg("failed to load high score, starting from 0")
	}
	return hm
}

// Load 从存储读取最高分
func (hm *HighScoreManager) Load() error {
	if isNilStore(hm.store) {
		return nil
	}
	if !hm.store.ObjectPropExists(highScoreObject, highScoreProperty) {
		return nil
	}
	data, err := hm.store.LoadObjectProp(highScoreObject, highScoreProperty)
	if err != nil {
		return fmt.Errorf("failed to read high score: %w", err)
	}
	v, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return fmt.Errorf("failed to parse high score %q: %w", data, err)
	}
	if v < 0 {
		v = 0
	}
	hm.best = v
	return nil
}

// Best 当前最高分
func (hm *HighScoreManager) Best() int {
	return hm.best
}

// Submit 提交分数，超过最高分时立即写入存储
//
// 返回是否刷新了记录。写入失败只警告一次，内存中的最高分仍会更新。
func (hm *HighScoreManager) Submit(score int) bool {
	if score <= hm.best {
		return false
	}
	hm.best = score
	if err := hm.save(); err != nil {
		hm.warn.Warn(hm.logger, "save", err, "failed to persist high score")
	}
	return true
}

func (hm *HighScoreManager) save() error {
	if isNilStore(hm.store) {
		return nil
	}
	data := []byte(strconv.Itoa(hm.best))
	if err := hm.store.SaveObjectProp(highScoreObject, highScoreProperty, data); err != nil {
		return fmt.Errorf("failed to write high score: %w", err)
	}
	return nil
}
