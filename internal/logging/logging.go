// Package logging 构建全局使用的 zerolog 日志器
package logging

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// New 创建控制台格式的日志器
//
// verbose 为 false 时只输出 Warn 及以上；w 为 nil 时写到 stderr
func New(verbose bool, w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.TimeOnly,
	}
	if f, ok := w.(*os.File); !ok || f != os.Stderr {
		out.NoColor = true
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// Component 返回带 component 字段的子日志器
func Component(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("component", name).Logger()
}

// Once 每个 key 只记录一次警告
// 用于音频设备、存储等可选平台能力缺失时的降级提示
type Once struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

// Warn 首次遇到 key 时输出警告，返回是否输出
func (o *Once) Warn(l zerolog.Logger, key string, err error, msg string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.seen == nil {
		o.seen = make(map[string]struct{})
	}
	if _, ok := o.seen[key]; ok {
		return false
	}
	o.seen[key] = struct{}{}
	l.Warn().Err(err).Str("key", key).Msg(msg)
	return true
}
