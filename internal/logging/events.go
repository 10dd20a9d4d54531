package logging

import (
	"github.com/decker502/galaxy-defender/pkg/event"
	"github.com/rs/zerolog"
)

// noisy 每帧都可能出现的事件，只在 Trace 级别记录
var noisy = map[event.EventType]bool{
	event.PlayerShot:   true,
	event.EnemyHit:     true,
	event.ScoreChanged: true,
	event.CoinsChanged: true,
}

// EventLogger 将游戏事件写入日志
type EventLogger struct {
	logger zerolog.Logger
}

// AttachEventLogger 订阅分发器上的全部事件
func AttachEventLogger(d *event.Dispatcher, l zerolog.Logger) *EventLogger {
	el := &EventLogger{logger: Component(l, "events")}
	d.SubscribeAll(el)
	return el
}

// OnEvent 实现 event.Listener
func (el *EventLogger) OnEvent(e event.Event) {
	lvl := zerolog.DebugLevel
	if noisy[e.Type] {
		lvl = zerolog.TraceLevel
	}
	switch e.Type {
	case event.BossSpawned, event.BossDefeated, event.WaveAdvanced, event.GameOver:
		lvl = zerolog.InfoLevel
	}
	el.logger.WithLevel(lvl).
		Str("event", string(e.Type)).
		Interface("data", e.Data).
		Msg("game event")
}
