package systems

import (
	"github.com/decker502/galaxy-defender/pkg/entities"
	"github.com/decker502/galaxy-defender/pkg/event"
	"github.com/decker502/galaxy-defender/pkg/types"
)

// WaveSystem 负责 Boss 出场门槛与来袭警告
//
// 门槛达到后进入 BOSS 阶段（警告过场），倒计时结束生成 Boss 并回到 PLAYING
type WaveSystem struct {
	ctx          *Context
	warningLeft  int
	warningTotal int
}

// NewWaveSystem 创建波次系统
func NewWaveSystem(ctx *Context) *WaveSystem {
	return &WaveSystem{ctx: ctx}
}

// Reset 清除未完成的警告
func (s *WaveSystem) Reset() {
	s.warningLeft = 0
	s.warningTotal = 0
}

// CheckGate 在 PLAYING 阶段检查 Boss 门槛，返回是否开始警告
func (s *WaveSystem) CheckGate() bool {
	state := s.ctx.State
	if state.Phase != types.PhasePlaying || s.ctx.BossAlive() {
		return false
	}
	if !state.BossDue(s.ctx.Profile.Waves) {
		return false
	}

	s.warningTotal = s.ctx.Profile.Waves.BossWarningFrames
	s.warningLeft = s.warningTotal
	state.SetPhase(types.PhaseBoss)
	s.ctx.Bus.Publish(event.BossWarning, event.BossData{Wave: state.Wave})
	if s.warningLeft <= 0 {
		s.spawnBoss()
	}
	return true
}

// UpdateWarning 在 BOSS 阶段推进倒计时
func (s *WaveSystem) UpdateWarning() {
	if s.ctx.State.Phase != types.PhaseBoss {
		return
	}
	s.warningLeft--
	if s.warningLeft <= 0 {
		s.spawnBoss()
	}
}

// WarningProgress 警告进度 [0,1]，用于渲染闪烁
func (s *WaveSystem) WarningProgress() float64 {
	if s.warningTotal <= 0 {
		return 1
	}
	return 1 - float64(s.warningLeft)/float64(s.warningTotal)
}

func (s *WaveSystem) spawnBoss() {
	state := s.ctx.State
	s.warningLeft = 0
	entities.NewBoss(s.ctx.EM, s.ctx.Profile.Boss, s.ctx.Field.Width, state.Wave)
	state.SetPhase(types.PhasePlaying)
	s.ctx.Bus.Publish(event.BossSpawned, event.BossData{
		Wave:  state.Wave,
		HP:    entities.BossHP(s.ctx.Profile.Boss, state.Wave),
		State: types.BossEntry,
	})
}
