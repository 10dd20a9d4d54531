package systems

import (
	"math"

	"github.com/decker502/galaxy-defender/pkg/config"
	"github.com/decker502/galaxy-defender/pkg/entities"
	"github.com/decker502/galaxy-defender/pkg/utils"
)

// Difficulty 难度系数，随时间、分数和波次单调增加
// difficulty = 1 + elapsedSec*timeFactor + score*scoreFactor + (wave-1)*waveFactor
func Difficulty(cfg config.SpawnConfig, elapsedMs float64, score, wave int) float64 {
	return 1 +
		elapsedMs/1000*cfg.TimeFactor +
		float64(score)*cfg.ScoreFactor +
		float64(wave-1)*cfg.WaveFactor
}

// SpawnInterval 当前刷怪间隔（毫秒），不低于 minIntervalMs
func SpawnInterval(cfg config.SpawnConfig, elapsedMs float64, score, wave int) float64 {
	d := Difficulty(cfg, elapsedMs, score, wave)
	if d <= 0 {
		d = 1
	}
	return math.Max(cfg.MinIntervalMs, cfg.BaseIntervalMs/d)
}

// SpawnSystem 按间隔生成普通敌人
// Boss 在场时不刷普通敌人
type SpawnSystem struct {
	ctx         *Context
	lastSpawnMs float64
}

// NewSpawnSystem 创建刷怪系统
func NewSpawnSystem(ctx *Context) *SpawnSystem {
	return &SpawnSystem{ctx: ctx}
}

// Reset 新一局开始时重置计时
func (s *SpawnSystem) Reset() {
	s.lastSpawnMs = 0
}

// Update 间隔到达时生成一个敌人，返回是否生成
func (s *SpawnSystem) Update() bool {
	if s.ctx.BossAlive() {
		// Boss 战结束后重新计时，避免立刻刷一只
		s.lastSpawnMs = s.ctx.State.ElapsedMs
		return false
	}

	state := s.ctx.State
	interval := SpawnInterval(s.ctx.Profile.Spawn, state.ElapsedMs, state.Score, state.Wave)
	if state.ElapsedMs-s.lastSpawnMs < interval {
		return false
	}
	s.lastSpawnMs = state.ElapsedMs
	s.spawnOne()
	return true
}

func (s *SpawnSystem) spawnOne() {
	enemies := &s.ctx.Profile.Enemies
	idx := utils.PickWeighted(s.ctx.Rand.Float64(), enemies.Weights())
	if idx < 0 {
		return
	}
	v := &enemies.Variants[idx]
	maxX := math.Max(0, s.ctx.Field.Width-enemies.Width)
	x := s.ctx.Rand.Float64() * maxX
	entities.NewEnemy(s.ctx.EM, *enemies, v, x, s.ctx.State.Wave, s.ctx.Rand)
}
