// Package sim 把各系统组装成一次完整的游戏模拟
//
// Simulation 只依赖 ecs/systems/game，不引用 ebiten，
// 因此可以同时驱动窗口版、终端版和无界面的平衡测试。
package sim

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/decker502/galaxy-defender/internal/logging"
	"github.com/decker502/galaxy-defender/pkg/components"
	"github.com/decker502/galaxy-defender/pkg/config"
	"github.com/decker502/galaxy-defender/pkg/ecs"
	"github.com/decker502/galaxy-defender/pkg/entities"
	"github.com/decker502/galaxy-defender/pkg/event"
	"github.com/decker502/galaxy-defender/pkg/game"
	"github.com/decker502/galaxy-defender/pkg/systems"
	"github.com/decker502/galaxy-defender/pkg/types"
	"github.com/decker502/galaxy-defender/pkg/utils"
	"github.com/rs/zerolog"
)

// Options 模拟的创建参数
type Options struct {
	Width, Height float64
	// Seed 为 0 时使用随机种子
	Seed uint64
	// Bus 为 nil 时内部创建
	Bus *event.Dispatcher
	// HighScore 为 nil 时只在内存中记录最高分
	HighScore *game.HighScoreManager
	Logger    zerolog.Logger
	// Metrics 为 true 时向全局 OTel MeterProvider 注册指标
	Metrics bool
}

// Simulation 一局游戏的完整状态与系统
type Simulation struct {
	profile *config.Profile
	ctx     *systems.Context
	logger  zerolog.Logger

	player     *systems.PlayerSystem
	spawn      *systems.SpawnSystem
	enemy      *systems.EnemySystem
	boss       *systems.BossSystem
	projectile *systems.ProjectileSystem
	powerUp    *systems.PowerUpSystem
	combat     *systems.CombatSystem
	wave       *systems.WaveSystem
	particles  *systems.ParticleSystem
	stars      *systems.StarfieldSystem

	highScore   *game.HighScoreManager
	bestAtStart int
	runOver     bool
	metrics     *Metrics
	frames      uint64
}

// New 创建模拟。初始阶段为 START（主菜单），只有星空在滚动
func New(profile *config.Profile, opts Options) (*Simulation, error) {
	if profile == nil {
		return nil, errors.New("sim: profile is required")
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("sim: invalid playfield %vx%v", opts.Width, opts.Height)
	}
	bus := opts.Bus
	if bus == nil {
		bus = event.NewDispatcher()
	}
	seed := opts.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	hs := opts.HighScore
	if hs == nil {
		hs = game.NewHighScoreManager(nil, opts.Logger)
	}

	ctx := &systems.Context{
		EM:      ecs.NewEntityManager(),
		State:   game.NewGameState(bus),
		Profile: profile,
		Field:   &systems.Playfield{Width: opts.Width, Height: opts.Height},
		Rand:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		Bus:     bus,
	}

	s := &Simulation{
		profile:    profile,
		ctx:        ctx,
		logger:     logging.Component(opts.Logger, "sim"),
		player:     systems.NewPlayerSystem(ctx),
		spawn:      systems.NewSpawnSystem(ctx),
		enemy:      systems.NewEnemySystem(ctx),
		boss:       systems.NewBossSystem(ctx),
		projectile: systems.NewProjectileSystem(ctx),
		powerUp:    systems.NewPowerUpSystem(ctx),
		combat:     systems.NewCombatSystem(ctx),
		wave:       systems.NewWaveSystem(ctx),
		particles:  systems.NewParticleSystem(ctx.EM),
		stars:      systems.NewStarfieldSystem(ctx),
		highScore:  hs,
	}

	if opts.Metrics {
		m, err := NewMetrics(bus, ctx.EM)
		if err != nil {
			return nil, fmt.Errorf("sim: %w", err)
		}
		s.metrics = m
	}

	// 分数超过最高分时立即持久化
	bus.SubscribeFunc(event.ScoreChanged, func(e event.Event) {
		if v, ok := e.Data.(event.ValueData); ok {
			s.highScore.Submit(v.Value)
		}
	})

	entities.NewStarfield(ctx.EM, profile.Starfield, opts.Width, opts.Height, ctx.Rand)
	s.logger.Debug().Str("profile", profile.Name).Uint64("seed", seed).Msg("simulation created")
	return s, nil
}

// Start 开始新的一局
func (s *Simulation) Start() {
	ctx := s.ctx
	ctx.EM.Clear()
	ctx.State.Reset()
	s.spawn.Reset()
	s.wave.Reset()
	s.frames = 0
	s.runOver = false
	s.bestAtStart = s.highScore.Best()

	maxHP := systems.MaxHealth(s.profile.Player, ctx.State.Upgrades)
	entities.NewPlayer(ctx.EM, s.profile.Player, ctx.Field.Width, ctx.Field.Height, maxHP)
	entities.NewStarfield(ctx.EM, s.profile.Starfield, ctx.Field.Width, ctx.Field.Height, ctx.Rand)
	ctx.State.SetPhase(types.PhasePlaying)
	s.logger.Info().Str("profile", s.profile.Name).Int("best", s.bestAtStart).Msg("run started")
}

// Step 推进一帧
//
// dtMs 为本帧经过的毫秒数（驱动射击冷却和刷怪间隔）；其余计时以帧为单位。
// 暂停时不推进任何实体。
func (s *Simulation) Step(dtMs float64, in types.Input) {
	state := s.ctx.State
	if in.Pause && (state.Phase == types.PhasePlaying || state.Phase == types.PhaseBoss) {
		state.Paused = !state.Paused
	}
	if state.Paused {
		return
	}

	s.frames++
	switch state.Phase {
	case types.PhasePlaying:
		state.ElapsedMs += dtMs
		s.player.Update(in)
		s.spawn.Update()
		s.enemy.Update()
		s.boss.Update()
		s.projectile.Update()
		s.powerUp.Update()
		s.combat.Update()
		s.wave.CheckGate()
		s.particles.Update()
		s.stars.Update()
	default:
		// 菜单、警告、商店和结算画面只保留背景动画
		if state.Phase == types.PhaseBoss {
			s.wave.UpdateWarning()
		}
		s.particles.Update()
		s.stars.Update()
	}
	s.ctx.EM.RemoveMarkedEntities()
	if s.metrics != nil {
		s.metrics.ObserveEntities(s.ctx.EM.EntityCount())
	}

	if state.Phase == types.PhaseGameOver && !s.runOver {
		s.finishRun()
	}
}

// finishRun 结算一局，只执行一次
func (s *Simulation) finishRun() {
	state := s.ctx.State
	s.highScore.Submit(state.Score)
	record := state.Score > s.bestAtStart
	s.ctx.Bus.Publish(event.GameOver, event.GameOverData{
		Score:     state.Score,
		Wave:      state.Wave,
		HighScore: s.highScore.Best(),
		NewRecord: record,
	})
	s.logger.Info().
		Int("score", state.Score).
		Int("wave", state.Wave).
		Bool("record", record).
		Msg("run finished")
	s.runOver = true
}

// Resize 改变可玩区域
//
// 玩家重新贴底并限制在新边界内，星空重建；其余实体保持原位
func (s *Simulation) Resize(w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	field := s.ctx.Field
	if field.Width == w && field.Height == h {
		return
	}
	field.Width, field.Height = w, h

	for _, id := range ecs.GetEntitiesWith2[*components.PlayerComponent, *components.PositionComponent](s.ctx.EM) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.ctx.EM, id)
		pos.X = utils.Clamp(pos.X, 0, w-s.profile.Player.Width)
		pos.Y = h - s.profile.Player.BottomMargin
	}
	s.stars.Rebuild()
	s.ctx.EM.RemoveMarkedEntities()
}

// Purchase 在商店购买一级升级
// 生命上限升级立即生效（当前生命同步增加）
func (s *Simulation) Purchase(kind game.UpgradeKind) (int, error) {
	cost, err := s.ctx.State.Purchase(kind, s.profile.Economy)
	if err != nil {
		return 0, err
	}
	if kind == game.UpgradeMaxHealth {
		if hp := s.playerHealth(); hp != nil {
			newMax := systems.MaxHealth(s.profile.Player, s.ctx.State.Upgrades)
			hp.Current += newMax - hp.Max
			hp.Max = newMax
		}
	}
	return cost, nil
}

// LeaveShop 离开商店：回满生命并继续游戏
func (s *Simulation) LeaveShop() error {
	state := s.ctx.State
	if state.Phase != types.PhaseShop {
		return game.ErrNotInShop
	}
	if hp := s.playerHealth(); hp != nil {
		hp.Max = systems.MaxHealth(s.profile.Player, state.Upgrades)
		hp.Current = hp.Max
	}
	state.SetPhase(types.PhasePlaying)
	return nil
}

// ReturnToMenu 放弃当前局并回到主菜单
func (s *Simulation) ReturnToMenu() {
	ctx := s.ctx
	ctx.EM.Clear()
	ctx.State.Reset()
	s.wave.Reset()
	entities.NewStarfield(ctx.EM, s.profile.Starfield, ctx.Field.Width, ctx.Field.Height, ctx.Rand)
	ctx.State.SetPhase(types.PhaseStart)
}

// UpgradeCost 下一级升级价格
func (s *Simulation) UpgradeCost(kind game.UpgradeKind) int {
	return s.ctx.State.Upgrades.UpgradeCost(kind, s.profile.Economy)
}

// CanAfford 是否可以购买下一级
func (s *Simulation) CanAfford(kind game.UpgradeKind) bool {
	return s.ctx.State.CanAfford(kind, s.profile.Economy)
}

// Close 注销指标回调
func (s *Simulation) Close() error {
	if s.metrics != nil {
		return s.metrics.Close()
	}
	return nil
}

func (s *Simulation) playerHealth() *components.HealthComponent {
	ids := ecs.GetEntitiesWith2[*components.PlayerComponent, *components.HealthComponent](s.ctx.EM)
	if len(ids) == 0 {
		return nil
	}
	hp, _ := ecs.GetComponent[*components.HealthComponent](s.ctx.EM, ids[0])
	return hp
}

// Profile 当前调参档案
func (s *Simulation) Profile() *config.Profile { return s.profile }

// EntityManager 供渲染器只读遍历
func (s *Simulation) EntityManager() *ecs.EntityManager { return s.ctx.EM }

// Bus 事件总线
func (s *Simulation) Bus() *event.Dispatcher { return s.ctx.Bus }

// Phase 当前阶段
func (s *Simulation) Phase() types.Phase { return s.ctx.State.Phase }

// Size 当前画布尺寸
func (s *Simulation) Size() (float64, float64) { return s.ctx.Field.Width, s.ctx.Field.Height }

// Frames 启动以来推进的帧数（暂停不计）
func (s *Simulation) Frames() uint64 { return s.frames }
