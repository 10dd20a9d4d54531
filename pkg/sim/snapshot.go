package sim

import (
	"github.com/decker502/galaxy-defender/pkg/components"
	"github.com/decker502/galaxy-defender/pkg/ecs"
	"github.com/decker502/galaxy-defender/pkg/game"
	"github.com/decker502/galaxy-defender/pkg/types"
)

// Snapshot HUD 和覆盖层所需的只读数据
type Snapshot struct {
	Phase     types.Phase
	Paused    bool
	Score     int
	HighScore int
	Coins     int
	Wave      int
	ElapsedMs float64

	Health    int
	MaxHealth int
	// LivesHUD 为 true 时生命以图标个数显示，否则显示血条
	LivesHUD bool

	Shield     int
	RapidFire  int
	TripleShot int
	Invuln     int

	BossAlive bool
	BossState types.BossState
	BossHP    int
	BossMaxHP int
	// WarningProgress BOSS 警告过场进度 [0,1]
	WarningProgress float64

	Upgrades game.Upgrades
	HasShop  bool

	Width, Height float64
	Entities      int
}

// Snapshot 生成当前帧的只读快照
func (s *Simulation) Snapshot() Snapshot {
	state := s.ctx.State
	em := s.ctx.EM
	snap := Snapshot{
		Phase:           state.Phase,
		Paused:          state.Paused,
		Score:           state.Score,
		HighScore:       s.highScore.Best(),
		Coins:           state.Coins,
		Wave:            state.Wave,
		ElapsedMs:       state.ElapsedMs,
		LivesHUD:        s.profile.Player.HUD == "lives",
		WarningProgress: s.wave.WarningProgress(),
		Upgrades:        state.Upgrades,
		HasShop:         s.profile.HasShop(),
		Width:           s.ctx.Field.Width,
		Height:          s.ctx.Field.Height,
		Entities:        em.EntityCount(),
	}

	if ids := ecs.GetEntitiesWith1[*components.PlayerComponent](em); len(ids) > 0 {
		pc, _ := ecs.GetComponent[*components.PlayerComponent](em, ids[0])
		snap.Shield = pc.Shield
		snap.RapidFire = pc.RapidFire
		snap.TripleShot = pc.TripleShot
		snap.Invuln = pc.Invulnerable
		if hp, ok := ecs.GetComponent[*components.HealthComponent](em, ids[0]); ok {
			snap.Health = hp.Current
			snap.MaxHealth = hp.Max
		}
	}

	if ids := ecs.GetEntitiesWith1[*components.BossComponent](em); len(ids) > 0 {
		bc, _ := ecs.GetComponent[*components.BossComponent](em, ids[0])
		snap.BossAlive = true
		snap.BossState = bc.State
		if hp, ok := ecs.GetComponent[*components.HealthComponent](em, ids[0]); ok {
			snap.BossHP = hp.Current
			snap.BossMaxHP = hp.Max
		}
	}
	return snap
}
