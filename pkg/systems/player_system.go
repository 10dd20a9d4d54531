package systems

import (
	"github.com/decker502/galaxy-defender/pkg/components"
	"github.com/decker502/galaxy-defender/pkg/ecs"
	"github.com/decker502/galaxy-defender/pkg/entities"
	"github.com/decker502/galaxy-defender/pkg/event"
	"github.com/decker502/galaxy-defender/pkg/types"
	"github.com/decker502/galaxy-defender/pkg/utils"
)

// PlayerSystem 处理玩家移动、射击和道具计时
type PlayerSystem struct {
	ctx *Context
}

// NewPlayerSystem 创建玩家系统
func NewPlayerSystem(ctx *Context) *PlayerSystem {
	return &PlayerSystem{ctx: ctx}
}

// Update 根据本帧输入推进玩家
//
// 移动带惯性：按键只改变速度，速度每帧乘以阻尼，位置限制在 [0, 宽度-飞船宽度]
func (s *PlayerSystem) Update(in types.Input) {
	em := s.ctx.EM
	id, pc, ok := s.ctx.playerEntity()
	if !ok {
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		return
	}
	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, id)
	col, _ := ecs.GetComponent[*components.CollisionComponent](em, id)
	if vel == nil || col == nil {
		return
	}

	cfg := s.ctx.Profile.Player
	accel := PlayerAccel(cfg, s.ctx.State.Upgrades.Speed)
	if in.Left {
		vel.VX -= accel
	}
	if in.Right {
		vel.VX += accel
	}
	vel.VX *= cfg.Damping

	maxX := s.ctx.Field.Width - col.Width
	pos.X += vel.VX
	clamped := utils.Clamp(pos.X, 0, maxX)
	if clamped != pos.X {
		// 撞墙后不再保留朝墙的速度
		vel.VX = 0
	}
	pos.X = clamped

	tickDown(&pc.Invulnerable)
	tickDown(&pc.Shield)
	tickDown(&pc.RapidFire)
	tickDown(&pc.TripleShot)

	if in.Fire {
		s.tryFire(pc, pos, col)
	}
}

func tickDown(v *int) {
	if *v > 0 {
		*v--
	}
}

// tryFire 冷却结束时开火
func (s *PlayerSystem) tryFire(pc *components.PlayerComponent, pos *components.PositionComponent, col *components.CollisionComponent) {
	state := s.ctx.State
	cooldown := FireCooldownMs(s.ctx.Profile.Player, pc.RapidFire > 0, state.Upgrades.FireRate)
	if state.ElapsedMs-pc.LastShotMs < cooldown {
		return
	}
	pc.LastShotMs = state.ElapsedMs

	bullets := s.ctx.Profile.Bullets
	damage := BulletDamage(bullets, state.Upgrades.Damage)
	x := pos.X + col.Width/2 - bullets.PlayerWidth/2
	y := pos.Y

	entities.NewPlayerBullet(s.ctx.EM, bullets, x, y, 0, damage)
	count := 1
	if pc.TripleShot > 0 {
		spread := s.ctx.Profile.Player.TripleSpreadVX
		entities.NewPlayerBullet(s.ctx.EM, bullets, x, y, -spread, damage)
		entities.NewPlayerBullet(s.ctx.EM, bullets, x, y, spread, damage)
		count = 3
	}
	s.ctx.Bus.Publish(event.PlayerShot, event.ShotData{Bullets: count})
}
