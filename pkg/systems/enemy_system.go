package systems

import (
	"github.com/decker502/galaxy-defender/pkg/components"
	"github.com/decker502/galaxy-defender/pkg/ecs"
	"github.com/decker502/galaxy-defender/pkg/entities"
	"github.com/decker502/galaxy-defender/pkg/utils"
)

// EnemySystem 推进普通敌人的运动和射击
type EnemySystem struct {
	ctx *Context
}

// NewEnemySystem 创建敌人系统
func NewEnemySystem(ctx *Context) *EnemySystem {
	return &EnemySystem{ctx: ctx}
}

// Update 移动所有敌人，越过底边的敌人直接移除（不扣分）
func (s *EnemySystem) Update() {
	em := s.ctx.EM
	enemies := &s.ctx.Profile.Enemies
	field := s.ctx.Field

	for _, id := range ecs.GetEntitiesWith2[*components.EnemyComponent, *components.PositionComponent](em) {
		ec, _ := ecs.GetComponent[*components.EnemyComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		vc, ok := enemies.Variant(ec.Variant)
		if !ok {
			// 档案中已没有该变体（理论上不会发生），按 BASIC 下落
			pos.Y += ec.BaseSpeed
			continue
		}

		dx, dy := EnemyMotion(ec.Variant, MotionInput{
			Age:       ec.Age,
			X:         pos.X,
			Y:         pos.Y,
			SpawnX:    ec.SpawnX,
			Speed:     ec.BaseSpeed,
			StrafeDir: ec.StrafeDir,
		}, vc)
		pos.X = utils.Clamp(pos.X+dx, 0, field.Width-enemies.Width)
		pos.Y += dy
		ec.Age++
		ec.Diving = pos.Y >= vc.DiveY && vc.DiveMultiplier > 0

		if pos.Y > field.Height {
			em.DestroyEntity(id)
			continue
		}

		if vc.ShootFrames > 0 && pos.Y >= 0 {
			ec.ShootTimer--
			if ec.ShootTimer <= 0 {
				ec.ShootTimer = vc.ShootFrames
				s.shoot(pos)
			}
		}
	}
}

// shoot 从敌人底部中央向正下方发射
func (s *EnemySystem) shoot(pos *components.PositionComponent) {
	bullets := s.ctx.Profile.Bullets
	enemies := s.ctx.Profile.Enemies
	x := pos.X + enemies.Width/2 - bullets.EnemyWidth/2
	y := pos.Y + enemies.Height
	entities.NewEnemyBullet(s.ctx.EM, bullets, x, y, 0, bullets.EnemySpeed)
}
