package systems

import (
	"github.com/decker502/galaxy-defender/pkg/components"
	"github.com/decker502/galaxy-defender/pkg/config"
	"github.com/decker502/galaxy-defender/pkg/ecs"
	"github.com/decker502/galaxy-defender/pkg/event"
	"github.com/decker502/galaxy-defender/pkg/types"
)

// PowerUpSystem 道具下落与拾取
type PowerUpSystem struct {
	ctx *Context
}

// NewPowerUpSystem 创建道具系统
func NewPowerUpSystem(ctx *Context) *PowerUpSystem {
	return &PowerUpSystem{ctx: ctx}
}

// Update 道具下落；与玩家重叠时生效并移除，落出底边时移除
func (s *PowerUpSystem) Update() {
	em := s.ctx.EM
	pid, pc, hasPlayer := s.ctx.playerEntity()
	var playerHP *components.HealthComponent
	if hasPlayer {
		playerHP, _ = ecs.GetComponent[*components.HealthComponent](em, pid)
	}

	for _, id := range ecs.GetEntitiesWith2[*components.PowerUpComponent, *components.PositionComponent](em) {
		pu, _ := ecs.GetComponent[*components.PowerUpComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		if vel, ok := ecs.GetComponent[*components.VelocityComponent](em, id); ok {
			pos.X += vel.VX
			pos.Y += vel.VY
		}

		if hasPlayer {
			pr, ok1 := rectOf(em, pid)
			ur, ok2 := rectOf(em, id)
			if ok1 && ok2 && pr.Overlaps(ur) {
				ApplyPowerUp(pc, playerHP, pu.Type, s.ctx.Profile)
				s.ctx.Bus.Publish(event.PowerUpCollected, event.PowerUpData{Type: pu.Type})
				em.DestroyEntity(id)
				continue
			}
		}

		if pos.Y > s.ctx.Field.Height {
			em.DestroyEntity(id)
		}
	}
}

// ApplyPowerUp 将道具效果作用到玩家
//
// 限时道具重置为满持续时间（不叠加）；HEAL 立即回血且不超过上限
func ApplyPowerUp(pc *components.PlayerComponent, hp *components.HealthComponent, kind types.PowerUpType, p *config.Profile) {
	frames := p.Player.EffectFrames
	switch kind {
	case types.PowerUpRapidFire:
		pc.RapidFire = frames
	case types.PowerUpShield:
		pc.Shield = frames
	case types.PowerUpTripleShot:
		pc.TripleShot = frames
	case types.PowerUpHeal:
		if hp != nil {
			hp.Current = min(hp.Max, hp.Current+p.PowerUps.HealAmount)
		}
	}
}
