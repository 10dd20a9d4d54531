package systems

import (
	"github.com/decker502/galaxy-defender/pkg/components"
	"github.com/decker502/galaxy-defender/pkg/ecs"
)

// ParticleSystem 爆炸和火花粒子
//
// 每帧按速度移动并减少 Decay 点生命，生命归零后销毁；粒子不参与碰撞
type ParticleSystem struct {
	EntityManager *ecs.EntityManager
}

// NewParticleSystem 创建粒子系统
func NewParticleSystem(em *ecs.EntityManager) *ParticleSystem {
	return &ParticleSystem{EntityManager: em}
}

// Update 推进所有粒子一帧
func (s *ParticleSystem) Update() {
	em := s.EntityManager
	ids := ecs.GetEntitiesWith3[*components.ParticleComponent, *components.PositionComponent, *components.VelocityComponent](em)
	for _, id := range ids {
		p, _ := ecs.GetComponent[*components.ParticleComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](em, id)

		pos.X += vel.VX
		pos.Y += vel.VY
		p.Life -= p.Decay
		if p.Life <= 0 {
			p.Life = 0
			em.DestroyEntity(id)
		}
	}
}

// Count 存活粒子数
func (s *ParticleSystem) Count() int {
	return len(ecs.GetEntitiesWith1[*components.ParticleComponent](s.EntityManager))
}
