package entities

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/decker502/galaxy-defender/pkg/components"
	"github.com/decker502/galaxy-defender/pkg/ecs"
)

// NewParticle 创建单个粒子，Life 从 1 开始
func NewParticle(em *ecs.EntityManager, x, y, vx, vy float64, c color.RGBA, size, decay float64) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.VelocityComponent{VX: vx, VY: vy})
	em.AddComponent(id, &components.ParticleComponent{
		Color: c,
		Size:  size,
		Life:  1,
		Decay: decay,
	})
	return id
}

// BurstConfig 粒子爆发参数
type BurstConfig struct {
	Count    int
	MaxSpeed float64
	Decay    float64
	Size     float64
	Color    color.RGBA
}

// NewBurst 以 (cx, cy) 为中心向随机方向发射一组粒子
// 返回创建的粒子 ID
func NewBurst(em *ecs.EntityManager, r *rand.Rand, cx, cy float64, cfg BurstConfig) []ecs.EntityID {
	ids := make([]ecs.EntityID, 0, cfg.Count)
	for i := 0; i < cfg.Count; i++ {
		angle := r.Float64() * 2 * math.Pi
		speed := r.Float64() * cfg.MaxSpeed
		size := cfg.Size
		if size <= 0 {
			size = 2 + r.Float64()*3
		}
		// 衰减速度轻微随机，避免整团粒子同一帧消失
		decay := cfg.Decay * (0.8 + r.Float64()*0.4)
		ids = append(ids, NewParticle(em, cx, cy,
			math.Cos(angle)*speed, math.Sin(angle)*speed,
			cfg.Color, size, decay))
	}
	return ids
}
