package entities

import (
	"github.com/decker502/galaxy-defender/pkg/components"
	"github.com/decker502/galaxy-defender/pkg/config"
	"github.com/decker502/galaxy-defender/pkg/ecs"
	"github.com/decker502/galaxy-defender/pkg/types"
)

// NewPowerUp 以 (cx, cy) 为中心创建下落的道具
func NewPowerUp(em *ecs.EntityManager, cfg config.PowerUpConfig, kind types.PowerUpType, cx, cy float64) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: cx - cfg.Size/2, Y: cy - cfg.Size/2})
	em.AddComponent(id, &components.VelocityComponent{VY: cfg.FallSpeed})
	em.AddComponent(id, &components.CollisionComponent{Width: cfg.Size, Height: cfg.Size})
	em.AddComponent(id, &components.PowerUpComponent{Type: kind})
	return id
}
