package entities

import (
	"github.com/decker502/galaxy-defender/pkg/components"
	"github.com/decker502/galaxy-defender/pkg/config"
	"github.com/decker502/galaxy-defender/pkg/ecs"
	"github.com/decker502/galaxy-defender/pkg/types"
	"github.com/decker502/galaxy-defender/pkg/utils"
)

// BossHP Boss 出场血量：baseHP + wave * hpPerWave
func BossHP(cfg config.BossConfig, wave int) int {
	return cfg.BaseHP + wave*cfg.HPPerWave
}

// NewBoss 在画面上方水平居中处创建 Boss，初始状态为 ENTRY
func NewBoss(em *ecs.EntityManager, cfg config.BossConfig, fieldW float64, wave int) ecs.EntityID {
	id := em.CreateEntity()
	hp := BossHP(cfg, wave)

	em.AddComponent(id, &components.PositionComponent{
		X: (fieldW - cfg.Width) / 2,
		Y: -cfg.Height,
	})
	em.AddComponent(id, &components.CollisionComponent{Width: cfg.Width, Height: cfg.Height})
	em.AddComponent(id, &components.HealthComponent{Current: hp, Max: hp})
	em.AddComponent(id, &components.BossComponent{
		State: types.BossEntry,
		Wave:  wave,
		Color: utils.MustColor(cfg.Color),
	})

	return id
}
