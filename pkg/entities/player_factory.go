package entities

import (
	"github.com/decker502/galaxy-defender/pkg/components"
	"github.com/decker502/galaxy-defender/pkg/config"
	"github.com/decker502/galaxy-defender/pkg/ecs"
)

// NewPlayer 创建玩家飞船
//
// 参数:
//   - em: 实体管理器
//   - cfg: 玩家参数
//   - fieldW, fieldH: 画面尺寸，飞船位于底部居中
//   - maxHealth: 含升级加成的生命上限
func NewPlayer(em *ecs.EntityManager, cfg config.PlayerConfig, fieldW, fieldH float64, maxHealth int) ecs.EntityID {
	id := em.CreateEntity()

	em.AddComponent(id, &components.PositionComponent{
		X: (fieldW - cfg.Width) / 2,
		Y: fieldH - cfg.BottomMargin,
	})
	em.AddComponent(id, &components.VelocityComponent{})
	em.AddComponent(id, &components.CollisionComponent{
		Width:  cfg.Width,
		Height: cfg.Height,
	})
	em.AddComponent(id, &components.HealthComponent{
		Current: maxHealth,
		Max:     maxHealth,
	})
	em.AddComponent(id, &components.PlayerComponent{
		LastShotMs: components.NeverFired,
	})

	return id
}
