package entities

import (
	"github.com/decker502/galaxy-defender/pkg/components"
	"github.com/decker502/galaxy-defender/pkg/config"
	"github.com/decker502/galaxy-defender/pkg/ecs"
	"github.com/decker502/galaxy-defender/pkg/types"
)

// NewPlayerBullet 创建玩家子弹
//
// 参数:
//   - x, y: 子弹左上角
//   - vx: 横向速度（三连发两侧子弹非零），纵向速度固定为 -PlayerSpeed
//   - damage: 含升级加成的伤害
func NewPlayerBullet(em *ecs.EntityManager, cfg config.BulletConfig, x, y, vx float64, damage int) ecs.EntityID {
	return newProjectile(em, x, y, vx, -cfg.PlayerSpeed, cfg.PlayerWidth, cfg.PlayerHeight, types.OwnerPlayer, damage)
}

// NewEnemyBullet 创建敌方子弹（普通敌人与 Boss 共用）
func NewEnemyBullet(em *ecs.EntityManager, cfg config.BulletConfig, x, y, vx, vy float64) ecs.EntityID {
	return newProjectile(em, x, y, vx, vy, cfg.EnemyWidth, cfg.EnemyHeight, types.OwnerEnemy, cfg.EnemyDamage)
}

func newProjectile(em *ecs.EntityManager, x, y, vx, vy, w, h float64, owner types.Owner, damage int) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.VelocityComponent{VX: vx, VY: vy})
	em.AddComponent(id, &components.CollisionComponent{Width: w, Height: h})
	em.AddComponent(id, &components.ProjectileComponent{Owner: owner, Damage: damage})
	return id
}
