package entities

import (
	"math/rand/v2"

	"github.com/decker502/galaxy-defender/pkg/components"
	"github.com/decker502/galaxy-defender/pkg/config"
	"github.com/decker502/galaxy-defender/pkg/ecs"
	"github.com/decker502/galaxy-defender/pkg/types"
	"github.com/decker502/galaxy-defender/pkg/utils"
)

// EnemyHP 计算敌人在指定波次的血量
// hp = 变体基础血量 + floor((wave-1) * hpPerWave)
func EnemyHP(enemies config.EnemiesConfig, v *config.EnemyVariantConfig, wave int) int {
	if wave < 1 {
		wave = 1
	}
	return v.HP + int(float64(wave-1)*enemies.HPPerWave)
}

// NewEnemy 在画面上方创建一个敌人
//
// 参数:
//   - enemies: 敌人公共参数（尺寸）
//   - v: 变体参数
//   - x: 出生点左上角 x
//   - wave: 当前波次，影响血量
//   - r: 随机源，用于速度抖动和 SCOUT 初始方向
func NewEnemy(em *ecs.EntityManager, enemies config.EnemiesConfig, v *config.EnemyVariantConfig, x float64, wave int, r *rand.Rand) ecs.EntityID {
	id := em.CreateEntity()

	speed := v.Speed
	if v.SpeedJitter > 0 {
		speed += r.Float64() * v.SpeedJitter
	}

	ec := &components.EnemyComponent{
		Variant:   v.Kind(),
		BaseSpeed: speed,
		SpawnX:    x,
		Score:     v.Score,
		Coins:     v.Coins,
		Color:     utils.MustColor(v.Color),
	}
	if v.Kind() == types.EnemyScout {
		ec.StrafeDir = 1
		if r.IntN(2) == 0 {
			ec.StrafeDir = -1
		}
	}
	if v.ShootFrames > 0 {
		ec.ShootTimer = v.ShootFrames
	}

	hp := EnemyHP(enemies, v, wave)

	em.AddComponent(id, &components.PositionComponent{X: x, Y: -enemies.Height})
	em.AddComponent(id, &components.CollisionComponent{Width: enemies.Width, Height: enemies.Height})
	em.AddComponent(id, &components.HealthComponent{Current: hp, Max: hp})
	em.AddComponent(id, ec)

	return id
}
