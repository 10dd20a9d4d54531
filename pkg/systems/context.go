package systems

import (
	"math/rand/v2"

	"github.com/decker502/galaxy-defender/pkg/components"
	"github.com/decker502/galaxy-defender/pkg/config"
	"github.com/decker502/galaxy-defender/pkg/ecs"
	"github.com/decker502/galaxy-defender/pkg/entities"
	"github.com/decker502/galaxy-defender/pkg/event"
	"github.com/decker502/galaxy-defender/pkg/game"
	"github.com/decker502/galaxy-defender/pkg/utils"
)

// Playfield 可玩区域尺寸（像素），窗口缩放时原地更新
type Playfield struct {
	Width  float64
	Height float64
}

// Context 各系统共享的模拟上下文
//
// 由 sim.Simulation 持有并传给每个系统；系统之间不互相引用，
// 只通过实体组件、GameState 和事件总线交换数据。
type Context struct {
	EM      *ecs.EntityManager
	State   *game.GameState
	Profile *config.Profile
	Field   *Playfield
	Rand    *rand.Rand
	Bus     *event.Dispatcher
}

// playerEntity 返回玩家实体及其组件
func (c *Context) playerEntity() (ecs.EntityID, *components.PlayerComponent, bool) {
	ids := ecs.GetEntitiesWith1[*components.PlayerComponent](c.EM)
	if len(ids) == 0 {
		return 0, nil, false
	}
	pc, ok := ecs.GetComponent[*components.PlayerComponent](c.EM, ids[0])
	return ids[0], pc, ok
}

// bossEntity 返回存活的 Boss 实体
func (c *Context) bossEntity() (ecs.EntityID, *components.BossComponent, bool) {
	ids := ecs.GetEntitiesWith1[*components.BossComponent](c.EM)
	if len(ids) == 0 {
		return 0, nil, false
	}
	bc, ok := ecs.GetComponent[*components.BossComponent](c.EM, ids[0])
	return ids[0], bc, ok
}

// BossAlive 场上是否有 Boss（包括 DYING 状态）
func (c *Context) BossAlive() bool {
	_, _, ok := c.bossEntity()
	return ok
}

// rollDrop 按 DropChance 掉落随机道具，返回是否掉落
func (c *Context) rollDrop(cx, cy float64) bool {
	cfg := c.Profile.PowerUps
	kinds := cfg.Kinds()
	if len(kinds) == 0 || c.Rand.Float64() >= cfg.DropChance {
		return false
	}
	kind := kinds[c.Rand.IntN(len(kinds))]
	entities.NewPowerUp(c.EM, cfg, kind, cx, cy)
	return true
}

// rectOf 读取实体的碰撞矩形
func rectOf(em *ecs.EntityManager, id ecs.EntityID) (utils.Rect, bool) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		return utils.Rect{}, false
	}
	col, ok := ecs.GetComponent[*components.CollisionComponent](em, id)
	if !ok {
		return utils.Rect{}, false
	}
	return utils.Rect{X: pos.X, Y: pos.Y, W: col.Width, H: col.Height}, true
}
