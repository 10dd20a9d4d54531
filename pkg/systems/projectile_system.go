package systems

import (
	"github.com/decker502/galaxy-defender/pkg/components"
	"github.com/decker502/galaxy-defender/pkg/ecs"
	"github.com/decker502/galaxy-defender/pkg/types"
)

// ProjectileSystem 移动子弹并回收飞出画面的子弹
type ProjectileSystem struct {
	ctx *Context
}

// NewProjectileSystem 创建子弹系统
func NewProjectileSystem(ctx *Context) *ProjectileSystem {
	return &ProjectileSystem{ctx: ctx}
}

// Update 积分位置，超出画面 DespawnMargin 的子弹标记删除
func (s *ProjectileSystem) Update() {
	em := s.ctx.EM
	margin := s.ctx.Profile.Bullets.DespawnMargin
	field := s.ctx.Field

	ids := ecs.GetEntitiesWith3[*components.ProjectileComponent, *components.PositionComponent, *components.VelocityComponent](em)
	for _, id := range ids {
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](em, id)

		pos.X += vel.VX
		pos.Y += vel.VY

		if OutOfField(proj.Owner, pos.X, pos.Y, field, margin) {
			em.DestroyEntity(id)
		}
	}
}

// OutOfField 子弹是否已飞出可玩区域
//
// 玩家子弹向上飞，只在顶边或两侧越界时回收；
// 敌方子弹可能朝任意方向（环形弹幕），四边都检查
func OutOfField(owner types.Owner, x, y float64, field *Playfield, margin float64) bool {
	if x < -margin || x > field.Width+margin {
		return true
	}
	if y < -margin {
		return true
	}
	return owner == types.OwnerEnemy && y > field.Height+margin
}
