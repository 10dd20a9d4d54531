package systems

import (
	"github.com/decker502/galaxy-defender/pkg/components"
	"github.com/decker502/galaxy-defender/pkg/ecs"
	"github.com/decker502/galaxy-defender/pkg/entities"
)

// StarfieldSystem 视差星空
// 星星只向下滚动，落出底边后回到顶部并随机换一个 x
type StarfieldSystem struct {
	ctx *Context
}

// NewStarfieldSystem 创建星空系统
func NewStarfieldSystem(ctx *Context) *StarfieldSystem {
	return &StarfieldSystem{ctx: ctx}
}

// Update 滚动所有星星
func (s *StarfieldSystem) Update() {
	em := s.ctx.EM
	field := s.ctx.Field
	for _, id := range ecs.GetEntitiesWith2[*components.StarComponent, *components.PositionComponent](em) {
		star, _ := ecs.GetComponent[*components.StarComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		pos.Y += star.Speed
		if pos.Y > field.Height {
			pos.Y = -star.Size
			pos.X = s.ctx.Rand.Float64() * field.Width
		}
	}
}

// Rebuild 按当前画面尺寸重新铺满星星（窗口缩放后调用）
func (s *StarfieldSystem) Rebuild() {
	em := s.ctx.EM
	for _, id := range ecs.GetEntitiesWith1[*components.StarComponent](em) {
		em.DestroyEntity(id)
	}
	entities.NewStarfield(em, s.ctx.Profile.Starfield, s.ctx.Field.Width, s.ctx.Field.Height, s.ctx.Rand)
}
