package entities

import (
	"math"
	"math/rand/v2"

	"github.com/decker502/galaxy-defender/pkg/components"
	"github.com/decker502/galaxy-defender/pkg/config"
	"github.com/decker502/galaxy-defender/pkg/ecs"
)

// NewStarfield 在整个画面内随机铺满星星
//
// 星星均匀分配到 1..Layers 层；第 n 层速度 = BaseSpeed*n，亮度 = BaseBrightness*n（上限 1）
func NewStarfield(em *ecs.EntityManager, cfg config.StarfieldConfig, w, h float64, r *rand.Rand) []ecs.EntityID {
	ids := make([]ecs.EntityID, 0, cfg.Count)
	for i := 0; i < cfg.Count; i++ {
		layer := i%cfg.Layers + 1
		id := em.CreateEntity()
		em.AddComponent(id, &components.PositionComponent{
			X: r.Float64() * w,
			Y: r.Float64() * h,
		})
		em.AddComponent(id, &components.StarComponent{
			Layer:      layer,
			Speed:      cfg.BaseSpeed * float64(layer),
			Brightness: math.Min(1, cfg.BaseBrightness*float64(layer)),
			Size:       float64(layer),
		})
		ids = append(ids, id)
	}
	return ids
}
