package components

import (
	"image/color"

	"github.com/decker502/galaxy-defender/pkg/types"
)

// EnemyComponent 普通敌人
//
// 运动由 Variant 决定，运动公式只读取这里的字段和 PositionComponent
type EnemyComponent struct {
	Variant   types.EnemyVariant
	BaseSpeed float64 // 下落速度（已含随机抖动）
	SpawnX    float64 // 出生时的 x，SINE 以此为摆动中心
	Age       int     // 出生后经过的帧数

	// SCOUT
	StrafeDir  float64 // 横移方向 +1 / -1
	ShootTimer int     // 距下次射击的帧数

	// DIVER
	Diving bool

	Score int
	Coins int
	Color color.RGBA
}
