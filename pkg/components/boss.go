package components

import (
	"image/color"

	"github.com/decker502/galaxy-defender/pkg/types"
)

// BossComponent Boss 状态机数据
type BossComponent struct {
	State      types.BossState
	StateTimer int // 当前状态已持续的帧数

	// SPIRAL
	Angle     float64 // 水平摆动相位
	SpinAngle float64 // 环形弹幕的起始角，每次齐射旋转

	// HOMING
	BaseY float64 // HOMING 纵向摆动的中心

	// CHARGE
	ChargeSpeed float64

	ShotTimer  int // 距下次射击的帧数
	DeathTimer int // DYING 已持续帧数

	Wave  int // 出场波次
	Color color.RGBA
}
