// Package render 用 ebiten 矢量图形绘制模拟状态
//
// 渲染只读取实体组件和 sim.Snapshot，从不修改模拟状态。
package render

import (
	"image/color"

	"github.com/decker502/galaxy-defender/pkg/types"
	"golang.org/x/image/colornames"
)

// 调色板
var (
	Background    = color.RGBA{R: 0x05, G: 0x06, B: 0x14, A: 0xff}
	PlayerColor   = colornames.Deepskyblue
	CockpitColor  = colornames.White
	ShieldColor   = color.RGBA{R: 0x40, G: 0xc0, B: 0xff, A: 0x80}
	PlayerBullet  = colornames.Yellow
	EnemyBullet   = colornames.Orangered
	HUDText       = colornames.White
	HUDDim        = colornames.Lightgray
	HealthGood    = colornames.Limegreen
	HealthLow     = colornames.Red
	BarBack       = color.RGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xff}
	WarningColor  = colornames.Red
	OverlayShade  = color.RGBA{A: 0xa0}
	ButtonFill    = color.RGBA{R: 0x28, G: 0x2c, B: 0x5a, A: 0xe0}
	ButtonHover   = color.RGBA{R: 0x3c, G: 0x44, B: 0x8c, A: 0xf0}
	ButtonOutline = colornames.Lightsteelblue
	ButtonOff     = color.RGBA{R: 0x40, G: 0x40, B: 0x40, A: 0xe0}
	TouchPadColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x30}
)

// PowerUpColor 道具颜色
func PowerUpColor(t types.PowerUpType) color.RGBA {
	switch t {
	case types.PowerUpRapidFire:
		return colornames.Orange
	case types.PowerUpShield:
		return colornames.Deepskyblue
	case types.PowerUpTripleShot:
		return colornames.Violet
	case types.PowerUpHeal:
		return colornames.Limegreen
	}
	return colornames.White
}

// PowerUpLabel 道具上显示的单字母
func PowerUpLabel(t types.PowerUpType) string {
	switch t {
	case types.PowerUpRapidFire:
		return "R"
	case types.PowerUpShield:
		return "S"
	case types.PowerUpTripleShot:
		return "T"
	case types.PowerUpHeal:
		return "+"
	}
	return "?"
}

// HealthColor 血量比例低于 0.3 时变红
func HealthColor(fraction float64) color.RGBA {
	if fraction < 0.3 {
		return HealthLow
	}
	return HealthGood
}
