package termview

import (
	"image/color"

	"github.com/decker502/galaxy-defender/pkg/types"
	"github.com/gdamore/tcell/v2"
)

var (
	styleBackground = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	stylePlayer     = styleBackground.Foreground(tcell.NewRGBColor(0, 191, 255)).Bold(true)
	styleShield     = styleBackground.Foreground(tcell.NewRGBColor(64, 192, 255))
	stylePlayerShot = styleBackground.Foreground(tcell.ColorYellow)
	styleEnemyShot  = styleBackground.Foreground(tcell.NewRGBColor(255, 69, 0))
	styleHUD        = styleBackground.Foreground(tcell.ColorWhite)
	styleHUDDim     = styleBackground.Foreground(tcell.NewRGBColor(160, 160, 160))
	styleWarning    = styleBackground.Foreground(tcell.ColorRed).Bold(true)
	styleTitle      = styleBackground.Foreground(tcell.NewRGBColor(0, 191, 255)).Bold(true)
	styleGold       = styleBackground.Foreground(tcell.NewRGBColor(255, 215, 0)).Bold(true)
)

// rgbStyle 把组件上的颜色转换为前景色
func rgbStyle(c color.RGBA) tcell.Style {
	return styleBackground.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

// 敌人外形
var enemyGlyphs = map[types.EnemyVariant]rune{
	types.EnemyBasic:  'W',
	types.EnemySine:   'o',
	types.EnemyDiver:  'V',
	types.EnemyZigzag: 'Z',
	types.EnemyScout:  'X',
}

// EnemyGlyph 敌人字符
func EnemyGlyph(v types.EnemyVariant) rune {
	if g, ok := enemyGlyphs[v]; ok {
		return g
	}
	return '?'
}

// PowerUpGlyph 道具字符
func PowerUpGlyph(t types.PowerUpType) rune {
	switch t {
	case types.PowerUpRapidFire:
		return 'R'
	case types.PowerUpShield:
		return 'S'
	case types.PowerUpTripleShot:
		return 'T'
	case types.PowerUpHeal:
		return '+'
	}
	return '?'
}

// StarGlyph 越亮的星星字符越大
func StarGlyph(brightness float64) rune {
	switch {
	case brightness > 0.8:
		return '*'
	case brightness > 0.5:
		return '+'
	}
	return '.'
}

// ParticleGlyph 粒子随生命值衰减
func ParticleGlyph(life float64) rune {
	switch {
	case life > 0.66:
		return '#'
	case life > 0.33:
		return '*'
	}
	return '.'
}
