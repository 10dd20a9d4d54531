package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// Face HUD 使用的位图字体
var Face = text.NewGoXFace(basicfont.Face7x13)

// LineHeight 单行文字高度
const LineHeight = 16

// Align 水平对齐方式
type Align = text.Align

const (
	AlignStart  = text.AlignStart
	AlignCenter = text.AlignCenter
	AlignEnd    = text.AlignEnd
)

// DrawText 在 (x, y) 绘制一行文字，y 为文字顶部
func DrawText(dst *ebiten.Image, s string, x, y float64, clr color.Color, align Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = align
	text.Draw(dst, s, Face, op)
}

// DrawTextScaled 放大绘制（标题用）
func DrawTextScaled(dst *ebiten.Image, s string, x, y, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	// 缩放在平移之前，居中对齐相对缩放后的原点
	text.Draw(dst, s, Face, op)
}

// TextWidth 文字宽度（像素）
func TextWidth(s string) float64 {
	w, _ := text.Measure(s, Face, LineHeight)
	return w
}
