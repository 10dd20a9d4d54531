package render

import (
	"github.com/decker502/galaxy-defender/pkg/input"
	"github.com/decker502/galaxy-defender/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

// warningBlinkPeriod 警告横幅闪烁周期（帧）
const warningBlinkPeriod = 30

// DrawShade 半透明遮罩
func DrawShade(screen *ebiten.Image, w, h float64) {
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), OverlayShade, false)
}

// DrawWarning Boss 来袭横幅，progress 为 [0,1]
// 横幅从左侧滑入，文字闪烁
func DrawWarning(screen *ebiten.Image, progress float64, frame int, w, h float64) {
	bandH := 60.0
	bandW := w * utils.EaseOutCubic(progress*3)
	y := h/2 - bandH/2
	vector.DrawFilledRect(screen, 0, float32(y), float32(bandW), float32(bandH), utils.WithAlpha(WarningColor, 0.35), false)

	alpha := 0.4 + 0.6*utils.Pulse(frame, warningBlinkPeriod)
	DrawTextScaled(screen, "WARNING", w/2, y+8, 2, utils.WithAlpha(colornames.White, alpha))
	DrawText(screen, "BOSS APPROACHING", w/2, y+38, utils.WithAlpha(colornames.White, alpha), AlignCenter)
}

// DrawPaused 暂停提示
func DrawPaused(screen *ebiten.Image, w, h float64) {
	DrawShade(screen, w, h)
	DrawTextScaled(screen, "PAUSED", w/2, h/2-30, 3, HUDText)
	DrawText(screen, "P / ESC to resume", w/2, h/2+20, HUDDim, AlignCenter)
}

// DrawTouchPad 绘制触屏按键
func DrawTouchPad(screen *ebiten.Image, pad input.TouchPad) {
	drawPadButton(screen, pad.Left, "<")
	drawPadButton(screen, pad.Right, ">")
	drawPadButton(screen, pad.Fire, "FIRE")
}

func drawPadButton(screen *ebiten.Image, r input.Rect, label string) {
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), TouchPadColor, false)
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 2, utils.WithAlpha(colornames.White, 0.5), false)
	cx, cy := r.Center()
	DrawText(screen, label, cx, cy-7, HUDText, AlignCenter)
}

// DrawButton 菜单按钮
func DrawButton(screen *ebiten.Image, r utils.Rect, label string, hover, enabled bool) {
	fill := ButtonFill
	switch {
	case !enabled:
		fill = ButtonOff
	case hover:
		fill = ButtonHover
	}
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), fill, false)
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1.5, ButtonOutline, false)
	clr := HUDText
	if !enabled {
		clr = HUDDim
	}
	cx, cy := r.Center()
	DrawText(screen, label, cx, cy-7, clr, AlignCenter)
}
