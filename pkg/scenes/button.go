package scenes

import (
	"github.com/decker502/galaxy-defender/pkg/render"
	"github.com/decker502/galaxy-defender/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// Button 矩形文字按钮
type Button struct {
	Rect    utils.Rect
	Label   string
	Enabled bool
	hover   bool
}

// NewButton 创建可用的按钮
func NewButton(label string) *Button {
	return &Button{Label: label, Enabled: true}
}

// SetHover 根据指针位置更新悬停状态
func (b *Button) SetHover(x, y float64) {
	b.hover = b.Rect.Contains(x, y)
}

// Clicked 在 (x, y) 的点击是否命中可用按钮
func (b *Button) Clicked(x, y float64) bool {
	return b.Enabled && b.Rect.Contains(x, y)
}

// Draw 绘制按钮
func (b *Button) Draw(screen *ebiten.Image) {
	render.DrawButton(screen, b.Rect, b.Label, b.hover, b.Enabled)
}

// ColumnLayout 以 cx 为中线、从 top 开始竖直排列 n 个按钮
func ColumnLayout(cx, top, w, h, gap float64, n int) []utils.Rect {
	rects := make([]utils.Rect, n)
	for i := range rects {
		rects[i] = utils.Rect{X: cx - w/2, Y: top + float64(i)*(h+gap), W: w, H: h}
	}
	return rects
}

// layoutColumn 将按钮排成一列
func layoutColumn(buttons []*Button, cx, top, w, h, gap float64) {
	for i, r := range ColumnLayout(cx, top, w, h, gap, len(buttons)) {
		buttons[i].Rect = r
	}
}
