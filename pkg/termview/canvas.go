// Package termview 在终端字符网格上绘制模拟状态
//
// 与 pkg/render 读取同一份实体数据和 sim.Snapshot，只是输出到 tcell。
package termview

import (
	"github.com/gdamore/tcell/v2"
)

// Canvas 字符画布
// tcell.Screen 满足该接口
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (int, int)
}

// DrawString 从 (x, y) 开始写一行文字，超出画布的部分丢弃
func DrawString(c Canvas, x, y int, s string, style tcell.Style) {
	w, h := c.Size()
	if y < 0 || y >= h {
		return
	}
	for _, r := range s {
		if x >= w {
			return
		}
		if x >= 0 {
			c.SetContent(x, y, r, nil, style)
		}
		x++
	}
}

// DrawCentered 以画布中线居中写一行
func DrawCentered(c Canvas, y int, s string, style tcell.Style) {
	w, _ := c.Size()
	DrawString(c, (w-len([]rune(s)))/2, y, s, style)
}

// Fill 用同一字符填充整个画布
func Fill(c Canvas, r rune, style tcell.Style) {
	w, h := c.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c.SetContent(x, y, r, nil, style)
		}
	}
}
