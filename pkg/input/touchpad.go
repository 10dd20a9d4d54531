// Package input 将键盘、鼠标和触屏输入转换为模拟输入
package input

import (
	"github.com/decker502/galaxy-defender/pkg/types"
	"github.com/decker502/galaxy-defender/pkg/utils"
)

// Button 触屏按钮
type Button int

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonRight
	ButtonFire
)

func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "LEFT"
	case ButtonRight:
		return "RIGHT"
	case ButtonFire:
		return "FIRE"
	default:
		return "NONE"
	}
}

// Rect 屏幕矩形（像素）
type Rect = utils.Rect

// TouchPad 屏幕底部的虚拟按键布局
//
// 左下角为左右移动键，右下角为开火键。布局随窗口尺寸重新计算。
type TouchPad struct {
	Left  Rect
	Right Rect
	Fire  Rect
}

const (
	padMargin = 16
	padGap    = 12
	// 按钮边长占屏幕短边的比例
	padScale   = 0.14
	padMinSide = 48
	padMaxSide = 110
)

// NewTouchPad 按屏幕尺寸计算按钮布局
func NewTouchPad(width, height float64) TouchPad {
	short := width
	if height < short {
		short = height
	}
	side := short * padScale
	if side < padMinSide {
		side = padMinSide
	}
	if side > padMaxSide {
		side = padMaxSide
	}

	y := height - padMargin - side
	return TouchPad{
		Left:  Rect{X: padMargin, Y: y, W: side, H: side},
		Right: Rect{X: padMargin + side + padGap, Y: y, W: side, H: side},
		Fire:  Rect{X: width - padMargin - side*1.3, Y: y - side*0.3, W: side * 1.3, H: side * 1.3},
	}
}

// HitTest 返回坐标所在的按钮
func (tp TouchPad) HitTest(x, y float64) Button {
	switch {
	case tp.Left.Contains(x, y):
		return ButtonLeft
	case tp.Right.Contains(x, y):
		return ButtonRight
	case tp.Fire.Contains(x, y):
		return ButtonFire
	}
	return ButtonNone
}

// Point 触摸点
type Point struct {
	X, Y float64
}

// Apply 将所有按住的触摸点合并到输入中
func (tp TouchPad) Apply(in types.Input, points []Point) types.Input {
	for _, p := range points {
		switch tp.HitTest(p.X, p.Y) {
		case ButtonLeft:
			in.Left = true
		case ButtonRight:
			in.Right = true
		case ButtonFire:
			in.Fire = true
		}
	}
	return in
}
