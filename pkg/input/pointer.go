package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerState 当前帧的点击/触摸状态
// 同时支持鼠标和触摸输入，优先检测触摸
type PointerState struct {
	// 本帧刚发生点击或触摸
	JustPressed bool
	X, Y        int
	// 是否有活动的触摸
	IsTouching bool
}

// ReadPointer 读取当前帧的指针状态
func ReadPointer() PointerState {
	state := PointerState{}

	if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
		state.JustPressed = true
		state.X, state.Y = ebiten.TouchPosition(ids[0])
		state.IsTouching = true
		return state
	}

	if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		state.X, state.Y = ebiten.TouchPosition(ids[0])
		state.IsTouching = true
		return state
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		state.JustPressed = true
	}
	// 鼠标位置用于悬停检测
	state.X, state.Y = ebiten.CursorPosition()
	return state
}

// HeldPoints 所有按住的触摸点，以及按住的鼠标左键
func HeldPoints(buf []Point) []Point {
	buf = buf[:0]
	for _, id := range ebiten.AppendTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		buf = append(buf, Point{X: float64(x), Y: float64(y)})
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		buf = append(buf, Point{X: float64(x), Y: float64(y)})
	}
	return buf
}
