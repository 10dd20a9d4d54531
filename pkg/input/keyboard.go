package input

import (
	"github.com/decker502/galaxy-defender/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// 按键绑定
var (
	leftKeys    = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
	rightKeys   = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}
	fireKeys    = []ebiten.Key{ebiten.KeySpace, ebiten.KeyZ}
	pauseKeys   = []ebiten.Key{ebiten.KeyP, ebiten.KeyEscape}
	confirmKeys = []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter, ebiten.KeySpace}
)

// Reader 每帧读取一次设备输入
type Reader struct {
	pad    TouchPad
	points []Point
	// 触屏设备上才绘制虚拟按键
	touchSeen bool
}

// NewReader 创建输入读取器
func NewReader(width, height float64) *Reader {
	return &Reader{pad: NewTouchPad(width, height)}
}

// Resize 窗口尺寸变化后重新布局触屏按键
func (r *Reader) Resize(width, height float64) {
	r.pad = NewTouchPad(width, height)
}

// Pad 当前触屏布局
func (r *Reader) Pad() TouchPad { return r.pad }

// TouchSeen 是否检测到过触摸输入
func (r *Reader) TouchSeen() bool { return r.touchSeen }

// Read 合并键盘与触屏的本帧输入
func (r *Reader) Read() types.Input {
	in := types.Input{
		Left:  anyPressed(leftKeys),
		Right: anyPressed(rightKeys),
		Fire:  anyPressed(fireKeys),
		Pause: anyJustPressed(pauseKeys),
	}

	r.points = HeldPoints(r.points)
	if len(ebiten.AppendTouchIDs(nil)) > 0 {
		r.touchSeen = true
	}
	return r.pad.Apply(in, r.points)
}

// ConfirmPressed 菜单确认键是否刚按下
func ConfirmPressed() bool {
	return anyJustPressed(confirmKeys)
}

// AnyGesture 本帧是否有任意按键、点击或触摸
// 用于在第一次用户操作时初始化音频
func AnyGesture() bool {
	if len(inpututil.AppendJustPressedKeys(nil)) > 0 {
		return true
	}
	if len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 {
		return true
	}
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

var digitKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
	ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// DigitPressed 返回本帧刚按下的数字键（1~9），没有时返回 0
func DigitPressed() int {
	for i, k := range digitKeys {
		if inpututil.IsKeyJustPressed(k) {
			return i + 1
		}
	}
	return 0
}

// MutePressed 静音键 M 是否刚按下
func MutePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyM)
}
