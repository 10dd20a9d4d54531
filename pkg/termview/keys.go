package termview

import (
	"time"

	"github.com/decker502/galaxy-defender/pkg/types"
	"github.com/gdamore/tcell/v2"
)

// Action 终端按键对应的操作
type Action int

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionFire
	ActionPause
	ActionConfirm
	ActionMute
	ActionQuit
	ActionBuy1
	ActionBuy2
	ActionBuy3
	ActionBuy4
)

// ActionFor 把 tcell 按键映射为操作
func ActionFor(key tcell.Key, r rune) Action {
	switch key {
	case tcell.KeyLeft:
		return ActionLeft
	case tcell.KeyRight:
		return ActionRight
	case tcell.KeyEscape:
		return ActionPause
	case tcell.KeyEnter:
		return ActionConfirm
	case tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyRune:
	default:
		return ActionNone
	}

	switch r {
	case 'a', 'A', 'h':
		return ActionLeft
	case 'd', 'D', 'l':
		return ActionRight
	case ' ', 'z', 'Z':
		return ActionFire
	case 'p', 'P':
		return ActionPause
	case 'm', 'M':
		return ActionMute
	case 'q', 'Q':
		return ActionQuit
	case '1':
		return ActionBuy1
	case '2':
		return ActionBuy2
	case '3':
		return ActionBuy3
	case '4':
		return ActionBuy4
	}
	return ActionNone
}

// 终端只发送按下和自动重复事件，没有松开事件。
// 第一次按下后保持 InitialHold（覆盖系统的重复延迟），之后每次重复延长 RepeatHold。
const (
	InitialHold = 550 * time.Millisecond
	RepeatHold  = 120 * time.Millisecond
)

type holdState struct {
	until time.Time
	last  time.Time
}

// KeyHold 用按键重复事件模拟按住状态
type KeyHold struct {
	keys map[Action]holdState
}

// NewKeyHold 创建按住状态跟踪
func NewKeyHold() *KeyHold {
	return &KeyHold{keys: make(map[Action]holdState)}
}

// Press 记录一次按下（或自动重复）
func (k *KeyHold) Press(a Action, now time.Time) {
	st, ok := k.keys[a]
	window := InitialHold
	if ok && now.Before(st.until) {
		window = RepeatHold
	}
	st.last = now
	if until := now.Add(window); until.After(st.until) {
		st.until = until
	}
	k.keys[a] = st
}

// Held 当前是否视为按住
func (k *KeyHold) Held(a Action, now time.Time) bool {
	st, ok := k.keys[a]
	return ok && now.Before(st.until)
}

// Release 立即松开（例如按下相反方向时）
func (k *KeyHold) Release(a Action) {
	delete(k.keys, a)
}

// Input 组合当前帧的移动和开火输入；pause 由调用方单独传入
func (k *KeyHold) Input(now time.Time, pause bool) types.Input {
	return types.Input{
		Left:  k.Held(ActionLeft, now),
		Right: k.Held(ActionRight, now),
		Fire:  k.Held(ActionFire, now),
		Pause: pause,
	}
}
