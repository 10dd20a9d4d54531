package types

import "fmt"

// Phase 游戏阶段
// 模拟步进只在 PhasePlaying 下推进实体；其它阶段由场景负责绘制覆盖层
type Phase int

const (
	PhaseStart    Phase = iota // 主菜单
	PhasePlaying               // 正常游戏
	PhaseBoss                  // Boss 来袭警告（过场）
	PhaseShop                  // 波次之间的升级商店
	PhaseGameOver              // 游戏结束
)

var phaseNames = [...]string{
	PhaseStart:    "START",
	PhasePlaying:  "PLAYING",
	PhaseBoss:     "BOSS",
	PhaseShop:     "SHOP",
	PhaseGameOver: "GAMEOVER",
}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return fmt.Sprintf("Phase(%d)", int(p))
	}
	return phaseNames[p]
}

// Owner 子弹归属
type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

// Input 当前帧的输入状态
//
// Left/Right/Fire 为按住状态（键盘或触屏按钮）；Pause 为本帧刚按下
type Input struct {
	Left  bool
	Right bool
	Fire  bool
	Pause bool
}
