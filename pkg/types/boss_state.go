package types

import "fmt"

// BossState Boss 状态机的状态
//
// 正常循环：ENTRY → SPIRAL → HOMING → CHARGE → ENTRY
// DYING 为终止状态，只会导致 Boss 被移除
type BossState int

const (
	BossEntry  BossState = iota // 从屏幕上方进场
	BossSpiral                  // 横向正弦摆动 + 环形弹幕
	BossHoming                  // 纵向摆动 + 瞄准玩家射击
	BossCharge                  // 蓄力后向下冲锋
	BossDying                   // 死亡演出
)

var bossStateNames = [...]string{
	BossEntry:  "ENTRY",
	BossSpiral: "SPIRAL",
	BossHoming: "HOMING",
	BossCharge: "CHARGE",
	BossDying:  "DYING",
}

func (s BossState) String() string {
	if s < 0 || int(s) >= len(bossStateNames) {
		return fmt.Sprintf("BossState(%d)", int(s))
	}
	return bossStateNames[s]
}
