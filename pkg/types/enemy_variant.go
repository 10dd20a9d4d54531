// Package types 定义共享的基础类型
package types

import (
	"fmt"
	"strings"
)

// EnemyVariant 敌人变体标签
// 每个变体对应一个固定的运动公式（见 systems.EnemyMotion）和可选的射击行为
type EnemyVariant int

const (
	EnemyBasic  EnemyVariant = iota // 匀速下落
	EnemySine                       // 围绕出生点正弦摆动
	EnemyDiver                      // 到达高度阈值后俯冲
	EnemyZigzag                     // 小幅高频抖动
	EnemyScout                      // 方波横移，会射击
)

var enemyVariantNames = [...]string{
	EnemyBasic:  "BASIC",
	EnemySine:   "SINE",
	EnemyDiver:  "DIVER",
	EnemyZigzag: "ZIGZAG",
	EnemyScout:  "SCOUT",
}

// String 返回变体的配置名
func (v EnemyVariant) String() string {
	if v < 0 || int(v) >= len(enemyVariantNames) {
		return fmt.Sprintf("EnemyVariant(%d)", int(v))
	}
	return enemyVariantNames[v]
}

// ParseEnemyVariant 将配置中的字符串（不区分大小写）解析为变体标签
func ParseEnemyVariant(s string) (EnemyVariant, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for i, n := range enemyVariantNames {
		if n == name {
			return EnemyVariant(i), nil
		}
	}
	return EnemyBasic, fmt.Errorf("unknown enemy variant %q", s)
}
