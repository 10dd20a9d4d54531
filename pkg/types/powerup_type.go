package types

import (
	"fmt"
	"strings"
)

// PowerUpType 道具类型
type PowerUpType int

const (
	PowerUpRapidFire  PowerUpType = iota // 限时射速提升
	PowerUpShield                        // 限时护盾，可抵挡一次伤害
	PowerUpTripleShot                    // 限时三连发
	PowerUpHeal                          // 立即回复生命
)

var powerUpNames = [...]string{
	PowerUpRapidFire:  "RAPID_FIRE",
	PowerUpShield:     "SHIELD",
	PowerUpTripleShot: "TRIPLE_SHOT",
	PowerUpHeal:       "HEAL",
}

func (t PowerUpType) String() string {
	if t < 0 || int(t) >= len(powerUpNames) {
		return fmt.Sprintf("PowerUpType(%d)", int(t))
	}
	return powerUpNames[t]
}

// ParsePowerUpType 解析配置中的道具名
func ParsePowerUpType(s string) (PowerUpType, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for i, n := range powerUpNames {
		if n == name {
			return PowerUpType(i), nil
		}
	}
	return PowerUpRapidFire, fmt.Errorf("unknown power-up type %q", s)
}
