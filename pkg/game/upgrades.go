package game

import (
	"fmt"

	"github.com/decker502/galaxy-defender/pkg/config"
)

// UpgradeKind 商店可购买的升级项
type UpgradeKind int

const (
	UpgradeDamage    UpgradeKind = iota // 子弹伤害
	UpgradeFireRate                     // 射击冷却
	UpgradeSpeed                        // 移动加速度
	UpgradeMaxHealth                    // 生命上限
)

// AllUpgrades 商店中的展示顺序
var AllUpgrades = []UpgradeKind{UpgradeDamage, UpgradeFireRate, UpgradeSpeed, UpgradeMaxHealth}

var upgradeNames = [...]string{
	UpgradeDamage:    "DAMAGE",
	UpgradeFireRate:  "FIRE_RATE",
	UpgradeSpeed:     "SPEED",
	UpgradeMaxHealth: "MAX_HEALTH",
}

func (k UpgradeKind) String() string {
	if k < 0 || int(k) >= len(upgradeNames) {
		return fmt.Sprintf("UpgradeKind(%d)", int(k))
	}
	return upgradeNames[k]
}

// Label 商店按钮文字
func (k UpgradeKind) Label() string {
	switch k {
	case UpgradeDamage:
		return "Damage"
	case UpgradeFireRate:
		return "Fire Rate"
	case UpgradeSpeed:
		return "Speed"
	case UpgradeMaxHealth:
		return "Max Health"
	}
	return k.String()
}

// Upgrades 本局已购买的升级等级
// 只在本局内有效，不持久化
type Upgrades struct {
	Damage    int
	FireRate  int
	Speed     int
	MaxHealth int
}

// Level 返回指定升级的当前等级
func (u *Upgrades) Level(kind UpgradeKind) int {
	switch kind {
	case UpgradeDamage:
		return u.Damage
	case UpgradeFireRate:
		return u.FireRate
	case UpgradeSpeed:
		return u.Speed
	case UpgradeMaxHealth:
		return u.MaxHealth
	}
	return 0
}

func (u *Upgrades) increment(kind UpgradeKind) int {
	switch kind {
	case UpgradeDamage:
		u.Damage++
		return u.Damage
	case UpgradeFireRate:
		u.FireRate++
		return u.FireRate
	case UpgradeSpeed:
		u.Speed++
		return u.Speed
	case UpgradeMaxHealth:
		u.MaxHealth++
		return u.MaxHealth
	}
	return 0
}

// baseCost 返回升级的基础价格
func baseCost(kind UpgradeKind, econ config.EconomyConfig) int {
	switch kind {
	case UpgradeDamage:
		return econ.DamageCost
	case UpgradeFireRate:
		return econ.FireRateCost
	case UpgradeSpeed:
		return econ.SpeedCost
	case UpgradeMaxHealth:
		return econ.MaxHealthCost
	}
	return 0
}

// UpgradeCost 下一级的价格：基础价格 * (当前等级 + 1)
func (u *Upgrades) UpgradeCost(kind UpgradeKind, econ config.EconomyConfig) int {
	return baseCost(kind, econ) * (u.Level(kind) + 1)
}
