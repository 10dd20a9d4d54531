package systems

import (
	"math"

	"github.com/decker502/galaxy-defender/pkg/config"
	"github.com/decker502/galaxy-defender/pkg/game"
)

// FireCooldownMs 当前射击冷却（毫秒）
// cooldown = (速射 ? rapid : base) - fireRateLevel*perLevel，不低于 min
func FireCooldownMs(cfg config.PlayerConfig, rapid bool, fireRateLevel int) float64 {
	cd := cfg.FireCooldownMs
	if rapid {
		cd = cfg.RapidCooldownMs
	}
	cd -= float64(fireRateLevel) * cfg.CooldownPerLevelMs
	return math.Max(cd, cfg.MinCooldownMs)
}

// PlayerAccel 含速度升级的每帧加速度
func PlayerAccel(cfg config.PlayerConfig, speedLevel int) float64 {
	return cfg.Accel + float64(speedLevel)*cfg.AccelPerLevel
}

// BulletDamage 含伤害升级的单发伤害
func BulletDamage(cfg config.BulletConfig, damageLevel int) int {
	return cfg.PlayerDamage + damageLevel*cfg.DamagePerLevel
}

// MaxHealth 含生命升级的生命上限
func MaxHealth(cfg config.PlayerConfig, up game.Upgrades) int {
	return cfg.MaxHealth + up.MaxHealth*cfg.HealthPerLevel
}
