package systems

import (
	"math"

	"github.com/decker502/galaxy-defender/pkg/config"
	"github.com/decker502/galaxy-defender/pkg/types"
)

// MotionInput 运动公式的输入
type MotionInput struct {
	Age       int     // 出生后的帧数
	X, Y      float64 // 当前左上角
	SpawnX    float64
	Speed     float64 // 下落速度
	StrafeDir float64 // SCOUT 初始横移方向
}

// EnemyMotion 返回敌人本帧的位移 (dx, dy)
//
// 每个变体对应一个只依赖 age 和参数的封闭公式：
//   - BASIC:  dy = speed
//   - SINE:   x = spawnX + sin(age*freq)*amp
//   - DIVER:  y >= diveY 后 dy = speed*diveMultiplier
//   - ZIGZAG: dx = sin(age*freq)*amp
//   - SCOUT:  dx = strafeSpeed*dir，dir 每 strafeFrames 帧翻转
func EnemyMotion(v types.EnemyVariant, in MotionInput, cfg *config.EnemyVariantConfig) (dx, dy float64) {
	dy = in.Speed
	switch v {
	case types.EnemySine:
		target := in.SpawnX + math.Sin(float64(in.Age)*cfg.Frequency)*cfg.Amplitude
		dx = target - in.X
	case types.EnemyDiver:
		if in.Y >= cfg.DiveY {
			dy = in.Speed * cfg.DiveMultiplier
		}
	case types.EnemyZigzag:
		dx = math.Sin(float64(in.Age)*cfg.Frequency) * cfg.Amplitude
	case types.EnemyScout:
		dir := in.StrafeDir
		if cfg.StrafeFrames > 0 && (in.Age/cfg.StrafeFrames)%2 == 1 {
			dir = -dir
		}
		dx = cfg.StrafeSpeed * dir
	}
	return dx, dy
}
