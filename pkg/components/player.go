package components

// PlayerComponent 玩家飞船的状态
//
// 各计时器以帧为单位，每帧递减到 0。
type PlayerComponent struct {
	Invulnerable int // 受伤后的无敌帧数
	Shield       int // 护盾剩余帧数，>0 时抵挡一次伤害
	RapidFire    int // 速射剩余帧数
	TripleShot   int // 三连发剩余帧数

	// LastShotMs 上次开火时的游戏时间（毫秒）
	// 初始为一个很小的值，使第一帧就能开火
	LastShotMs float64
}

// NeverFired LastShotMs 的初始值
const NeverFired = -1e9

// HasShield 护盾是否生效
func (p *PlayerComponent) HasShield() bool {
	return p.Shield > 0
}
