package components

import "github.com/decker502/galaxy-defender/pkg/types"

// ProjectileComponent 子弹
// 玩家子弹只与敌人/Boss 碰撞，敌方子弹只与玩家碰撞
type ProjectileComponent struct {
	Owner  types.Owner
	Damage int
}
