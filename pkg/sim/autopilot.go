package sim

import (
	"errors"
	"math"

	"github.com/decker502/galaxy-defender/pkg/components"
	"github.com/decker502/galaxy-defender/pkg/ecs"
	"github.com/decker502/galaxy-defender/pkg/game"
	"github.com/decker502/galaxy-defender/pkg/types"
)

// Autopilot 简单的自动驾驶输入，用于平衡性验证和演示模式
//
// 策略：始终开火；躲避正上方一定距离内的敌方子弹；
// 否则追踪最靠下的敌人（没有敌人时追踪 Boss）
type Autopilot struct {
	// DangerRange 纵向多少像素内的子弹需要躲避
	DangerRange float64
	// DeadZone 与目标水平距离小于该值时不移动
	DeadZone float64
}

// NewAutopilot 创建默认参数的自动驾驶
func NewAutopilot() *Autopilot {
	return &Autopilot{DangerRange: 160, DeadZone: 6}
}

// Decide 根据当前实体计算本帧输入
func (a *Autopilot) Decide(s *Simulation) types.Input {
	in := types.Input{Fire: true}
	em := s.EntityManager()

	pids := ecs.GetEntitiesWith1[*components.PlayerComponent](em)
	if len(pids) == 0 {
		return in
	}
	ppos, _ := ecs.GetComponent[*components.PositionComponent](em, pids[0])
	pcol, _ := ecs.GetComponent[*components.CollisionComponent](em, pids[0])
	if ppos == nil || pcol == nil {
		return in
	}
	px := ppos.X + pcol.Width/2

	if dir, ok := a.dodge(em, ppos, pcol); ok {
		in.Left, in.Right = dir < 0, dir > 0
		return in
	}

	target, ok := a.target(em)
	if !ok {
		target = s.ctx.Field.Width / 2
	}
	switch {
	case target < px-a.DeadZone:
		in.Left = true
	case target > px+a.DeadZone:
		in.Right = true
	}
	return in
}

// dodge 返回躲避方向 (-1 / +1)
func (a *Autopilot) dodge(em *ecs.EntityManager, ppos *components.PositionComponent, pcol *components.CollisionComponent) (float64, bool) {
	px := ppos.X + pcol.Width/2
	nearest := math.Inf(1)
	dir := 0.0
	for _, id := range ecs.GetEntitiesWith2[*components.ProjectileComponent, *components.PositionComponent](em) {
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](em, id)
		if proj.Owner != types.OwnerEnemy {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		dy := ppos.Y - pos.Y
		if dy < 0 || dy > a.DangerRange || math.Abs(pos.X-px) > pcol.Width {
			continue
		}
		if dy < nearest {
			nearest = dy
			dir = 1
			if pos.X > px {
				dir = -1
			}
		}
	}
	return dir, dir != 0
}

// target 最靠下的敌人中心 x，没有敌人时返回 Boss 中心 x
func (a *Autopilot) target(em *ecs.EntityManager) (float64, bool) {
	best := math.Inf(-1)
	x := 0.0
	found := false
	for _, id := range ecs.GetEntitiesWith2[*components.EnemyComponent, *components.PositionComponent](em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](em, id)
		if pos.Y < 0 || pos.Y <= best || col == nil {
			continue
		}
		best = pos.Y
		x = pos.X + col.Width/2
		found = true
	}
	if found {
		return x, true
	}
	for _, id := range ecs.GetEntitiesWith2[*components.BossComponent, *components.PositionComponent](em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](em, id)
		if col != nil {
			return pos.X + col.Width/2, true
		}
	}
	return 0, false
}

// AutoShop 在商店中按价格从低到高买光能买的升级，然后离开商店
// 返回购买次数
func AutoShop(s *Simulation) (int, error) {
	bought := 0
	for {
		kind, ok := cheapestAffordable(s)
		if !ok {
			break
		}
		if _, err := s.Purchase(kind); err != nil {
			if errors.Is(err, game.ErrInsufficientCoins) || errors.Is(err, game.ErrMaxLevel) {
				break
			}
			return bought, err
		}
		bought++
	}
	return bought, s.LeaveShop()
}

func cheapestAffordable(s *Simulation) (game.UpgradeKind, bool) {
	var best game.UpgradeKind
	bestCost := math.MaxInt
	for _, kind := range game.AllUpgrades {
		if !s.CanAfford(kind) {
			continue
		}
		if c := s.UpgradeCost(kind); c > 0 && c < bestCost {
			best, bestCost = kind, c
		}
	}
	return best, bestCost != math.MaxInt
}
