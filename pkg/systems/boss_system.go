package systems

import (
	"math"

	"github.com/decker502/galaxy-defender/pkg/components"
	"github.com/decker502/galaxy-defender/pkg/ecs"
	"github.com/decker502/galaxy-defender/pkg/entities"
	"github.com/decker502/galaxy-defender/pkg/event"
	"github.com/decker502/galaxy-defender/pkg/types"
	"github.com/decker502/galaxy-defender/pkg/utils"
)

// bossTransitions 正常攻击循环
// DYING 不在表中：它可以从任何非 ENTRY 状态进入，且没有后继
var bossTransitions = map[types.BossState]types.BossState{
	types.BossEntry:  types.BossSpiral,
	types.BossSpiral: types.BossHoming,
	types.BossHoming: types.BossCharge,
	types.BossCharge: types.BossEntry,
}

// NextBossState 返回循环中的下一个状态，DYING 没有后继
func NextBossState(s types.BossState) (types.BossState, bool) {
	next, ok := bossTransitions[s]
	return next, ok
}

// CanTransition 判断状态转换是否合法
func CanTransition(from, to types.BossState) bool {
	if to == types.BossDying {
		return from != types.BossEntry && from != types.BossDying
	}
	next, ok := bossTransitions[from]
	return ok && next == to
}

// TransitionBoss 执行一次状态转换并重置状态内计时器
// 非法转换返回 false 且不修改组件
func TransitionBoss(bc *components.BossComponent, to types.BossState) bool {
	if !CanTransition(bc.State, to) {
		return false
	}
	bc.State = to
	bc.StateTimer = 0
	bc.ShotTimer = 0
	bc.DeathTimer = 0
	bc.ChargeSpeed = 0
	return true
}

// Vulnerable Boss 是否会被子弹击中
// ENTRY 进场和 DYING 演出期间忽略子弹
func Vulnerable(s types.BossState) bool {
	return s != types.BossEntry && s != types.BossDying
}

// BossSystem 驱动 Boss 状态机
type BossSystem struct {
	ctx *Context
}

// NewBossSystem 创建 Boss 系统
func NewBossSystem(ctx *Context) *BossSystem {
	return &BossSystem{ctx: ctx}
}

// Update 推进当前状态
func (s *BossSystem) Update() {
	id, bc, ok := s.ctx.bossEntity()
	if !ok {
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.ctx.EM, id)
	if !ok {
		return
	}

	switch bc.State {
	case types.BossEntry:
		s.updateEntry(bc, pos)
	case types.BossSpiral:
		s.updateSpiral(bc, pos)
	case types.BossHoming:
		s.updateHoming(bc, pos)
	case types.BossCharge:
		s.updateCharge(bc, pos)
	case types.BossDying:
		s.updateDying(id, bc, pos)
	}
}

func (s *BossSystem) transition(bc *components.BossComponent, to types.BossState) {
	if TransitionBoss(bc, to) {
		s.ctx.Bus.Publish(event.BossStateChanged, event.BossData{Wave: bc.Wave, State: to})
	}
}

func (s *BossSystem) centerX() float64 {
	return (s.ctx.Field.Width - s.ctx.Profile.Boss.Width) / 2
}

// updateEntry 下降到目标高度后进入 SPIRAL
func (s *BossSystem) updateEntry(bc *components.BossComponent, pos *components.PositionComponent) {
	cfg := s.ctx.Profile.Boss
	bc.StateTimer++
	pos.Y += cfg.EntrySpeed
	if pos.Y >= cfg.EntryY {
		pos.Y = cfg.EntryY
		bc.Angle = 0
		s.transition(bc, types.BossSpiral)
	}
}

// updateSpiral 水平正弦摆动，定时发射环形弹幕
func (s *BossSystem) updateSpiral(bc *components.BossComponent, pos *components.PositionComponent) {
	cfg := s.ctx.Profile.Boss
	bc.StateTimer++
	bc.Angle += cfg.SpiralAngleStep

	center := s.centerX()
	amp := math.Min(cfg.SpiralAmplitude, math.Max(0, center))
	pos.X = center + math.Sin(bc.Angle)*amp

	bc.ShotTimer++
	if cfg.SpiralShotEvery > 0 && bc.ShotTimer >= cfg.SpiralShotEvery {
		bc.ShotTimer = 0
		s.radialBurst(bc, pos)
	}

	if bc.StateTimer >= cfg.SpiralFrames {
		baseY := pos.Y
		s.transition(bc, types.BossHoming)
		bc.BaseY = baseY
	}
}

// radialBurst 以 Boss 中心为圆心均匀发射 n 颗子弹，每次齐射旋转起始角
func (s *BossSystem) radialBurst(bc *components.BossComponent, pos *components.PositionComponent) {
	cfg := s.ctx.Profile.Boss
	bullets := s.ctx.Profile.Bullets
	n := cfg.SpiralBullets
	if n <= 0 {
		return
	}
	cx := pos.X + cfg.Width/2 - bullets.EnemyWidth/2
	cy := pos.Y + cfg.Height/2 - bullets.EnemyHeight/2
	for i := 0; i < n; i++ {
		a := bc.SpinAngle + float64(i)*2*math.Pi/float64(n)
		entities.NewEnemyBullet(s.ctx.EM, bullets, cx, cy,
			math.Cos(a)*cfg.SpiralBulletSpeed, math.Sin(a)*cfg.SpiralBulletSpeed)
	}
	bc.SpinAngle += cfg.SpiralRotateStep
}

// updateHoming 纵向摆动，横向随机抖动，定时瞄准玩家射击
func (s *BossSystem) updateHoming(bc *components.BossComponent, pos *components.PositionComponent) {
	cfg := s.ctx.Profile.Boss
	bc.StateTimer++

	pos.Y = bc.BaseY + math.Sin(float64(bc.StateTimer)*cfg.HomingFreq)*cfg.HomingAmplitude
	pos.X += (s.ctx.Rand.Float64()*2 - 1) * cfg.HomingJitter
	pos.X = utils.Clamp(pos.X, 0, s.ctx.Field.Width-cfg.Width)

	bc.ShotTimer++
	if cfg.HomingShotEvery > 0 && bc.ShotTimer >= cfg.HomingShotEvery {
		bc.ShotTimer = 0
		s.aimedShot(pos)
	}

	if bc.StateTimer >= cfg.HomingFrames {
		s.transition(bc, types.BossCharge)
	}
}

// AimVector 从 (fromX, fromY) 指向 (toX, toY) 的速度向量，长度为 speed
// 两点重合时竖直向下
func AimVector(fromX, fromY, toX, toY, speed float64) (vx, vy float64) {
	dx := toX - fromX
	dy := toY - fromY
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return 0, speed
	}
	return dx / dist * speed, dy / dist * speed
}

func (s *BossSystem) aimedShot(pos *components.PositionComponent) {
	cfg := s.ctx.Profile.Boss
	bullets := s.ctx.Profile.Bullets
	fromX := pos.X + cfg.Width/2
	fromY := pos.Y + cfg.Height

	toX, toY := fromX, s.ctx.Field.Height
	if pid, _, ok := s.ctx.playerEntity(); ok {
		if r, ok := rectOf(s.ctx.EM, pid); ok {
			toX, toY = r.Center()
		}
	}
	vx, vy := AimVector(fromX, fromY, toX, toY, cfg.AimedSpeed)
	entities.NewEnemyBullet(s.ctx.EM, bullets,
		fromX-bullets.EnemyWidth/2, fromY-bullets.EnemyHeight/2, vx, vy)
}

// updateCharge 蓄力停顿后加速下冲，冲出底边后回到上方重新进场
func (s *BossSystem) updateCharge(bc *components.BossComponent, pos *components.PositionComponent) {
	cfg := s.ctx.Profile.Boss
	bc.StateTimer++
	if bc.StateTimer <= cfg.ChargeHoldFrames {
		return
	}

	bc.ChargeSpeed = math.Min(bc.ChargeSpeed+cfg.ChargeAccel, cfg.ChargeMaxSpeed)
	pos.Y += bc.ChargeSpeed
	if pos.Y > s.ctx.Field.Height {
		pos.X = s.centerX()
		pos.Y = -cfg.Height
		s.transition(bc, types.BossEntry)
	}
}

// updateDying 死亡演出：定期放粒子，结束时结算并移除
func (s *BossSystem) updateDying(id ecs.EntityID, bc *components.BossComponent, pos *components.PositionComponent) {
	cfg := s.ctx.Profile.Boss
	particles := s.ctx.Profile.Particles
	bc.DeathTimer++

	if cfg.DeathParticleEvery > 0 && bc.DeathTimer%cfg.DeathParticleEvery == 0 {
		x := pos.X + s.ctx.Rand.Float64()*cfg.Width
		y := pos.Y + s.ctx.Rand.Float64()*cfg.Height
		entities.NewBurst(s.ctx.EM, s.ctx.Rand, x, y, entities.BurstConfig{
			Count:    particles.ExplosionCount / 2,
			MaxSpeed: particles.MaxSpeed,
			Decay:    particles.Decay,
			Color:    bc.Color,
		})
	}

	if bc.DeathTimer < cfg.DeathFrames {
		return
	}

	cx, cy := pos.X+cfg.Width/2, pos.Y+cfg.Height/2
	entities.NewBurst(s.ctx.EM, s.ctx.Rand, cx, cy, entities.BurstConfig{
		Count:    particles.BossExplosionCount,
		MaxSpeed: particles.MaxSpeed * 1.5,
		Decay:    particles.Decay * 0.75,
		Color:    bc.Color,
	})

	state := s.ctx.State
	state.AddScore(cfg.Score)
	state.AddCoins(cfg.Coins)
	// 与普通敌人相同的掉落概率
	if cfg.DropsPowerUp {
		s.ctx.rollDrop(cx, cy)
	}
	s.ctx.EM.DestroyEntity(id)

	defeatedWave := state.Wave
	state.AdvanceWave()
	s.ctx.Bus.Publish(event.BossDefeated, event.BossData{Wave: defeatedWave, State: types.BossDying})

	if s.ctx.Profile.HasShop() && state.Phase == types.PhasePlaying {
		state.SetPhase(types.PhaseShop)
	}
}
