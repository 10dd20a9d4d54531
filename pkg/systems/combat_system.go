package systems

import (
	"github.com/decker502/galaxy-defender/pkg/components"
	"github.com/decker502/galaxy-defender/pkg/ecs"
	"github.com/decker502/galaxy-defender/pkg/entities"
	"github.com/decker502/galaxy-defender/pkg/event"
	"github.com/decker502/galaxy-defender/pkg/types"
	"github.com/decker502/galaxy-defender/pkg/utils"
)

// DamageResult 一次伤害结算的结果
type DamageResult int

const (
	DamageIgnored  DamageResult = iota // 无敌中，伤害被忽略
	DamageAbsorbed                     // 护盾抵挡
	DamageApplied                      // 扣血但存活
	DamageFatal                        // 扣血后死亡
)

// ApplyDamage 对玩家结算一次伤害
//
// 无敌帧内忽略；护盾生效时护盾清零、获得无敌、血量不变；
// 否则扣血并获得无敌，血量 <= 0 时返回 DamageFatal
func ApplyDamage(pc *components.PlayerComponent, hp *components.HealthComponent, amount, invulnFrames int) DamageResult {
	if pc.Invulnerable > 0 {
		return DamageIgnored
	}
	if pc.HasShield() {
		pc.Shield = 0
		pc.Invulnerable = invulnFrames
		return DamageAbsorbed
	}
	hp.Current -= amount
	pc.Invulnerable = invulnFrames
	if hp.Current <= 0 {
		hp.Current = 0
		return DamageFatal
	}
	return DamageApplied
}

// CombatSystem 碰撞检测与伤害结算
//
// 检测顺序：玩家子弹→敌人，玩家子弹→Boss，敌方子弹→玩家，敌人撞击→玩家，Boss 撞击→玩家。
// 已标记删除的实体不会再参与后续检测
type CombatSystem struct {
	ctx *Context
}

// NewCombatSystem 创建战斗系统
func NewCombatSystem(ctx *Context) *CombatSystem {
	return &CombatSystem{ctx: ctx}
}

// Update 结算本帧所有碰撞
func (s *CombatSystem) Update() {
	em := s.ctx.EM
	var playerBullets, enemyBullets []ecs.EntityID
	for _, id := range ecs.GetEntitiesWith2[*components.ProjectileComponent, *components.PositionComponent](em) {
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](em, id)
		if proj.Owner == types.OwnerPlayer {
			playerBullets = append(playerBullets, id)
		} else {
			enemyBullets = append(enemyBullets, id)
		}
	}

	s.bulletsVsEnemies(playerBullets)
	s.bulletsVsBoss(playerBullets)
	s.bulletsVsPlayer(enemyBullets)
	s.enemyContact()
	s.bossContact()
}

func (s *CombatSystem) bulletsVsEnemies(bullets []ecs.EntityID) {
	em := s.ctx.EM
	enemies := ecs.GetEntitiesWith2[*components.EnemyComponent, *components.HealthComponent](em)
	for _, bid := range bullets {
		br, ok := rectOf(em, bid)
		if !ok {
			continue
		}
		for _, eid := range enemies {
			if !em.IsAlive(eid) {
				continue
			}
			er, ok := rectOf(em, eid)
			if !ok || !br.Overlaps(er) {
				continue
			}
			proj, _ := ecs.GetComponent[*components.ProjectileComponent](em, bid)
			em.DestroyEntity(bid)
			s.hitEnemy(eid, er, proj.Damage)
			break
		}
	}
}

// hitEnemy 敌人扣血，死亡时结算奖励
func (s *CombatSystem) hitEnemy(id ecs.EntityID, r utils.Rect, damage int) {
	em := s.ctx.EM
	ec, _ := ecs.GetComponent[*components.EnemyComponent](em, id)
	hp, _ := ecs.GetComponent[*components.HealthComponent](em, id)
	particles := s.ctx.Profile.Particles
	cx, cy := r.Center()

	hp.Current -= damage
	if hp.Current > 0 {
		entities.NewBurst(em, s.ctx.Rand, cx, cy, entities.BurstConfig{
			Count:    particles.HitSparkCount,
			MaxSpeed: particles.MaxSpeed,
			Decay:    particles.Decay * 2,
			Size:     2,
			Color:    utils.MustColor("#ffffaa"),
		})
		s.ctx.Bus.Publish(event.EnemyHit, event.HitData{Remaining: hp.Current})
		return
	}

	em.DestroyEntity(id)
	state := s.ctx.State
	state.AddScore(ec.Score)
	state.AddCoins(ec.Coins)
	state.RecordDefeat()

	entities.NewBurst(em, s.ctx.Rand, cx, cy, entities.BurstConfig{
		Count:    particles.ExplosionCount,
		MaxSpeed: particles.MaxSpeed,
		Decay:    particles.Decay,
		Color:    ec.Color,
	})
	s.ctx.rollDrop(cx, cy)

	s.ctx.Bus.Publish(event.EnemyDestroyed, event.EnemyDestroyedData{
		Variant: ec.Variant,
		X:       cx,
		Y:       cy,
		Score:   ec.Score,
		Coins:   ec.Coins,
	})
}

func (s *CombatSystem) bulletsVsBoss(bullets []ecs.EntityID) {
	em := s.ctx.EM
	id, bc, ok := s.ctx.bossEntity()
	if !ok || !Vulnerable(bc.State) {
		return
	}
	bossRect, ok := rectOf(em, id)
	if !ok {
		return
	}
	hp, ok := ecs.GetComponent[*components.HealthComponent](em, id)
	if !ok {
		return
	}

	for _, bid := range bullets {
		if !em.IsAlive(bid) {
			continue
		}
		br, ok := rectOf(em, bid)
		if !ok || !br.Overlaps(bossRect) {
			continue
		}
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](em, bid)
		em.DestroyEntity(bid)
		hp.Current -= proj.Damage

		if hp.Current <= 0 {
			hp.Current = 0
			if TransitionBoss(bc, types.BossDying) {
				s.ctx.Bus.Publish(event.BossStateChanged, event.BossData{Wave: bc.Wave, State: types.BossDying})
				s.ctx.Bus.Publish(event.BossDying, event.BossData{Wave: bc.Wave, HP: 0, State: types.BossDying})
			}
			return
		}
		s.ctx.Bus.Publish(event.EnemyHit, event.HitData{Boss: true, Remaining: hp.Current})
	}
}

func (s *CombatSystem) bulletsVsPlayer(bullets []ecs.EntityID) {
	em := s.ctx.EM
	pid, _, ok := s.ctx.playerEntity()
	if !ok {
		return
	}
	for _, bid := range bullets {
		pr, ok1 := rectOf(em, pid)
		br, ok2 := rectOf(em, bid)
		if !ok1 || !ok2 || !br.Overlaps(pr) {
			continue
		}
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](em, bid)
		// 无敌或护盾时子弹同样被消耗
		em.DestroyEntity(bid)
		if !s.damagePlayer(proj.Damage) {
			return
		}
	}
}

// enemyContact 敌人撞到玩家：敌人消失（无奖励），玩家受到撞击伤害
func (s *CombatSystem) enemyContact() {
	em := s.ctx.EM
	pid, _, ok := s.ctx.playerEntity()
	if !ok {
		return
	}
	pr, ok := rectOf(em, pid)
	if !ok {
		return
	}
	for _, eid := range ecs.GetEntitiesWith1[*components.EnemyComponent](em) {
		er, ok := rectOf(em, eid)
		if !ok || !er.Overlaps(pr) {
			continue
		}
		ec, _ := ecs.GetComponent[*components.EnemyComponent](em, eid)
		em.DestroyEntity(eid)
		cx, cy := er.Center()
		p := s.ctx.Profile.Particles
		entities.NewBurst(em, s.ctx.Rand, cx, cy, entities.BurstConfig{
			Count:    p.ExplosionCount,
			MaxSpeed: p.MaxSpeed,
			Decay:    p.Decay,
			Color:    ec.Color,
		})
		if !s.damagePlayer(s.ctx.Profile.Enemies.ContactDamage) {
			return
		}
	}
}

// bossContact Boss 身体碰撞（DYING 期间不造成伤害）
func (s *CombatSystem) bossContact() {
	em := s.ctx.EM
	id, bc, ok := s.ctx.bossEntity()
	if !ok || bc.State == types.BossDying {
		return
	}
	pid, _, ok := s.ctx.playerEntity()
	if !ok {
		return
	}
	br, ok1 := rectOf(em, id)
	pr, ok2 := rectOf(em, pid)
	if ok1 && ok2 && br.Overlaps(pr) {
		s.damagePlayer(s.ctx.Profile.Boss.ContactDamage)
	}
}

// damagePlayer 结算对玩家的伤害，返回玩家是否仍存活
func (s *CombatSystem) damagePlayer(amount int) bool {
	em := s.ctx.EM
	pid, pc, ok := s.ctx.playerEntity()
	if !ok {
		return false
	}
	hp, ok := ecs.GetComponent[*components.HealthComponent](em, pid)
	if !ok {
		return false
	}

	switch ApplyDamage(pc, hp, amount, s.ctx.Profile.Player.InvulnFrames) {
	case DamageAbsorbed:
		s.ctx.Bus.Publish(event.ShieldAbsorbed, event.DamageData{Amount: amount, Remaining: hp.Current})
	case DamageApplied:
		s.ctx.Bus.Publish(event.PlayerDamaged, event.DamageData{Amount: amount, Remaining: hp.Current})
	case DamageFatal:
		s.ctx.Bus.Publish(event.PlayerDamaged, event.DamageData{Amount: amount, Remaining: 0})
		if r, ok := rectOf(em, pid); ok {
			cx, cy := r.Center()
			p := s.ctx.Profile.Particles
			entities.NewBurst(em, s.ctx.Rand, cx, cy, entities.BurstConfig{
				Count:    p.BossExplosionCount,
				MaxSpeed: p.MaxSpeed,
				Decay:    p.Decay,
				Color:    utils.MustColor("#66ccff"),
			})
		}
		s.ctx.State.SetPhase(types.PhaseGameOver)
		return false
	}
	return true
}
