package render

import (
	"github.com/decker502/galaxy-defender/pkg/components"
	"github.com/decker502/galaxy-defender/pkg/config"
	"github.com/decker502/galaxy-defender/pkg/ecs"
	"github.com/decker502/galaxy-defender/pkg/types"
	"github.com/decker502/galaxy-defender/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

// Renderer 绘制场上实体
type Renderer struct {
	bossDeathFrames int
}

// NewRenderer 创建渲染器
func NewRenderer(profile *config.Profile) *Renderer {
	return &Renderer{bossDeathFrames: profile.Boss.DeathFrames}
}

// DrawWorld 按层级绘制所有实体
// 顺序：星空、道具、敌人、Boss、子弹、玩家、粒子
func (r *Renderer) DrawWorld(screen *ebiten.Image, em *ecs.EntityManager) {
	screen.Fill(Background)
	drawStars(screen, em)
	drawPowerUps(screen, em)
	drawEnemies(screen, em)
	r.drawBoss(screen, em)
	drawProjectiles(screen, em)
	drawPlayer(screen, em)
	drawParticles(screen, em)
}

func drawStars(screen *ebiten.Image, em *ecs.EntityManager) {
	for _, id := range ecs.GetEntitiesWith2[*components.StarComponent, *components.PositionComponent](em) {
		st, _ := ecs.GetComponent[*components.StarComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		clr := utils.WithAlpha(colornames.White, st.Brightness)
		vector.DrawFilledRect(screen, float32(pos.X), float32(pos.Y), float32(st.Size), float32(st.Size), clr, false)
	}
}

func drawPowerUps(screen *ebiten.Image, em *ecs.EntityManager) {
	for _, id := range ecs.GetEntitiesWith3[*components.PowerUpComponent, *components.PositionComponent, *components.CollisionComponent](em) {
		pu, _ := ecs.GetComponent[*components.PowerUpComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](em, id)

		cx, cy := pos.X+col.Width/2, pos.Y+col.Height/2
		r := col.Width / 2
		vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(r), PowerUpColor(pu.Type), true)
		vector.StrokeCircle(screen, float32(cx), float32(cy), float32(r), 1.5, colornames.White, true)
		DrawText(screen, PowerUpLabel(pu.Type), cx, cy-7, colornames.Black, AlignCenter)
	}
}

func drawEnemies(screen *ebiten.Image, em *ecs.EntityManager) {
	for _, id := range ecs.GetEntitiesWith3[*components.EnemyComponent, *components.PositionComponent, *components.CollisionComponent](em) {
		ec, _ := ecs.GetComponent[*components.EnemyComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](em, id)

		x, y := float32(pos.X), float32(pos.Y)
		w, h := float32(col.Width), float32(col.Height)
		switch ec.Variant {
		case types.EnemySine, types.EnemyScout:
			cx, cy := x+w/2, y+h/2
			vector.DrawFilledCircle(screen, cx, cy, w/2, ec.Color, true)
		case types.EnemyDiver:
			// 窄机身 + 双翼
			vector.DrawFilledRect(screen, x+w*0.35, y, w*0.3, h, ec.Color, false)
			vector.DrawFilledRect(screen, x, y, w, h*0.35, ec.Color, false)
		default:
			vector.DrawFilledRect(screen, x, y, w, h, ec.Color, false)
		}
		// 眼睛
		vector.DrawFilledRect(screen, x+w*0.25, y+h*0.55, w*0.15, h*0.15, colornames.Black, false)
		vector.DrawFilledRect(screen, x+w*0.6, y+h*0.55, w*0.15, h*0.15, colornames.Black, false)

		if hp, ok := ecs.GetComponent[*components.HealthComponent](em, id); ok && hp.Max > 1 && hp.Current < hp.Max {
			drawBar(screen, pos.X, pos.Y-5, col.Width, 3, hp.Fraction())
		}
	}
}

func (r *Renderer) drawBoss(screen *ebiten.Image, em *ecs.EntityManager) {
	for _, id := range ecs.GetEntitiesWith3[*components.BossComponent, *components.PositionComponent, *components.CollisionComponent](em) {
		bc, _ := ecs.GetComponent[*components.BossComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](em, id)

		clr := bc.Color
		switch bc.State {
		case types.BossCharge:
			// 蓄力时闪烁
			if bc.StateTimer/4%2 == 0 {
				clr = colornames.White
			}
		case types.BossDying:
			clr = utils.WithAlpha(bc.Color, BossFade(bc.DeathTimer, r.bossDeathFrames))
		}

		x, y := float32(pos.X), float32(pos.Y)
		w, h := float32(col.Width), float32(col.Height)
		vector.DrawFilledRect(screen, x, y+h*0.25, w, h*0.5, clr, false)
		vector.DrawFilledRect(screen, x+w*0.25, y, w*0.5, h, clr, false)
		vector.DrawFilledCircle(screen, x+w/2, y+h/2, h*0.18, colornames.Black, true)
	}
}

func drawProjectiles(screen *ebiten.Image, em *ecs.EntityManager) {
	for _, id := range ecs.GetEntitiesWith3[*components.ProjectileComponent, *components.PositionComponent, *components.CollisionComponent](em) {
		pc, _ := ecs.GetComponent[*components.ProjectileComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](em, id)

		if pc.Owner == types.OwnerPlayer {
			vector.DrawFilledRect(screen, float32(pos.X), float32(pos.Y), float32(col.Width), float32(col.Height), PlayerBullet, false)
			continue
		}
		r := col.Width / 2
		vector.DrawFilledCircle(screen, float32(pos.X+r), float32(pos.Y+col.Height/2), float32(r), EnemyBullet, true)
	}
}

func drawPlayer(screen *ebiten.Image, em *ecs.EntityManager) {
	for _, id := range ecs.GetEntitiesWith3[*components.PlayerComponent, *components.PositionComponent, *components.CollisionComponent](em) {
		pc, _ := ecs.GetComponent[*components.PlayerComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](em, id)

		if !PlayerVisible(pc.Invulnerable) {
			continue
		}
		x, y := float32(pos.X), float32(pos.Y)
		w, h := float32(col.Width), float32(col.Height)
		// 机身、机翼、驾驶舱
		vector.DrawFilledRect(screen, x+w*0.4, y, w*0.2, h, PlayerColor, false)
		vector.DrawFilledRect(screen, x, y+h*0.5, w, h*0.35, PlayerColor, false)
		vector.DrawFilledRect(screen, x+w*0.43, y+h*0.2, w*0.14, h*0.2, CockpitColor, false)

		if pc.HasShield() {
			vector.DrawFilledCircle(screen, x+w/2, y+h/2, w*0.8, ShieldColor, true)
		}
	}
}

func drawParticles(screen *ebiten.Image, em *ecs.EntityManager) {
	for _, id := range ecs.GetEntitiesWith2[*components.ParticleComponent, *components.PositionComponent](em) {
		p, _ := ecs.GetComponent[*components.ParticleComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		clr := utils.WithAlpha(p.Color, p.Life)
		vector.DrawFilledRect(screen, float32(pos.X), float32(pos.Y), float32(p.Size), float32(p.Size), clr, false)
	}
}

// PlayerVisible 无敌期间每 4 帧闪烁一次
func PlayerVisible(invulnFrames int) bool {
	return invulnFrames <= 0 || invulnFrames/4%2 == 0
}

// drawBar 血条，fraction 为 [0,1]
func drawBar(screen *ebiten.Image, x, y, w, h, fraction float64) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), BarBack, false)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(BarFill(w, fraction)), float32(h), HealthColor(fraction), false)
}

// BarFill 血条填充宽度
func BarFill(width, fraction float64) float64 {
	return width * utils.Clamp(fraction, 0, 1)
}

// BossFade 死亡演出中 Boss 的不透明度
func BossFade(deathTimer, deathFrames int) float64 {
	if deathFrames <= 0 {
		return 0
	}
	return utils.Clamp(1-float64(deathTimer)/float64(deathFrames), 0, 1)
}
