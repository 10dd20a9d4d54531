package termview

import (
	"fmt"
	"strings"

	"github.com/decker502/galaxy-defender/pkg/components"
	"github.com/decker502/galaxy-defender/pkg/ecs"
	"github.com/decker502/galaxy-defender/pkg/game"
	"github.com/decker502/galaxy-defender/pkg/sim"
	"github.com/decker502/galaxy-defender/pkg/types"
	"github.com/gdamore/tcell/v2"
)

// 每个字符格对应的像素尺寸
const (
	DefaultCellWidth  = 10
	DefaultCellHeight = 20
)

// View 把像素坐标的模拟映射到字符网格上绘制
//
// 模拟的画布尺寸应为 cols*CellWidth x rows*CellHeight
type View struct {
	CellWidth, CellHeight float64
}

// NewView 使用默认字符格尺寸
func NewView() *View {
	return &View{CellWidth: DefaultCellWidth, CellHeight: DefaultCellHeight}
}

// FieldSize 终端尺寸对应的模拟画布尺寸
func (v *View) FieldSize(cols, rows int) (float64, float64) {
	return float64(cols) * v.CellWidth, float64(rows) * v.CellHeight
}

// Cell 像素坐标所在的字符格
func (v *View) Cell(x, y float64) (int, int) {
	return floorDiv(x, v.CellWidth), floorDiv(y, v.CellHeight)
}

func floorDiv(a, b float64) int {
	q := int(a / b)
	if a < 0 && float64(q)*b != a {
		q--
	}
	return q
}

// Draw 绘制一帧
func (v *View) Draw(c Canvas, s *sim.Simulation) {
	snap := s.Snapshot()
	em := s.EntityManager()

	Fill(c, ' ', styleBackground)
	v.drawStars(c, em)
	v.drawBoxes(c, em)
	v.drawProjectiles(c, em)
	v.drawPlayer(c, em)
	v.drawParticles(c, em)

	DrawString(c, 0, 0, HUDLine(snap), styleHUD)
	if timers := TimerLine(snap); timers != "" {
		w, _ := c.Size()
		DrawString(c, w-len(timers), 0, timers, styleHUDDim)
	}
	if snap.BossAlive {
		DrawCentered(c, 1, BossLine(snap), styleWarning)
	}

	v.drawOverlay(c, s, snap)
}

// fillBox 用字符填充实体碰撞盒覆盖的格子（至少一格）
func (v *View) fillBox(c Canvas, pos *components.PositionComponent, col *components.CollisionComponent, r rune, style tcell.Style) {
	x0, y0 := v.Cell(pos.X, pos.Y)
	x1, y1 := v.Cell(pos.X+col.Width-1, pos.Y+col.Height-1)
	w, h := c.Size()
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if x >= 0 && x < w && y >= 0 && y < h {
				c.SetContent(x, y, r, nil, style)
			}
		}
	}
}

func (v *View) put(c Canvas, x, y float64, r rune, style tcell.Style) {
	cx, cy := v.Cell(x, y)
	w, h := c.Size()
	if cx >= 0 && cx < w && cy >= 0 && cy < h {
		c.SetContent(cx, cy, r, nil, style)
	}
}

func (v *View) drawStars(c Canvas, em *ecs.EntityManager) {
	for _, id := range ecs.GetEntitiesWith2[*components.StarComponent, *components.PositionComponent](em) {
		st, _ := ecs.GetComponent[*components.StarComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		v.put(c, pos.X, pos.Y, StarGlyph(st.Brightness), styleHUDDim)
	}
}

func (v *View) drawBoxes(c Canvas, em *ecs.EntityManager) {
	for _, id := range ecs.GetEntitiesWith3[*components.PowerUpComponent, *components.PositionComponent, *components.CollisionComponent](em) {
		pu, _ := ecs.GetComponent[*components.PowerUpComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](em, id)
		v.put(c, pos.X+col.Width/2, pos.Y+col.Height/2, PowerUpGlyph(pu.Type), styleGold)
	}
	for _, id := range ecs.GetEntitiesWith3[*components.EnemyComponent, *components.PositionComponent, *components.CollisionComponent](em) {
		ec, _ := ecs.GetComponent[*components.EnemyComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](em, id)
		v.fillBox(c, pos, col, EnemyGlyph(ec.Variant), rgbStyle(ec.Color))
	}
	for _, id := range ecs.GetEntitiesWith3[*components.BossComponent, *components.PositionComponent, *components.CollisionComponent](em) {
		bc, _ := ecs.GetComponent[*components.BossComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](em, id)
		style := rgbStyle(bc.Color)
		glyph := '#'
		switch bc.State {
		case types.BossCharge:
			if bc.StateTimer/4%2 == 0 {
				style = styleHUD
			}
		case types.BossDying:
			glyph = '%'
		}
		v.fillBox(c, pos, col, glyph, style)
	}
}

func (v *View) drawProjectiles(c Canvas, em *ecs.EntityManager) {
	for _, id := range ecs.GetEntitiesWith3[*components.ProjectileComponent, *components.PositionComponent, *components.CollisionComponent](em) {
		pc, _ := ecs.GetComponent[*components.ProjectileComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](em, id)
		if pc.Owner == types.OwnerPlayer {
			v.put(c, pos.X+col.Width/2, pos.Y, '|', stylePlayerShot)
		} else {
			v.put(c, pos.X+col.Width/2, pos.Y+col.Height/2, 'o', styleEnemyShot)
		}
	}
}

func (v *View) drawPlayer(c Canvas, em *ecs.EntityManager) {
	for _, id := range ecs.GetEntitiesWith3[*components.PlayerComponent, *components.PositionComponent, *components.CollisionComponent](em) {
		pc, _ := ecs.GetComponent[*components.PlayerComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](em, id)
		if pc.Invulnerable > 0 && pc.Invulnerable/4%2 == 1 {
			continue
		}
		style := stylePlayer
		if pc.HasShield() {
			style = styleShield
		}
		v.fillBox(c, pos, col, 'A', style)
	}
}

func (v *View) drawParticles(c Canvas, em *ecs.EntityManager) {
	for _, id := range ecs.GetEntitiesWith2[*components.ParticleComponent, *components.PositionComponent](em) {
		p, _ := ecs.GetComponent[*components.ParticleComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		v.put(c, pos.X, pos.Y, ParticleGlyph(p.Life), rgbStyle(p.Color))
	}
}

func (v *View) drawOverlay(c Canvas, s *sim.Simulation, snap sim.Snapshot) {
	_, h := c.Size()
	mid := h / 2
	switch snap.Phase {
	case types.PhaseStart:
		DrawCentered(c, mid-3, "G A L A X Y   D E F E N D E R", styleTitle)
		DrawCentered(c, mid-1, fmt.Sprintf("HIGH SCORE %d", snap.HighScore), styleHUD)
		DrawCentered(c, mid+1, "ENTER start   Q quit", styleHUDDim)
		DrawCentered(c, mid+2, "arrows/a d move   space/z fire   p pause   m mute", styleHUDDim)
	case types.PhaseBoss:
		if int(snap.WarningProgress*10)%2 == 0 {
			DrawCentered(c, mid, "!!  WARNING: BOSS APPROACHING  !!", styleWarning)
		}
	case types.PhaseShop:
		DrawCentered(c, mid-4, "UPGRADE SHOP", styleGold)
		DrawCentered(c, mid-3, fmt.Sprintf("COINS %d", snap.Coins), styleHUD)
		for i, line := range ShopLines(s) {
			DrawCentered(c, mid-1+i, line, styleHUD)
		}
		DrawCentered(c, mid+len(game.AllUpgrades), "ENTER continue", styleHUDDim)
	case types.PhaseGameOver:
		DrawCentered(c, mid-2, "G A M E   O V E R", styleWarning)
		DrawCentered(c, mid, fmt.Sprintf("SCORE %d   WAVE %d   HIGH %d", snap.Score, snap.Wave, snap.HighScore), styleHUD)
		DrawCentered(c, mid+2, "ENTER play again   Q quit", styleHUDDim)
	}
	if snap.Paused {
		DrawCentered(c, mid, "== PAUSED ==", styleHUD)
	}
}

// HUDLine 顶部状态栏
func HUDLine(snap sim.Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "SCORE %d  HIGH %d  WAVE %d  ", snap.Score, snap.HighScore, snap.Wave)
	if snap.LivesHUD {
		b.WriteString("LIVES ")
		b.WriteString(strings.Repeat("A", max(snap.Health, 0)))
	} else {
		fmt.Fprintf(&b, "HP %d/%d", snap.Health, snap.MaxHealth)
	}
	if snap.HasShop {
		fmt.Fprintf(&b, "  COINS %d", snap.Coins)
	}
	return b.String()
}

// TimerLine 生效中的道具
func TimerLine(snap sim.Snapshot) string {
	var parts []string
	if snap.Shield > 0 {
		parts = append(parts, "SHD")
	}
	if snap.RapidFire > 0 {
		parts = append(parts, "RPD")
	}
	if snap.TripleShot > 0 {
		parts = append(parts, "TRI")
	}
	return strings.Join(parts, " ")
}

// BossLine Boss 血条，20 格
func BossLine(snap sim.Snapshot) string {
	const cells = 20
	filled := 0
	if snap.BossMaxHP > 0 {
		filled = snap.BossHP * cells / snap.BossMaxHP
	}
	filled = min(max(filled, 0), cells)
	return fmt.Sprintf("BOSS [%s%s] %s", strings.Repeat("=", filled), strings.Repeat(" ", cells-filled), snap.BossState)
}

// ShopLines 商店条目，按数字键购买
func ShopLines(s *sim.Simulation) []string {
	snap := s.Snapshot()
	maxLevel := s.Profile().Economy.MaxLevel
	lines := make([]string, 0, len(game.AllUpgrades))
	for i, kind := range game.AllUpgrades {
		level := snap.Upgrades.Level(kind)
		cost := s.UpgradeCost(kind)
		var status string
		switch {
		case cost <= 0:
			status = "n/a"
		case level >= maxLevel:
			status = "MAX"
		case s.CanAfford(kind):
			status = fmt.Sprintf("%dc", cost)
		default:
			status = fmt.Sprintf("%dc (need more)", cost)
		}
		lines = append(lines, fmt.Sprintf("%d  %-10s Lv %d  %s", i+1, kind.Label(), level, status))
	}
	return lines
}
