package scenes

import (
	"errors"
	"fmt"

	"github.com/decker502/galaxy-defender/pkg/game"
	"github.com/decker502/galaxy-defender/pkg/input"
	"github.com/decker502/galaxy-defender/pkg/render"
	"github.com/decker502/galaxy-defender/pkg/types"
	"github.com/decker502/galaxy-defender/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

// messageFrames 购买提示显示的帧数
const messageFrames = 90

// ShopScene 波次之间的升级商店
//
// 点击或按数字键 1~4 购买，确认键或 CONTINUE 返回战斗
type ShopScene struct {
	env      *Env
	items    []*Button
	cont     *Button
	panel    utils.Rect
	message  string
	msgTimer int
}

// NewShopScene 创建商店场景
func NewShopScene(env *Env) *ShopScene {
	s := &ShopScene{env: env, cont: NewButton("CONTINUE")}
	for range game.AllUpgrades {
		s.items = append(s.items, NewButton(""))
	}
	s.OnResize(env.Sim.Size())
	return s
}

// OnEnter 清除上次的提示
func (s *ShopScene) OnEnter() {
	s.message = ""
	s.msgTimer = 0
	s.refresh()
}

// OnResize 重新布局面板和按钮
func (s *ShopScene) OnResize(width, height float64) {
	pw, ph := 360.0, 360.0
	s.panel = utils.Rect{X: width/2 - pw/2, Y: height/2 - ph/2, W: pw, H: ph}
	layoutColumn(s.items, width/2, s.panel.Y+80, 300, 40, 10)
	layoutColumn([]*Button{s.cont}, width/2, s.panel.Y+s.panel.H-56, 200, 40, 0)
}

// refresh 更新按钮的文字和可用状态
func (s *ShopScene) refresh() {
	snap := s.env.Sim.Snapshot()
	maxLevel := s.env.Sim.Profile().Economy.MaxLevel
	for i, kind := range game.AllUpgrades {
		cost := s.env.Sim.UpgradeCost(kind)
		level := snap.Upgrades.Level(kind)
		s.items[i].Label = ShopLabel(kind, level, maxLevel, cost)
		s.items[i].Enabled = cost > 0 && s.env.Sim.CanAfford(kind)
	}
}

// Update 处理购买与离开
func (s *ShopScene) Update(deltaTime float64) {
	s.env.Sim.Step(stepMs(deltaTime), types.Input{})
	if s.msgTimer > 0 {
		s.msgTimer--
	}
	if s.env.Sim.Phase() != types.PhaseShop {
		return
	}

	p := input.ReadPointer()
	px, py := float64(p.X), float64(p.Y)
	for _, b := range s.items {
		b.SetHover(px, py)
	}
	s.cont.SetHover(px, py)

	if d := input.DigitPressed(); d >= 1 && d <= len(game.AllUpgrades) {
		s.buy(game.AllUpgrades[d-1])
	}
	if p.JustPressed {
		for i, b := range s.items {
			if b.Rect.Contains(px, py) {
				s.buy(game.AllUpgrades[i])
			}
		}
	}

	if input.ConfirmPressed() || (p.JustPressed && s.cont.Clicked(px, py)) {
		if err := s.env.Sim.LeaveShop(); err != nil {
			s.env.Logger.Warn().Err(err).Msg("leave shop")
		}
		return
	}
	s.refresh()
}

func (s *ShopScene) buy(kind game.UpgradeKind) {
	if s.env.Sim.UpgradeCost(kind) <= 0 {
		return
	}
	cost, err := s.env.Sim.Purchase(kind)
	s.message = PurchaseMessage(kind, cost, err)
	s.msgTimer = messageFrames
	s.refresh()
}

// Draw 绘制冻结的战场和商店面板
func (s *ShopScene) Draw(screen *ebiten.Image) {
	s.env.Renderer.DrawWorld(screen, s.env.Sim.EntityManager())
	snap := s.env.Sim.Snapshot()
	render.DrawShade(screen, snap.Width, snap.Height)

	r := s.panel
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), render.ButtonFill, false)
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 2, render.ButtonOutline, false)

	render.DrawTextScaled(screen, "UPGRADE SHOP", snap.Width/2, r.Y+14, 2, colornames.Gold)
	render.DrawText(screen, fmt.Sprintf("WAVE %d CLEARED   COINS %d", snap.Wave-1, snap.Coins), snap.Width/2, r.Y+50, render.HUDText, render.AlignCenter)

	for _, b := range s.items {
		b.Draw(screen)
	}
	s.cont.Draw(screen)

	if s.msgTimer > 0 && s.message != "" {
		render.DrawText(screen, s.message, snap.Width/2, s.cont.Rect.Y-22, render.HUDDim, render.AlignCenter)
	}
}

// ShopLabel 商店按钮文字
func ShopLabel(kind game.UpgradeKind, level, maxLevel, cost int) string {
	switch {
	case cost <= 0:
		return fmt.Sprintf("%s  N/A", kind.Label())
	case level >= maxLevel:
		return fmt.Sprintf("%s  Lv %d  MAX", kind.Label(), level)
	}
	return fmt.Sprintf("%s  Lv %d/%d  %dc", kind.Label(), level, maxLevel, cost)
}

// PurchaseMessage 购买结果提示
func PurchaseMessage(kind game.UpgradeKind, cost int, err error) string {
	switch {
	case err == nil:
		return fmt.Sprintf("%s upgraded (-%dc)", kind.Label(), cost)
	case errors.Is(err, game.ErrInsufficientCoins):
		return "Not enough coins"
	case errors.Is(err, game.ErrMaxLevel):
		return kind.Label() + " is at max level"
	case errors.Is(err, game.ErrNotForSale):
		return kind.Label() + " is not for sale"
	}
	return "Shop is closed"
}
