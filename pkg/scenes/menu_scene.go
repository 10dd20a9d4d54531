package scenes

import (
	"fmt"

	"github.com/decker502/galaxy-defender/pkg/input"
	"github.com/decker502/galaxy-defender/pkg/render"
	"github.com/decker502/galaxy-defender/pkg/types"
	"github.com/decker502/galaxy-defender/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"
)

// controlHelp 主菜单底部的操作说明
var controlHelp = []string{
	"ARROWS / A D  move",
	"SPACE / Z     fire",
	"P / ESC       pause",
	"M             mute",
}

// MenuScene 主菜单，背景为滚动的星空
type MenuScene struct {
	env   *Env
	start *Button
	frame int
}

// NewMenuScene 创建主菜单
func NewMenuScene(env *Env) *MenuScene {
	m := &MenuScene{env: env, start: NewButton("START")}
	m.OnResize(env.Sim.Size())
	return m
}

// OnResize 重新布局按钮
func (m *MenuScene) OnResize(width, height float64) {
	layoutColumn([]*Button{m.start}, width/2, height*0.55, 200, 44, 12)
}

// Update 星空滚动；确认键或点击开始按钮开始新一局
func (m *MenuScene) Update(deltaTime float64) {
	m.frame++
	m.env.Sim.Step(stepMs(deltaTime), types.Input{})

	p := input.ReadPointer()
	px, py := float64(p.X), float64(p.Y)
	m.start.SetHover(px, py)
	if input.ConfirmPressed() || (p.JustPressed && m.start.Clicked(px, py)) {
		m.env.Sim.Start()
	}
}

// Draw 绘制标题、最高分和操作说明
func (m *MenuScene) Draw(screen *ebiten.Image) {
	m.env.Renderer.DrawWorld(screen, m.env.Sim.EntityManager())
	w, h := m.env.Sim.Size()

	render.DrawTextScaled(screen, "GALAXY DEFENDER", w/2, h*0.22, 3, colornames.Deepskyblue)
	snap := m.env.Sim.Snapshot()
	render.DrawText(screen, fmt.Sprintf("HIGH SCORE  %d", snap.HighScore), w/2, h*0.22+56, render.HUDText, render.AlignCenter)
	render.DrawText(screen, "profile: "+m.env.Sim.Profile().Name, w/2, h*0.22+76, render.HUDDim, render.AlignCenter)

	m.start.Draw(screen)

	alpha := 0.5 + 0.5*utils.Pulse(m.frame, 60)
	render.DrawText(screen, "PRESS ENTER", w/2, m.start.Rect.Y+m.start.Rect.H+16, utils.WithAlpha(colornames.White, alpha), render.AlignCenter)

	y := h - float64(len(controlHelp))*render.LineHeight - 16
	for _, line := range controlHelp {
		render.DrawText(screen, line, w/2-70, y, render.HUDDim, render.AlignStart)
		y += render.LineHeight
	}
}
