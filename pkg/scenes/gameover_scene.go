package scenes

import (
	"fmt"

	"github.com/decker502/galaxy-defender/pkg/event"
	"github.com/decker502/galaxy-defender/pkg/input"
	"github.com/decker502/galaxy-defender/pkg/render"
	"github.com/decker502/galaxy-defender/pkg/types"
	"github.com/decker502/galaxy-defender/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"
)

// GameOverScene 结算界面
type GameOverScene struct {
	env    *Env
	result event.GameOverData
	retry  *Button
	menu   *Button
	frame  int
}

// NewGameOverScene 创建结算场景并订阅 GameOver 事件
func NewGameOverScene(env *Env) *GameOverScene {
	g := &GameOverScene{
		env:   env,
		retry: NewButton("PLAY AGAIN"),
		menu:  NewButton("MAIN MENU"),
	}
	env.Sim.Bus().SubscribeFunc(event.GameOver, func(e event.Event) {
		if data, ok := e.Data.(event.GameOverData); ok {
			g.result = data
		}
	})
	g.OnResize(env.Sim.Size())
	return g
}

// Result 最近一局的结算数据
func (g *GameOverScene) Result() event.GameOverData {
	return g.result
}

// OnEnter 重置动画
func (g *GameOverScene) OnEnter() {
	g.frame = 0
}

// OnResize 重新布局按钮
func (g *GameOverScene) OnResize(width, height float64) {
	layoutColumn([]*Button{g.retry, g.menu}, width/2, height*0.6, 200, 44, 12)
}

// Update 粒子继续播放；确认键重开，按钮回主菜单
func (g *GameOverScene) Update(deltaTime float64) {
	g.frame++
	g.env.Sim.Step(stepMs(deltaTime), types.Input{})

	p := input.ReadPointer()
	px, py := float64(p.X), float64(p.Y)
	g.retry.SetHover(px, py)
	g.menu.SetHover(px, py)

	switch {
	case input.ConfirmPressed(), p.JustPressed && g.retry.Clicked(px, py):
		g.env.Sim.Start()
	case p.JustPressed && g.menu.Clicked(px, py):
		g.env.Sim.ReturnToMenu()
	}
}

// Draw 绘制结算信息
func (g *GameOverScene) Draw(screen *ebiten.Image) {
	g.env.Renderer.DrawWorld(screen, g.env.Sim.EntityManager())
	w, h := g.env.Sim.Size()
	render.DrawShade(screen, w, h)

	render.DrawTextScaled(screen, "GAME OVER", w/2, h*0.2, 3, colornames.Red)
	y := h*0.2 + 60
	for _, line := range ResultLines(g.result) {
		render.DrawText(screen, line, w/2, y, render.HUDText, render.AlignCenter)
		y += render.LineHeight + 4
	}
	if g.result.NewRecord {
		alpha := 0.4 + 0.6*utils.Pulse(g.frame, 40)
		render.DrawText(screen, "NEW HIGH SCORE!", w/2, y+8, utils.WithAlpha(colornames.Gold, alpha), render.AlignCenter)
	}

	g.retry.Draw(screen)
	g.menu.Draw(screen)
}

// ResultLines 结算界面的文字
func ResultLines(r event.GameOverData) []string {
	return []string{
		fmt.Sprintf("SCORE       %d", r.Score),
		fmt.Sprintf("WAVE        %d", r.Wave),
		fmt.Sprintf("HIGH SCORE  %d", r.HighScore),
	}
}
