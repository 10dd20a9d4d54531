package scenes

import (
	"github.com/decker502/galaxy-defender/pkg/render"
	"github.com/decker502/galaxy-defender/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
)

// PlayScene 游戏进行中（含 Boss 警告过场和暂停）
type PlayScene struct {
	env   *Env
	frame int
}

// NewPlayScene 创建游戏场景
func NewPlayScene(env *Env) *PlayScene {
	return &PlayScene{env: env}
}

// OnEnter 重置警告动画计数
func (p *PlayScene) OnEnter() {
	p.frame = 0
}

// OnResize 触屏按键随窗口重新布局
func (p *PlayScene) OnResize(width, height float64) {
	p.env.Input.Resize(width, height)
}

// Update 读取输入并推进一帧模拟
func (p *PlayScene) Update(deltaTime float64) {
	p.frame++
	p.env.Sim.Step(stepMs(deltaTime), p.env.Input.Read())
}

// Draw 绘制场景、HUD 和覆盖层
func (p *PlayScene) Draw(screen *ebiten.Image) {
	p.env.Renderer.DrawWorld(screen, p.env.Sim.EntityManager())
	snap := p.env.Sim.Snapshot()
	render.DrawHUD(screen, snap)

	if snap.Phase == types.PhaseBoss {
		render.DrawWarning(screen, snap.WarningProgress, p.frame, snap.Width, snap.Height)
	}
	if p.env.Input.TouchSeen() {
		render.DrawTouchPad(screen, p.env.Input.Pad())
	}
	if snap.Paused {
		render.DrawPaused(screen, snap.Width, snap.Height)
	}
}
