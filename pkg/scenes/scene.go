// Package scenes 提供菜单、游戏、商店和结算场景
package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game scene (e.g., main menu, gameplay, shop).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Enterable 是一个可选接口，场景被切换为当前场景时调用 OnEnter
type Enterable interface {
	OnEnter()
}

// Resizable 是一个可选接口，窗口尺寸变化时调用
type Resizable interface {
	OnResize(width, height float64)
}
