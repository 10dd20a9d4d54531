package scenes

import (
	"fmt"

	"github.com/decker502/galaxy-defender/internal/logging"
	"github.com/decker502/galaxy-defender/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

// SceneID 场景标识
type SceneID int

const (
	SceneNone SceneID = iota
	SceneMenu
	ScenePlay
	SceneShop
	SceneGameOver
)

func (id SceneID) String() string {
	switch id {
	case SceneMenu:
		return "menu"
	case ScenePlay:
		return "play"
	case SceneShop:
		return "shop"
	case SceneGameOver:
		return "gameover"
	}
	return "none"
}

// SceneForPhase 返回游戏阶段对应的场景
// BOSS 警告过场仍在游戏场景中绘制
func SceneForPhase(p types.Phase) SceneID {
	switch p {
	case types.PhasePlaying, types.PhaseBoss:
		return ScenePlay
	case types.PhaseShop:
		return SceneShop
	case types.PhaseGameOver:
		return SceneGameOver
	}
	return SceneMenu
}

// PhaseSource 提供当前游戏阶段
type PhaseSource interface {
	Phase() types.Phase
}

// SceneManager manages the game's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
//
// 当前场景跟随模拟的阶段：每次 Update 之后，如果阶段变化就切换到对应场景。
type SceneManager struct {
	scenes    map[SceneID]Scene
	current   Scene
	currentID SceneID
	phases    PhaseSource
	logger    zerolog.Logger
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager(phases PhaseSource, logger zerolog.Logger) *SceneManager {
	return &SceneManager{
		scenes: make(map[SceneID]Scene),
		phases: phases,
		logger: logging.Component(logger, "scenes"),
	}
}

// Register 注册场景
func (sm *SceneManager) Register(id SceneID, scene Scene) {
	sm.scenes[id] = scene
}

// SwitchTo changes the active scene to the registered scene with the given id.
func (sm *SceneManager) SwitchTo(id SceneID) error {
	scene, ok := sm.scenes[id]
	if !ok {
		return fmt.Errorf("scene %s not registered", id)
	}
	sm.current = scene
	sm.currentID = id
	if e, ok := scene.(Enterable); ok {
		e.OnEnter()
	}
	sm.logger.Debug().Stringer("scene", id).Msg("switched scene")
	return nil
}

// Current 返回当前活动的场景，没有时返回 nil
func (sm *SceneManager) Current() Scene {
	return sm.current
}

// CurrentID 当前场景标识
func (sm *SceneManager) CurrentID() SceneID {
	return sm.currentID
}

// Update updates the currently active scene, then follows phase changes.
// deltaTime is the time elapsed since the last update in seconds.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
	sm.sync()
}

func (sm *SceneManager) sync() {
	if sm.phases == nil {
		return
	}
	want := SceneForPhase(sm.phases.Phase())
	if want == sm.currentID {
		return
	}
	if err := sm.SwitchTo(want); err != nil {
		sm.logger.Error().Err(err).Msg("cannot follow phase change")
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}

// Resize 通知所有实现 Resizable 的场景
func (sm *SceneManager) Resize(width, height float64) {
	for _, scene := range sm.scenes {
		if r, ok := scene.(Resizable); ok {
			r.OnResize(width, height)
		}
	}
}
