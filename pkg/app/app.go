// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"

	"github.com/decker502/galaxy-defender/internal/logging"
	"github.com/decker502/galaxy-defender/internal/synth"
	"github.com/decker502/galaxy-defender/pkg/audio"
	"github.com/decker502/galaxy-defender/pkg/config"
	"github.com/decker502/galaxy-defender/pkg/event"
	"github.com/decker502/galaxy-defender/pkg/game"
	"github.com/decker502/galaxy-defender/pkg/input"
	"github.com/decker502/galaxy-defender/pkg/render"
	"github.com/decker502/galaxy-defender/pkg/scenes"
	"github.com/decker502/galaxy-defender/pkg/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"
)

// Config 定义应用启动配置
type Config struct {
	App    *config.AppConfig
	Logger zerolog.Logger
	// Store 为 nil 时按 App.SaveApp 打开 gdata 存储
	Store game.Store
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sim          *sim.Simulation
	sceneManager *scenes.SceneManager
	audio        *audio.AudioManager
	bus          *event.Dispatcher
	sinkID       event.SubscriptionID
	logger       zerolog.Logger

	width, height int
	audioTried    bool

	windowWidth, windowHeight int
	pendingWindowSizeReset    bool // 延迟设置窗口大小标志
	windowSizeResetCountdown  int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
// 音频设备在第一次用户操作时才打开
func NewApp(cfg Config) (*App, error) {
	if cfg.App == nil {
		return nil, fmt.Errorf("app: config is required")
	}
	logger := logging.Component(cfg.Logger, "app")

	profile, err := cfg.App.LoadSelectedProfile()
	if err != nil {
		return nil, fmt.Errorf("调参档案加载失败: %w", err)
	}

	store := cfg.Store
	if store == nil {
		store, err = game.OpenStore(cfg.App.SaveApp)
		if err != nil {
			logger.Warn().Err(err).Msg("storage unavailable, high score kept in memory only")
			store = nil
		}
	}
	highScore := game.NewHighScoreManager(store, cfg.Logger)

	bus := event.NewDispatcher()
	if cfg.App.Verbose {
		logging.AttachEventLogger(bus, cfg.Logger)
	}

	w, h := cfg.App.Width, cfg.App.Height
	s, err := sim.New(profile, sim.Options{
		Width:     float64(w),
		Height:    float64(h),
		Seed:      uint64(cfg.App.Seed),
		Bus:       bus,
		HighScore: highScore,
		Logger:    cfg.Logger,
		Metrics:   true,
	})
	if err != nil {
		return nil, err
	}

	am := audio.NewAudioManager(cfg.App.Volume, cfg.App.Mute, cfg.Logger)
	env := &scenes.Env{
		Sim:      s,
		Input:    input.NewReader(float64(w), float64(h)),
		Renderer: render.NewRenderer(profile),
		Audio:    am,
		Logger:   cfg.Logger,
	}

	sm := scenes.NewSceneManager(s, cfg.Logger)
	sm.Register(scenes.SceneMenu, scenes.NewMenuScene(env))
	sm.Register(scenes.ScenePlay, scenes.NewPlayScene(env))
	sm.Register(scenes.SceneShop, scenes.NewShopScene(env))
	sm.Register(scenes.SceneGameOver, scenes.NewGameOverScene(env))
	if err := sm.SwitchTo(scenes.SceneMenu); err != nil {
		return nil, err
	}

	logger.Info().Str("profile", profile.Name).Int("highScore", highScore.Best()).Msg("app initialized")
	return &App{
		sim:          s,
		sceneManager: sm,
		audio:        am,
		bus:          bus,
		sinkID:       synth.Attach(bus, am),
		logger:       logger,
		width:        w,
		height:       h,
		windowWidth:  w,
		windowHeight: h,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.windowWidth, a.windowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
		} else {
			a.windowWidth, a.windowHeight = ebiten.WindowSize()
			ebiten.SetFullscreen(true)
		}
	}

	if !a.audioTried && input.AnyGesture() {
		a.audioTried = true
		// 失败已由 AudioManager 记录，游戏继续静音运行
		_ = a.audio.Init()
	}
	if input.MutePressed() {
		a.logger.Debug().Bool("muted", a.audio.ToggleMute()).Msg("toggle mute")
	}

	a.sceneManager.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout 逻辑尺寸与窗口尺寸一致，窗口变化时重建星空和触屏布局
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		// 最小化时保持上一次的尺寸
		return a.width, a.height
	}
	if outsideWidth != a.width || outsideHeight != a.height {
		a.width, a.height = outsideWidth, outsideHeight
		a.sim.Resize(float64(outsideWidth), float64(outsideHeight))
		a.sceneManager.Resize(float64(outsideWidth), float64(outsideHeight))
		a.logger.Debug().Int("width", outsideWidth).Int("height", outsideHeight).Msg("resized")
	}
	return a.width, a.height
}

// Simulation 返回模拟（测试和调试用）
func (a *App) Simulation() *sim.Simulation {
	return a.sim
}

// SceneManager 返回场景管理器
func (a *App) SceneManager() *scenes.SceneManager {
	return a.sceneManager
}

// Close 注销事件订阅和指标
func (a *App) Close() error {
	a.bus.Unsubscribe(a.sinkID)
	return a.sim.Close()
}
