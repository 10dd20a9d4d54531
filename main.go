package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/decker502/galaxy-defender/internal/logging"
	"github.com/decker502/galaxy-defender/pkg/app"
	"github.com/decker502/galaxy-defender/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "galaxy-defender:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := pflag.NewFlagSet("galaxy-defender", pflag.ContinueOnError)
	config.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	v := config.NewViper()
	if err := config.BindFlags(v, fs); err != nil {
		return err
	}
	cfg, err := config.LoadAppConfig(v)
	if err != nil {
		return err
	}

	logger := logging.New(cfg.Verbose, os.Stderr)

	gameApp, err := app.NewApp(app.Config{App: cfg, Logger: logger})
	if err != nil {
		return fmt.Errorf("游戏初始化失败: %w", err)
	}
	defer func() {
		if err := gameApp.Close(); err != nil {
			logger.Warn().Err(err).Msg("shutdown")
		}
	}()

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("Galaxy Defender")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.Fullscreen)

	// 主循环：ebiten 反复调用 Update 和 Draw，直到窗口关闭
	if err := ebiten.RunGame(gameApp); err != nil {
		return fmt.Errorf("game loop: %w", err)
	}
	return nil
}
