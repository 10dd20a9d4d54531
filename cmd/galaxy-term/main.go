// galaxy-term 在终端里运行 Galaxy Defender
//
// 与窗口版共用同一个模拟，渲染和输入换成 tcell，音效通过 beep speaker 输出。
//
// 用法:
//
//	go run ./cmd/galaxy-term [--profile classic] [--demo] [--log-file galaxy.log]
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/decker502/galaxy-defender/internal/logging"
	"github.com/decker502/galaxy-defender/internal/synth"
	"github.com/decker502/galaxy-defender/pkg/config"
	"github.com/decker502/galaxy-defender/pkg/event"
	"github.com/decker502/galaxy-defender/pkg/game"
	"github.com/decker502/galaxy-defender/pkg/sim"
	"github.com/decker502/galaxy-defender/pkg/termview"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "galaxy-term:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := pflag.NewFlagSet("galaxy-term", pflag.ContinueOnError)
	config.RegisterFlags(fs)
	demo := fs.Bool("demo", false, "let the autopilot play")
	logFile := fs.String("log-file", "", "write logs to this file (the terminal is in use)")
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

	var logOut io.Writer = io.Discard
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := logging.New(cfg.Verbose, logOut)

	profile, err := cfg.LoadSelectedProfile()
	if err != nil {
		return err
	}

	store, err := game.OpenStore(cfg.SaveApp)
	if err != nil {
		logger.Warn().Err(err).Msg("storage unavailable, high score kept in memory only")
		store = nil
	}
	highScore := game.NewHighScoreManager(store, logger)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	view := termview.NewView()
	cols, rows := screen.Size()
	w, h := view.FieldSize(cols, rows)

	bus := event.NewDispatcher()
	if cfg.Verbose {
		logging.AttachEventLogger(bus, logger)
	}
	s, err := sim.New(profile, sim.Options{
		Width:     w,
		Height:    h,
		Seed:      uint64(cfg.Seed),
		Bus:       bus,
		HighScore: highScore,
		Logger:    logger,
	})
	if err != nil {
		return err
	}
	defer s.Close()

	sp := synth.NewSpeaker(synth.SampleRate, cfg.Volume)
	if !cfg.Mute {
		if err := sp.Init(); err != nil {
			// 没有音频设备时继续静音运行
			logger.Warn().Err(err).Msg("audio unavailable")
		}
	}
	defer sp.Close()
	sinkID := synth.Attach(bus, sp)
	defer bus.Unsubscribe(sinkID)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	t := newTerminal(screen, s, view, sp, logger)
	t.demo = *demo
	return t.loop(ctx)
}
