package main

import (
	"context"
	"time"

	"github.com/decker502/galaxy-defender/internal/logging"
	"github.com/decker502/galaxy-defender/internal/synth"
	"github.com/decker502/galaxy-defender/pkg/game"
	"github.com/decker502/galaxy-defender/pkg/sim"
	"github.com/decker502/galaxy-defender/pkg/termview"
	"github.com/decker502/galaxy-defender/pkg/types"
	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
)

const (
	frameInterval = 16 * time.Millisecond
	// demoRestart 演示模式结束后自动重开的等待时间
	demoRestart = 3 * time.Second
)

// terminal 终端前端：单线程帧循环 + 一个事件轮询 goroutine
type terminal struct {
	screen  tcell.Screen
	sim     *sim.Simulation
	view    *termview.View
	speaker *synth.Speaker
	logger  zerolog.Logger

	hold         *termview.KeyHold
	pausePending bool

	demo      bool
	autopilot *sim.Autopilot
	idleSince time.Time
}

func newTerminal(screen tcell.Screen, s *sim.Simulation, view *termview.View, sp *synth.Speaker, logger zerolog.Logger) *terminal {
	return &terminal{
		screen:    screen,
		sim:       s,
		view:      view,
		speaker:   sp,
		logger:    logging.Component(logger, "term"),
		hold:      termview.NewKeyHold(),
		autopilot: sim.NewAutopilot(),
	}
}

// pollEvents 把 tcell 事件转发到通道，直到屏幕关闭或 ctx 取消
func pollEvents(ctx context.Context, screen tcell.Screen, out chan<- tcell.Event) {
	defer close(out)
	for {
		ev := screen.PollEvent()
		if ev == nil {
			// Fini 之后 PollEvent 返回 nil
			return
		}
		select {
		case out <- ev:
		case <-ctx.Done():
			return
		}
	}
}

func (t *terminal) loop(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 64)
	go pollEvents(ctx, t.screen, events)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !t.handleEvent(ev, time.Now()) {
				return nil
			}

		case now := <-ticker.C:
			dt := float64(now.Sub(last)) / float64(time.Millisecond)
			last = now
			t.frame(now, dt)
		}
	}
}

// handleEvent 返回 false 表示退出
func (t *terminal) handleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		t.screen.Sync()
		cols, rows := t.screen.Size()
		t.sim.Resize(t.view.FieldSize(cols, rows))
	case *tcell.EventKey:
		return t.handleAction(termview.ActionFor(ev.Key(), ev.Rune()), now)
	}
	return true
}

func (t *terminal) handleAction(a termview.Action, now time.Time) bool {
	switch a {
	case termview.ActionQuit:
		return false
	case termview.ActionMute:
		t.logger.Debug().Bool("muted", t.speaker.ToggleMute()).Msg("toggle mute")
		return true
	}

	switch t.sim.Phase() {
	case types.PhaseStart, types.PhaseGameOver:
		if a == termview.ActionConfirm {
			t.sim.Start()
		}
	case types.PhaseShop:
		t.handleShop(a)
	default:
		switch a {
		case termview.ActionPause:
			t.pausePending = true
		case termview.ActionLeft:
			t.hold.Release(termview.ActionRight)
			t.hold.Press(a, now)
		case termview.ActionRight:
			t.hold.Release(termview.ActionLeft)
			t.hold.Press(a, now)
		case termview.ActionFire:
			t.hold.Press(a, now)
		}
	}
	return true
}

func (t *terminal) handleShop(a termview.Action) {
	switch a {
	case termview.ActionConfirm:
		if err := t.sim.LeaveShop(); err != nil {
			t.logger.Warn().Err(err).Msg("leave shop")
		}
	case termview.ActionBuy1, termview.ActionBuy2, termview.ActionBuy3, termview.ActionBuy4:
		kind := game.AllUpgrades[a-termview.ActionBuy1]
		if t.sim.UpgradeCost(kind) <= 0 {
			return
		}
		if _, err := t.sim.Purchase(kind); err != nil {
			t.logger.Debug().Err(err).Stringer("upgrade", kind).Msg("purchase rejected")
		}
	}
}

func (t *terminal) frame(now time.Time, dtMs float64) {
	var in types.Input
	if t.demo {
		in = t.demoInput(now)
	} else {
		in = t.hold.Input(now, t.pausePending)
	}
	t.pausePending = false

	t.sim.Step(dtMs, in)
	t.view.Draw(t.screen, t.sim)
	t.screen.Show()
}

// demoInput 自动驾驶：菜单和结算等待后重开，商店自动购买
func (t *terminal) demoInput(now time.Time) types.Input {
	switch t.sim.Phase() {
	case types.PhaseStart, types.PhaseGameOver:
		if t.idleSince.IsZero() {
			t.idleSince = now
		}
		if now.Sub(t.idleSince) >= demoRestart {
			t.idleSince = time.Time{}
			t.sim.Start()
		}
		return types.Input{}
	case types.PhaseShop:
		if _, err := sim.AutoShop(t.sim); err != nil {
			t.logger.Warn().Err(err).Msg("autoshop")
		}
		return types.Input{}
	}
	return t.autopilot.Decide(t.sim)
}
