// verify_balance 无界面批量运行自动驾驶，输出各调参档案的波次和得分统计
//
// 用法:
//
//	go run ./cmd/verify_balance --runs 20 --minutes 5
//	go run ./cmd/verify_balance --profile classic --seed 42 --verbose
package main

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/decker502/galaxy-defender/internal/logging"
	"github.com/decker502/galaxy-defender/pkg/config"
	"github.com/decker502/galaxy-defender/pkg/event"
	"github.com/decker502/galaxy-defender/pkg/sim"
	"github.com/decker502/galaxy-defender/pkg/types"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
)

const stepMs = 1000.0 / 60

// runResult 单局结果
type runResult struct {
	Seed       uint64
	Wave       int
	Score      int
	Defeats    int
	Bosses     int
	Coins      int
	Purchases  int
	DurationMs float64
	Died       bool
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "verify_balance:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := pflag.NewFlagSet("verify_balance", pflag.ContinueOnError)
	profile := fs.String("profile", "", "profile to run (empty runs all built-in profiles)")
	runs := fs.Int("runs", 10, "runs per profile")
	minutes := fs.Float64("minutes", 3, "simulated minutes per run")
	seed := fs.Uint64("seed", 1, "first seed; run i uses seed+i")
	verbose := fs.Bool("verbose", false, "log every gameplay event")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *runs <= 0 || *minutes <= 0 {
		return fmt.Errorf("runs and minutes must be positive")
	}

	logger := zerolog.Nop()
	if *verbose {
		logger = logging.New(true, os.Stderr)
	}

	names := config.ProfileNames()
	if *profile != "" {
		names = []string{*profile}
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PROFILE\tRUNS\tDIED\tWAVE(avg/max)\tSCORE(avg/median)\tBOSSES\tCOINS\tBUYS")
	for _, name := range names {
		p, err := config.LoadProfile(name)
		if err != nil {
			return err
		}
		results := make([]runResult, 0, *runs)
		for i := 0; i < *runs; i++ {
			r, err := simulate(p, *seed+uint64(i), *minutes*60*1000, *verbose, logger)
			if err != nil {
				return fmt.Errorf("%s seed %d: %w", name, *seed+uint64(i), err)
			}
			results = append(results, r)
		}
		fmt.Fprintln(tw, summarize(name, results))
	}
	return tw.Flush()
}

// simulate 用自动驾驶跑一局，直到死亡或达到时长上限
func simulate(p *config.Profile, seed uint64, limitMs float64, verbose bool, logger zerolog.Logger) (runResult, error) {
	bus := event.NewDispatcher()
	if verbose {
		logging.AttachEventLogger(bus, logger)
	}
	s, err := sim.New(p, sim.Options{
		Width:  config.DefaultWindowWidth,
		Height: config.DefaultWindowHeight,
		Seed:   seed,
		Bus:    bus,
		Logger: logger,
	})
	if err != nil {
		return runResult{}, err
	}
	defer s.Close()

	res := runResult{Seed: seed}
	bus.SubscribeFunc(event.EnemyDestroyed, func(event.Event) { res.Defeats++ })
	bus.SubscribeFunc(event.BossDefeated, func(event.Event) { res.Bosses++ })
	bus.SubscribeFunc(event.UpgradePurchased, func(event.Event) { res.Purchases++ })

	pilot := sim.NewAutopilot()
	s.Start()
	for res.DurationMs < limitMs {
		switch s.Phase() {
		case types.PhaseGameOver:
			res.Died = true
			return finish(res, s), nil
		case types.PhaseShop:
			if _, err := sim.AutoShop(s); err != nil {
				return res, err
			}
			continue
		}
		s.Step(stepMs, pilot.Decide(s))
		res.DurationMs += stepMs
	}
	return finish(res, s), nil
}

func finish(res runResult, s *sim.Simulation) runResult {
	snap := s.Snapshot()
	res.Wave = snap.Wave
	res.Score = snap.Score
	res.Coins = snap.Coins
	return res
}

func summarize(name string, results []runResult) string {
	var died, maxWave, waveSum, scoreSum, bosses, coins, buys int
	scores := make([]int, 0, len(results))
	for _, r := range results {
		if r.Died {
			died++
		}
		waveSum += r.Wave
		maxWave = max(maxWave, r.Wave)
		scoreSum += r.Score
		bosses += r.Bosses
		coins += r.Coins
		buys += r.Purchases
		scores = append(scores, r.Score)
	}
	sort.Ints(scores)
	n := len(results)
	return fmt.Sprintf("%s\t%d\t%d\t%.1f/%d\t%d/%d\t%d\t%d\t%d",
		name, n, died,
		float64(waveSum)/float64(n), maxWave,
		scoreSum/n, scores[n/2],
		bosses, coins, buys)
}
