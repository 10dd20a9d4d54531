package game

import (
	"errors"
	"fmt"

	"github.com/decker502/galaxy-defender/pkg/config"
	"github.com/decker502/galaxy-defender/pkg/event"
	"github.com/decker502/galaxy-defender/pkg/types"
)

// 商店购买失败的原因
var (
	ErrInsufficientCoins = errors.New("insufficient coins")
	ErrMaxLevel          = errors.New("upgrade already at max level")
	ErrNotInShop         = errors.New("shop is not open")
	ErrNotForSale        = errors.New("upgrade not sold in this profile")
)

// GameState 一局游戏的会话状态
//
// UI 通过只读字段和事件总线感知变化，不直接修改这些字段
type GameState struct {
	Phase    types.Phase
	Paused   bool
	Score    int
	Coins    int
	Wave     int // 从 1 开始
	Defeats  int // 本局累计击败的普通敌人数
	Bosses   int // 本局击败的 Boss 数
	Upgrades Upgrades

	ElapsedMs float64 // PLAYING 阶段累计的游戏时间

	bus *event.Dispatcher
}

// NewGameState 创建处于主菜单阶段的会话状态
// bus 可为 nil
func NewGameState(bus *event.Dispatcher) *GameState {
	gs := &GameState{bus: bus}
	gs.Reset()
	gs.Phase = types.PhaseStart
	return gs
}

// Reset 清空本局数据（不改变阶段）
func (gs *GameState) Reset() {
	gs.Paused = false
	gs.Score = 0
	gs.Coins = 0
	gs.Wave = 1
	gs.Defeats = 0
	gs.Bosses = 0
	gs.Upgrades = Upgrades{}
	gs.ElapsedMs = 0
}

// SetPhase 切换阶段并发布 PhaseChanged
func (gs *GameState) SetPhase(p types.Phase) {
	if gs.Phase == p {
		return
	}
	from := gs.Phase
	gs.Phase = p
	gs.bus.Publish(event.PhaseChanged, event.PhaseData{From: from, To: p})
}

// AddScore 增加分数，负数忽略
func (gs *GameState) AddScore(n int) {
	if n <= 0 {
		return
	}
	gs.Score += n
	gs.bus.Publish(event.ScoreChanged, event.ValueData{Value: gs.Score, Delta: n})
}

// AddCoins 增加金币，负数忽略
func (gs *GameState) AddCoins(n int) {
	if n <= 0 {
		return
	}
	gs.Coins += n
	gs.bus.Publish(event.CoinsChanged, event.ValueData{Value: gs.Coins, Delta: n})
}

// RecordDefeat 记录一次普通敌人击败
func (gs *GameState) RecordDefeat() {
	gs.Defeats++
}

// AdvanceWave 波次 +1（Boss 被击败时调用）
func (gs *GameState) AdvanceWave() {
	gs.Wave++
	gs.Bosses++
	gs.bus.Publish(event.WaveAdvanced, event.ValueData{Value: gs.Wave, Delta: 1})
}

// BossDue 是否达到当前波次的 Boss 门槛
func (gs *GameState) BossDue(waves config.WaveConfig) bool {
	switch waves.Gate {
	case config.GateScore:
		return gs.Score >= gs.Wave*waves.ScoreGate
	default:
		return gs.Defeats >= gs.Wave*waves.DefeatsPerWave
	}
}

// Purchase 在商店中购买一级升级
//
// 返回：
//   - int: 实际花费
//   - error: ErrNotInShop / ErrNotForSale / ErrMaxLevel / ErrInsufficientCoins（可用 errors.Is 判断）
func (gs *GameState) Purchase(kind UpgradeKind, econ config.EconomyConfig) (int, error) {
	if gs.Phase != types.PhaseShop {
		return 0, ErrNotInShop
	}
	if baseCost(kind, econ) <= 0 {
		return 0, fmt.Errorf("%s: %w", kind, ErrNotForSale)
	}
	level := gs.Upgrades.Level(kind)
	if level >= econ.MaxLevel {
		return 0, fmt.Errorf("%s level %d: %w", kind, level, ErrMaxLevel)
	}
	cost := gs.Upgrades.UpgradeCost(kind, econ)
	if gs.Coins < cost {
		return 0, fmt.Errorf("%s costs %d, have %d: %w", kind, cost, gs.Coins, ErrInsufficientCoins)
	}

	gs.Coins -= cost
	newLevel := gs.Upgrades.increment(kind)
	gs.bus.Publish(event.CoinsChanged, event.ValueData{Value: gs.Coins, Delta: -cost})
	gs.bus.Publish(event.UpgradePurchased, event.UpgradeData{Kind: kind.String(), Level: newLevel, Cost: cost})
	return cost, nil
}

// CanAfford 当前金币是否足够购买下一级且未满级（不出售的升级始终为 false）
func (gs *GameState) CanAfford(kind UpgradeKind, econ config.EconomyConfig) bool {
	return baseCost(kind, econ) > 0 && gs.Upgrades.Level(kind) < econ.MaxLevel && gs.Coins >= gs.Upgrades.UpgradeCost(kind, econ)
}
