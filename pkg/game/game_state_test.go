package game

import (
	"errors"
	"testing"

	"github.com/decker502/galaxy-defender/pkg/config"
	"github.com/decker502/galaxy-defender/pkg/event"
	"github.com/decker502/galaxy-defender/pkg/types"
)

var testEconomy = config.EconomyConfig{
	DamageCost:    50,
	FireRateCost:  40,
	SpeedCost:     30,
	MaxHealthCost: 60,
	MaxLevel:      3,
}

func TestNewGameState(t *testing.T) {
	gs := NewGameState(nil)
	if gs.Phase != types.PhaseStart {
		t.Errorf("Expected START phase, got %v", gs.Phase)
	}
	if gs.Wave != 1 {
		t.Errorf("Expected wave 1, got %d", gs.Wave)
	}
	if gs.Score != 0 || gs.Coins != 0 {
		t.Errorf("Expected zero score and coins, got %d/%d", gs.Score, gs.Coins)
	}
}

func TestAwardsAreMonotonic(t *testing.T) {
	bus := event.NewDispatcher()
	var deltas []int
	bus.SubscribeFunc(event.ScoreChanged, func(e event.Event) {
		deltas = append(deltas, e.Data.(event.ValueData).Delta)
	})

	gs := NewGameState(bus)
	gs.AddScore(100)
	gs.AddScore(-50) // 忽略
	gs.AddScore(0)   // 忽略
	gs.AddScore(2000)

	if gs.Score != 2100 {
		t.Errorf("Expected score 2100, got %d", gs.Score)
	}
	if len(deltas) != 2 || deltas[0] != 100 || deltas[1] != 2000 {
		t.Errorf("Unexpected ScoreChanged deltas: %v", deltas)
	}

	gs.AddCoins(-5)
	gs.AddCoins(3)
	if gs.Coins != 3 {
		t.Errorf("Expected 3 coins, got %d", gs.Coins)
	}
}

func TestSetPhase_PublishesOnce(t *testing.T) {
	bus := event.NewDispatcher()
	var changes []event.PhaseData
	bus.SubscribeFunc(event.PhaseChanged, func(e event.Event) {
		changes = append(changes, e.Data.(event.PhaseData))
	})

	gs := NewGameState(bus)
	gs.SetPhase(types.PhasePlaying)
	gs.SetPhase(types.PhasePlaying)
	gs.SetPhase(types.PhaseGameOver)

	if len(changes) != 2 {
		t.Fatalf("Expected 2 phase changes, got %d", len(changes))
	}
	if changes[0].From != types.PhaseStart || changes[0].To != types.PhasePlaying {
		t.Errorf("Unexpected first change: %+v", changes[0])
	}
}

func TestBossDue(t *testing.T) {
	defeats := config.WaveConfig{Gate: config.GateDefeats, DefeatsPerWave: 15}
	score := config.WaveConfig{Gate: config.GateScore, ScoreGate: 3000}

	tests := []struct {
		name    string
		waves   config.WaveConfig
		wave    int
		defeats int
		score   int
		want    bool
	}{
		{"第1波未达到击败数", defeats, 1, 14, 0, false},
		{"第1波达到击败数", defeats, 1, 15, 0, true},
		{"第2波需要累计30", defeats, 2, 29, 0, false},
		{"第2波累计30", defeats, 2, 30, 0, true},
		{"分数门槛未到", score, 1, 100, 2999, false},
		{"分数门槛达到", score, 1, 0, 3000, true},
		{"第3波分数门槛", score, 3, 0, 8999, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := NewGameState(nil)
			gs.Wave = tt.wave
			gs.Defeats = tt.defeats
			gs.Score = tt.score
			if got := gs.BossDue(tt.waves); got != tt.want {
				t.Errorf("BossDue() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPurchase(t *testing.T) {
	bus := event.NewDispatcher()
	var purchases []event.UpgradeData
	bus.SubscribeFunc(event.UpgradePurchased, func(e event.Event) {
		purchases = append(purchases, e.Data.(event.UpgradeData))
	})

	gs := NewGameState(bus)
	gs.SetPhase(types.PhaseShop)
	gs.Coins = 200

	// 价格线性递增：50, 100
	cost, err := gs.Purchase(UpgradeDamage, testEconomy)
	if err != nil || cost != 50 {
		t.Fatalf("first purchase: cost=%d err=%v", cost, err)
	}
	cost, err = gs.Purchase(UpgradeDamage, testEconomy)
	if err != nil || cost != 100 {
		t.Fatalf("second purchase: cost=%d err=%v", cost, err)
	}
	if gs.Upgrades.Damage != 2 || gs.Coins != 50 {
		t.Errorf("Expected damage 2 and 50 coins, got %d and %d", gs.Upgrades.Damage, gs.Coins)
	}

	// 第三级需要 150
	if _, err := gs.Purchase(UpgradeDamage, testEconomy); !errors.Is(err, ErrInsufficientCoins) {
		t.Errorf("Expected ErrInsufficientCoins, got %v", err)
	}
	if gs.Coins != 50 || gs.Upgrades.Damage != 2 {
		t.Error("failed purchase must not change state")
	}

	if len(purchases) != 2 || purchases[1].Level != 2 || purchases[1].Cost != 100 {
		t.Errorf("Unexpected purchase events: %+v", purchases)
	}
}

func TestPurchase_MaxLevel(t *testing.T) {
	gs := NewGameState(nil)
	gs.SetPhase(types.PhaseShop)
	gs.Coins = 10000

	for i := 0; i < testEconomy.MaxLevel; i++ {
		if _, err := gs.Purchase(UpgradeSpeed, testEconomy); err != nil {
			t.Fatalf("purchase %d failed: %v", i+1, err)
		}
	}
	if _, err := gs.Purchase(UpgradeSpeed, testEconomy); !errors.Is(err, ErrMaxLevel) {
		t.Errorf("Expected ErrMaxLevel, got %v", err)
	}
	if gs.CanAfford(UpgradeSpeed, testEconomy) {
		t.Error("CanAfford should be false at max level")
	}
	// 30 + 60 + 90
	if gs.Coins != 10000-180 {
		t.Errorf("Expected %d coins left, got %d", 10000-180, gs.Coins)
	}
}

func TestPurchase_NotInShop(t *testing.T) {
	gs := NewGameState(nil)
	gs.SetPhase(types.PhasePlaying)
	gs.Coins = 1000
	if _, err := gs.Purchase(UpgradeFireRate, testEconomy); !errors.Is(err, ErrNotInShop) {
		t.Errorf("Expected ErrNotInShop, got %v", err)
	}
}

// TestPurchase_NotForSale 基础价格为 0 的升级不出售，金币和等级都不变
func TestPurchase_NotForSale(t *testing.T) {
	econ := testEconomy
	econ.MaxHealthCost = 0

	gs := NewGameState(nil)
	gs.SetPhase(types.PhaseShop)
	gs.Coins = 500

	for i := 0; i < econ.MaxLevel+1; i++ {
		if _, err := gs.Purchase(UpgradeMaxHealth, econ); !errors.Is(err, ErrNotForSale) {
			t.Fatalf("purchase %d: expected ErrNotForSale, got %v", i+1, err)
		}
	}
	if gs.Coins != 500 || gs.Upgrades.MaxHealth != 0 {
		t.Errorf("Expected no change, got coins=%d level=%d", gs.Coins, gs.Upgrades.MaxHealth)
	}
	if gs.CanAfford(UpgradeMaxHealth, econ) {
		t.Error("CanAfford should be false for an upgrade that is not sold")
	}
	// 其它升级不受影响
	if _, err := gs.Purchase(UpgradeSpeed, econ); err != nil {
		t.Errorf("Speed purchase failed: %v", err)
	}
}

func TestUpgradeCost(t *testing.T) {
	u := Upgrades{FireRate: 2, MaxHealth: 1}
	if got := u.UpgradeCost(UpgradeFireRate, testEconomy); got != 120 {
		t.Errorf("FireRate level 3 cost = %d, want 120", got)
	}
	if got := u.UpgradeCost(UpgradeMaxHealth, testEconomy); got != 120 {
		t.Errorf("MaxHealth level 2 cost = %d, want 120", got)
	}
	if got := UpgradeKind(9).String(); got != "UpgradeKind(9)" {
		t.Errorf("unexpected name %q", got)
	}
}

func TestAdvanceWave(t *testing.T) {
	bus := event.NewDispatcher()
	got := 0
	bus.SubscribeFunc(event.WaveAdvanced, func(e event.Event) { got = e.Data.(event.ValueData).Value })

	gs := NewGameState(bus)
	gs.AdvanceWave()
	if gs.Wave != 2 || gs.Bosses != 1 || got != 2 {
		t.Errorf("Expected wave 2 after boss, got wave=%d bosses=%d event=%d", gs.Wave, gs.Bosses, got)
	}

	gs.Reset()
	if gs.Wave != 1 || gs.Bosses != 0 {
		t.Error("Reset should restore wave 1")
	}
}
