package render

import (
	"reflect"
	"testing"

	"github.com/decker502/galaxy-defender/pkg/sim"
	"github.com/decker502/galaxy-defender/pkg/types"
)

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		ms   float64
		want string
	}{
		{0, "0:00"},
		{999, "0:00"},
		{61000, "1:01"},
		{3599000, "59:59"},
		{-5, "0:00"},
	}
	for _, tt := range tests {
		if got := FormatElapsed(tt.ms); got != tt.want {
			t.Errorf("FormatElapsed(%v) = %q, want %q", tt.ms, got, tt.want)
		}
	}
}

func TestStatusLines(t *testing.T) {
	snap := sim.Snapshot{Score: 1200, HighScore: 5000, Wave: 3, Coins: 40, ElapsedMs: 75000}

	got := StatusLines(snap)
	want := []string{"SCORE 1200", "HIGH  5000", "WAVE  3", "TIME  1:15"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("without shop: %q, want %q", got, want)
	}

	snap.HasShop = true
	got = StatusLines(snap)
	if len(got) != 5 || got[3] != "COINS 40" {
		t.Errorf("with shop should show coins: %q", got)
	}
}

func TestPowerUpTimers(t *testing.T) {
	snap := sim.Snapshot{Shield: 600, TripleShot: 1}
	got := PowerUpTimers(snap)
	want := []string{"SHIELD 10s", "TRIPLE 1s"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("PowerUpTimers = %q, want %q", got, want)
	}
	if got := PowerUpTimers(sim.Snapshot{}); len(got) != 0 {
		t.Errorf("no active power-ups expected, got %q", got)
	}
}

func TestBarFill(t *testing.T) {
	tests := []struct {
		frac, want float64
	}{
		{0.5, 80},
		{-1, 0},
		{2, 160},
	}
	for _, tt := range tests {
		if got := BarFill(160, tt.frac); got != tt.want {
			t.Errorf("BarFill(160, %v) = %v, want %v", tt.frac, got, tt.want)
		}
	}
}

func TestPlayerVisible(t *testing.T) {
	if !PlayerVisible(0) {
		t.Error("player should be visible without invulnerability")
	}
	// 每 4 帧切换一次
	if !PlayerVisible(3) || PlayerVisible(4) || PlayerVisible(7) || !PlayerVisible(8) {
		t.Error("unexpected blink pattern")
	}
}

func TestBossFade(t *testing.T) {
	if got := BossFade(0, 120); got != 1 {
		t.Errorf("BossFade at start = %v, want 1", got)
	}
	if got := BossFade(60, 120); got != 0.5 {
		t.Errorf("BossFade halfway = %v, want 0.5", got)
	}
	if got := BossFade(200, 120); got != 0 {
		t.Errorf("BossFade past end = %v, want 0", got)
	}
	if got := BossFade(10, 0); got != 0 {
		t.Errorf("BossFade with no frames = %v, want 0", got)
	}
}

func TestPowerUpPalette(t *testing.T) {
	seen := map[string]bool{}
	for _, pt := range []types.PowerUpType{types.PowerUpRapidFire, types.PowerUpShield, types.PowerUpTripleShot, types.PowerUpHeal} {
		label := PowerUpLabel(pt)
		if seen[label] {
			t.Errorf("duplicate label %q for %v", label, pt)
		}
		seen[label] = true
	}
	if HealthColor(0.1) != HealthLow || HealthColor(0.9) != HealthGood {
		t.Error("HealthColor thresholds wrong")
	}
}
