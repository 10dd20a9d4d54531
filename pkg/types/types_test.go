package types

import "testing"

func TestParseEnemyVariant(t *testing.T) {
	tests := []struct {
		in      string
		want    EnemyVariant
		wantErr bool
	}{
		{"BASIC", EnemyBasic, false},
		{"sine", EnemySine, false},
		{" Diver ", EnemyDiver, false},
		{"ZIGZAG", EnemyZigzag, false},
		{"scout", EnemyScout, false},
		{"kamikaze", EnemyBasic, true},
	}

	for _, tt := range tests {
		got, err := ParseEnemyVariant(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseEnemyVariant(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseEnemyVariant(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParsePowerUpType_RoundTrip(t *testing.T) {
	for _, pt := range []PowerUpType{PowerUpRapidFire, PowerUpShield, PowerUpTripleShot, PowerUpHeal} {
		got, err := ParsePowerUpType(pt.String())
		if err != nil {
			t.Fatalf("ParsePowerUpType(%q) failed: %v", pt.String(), err)
		}
		if got != pt {
			t.Errorf("expected %v, got %v", pt, got)
		}
	}

	if _, err := ParsePowerUpType("LASER"); err == nil {
		t.Error("expected error for unknown power-up")
	}
}

func TestStringOutOfRange(t *testing.T) {
	if got := EnemyVariant(42).String(); got != "EnemyVariant(42)" {
		t.Errorf("unexpected string %q", got)
	}
	if got := BossState(-1).String(); got != "BossState(-1)" {
		t.Errorf("unexpected string %q", got)
	}
	if got := PhaseShop.String(); got != "SHOP" {
		t.Errorf("unexpected string %q", got)
	}
}
