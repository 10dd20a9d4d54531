package config

import (
	"strings"
	"testing"

	"github.com/decker502/galaxy-defender/pkg/types"
)

func TestProfileNames(t *testing.T) {
	names := ProfileNames()
	want := []string{"arcade", "classic", "defender"}
	if len(names) != len(want) {
		t.Fatalf("Expected %d profiles, got %v", len(want), names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("profile[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestLoadBuiltinProfiles(t *testing.T) {
	for _, name := range ProfileNames() {
		t.Run(name, func(t *testing.T) {
			p, err := LoadProfile(name)
			if err != nil {
				t.Fatalf("LoadProfile(%q) failed: %v", name, err)
			}
			if p.Name != name {
				t.Errorf("Expected name %q, got %q", name, p.Name)
			}
			for _, v := range p.Enemies.Variants {
				if v.Kind().String() != strings.ToUpper(v.Variant) {
					t.Errorf("variant %q parsed as %v", v.Variant, v.Kind())
				}
			}
			if len(p.PowerUps.Kinds()) != len(p.PowerUps.Types) {
				t.Errorf("power-up kinds not parsed: %v", p.PowerUps.Kinds())
			}
		})
	}
}

func TestDefenderProfileValues(t *testing.T) {
	p, err := LoadProfile("")
	if err != nil {
		t.Fatalf("LoadProfile default failed: %v", err)
	}
	if p.Name != DefaultProfile {
		t.Fatalf("Expected default profile %q, got %q", DefaultProfile, p.Name)
	}

	if p.Player.Accel != 1.8 || p.Player.Damping != 0.86 || p.Player.Width != 40 {
		t.Errorf("unexpected movement tuning: %+v", p.Player)
	}
	if p.Waves.DefeatsPerWave != 15 || p.Waves.Gate != GateDefeats {
		t.Errorf("unexpected wave gate: %+v", p.Waves)
	}
	if p.Boss.BaseHP != 150 || p.Boss.HPPerWave != 100 {
		t.Errorf("unexpected boss hp: base=%d perWave=%d", p.Boss.BaseHP, p.Boss.HPPerWave)
	}
	if _, ok := p.Enemies.Variant(types.EnemyScout); !ok {
		t.Error("defender profile should include SCOUT")
	}
	if !p.HasShop() {
		t.Error("defender profile should enable the shop")
	}
}

func TestClassicProfileHasNoScout(t *testing.T) {
	p, err := LoadProfile("classic")
	if err != nil {
		t.Fatalf("LoadProfile failed: %v", err)
	}
	if _, ok := p.Enemies.Variant(types.EnemyScout); ok {
		t.Error("classic profile should not include SCOUT")
	}
	if p.Waves.Gate != GateScore {
		t.Errorf("classic profile should gate bosses by score, got %q", p.Waves.Gate)
	}
	if p.Player.HUD != "lives" {
		t.Errorf("classic profile should use lives HUD, got %q", p.Player.HUD)
	}
}

func TestLoadProfile_Unknown(t *testing.T) {
	_, err := LoadProfile("nightmare")
	if err == nil {
		t.Fatal("Expected error for unknown profile")
	}
	if !strings.Contains(err.Error(), "defender") {
		t.Errorf("error should list available profiles: %v", err)
	}
}

func TestParseProfile_Validation(t *testing.T) {
	base, err := profilesFS.ReadFile("profiles/defender.yaml")
	if err != nil {
		t.Fatalf("read embedded profile: %v", err)
	}

	tests := []struct {
		name    string
		replace [2]string
		errPart string
	}{
		{"阻尼越界", [2]string{"damping: 0.86", "damping: 1.2"}, "damping"},
		{"未知变体", [2]string{"variant: ZIGZAG", "variant: SPINNER"}, "SPINNER"},
		{"未知门槛", [2]string{"gate: defeats", "gate: time"}, "waves.gate"},
		{"未知道具", [2]string{"HEAL]", "LASER]"}, "LASER"},
		{"HUD 类型错误", [2]string{"hud: bar", "hud: dots"}, "hud"},
		{"Boss 撞击伤害不高于敌人", [2]string{"contactDamage: 40", "contactDamage: 20"}, "boss.contactDamage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := strings.Replace(string(base), tt.replace[0], tt.replace[1], 1)
			if data == string(base) {
				t.Fatalf("replacement %q not found in profile", tt.replace[0])
			}
			_, err := ParseProfile([]byte(data))
			if err == nil {
				t.Fatal("Expected validation error")
			}
			if !strings.Contains(err.Error(), tt.errPart) {
				t.Errorf("error %q should mention %q", err, tt.errPart)
			}
		})
	}
}

func TestParseProfile_MalformedYAML(t *testing.T) {
	if _, err := ParseProfile([]byte("name: [broken")); err == nil {
		t.Fatal("Expected YAML parse error")
	}
}
