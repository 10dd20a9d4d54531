package systems

import (
	"math"
	"testing"

	"github.com/decker502/galaxy-defender/pkg/components"
	"github.com/decker502/galaxy-defender/pkg/ecs"
	"github.com/decker502/galaxy-defender/pkg/entities"
	"github.com/decker502/galaxy-defender/pkg/event"
	"github.com/decker502/galaxy-defender/pkg/types"
)

func TestCanTransition(t *testing.T) {
	all := []types.BossState{types.BossEntry, types.BossSpiral, types.BossHoming, types.BossCharge, types.BossDying}
	allowed := map[[2]types.BossState]bool{
		{types.BossEntry, types.BossSpiral}:  true,
		{types.BossSpiral, types.BossHoming}: true,
		{types.BossHoming, types.BossCharge}: true,
		{types.BossCharge, types.BossEntry}:  true,
		{types.BossSpiral, types.BossDying}:  true,
		{types.BossHoming, types.BossDying}:  true,
		{types.BossCharge, types.BossDying}:  true,
	}

	for _, from := range all {
		for _, to := range all {
			want := allowed[[2]types.BossState{from, to}]
			if got := CanTransition(from, to); got != want {
				t.Errorf("CanTransition(%v, %v) = %v, want %v", from, to, got, want)
			}
		}
	}

	if _, ok := NextBossState(types.BossDying); ok {
		t.Error("DYING must have no successor")
	}
}

func TestTransitionBoss_ResetsTimers(t *testing.T) {
	bc := &components.BossComponent{State: types.BossSpiral, StateTimer: 42, ShotTimer: 7}
	if !TransitionBoss(bc, types.BossHoming) {
		t.Fatal("SPIRAL -> HOMING should be allowed")
	}
	if bc.StateTimer != 0 || bc.ShotTimer != 0 {
		t.Errorf("timers not reset: %+v", *bc)
	}
	if TransitionBoss(bc, types.BossSpiral) {
		t.Error("HOMING -> SPIRAL should be rejected")
	}
	if bc.State != types.BossHoming {
		t.Errorf("rejected transition changed state to %v", bc.State)
	}
}

// TestBossCycle Boss 按 ENTRY→SPIRAL→HOMING→CHARGE→ENTRY 的顺序循环
func TestBossCycle(t *testing.T) {
	ctx := newTestContext(t, "defender")
	addPlayer(t, ctx)
	bid := entities.NewBoss(ctx.EM, ctx.Profile.Boss, ctx.Field.Width, 1)
	pos, _ := ecs.GetComponent[*components.PositionComponent](ctx.EM, bid)
	changes := recordEvents(ctx.Bus, event.BossStateChanged)

	sys := NewBossSystem(ctx)
	bw := ctx.Profile.Boss.Width
	for frame := 0; frame < 5000 && len(*changes) < 4; frame++ {
		sys.Update()
		if pos.X < 0 || pos.X > ctx.Field.Width-bw {
			t.Fatalf("frame %d: boss x=%v outside field", frame, pos.X)
		}
	}

	want := []types.BossState{types.BossSpiral, types.BossHoming, types.BossCharge, types.BossEntry}
	if len(*changes) != len(want) {
		t.Fatalf("Expected %d transitions, got %d", len(want), len(*changes))
	}
	for i, e := range *changes {
		if got := e.Data.(event.BossData).State; got != want[i] {
			t.Errorf("transition %d: got %v, want %v", i, got, want[i])
		}
	}
	if pos.Y != -ctx.Profile.Boss.Height {
		t.Errorf("Expected boss reset above the screen after CHARGE, y=%v", pos.Y)
	}
}

func TestBossSpiralBurst(t *testing.T) {
	ctx := newTestContext(t, "defender")
	cfg := ctx.Profile.Boss
	bid := entities.NewBoss(ctx.EM, cfg, ctx.Field.Width, 1)
	bc, _ := ecs.GetComponent[*components.BossComponent](ctx.EM, bid)
	pos, _ := ecs.GetComponent[*components.PositionComponent](ctx.EM, bid)
	pos.Y = cfg.EntryY
	TransitionBoss(bc, types.BossSpiral)

	sys := NewBossSystem(ctx)
	for i := 0; i < cfg.SpiralShotEvery; i++ {
		sys.Update()
	}

	if n := countWith[*components.ProjectileComponent](ctx.EM); n != cfg.SpiralBullets {
		t.Fatalf("Expected %d radial bullets, got %d", cfg.SpiralBullets, n)
	}
	for _, id := range ecs.GetEntitiesWith1[*components.ProjectileComponent](ctx.EM) {
		v, _ := ecs.GetComponent[*components.VelocityComponent](ctx.EM, id)
		if speed := math.Hypot(v.VX, v.VY); math.Abs(speed-cfg.SpiralBulletSpeed) > 1e-9 {
			t.Errorf("bullet speed %v, want %v", speed, cfg.SpiralBulletSpeed)
		}
	}
	if bc.SpinAngle != cfg.SpiralRotateStep {
		t.Errorf("Expected spin angle to advance by %v, got %v", cfg.SpiralRotateStep, bc.SpinAngle)
	}
}

func TestAimVector(t *testing.T) {
	vx, vy := AimVector(0, 0, 30, 40, 5)
	if math.Abs(vx-3) > 1e-9 || math.Abs(vy-4) > 1e-9 {
		t.Errorf("Expected (3,4), got (%v,%v)", vx, vy)
	}
	vx, vy = AimVector(10, 10, 10, 10, 5)
	if vx != 0 || vy != 5 {
		t.Errorf("Expected straight down for zero distance, got (%v,%v)", vx, vy)
	}
}

// TestBossDeath 击破后进入 DYING，演出结束时结算奖励、推进波次并进入商店
func TestBossDeath(t *testing.T) {
	ctx := newTestContext(t, "defender")
	cfg := ctx.Profile.Boss
	bid := entities.NewBoss(ctx.EM, cfg, ctx.Field.Width, 1)
	bc, _ := ecs.GetComponent[*components.BossComponent](ctx.EM, bid)
	pos, _ := ecs.GetComponent[*components.PositionComponent](ctx.EM, bid)
	hp, _ := ecs.GetComponent[*components.HealthComponent](ctx.EM, bid)
	pos.Y = cfg.EntryY
	TransitionBoss(bc, types.BossSpiral)
	hp.Current = 1
	defeated := recordEvents(ctx.Bus, event.BossDefeated)

	entities.NewPlayerBullet(ctx.EM, ctx.Profile.Bullets, pos.X+10, pos.Y+10, 0, 1)
	NewCombatSystem(ctx).Update()
	ctx.EM.RemoveMarkedEntities()

	if bc.State != types.BossDying {
		t.Fatalf("Expected DYING, got %v", bc.State)
	}

	// DYING 期间子弹无效
	bullet := entities.NewPlayerBullet(ctx.EM, ctx.Profile.Bullets, pos.X+10, pos.Y+10, 0, 1)
	NewCombatSystem(ctx).Update()
	if !ctx.EM.IsAlive(bullet) {
		t.Error("dying boss should ignore bullets")
	}

	sys := NewBossSystem(ctx)
	for i := 0; i < cfg.DeathFrames-1; i++ {
		sys.Update()
	}
	if !ctx.EM.IsAlive(bid) || ctx.State.Wave != 1 {
		t.Fatal("boss removed before the death sequence finished")
	}
	if bc.State != types.BossDying {
		t.Fatalf("DYING must be terminal, got %v", bc.State)
	}

	sys.Update()
	if ctx.EM.IsAlive(bid) {
		t.Fatal("Expected boss removed after deathFrames")
	}
	if ctx.State.Score != cfg.Score || ctx.State.Coins != cfg.Coins {
		t.Errorf("Expected award %d/%d, got %d/%d", cfg.Score, cfg.Coins, ctx.State.Score, ctx.State.Coins)
	}
	if ctx.State.Wave != 2 || ctx.State.Bosses != 1 {
		t.Errorf("Expected wave 2 after first boss, got wave=%d bosses=%d", ctx.State.Wave, ctx.State.Bosses)
	}
	if ctx.State.Phase != types.PhaseShop {
		t.Errorf("Expected SHOP phase, got %v", ctx.State.Phase)
	}
	if len(*defeated) != 1 || (*defeated)[0].Data.(event.BossData).Wave != 1 {
		t.Errorf("unexpected BossDefeated events: %+v", *defeated)
	}
}

func TestBossDeath_NoShop(t *testing.T) {
	ctx := newTestContext(t, "classic")
	cfg := ctx.Profile.Boss
	bid := entities.NewBoss(ctx.EM, cfg, ctx.Field.Width, 1)
	bc, _ := ecs.GetComponent[*components.BossComponent](ctx.EM, bid)
	TransitionBoss(bc, types.BossSpiral)
	TransitionBoss(bc, types.BossDying)

	sys := NewBossSystem(ctx)
	for i := 0; i < cfg.DeathFrames; i++ {
		sys.Update()
	}
	if ctx.State.Phase != types.PhasePlaying {
		t.Errorf("profile without shop should stay PLAYING, got %v", ctx.State.Phase)
	}
}

// TestBossSpawnGate 第 w 波在击败 w*15 个敌人后出现 Boss，血量 150+w*100
func TestBossSpawnGate(t *testing.T) {
	for _, wave := range []int{1, 2, 3} {
		ctx := newTestContext(t, "defender")
		ctx.State.Wave = wave
		sys := NewWaveSystem(ctx)

		ctx.State.Defeats = wave*15 - 1
		if sys.CheckGate() {
			t.Fatalf("wave %d: boss gate opened at %d defeats", wave, ctx.State.Defeats)
		}

		ctx.State.Defeats = wave * 15
		if !sys.CheckGate() {
			t.Fatalf("wave %d: boss gate closed at %d defeats", wave, ctx.State.Defeats)
		}
		if ctx.State.Phase != types.PhaseBoss {
			t.Fatalf("Expected BOSS warning phase, got %v", ctx.State.Phase)
		}

		for i := 0; i < ctx.Profile.Waves.BossWarningFrames; i++ {
			sys.UpdateWarning()
		}
		if ctx.State.Phase != types.PhasePlaying {
			t.Fatalf("Expected PLAYING after warning, got %v", ctx.State.Phase)
		}

		ids := ecs.GetEntitiesWith1[*components.BossComponent](ctx.EM)
		if len(ids) != 1 {
			t.Fatalf("Expected exactly one boss, got %d", len(ids))
		}
		hp, _ := ecs.GetComponent[*components.HealthComponent](ctx.EM, ids[0])
		if want := 150 + wave*100; hp.Current != want || hp.Max != want {
			t.Errorf("wave %d: boss hp %d/%d, want %d", wave, hp.Current, hp.Max, want)
		}

		if sys.CheckGate() {
			t.Errorf("wave %d: second boss gated while one is alive", wave)
		}
	}
}

func TestScoreGate(t *testing.T) {
	ctx := newTestContext(t, "classic")
	sys := NewWaveSystem(ctx)
	gate := ctx.Profile.Waves.ScoreGate

	ctx.State.Defeats = 1000
	ctx.State.Score = gate - 1
	if sys.CheckGate() {
		t.Fatal("score-gated profile should ignore defeats")
	}
	ctx.State.Score = gate
	if !sys.CheckGate() {
		t.Fatal("Expected boss gate at score threshold")
	}
}

// TestBossDeath_DropRoll Boss 掉落与普通敌人一样按 dropChance 掷骰
func TestBossDeath_DropRoll(t *testing.T) {
	tests := []struct {
		name   string
		drops  bool
		chance float64
		want   int
	}{
		{"必定掉落", true, 1, 1},
		{"概率为零", true, 0, 0},
		{"Boss 不掉落", false, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newTestContext(t, "defender")
			ctx.Profile.Boss.DropsPowerUp = tt.drops
			ctx.Profile.PowerUps.DropChance = tt.chance
			cfg := ctx.Profile.Boss
			bid := entities.NewBoss(ctx.EM, cfg, ctx.Field.Width, 1)
			bc, _ := ecs.GetComponent[*components.BossComponent](ctx.EM, bid)
			TransitionBoss(bc, types.BossSpiral)
			TransitionBoss(bc, types.BossDying)

			sys := NewBossSystem(ctx)
			for i := 0; i < cfg.DeathFrames; i++ {
				sys.Update()
			}
			if ctx.EM.IsAlive(bid) {
				t.Fatal("Expected boss removed after deathFrames")
			}
			if got := countWith[*components.PowerUpComponent](ctx.EM); got != tt.want {
				t.Errorf("Expected %d power-ups, got %d", tt.want, got)
			}
		})
	}
}
