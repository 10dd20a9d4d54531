package systems

import (
	"testing"

	"github.com/decker502/galaxy-defender/pkg/components"
	"github.com/decker502/galaxy-defender/pkg/ecs"
	"github.com/decker502/galaxy-defender/pkg/event"
	"github.com/decker502/galaxy-defender/pkg/types"
)

// TestPlayerMovement_HoldRight 按住右键 30 帧：x 单调增加且不越过右边界
func TestPlayerMovement_HoldRight(t *testing.T) {
	ctx := newTestContext(t, "defender")
	ctx.Field.Width = 1000
	_, _, _, pos := addPlayer(t, ctx)
	pos.X = 100

	sys := NewPlayerSystem(ctx)
	prev := pos.X
	for frame := 0; frame < 30; frame++ {
		sys.Update(types.Input{Right: true})
		if pos.X <= prev {
			t.Fatalf("frame %d: x did not increase (%.3f -> %.3f)", frame, prev, pos.X)
		}
		if pos.X > 960 {
			t.Fatalf("frame %d: x=%.3f exceeds 960", frame, pos.X)
		}
		prev = pos.X
	}
}

func TestPlayerMovement_VelocityConverges(t *testing.T) {
	ctx := newTestContext(t, "defender")
	ctx.Field.Width = 100000
	id, _, _, pos := addPlayer(t, ctx)
	pos.X = 0
	vel, _ := ecs.GetComponent[*components.VelocityComponent](ctx.EM, id)

	sys := NewPlayerSystem(ctx)
	for i := 0; i < 200; i++ {
		sys.Update(types.Input{Right: true})
	}
	cfg := ctx.Profile.Player
	want := cfg.Accel * cfg.Damping / (1 - cfg.Damping)
	if diff := vel.VX - want; diff > 1e-6 || diff < -1e-6 {
		t.Errorf("Expected terminal velocity %.4f, got %.4f", want, vel.VX)
	}
}

func TestPlayerMovement_Clamp(t *testing.T) {
	tests := []struct {
		name  string
		in    types.Input
		wantX float64
	}{
		{"左边界", types.Input{Left: true}, 0},
		{"右边界", types.Input{Right: true}, 800 - 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newTestContext(t, "defender")
			_, _, _, pos := addPlayer(t, ctx)
			sys := NewPlayerSystem(ctx)
			for i := 0; i < 300; i++ {
				sys.Update(tt.in)
				if pos.X < 0 || pos.X > 760 {
					t.Fatalf("x=%.3f out of bounds", pos.X)
				}
			}
			if pos.X != tt.wantX {
				t.Errorf("Expected x=%v, got %v", tt.wantX, pos.X)
			}
		})
	}
}

// TestPlayerMovement_WallStop 贴墙后速度归零，反向按键当帧即可离开墙边
func TestPlayerMovement_WallStop(t *testing.T) {
	ctx := newTestContext(t, "defender")
	id, _, _, pos := addPlayer(t, ctx)
	vel, _ := ecs.GetComponent[*components.VelocityComponent](ctx.EM, id)
	sys := NewPlayerSystem(ctx)

	for i := 0; i < 300; i++ {
		sys.Update(types.Input{Left: true})
	}
	if pos.X != 0 || vel.VX != 0 {
		t.Fatalf("Expected x=0 vx=0 at the wall, got x=%v vx=%v", pos.X, vel.VX)
	}

	sys.Update(types.Input{Right: true})
	if pos.X <= 0 {
		t.Errorf("Expected ship to leave the wall on the first frame, x=%v", pos.X)
	}
}

func TestPlayerMovement_DampingWithoutInput(t *testing.T) {
	ctx := newTestContext(t, "defender")
	id, _, _, _ := addPlayer(t, ctx)
	vel, _ := ecs.GetComponent[*components.VelocityComponent](ctx.EM, id)
	vel.VX = 10

	NewPlayerSystem(ctx).Update(types.Input{})

	if want := 10 * ctx.Profile.Player.Damping; vel.VX != want {
		t.Errorf("Expected damped velocity %v, got %v", want, vel.VX)
	}
}

func countPlayerBullets(ctx *Context) int {
	n := 0
	for _, id := range ecs.GetEntitiesWith1[*components.ProjectileComponent](ctx.EM) {
		p, _ := ecs.GetComponent[*components.ProjectileComponent](ctx.EM, id)
		if p.Owner == types.OwnerPlayer {
			n++
		}
	}
	return n
}

func TestPlayerFire_Cooldown(t *testing.T) {
	ctx := newTestContext(t, "defender")
	addPlayer(t, ctx)
	sys := NewPlayerSystem(ctx)
	fire := types.Input{Fire: true}

	sys.Update(fire)
	if n := countPlayerBullets(ctx); n != 1 {
		t.Fatalf("Expected first shot immediately, got %d bullets", n)
	}

	ctx.State.ElapsedMs = 249
	sys.Update(fire)
	if n := countPlayerBullets(ctx); n != 1 {
		t.Errorf("Expected cooldown to block shot at 249ms, got %d bullets", n)
	}

	ctx.State.ElapsedMs = 250
	sys.Update(fire)
	if n := countPlayerBullets(ctx); n != 2 {
		t.Errorf("Expected second shot at 250ms, got %d bullets", n)
	}
}

func TestPlayerFire_BulletPosition(t *testing.T) {
	ctx := newTestContext(t, "defender")
	_, _, _, pos := addPlayer(t, ctx)
	pos.X = 100

	NewPlayerSystem(ctx).Update(types.Input{Fire: true})

	ids := ecs.GetEntitiesWith1[*components.ProjectileComponent](ctx.EM)
	if len(ids) != 1 {
		t.Fatalf("Expected 1 bullet, got %d", len(ids))
	}
	bp, _ := ecs.GetComponent[*components.PositionComponent](ctx.EM, ids[0])
	bv, _ := ecs.GetComponent[*components.VelocityComponent](ctx.EM, ids[0])
	// 飞船中心 120，子弹宽 4
	if bp.X != 118 || bp.Y != pos.Y {
		t.Errorf("Expected bullet at (118,%v), got (%v,%v)", pos.Y, bp.X, bp.Y)
	}
	if bv.VX != 0 || bv.VY != -15 {
		t.Errorf("Expected velocity (0,-15), got (%v,%v)", bv.VX, bv.VY)
	}
}

func TestPlayerFire_TripleShot(t *testing.T) {
	ctx := newTestContext(t, "defender")
	_, pc, _, _ := addPlayer(t, ctx)
	pc.TripleShot = 10
	shots := recordEvents(ctx.Bus, event.PlayerShot)

	NewPlayerSystem(ctx).Update(types.Input{Fire: true})

	ids := ecs.GetEntitiesWith1[*components.ProjectileComponent](ctx.EM)
	if len(ids) != 3 {
		t.Fatalf("Expected 3 bullets, got %d", len(ids))
	}
	var left, right bool
	for _, id := range ids {
		v, _ := ecs.GetComponent[*components.VelocityComponent](ctx.EM, id)
		if v.VX < 0 {
			left = true
		}
		if v.VX > 0 {
			right = true
		}
	}
	if !left || !right {
		t.Error("Expected angled bullets on both sides")
	}
	if len(*shots) != 1 || (*shots)[0].Data.(event.ShotData).Bullets != 3 {
		t.Errorf("Expected one PlayerShot event with 3 bullets, got %+v", *shots)
	}
}

func TestPlayerTimersTickDown(t *testing.T) {
	ctx := newTestContext(t, "defender")
	_, pc, _, _ := addPlayer(t, ctx)
	pc.Invulnerable, pc.Shield, pc.RapidFire, pc.TripleShot = 2, 1, 3, 0

	sys := NewPlayerSystem(ctx)
	sys.Update(types.Input{})
	sys.Update(types.Input{})

	if pc.Invulnerable != 0 || pc.Shield != 0 || pc.RapidFire != 1 || pc.TripleShot != 0 {
		t.Errorf("unexpected timers: %+v", *pc)
	}
}

func TestFireCooldownMs(t *testing.T) {
	ctx := newTestContext(t, "defender")
	cfg := ctx.Profile.Player

	tests := []struct {
		name  string
		rapid bool
		level int
		want  float64
	}{
		{"基础冷却", false, 0, 250},
		{"速射", true, 0, 100},
		{"升级两级", false, 2, 200},
		{"不低于下限", true, 5, 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FireCooldownMs(cfg, tt.rapid, tt.level); got != tt.want {
				t.Errorf("FireCooldownMs = %v, want %v", got, tt.want)
			}
		})
	}
}
