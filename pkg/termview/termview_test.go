package termview

import (
	"strings"
	"testing"
	"time"

	"github.com/decker502/galaxy-defender/pkg/config"
	"github.com/decker502/galaxy-defender/pkg/game"
	"github.com/decker502/galaxy-defender/pkg/sim"
	"github.com/decker502/galaxy-defender/pkg/types"
	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
)

// fakeCanvas 记录写入的字符
type fakeCanvas struct {
	w, h  int
	cells [][]rune
}

func newFakeCanvas(w, h int) *fakeCanvas {
	c := &fakeCanvas{w: w, h: h, cells: make([][]rune, h)}
	for y := range c.cells {
		c.cells[y] = []rune(strings.Repeat(" ", w))
	}
	return c
}

func (c *fakeCanvas) SetContent(x, y int, r rune, _ []rune, _ tcell.Style) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		panic("write outside canvas")
	}
	c.cells[y][x] = r
}

func (c *fakeCanvas) Size() (int, int) { return c.w, c.h }

func (c *fakeCanvas) row(y int) string { return string(c.cells[y]) }

func (c *fakeCanvas) count(r rune) int {
	n := 0
	for _, row := range c.cells {
		for _, x := range row {
			if x == r {
				n++
			}
		}
	}
	return n
}

func newTermSim(t *testing.T, profile string, cols, rows int) (*sim.Simulation, *View) {
	t.Helper()
	p, err := config.LoadProfile(profile)
	if err != nil {
		t.Fatalf("LoadProfile failed: %v", err)
	}
	v := NewView()
	w, h := v.FieldSize(cols, rows)
	s, err := sim.New(p, sim.Options{Width: w, Height: h, Seed: 11, Logger: zerolog.Nop()})
	if err != nil {
		t.Fatalf("sim.New failed: %v", err)
	}
	return s, v
}

func TestDrawString_Clips(t *testing.T) {
	c := newFakeCanvas(5, 2)
	DrawString(c, 3, 0, "hello", tcell.StyleDefault)
	if got := c.row(0); got != "   he" {
		t.Errorf("row 0 = %q", got)
	}
	DrawString(c, -2, 1, "hello", tcell.StyleDefault)
	if got := c.row(1); got != "llo  " {
		t.Errorf("row 1 = %q", got)
	}
	// 越界行忽略
	DrawString(c, 0, 5, "x", tcell.StyleDefault)
}

func TestView_Cell(t *testing.T) {
	v := NewView()
	tests := []struct {
		x, y   float64
		cx, cy int
	}{
		{0, 0, 0, 0},
		{9.9, 19.9, 0, 0},
		{10, 20, 1, 1},
		{-1, -1, -1, -1},
	}
	for _, tt := range tests {
		cx, cy := v.Cell(tt.x, tt.y)
		if cx != tt.cx || cy != tt.cy {
			t.Errorf("Cell(%v,%v) = (%d,%d), want (%d,%d)", tt.x, tt.y, cx, cy, tt.cx, tt.cy)
		}
	}
	if w, h := v.FieldSize(80, 24); w != 800 || h != 480 {
		t.Errorf("FieldSize = %vx%v", w, h)
	}
}

func TestView_DrawMenuAndPlay(t *testing.T) {
	s, v := newTermSim(t, "defender", 80, 30)
	c := newFakeCanvas(80, 30)

	v.Draw(c, s)
	found := false
	for y := 0; y < 30; y++ {
		if strings.Contains(c.row(y), "G A L A X Y") {
			found = true
		}
	}
	if !found {
		t.Error("menu title not drawn")
	}

	s.Start()
	s.Step(16, types.Input{})
	c = newFakeCanvas(80, 30)
	v.Draw(c, s)
	if !strings.HasPrefix(c.row(0), "SCORE 0  HIGH 0  WAVE 1  HP 100/100") {
		t.Errorf("unexpected HUD: %q", c.row(0))
	}
	// 40x40 的玩家占 4x2 格
	if n := c.count('A'); n != 8 {
		t.Errorf("Expected player to cover 8 cells, got %d", n)
	}
}

func TestView_SimulationScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(80, 24)

	s, v := newTermSim(t, "classic", 80, 24)
	s.Start()
	for i := 0; i < 120; i++ {
		s.Step(16, types.Input{Fire: true})
	}
	var canvas Canvas = screen
	v.Draw(canvas, s)
	screen.Show()
}

func TestHUDLine(t *testing.T) {
	snap := sim.Snapshot{Score: 10, HighScore: 20, Wave: 2, Health: 3, MaxHealth: 3, LivesHUD: true}
	if got := HUDLine(snap); got != "SCORE 10  HIGH 20  WAVE 2  LIVES AAA" {
		t.Errorf("lives HUD = %q", got)
	}
	snap = sim.Snapshot{Score: 10, Wave: 1, Health: 80, MaxHealth: 100, HasShop: true, Coins: 7}
	if got := HUDLine(snap); got != "SCORE 10  HIGH 0  WAVE 1  HP 80/100  COINS 7" {
		t.Errorf("bar HUD = %q", got)
	}
}

func TestBossLine(t *testing.T) {
	snap := sim.Snapshot{BossHP: 125, BossMaxHP: 250, BossState: types.BossSpiral}
	want := "BOSS [==========          ] SPIRAL"
	if got := BossLine(snap); got != want {
		t.Errorf("BossLine = %q, want %q", got, want)
	}
}

func TestTimerLine(t *testing.T) {
	if got := TimerLine(sim.Snapshot{Shield: 1, TripleShot: 5}); got != "SHD TRI" {
		t.Errorf("TimerLine = %q", got)
	}
}

func TestShopLines(t *testing.T) {
	s, _ := newTermSim(t, "defender", 80, 30)
	lines := ShopLines(s)
	if len(lines) != len(game.AllUpgrades) {
		t.Fatalf("Expected %d lines, got %d", len(game.AllUpgrades), len(lines))
	}
	if !strings.HasPrefix(lines[0], "1  Damage") || !strings.HasSuffix(lines[0], "50c (need more)") {
		t.Errorf("unexpected first line: %q", lines[0])
	}
}

func TestActionFor(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		r    rune
		want Action
	}{
		{tcell.KeyLeft, 0, ActionLeft},
		{tcell.KeyRight, 0, ActionRight},
		{tcell.KeyRune, 'a', ActionLeft},
		{tcell.KeyRune, 'd', ActionRight},
		{tcell.KeyRune, ' ', ActionFire},
		{tcell.KeyRune, 'z', ActionFire},
		{tcell.KeyRune, 'p', ActionPause},
		{tcell.KeyEscape, 0, ActionPause},
		{tcell.KeyEnter, 0, ActionConfirm},
		{tcell.KeyRune, 'q', ActionQuit},
		{tcell.KeyCtrlC, 0, ActionQuit},
		{tcell.KeyRune, '3', ActionBuy3},
		{tcell.KeyRune, 'x', ActionNone},
		{tcell.KeyTab, 0, ActionNone},
	}
	for _, tt := range tests {
		if got := ActionFor(tt.key, tt.r); got != tt.want {
			t.Errorf("ActionFor(%v, %q) = %v, want %v", tt.key, tt.r, got, tt.want)
		}
	}
}

func TestKeyHold(t *testing.T) {
	k := NewKeyHold()
	t0 := time.Unix(1000, 0)

	if k.Held(ActionLeft, t0) {
		t.Fatal("nothing pressed yet")
	}

	k.Press(ActionLeft, t0)
	if !k.Held(ActionLeft, t0.Add(500*time.Millisecond)) {
		t.Error("first press should cover the repeat delay")
	}
	if k.Held(ActionLeft, t0.Add(InitialHold)) {
		t.Error("hold should expire without repeats")
	}

	// 自动重复：每 50ms 一次，持续按住
	now := t0
	for i := 0; i < 20; i++ {
		now = now.Add(50 * time.Millisecond)
		k.Press(ActionLeft, now)
	}
	if !k.Held(ActionLeft, now.Add(100*time.Millisecond)) {
		t.Error("repeat should keep the key held")
	}
	if k.Held(ActionLeft, now.Add(InitialHold+time.Millisecond)) {
		t.Error("hold should end after repeats stop")
	}

	k.Release(ActionLeft)
	if k.Held(ActionLeft, now) {
		t.Error("Release should clear the hold")
	}

	k.Press(ActionFire, now)
	in := k.Input(now, true)
	if !in.Fire || in.Left || in.Right || !in.Pause {
		t.Errorf("unexpected input %+v", in)
	}
}
