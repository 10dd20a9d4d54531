package render

import (
	"fmt"

	"github.com/decker502/galaxy-defender/pkg/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

const (
	hudMargin    = 12
	hudBarWidth  = 160
	hudBarHeight = 10
	lifeIconSize = 12
	bossBarWidth = 0.6 // 占屏幕宽度的比例
	framesPerSec = 60
)

// DrawHUD 绘制分数、生命、道具计时和 Boss 血条
func DrawHUD(screen *ebiten.Image, snap sim.Snapshot) {
	y := float64(hudMargin)
	for _, line := range StatusLines(snap) {
		DrawText(screen, line, hudMargin, y, HUDText, AlignStart)
		y += LineHeight
	}

	y += 4
	if snap.LivesHUD {
		drawLives(screen, hudMargin, y, snap.Health)
	} else {
		frac := 0.0
		if snap.MaxHealth > 0 {
			frac = float64(snap.Health) / float64(snap.MaxHealth)
		}
		drawBar(screen, hudMargin, y, hudBarWidth, hudBarHeight, frac)
		DrawText(screen, fmt.Sprintf("%d/%d", snap.Health, snap.MaxHealth), hudMargin+hudBarWidth+8, y-2, HUDDim, AlignStart)
	}

	// 右上角道具计时
	ty := float64(hudMargin)
	for _, line := range PowerUpTimers(snap) {
		DrawText(screen, line, snap.Width-hudMargin, ty, HUDText, AlignEnd)
		ty += LineHeight
	}

	if snap.BossAlive {
		drawBossBar(screen, snap)
	}
}

// StatusLines 左上角的状态文字
func StatusLines(snap sim.Snapshot) []string {
	lines := []string{
		fmt.Sprintf("SCORE %d", snap.Score),
		fmt.Sprintf("HIGH  %d", snap.HighScore),
		fmt.Sprintf("WAVE  %d", snap.Wave),
	}
	if snap.HasShop {
		lines = append(lines, fmt.Sprintf("COINS %d", snap.Coins))
	}
	lines = append(lines, "TIME  "+FormatElapsed(snap.ElapsedMs))
	return lines
}

// PowerUpTimers 生效中的道具及剩余秒数
func PowerUpTimers(snap sim.Snapshot) []string {
	var lines []string
	add := func(name string, frames int) {
		if frames > 0 {
			lines = append(lines, fmt.Sprintf("%s %ds", name, secondsLeft(frames)))
		}
	}
	add("SHIELD", snap.Shield)
	add("RAPID", snap.RapidFire)
	add("TRIPLE", snap.TripleShot)
	return lines
}

// FormatElapsed 将毫秒格式化为 m:ss
func FormatElapsed(ms float64) string {
	if ms < 0 {
		ms = 0
	}
	total := int(ms / 1000)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// secondsLeft 帧数向上取整为秒
func secondsLeft(frames int) int {
	return (frames + framesPerSec - 1) / framesPerSec
}

func drawLives(screen *ebiten.Image, x, y float64, lives int) {
	for i := 0; i < lives; i++ {
		ix := float32(x + float64(i)*(lifeIconSize+4))
		vector.DrawFilledRect(screen, ix, float32(y), lifeIconSize, lifeIconSize, PlayerColor, false)
	}
}

func drawBossBar(screen *ebiten.Image, snap sim.Snapshot) {
	w := snap.Width * bossBarWidth
	x := (snap.Width - w) / 2
	y := float64(hudMargin) + 4
	frac := 0.0
	if snap.BossMaxHP > 0 {
		frac = float64(snap.BossHP) / float64(snap.BossMaxHP)
	}
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), 12, BarBack, false)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(BarFill(w, frac)), 12, colornames.Crimson, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), 12, 1, colornames.White, false)
	DrawText(screen, "BOSS  "+snap.BossState.String(), snap.Width/2, y+16, HUDText, AlignCenter)
}
