package synth

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
)

// SampleRate 默认采样率
const SampleRate = beep.SampleRate(44100)

// Sound 音效种类
type Sound int

const (
	SoundShoot Sound = iota
	SoundHit
	SoundExplosion
	SoundBossExplosion
	SoundPowerUp
	SoundBossWarning
	SoundBossSpawn
	SoundPlayerHurt
	SoundShield
	SoundPurchase
	SoundGameOver
)

// AllSounds 全部音效，用于预渲染
var AllSounds = []Sound{
	SoundShoot, SoundHit, SoundExplosion, SoundBossExplosion, SoundPowerUp,
	SoundBossWarning, SoundBossSpawn, SoundPlayerHurt, SoundShield, SoundPurchase, SoundGameOver,
}

var soundNames = map[Sound]string{
	SoundShoot:         "shoot",
	SoundHit:           "hit",
	SoundExplosion:     "explosion",
	SoundBossExplosion: "boss_explosion",
	SoundPowerUp:       "powerup",
	SoundBossWarning:   "boss_warning",
	SoundBossSpawn:     "boss_spawn",
	SoundPlayerHurt:    "player_hurt",
	SoundShield:        "shield",
	SoundPurchase:      "purchase",
	SoundGameOver:      "game_over",
}

func (s Sound) String() string {
	if name, ok := soundNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Sound(%d)", int(s))
}

// Duration 音效时长
func Duration(s Sound) time.Duration {
	switch s {
	case SoundShoot:
		return 90 * time.Millisecond
	case SoundHit:
		return 60 * time.Millisecond
	case SoundExplosion:
		return 350 * time.Millisecond
	case SoundBossExplosion:
		return 1200 * time.Millisecond
	case SoundPowerUp:
		return 240 * time.Millisecond
	case SoundBossWarning:
		return 900 * time.Millisecond
	case SoundBossSpawn:
		return 600 * time.Millisecond
	case SoundPlayerHurt:
		return 250 * time.Millisecond
	case SoundShield:
		return 180 * time.Millisecond
	case SoundPurchase:
		return 200 * time.Millisecond
	case SoundGameOver:
		return 1000 * time.Millisecond
	}
	return 0
}

// New 创建一个新的音效流（每次播放都需要新建）
func New(s Sound, rate beep.SampleRate) (beep.Streamer, error) {
	d := Duration(s)
	switch s {
	case SoundShoot:
		osc := NewSweep(1200, 400, d, WaveSquare, rate)
		return withVolume(NewEnvelope(osc, d, 2*time.Millisecond, 60*time.Millisecond, rate), 0.25), nil

	case SoundHit:
		n := NewNoise(4000, d, rate, 11)
		return withVolume(NewEnvelope(n, d, time.Millisecond, 50*time.Millisecond, rate), 0.35), nil

	case SoundExplosion:
		n := NewNoise(900, d, rate, 23)
		return withVolume(NewEnvelope(n, d, 3*time.Millisecond, 300*time.Millisecond, rate), 0.6), nil

	case SoundBossExplosion:
		n := NewNoise(500, d, rate, 37)
		rumble := NewSweep(90, 30, d, WaveTriangle, rate)
		mixed := beep.Mix(withVolume(n, 0.7), withVolume(rumble, 0.5))
		return withVolume(NewEnvelope(mixed, d, 5*time.Millisecond, time.Second, rate), 0.8), nil

	case SoundPowerUp:
		// 上行三音
		step := d / 3
		notes := []float64{523.25, 659.25, 783.99}
		parts := make([]beep.Streamer, 0, len(notes))
		for _, f := range notes {
			tone, err := generators.SineTone(rate, f)
			if err != nil {
				return nil, fmt.Errorf("powerup tone: %w", err)
			}
			parts = append(parts, NewEnvelope(beep.Take(rate.N(step), tone), step, 2*time.Millisecond, 30*time.Millisecond, rate))
		}
		return withVolume(beep.Seq(parts...), 0.35), nil

	case SoundBossWarning:
		// 两声警报
		half := d / 2
		a := NewEnvelope(NewSweep(440, 660, half, WaveSaw, rate), half, 10*time.Millisecond, 80*time.Millisecond, rate)
		b := NewEnvelope(NewSweep(440, 660, half, WaveSaw, rate), half, 10*time.Millisecond, 80*time.Millisecond, rate)
		return withVolume(beep.Seq(a, b), 0.3), nil

	case SoundBossSpawn:
		osc := NewSweep(60, 180, d, WaveSaw, rate)
		return withVolume(NewEnvelope(osc, d, 80*time.Millisecond, 250*time.Millisecond, rate), 0.4), nil

	case SoundPlayerHurt:
		osc := NewSweep(300, 80, d, WaveSquare, rate)
		n := NewNoise(2000, d, rate, 41)
		mixed := beep.Mix(withVolume(osc, 0.6), withVolume(n, 0.3))
		return withVolume(NewEnvelope(mixed, d, 2*time.Millisecond, 150*time.Millisecond, rate), 0.45), nil

	case SoundShield:
		osc := NewSweep(900, 1400, d, WaveTriangle, rate)
		return withVolume(NewEnvelope(osc, d, 5*time.Millisecond, 120*time.Millisecond, rate), 0.3), nil

	case SoundPurchase:
		first, err := generators.SquareTone(rate, 987.77)
		if err != nil {
			return nil, fmt.Errorf("purchase tone: %w", err)
		}
		second, err := generators.SquareTone(rate, 1318.51)
		if err != nil {
			return nil, fmt.Errorf("purchase tone: %w", err)
		}
		half := d / 2
		seq := beep.Seq(
			NewEnvelope(beep.Take(rate.N(half), first), half, time.Millisecond, 40*time.Millisecond, rate),
			NewEnvelope(beep.Take(rate.N(half), second), half, time.Millisecond, 80*time.Millisecond, rate),
		)
		return withVolume(seq, 0.2), nil

	case SoundGameOver:
		osc := NewSweep(440, 110, d, WaveTriangle, rate)
		return withVolume(NewEnvelope(osc, d, 10*time.Millisecond, 400*time.Millisecond, rate), 0.45), nil
	}
	return nil, fmt.Errorf("unknown sound %v", s)
}

// Render 把音效渲染成 16 位小端立体声 PCM
func Render(s Sound, rate beep.SampleRate) ([]byte, error) {
	st, err := New(s, rate)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, rate.N(Duration(s))*4)
	buf := make([][2]float64, 512)
	for {
		n, ok := st.Stream(buf)
		for _, frame := range buf[:n] {
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(frame[0])))
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(frame[1])))
		}
		if !ok || n == 0 {
			break
		}
	}
	if err := st.Err(); err != nil {
		return nil, fmt.Errorf("render %v: %w", s, err)
	}
	return out, nil
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(math.Round(v * math.MaxInt16))
}
