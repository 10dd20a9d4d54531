// Package synth 程序化生成音效
//
// 所有音效都由振荡器、噪声和包络组合而成，不依赖任何音频文件。
// 输出既可以是 beep.Streamer（终端版直接送给 speaker），
// 也可以渲染成 16 位立体声 PCM（窗口版交给 ebiten audio）。
package synth

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave 振荡器波形
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveTriangle
	WaveSaw
)

// sweep 频率线性滑动的振荡器
type sweep struct {
	from, to float64
	wave     Wave
	rate     beep.SampleRate
	total    int
	pos      int
	phase    float64
}

// NewSweep 创建从 from 滑到 to 的振荡器，duration 后结束
func NewSweep(from, to float64, duration time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &sweep{from: from, to: to, wave: wave, rate: rate, total: rate.N(duration)}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}
		t := float64(s.pos) / float64(s.total)
		freq := s.from + (s.to-s.from)*t

		v := waveValue(s.wave, s.phase)
		samples[i][0] = v
		samples[i][1] = v

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

func waveValue(w Wave, phase float64) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveTriangle:
		return 1 - 4*math.Abs(phase-0.5)
	case WaveSaw:
		return 2 * (phase - 0.5)
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// noise 经过一阶低通的白噪声
// cutoff 越低声音越闷（爆炸），越高越亮（受击）
type noise struct {
	rnd   *rand.Rand
	alpha float64
	last  float64
	total int
	pos   int
}

// NewNoise 创建低通噪声，cutoff 为截止频率（Hz）
// seed 固定时输出固定，便于测试
func NewNoise(cutoff float64, duration time.Duration, rate beep.SampleRate, seed uint64) beep.Streamer {
	dt := 1 / float64(rate)
	rc := 1 / (2 * math.Pi * cutoff)
	return &noise{
		rnd:   rand.New(rand.NewPCG(seed, seed+1)),
		alpha: dt / (rc + dt),
		total: rate.N(duration),
	}
}

func (n *noise) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if n.pos >= n.total {
			return i, i > 0
		}
		white := n.rnd.Float64()*2 - 1
		n.last += n.alpha * (white - n.last)
		samples[i][0] = n.last
		samples[i][1] = n.last
		n.pos++
	}
	return len(samples), true
}

func (n *noise) Err() error { return nil }

// envelope 线性起音和释音
type envelope struct {
	streamer beep.Streamer
	attack   int
	release  int
	total    int
	pos      int
}

// NewEnvelope 给 s 套上起音/释音包络，total 为包络总长
func NewEnvelope(s beep.Streamer, total, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(total),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.pos >= e.total {
			return i, i > 0
		}
		samples[i][0] *= e.gain()
		samples[i][1] *= e.gain()
		e.pos++
	}
	return n, ok
}

func (e *envelope) gain() float64 {
	if e.attack > 0 && e.pos < e.attack {
		return float64(e.pos) / float64(e.attack)
	}
	releaseStart := e.total - e.release
	if e.release > 0 && e.pos >= releaseStart {
		return math.Max(0, float64(e.total-e.pos)/float64(e.release))
	}
	return 1
}

func (e *envelope) Err() error { return e.streamer.Err() }

// withVolume 线性音量转成 effects.Volume 的对数刻度
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
