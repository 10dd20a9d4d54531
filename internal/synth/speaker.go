package synth

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Speaker 通过 beep speaker 直接播放音效（终端版使用）
//
// 所有音效混入同一个 Mixer，speaker 在自己的 goroutine 中拉取数据
type Speaker struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	mixer       *beep.Mixer
	volume      float64
	muted       bool
	initialized bool
}

// NewSpeaker 创建未初始化的扬声器输出
func NewSpeaker(rate beep.SampleRate, volume float64) *Speaker {
	return &Speaker{rate: rate, mixer: &beep.Mixer{}, volume: volume}
}

// Init 打开音频设备，重复调用无副作用
func (sp *Speaker) Init() error {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	if sp.initialized {
		return nil
	}
	if err := speaker.Init(sp.rate, sp.rate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(sp.mixer)
	sp.initialized = true
	return nil
}

// Play 实现 Sink；未初始化时忽略
func (sp *Speaker) Play(s Sound) {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	if !sp.initialized || sp.muted {
		return
	}
	st, err := New(s, sp.rate)
	if err != nil {
		return
	}
	speaker.Lock()
	sp.mixer.Add(withVolume(st, sp.volume))
	speaker.Unlock()
}

// ToggleMute 切换静音，返回新状态
func (sp *Speaker) ToggleMute() bool {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	sp.muted = !sp.muted
	return sp.muted
}

// Close 停止所有声音并关闭设备
func (sp *Speaker) Close() {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	if !sp.initialized {
		return
	}
	speaker.Lock()
	sp.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sp.initialized = false
}
