// Package audio 在 ebiten 中播放合成音效
package audio

import (
	"fmt"
	"sync"

	"github.com/decker502/galaxy-defender/internal/logging"
	"github.com/decker502/galaxy-defender/internal/synth"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/rs/zerolog"
)

// AudioManager 音效管理器
//
// 音频上下文延迟到第一次用户操作时才创建（浏览器和移动端要求手势触发），
// 在此之前 Play 为空操作。创建失败时记录一次警告并保持静音。
type AudioManager struct {
	mu      sync.Mutex
	context *audio.Context
	pcm     map[synth.Sound][]byte
	volume  float64
	muted   bool
	ready   bool
	failed  bool

	logger zerolog.Logger
	warn   logging.Once
}

// NewAudioManager 创建音效管理器（不打开音频设备）
//
// 参数：
//   - volume: 音效音量 (0.0 ~ 1.0)
//   - muted: 是否静音
func NewAudioManager(volume float64, muted bool, logger zerolog.Logger) *AudioManager {
	return &AudioManager{
		pcm:    make(map[synth.Sound][]byte),
		volume: clampVolume(volume),
		muted:  muted,
		logger: logging.Component(logger, "audio"),
	}
}

// Init 创建音频上下文并预渲染全部音效
// 可重复调用；失败后不再重试
func (am *AudioManager) Init() error {
	am.mu.Lock()
	defer am.mu.Unlock()
	if am.ready || am.failed {
		return nil
	}

	if err := am.init(); err != nil {
		am.failed = true
		am.warn.Warn(am.logger, "init", err, "audio unavailable, continuing without sound")
		return err
	}
	am.ready = true
	am.logger.Debug().Int("sounds", len(am.pcm)).Msg("audio initialized")
	return nil
}

func (am *AudioManager) init() (err error) {
	// ebiten 在没有音频设备的环境中可能直接 panic
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("audio context: %v", r)
		}
	}()

	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(int(synth.SampleRate))
	}
	for _, s := range synth.AllSounds {
		data, rerr := synth.Render(s, synth.SampleRate)
		if rerr != nil {
			return fmt.Errorf("render %v: %w", s, rerr)
		}
		am.pcm[s] = data
	}
	am.context = ctx
	return nil
}

// Play 实现 synth.Sink
// 每次播放创建新的播放器，同一音效可以重叠
func (am *AudioManager) Play(s synth.Sound) {
	am.mu.Lock()
	defer am.mu.Unlock()
	if !am.ready || am.muted || am.volume <= 0 {
		return
	}
	data, ok := am.pcm[s]
	if !ok {
		return
	}
	player := am.context.NewPlayerFromBytes(data)
	player.SetVolume(am.volume)
	player.Play()
}

// SetVolume 设置后续音效的音量
func (am *AudioManager) SetVolume(v float64) {
	am.mu.Lock()
	am.volume = clampVolume(v)
	am.mu.Unlock()
}

// Volume 当前音量
func (am *AudioManager) Volume() float64 {
	am.mu.Lock()
	defer am.mu.Unlock()
	return am.volume
}

// SetMuted 设置静音
func (am *AudioManager) SetMuted(m bool) {
	am.mu.Lock()
	am.muted = m
	am.mu.Unlock()
}

// ToggleMute 切换静音，返回新状态
func (am *AudioManager) ToggleMute() bool {
	am.mu.Lock()
	defer am.mu.Unlock()
	am.muted = !am.muted
	return am.muted
}

// Ready 音频是否已可用
func (am *AudioManager) Ready() bool {
	am.mu.Lock()
	defer am.mu.Unlock()
	return am.ready
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
