package scenes

import (
	"github.com/decker502/galaxy-defender/pkg/audio"
	"github.com/decker502/galaxy-defender/pkg/input"
	"github.com/decker502/galaxy-defender/pkg/render"
	"github.com/decker502/galaxy-defender/pkg/sim"
	"github.com/rs/zerolog"
)

// Env 各场景共享的依赖
type Env struct {
	Sim      *sim.Simulation
	Input    *input.Reader
	Renderer *render.Renderer
	// Audio 可为 nil（无声模式）
	Audio  *audio.AudioManager
	Logger zerolog.Logger
}

// stepMs 将秒转换为模拟使用的毫秒
func stepMs(deltaTime float64) float64 {
	return deltaTime * 1000
}
