package components

import "image/color"

// ParticleComponent 爆炸、火花等短生命周期的视觉粒子
//
// Life 从 1 线性衰减到 0，渲染时 alpha = Life
// 粒子不参与碰撞
type ParticleComponent struct {
	Color color.RGBA
	Size  float64 // 边长（像素）
	Life  float64 // 剩余生命 (0,1]
	Decay float64 // 每帧衰减量
}
