// Package utils 提供通用工具函数
package utils

// Clamp 将 v 限制在 [lo, hi] 范围内
// hi < lo 时返回 lo（例如画布比实体还窄）
func Clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt 整数版本的 Clamp
func ClampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Rect 轴对齐矩形（左上角 + 宽高）
type Rect struct {
	X, Y, W, H float64
}

// Overlaps 判断两个矩形是否重叠（AABB）
// a.x < b.x+b.w && a.x+a.w > b.x && a.y < b.y+b.h && a.y+a.h > b.y
func (a Rect) Overlaps(b Rect) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X && a.Y < b.Y+b.H && a.Y+a.H > b.Y
}

// Contains 判断点是否在矩形内（左闭右开）
func (a Rect) Contains(x, y float64) bool {
	return x >= a.X && x < a.X+a.W && y >= a.Y && y < a.Y+a.H
}

// Center 返回矩形中心点
func (a Rect) Center() (float64, float64) {
	return a.X + a.W/2, a.Y + a.H/2
}
