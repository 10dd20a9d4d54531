package utils

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name           string
		v, lo, hi, exp float64
	}{
		{"范围内", 5, 0, 10, 5},
		{"低于下限", -3, 0, 10, 0},
		{"高于上限", 12, 0, 10, 10},
		{"上限小于下限", 5, 10, 0, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.exp {
				t.Errorf("Clamp(%v, %v, %v) = %v, 期望 %v", tt.v, tt.lo, tt.hi, got, tt.exp)
			}
		})
	}
}

func TestRectOverlaps(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"完全重叠", Rect{X: 2, Y: 2, W: 4, H: 4}, true},
		{"部分重叠", Rect{X: 8, Y: 8, W: 5, H: 5}, true},
		{"边缘相接不算重叠", Rect{X: 10, Y: 0, W: 5, H: 5}, false},
		{"完全分离", Rect{X: 20, Y: 20, W: 5, H: 5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps = %v, 期望 %v", got, tt.want)
			}
			if got := tt.b.Overlaps(a); got != tt.want {
				t.Errorf("Overlaps 不对称: %v", got)
			}
		})
	}
}

func TestPickWeighted(t *testing.T) {
	weights := []float64{0.5, 0.3, 0.2}
	tests := []struct {
		r    float64
		want int
	}{
		{0.0, 0},
		{0.49, 0},
		{0.5, 1},
		{0.79, 1},
		{0.8, 2},
		{0.9999999, 2},
	}
	for _, tt := range tests {
		if got := PickWeighted(tt.r, weights); got != tt.want {
			t.Errorf("PickWeighted(%v) = %d, 期望 %d", tt.r, got, tt.want)
		}
	}

	if got := PickWeighted(0.5, []float64{0, 0}); got != -1 {
		t.Errorf("零权重应返回 -1, got %d", got)
	}
	if got := PickWeighted(0.1, []float64{0, 1}); got != 1 {
		t.Errorf("应跳过零权重项, got %d", got)
	}
}

func TestEasing(t *testing.T) {
	if math.Abs(EaseOutCubic(0.5)-0.875) > 1e-9 {
		t.Errorf("EaseOutCubic(0.5) = %v", EaseOutCubic(0.5))
	}
	if EaseLinear(2) != 1 {
		t.Error("EaseLinear 应截断到 1")
	}
	if p := Pulse(0, 60); p != 0 {
		t.Errorf("Pulse(0) = %v, 期望 0", p)
	}
	if p := Pulse(30, 60); math.Abs(p-1) > 1e-9 {
		t.Errorf("Pulse(半周期) = %v, 期望 1", p)
	}
}
