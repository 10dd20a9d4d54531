package utils

import "math"

// 缓动函数
//
// 用于覆盖层动画（Boss 警告横幅滑入、商店面板淡入等）。
// 输入进度 t ∈ [0, 1]，输出 ∈ [0, 1]；超出范围的输入先被截断。

// EaseLinear 线性缓动
func EaseLinear(t float64) float64 {
	return Clamp(t, 0, 1)
}

// EaseOutCubic 三次方缓出：开始快，结束慢
// f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	t = Clamp(t, 0, 1)
	return 1 - math.Pow(1-t, 3)
}

// EaseInOutSine 正弦缓入缓出，用于呼吸闪烁
func EaseInOutSine(t float64) float64 {
	t = Clamp(t, 0, 1)
	return -(math.Cos(math.Pi*t) - 1) / 2
}

// Pulse 返回 [0,1] 的周期脉冲值
// frame 为帧计数，period 为一个完整周期的帧数
func Pulse(frame, period int) float64 {
	if period <= 0 {
		return 1
	}
	phase := float64(frame%period) / float64(period)
	if phase < 0.5 {
		return EaseInOutSine(phase * 2)
	}
	return EaseInOutSine((1 - phase) * 2)
}
