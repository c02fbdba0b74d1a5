package utils

import "math"

// Easing Functions (缓动函数)
//
// 用于面板弹出、淡入等过渡动画。
// 所有函数接受一个进度值 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。

// EaseOutCubic 三次方缓出
// 特点：开始快，结束慢（面板弹出）
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// Lerp 线性插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Progress 返回 elapsed/duration 并截断到 [0, 1]
// duration <= 0 时直接返回 1
func Progress(elapsed, duration float64) float64 {
	if duration <= 0 {
		return 1
	}
	t := elapsed / duration
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
