package utils

import "math"

// 缓动函数：输入进度 t ∈ [0, 1]，返回缓动后的进度。
// 超出范围的输入先被截断。

// EaseOutCubic 三次方缓出，开始快结束慢（礼盒盖子弹起）
//
//	f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	t = Clamp01(t)
	return 1 - math.Pow(1-t, 3)
}

// EaseOutQuad 二次方缓出，比 Cubic 柔和（优惠券升起）
//
//	f(t) = 1 - (1-t)²
func EaseOutQuad(t float64) float64 {
	t = Clamp01(t)
	return 1 - (1-t)*(1-t)
}

// EaseInOutSine 正弦缓入缓出（角色轻微浮动）
func EaseInOutSine(t float64) float64 {
	t = Clamp01(t)
	return -(math.Cos(math.Pi*t) - 1) / 2
}

// Lerp 线性插值，t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp 将 v 限制在 [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 将 v 限制在 [0, 1]
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// ApproachExp 指数逼近：每秒以 rate 的速率从 current 趋近 target
// 与帧率无关，rate <= 0 时直接返回 target
func ApproachExp(current, target, rate, dt float64) float64 {
	if rate <= 0 {
		return target
	}
	k := 1 - math.Exp(-rate*dt)
	next := current + (target-current)*k
	if math.Abs(target-next) < 0.01 {
		return target
	}
	return next
}
