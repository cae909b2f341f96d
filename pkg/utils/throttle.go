package utils

import "time"

// Throttle 限制事件频率：两次放行之间至少间隔 interval
//
// 时间由调用方传入（场景时钟），因此结果可重复。
// 被拒绝的事件不会排队；调用方每帧都重新提交最新值，
// 间隔到期后的第一次提交即为"尾部"更新。
type Throttle struct {
	interval time.Duration
	last     time.Duration
	fired    bool
}

// NewThrottle 创建节流器，interval <= 0 时每次都放行
func NewThrottle(interval time.Duration) *Throttle {
	return &Throttle{interval: interval}
}

// Allow 判断 now 时刻的事件是否放行
func (t *Throttle) Allow(now time.Duration) bool {
	if !t.fired || t.interval <= 0 || now-t.last >= t.interval {
		t.fired = true
		t.last = now
		return true
	}
	return false
}

// Reset 清除状态，下一次事件立即放行
func (t *Throttle) Reset() {
	t.fired = false
	t.last = 0
}
