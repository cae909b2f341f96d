package growth

import "time"

// Ticker 以固定周期驱动回调，时间来源是游戏帧的 deltaTime
//
// 场景创建时创建 Ticker，场景销毁时调用 Stop。停止后的 Ticker
// 不会再触发回调，避免场景消失后仍在修改状态。
type Ticker struct {
	period  time.Duration
	origin  time.Time
	elapsed time.Duration
	next    time.Duration
	fn      func(now time.Time)
	stopped bool
}

// NewTicker 创建周期触发器
//
// 参数：
//   - period: 触发周期，<= 0 时使用 DefaultTickPeriod
//   - origin: 场景时钟零点，回调收到的时刻为 origin + 已流逝时间
//   - fn: 每个周期调用一次
func NewTicker(period time.Duration, origin time.Time, fn func(now time.Time)) *Ticker {
	if period <= 0 {
		period = DefaultTickPeriod
	}
	return &Ticker{
		period: period,
		origin: origin,
		next:   period,
		fn:     fn,
	}
}

// Advance 推进时钟，按跨过的周期边界依次触发回调
//
// 返回：
//   - int: 本次触发的次数
func (t *Ticker) Advance(dt time.Duration) int {
	if t.stopped || dt <= 0 {
		return 0
	}

	t.elapsed += dt
	fired := 0
	for !t.stopped && t.elapsed >= t.next {
		now := t.origin.Add(t.next)
		t.next += t.period
		fired++
		if t.fn != nil {
			t.fn(now)
		}
	}
	return fired
}

// Now 返回当前场景时刻
func (t *Ticker) Now() time.Time {
	return t.origin.Add(t.elapsed)
}

// Period 返回触发周期
func (t *Ticker) Period() time.Duration {
	return t.period
}

// Stop 停止触发器
//
// 返回：
//   - bool: 第一次调用返回 true，之后返回 false
func (t *Ticker) Stop() bool {
	if t.stopped {
		return false
	}
	t.stopped = true
	return true
}

// Stopped 是否已停止
func (t *Ticker) Stopped() bool {
	return t.stopped
}
