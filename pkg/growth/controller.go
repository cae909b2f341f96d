package growth

import "time"

const (
	// DefaultTickPeriod 生长检查的固定周期
	DefaultTickPeriod = 500 * time.Millisecond
	// DefaultDwellThreshold 连续浇水多久才长一级（严格大于）
	DefaultDwellThreshold = 2000 * time.Millisecond
	// DefaultMaxAge 默认最大树龄
	DefaultMaxAge = 4
)

// Config 是控制器的静态参数
type Config struct {
	MaxAge         int           // 最大树龄（4 或 8）
	TreeZone       Rect          // "正在浇树"判定区域
	WaterZone      Rect          // 水流出现区域（覆盖水壶的活动范围）
	DwellThreshold time.Duration // 连续停留阈值
	StartGrown     bool          // 仅礼物演示模式：创建时即为最大树龄
}

// DefaultConfig 返回最初版本场景的参数
func DefaultConfig() Config {
	return Config{
		MaxAge:         DefaultMaxAge,
		TreeZone:       Rect{MinX: 300, MinY: 400, MaxX: 350, MaxY: 600},
		WaterZone:      Rect{MinX: 200, MinY: 400, MaxX: 800, MaxY: 700},
		DwellThreshold: DefaultDwellThreshold,
	}
}

// Controller 持有指针位置、树龄和礼物状态
//
// 由场景独占，只在 ebiten 的 Update 循环中串行调用，因此不加锁。
// 所有操作都是全函数：任何输入都被接受，不存在错误路径。
type Controller struct {
	cfg Config

	pointerX, pointerY float64
	age                int
	lastDwell          time.Time
	giftOpened         bool
}

// NewController 创建控制器
//
// 参数：
//   - cfg: 控制器参数，MaxAge < 1 时按 1 处理，DwellThreshold <= 0 时使用默认值
//   - now: 创建时刻，作为连续停留计时的起点
func NewController(cfg Config, now time.Time) *Controller {
	if cfg.MaxAge < 1 {
		cfg.MaxAge = 1
	}
	if cfg.DwellThreshold <= 0 {
		cfg.DwellThreshold = DefaultDwellThreshold
	}

	c := &Controller{
		cfg:       cfg,
		lastDwell: now,
	}
	if cfg.StartGrown {
		c.age = cfg.MaxAge
	}
	return c
}

// Config 返回控制器参数
func (c *Controller) Config() Config {
	return c.cfg
}

// UpdatePointer 覆盖指针位置（场景逻辑坐标）
// 场景外的坐标同样被接受，只是区域判定为 false
func (c *Controller) UpdatePointer(x, y float64) {
	c.pointerX = x
	c.pointerY = y
}

// Pointer 返回当前指针位置
func (c *Controller) Pointer() (float64, float64) {
	return c.pointerX, c.pointerY
}

// Tick 执行一次生长检查
//
// 指针离开树区域的每一次 tick 都会把停留计时重置为 now，因此只有
// 连续停留超过 DwellThreshold 才会长一级；长一级后计时重新开始。
// 每次调用至多增长 1，达到 MaxAge 后不再变化。
//
// 返回：
//   - bool: 本次是否长了一级
func (c *Controller) Tick(now time.Time) bool {
	watering := c.IsWateringTree()
	if !watering {
		c.lastDwell = now
		return false
	}

	if now.Sub(c.lastDwell) > c.cfg.DwellThreshold && c.age < c.cfg.MaxAge {
		c.age++
		c.lastDwell = now
		return true
	}
	return false
}

// IsWateringTree 指针是否在树的判定区域内
func (c *Controller) IsWateringTree() bool {
	return c.cfg.TreeZone.Contains(c.pointerX, c.pointerY)
}

// ShouldWaterComeOut 指针是否在水流区域内，只用于决定是否绘制水流和播放水声
func (c *Controller) ShouldWaterComeOut() bool {
	return c.cfg.WaterZone.Contains(c.pointerX, c.pointerY)
}

// Status 推导侧边角色状态
func (c *Controller) Status() Status {
	if c.ShowXmasTree() {
		return StatusCelebrate
	}
	if c.IsWateringTree() {
		return StatusMagic
	}
	return StatusBored
}

// OpenGift 打开礼物
// 只有树已长成时才生效；重复调用等价于调用一次
//
// 返回：
//   - bool: 本次调用是否完成了 false → true 的转换
func (c *Controller) OpenGift() bool {
	if c.giftOpened || c.age != c.cfg.MaxAge {
		return false
	}
	c.giftOpened = true
	return true
}

// Age 返回当前树龄
func (c *Controller) Age() int {
	return c.age
}

// MaxAge 返回最大树龄
func (c *Controller) MaxAge() int {
	return c.cfg.MaxAge
}

// ShowXmasTree 树是否已长成
func (c *Controller) ShowXmasTree() bool {
	return c.age == c.cfg.MaxAge
}

// GiftOpened 礼物是否已打开
func (c *Controller) GiftOpened() bool {
	return c.giftOpened
}

// Phase 返回当前所处阶段
func (c *Controller) Phase() Phase {
	switch {
	case c.giftOpened:
		return PhaseGiftRevealed
	case c.ShowXmasTree():
		return PhaseFullyGrown
	default:
		return PhaseGrowing
	}
}

// Progress 返回生长进度 (0.0 ~ 1.0)
func (c *Controller) Progress() float64 {
	return float64(c.age) / float64(c.cfg.MaxAge)
}
