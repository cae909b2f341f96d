package config

// Loading Scene 配置常量

const (
	// LoadingSpinnerX, LoadingSpinnerY 加载转圈中心
	LoadingSpinnerX float64 = 400
	LoadingSpinnerY float64 = 270

	// LoadingSpinnerRadius 转圈半径
	LoadingSpinnerRadius float64 = 22

	// LoadingSpinnerDots 转圈圆点数量
	LoadingSpinnerDots = 10

	// LoadingSpinnerPeriod 转一圈所需时间（秒）
	LoadingSpinnerPeriod float64 = 0.8

	// LoadingBarX, LoadingBarY 进度条左上角
	LoadingBarX float64 = 250
	LoadingBarY float64 = 330

	// LoadingBarWidth, LoadingBarHeight 进度条尺寸
	LoadingBarWidth  float64 = 300
	LoadingBarHeight float64 = 8

	// LoadingItemsPerFrame 每帧加载的资源数量，保证转圈动画不卡顿
	LoadingItemsPerFrame = 2

	// LoadingMinDuration 加载画面最短显示时间（秒）
	LoadingMinDuration float64 = 0.5
)

// 礼物展开时间线（秒）
const (
	GiftLidDuration    float64 = 0.6
	GiftCouponDelay    float64 = 0.4
	GiftCouponDuration float64 = 0.8

	// GiftLidLift 盒盖上升距离
	GiftLidLift float64 = 120

	// GiftCouponRise 优惠券上升距离
	GiftCouponRise float64 = 220
)
