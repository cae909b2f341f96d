package config

import "image/color"

// 布局配置常量
// 所有坐标使用"场景逻辑坐标"（相对于场景最左侧背景的左上角）
// 视差关闭时场景宽度等于视口宽度，场景坐标与视口坐标一致

// 窗口 / 视口
const (
	// GameWindowWidth 逻辑视口宽度，Layout 固定返回此值，ebiten 负责缩放到实际窗口
	GameWindowWidth = 800

	// GameWindowHeight 逻辑视口高度
	GameWindowHeight = 600

	// GameWindowTitle 窗口标题
	GameWindowTitle = "Grow a Christmas Tree"
)

// 生长状态机的默认时间参数（毫秒），scene.yaml 未填写时使用
const (
	DefaultTickPeriodMs      = 500
	DefaultDwellThresholdMs  = 2000
	DefaultPointerThrottleMs = 500
)

// 场景元素位置
const (
	// CharacterX, CharacterY 侧边角色左上角
	CharacterX = 150.0
	CharacterY = 500.0

	// WaterOffsetX, WaterOffsetY 水流相对水壶（指针）的偏移
	WaterOffsetX = 80.0
	WaterOffsetY = 20.0

	// WaterpotTiltRadians 出水时水壶倾斜 45°
	WaterpotTiltRadians = 0.7853981633974483

	// GiftX, GiftY 礼物盒左上角（树长成后出现在树下）
	GiftX = 430.0
	GiftY = 470.0

	// GiftWidth, GiftHeight 礼物盒点击区域
	GiftWidth  = 90.0
	GiftHeight = 80.0
)

// 视差层深度：相对摄像机偏移的移动比例
const (
	BackgroundDepth = 0.5
	MidgroundDepth  = 0.75
	SceneDepth      = 1.0
	ForegroundDepth = 1.25
	ScreenDepth     = 0.0 // 跟随视口，不随摄像机移动
)

// CameraEaseRate 摄像机每秒向目标靠近的比例系数
const CameraEaseRate = 4.0

// 渲染层级（从底到顶）
const (
	ZBackground = iota * 10
	ZMidground
	ZTree
	ZGift
	ZCharacter
	ZWater
	ZForeground
	ZWaterpot
	ZCoupon
)

// 缺少图片时的占位尺寸
const (
	// 树根在 TreeBaseY，水平居中于树区域；占位矩形随生长阶段变高变宽
	TreeBaseY             = 600.0
	TreePlaceholderBaseW  = 40.0
	TreePlaceholderBaseH  = 60.0
	TreePlaceholderGrowW  = 12.0
	TreePlaceholderGrowH  = 45.0
	CharacterPlaceholderW = 60.0
	CharacterPlaceholderH = 90.0
	WaterpotPlaceholderW  = 70.0
	WaterpotPlaceholderH  = 45.0
	WaterPlaceholderW     = 12.0
	WaterPlaceholderH     = 60.0
	GiftLidPlaceholderH   = 18.0
	CouponPlaceholderW    = 160.0
	CouponPlaceholderH    = 70.0
	MidgroundPlaceholderY = 450.0
	MidgroundPlaceholderH = 150.0
)

// 缺少图片时的占位颜色
var (
	PlaceholderTreeColor      = color.RGBA{R: 34, G: 139, B: 34, A: 255}
	PlaceholderBoredColor     = color.RGBA{R: 30, G: 80, B: 200, A: 255}
	PlaceholderMagicColor     = color.RGBA{R: 150, G: 60, B: 210, A: 255}
	PlaceholderCelebrateColor = color.RGBA{R: 240, G: 120, B: 30, A: 255}
	PlaceholderWaterColor     = color.RGBA{R: 120, G: 180, B: 255, A: 200}
	PlaceholderWaterpotColor  = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	PlaceholderGiftColor      = color.RGBA{R: 200, G: 30, B: 40, A: 255}
	PlaceholderLidColor       = color.RGBA{R: 230, G: 190, B: 40, A: 255}
	PlaceholderCouponColor    = color.RGBA{R: 250, G: 245, B: 230, A: 255}
	SkyColor                  = color.RGBA{R: 18, G: 32, B: 64, A: 255}
	GroundColor               = color.RGBA{R: 235, G: 240, B: 250, A: 255}
)
