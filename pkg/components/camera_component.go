package components

// CameraComponent 视差摄像机
// 摄像机只在水平方向移动，X 为场景左边缘到视口左边缘的距离
type CameraComponent struct {
	// X 当前水平偏移（场景坐标）
	X float64

	// TargetX 目标水平偏移
	TargetX float64

	// MaxX 最大偏移 = 场景宽度 - 视口宽度，0 表示禁用视差
	MaxX float64

	// EaseRate 每秒向目标靠近的比例系数
	EaseRate float64
}
