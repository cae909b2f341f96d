package components

// LayerComponent 渲染层级和视差深度
type LayerComponent struct {
	// Z 越大越靠上
	Z int

	// Depth 视差深度：屏幕位置 = 场景位置 - cameraX * Depth
	// 0 表示固定在视口上（UI），1 表示与场景主体同步
	Depth float64
}
