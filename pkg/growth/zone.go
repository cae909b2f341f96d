// Package growth 实现浇水-长树状态机
//
// 本包只包含纯逻辑，不依赖 ebiten，便于在测试中精确驱动时间。
// 所有坐标均为"场景逻辑坐标"：显示缩放由 ebiten 的 Layout 去除，
// 视差偏移由调用方（见 utils.ViewportToScene）在调用前加回。
package growth

// Rect 是场景逻辑坐标系中的轴对齐矩形，边界包含在内
type Rect struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// Contains 判断点是否落在矩形内（含边界）
func (r Rect) Contains(x, y float64) bool {
	return x >= r.MinX && x <= r.MaxX && y >= r.MinY && y <= r.MaxY
}

// Width 返回矩形宽度
func (r Rect) Width() float64 {
	return r.MaxX - r.MinX
}

// Height 返回矩形高度
func (r Rect) Height() float64 {
	return r.MaxY - r.MinY
}

// Valid 检查矩形是否未倒置
func (r Rect) Valid() bool {
	return r.MinX <= r.MaxX && r.MinY <= r.MaxY
}
