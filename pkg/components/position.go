package components

// PositionComponent 实体左上角在场景逻辑坐标中的位置
type PositionComponent struct {
	X float64
	Y float64
}
