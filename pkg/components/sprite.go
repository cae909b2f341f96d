package components

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// SpriteComponent 存储实体的视觉表现(当前绘制的图像)
//
// Image 为 nil 时渲染系统绘制 PlaceholderW × PlaceholderH 的纯色矩形，
// 缺少美术资源时场景仍然可玩。
type SpriteComponent struct {
	Image   *ebiten.Image
	ImageID string // 当前图像的资源ID，用于判断是否需要切换

	Hidden   bool
	Rotation float64 // 绕 (PivotX, PivotY) 的旋转角度（弧度）
	PivotX   float64
	PivotY   float64
	Alpha    float64 // 0 视为 1（不透明）

	PlaceholderW     float64
	PlaceholderH     float64
	PlaceholderColor color.Color
}

// Size 返回精灵尺寸，无图像时返回占位尺寸
func (s *SpriteComponent) Size() (float64, float64) {
	if s.Image != nil {
		b := s.Image.Bounds()
		return float64(b.Dx()), float64(b.Dy())
	}
	return s.PlaceholderW, s.PlaceholderH
}

// EffectiveAlpha 返回实际透明度
func (s *SpriteComponent) EffectiveAlpha() float64 {
	if s.Alpha <= 0 {
		return 1
	}
	return s.Alpha
}
