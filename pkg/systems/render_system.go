package systems

import (
	"image/color"
	"sort"

	"github.com/decker502/xmastree/pkg/components"
	"github.com/decker502/xmastree/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem 按层级绘制场景中的精灵
//
// 每个实体需要 PositionComponent、SpriteComponent、LayerComponent。
// 绘制顺序：Z 升序，Z 相同时按实体 ID。
// 屏幕位置 = 场景位置 - cameraX * Depth（视差）。
type RenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager) *RenderSystem {
	return &RenderSystem{entityManager: em}
}

// drawItem 一个待绘制的实体
type drawItem struct {
	id      ecs.EntityID
	pos     *components.PositionComponent
	sprite  *components.SpriteComponent
	layer   *components.LayerComponent
	screenX float64
	screenY float64
}

// collect 收集可见实体并排序
func (s *RenderSystem) collect(cameraX float64) []drawItem {
	ids := ecs.GetEntitiesWith3[
		*components.PositionComponent,
		*components.SpriteComponent,
		*components.LayerComponent,
	](s.entityManager)

	items := make([]drawItem, 0, len(ids))
	for _, id := range ids {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		layer, _ := ecs.GetComponent[*components.LayerComponent](s.entityManager, id)
		if sprite.Hidden {
			continue
		}
		items = append(items, drawItem{
			id:      id,
			pos:     pos,
			sprite:  sprite,
			layer:   layer,
			screenX: pos.X - cameraX*layer.Depth,
			screenY: pos.Y,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].layer.Z != items[j].layer.Z {
			return items[i].layer.Z < items[j].layer.Z
		}
		return items[i].id < items[j].id
	})
	return items
}

// Draw 绘制所有可见精灵
func (s *RenderSystem) Draw(screen *ebiten.Image, cameraX float64) {
	for _, item := range s.collect(cameraX) {
		s.drawItem(screen, item)
	}
}

func (s *RenderSystem) drawItem(screen *ebiten.Image, item drawItem) {
	sprite := item.sprite
	alpha := sprite.EffectiveAlpha()

	if sprite.Image == nil {
		// 缺少图片：绘制占位色块
		if sprite.PlaceholderColor == nil || sprite.PlaceholderW <= 0 || sprite.PlaceholderH <= 0 {
			return
		}
		clr := sprite.PlaceholderColor
		if alpha < 1 {
			clr = fadeColor(clr, alpha)
		}
		vector.DrawFilledRect(screen,
			float32(item.screenX), float32(item.screenY),
			float32(sprite.PlaceholderW), float32(sprite.PlaceholderH),
			clr, false)
		return
	}

	op := &ebiten.DrawImageOptions{}
	if sprite.Rotation != 0 {
		op.GeoM.Translate(-sprite.PivotX, -sprite.PivotY)
		op.GeoM.Rotate(sprite.Rotation)
		op.GeoM.Translate(sprite.PivotX, sprite.PivotY)
	}
	op.GeoM.Translate(item.screenX, item.screenY)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(sprite.Image, op)
}

// fadeColor 按 alpha 缩放颜色（预乘）
func fadeColor(c color.Color, alpha float64) color.Color {
	r, g, b, a := c.RGBA()
	scale := func(v uint32) uint16 { return uint16(float64(v) * alpha) }
	return color.RGBA64{R: scale(r), G: scale(g), B: scale(b), A: scale(a)}
}
