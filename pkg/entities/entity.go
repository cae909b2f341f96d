// Package entities 提供场景实体的工厂函数
//
// 工厂只负责组装组件（位置、精灵、层级等），图片由场景在创建后
// 按资源 ID 设置；没有图片时 RenderSystem 绘制占位色块。
package entities

import (
	"github.com/decker502/xmastree/pkg/components"
	"github.com/decker502/xmastree/pkg/ecs"
)

// newSpriteEntity 创建带位置、精灵、层级组件的实体
func newSpriteEntity(em *ecs.EntityManager, x, y float64, z int, depth float64, sprite *components.SpriteComponent) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, sprite)
	ecs.AddComponent(em, id, &components.LayerComponent{Z: z, Depth: depth})
	return id
}
