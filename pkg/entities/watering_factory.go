package entities

import (
	"github.com/decker502/xmastree/pkg/components"
	"github.com/decker502/xmastree/pkg/config"
	"github.com/decker502/xmastree/pkg/ecs"
)

// WateringEntities 水壶和水流
type WateringEntities struct {
	Waterpot ecs.EntityID
	Water    ecs.EntityID
}

// NewWateringEntities 创建水壶和水流实体
// 水流初始隐藏，指针进入水流区域后显示
func NewWateringEntities(em *ecs.EntityManager) WateringEntities {
	water := newSpriteEntity(em, 0, 0, config.ZWater, config.SceneDepth, &components.SpriteComponent{
		Hidden:           true,
		PlaceholderW:     config.WaterPlaceholderW,
		PlaceholderH:     config.WaterPlaceholderH,
		PlaceholderColor: config.PlaceholderWaterColor,
	})
	pot := newSpriteEntity(em, 0, 0, config.ZWaterpot, config.SceneDepth, &components.SpriteComponent{
		PlaceholderW:     config.WaterpotPlaceholderW,
		PlaceholderH:     config.WaterpotPlaceholderH,
		PlaceholderColor: config.PlaceholderWaterpotColor,
	})
	CenterPivot(em, pot)
	return WateringEntities{Waterpot: pot, Water: water}
}

// CenterPivot 把精灵的旋转中心设为当前尺寸的中心
// 更换图片后尺寸可能变化，需要重新调用
func CenterPivot(em *ecs.EntityManager, id ecs.EntityID) {
	sprite, ok := ecs.GetComponent[*components.SpriteComponent](em, id)
	if !ok {
		return
	}
	w, h := sprite.Size()
	sprite.PivotX, sprite.PivotY = w/2, h/2
}
