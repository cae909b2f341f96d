package entities

import (
	"github.com/decker502/xmastree/pkg/components"
	"github.com/decker502/xmastree/pkg/config"
	"github.com/decker502/xmastree/pkg/ecs"
)

// GiftEntities 礼物盒身、盒盖和优惠券
type GiftEntities struct {
	Gift   ecs.EntityID
	Lid    ecs.EntityID
	Coupon ecs.EntityID
}

// NewGiftEntities 创建礼物实体
//
// 三个实体初始都隐藏：树长成后场景显示盒身，打开礼物后
// GiftRevealSystem 显示盒盖和优惠券并推进动画。
// 盒身上的 GiftRevealComponent 记录另外两个实体。
func NewGiftEntities(em *ecs.EntityManager) GiftEntities {
	gift := newSpriteEntity(em, config.GiftX, config.GiftY, config.ZGift, config.SceneDepth, &components.SpriteComponent{
		Hidden:           true,
		PlaceholderW:     config.GiftWidth,
		PlaceholderH:     config.GiftHeight,
		PlaceholderColor: config.PlaceholderGiftColor,
	})
	lid := newSpriteEntity(em, config.GiftX, config.GiftY, config.ZGift+1, config.SceneDepth, &components.SpriteComponent{
		Hidden:           true,
		PlaceholderW:     config.GiftWidth,
		PlaceholderH:     config.GiftLidPlaceholderH,
		PlaceholderColor: config.PlaceholderLidColor,
	})
	couponX := config.GiftX + (config.GiftWidth-config.CouponPlaceholderW)/2
	coupon := newSpriteEntity(em, couponX, config.GiftY, config.ZCoupon, config.SceneDepth, &components.SpriteComponent{
		Hidden:           true,
		PlaceholderW:     config.CouponPlaceholderW,
		PlaceholderH:     config.CouponPlaceholderH,
		PlaceholderColor: config.PlaceholderCouponColor,
	})

	ecs.AddComponent(em, gift, &components.GiftRevealComponent{
		LidEntity:    lid,
		CouponEntity: coupon,
		LidStartY:    config.GiftY,
		CouponStartY: config.GiftY,
	})
	return GiftEntities{Gift: gift, Lid: lid, Coupon: coupon}
}
