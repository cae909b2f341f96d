package systems

import (
	"log"

	"github.com/decker502/xmastree/pkg/components"
	"github.com/decker502/xmastree/pkg/config"
	"github.com/decker502/xmastree/pkg/ecs"
	"github.com/decker502/xmastree/pkg/utils"
)

// GiftRevealSystem 推进礼物展开动画
//
// 时间线（秒）：
//
//	0 ─────────── GiftLidDuration              盒盖上升并淡出
//	GiftCouponDelay ─── + GiftCouponDuration   优惠券升起并淡入
type GiftRevealSystem struct {
	entityManager *ecs.EntityManager
}

// NewGiftRevealSystem 创建礼物展开系统
func NewGiftRevealSystem(em *ecs.EntityManager) *GiftRevealSystem {
	return &GiftRevealSystem{entityManager: em}
}

// Start 开始展开，已经开始的礼物不会重新开始
func (s *GiftRevealSystem) Start(giftEntity ecs.EntityID) bool {
	reveal, ok := ecs.GetComponent[*components.GiftRevealComponent](s.entityManager, giftEntity)
	if !ok || reveal.Phase != components.GiftClosed {
		return false
	}
	reveal.Phase = components.GiftLidLifting
	reveal.Elapsed = 0

	if lid, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, reveal.LidEntity); ok {
		lid.Hidden = false
		lid.Alpha = 1
	}
	if coupon, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, reveal.CouponEntity); ok {
		coupon.Hidden = false
		coupon.Alpha = 0.01
	}
	log.Printf("[GiftRevealSystem] 礼物 %d 开始展开", giftEntity)
	return true
}

// Update 推进所有正在展开的礼物
func (s *GiftRevealSystem) Update(dt float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.GiftRevealComponent](s.entityManager) {
		reveal, _ := ecs.GetComponent[*components.GiftRevealComponent](s.entityManager, id)
		if reveal.Phase == components.GiftClosed || reveal.Phase == components.GiftRevealed {
			continue
		}
		reveal.Elapsed += dt
		s.apply(reveal)
	}
}

func (s *GiftRevealSystem) apply(reveal *components.GiftRevealComponent) {
	lidT := utils.Clamp01(reveal.Elapsed / config.GiftLidDuration)
	if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, reveal.LidEntity); ok {
		pos.Y = reveal.LidStartY - config.GiftLidLift*utils.EaseOutCubic(lidT)
	}
	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, reveal.LidEntity); ok {
		if lidT >= 1 {
			sprite.Hidden = true
		} else {
			sprite.Alpha = maxAlpha(1 - lidT)
		}
	}

	couponT := utils.Clamp01((reveal.Elapsed - config.GiftCouponDelay) / config.GiftCouponDuration)
	if couponT > 0 {
		reveal.Phase = components.GiftCouponRising
	}
	if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, reveal.CouponEntity); ok {
		pos.Y = reveal.CouponStartY - config.GiftCouponRise*utils.EaseOutQuad(couponT)
	}
	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, reveal.CouponEntity); ok {
		sprite.Alpha = maxAlpha(couponT)
	}

	if lidT >= 1 && couponT >= 1 {
		reveal.Phase = components.GiftRevealed
	}
}

// maxAlpha 透明度 0 在 SpriteComponent 中表示不透明，这里保留一个极小值
func maxAlpha(a float64) float64 {
	if a < 0.01 {
		return 0.01
	}
	return a
}
