package components

import "github.com/decker502/xmastree/pkg/ecs"

// GiftRevealPhase 礼物展开阶段
type GiftRevealPhase int

const (
	// GiftClosed 礼物未打开
	GiftClosed GiftRevealPhase = iota
	// GiftLidLifting 盒盖上升、淡出
	GiftLidLifting
	// GiftCouponRising 优惠券从盒中升起
	GiftCouponRising
	// GiftRevealed 展开完成
	GiftRevealed
)

// GiftRevealComponent 礼物展开时间线
// 由 GiftRevealSystem 推进，驱动盒盖和优惠券实体的位置与透明度
type GiftRevealComponent struct {
	Phase   GiftRevealPhase
	Elapsed float64 // 自打开以来的秒数

	LidEntity    ecs.EntityID // 盒盖实体
	CouponEntity ecs.EntityID // 优惠券实体

	LidStartY    float64
	CouponStartY float64
}
