package growth

// Status 是侧边角色的表现状态
type Status string

const (
	// StatusBored 没有在浇树
	StatusBored Status = "bored"
	// StatusMagic 正在浇树
	StatusMagic Status = "magic"
	// StatusCelebrate 树已长成
	StatusCelebrate Status = "celebrate"
)

// Phase 是状态机的阶段
//
//	Growing → FullyGrown → GiftRevealed
//
// 只能单向前进
type Phase int

const (
	PhaseGrowing Phase = iota
	PhaseFullyGrown
	PhaseGiftRevealed
)

// String 返回阶段名称，用于日志
func (p Phase) String() string {
	switch p {
	case PhaseGrowing:
		return "growing"
	case PhaseFullyGrown:
		return "fully-grown"
	case PhaseGiftRevealed:
		return "gift-revealed"
	default:
		return "unknown"
	}
}
