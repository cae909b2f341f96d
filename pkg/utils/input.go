// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState 存储当前帧的输入状态
// 用于统一处理鼠标和触摸输入，坐标为视口逻辑坐标
type InputState struct {
	// 是否有点击/触摸事件刚刚发生
	JustPressed bool
	// 指针位置（鼠标位置或最后一次触摸位置）
	X, Y int
	// 是否有活动的触摸
	IsTouching bool
}

// 保存最后一次触摸位置：手指抬起后水壶停留在原地
var lastTouchX, lastTouchY int

// GetInputState 获取当前帧的输入状态
// 同时支持鼠标点击和触摸输入，优先检测触摸
func GetInputState() InputState {
	state := InputState{}

	// 首先检查触摸输入（移动设备）
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		state.JustPressed = true
		state.X, state.Y = ebiten.TouchPosition(touchIDs[0])
		state.IsTouching = true
		lastTouchX, lastTouchY = state.X, state.Y
		return state
	}

	// 检查是否有活动的触摸（拖动水壶）
	allTouchIDs := ebiten.AppendTouchIDs(nil)
	if len(allTouchIDs) > 0 {
		state.X, state.Y = ebiten.TouchPosition(allTouchIDs[0])
		state.IsTouching = true
		lastTouchX, lastTouchY = state.X, state.Y
		return state
	}

	// 移动端没有悬停，沿用最后一次触摸位置
	if IsMobile() {
		state.X, state.Y = lastTouchX, lastTouchY
		return state
	}

	// 其次检查鼠标输入（桌面设备）
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		state.JustPressed = true
	}
	state.X, state.Y = ebiten.CursorPosition()
	return state
}
