package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game scene (the loading screen or the tree scene).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Closer 是一个可选接口，场景在被替换或程序退出时释放资源
//
// 实现此接口的场景会在以下时机被调用 Close()：
//   - SceneManager.SwitchTo 切换到另一个场景
//   - 游戏窗口关闭（SceneManager.Close）
//
// Close 必须可以重复调用。
type Closer interface {
	Close()
}
