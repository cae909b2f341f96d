package game

// GameState 存储跨场景共享的全局对象
// 这是一个单例：LoadingScene 和 TreeScene 通过它拿到同一个音频和设置管理器
type GameState struct {
	audioManager    *AudioManager
	settingsManager *SettingsManager

	// Variant 当前使用的场景变体名称
	Variant string
}

// 全局单例实例
var globalGameState *GameState

// GetGameState 返回全局 GameState 单例（延迟初始化）
func GetGameState() *GameState {
	if globalGameState == nil {
		globalGameState = &GameState{}
	}
	return globalGameState
}

// ResetGameState 丢弃单例，测试之间使用
func ResetGameState() {
	globalGameState = nil
}

// SetAudioManager 注册音频管理器
func (gs *GameState) SetAudioManager(am *AudioManager) {
	gs.audioManager = am
}

// GetAudioManager 返回音频管理器，未注册时为 nil
// AudioManager 的方法对 nil 接收者是安全的
func (gs *GameState) GetAudioManager() *AudioManager {
	return gs.audioManager
}

// SetSettingsManager 注册设置管理器
func (gs *GameState) SetSettingsManager(sm *SettingsManager) {
	gs.settingsManager = sm
}

// GetSettingsManager 返回设置管理器，未注册时为 nil
func (gs *GameState) GetSettingsManager() *SettingsManager {
	return gs.settingsManager
}
