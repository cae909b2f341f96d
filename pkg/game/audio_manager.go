package game

import (
	"fmt"
	"log"
)

// audioPlayer 是 *audio.Player 中被用到的部分
type audioPlayer interface {
	Play()
	Pause()
	Rewind() error
	SetVolume(volume float64)
	IsPlaying() bool
}

// playerSource 按资源 ID 创建（或取出缓存的）播放器
type playerSource func(resourceID string, loop bool) (audioPlayer, error)

// AudioManager 音频管理器
// 职责：
//   - 播放背景音乐（同一时间一首）、循环音效（同一时间一个）和单次音效
//   - 从 SettingsManager 读取音量和开关
//
// 所有方法对 nil 接收者安全，测试和无声模式下可以直接传 nil。
type AudioManager struct {
	source          playerSource
	settingsManager *SettingsManager

	players map[string]audioPlayer // "loop:ID" / "once:ID" -> player

	currentMusic   audioPlayer
	currentMusicID string
	currentLoop    audioPlayer
	currentLoopID  string
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - rm: ResourceManager 实例（用于创建播放器，可为 nil：静音）
//   - sm: SettingsManager 实例（用于读取音量设置，可为 nil：默认音量）
func NewAudioManager(rm *ResourceManager, sm *SettingsManager) *AudioManager {
	var source playerSource
	if rm != nil {
		source = func(id string, loop bool) (audioPlayer, error) {
			return rm.LoadAudioByID(id, loop)
		}
	}
	return newAudioManager(source, sm)
}

func newAudioManager(source playerSource, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		source:          source,
		settingsManager: sm,
		players:         make(map[string]audioPlayer),
	}
}

// PlaySound 从头播放一次音效，返回是否成功播放
func (am *AudioManager) PlaySound(soundID string) bool {
	if am == nil || !am.soundEnabled() {
		return false
	}

	player := am.player(soundID, false)
	if player == nil {
		return false
	}

	player.SetVolume(am.getSoundVolume())
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()
	return true
}

// PlayMusic 循环播放背景音乐，已在播放同一首时不重新开始
func (am *AudioManager) PlayMusic(musicID string) bool {
	if am == nil {
		return false
	}
	if am.currentMusicID == musicID && am.currentMusic != nil {
		if am.musicEnabled() && !am.currentMusic.IsPlaying() {
			am.currentMusic.Play()
		}
		return am.musicEnabled()
	}

	am.StopMusic()

	player := am.player(musicID, true)
	if player == nil {
		return false
	}

	volume := am.getMusicVolume()
	player.SetVolume(volume)
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind music %s: %v", musicID, err)
	}

	// 音乐关闭时仍记住当前曲目，重新开启时继续播放
	am.currentMusic = player
	am.currentMusicID = musicID
	if !am.musicEnabled() {
		return false
	}
	player.Play()

	log.Printf("[AudioManager] Playing music: %s (volume: %.2f)", musicID, volume)
	return true
}

// StopMusic 停止当前背景音乐
func (am *AudioManager) StopMusic() {
	if am == nil || am.currentMusic == nil {
		return
	}
	am.currentMusic.Pause()
	am.currentMusic = nil
	am.currentMusicID = ""
}

// CurrentMusic 返回当前背景音乐 ID
func (am *AudioManager) CurrentMusic() string {
	if am == nil {
		return ""
	}
	return am.currentMusicID
}

// StartLoop 开始循环音效（水声）
// 已在播放同一个 ID 时什么也不做；不同 ID 会替换旧的循环
func (am *AudioManager) StartLoop(soundID string) bool {
	if am == nil {
		return false
	}
	if am.currentLoopID == soundID && am.currentLoop != nil {
		return true
	}
	am.StopLoop()

	if !am.soundEnabled() {
		return false
	}
	player := am.player(soundID, true)
	if player == nil {
		return false
	}

	player.SetVolume(am.getSoundVolume())
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind loop %s: %v", soundID, err)
	}
	player.Play()
	am.currentLoop = player
	am.currentLoopID = soundID
	return true
}

// StopLoop 停止当前循环音效
func (am *AudioManager) StopLoop() {
	if am == nil || am.currentLoop == nil {
		return
	}
	am.currentLoop.Pause()
	am.currentLoop = nil
	am.currentLoopID = ""
}

// CurrentLoop 返回当前循环音效 ID
func (am *AudioManager) CurrentLoop() string {
	if am == nil {
		return ""
	}
	return am.currentLoopID
}

// StopAll 停止音乐、循环音效和所有正在播放的单次音效
func (am *AudioManager) StopAll() {
	if am == nil {
		return
	}
	am.StopMusic()
	am.StopLoop()
	for _, player := range am.players {
		if player != nil && player.IsPlaying() {
			player.Pause()
		}
	}
}

// SetMusicEnabled 开关背景音乐并立即生效
func (am *AudioManager) SetMusicEnabled(enabled bool) {
	if am == nil {
		return
	}
	if am.settingsManager != nil {
		am.settingsManager.SetMusicEnabled(enabled)
	}
	if am.currentMusic == nil {
		return
	}
	if enabled {
		am.currentMusic.SetVolume(am.getMusicVolume())
		am.currentMusic.Play()
	} else {
		am.currentMusic.Pause()
	}
}

// SetSoundEnabled 开关音效，关闭时停止循环音效
func (am *AudioManager) SetSoundEnabled(enabled bool) {
	if am == nil {
		return
	}
	if am.settingsManager != nil {
		am.settingsManager.SetSoundEnabled(enabled)
	}
	if !enabled {
		am.StopLoop()
	}
}

// MusicEnabled 背景音乐是否开启
func (am *AudioManager) MusicEnabled() bool {
	return am != nil && am.musicEnabled()
}

// SoundEnabled 音效是否开启
func (am *AudioManager) SoundEnabled() bool {
	return am != nil && am.soundEnabled()
}

// SetMusicVolume 设置音乐音量并立即应用到当前音乐
func (am *AudioManager) SetMusicVolume(volume float64) {
	if am == nil {
		return
	}
	if am.settingsManager != nil {
		am.settingsManager.SetMusicVolume(volume)
	}
	if am.currentMusic != nil {
		am.currentMusic.SetVolume(am.getMusicVolume())
	}
}

// SetSoundVolume 设置音效音量，影响当前循环音效和后续音效
func (am *AudioManager) SetSoundVolume(volume float64) {
	if am == nil {
		return
	}
	if am.settingsManager != nil {
		am.settingsManager.SetSoundVolume(volume)
	}
	if am.currentLoop != nil {
		am.currentLoop.SetVolume(am.getSoundVolume())
	}
}

// PreloadSounds 提前创建播放器，避免首次播放时解码
func (am *AudioManager) PreloadSounds(soundIDs []string) {
	if am == nil {
		return
	}
	for _, id := range soundIDs {
		am.player(id, false)
	}
	log.Printf("[AudioManager] Preloaded %d sounds", len(soundIDs))
}

// player 获取或创建播放器，失败时记录日志并返回 nil
func (am *AudioManager) player(resourceID string, loop bool) audioPlayer {
	key := playerKey(resourceID, loop)
	if player, ok := am.players[key]; ok {
		return player
	}
	if am.source == nil {
		return nil
	}

	player, err := am.source(resourceID, loop)
	if err != nil {
		log.Printf("[AudioManager] Warning: Failed to load %s: %v", resourceID, err)
		// 记住失败，避免每帧重试
		am.players[key] = nil
		return nil
	}
	am.players[key] = player
	return player
}

func playerKey(resourceID string, loop bool) string {
	if loop {
		return fmt.Sprintf("loop:%s", resourceID)
	}
	return fmt.Sprintf("once:%s", resourceID)
}

func (am *AudioManager) musicEnabled() bool {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().MusicEnabled
	}
	return true
}

func (am *AudioManager) soundEnabled() bool {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundEnabled
	}
	return true
}

// getMusicVolume 获取音乐音量设置
func (am *AudioManager) getMusicVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().MusicVolume
	}
	return 0.7
}

// getSoundVolume 获取音效音量设置
func (am *AudioManager) getSoundVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundVolume
	}
	return 0.8
}
