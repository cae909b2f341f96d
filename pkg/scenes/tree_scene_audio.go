package scenes

import "github.com/decker502/xmastree/pkg/growth"

// 音频资源 ID
const (
	soundBGM       = "SOUND_BGM"
	soundCelebrate = "SOUND_CELEBRATE"
	soundWater     = "SOUND_WATER"
	soundGrow      = "SOUND_GROW"
	soundGiftOpen  = "SOUND_GIFT_OPEN"
)

// musicFor 树长成后切换到庆祝音乐
func musicFor(status growth.Status) string {
	if status == growth.StatusCelebrate {
		return soundCelebrate
	}
	return soundBGM
}

// syncAudio 把控制器状态同步到声音
//   - 水流出现时循环播放水声
//   - 每长一级播放一次生长音效
//   - 树长成后切换背景音乐
func (s *TreeScene) syncAudio() {
	if s.controller.ShouldWaterComeOut() {
		s.audioManager.StartLoop(soundWater)
	} else {
		s.audioManager.StopLoop()
	}

	if s.grewSinceSync {
		s.grewSinceSync = false
		s.audioManager.PlaySound(soundGrow)
	}

	s.audioManager.PlayMusic(musicFor(s.controller.Status()))
}
