package game

import (
	"errors"
	"testing"
)

type fakePlayer struct {
	playing bool
	volume  float64
	plays   int
	rewinds int
}

func (p *fakePlayer) Play()                    { p.playing = true; p.plays++ }
func (p *fakePlayer) Pause()                   { p.playing = false }
func (p *fakePlayer) Rewind() error            { p.rewinds++; return nil }
func (p *fakePlayer) SetVolume(volume float64) { p.volume = volume }
func (p *fakePlayer) IsPlaying() bool          { return p.playing }

type fakeSource struct {
	players map[string]*fakePlayer
	calls   int
	missing map[string]bool
}

func newFakeSource() *fakeSource {
	return &fakeSource{players: make(map[string]*fakePlayer), missing: make(map[string]bool)}
}

func (s *fakeSource) load(id string, loop bool) (audioPlayer, error) {
	s.calls++
	if s.missing[id] {
		return nil, errors.New("not found")
	}
	key := playerKey(id, loop)
	p := &fakePlayer{}
	s.players[key] = p
	return p, nil
}

func newTestAudioManager(t *testing.T) (*AudioManager, *fakeSource, *SettingsManager) {
	t.Helper()
	sm, err := NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager(nil) error: %v", err)
	}
	src := newFakeSource()
	return newAudioManager(src.load, sm), src, sm
}

func TestAudioManagerNilSafe(t *testing.T) {
	var am *AudioManager
	if am.PlaySound("SOUND_GROW") || am.PlayMusic("SOUND_BGM") || am.StartLoop("SOUND_WATER") {
		t.Error("nil AudioManager should not report playback")
	}
	am.StopMusic()
	am.StopLoop()
	am.StopAll()
	am.SetMusicEnabled(false)
	am.SetSoundVolume(0.5)
	if am.CurrentMusic() != "" || am.CurrentLoop() != "" {
		t.Error("nil AudioManager should report no current audio")
	}
}

func TestAudioManagerPlayMusic(t *testing.T) {
	am, src, _ := newTestAudioManager(t)

	if !am.PlayMusic("SOUND_BGM") {
		t.Fatal("PlayMusic(SOUND_BGM) failed")
	}
	bgm := src.players["loop:SOUND_BGM"]
	if !bgm.playing || bgm.volume != 0.7 {
		t.Errorf("bgm playing=%v volume=%v", bgm.playing, bgm.volume)
	}

	// 同一首不会重新开始
	am.PlayMusic("SOUND_BGM")
	if bgm.rewinds != 1 {
		t.Errorf("same music rewound %d times, want 1", bgm.rewinds)
	}

	// 换曲停止旧的
	am.PlayMusic("SOUND_CELEBRATE")
	if bgm.playing {
		t.Error("previous music should be paused")
	}
	if am.CurrentMusic() != "SOUND_CELEBRATE" {
		t.Errorf("CurrentMusic() = %s", am.CurrentMusic())
	}
}

func TestAudioManagerMusicToggle(t *testing.T) {
	am, src, sm := newTestAudioManager(t)
	am.PlayMusic("SOUND_BGM")
	bgm := src.players["loop:SOUND_BGM"]

	am.SetMusicEnabled(false)
	if bgm.playing || sm.GetSettings().MusicEnabled {
		t.Error("disabling music should pause it and update settings")
	}
	if am.CurrentMusic() != "SOUND_BGM" {
		t.Error("current music should be remembered while muted")
	}

	am.SetMusicEnabled(true)
	if !bgm.playing {
		t.Error("enabling music should resume it")
	}
}

func TestAudioManagerLoop(t *testing.T) {
	am, src, _ := newTestAudioManager(t)

	if !am.StartLoop("SOUND_WATER") {
		t.Fatal("StartLoop failed")
	}
	water := src.players["loop:SOUND_WATER"]
	am.StartLoop("SOUND_WATER")
	if water.plays != 1 {
		t.Errorf("repeated StartLoop restarted the loop (%d plays)", water.plays)
	}

	am.StopLoop()
	if water.playing || am.CurrentLoop() != "" {
		t.Error("StopLoop should pause and clear the loop")
	}

	// 再次开始复用缓存的播放器
	am.StartLoop("SOUND_WATER")
	if src.calls != 1 {
		t.Errorf("player created %d times, want 1", src.calls)
	}
}

func TestAudioManagerSoundDisabled(t *testing.T) {
	am, _, _ := newTestAudioManager(t)
	am.StartLoop("SOUND_WATER")

	am.SetSoundEnabled(false)
	if am.CurrentLoop() != "" {
		t.Error("disabling sound should stop the loop")
	}
	if am.PlaySound("SOUND_GROW") {
		t.Error("PlaySound should fail while sound is disabled")
	}
	if am.StartLoop("SOUND_WATER") {
		t.Error("StartLoop should fail while sound is disabled")
	}
}

func TestAudioManagerMissingSound(t *testing.T) {
	am, src, _ := newTestAudioManager(t)
	src.missing["SOUND_GROW"] = true

	for i := 0; i < 3; i++ {
		if am.PlaySound("SOUND_GROW") {
			t.Fatal("PlaySound should fail for a missing sound")
		}
	}
	if src.calls != 1 {
		t.Errorf("missing sound loaded %d times, want 1", src.calls)
	}
}

func TestAudioManagerStopAll(t *testing.T) {
	am, src, _ := newTestAudioManager(t)
	src.missing["SOUND_BROKEN"] = true

	am.PlayMusic("SOUND_CELEBRATE")
	am.StartLoop("SOUND_WATER")
	am.PlaySound("SOUND_GIFT_OPEN")
	am.PlaySound("SOUND_BROKEN")

	am.StopAll()

	for key, p := range src.players {
		if p.playing {
			t.Errorf("%s still playing after StopAll", key)
		}
	}
	if am.CurrentMusic() != "" || am.CurrentLoop() != "" {
		t.Error("StopAll should clear current music and loop")
	}
}
