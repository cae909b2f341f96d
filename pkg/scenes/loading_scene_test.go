package scenes

import (
	"math"
	"testing"
	"testing/fstest"

	"github.com/decker502/xmastree/pkg/config"
	"github.com/decker502/xmastree/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

const loadingManifest = `
version: "1.0"
base_path: assets
groups:
  sounds:
    sounds:
      - id: SOUND_BGM
        path: sounds/bgm.mp3
      - id: SOUND_WATER
        path: sounds/water.mp3
      - id: SOUND_GROW
        path: sounds/grow.mp3
      - id: SOUND_GIFT_OPEN
        path: sounds/gift_open.mp3
      - id: SOUND_CELEBRATE
        path: sounds/missing.mp3
`

type stubScene struct {
	updates int
}

func (s *stubScene) Update(float64)     { s.updates++ }
func (s *stubScene) Draw(*ebiten.Image) {}

func newLoadingTestManager(t *testing.T) *game.ResourceManager {
	t.Helper()
	fsys := fstest.MapFS{
		"assets/config/resources.yaml": {Data: []byte(loadingManifest)},
		"assets/sounds/bgm.mp3":        {Data: []byte("bgm")},
		"assets/sounds/water.mp3":      {Data: []byte("water")},
		"assets/sounds/grow.mp3":       {Data: []byte("grow")},
		"assets/sounds/gift_open.mp3":  {Data: []byte("gift")},
	}
	rm := game.NewResourceManager(fsys, nil)
	if err := rm.LoadResourceConfig("assets/config/resources.yaml"); err != nil {
		t.Fatalf("LoadResourceConfig() error: %v", err)
	}
	return rm
}

func TestLoadingSceneSwitchesAfterPreload(t *testing.T) {
	rm := newLoadingTestManager(t)
	sm := game.NewSceneManager()
	next := &stubScene{}
	created := 0

	loading := NewLoadingScene(rm, sm, func() game.Scene {
		created++
		return next
	})
	sm.SwitchTo(loading)

	// 每帧加载 LoadingItemsPerFrame 个资源，5 个资源 3 帧完成
	for i := 0; i < 3; i++ {
		sm.Update(0.1)
	}
	if loading.Progress() != 1 {
		t.Fatalf("progress after 3 frames = %v, want 1", loading.Progress())
	}
	if sm.GetCurrentScene() != loading {
		t.Fatal("switched before the minimum loading duration")
	}

	for i := 0; i < 10; i++ {
		sm.Update(0.1)
	}
	if sm.GetCurrentScene() != next {
		t.Fatal("loading scene did not switch to the next scene")
	}
	if created != 1 {
		t.Errorf("next scene created %d times, want 1", created)
	}
	if next.updates == 0 {
		t.Error("next scene should receive updates after the switch")
	}
}

func TestLoadingSceneProgress(t *testing.T) {
	rm := newLoadingTestManager(t)
	loading := NewLoadingScene(rm, nil, nil)

	if loading.Progress() != 0 {
		t.Fatalf("initial progress = %v, want 0", loading.Progress())
	}
	loading.Update(0.1)
	want := float64(config.LoadingItemsPerFrame) / 5
	if loading.Progress() != want {
		t.Errorf("progress after one frame = %v, want %v", loading.Progress(), want)
	}
}

func TestLoadingSceneWithoutManifest(t *testing.T) {
	sm := game.NewSceneManager()
	next := &stubScene{}
	loading := NewLoadingScene(game.NewResourceManager(fstest.MapFS{}, nil), sm, func() game.Scene { return next })
	sm.SwitchTo(loading)

	if loading.Progress() != 1 {
		t.Errorf("empty preload progress = %v, want 1", loading.Progress())
	}
	for i := 0; i < 10; i++ {
		sm.Update(0.1)
	}
	if sm.GetCurrentScene() != next {
		t.Error("loading scene should continue even without a manifest")
	}
}

func TestSpinnerDots(t *testing.T) {
	dots := spinnerDots(0)

	if dots[0].Alpha != 1 {
		t.Errorf("head dot alpha = %v, want 1", dots[0].Alpha)
	}
	for i := 1; i < len(dots); i++ {
		if dots[i].Alpha >= dots[i-1].Alpha {
			t.Errorf("dot %d alpha %v not dimmer than dot %d", i, dots[i].Alpha, i-1)
		}
	}
	for i, d := range dots {
		r := math.Hypot(d.X-config.LoadingSpinnerX, d.Y-config.LoadingSpinnerY)
		if math.Abs(r-config.LoadingSpinnerRadius) > 1e-9 {
			t.Errorf("dot %d radius = %v, want %v", i, r, config.LoadingSpinnerRadius)
		}
	}

	// 转一整圈回到原位
	later := spinnerDots(config.LoadingSpinnerPeriod)
	if math.Abs(later[0].X-dots[0].X) > 1e-6 || math.Abs(later[0].Y-dots[0].Y) > 1e-6 {
		t.Errorf("head dot after one period = (%v, %v), want (%v, %v)", later[0].X, later[0].Y, dots[0].X, dots[0].Y)
	}
}
