package scenes

import (
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/decker502/xmastree/pkg/config"
	"github.com/decker502/xmastree/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SceneFactory 加载完成后创建下一个场景
type SceneFactory func() game.Scene

// LoadingScene represents the loading screen shown when the game starts.
// It preloads every resource in the manifest a few items per frame,
// shows a rotating dot spinner and a progress bar, then switches to the
// next scene.
type LoadingScene struct {
	sceneManager *game.SceneManager
	preloader    *game.Preloader
	next         SceneFactory

	elapsedTime float64 // Elapsed time since scene start
	switched    bool
}

// NewLoadingScene creates a new loading scene.
// rm 未加载资源清单时直接进入下一个场景（没有可预加载的资源）
func NewLoadingScene(rm *game.ResourceManager, sm *game.SceneManager, next SceneFactory) *LoadingScene {
	var ids []string
	if rm != nil {
		var err error
		ids, err = rm.AllResourceIDs()
		if err != nil {
			log.Printf("[LoadingScene] Warning: nothing to preload: %v", err)
		}
	}

	var loader game.ResourceLoader = noopLoader{}
	if rm != nil {
		loader = rm
	}

	log.Printf("[LoadingScene] Preloading %d resources", len(ids))
	return &LoadingScene{
		sceneManager: sm,
		preloader:    game.NewPreloader(loader, ids),
		next:         next,
	}
}

type noopLoader struct{}

func (noopLoader) LoadResourceByID(string) error { return nil }

// Progress 返回加载进度 (0.0 ~ 1.0)
func (s *LoadingScene) Progress() float64 {
	return s.preloader.Progress()
}

// Update updates the loading scene logic.
func (s *LoadingScene) Update(deltaTime float64) {
	if s.switched {
		return
	}
	s.elapsedTime += deltaTime

	done := s.preloader.Step(config.LoadingItemsPerFrame)
	if !done || s.elapsedTime < config.LoadingMinDuration {
		return
	}

	if failures := s.preloader.Failures(); len(failures) > 0 {
		log.Printf("[LoadingScene] %d/%d resources failed to load, placeholders will be drawn",
			len(failures), s.preloader.Total())
	}

	s.switched = true
	if s.next == nil || s.sceneManager == nil {
		return
	}
	s.sceneManager.SwitchTo(s.next())
}

// Draw renders the loading scene to the screen.
func (s *LoadingScene) Draw(screen *ebiten.Image) {
	screen.Fill(config.SkyColor)
	s.drawSpinner(screen)
	s.drawProgressBar(screen)

	msg := fmt.Sprintf("Loading... %d%%", int(s.Progress()*100))
	ebitenutil.DebugPrintAt(screen, msg, int(config.LoadingBarX), int(config.LoadingBarY+config.LoadingBarHeight+8))
}

// spinnerDots 计算转圈圆点的位置和透明度
// 头部圆点最亮，后面的依次变暗
func spinnerDots(elapsed float64) [config.LoadingSpinnerDots]struct{ X, Y, Alpha float64 } {
	var dots [config.LoadingSpinnerDots]struct{ X, Y, Alpha float64 }
	turn := math.Mod(elapsed/config.LoadingSpinnerPeriod, 1)
	for i := range dots {
		angle := 2*math.Pi*turn - 2*math.Pi*float64(i)/config.LoadingSpinnerDots
		dots[i].X = config.LoadingSpinnerX + config.LoadingSpinnerRadius*math.Cos(angle)
		dots[i].Y = config.LoadingSpinnerY + config.LoadingSpinnerRadius*math.Sin(angle)
		dots[i].Alpha = 1 - float64(i)/config.LoadingSpinnerDots
	}
	return dots
}

func (s *LoadingScene) drawSpinner(screen *ebiten.Image) {
	for _, dot := range spinnerDots(s.elapsedTime) {
		a := uint8(255 * dot.Alpha)
		clr := color.RGBA{R: a, G: a, B: a, A: a}
		vector.DrawFilledCircle(screen, float32(dot.X), float32(dot.Y), 4, clr, true)
	}
}

func (s *LoadingScene) drawProgressBar(screen *ebiten.Image) {
	x := float32(config.LoadingBarX)
	y := float32(config.LoadingBarY)
	w := float32(config.LoadingBarWidth)
	h := float32(config.LoadingBarHeight)

	vector.StrokeRect(screen, x-1, y-1, w+2, h+2, 1, color.White, false)
	if fill := w * float32(s.Progress()); fill > 0 {
		vector.DrawFilledRect(screen, x, y, fill, h, config.PlaceholderTreeColor, false)
	}
}
