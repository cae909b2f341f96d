package scenes

import (
	"log"
	"time"

	"github.com/decker502/xmastree/pkg/config"
	"github.com/decker502/xmastree/pkg/ecs"
	"github.com/decker502/xmastree/pkg/game"
	"github.com/decker502/xmastree/pkg/growth"
	"github.com/decker502/xmastree/pkg/systems"
	"github.com/decker502/xmastree/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// TreeScene 浇水种圣诞树的场景
//
// 每帧流程：
//  1. 读取指针（视口坐标），更新视差摄像机
//  2. 视口坐标 + 摄像机偏移 = 场景坐标，经节流后交给 growth.Controller
//  3. 按帧时间推进 growth.Ticker，周期性执行生长检查
//  4. 处理礼物点击，推进礼物展开动画
//  5. 把控制器状态同步到精灵和声音
type TreeScene struct {
	resourceManager *game.ResourceManager
	audioManager    *game.AudioManager
	variant         config.SceneVariant

	controller *growth.Controller
	ticker     *growth.Ticker
	throttle   *utils.Throttle
	clock      time.Duration // 场景时钟

	// ECS
	entityManager    *ecs.EntityManager
	renderSystem     *systems.RenderSystem
	parallaxSystem   *systems.ParallaxSystem
	giftRevealSystem *systems.GiftRevealSystem
	entities         sceneEntities

	// 原始指针位置（场景坐标），水壶跟随它移动
	pointerX, pointerY float64

	grewSinceSync bool
	missingImages map[string]bool
	cursorHidden  bool
	closed        bool
}

// NewTreeScene 创建圣诞树场景
//
// 参数：
//   - rm: 资源管理器，可为 nil（全部使用占位图形）
//   - variant: 场景变体参数
//   - origin: 场景时钟零点，通常为 time.Now()
func NewTreeScene(rm *game.ResourceManager, variant config.SceneVariant, origin time.Time) *TreeScene {
	s := &TreeScene{
		resourceManager: rm,
		audioManager:    game.GetGameState().GetAudioManager(),
		variant:         variant,
		controller:      growth.NewController(growthConfig(variant), origin),
		throttle:        utils.NewThrottle(variant.PointerThrottle()),
		entityManager:   ecs.NewEntityManager(),
		missingImages:   make(map[string]bool),
	}

	s.ticker = growth.NewTicker(variant.TickPeriod(), origin, s.onTick)
	s.renderSystem = systems.NewRenderSystem(s.entityManager)
	s.parallaxSystem = systems.NewParallaxSystem(s.entityManager, variant.CameraRange())
	s.giftRevealSystem = systems.NewGiftRevealSystem(s.entityManager)
	s.createEntities()
	s.syncSprites()

	log.Printf("[TreeScene] 创建场景: maxAge=%d tick=%v dwell=%v parallax=%v giftOnly=%v",
		variant.MaxAge, variant.TickPeriod(), variant.DwellThreshold(), variant.Parallax, variant.GiftOnly)

	s.audioManager.PlayMusic(musicFor(s.controller.Status()))
	return s
}

// growthConfig 把场景变体转换为控制器参数
func growthConfig(v config.SceneVariant) growth.Config {
	return growth.Config{
		MaxAge:         v.MaxAge,
		TreeZone:       zoneRect(v.TreeZone),
		WaterZone:      zoneRect(v.WaterZone),
		DwellThreshold: v.DwellThreshold(),
		StartGrown:     v.GiftOnly,
	}
}

func zoneRect(z config.ZoneConfig) growth.Rect {
	return growth.Rect{MinX: z.MinX, MinY: z.MinY, MaxX: z.MaxX, MaxY: z.MaxY}
}

// giftRect 礼物点击区域（场景坐标）
var giftRect = growth.Rect{
	MinX: config.GiftX,
	MinY: config.GiftY,
	MaxX: config.GiftX + config.GiftWidth,
	MaxY: config.GiftY + config.GiftHeight,
}

// Controller 返回生长控制器
func (s *TreeScene) Controller() *growth.Controller {
	return s.controller
}

// CameraX 返回视差摄像机偏移
func (s *TreeScene) CameraX() float64 {
	return s.parallaxSystem.CameraX()
}

// Update 读取输入并推进场景
func (s *TreeScene) Update(deltaTime float64) {
	if s.closed {
		return
	}
	if !s.cursorHidden {
		// 水壶代替鼠标指针
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
		s.cursorHidden = true
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		s.toggleMusic()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		s.toggleSound()
	}

	s.updateWithInput(deltaTime, utils.GetInputState())
}

// updateWithInput 场景逻辑，输入由调用方提供（测试直接调用）
func (s *TreeScene) updateWithInput(deltaTime float64, input utils.InputState) {
	if s.closed {
		return
	}
	step := time.Duration(deltaTime * float64(time.Second))
	s.clock += step

	// 1. 摄像机
	s.parallaxSystem.SetPointer(float64(input.X))
	s.parallaxSystem.Update(deltaTime)

	// 2. 指针：视口坐标 → 场景坐标
	s.pointerX, s.pointerY = utils.ViewportToScene(float64(input.X), float64(input.Y), s.parallaxSystem.CameraX())
	if s.throttle.Allow(s.clock) {
		s.controller.UpdatePointer(s.pointerX, s.pointerY)
	}

	// 3. 生长检查
	s.ticker.Advance(step)

	// 4. 礼物
	if input.JustPressed && giftRect.Contains(s.pointerX, s.pointerY) {
		s.openGift()
	}
	s.giftRevealSystem.Update(deltaTime)

	// 5. 同步表现
	s.syncSprites()
	s.syncAudio()
}

// onTick 生长周期回调
func (s *TreeScene) onTick(now time.Time) {
	if s.controller.Tick(now) {
		s.grewSinceSync = true
		log.Printf("[TreeScene] 树长大了: %d/%d", s.controller.Age(), s.controller.MaxAge())
	}
}

// openGift 打开礼物，树未长成或已打开时无效
func (s *TreeScene) openGift() {
	if !s.controller.OpenGift() {
		return
	}
	log.Printf("[TreeScene] 打开礼物")
	s.giftRevealSystem.Start(s.entities.gift)
	s.audioManager.PlaySound(soundGiftOpen)
}

// Draw 绘制场景
func (s *TreeScene) Draw(screen *ebiten.Image) {
	screen.Fill(config.SkyColor)
	cameraX := s.parallaxSystem.CameraX()
	s.renderSystem.Draw(screen, cameraX)
	s.drawCouponText(screen, cameraX)
	s.drawHint(screen)
}

func (s *TreeScene) drawCouponText(screen *ebiten.Image, cameraX float64) {
	if !s.controller.GiftOpened() || s.variant.CouponText == "" {
		return
	}
	x, y, visible := s.couponTextPosition()
	if !visible {
		return
	}
	vx, vy := utils.SceneToViewport(x, y, cameraX, config.SceneDepth)
	ebitenutil.DebugPrintAt(screen, s.variant.CouponText, int(vx), int(vy))
}

func (s *TreeScene) drawHint(screen *ebiten.Image) {
	var hint string
	switch {
	case s.controller.Age() == 0:
		hint = "Hold the watering can over the tree"
	case s.controller.Phase() == growth.PhaseFullyGrown:
		hint = "Click the gift!"
	default:
		return
	}
	ebitenutil.DebugPrintAt(screen, hint, 10, 10)
}

// toggleMusic M 键：开关背景音乐并保存设置
func (s *TreeScene) toggleMusic() {
	s.audioManager.SetMusicEnabled(!s.audioManager.MusicEnabled())
	saveSettings()
}

// toggleSound S 键：开关音效并保存设置
func (s *TreeScene) toggleSound() {
	s.audioManager.SetSoundEnabled(!s.audioManager.SoundEnabled())
	saveSettings()
}

func saveSettings() {
	sm := game.GetGameState().GetSettingsManager()
	if sm == nil {
		return
	}
	if err := sm.Save(); err != nil {
		log.Printf("[TreeScene] Warning: failed to save settings: %v", err)
	}
}

// Close 停止生长计时和所有声音，可以重复调用
func (s *TreeScene) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.ticker.Stop()
	s.audioManager.StopAll()
	if s.cursorHidden {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
		s.cursorHidden = false
	}
	log.Printf("[TreeScene] 场景已关闭")
}
