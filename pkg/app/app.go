// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"time"

	"github.com/decker502/xmastree/pkg/config"
	"github.com/decker502/xmastree/pkg/embedded"
	"github.com/decker502/xmastree/pkg/game"
	"github.com/decker502/xmastree/pkg/scenes"
	"github.com/decker502/xmastree/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

const (
	// AppName gdata 存储使用的应用名
	AppName = "xmastree"

	sceneConfigPath    = "data/scene.yaml"
	resourceConfigPath = "assets/config/resources.yaml"
	sampleRate         = 48000
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Variant 场景变体名称（data/scene.yaml），为空使用默认变体
	Variant string
	// SkipLoadingScene 跳过加载场景，直接进入圣诞树场景
	SkipLoadingScene bool
	// GiftOnly 强制仅礼物演示模式：树一开始就长成
	GiftOnly bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	settingsManager          *game.SettingsManager
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// 场景变体
	sceneData, err := embedded.ReadFile(sceneConfigPath)
	if err != nil {
		return nil, fmt.Errorf("场景配置读取失败: %w", err)
	}
	variant, err := loadVariant(sceneData, cfg.Variant, cfg.GiftOnly)
	if err != nil {
		return nil, err
	}

	// 初始化音频上下文
	audioContext := audio.NewContext(sampleRate)

	// 创建资源管理器
	resourceManager := game.NewResourceManager(embedded.FS(), audioContext)
	if err := resourceManager.LoadResourceConfig(resourceConfigPath); err != nil {
		return nil, fmt.Errorf("资源配置加载失败: %w", err)
	}

	// 设置与音频，注册到 GameState
	gameState := game.GetGameState()
	settingsManager := openSettings()
	gameState.SetSettingsManager(settingsManager)

	audioManager := game.NewAudioManager(resourceManager, settingsManager)
	gameState.SetAudioManager(audioManager)
	log.Printf("[App] AudioManager initialized")

	if settingsManager.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	// 创建场景管理器
	sceneManager := game.NewSceneManager()
	newTreeScene := func() game.Scene {
		return scenes.NewTreeScene(resourceManager, variant, time.Now())
	}

	// 根据配置决定启动场景
	if cfg.SkipLoadingScene {
		log.Printf("[App] SkipLoadingScene enabled, starting tree scene directly")
		sceneManager.SwitchTo(newTreeScene())
	} else {
		sceneManager.SwitchTo(scenes.NewLoadingScene(resourceManager, sceneManager, newTreeScene))
	}

	return &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		verbose:         cfg.Verbose,
	}, nil
}

// loadVariant 解析场景配置并选出变体
func loadVariant(data []byte, name string, giftOnly bool) (config.SceneVariant, error) {
	file, err := config.ParseSceneConfig(data)
	if err != nil {
		return config.SceneVariant{}, fmt.Errorf("场景配置无效: %w", err)
	}
	variant, err := file.Variant(name)
	if err != nil {
		return config.SceneVariant{}, fmt.Errorf("场景变体选择失败 (可选: %v): %w", file.VariantNames(), err)
	}
	if giftOnly {
		variant.GiftOnly = true
	}
	log.Printf("[App] Scene variant: %q maxAge=%d parallax=%v giftOnly=%v",
		name, variant.MaxAge, variant.Parallax, variant.GiftOnly)
	return variant, nil
}

// openSettings 打开 gdata 存储，失败时使用仅内存的设置
func openSettings() *game.SettingsManager {
	var manager *gdata.Manager
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: storage dir unavailable: %v", err)
	}
	m, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable, settings will not persist: %v", err)
	} else {
		manager = m
	}

	sm, err := game.NewSettingsManager(manager)
	if err != nil {
		log.Printf("[App] Warning: settings manager: %v", err)
		sm, _ = game.NewSettingsManager(nil)
	}
	return sm
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
	}

	a.settingsManager.SetFullscreen(ebiten.IsFullscreen())
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: failed to save settings: %v", err)
	}
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放，
// 因此 CursorPosition 返回的已经是逻辑坐标
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// Close 关闭当前场景并保存设置，退出前调用
func (a *App) Close() {
	a.sceneManager.Close()
	if a.settingsManager == nil || !a.settingsManager.Dirty() {
		return
	}
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: failed to save settings on exit: %v", err)
	}
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
