package main

import (
	"flag"
	"log"
	"os"

	"github.com/decker502/xmastree/pkg/app"
	"github.com/decker502/xmastree/pkg/config"
	"github.com/decker502/xmastree/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	variant := flag.String("variant", "", "场景变体（data/scene.yaml 中的名称，为空使用默认变体）")
	skipLoading := flag.Bool("skip-loading", false, "跳过加载画面，直接进入场景")
	giftOnly := flag.Bool("gift-only", false, "仅礼物演示：树一开始就长成")
	flag.Parse()

	// 初始化嵌入资源
	// assetsFS 和 dataFS 在 embed.go 中声明
	embedded.Init(assetsFS, dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:          *verbose,
		Variant:          *variant,
		SkipLoadingScene: *skipLoading,
		GiftOnly:         *giftOnly,
	})
	if err != nil {
		// NewApp 可能已经关闭了日志输出
		log.SetOutput(os.Stderr)
		log.Fatalf("游戏初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Grow a Christmas Tree")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	runErr := ebiten.RunGame(gameApp)

	// 停止计时器和声音，保存设置
	gameApp.Close()

	if runErr != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(runErr)
	}
}
