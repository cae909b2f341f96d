package entities

import (
	"github.com/decker502/xmastree/pkg/components"
	"github.com/decker502/xmastree/pkg/config"
	"github.com/decker502/xmastree/pkg/ecs"
)

// BackgroundLayers 背景、中景、前景三层
type BackgroundLayers struct {
	Background ecs.EntityID
	Midground  ecs.EntityID
	Foreground ecs.EntityID
}

// NewBackgroundLayers 创建三层背景
//
// 参数:
//   - em: 实体管理器
//   - width: 场景宽度，小于视口宽度时按视口宽度
//   - parallax: 为 false 时三层都使用 SceneDepth，不产生视差
func NewBackgroundLayers(em *ecs.EntityManager, width float64, parallax bool) BackgroundLayers {
	if width < config.GameWindowWidth {
		width = config.GameWindowWidth
	}

	bgDepth, midDepth, fgDepth := config.BackgroundDepth, config.MidgroundDepth, config.ForegroundDepth
	if !parallax {
		bgDepth, midDepth, fgDepth = config.SceneDepth, config.SceneDepth, config.SceneDepth
	}

	return BackgroundLayers{
		Background: newSpriteEntity(em, 0, 0, config.ZBackground, bgDepth, &components.SpriteComponent{
			PlaceholderW:     width,
			PlaceholderH:     config.GameWindowHeight,
			PlaceholderColor: config.SkyColor,
		}),
		Midground: newSpriteEntity(em, 0, config.MidgroundPlaceholderY, config.ZMidground, midDepth, &components.SpriteComponent{
			PlaceholderW:     width,
			PlaceholderH:     config.MidgroundPlaceholderH,
			PlaceholderColor: config.GroundColor,
		}),
		// 前景没有占位图形，只在有图片时绘制
		Foreground: newSpriteEntity(em, 0, 0, config.ZForeground, fgDepth, &components.SpriteComponent{}),
	}
}
