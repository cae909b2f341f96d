package entities

import (
	"github.com/decker502/xmastree/pkg/components"
	"github.com/decker502/xmastree/pkg/config"
	"github.com/decker502/xmastree/pkg/ecs"
)

// NewTreeEntity 创建圣诞树实体
// 位置和占位尺寸随树龄变化，由场景每帧同步
func NewTreeEntity(em *ecs.EntityManager) ecs.EntityID {
	return newSpriteEntity(em, 0, 0, config.ZTree, config.SceneDepth, &components.SpriteComponent{
		PlaceholderW:     config.TreePlaceholderBaseW,
		PlaceholderH:     config.TreePlaceholderBaseH,
		PlaceholderColor: config.PlaceholderTreeColor,
	})
}

// NewCharacterEntity 创建侧边角色实体，图片随状态切换
func NewCharacterEntity(em *ecs.EntityManager) ecs.EntityID {
	return newSpriteEntity(em, config.CharacterX, config.CharacterY, config.ZCharacter, config.SceneDepth, &components.SpriteComponent{
		PlaceholderW:     config.CharacterPlaceholderW,
		PlaceholderH:     config.CharacterPlaceholderH,
		PlaceholderColor: config.PlaceholderBoredColor,
	})
}
