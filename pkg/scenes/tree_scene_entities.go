package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/xmastree/pkg/components"
	"github.com/decker502/xmastree/pkg/config"
	"github.com/decker502/xmastree/pkg/ecs"
	"github.com/decker502/xmastree/pkg/entities"
	"github.com/decker502/xmastree/pkg/growth"
	"github.com/hajimehoshi/ebiten/v2"
)

// 图片资源 ID
const (
	imageBackground         = "IMAGE_BACKGROUND"
	imageMidground          = "IMAGE_MIDGROUND"
	imageForeground         = "IMAGE_FOREGROUND"
	imageWaterpot           = "IMAGE_WATERPOT"
	imageWater              = "IMAGE_WATER"
	imageCharacterBored     = "IMAGE_CHARACTER_BORED"
	imageCharacterMagic     = "IMAGE_CHARACTER_MAGIC"
	imageCharacterCelebrate = "IMAGE_CHARACTER_CELEBRATE"
	imageGift               = "IMAGE_GIFT"
	imageBoxBody            = "IMAGE_BOX_BODY"
	imageBoxLid             = "IMAGE_BOX_LID"
	imageCoupon             = "IMAGE_COUPON"
)

// sceneEntities 场景中的实体
type sceneEntities struct {
	background ecs.EntityID
	midground  ecs.EntityID
	foreground ecs.EntityID
	tree       ecs.EntityID
	character  ecs.EntityID
	water      ecs.EntityID
	waterpot   ecs.EntityID
	gift       ecs.EntityID
	lid        ecs.EntityID
	coupon     ecs.EntityID
}

// treeStage 树龄映射到 tree0 ~ tree8 图片
// 长成的树总是使用 tree8，树龄上限为 4 时每级跨两张图
func treeStage(age, maxAge int) int {
	if maxAge <= 0 {
		return 0
	}
	stage := age * config.MaxTreeAge / maxAge
	if stage > config.MaxTreeAge {
		stage = config.MaxTreeAge
	}
	if stage < 0 {
		stage = 0
	}
	return stage
}

func treeImageID(stage int) string {
	return fmt.Sprintf("IMAGE_TREE%d", stage)
}

// characterImageID 侧边角色图片跟随状态
func characterImageID(status growth.Status) string {
	switch status {
	case growth.StatusCelebrate:
		return imageCharacterCelebrate
	case growth.StatusMagic:
		return imageCharacterMagic
	default:
		return imageCharacterBored
	}
}

func characterColor(status growth.Status) color.Color {
	switch status {
	case growth.StatusCelebrate:
		return config.PlaceholderCelebrateColor
	case growth.StatusMagic:
		return config.PlaceholderMagicColor
	default:
		return config.PlaceholderBoredColor
	}
}

// createEntities 创建场景实体并设置图片
func (s *TreeScene) createEntities() {
	em := s.entityManager
	e := &s.entities

	layers := entities.NewBackgroundLayers(em, s.variant.SceneWidth, s.variant.Parallax)
	e.background, e.midground, e.foreground = layers.Background, layers.Midground, layers.Foreground
	s.setImage(e.background, imageBackground)
	s.setImage(e.midground, imageMidground)
	s.setImage(e.foreground, imageForeground)

	e.tree = entities.NewTreeEntity(em)
	e.character = entities.NewCharacterEntity(em)

	watering := entities.NewWateringEntities(em)
	e.water, e.waterpot = watering.Water, watering.Waterpot
	s.setImage(e.water, imageWater)
	s.setImage(e.waterpot, imageWaterpot)
	entities.CenterPivot(em, e.waterpot)

	gift := entities.NewGiftEntities(em)
	e.gift, e.lid, e.coupon = gift.Gift, gift.Lid, gift.Coupon
	s.setImage(e.lid, imageBoxLid)
	s.setImage(e.coupon, imageCoupon)
}

// image 返回已加载的图片，缺失的图片只尝试加载一次
func (s *TreeScene) image(id string) *ebiten.Image {
	if s.resourceManager == nil || s.missingImages[id] {
		return nil
	}
	if img := s.resourceManager.GetImageByID(id); img != nil {
		return img
	}
	img, err := s.resourceManager.LoadImageByID(id)
	if err != nil {
		log.Printf("[TreeScene] Warning: image %s unavailable, drawing placeholder: %v", id, err)
		s.missingImages[id] = true
		return nil
	}
	return img
}

// setImage 切换实体图片，ID 未变化时不做任何事
func (s *TreeScene) setImage(entity ecs.EntityID, imageID string) {
	sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, entity)
	if !ok || sprite.ImageID == imageID {
		return
	}
	sprite.ImageID = imageID
	sprite.Image = s.image(imageID)
}

// syncSprites 把控制器状态同步到精灵
func (s *TreeScene) syncSprites() {
	em := s.entityManager
	e := &s.entities
	status := s.controller.Status()

	// 树
	stage := treeStage(s.controller.Age(), s.controller.MaxAge())
	s.setImage(e.tree, treeImageID(stage))
	treeSprite, _ := ecs.GetComponent[*components.SpriteComponent](em, e.tree)
	treePos, _ := ecs.GetComponent[*components.PositionComponent](em, e.tree)
	if treeSprite.Image == nil {
		treeSprite.PlaceholderW = config.TreePlaceholderBaseW + config.TreePlaceholderGrowW*float64(stage)
		treeSprite.PlaceholderH = config.TreePlaceholderBaseH + config.TreePlaceholderGrowH*float64(stage)
	}
	w, h := treeSprite.Size()
	zone := s.controller.Config().TreeZone
	treePos.X = (zone.MinX+zone.MaxX)/2 - w/2
	treePos.Y = config.TreeBaseY - h

	// 侧边角色
	s.setImage(e.character, characterImageID(status))
	charSprite, _ := ecs.GetComponent[*components.SpriteComponent](em, e.character)
	charSprite.PlaceholderColor = characterColor(status)

	// 水壶跟随指针，出水时倾斜
	pouring := s.controller.ShouldWaterComeOut()
	potSprite, _ := ecs.GetComponent[*components.SpriteComponent](em, e.waterpot)
	potPos, _ := ecs.GetComponent[*components.PositionComponent](em, e.waterpot)
	potPos.X = s.pointerX - potSprite.PivotX
	potPos.Y = s.pointerY - potSprite.PivotY
	if pouring {
		potSprite.Rotation = config.WaterpotTiltRadians
	} else {
		potSprite.Rotation = 0
	}

	// 水流
	waterSprite, _ := ecs.GetComponent[*components.SpriteComponent](em, e.water)
	waterPos, _ := ecs.GetComponent[*components.PositionComponent](em, e.water)
	waterSprite.Hidden = !pouring
	waterPos.X = s.pointerX + config.WaterOffsetX
	waterPos.Y = s.pointerY + config.WaterOffsetY

	// 礼物：树长成后出现，打开后换成盒身，盒盖和优惠券交给 GiftRevealSystem
	giftSprite, _ := ecs.GetComponent[*components.SpriteComponent](em, e.gift)
	giftSprite.Hidden = !s.controller.ShowXmasTree()
	if s.controller.GiftOpened() {
		s.setImage(e.gift, imageBoxBody)
	} else {
		s.setImage(e.gift, imageGift)
	}
}

// couponTextPosition 优惠券文字位置（场景坐标）
func (s *TreeScene) couponTextPosition() (float64, float64, bool) {
	sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, s.entities.coupon)
	if !ok || sprite.Hidden || sprite.EffectiveAlpha() < 0.5 {
		return 0, 0, false
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.entities.coupon)
	w, h := sprite.Size()
	// DebugPrint 字符约 6×16 像素
	textW := float64(len(s.variant.CouponText) * 6)
	return pos.X + (w-textW)/2, pos.Y + h/2 - 8, true
}
