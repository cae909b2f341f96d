package scenes

import (
	"testing"
	"time"

	"github.com/decker502/xmastree/pkg/components"
	"github.com/decker502/xmastree/pkg/config"
	"github.com/decker502/xmastree/pkg/ecs"
	"github.com/decker502/xmastree/pkg/game"
	"github.com/decker502/xmastree/pkg/growth"
	"github.com/decker502/xmastree/pkg/utils"
)

const frame = 0.01 // 10ms，整除 500ms 的生长周期

var testOrigin = time.Date(2024, 12, 24, 18, 0, 0, 0, time.UTC)

func classicVariant() config.SceneVariant {
	return config.SceneVariant{
		MaxAge:           4,
		TickPeriodMs:     500,
		DwellThresholdMs: 2000,
		TreeZone:         config.ZoneConfig{MinX: 300, MinY: 400, MaxX: 350, MaxY: 600},
		WaterZone:        config.ZoneConfig{MinX: 200, MinY: 400, MaxX: 800, MaxY: 700},
		SceneWidth:       config.GameWindowWidth,
		CouponText:       "MERRY XMAS",
	}
}

func newTestTreeScene(t *testing.T, v config.SceneVariant) *TreeScene {
	t.Helper()
	game.ResetGameState()
	t.Cleanup(game.ResetGameState)

	s := NewTreeScene(nil, v, testOrigin)
	t.Cleanup(s.Close)
	return s
}

// run 以固定输入运行 n 帧
func run(s *TreeScene, n int, input utils.InputState) {
	for i := 0; i < n; i++ {
		s.updateWithInput(frame, input)
	}
}

func sprite(t *testing.T, s *TreeScene, id ecs.EntityID) *components.SpriteComponent {
	t.Helper()
	sp, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
	if !ok {
		t.Fatalf("entity %d has no sprite", id)
	}
	return sp
}

var (
	overTree = utils.InputState{X: 325, Y: 500}
	awayFrom = utils.InputState{X: 100, Y: 100}
)

func TestTreeSceneGrowsAfterContinuousDwell(t *testing.T) {
	s := newTestTreeScene(t, classicVariant())
	c := s.Controller()

	run(s, 249, overTree)
	if c.Age() != 0 {
		t.Fatalf("age after 2.49s = %d, want 0", c.Age())
	}
	if c.Status() != growth.StatusMagic {
		t.Errorf("status while watering = %s, want magic", c.Status())
	}
	if got := sprite(t, s, s.entities.character).ImageID; got != imageCharacterMagic {
		t.Errorf("character image = %s, want %s", got, imageCharacterMagic)
	}

	run(s, 1, overTree)
	if c.Age() != 1 {
		t.Fatalf("age after 2.5s = %d, want 1", c.Age())
	}
	if got := sprite(t, s, s.entities.tree).ImageID; got != "IMAGE_TREE2" {
		t.Errorf("tree image = %s, want IMAGE_TREE2", got)
	}

	// 每 2.5s 长一级，10s 后长成
	run(s, 750, overTree)
	if c.Age() != 4 || !c.ShowXmasTree() {
		t.Fatalf("age after 10s = %d, want 4", c.Age())
	}
	if c.Status() != growth.StatusCelebrate {
		t.Errorf("status = %s, want celebrate", c.Status())
	}
	if sprite(t, s, s.entities.gift).Hidden {
		t.Error("gift should appear once the tree is grown")
	}

	// 长成后不再变化
	run(s, 500, overTree)
	if c.Age() != 4 {
		t.Errorf("age went past max: %d", c.Age())
	}
}

func TestTreeSceneLeavingResetsDwell(t *testing.T) {
	s := newTestTreeScene(t, classicVariant())
	c := s.Controller()

	run(s, 190, overTree)
	run(s, 60, awayFrom) // 2.0s 和 2.5s 的检查都在树外
	run(s, 249, overTree)
	if c.Age() != 0 {
		t.Fatalf("age = %d after interrupted dwell, want 0", c.Age())
	}
	run(s, 1, overTree)
	if c.Age() != 1 {
		t.Errorf("age = %d after 2.5s continuous dwell, want 1", c.Age())
	}
}

func TestTreeSceneNoGrowthAwayFromTree(t *testing.T) {
	s := newTestTreeScene(t, classicVariant())

	run(s, 1000, awayFrom)
	if s.Controller().Age() != 0 {
		t.Errorf("tree grew without watering: age %d", s.Controller().Age())
	}
	if s.Controller().Status() != growth.StatusBored {
		t.Errorf("status = %s, want bored", s.Controller().Status())
	}
	if !sprite(t, s, s.entities.water).Hidden {
		t.Error("water should be hidden outside the water zone")
	}
}

func TestTreeSceneWaterFollowsPointer(t *testing.T) {
	s := newTestTreeScene(t, classicVariant())

	run(s, 1, utils.InputState{X: 600, Y: 450})
	water := sprite(t, s, s.entities.water)
	if water.Hidden {
		t.Fatal("water should show inside the water zone")
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.entities.water)
	if pos.X != 600+config.WaterOffsetX || pos.Y != 450+config.WaterOffsetY {
		t.Errorf("water at (%v, %v), want pointer + offset", pos.X, pos.Y)
	}
	if pot := sprite(t, s, s.entities.waterpot); pot.Rotation != config.WaterpotTiltRadians {
		t.Errorf("waterpot rotation = %v, want tilted", pot.Rotation)
	}
}

func TestTreeSceneGiftClick(t *testing.T) {
	s := newTestTreeScene(t, classicVariant())
	c := s.Controller()
	click := utils.InputState{JustPressed: true, X: int(config.GiftX) + 10, Y: int(config.GiftY) + 10}

	// 树未长成时点击无效
	run(s, 1, click)
	if c.GiftOpened() {
		t.Fatal("gift opened before the tree was grown")
	}

	run(s, 1000, overTree)
	if !c.ShowXmasTree() {
		t.Fatal("tree should be grown")
	}

	// 点击礼物以外的地方无效
	run(s, 1, utils.InputState{JustPressed: true, X: 50, Y: 50})
	if c.GiftOpened() {
		t.Fatal("clicking outside the gift opened it")
	}

	run(s, 1, click)
	if !c.GiftOpened() || c.Phase() != growth.PhaseGiftRevealed {
		t.Fatal("clicking the gift should open it")
	}
	if got := sprite(t, s, s.entities.gift).ImageID; got != imageBoxBody {
		t.Errorf("gift image after opening = %s, want %s", got, imageBoxBody)
	}

	run(s, 200, awayFrom)
	reveal, _ := ecs.GetComponent[*components.GiftRevealComponent](s.entityManager, s.entities.gift)
	if reveal.Phase != components.GiftRevealed {
		t.Errorf("gift reveal phase = %v, want revealed", reveal.Phase)
	}
	if _, _, visible := s.couponTextPosition(); !visible {
		t.Error("coupon text should be visible after the reveal")
	}
}

func TestTreeSceneGiftOnly(t *testing.T) {
	v := classicVariant()
	v.GiftOnly = true
	s := newTestTreeScene(t, v)

	if !s.Controller().ShowXmasTree() {
		t.Fatal("gift-only scene should start with a grown tree")
	}
	if sprite(t, s, s.entities.gift).Hidden {
		t.Error("gift should be visible immediately in gift-only mode")
	}
	if got := sprite(t, s, s.entities.tree).ImageID; got != "IMAGE_TREE8" {
		t.Errorf("tree image = %s, want IMAGE_TREE8", got)
	}
}

func TestTreeSceneParallaxPointer(t *testing.T) {
	v := classicVariant()
	v.Parallax = true
	v.SceneWidth = 1000
	v.WaterZone = config.ZoneConfig{MinX: 200, MinY: 400, MaxX: 900, MaxY: 700}
	s := newTestTreeScene(t, v)

	run(s, 600, utils.InputState{X: 800, Y: 500})
	if s.CameraX() != 200 {
		t.Fatalf("camera = %v, want 200", s.CameraX())
	}
	x, y := s.Controller().Pointer()
	if x != 1000 || y != 500 {
		t.Errorf("controller pointer = (%v, %v), want scene coords (1000, 500)", x, y)
	}
	if s.Controller().ShouldWaterComeOut() {
		t.Error("scene x=1000 is outside the water zone")
	}
}

func TestTreeScenePointerThrottle(t *testing.T) {
	v := classicVariant()
	v.PointerThrottleMs = 500
	s := newTestTreeScene(t, v)

	run(s, 1, awayFrom)
	run(s, 10, overTree) // 100ms 内的更新被节流
	if s.Controller().IsWateringTree() {
		t.Fatal("throttled pointer should still be away from the tree")
	}
	run(s, 40, overTree) // 第 500ms 放行
	if !s.Controller().IsWateringTree() {
		t.Error("pointer should reach the tree once the throttle interval passed")
	}
}

func TestTreeSceneClose(t *testing.T) {
	s := newTestTreeScene(t, classicVariant())

	run(s, 200, overTree)
	s.Close()
	s.Close()
	if !s.ticker.Stopped() {
		t.Fatal("Close should stop the ticker")
	}

	run(s, 1000, overTree)
	if s.Controller().Age() != 0 {
		t.Errorf("tree grew after Close: age %d", s.Controller().Age())
	}
}

func TestTreeStage(t *testing.T) {
	tests := []struct {
		age, maxAge, want int
	}{
		{0, 4, 0},
		{1, 4, 2},
		{4, 4, 8},
		{3, 8, 3},
		{8, 8, 8},
		{0, 0, 0},
	}
	for _, tt := range tests {
		if got := treeStage(tt.age, tt.maxAge); got != tt.want {
			t.Errorf("treeStage(%d, %d) = %d, want %d", tt.age, tt.maxAge, got, tt.want)
		}
	}
}

func TestCharacterImageID(t *testing.T) {
	tests := map[growth.Status]string{
		growth.StatusBored:     imageCharacterBored,
		growth.StatusMagic:     imageCharacterMagic,
		growth.StatusCelebrate: imageCharacterCelebrate,
	}
	for status, want := range tests {
		if got := characterImageID(status); got != want {
			t.Errorf("characterImageID(%s) = %s, want %s", status, got, want)
		}
	}
	if musicFor(growth.StatusCelebrate) != soundCelebrate || musicFor(growth.StatusBored) != soundBGM {
		t.Error("musicFor should switch to the celebrate track only when the tree is grown")
	}
}
