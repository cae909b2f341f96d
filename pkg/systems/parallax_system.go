package systems

import (
	"github.com/decker502/xmastree/pkg/components"
	"github.com/decker502/xmastree/pkg/config"
	"github.com/decker502/xmastree/pkg/ecs"
	"github.com/decker502/xmastree/pkg/utils"
)

// ParallaxSystem 根据指针位置平移摄像机
//
// 指针在视口最左侧时摄像机停在 0，最右侧时停在 MaxX，
// 中间线性映射。摄像机以指数缓动追随目标，与帧率无关。
type ParallaxSystem struct {
	entityManager *ecs.EntityManager
	cameraEntity  ecs.EntityID
}

// NewParallaxSystem 创建摄像机实体
// maxX = 场景宽度 - 视口宽度，0 表示关闭视差
func NewParallaxSystem(em *ecs.EntityManager, maxX float64) *ParallaxSystem {
	if maxX < 0 {
		maxX = 0
	}
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.CameraComponent{
		MaxX:     maxX,
		EaseRate: config.CameraEaseRate,
	})
	return &ParallaxSystem{entityManager: em, cameraEntity: id}
}

func (s *ParallaxSystem) camera() *components.CameraComponent {
	cam, _ := ecs.GetComponent[*components.CameraComponent](s.entityManager, s.cameraEntity)
	return cam
}

// Enabled 是否启用视差
func (s *ParallaxSystem) Enabled() bool {
	cam := s.camera()
	return cam != nil && cam.MaxX > 0
}

// SetPointer 以视口 X 坐标设置摄像机目标
func (s *ParallaxSystem) SetPointer(viewportX float64) {
	cam := s.camera()
	if cam == nil || cam.MaxX <= 0 {
		return
	}
	ratio := utils.Clamp01(viewportX / float64(config.GameWindowWidth))
	cam.TargetX = ratio * cam.MaxX
}

// Update 摄像机向目标缓动
func (s *ParallaxSystem) Update(dt float64) {
	cam := s.camera()
	if cam == nil {
		return
	}
	cam.X = utils.Clamp(utils.ApproachExp(cam.X, cam.TargetX, cam.EaseRate, dt), 0, cam.MaxX)
}

// Snap 立即移动到目标
func (s *ParallaxSystem) Snap() {
	if cam := s.camera(); cam != nil {
		cam.X = cam.TargetX
	}
}

// CameraX 当前摄像机水平偏移
func (s *ParallaxSystem) CameraX() float64 {
	if cam := s.camera(); cam != nil {
		return cam.X
	}
	return 0
}
