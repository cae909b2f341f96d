package utils

// 坐标系统
//
//   - 视口坐标：相对于逻辑视口左上角。ebiten 的 Layout 固定返回逻辑尺寸，
//     CursorPosition / TouchPosition 已经除去了显示缩放。
//   - 场景坐标：相对于场景最左侧的左上角。视差摄像机水平偏移 cameraX。
//
// 所有命中判定都在场景坐标中进行：
//
//	sceneX = viewportX + cameraX
//	sceneY = viewportY

// ViewportToScene 视口坐标 → 场景坐标
func ViewportToScene(viewportX, viewportY, cameraX float64) (float64, float64) {
	return viewportX + cameraX, viewportY
}

// SceneToViewport 场景坐标 → 视口坐标，depth 为视差深度（1 为场景主体层）
func SceneToViewport(sceneX, sceneY, cameraX, depth float64) (float64, float64) {
	return sceneX - cameraX*depth, sceneY
}
