package utils

import "testing"

func TestViewportToScene(t *testing.T) {
	tests := []struct {
		name           string
		vx, vy, camera float64
		wantX, wantY   float64
	}{
		{"无摄像机偏移", 325, 500, 0, 325, 500},
		{"摄像机右移", 125, 500, 200, 325, 500},
		{"视口左上角", 0, 0, 100, 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := ViewportToScene(tt.vx, tt.vy, tt.camera)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("ViewportToScene(%v, %v, %v) = (%v, %v), want (%v, %v)",
					tt.vx, tt.vy, tt.camera, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestSceneToViewportRoundTrip(t *testing.T) {
	// 主体层（depth=1）往返一致
	sx, sy := ViewportToScene(240, 310, 150)
	vx, vy := SceneToViewport(sx, sy, 150, 1)
	if vx != 240 || vy != 310 {
		t.Errorf("round trip = (%v, %v), want (240, 310)", vx, vy)
	}

	// 远景层移动得更少
	bgX, _ := SceneToViewport(400, 0, 200, 0.5)
	if bgX != 300 {
		t.Errorf("background layer x = %v, want 300", bgX)
	}
}
