//go:build !mobile

package utils

import "os"

// IsMobile 桌面端返回 false
// 设置 XMAS_MOBILE_EMULATE=1 可在桌面上模拟触屏行为（水壶停在最后触摸点）
func IsMobile() bool {
	return os.Getenv("XMAS_MOBILE_EMULATE") == "1"
}
