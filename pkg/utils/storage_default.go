//go:build !android

package utils

// EnsureStorageDir 桌面平台上 gdata 会自行创建目录
func EnsureStorageDir() error {
	return nil
}

// GetStoragePath 桌面平台由 gdata 决定路径，返回空字符串
func GetStoragePath() string {
	return ""
}
