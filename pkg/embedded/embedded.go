// Package embedded 提供嵌入资源的统一访问接口
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// embed.FS 变量必须声明在项目根目录（embed.go）。
// 本包保存这两个文件系统，并按路径前缀（assets/ 或 data/）分发读取请求。
//
// 使用前必须调用 Init() 初始化。
package embedded

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"
)

// ErrNotInitialized 未调用 Init
var ErrNotInitialized = errors.New("embedded package not initialized, call Init() first")

var (
	assetsFS    fs.FS
	dataFS      fs.FS
	initialized bool
)

// Init 保存嵌入的文件系统
// 必须在 main() 开始时、任何资源加载之前调用
//
// 参数：
//   - assets: 根目录为项目根的文件系统，包含 assets/ 目录
//   - data: 根目录为项目根的文件系统，包含 data/ 目录
func Init(assets, data fs.FS) {
	assetsFS = assets
	dataFS = data
	initialized = true
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// normalize 统一路径分隔符并去掉 "./" 前缀
func normalize(p string) string {
	p = filepath.ToSlash(p)
	return strings.TrimPrefix(p, "./")
}

// route 根据路径前缀选择文件系统
func route(p string) (fs.FS, string, error) {
	if !initialized {
		return nil, "", ErrNotInitialized
	}

	p = normalize(p)
	switch {
	case strings.HasPrefix(p, "assets/"):
		return assetsFS, p, nil
	case strings.HasPrefix(p, "data/"):
		return dataFS, p, nil
	}
	return nil, "", fmt.Errorf("unknown resource path prefix: %s (must start with 'assets/' or 'data/')", p)
}

// Open 根据路径前缀选择正确的文件系统并打开文件
func Open(p string) (fs.File, error) {
	fsys, name, err := route(p)
	if err != nil {
		return nil, err
	}
	return fsys.Open(name)
}

// ReadFile 根据路径前缀选择正确的文件系统并读取文件内容
func ReadFile(p string) ([]byte, error) {
	fsys, name, err := route(p)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(fsys, name)
}

// Exists 检查文件是否存在
func Exists(p string) bool {
	file, err := Open(p)
	if err != nil {
		return false
	}
	file.Close()
	return true
}

// FS 返回一个按前缀分发的只读文件系统
// ResourceManager 通过它读取资源，测试中可以替换为 fstest.MapFS
func FS() fs.FS {
	return routedFS{}
}

type routedFS struct{}

func (routedFS) Open(name string) (fs.File, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	file, err := Open(path.Clean(name))
	if err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			return nil, err
		}
		return nil, &fs.PathError{Op: "open", Path: name, Err: err}
	}
	return file, nil
}
