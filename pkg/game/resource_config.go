package game

import (
	"fmt"
	"path"
	"sort"

	"gopkg.in/yaml.v3"
)

// ResourceConfig represents the resource manifest loaded from YAML.
// It defines the structure of assets/config/resources.yaml.
//
// Structure:
//
//	version: "1.0"
//	base_path: assets
//	groups:
//	  group_name:
//	    images: [...]
//	    sounds: [...]
type ResourceConfig struct {
	Version  string                   `yaml:"version"`
	BasePath string                   `yaml:"base_path"`
	Groups   map[string]ResourceGroup `yaml:"groups"`
}

// ResourceGroup 一组一起预加载的资源
type ResourceGroup struct {
	Images []ImageResource `yaml:"images"`
	Sounds []SoundResource `yaml:"sounds"`
}

// ImageResource 单个图片资源
//
//   - id: IMAGE_TREE0
//     path: images/tree0.gif
type ImageResource struct {
	ID   string `yaml:"id"`
	Path string `yaml:"path"`
}

// SoundResource 单个音频资源
//
//   - id: SOUND_BGM
//     path: sounds/bgm.mp3
type SoundResource struct {
	ID   string `yaml:"id"`
	Path string `yaml:"path"`
}

// ResourceKind 资源类型
type ResourceKind int

const (
	ResourceImage ResourceKind = iota
	ResourceSound
)

// 无扩展名时的默认扩展名
const (
	defaultImageExt = ".png"
	defaultSoundExt = ".mp3"
)

// resourceEntry 资源 ID 解析后的条目
type resourceEntry struct {
	Kind ResourceKind
	Path string
}

// ParseResourceConfig 解析资源清单并检查 ID 唯一
func ParseResourceConfig(data []byte) (*ResourceConfig, error) {
	var cfg ResourceConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse resource config: %w", err)
	}

	seen := make(map[string]string)
	for _, name := range cfg.GroupNames() {
		group := cfg.Groups[name]
		ids := make([]string, 0, len(group.Images)+len(group.Sounds))
		for _, img := range group.Images {
			ids = append(ids, img.ID)
		}
		for _, snd := range group.Sounds {
			ids = append(ids, snd.ID)
		}
		for _, id := range ids {
			if id == "" {
				return nil, fmt.Errorf("group %s: resource with empty id", name)
			}
			if other, dup := seen[id]; dup {
				return nil, fmt.Errorf("duplicate resource id %s in groups %s and %s", id, other, name)
			}
			seen[id] = name
		}
	}
	return &cfg, nil
}

// GroupNames 返回按名称排序的分组列表
func (c *ResourceConfig) GroupNames() []string {
	names := make([]string, 0, len(c.Groups))
	for name := range c.Groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// entries 建立资源 ID → 完整路径的映射
func (c *ResourceConfig) entries() map[string]resourceEntry {
	m := make(map[string]resourceEntry)
	for _, group := range c.Groups {
		for _, img := range group.Images {
			m[img.ID] = resourceEntry{Kind: ResourceImage, Path: withDefaultExt(buildFullPath(c.BasePath, img.Path), defaultImageExt)}
		}
		for _, snd := range group.Sounds {
			m[snd.ID] = resourceEntry{Kind: ResourceSound, Path: withDefaultExt(buildFullPath(c.BasePath, snd.Path), defaultSoundExt)}
		}
	}
	return m
}

// buildFullPath 拼接 base_path 与相对路径（fs.FS 路径，始终使用 '/'）
func buildFullPath(basePath, relativePath string) string {
	if basePath == "" {
		return path.Clean(relativePath)
	}
	return path.Join(basePath, relativePath)
}

func withDefaultExt(p, ext string) string {
	if path.Ext(p) == "" {
		return p + ext
	}
	return p
}
