package config

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrUnknownVariant 场景变体不存在
var ErrUnknownVariant = errors.New("unknown scene variant")

// MaxTreeAge 树图片只有 tree0 ~ tree8，最大树龄不能超过 8
const MaxTreeAge = 8

// SceneConfigFile 场景配置文件
//
// 配置文件位置: data/scene.yaml
//
//	default: parallax
//	variants:
//	  classic:
//	    maxAge: 4
//	    treeZone: {minX: 300, minY: 400, maxX: 350, maxY: 600}
//	    ...
type SceneConfigFile struct {
	// Default 未指定变体时使用的变体名
	Default string `yaml:"default"`

	// Variants 变体名 -> 变体配置
	Variants map[string]SceneVariant `yaml:"variants"`
}

// ZoneConfig 场景逻辑坐标中的矩形区域（边界包含在内）
type ZoneConfig struct {
	MinX float64 `yaml:"minX"`
	MinY float64 `yaml:"minY"`
	MaxX float64 `yaml:"maxX"`
	MaxY float64 `yaml:"maxY"`
}

// SceneVariant 一个场景变体
//
// 各个历史版本的区别（树龄上限、区域大小、是否视差、是否仅演示礼物）
// 都收敛为这里的参数，而不是分散在代码里。
type SceneVariant struct {
	MaxAge            int        `yaml:"maxAge"`            // 最大树龄
	TickPeriodMs      int        `yaml:"tickPeriodMs"`      // 生长检查周期（毫秒）
	DwellThresholdMs  int        `yaml:"dwellThresholdMs"`  // 连续浇水阈值（毫秒）
	PointerThrottleMs int        `yaml:"pointerThrottleMs"` // 指针更新节流间隔（毫秒）
	TreeZone          ZoneConfig `yaml:"treeZone"`          // 浇树判定区域
	WaterZone         ZoneConfig `yaml:"waterZone"`         // 水流区域
	Parallax          bool       `yaml:"parallax"`          // 是否启用视差滚动
	SceneWidth        float64    `yaml:"sceneWidth"`        // 场景宽度（>= 视口宽度）
	GiftOnly          bool       `yaml:"giftOnly"`          // 仅礼物演示：树一开始就长成
	CouponText        string     `yaml:"couponText"`        // 礼物打开后展示的优惠券文字
}

// ParseSceneConfig 解析并验证场景配置
func ParseSceneConfig(data []byte) (*SceneConfigFile, error) {
	var file SceneConfigFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse scene config: %w", err)
	}

	for name, v := range file.Variants {
		v.applyDefaults()
		if err := v.Validate(); err != nil {
			return nil, fmt.Errorf("invalid scene variant %q: %w", name, err)
		}
		file.Variants[name] = v
	}

	if file.Default != "" {
		if _, ok := file.Variants[file.Default]; !ok {
			return nil, fmt.Errorf("default variant %q: %w", file.Default, ErrUnknownVariant)
		}
	}

	return &file, nil
}

// Variant 按名称获取变体，名称为空时返回默认变体
func (f *SceneConfigFile) Variant(name string) (SceneVariant, error) {
	if name == "" {
		name = f.Default
	}
	v, ok := f.Variants[name]
	if !ok {
		return SceneVariant{}, fmt.Errorf("%q (available: %v): %w", name, f.VariantNames(), ErrUnknownVariant)
	}
	return v, nil
}

// VariantNames 返回排序后的变体名列表
func (f *SceneConfigFile) VariantNames() []string {
	names := make([]string, 0, len(f.Variants))
	for name := range f.Variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// applyDefaults 补齐未填写的时间参数
func (v *SceneVariant) applyDefaults() {
	if v.TickPeriodMs == 0 {
		v.TickPeriodMs = DefaultTickPeriodMs
	}
	if v.DwellThresholdMs == 0 {
		v.DwellThresholdMs = DefaultDwellThresholdMs
	}
	if v.PointerThrottleMs == 0 {
		v.PointerThrottleMs = DefaultPointerThrottleMs
	}
	if v.SceneWidth == 0 {
		v.SceneWidth = GameWindowWidth
	}
}

// Validate 验证变体参数
func (v *SceneVariant) Validate() error {
	if v.MaxAge < 1 || v.MaxAge > MaxTreeAge {
		return fmt.Errorf("maxAge must be in [1, %d], got %d", MaxTreeAge, v.MaxAge)
	}
	if v.TickPeriodMs <= 0 {
		return fmt.Errorf("tickPeriodMs must be positive, got %d", v.TickPeriodMs)
	}
	if v.DwellThresholdMs <= 0 {
		return fmt.Errorf("dwellThresholdMs must be positive, got %d", v.DwellThresholdMs)
	}
	if v.PointerThrottleMs < 0 {
		return fmt.Errorf("pointerThrottleMs must not be negative, got %d", v.PointerThrottleMs)
	}
	if err := v.TreeZone.validate(); err != nil {
		return fmt.Errorf("treeZone: %w", err)
	}
	if err := v.WaterZone.validate(); err != nil {
		return fmt.Errorf("waterZone: %w", err)
	}
	if v.SceneWidth < GameWindowWidth {
		return fmt.Errorf("sceneWidth %.0f is narrower than the viewport (%d)", v.SceneWidth, GameWindowWidth)
	}
	if !v.Parallax && v.SceneWidth != GameWindowWidth {
		return fmt.Errorf("sceneWidth %.0f requires parallax", v.SceneWidth)
	}
	return nil
}

func (z ZoneConfig) validate() error {
	if z.MinX > z.MaxX {
		return fmt.Errorf("minX(%.1f) > maxX(%.1f)", z.MinX, z.MaxX)
	}
	if z.MinY > z.MaxY {
		return fmt.Errorf("minY(%.1f) > maxY(%.1f)", z.MinY, z.MaxY)
	}
	return nil
}

// TickPeriod 生长检查周期
func (v SceneVariant) TickPeriod() time.Duration {
	return time.Duration(v.TickPeriodMs) * time.Millisecond
}

// DwellThreshold 连续浇水阈值
func (v SceneVariant) DwellThreshold() time.Duration {
	return time.Duration(v.DwellThresholdMs) * time.Millisecond
}

// PointerThrottle 指针节流间隔
func (v SceneVariant) PointerThrottle() time.Duration {
	return time.Duration(v.PointerThrottleMs) * time.Millisecond
}

// CameraRange 视差摄像机的最大水平偏移
func (v SceneVariant) CameraRange() float64 {
	if !v.Parallax {
		return 0
	}
	return v.SceneWidth - GameWindowWidth
}
