package game

import (
	"errors"
	"io/fs"
	"os"
	"strings"
	"testing"
	"testing/fstest"
)

const testManifest = `
version: "1.0"
base_path: assets
groups:
  scene:
    images:
      - id: IMAGE_BACKGROUND
        path: images/background.png
      - id: IMAGE_TREE0
        path: images/tree0
  sounds:
    sounds:
      - id: SOUND_BGM
        path: sounds/bgm.mp3
      - id: SOUND_WATER
        path: sounds/water
      - id: SOUND_BROKEN
        path: sounds/broken.flac
`

func newTestResourceManager(t *testing.T) *ResourceManager {
	t.Helper()
	fsys := fstest.MapFS{
		"assets/config/resources.yaml": {Data: []byte(testManifest)},
		"assets/sounds/bgm.mp3":        {Data: []byte("not really mp3")},
		"assets/sounds/water.mp3":      {Data: []byte("splash")},
	}
	rm := NewResourceManager(fsys, nil)
	if err := rm.LoadResourceConfig("assets/config/resources.yaml"); err != nil {
		t.Fatalf("LoadResourceConfig failed: %v", err)
	}
	return rm
}

func TestLoadResourceConfig(t *testing.T) {
	rm := newTestResourceManager(t)

	if rm.Config().BasePath != "assets" {
		t.Errorf("Expected base_path 'assets', got '%s'", rm.Config().BasePath)
	}

	tests := []struct {
		id   string
		want string
	}{
		{"IMAGE_BACKGROUND", "assets/images/background.png"},
		{"IMAGE_TREE0", "assets/images/tree0.png"}, // 默认图片扩展名
		{"SOUND_BGM", "assets/sounds/bgm.mp3"},
		{"SOUND_WATER", "assets/sounds/water.mp3"}, // 默认音频扩展名
	}
	for _, tt := range tests {
		got, ok := rm.ResolvePath(tt.id)
		if !ok || got != tt.want {
			t.Errorf("ResolvePath(%s) = %q, %v; want %q", tt.id, got, ok, tt.want)
		}
	}

	if _, ok := rm.ResolvePath("IMAGE_NOPE"); ok {
		t.Error("ResolvePath should fail for unknown ID")
	}
}

func TestResourceIDs(t *testing.T) {
	rm := newTestResourceManager(t)

	ids, err := rm.ResourceIDs("scene")
	if err != nil {
		t.Fatalf("ResourceIDs(scene) error: %v", err)
	}
	if strings.Join(ids, ",") != "IMAGE_BACKGROUND,IMAGE_TREE0" {
		t.Errorf("ResourceIDs(scene) = %v", ids)
	}

	if _, err := rm.ResourceIDs("missing"); err == nil {
		t.Error("ResourceIDs(missing) should fail")
	}

	all, err := rm.AllResourceIDs()
	if err != nil {
		t.Fatalf("AllResourceIDs error: %v", err)
	}
	// 分组按名称排序: scene < sounds
	if len(all) != 5 || all[0] != "IMAGE_BACKGROUND" || all[2] != "SOUND_BGM" {
		t.Errorf("AllResourceIDs = %v", all)
	}
}

func TestLoadResourceByIDSound(t *testing.T) {
	rm := newTestResourceManager(t)

	if err := rm.LoadResourceByID("SOUND_BGM"); err != nil {
		t.Fatalf("LoadResourceByID(SOUND_BGM) error: %v", err)
	}
	if !rm.HasAudioData("assets/sounds/bgm.mp3") {
		t.Error("audio data should be cached after preload")
	}

	// 未知格式
	err := rm.LoadResourceByID("SOUND_BROKEN")
	if err == nil || !strings.Contains(err.Error(), "unsupported audio format") {
		t.Errorf("LoadResourceByID(SOUND_BROKEN) error = %v", err)
	}

	// 没有音频上下文时无法创建播放器，但不会 panic
	if _, err := rm.LoadAudioByID("SOUND_BGM", true); err == nil {
		t.Error("LoadAudioByID without audio context should fail")
	}
}

func TestLoadResourceByIDMissingFile(t *testing.T) {
	rm := newTestResourceManager(t)

	// 清单里有但文件不存在
	err := rm.LoadResourceByID("IMAGE_BACKGROUND")
	if err == nil {
		t.Fatal("expected error for missing image file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error should wrap fs.ErrNotExist, got %v", err)
	}
	if rm.GetImageByID("IMAGE_BACKGROUND") != nil {
		t.Error("missing image should not be cached")
	}

	if err := rm.LoadResourceByID("IMAGE_NOPE"); err == nil {
		t.Error("unknown ID should fail")
	}
}

func TestLoadImageByIDWrongKind(t *testing.T) {
	rm := newTestResourceManager(t)
	if _, err := rm.LoadImageByID("SOUND_BGM"); err == nil {
		t.Error("LoadImageByID on a sound ID should fail")
	}
}

func TestResourceConfigNotLoaded(t *testing.T) {
	rm := NewResourceManager(fstest.MapFS{}, nil)

	if _, err := rm.LoadImageByID("IMAGE_TREE0"); !errors.Is(err, ErrResourceConfigNotLoaded) {
		t.Errorf("LoadImageByID error = %v, want ErrResourceConfigNotLoaded", err)
	}
	if err := rm.LoadResourceByID("IMAGE_TREE0"); !errors.Is(err, ErrResourceConfigNotLoaded) {
		t.Errorf("LoadResourceByID error = %v, want ErrResourceConfigNotLoaded", err)
	}
	if _, err := rm.AllResourceIDs(); !errors.Is(err, ErrResourceConfigNotLoaded) {
		t.Errorf("AllResourceIDs error = %v, want ErrResourceConfigNotLoaded", err)
	}
	if err := rm.LoadResourceConfig("assets/config/resources.yaml"); err == nil {
		t.Error("LoadResourceConfig should fail when the manifest is missing")
	}
}

func TestParseResourceConfigDuplicateID(t *testing.T) {
	_, err := ParseResourceConfig([]byte(`
groups:
  a:
    images:
      - id: IMAGE_X
        path: x.png
  b:
    sounds:
      - id: IMAGE_X
        path: x.mp3
`))
	if err == nil || !strings.Contains(err.Error(), "duplicate resource id") {
		t.Errorf("expected duplicate id error, got %v", err)
	}
}

// TestShippedResourceManifest 发布的资源清单覆盖场景使用的全部 ID
func TestShippedResourceManifest(t *testing.T) {
	if _, err := os.Stat("../../assets/config/resources.yaml"); err != nil {
		t.Skip("Skipping test - resource config file not found")
	}

	rm := NewResourceManager(os.DirFS("../.."), nil)
	if err := rm.LoadResourceConfig("assets/config/resources.yaml"); err != nil {
		t.Fatalf("LoadResourceConfig failed: %v", err)
	}

	ids := []string{
		"IMAGE_BACKGROUND", "IMAGE_MIDGROUND", "IMAGE_FOREGROUND",
		"IMAGE_WATERPOT", "IMAGE_WATER",
		"IMAGE_CHARACTER_BORED", "IMAGE_CHARACTER_MAGIC", "IMAGE_CHARACTER_CELEBRATE",
		"IMAGE_TREE0", "IMAGE_TREE8",
		"IMAGE_GIFT", "IMAGE_BOX_LID", "IMAGE_BOX_BODY", "IMAGE_COUPON",
		"SOUND_BGM", "SOUND_CELEBRATE", "SOUND_WATER", "SOUND_GROW", "SOUND_GIFT_OPEN",
	}
	for _, id := range ids {
		if _, ok := rm.ResolvePath(id); !ok {
			t.Errorf("resource ID %s missing from manifest", id)
		}
	}
}
