package game

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// ErrResourceConfigNotLoaded 在调用 LoadResourceConfig 之前按 ID 访问资源
var ErrResourceConfigNotLoaded = errors.New("resource config not loaded - call LoadResourceConfig first")

// ResourceManager is responsible for centralized management of game resources.
// It reads everything through an fs.FS (the embedded assets in the game,
// fstest.MapFS in tests) and caches what it loads.
//
// Images are decoded once into ebiten images. Audio files are read once into
// memory; players are created from the cached bytes, looping (music, water)
// or one-shot (effects).
//
// This implementation is NOT thread-safe; all calls come from the game loop.
type ResourceManager struct {
	fsys         fs.FS
	audioContext *audio.Context

	imageCache  map[string]*ebiten.Image // path -> Image
	audioData   map[string][]byte        // path -> raw file bytes
	loopCache   map[string]*audio.Player // path -> looping player
	effectCache map[string]*audio.Player // path -> one-shot player

	config  *ResourceConfig
	entries map[string]resourceEntry // resource ID -> kind + path
}

// NewResourceManager creates a ResourceManager reading from fsys.
// audioContext may be nil; audio players then cannot be created but audio
// data can still be preloaded.
func NewResourceManager(fsys fs.FS, audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		fsys:         fsys,
		audioContext: audioContext,
		imageCache:   make(map[string]*ebiten.Image),
		audioData:    make(map[string][]byte),
		loopCache:    make(map[string]*audio.Player),
		effectCache:  make(map[string]*audio.Player),
		entries:      make(map[string]resourceEntry),
	}
}

// LoadResourceConfig 读取并解析资源清单
//
//	if err := rm.LoadResourceConfig("assets/config/resources.yaml"); err != nil {
//	    return err
//	}
func (rm *ResourceManager) LoadResourceConfig(configPath string) error {
	data, err := fs.ReadFile(rm.fsys, configPath)
	if err != nil {
		return fmt.Errorf("failed to read resource config %s: %w", configPath, err)
	}

	cfg, err := ParseResourceConfig(data)
	if err != nil {
		return fmt.Errorf("resource config %s: %w", configPath, err)
	}

	rm.config = cfg
	rm.entries = cfg.entries()
	return nil
}

// Config 返回已加载的资源清单，未加载时为 nil
func (rm *ResourceManager) Config() *ResourceConfig {
	return rm.config
}

// ResolvePath 返回资源 ID 对应的文件路径
func (rm *ResourceManager) ResolvePath(resourceID string) (string, bool) {
	entry, ok := rm.entries[resourceID]
	return entry.Path, ok
}

// ResourceIDs 返回分组中的资源 ID（图片在前，音频在后，保持清单顺序）
func (rm *ResourceManager) ResourceIDs(groupName string) ([]string, error) {
	if rm.config == nil {
		return nil, ErrResourceConfigNotLoaded
	}
	group, ok := rm.config.Groups[groupName]
	if !ok {
		return nil, fmt.Errorf("resource group not found: %s", groupName)
	}
	ids := make([]string, 0, len(group.Images)+len(group.Sounds))
	for _, img := range group.Images {
		ids = append(ids, img.ID)
	}
	for _, snd := range group.Sounds {
		ids = append(ids, snd.ID)
	}
	return ids, nil
}

// AllResourceIDs 按分组名称顺序返回清单中的全部资源 ID
func (rm *ResourceManager) AllResourceIDs() ([]string, error) {
	if rm.config == nil {
		return nil, ErrResourceConfigNotLoaded
	}
	var all []string
	for _, name := range rm.config.GroupNames() {
		ids, err := rm.ResourceIDs(name)
		if err != nil {
			return nil, err
		}
		all = append(all, ids...)
	}
	return all, nil
}

// LoadResourceByID 预加载一个资源：图片解码进缓存，音频读入内存
func (rm *ResourceManager) LoadResourceByID(resourceID string) error {
	if rm.config == nil {
		return ErrResourceConfigNotLoaded
	}
	entry, ok := rm.entries[resourceID]
	if !ok {
		return fmt.Errorf("resource ID not found: %s", resourceID)
	}
	switch entry.Kind {
	case ResourceImage:
		_, err := rm.LoadImage(entry.Path)
		return err
	case ResourceSound:
		_, err := rm.readAudioData(entry.Path)
		return err
	}
	return fmt.Errorf("resource %s has unknown kind %d", resourceID, entry.Kind)
}

// LoadImage loads an image file and caches it.
// Supported formats: PNG, JPEG, GIF (first frame).
func (rm *ResourceManager) LoadImage(p string) (*ebiten.Image, error) {
	if cached, ok := rm.imageCache[p]; ok {
		return cached, nil
	}

	file, err := rm.fsys.Open(p)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", p, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", p, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[p] = ebitenImg
	return ebitenImg, nil
}

// GetImage 返回已缓存的图片，未加载时为 nil
func (rm *ResourceManager) GetImage(p string) *ebiten.Image {
	return rm.imageCache[p]
}

// LoadImageByID 按资源 ID 加载图片
func (rm *ResourceManager) LoadImageByID(resourceID string) (*ebiten.Image, error) {
	p, err := rm.pathOf(resourceID, ResourceImage)
	if err != nil {
		return nil, err
	}
	return rm.LoadImage(p)
}

// GetImageByID 按资源 ID 返回已缓存的图片，未加载时为 nil
func (rm *ResourceManager) GetImageByID(resourceID string) *ebiten.Image {
	entry, ok := rm.entries[resourceID]
	if !ok || entry.Kind != ResourceImage {
		return nil
	}
	return rm.imageCache[entry.Path]
}

// LoadAudio 创建循环播放器（背景音乐、水声）
// Supported formats: .mp3, .ogg, .wav
func (rm *ResourceManager) LoadAudio(p string) (*audio.Player, error) {
	if cached, ok := rm.loopCache[p]; ok {
		return cached, nil
	}
	if rm.audioContext == nil {
		return nil, fmt.Errorf("no audio context for %s", p)
	}
	stream, err := rm.decodeAudio(p)
	if err != nil {
		return nil, err
	}

	player, err := rm.audioContext.NewPlayer(audio.NewInfiniteLoop(stream, stream.Length()))
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", p, err)
	}
	rm.loopCache[p] = player
	return player, nil
}

// LoadSoundEffect 创建单次播放器（生长、开礼物音效）
func (rm *ResourceManager) LoadSoundEffect(p string) (*audio.Player, error) {
	if cached, ok := rm.effectCache[p]; ok {
		return cached, nil
	}
	if rm.audioContext == nil {
		return nil, fmt.Errorf("no audio context for %s", p)
	}
	stream, err := rm.decodeAudio(p)
	if err != nil {
		return nil, err
	}

	player, err := rm.audioContext.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", p, err)
	}
	rm.effectCache[p] = player
	return player, nil
}

// LoadAudioByID 按资源 ID 创建播放器，loop 决定是否循环
func (rm *ResourceManager) LoadAudioByID(resourceID string, loop bool) (*audio.Player, error) {
	p, err := rm.pathOf(resourceID, ResourceSound)
	if err != nil {
		return nil, err
	}
	if loop {
		return rm.LoadAudio(p)
	}
	return rm.LoadSoundEffect(p)
}

// HasAudioData 音频文件是否已读入内存
func (rm *ResourceManager) HasAudioData(p string) bool {
	_, ok := rm.audioData[p]
	return ok
}

func (rm *ResourceManager) pathOf(resourceID string, kind ResourceKind) (string, error) {
	if rm.config == nil {
		return "", ErrResourceConfigNotLoaded
	}
	entry, ok := rm.entries[resourceID]
	if !ok {
		return "", fmt.Errorf("resource ID not found: %s", resourceID)
	}
	if entry.Kind != kind {
		return "", fmt.Errorf("resource %s is not of the requested kind", resourceID)
	}
	return entry.Path, nil
}

// readAudioData 读取整个音频文件到内存，播放器可以反复 seek 而不持有文件句柄
func (rm *ResourceManager) readAudioData(p string) ([]byte, error) {
	if data, ok := rm.audioData[p]; ok {
		return data, nil
	}
	if _, err := audioFormat(p); err != nil {
		return nil, err
	}
	data, err := fs.ReadFile(rm.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", p, err)
	}
	rm.audioData[p] = data
	return data, nil
}

type audioStream interface {
	io.ReadSeeker
	Length() int64
}

func (rm *ResourceManager) decodeAudio(p string) (audioStream, error) {
	data, err := rm.readAudioData(p)
	if err != nil {
		return nil, err
	}
	reader := bytes.NewReader(data)

	format, _ := audioFormat(p)
	switch format {
	case ".mp3":
		s, err := mp3.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 audio %s: %w", p, err)
		}
		return s, nil
	case ".ogg":
		s, err := vorbis.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG audio %s: %w", p, err)
		}
		return s, nil
	default:
		s, err := wav.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode WAV audio %s: %w", p, err)
		}
		return s, nil
	}
}

var supportedAudioFormats = []string{".mp3", ".ogg", ".wav"}

func audioFormat(p string) (string, error) {
	ext := strings.ToLower(path.Ext(p))
	i := sort.SearchStrings(supportedAudioFormats, ext)
	if i < len(supportedAudioFormats) && supportedAudioFormats[i] == ext {
		return ext, nil
	}
	return "", fmt.Errorf("unsupported audio format: %s (supported: %s)", ext, strings.Join(supportedAudioFormats, ", "))
}
