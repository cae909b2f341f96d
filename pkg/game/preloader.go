package game

import (
	"log"
)

// ResourceLoader 按 ID 预加载资源，由 ResourceManager 实现
type ResourceLoader interface {
	LoadResourceByID(resourceID string) error
}

// PreloadFailure 记录一个加载失败的资源
type PreloadFailure struct {
	ID  string
	Err error
}

// Preloader 逐个加载资源并报告进度
//
// 失败的资源只记录不中断：缺失的图片在场景中画成占位色块，
// 缺失的音频静默跳过。
type Preloader struct {
	loader   ResourceLoader
	queue    []string
	next     int
	failures []PreloadFailure
}

// NewPreloader 创建预加载器，ids 按顺序加载
func NewPreloader(loader ResourceLoader, ids []string) *Preloader {
	queue := make([]string, len(ids))
	copy(queue, ids)
	return &Preloader{
		loader: loader,
		queue:  queue,
	}
}

// Step 最多加载 n 个资源，返回是否全部完成
func (p *Preloader) Step(n int) bool {
	for i := 0; i < n && p.next < len(p.queue); i++ {
		id := p.queue[p.next]
		p.next++
		if err := p.loader.LoadResourceByID(id); err != nil {
			log.Printf("[Preloader] Warning: failed to load %s: %v", id, err)
			p.failures = append(p.failures, PreloadFailure{ID: id, Err: err})
		}
	}
	return p.Done()
}

// Done 是否已处理完全部资源
func (p *Preloader) Done() bool {
	return p.next >= len(p.queue)
}

// Progress 返回 [0, 1] 的进度，空队列视为已完成
func (p *Preloader) Progress() float64 {
	if len(p.queue) == 0 {
		return 1
	}
	return float64(p.next) / float64(len(p.queue))
}

// Total 资源总数
func (p *Preloader) Total() int {
	return len(p.queue)
}

// Failures 返回加载失败的资源
func (p *Preloader) Failures() []PreloadFailure {
	return p.failures
}
