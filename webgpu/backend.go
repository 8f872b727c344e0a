package webgpu

import (
	"sync"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/g3d"
	"github.com/gogpu/g3d/backend"
	"github.com/gogpu/g3d/internal/cache"
	"github.com/gogpu/g3d/pipeline"
)

func init() {
	backend.Register(backend.NameWebGPU, func() backend.Backend {
		return New()
	})
}

// uniformAlign is the offset alignment of each uniform in Frame.Uniforms,
// the size of a vec4<f32>.
const uniformAlign = 16

// Frame is what a WebGPU backend prepared from one submission.
type Frame struct {
	Pipeline Pipeline
	// Uniforms holds every uniform back to back, each starting on a
	// 16-byte boundary, in host byte order.
	Uniforms []byte
	// Offsets maps uniform names to their byte offset in Uniforms.
	Offsets map[string]int
}

// pipelineCacheSize is the per-shard capacity of the translation cache.
const pipelineCacheSize = 32

// Backend translates submissions into Frames. It keeps only the most
// recent one. Translated pipelines are cached by descriptor and shared
// between frames, so their pointer fields must not be modified.
//
// Backend is safe for concurrent use.
type Backend struct {
	opts      []Option
	pipelines *cache.Sharded[pipeline.RenderStateDescriptor, Pipeline]

	mu    sync.Mutex
	frame Frame
	ok    bool
}

// New creates a WebGPU backend. The options are passed to Translate and
// must not change afterwards: cached pipelines are keyed by descriptor
// alone.
func New(opts ...Option) *Backend {
	return &Backend{
		opts:      opts,
		pipelines: cache.New[pipeline.RenderStateDescriptor, Pipeline](pipelineCacheSize, pipeline.RenderStateDescriptor.Hash),
	}
}

// NewWithProvider creates a WebGPU backend that takes its surface format
// from p.
func NewWithProvider(p gpucontext.DeviceProvider, opts ...Option) *Backend {
	return New(append([]Option{WithDeviceProvider(p)}, opts...)...)
}

// Name returns "webgpu".
func (b *Backend) Name() string { return backend.NameWebGPU }

// Apply translates s and packs its uniforms. On error the previous frame
// is kept.
func (b *Backend) Apply(s backend.Submission) error {
	p, err := b.pipelines.GetOrCreate(s.State, func() (Pipeline, error) {
		return Translate(s.State, b.opts...)
	})
	if err != nil {
		return err
	}

	f := Frame{Pipeline: p, Offsets: make(map[string]int, len(s.Uniforms))}
	for _, u := range s.Uniforms {
		if pad := len(f.Uniforms) % uniformAlign; pad != 0 {
			f.Uniforms = append(f.Uniforms, make([]byte, uniformAlign-pad)...)
		}
		f.Offsets[u.Name] = len(f.Uniforms)
		f.Uniforms = append(f.Uniforms, u.Bytes()...)
	}

	b.mu.Lock()
	b.frame, b.ok = f, true
	b.mu.Unlock()

	g3d.Logger().Debug("webgpu: frame ready", "uniform_bytes", len(f.Uniforms))
	return nil
}

// Reset drops the current frame and every cached pipeline. Call it after
// the provider's surface is reconfigured, since cached pipelines keep the
// color format they were translated with.
func (b *Backend) Reset() {
	b.pipelines.Clear()
	b.mu.Lock()
	b.frame, b.ok = Frame{}, false
	b.mu.Unlock()
}

// CacheStats returns the counters of the translation cache.
func (b *Backend) CacheStats() cache.Stats {
	return b.pipelines.Stats()
}

// Frame returns the most recent frame and whether there is one.
func (b *Backend) Frame() (Frame, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.frame, b.ok
}
