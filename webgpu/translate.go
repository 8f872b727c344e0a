package webgpu

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/g3d"
	"github.com/gogpu/g3d/pipeline"
)

// Default formats used when no option or device provider says otherwise.
const (
	DefaultColorFormat = gputypes.TextureFormatBGRA8Unorm
	DefaultDepthFormat = gputypes.TextureFormatDepth24PlusStencil8
)

// Pipeline is a descriptor split into the parts WebGPU bakes into a render
// pipeline and the parts it sets per render pass.
type Pipeline struct {
	// Render pipeline state.
	Primitive    gputypes.PrimitiveState
	DepthStencil *gputypes.DepthStencilState // nil when depth and stencil tests are off
	Multisample  gputypes.MultisampleState
	ColorTarget  gputypes.ColorTargetState

	// Render pass state.
	ColorAttachment        gputypes.RenderPassColorAttachment
	DepthStencilAttachment *gputypes.RenderPassDepthStencilAttachment // nil with DepthStencil
	Viewport               pipeline.Viewport
	Scissor                *pipeline.ScissorBox // nil when the scissor test is off
	StencilReference       uint32
}

// Option configures Translate.
type Option func(*options)

type options struct {
	provider    gpucontext.DeviceProvider
	colorFormat gputypes.TextureFormat
	depthFormat gputypes.TextureFormat
	topology    pipeline.PrimitiveType
	samples     uint32
}

// WithDeviceProvider takes the color target format from p's surface.
func WithDeviceProvider(p gpucontext.DeviceProvider) Option {
	return func(o *options) { o.provider = p }
}

// WithColorFormat sets the color target format. It takes precedence over a
// device provider.
func WithColorFormat(f gputypes.TextureFormat) Option {
	return func(o *options) { o.colorFormat = f }
}

// WithDepthFormat sets the depth/stencil attachment format.
func WithDepthFormat(f gputypes.TextureFormat) Option {
	return func(o *options) { o.depthFormat = f }
}

// WithPrimitiveType sets the topology. The default is triangles.
func WithPrimitiveType(p pipeline.PrimitiveType) Option {
	return func(o *options) { o.topology = p }
}

// WithSampleCount sets the multisample count. Zero means one sample.
func WithSampleCount(n uint32) Option {
	return func(o *options) { o.samples = n }
}

func (o *options) resolveColorFormat() gputypes.TextureFormat {
	if o.colorFormat != gputypes.TextureFormatUndefined {
		return o.colorFormat
	}
	if o.provider != nil {
		if f := o.provider.SurfaceFormat(); f != gputypes.TextureFormatUndefined {
			return f
		}
	}
	return DefaultColorFormat
}

// Translate converts d into WebGPU state. Any field with no WebGPU
// equivalent fails the whole translation with an error wrapping
// ErrUnsupported.
func Translate(d pipeline.RenderStateDescriptor, opts ...Option) (Pipeline, error) {
	o := options{
		depthFormat: DefaultDepthFormat,
		topology:    pipeline.PrimitiveTypeTriangles,
		samples:     1,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.samples == 0 {
		o.samples = 1
	}

	var p Pipeline
	var err error

	if p.Primitive, err = primitiveState(d, o.topology); err != nil {
		return Pipeline{}, err
	}
	if p.DepthStencil, err = depthStencilState(d, o.depthFormat); err != nil {
		return Pipeline{}, err
	}
	p.Multisample = gputypes.MultisampleState{
		Count:                  o.samples,
		Mask:                   0xFFFFFFFF,
		AlphaToCoverageEnabled: d.AlphaToCoverage,
	}
	if p.ColorTarget, err = colorTargetState(d, o.resolveColorFormat()); err != nil {
		return Pipeline{}, err
	}

	p.ColorAttachment = gputypes.RenderPassColorAttachment{
		LoadOp:     loadOp(d.ClearMask.Has(pipeline.ClearColorBit)),
		StoreOp:    gputypes.StoreOpStore,
		ClearValue: gputypes.NewColor(d.ClearColorR, d.ClearColorG, d.ClearColorB, d.ClearColorA),
	}
	if p.DepthStencil != nil {
		a := &gputypes.RenderPassDepthStencilAttachment{
			DepthLoadOp:       loadOp(d.ClearMask.Has(pipeline.ClearDepthBit)),
			DepthStoreOp:      gputypes.StoreOpStore,
			DepthClearValue:   g3d.ToSingle(d.ClearDepth),
			StencilLoadOp:     loadOp(d.ClearMask.Has(pipeline.ClearStencilBit)),
			StencilStoreOp:    gputypes.StoreOpStore,
			StencilClearValue: uint32(d.ClearStencil),
		}
		// A read-only aspect takes no load or store op. This also drops a
		// requested depth clear, as glDepthMask(GL_FALSE) does.
		if !d.DepthWriteMask {
			a.DepthReadOnly = true
			a.DepthLoadOp, a.DepthStoreOp = gputypes.LoadOpUndefined, gputypes.StoreOpUndefined
		}
		p.DepthStencilAttachment = a
	}
	p.Viewport = d.Viewport()
	if d.ScissorTest {
		s := d.Scissor()
		p.Scissor = &s
	}
	p.StencilReference = uint32(d.StencilRef)

	if o.provider != nil {
		info := o.provider.AdapterInfo()
		g3d.Logger().Debug("webgpu: translated", "adapter", info.Name, "adapter_type", info.Type.String(), "format", uint32(p.ColorTarget.Format))
	}
	return p, nil
}

func loadOp(clear bool) gputypes.LoadOp {
	if clear {
		return gputypes.LoadOpClear
	}
	return gputypes.LoadOpLoad
}

func primitiveState(d pipeline.RenderStateDescriptor, topology pipeline.PrimitiveType) (gputypes.PrimitiveState, error) {
	if d.PolygonMode != pipeline.PolygonModeFill {
		return gputypes.PrimitiveState{}, unsupported("polygon mode", d.PolygonMode)
	}
	top, err := PrimitiveTopology(topology)
	if err != nil {
		return gputypes.PrimitiveState{}, err
	}
	front, err := FrontFace(d.FrontFace)
	if err != nil {
		return gputypes.PrimitiveState{}, err
	}
	cull, err := CullMode(d.CullFace)
	if err != nil {
		return gputypes.PrimitiveState{}, err
	}
	return gputypes.PrimitiveState{Topology: top, FrontFace: front, CullMode: cull}, nil
}

// depthStencilState returns nil when neither test is enabled. With the
// depth test off, depth always passes and is never written, as in GL.
func depthStencilState(d pipeline.RenderStateDescriptor, format gputypes.TextureFormat) (*gputypes.DepthStencilState, error) {
	if !d.DepthTestEnabled && !d.StencilTestEnabled {
		return nil, nil
	}

	ds := gputypes.DepthStencilState{
		Format:           format,
		DepthCompare:     gputypes.CompareFunctionAlways,
		StencilFront:     gputypes.DefaultStencilFaceState(),
		StencilBack:      gputypes.DefaultStencilFaceState(),
		StencilReadMask:  d.StencilMask,
		StencilWriteMask: d.StencilMask,
	}
	if d.DepthTestEnabled {
		cmp, err := CompareFunction(d.DepthFunc)
		if err != nil {
			return nil, err
		}
		ds.DepthCompare = cmp
		ds.DepthWriteEnabled = d.DepthWriteMask
	}
	if d.StencilTestEnabled {
		face, err := stencilFace(d)
		if err != nil {
			return nil, err
		}
		ds.StencilFront, ds.StencilBack = face, face
	}
	return &ds, nil
}

func stencilFace(d pipeline.RenderStateDescriptor) (gputypes.StencilFaceState, error) {
	var f gputypes.StencilFaceState
	var err error
	if f.Compare, err = CompareFunction(d.StencilFunc); err != nil {
		return f, err
	}
	if f.FailOp, err = StencilOperation(d.StencilFail); err != nil {
		return f, err
	}
	if f.DepthFailOp, err = StencilOperation(d.StencilZFail); err != nil {
		return f, err
	}
	if f.PassOp, err = StencilOperation(d.StencilZPass); err != nil {
		return f, err
	}
	return f, nil
}

// colorTargetState uses the same blend component for color and alpha, as
// glBlendFunc and glBlendEquation do.
func colorTargetState(d pipeline.RenderStateDescriptor, format gputypes.TextureFormat) (gputypes.ColorTargetState, error) {
	t := gputypes.ColorTargetState{Format: format, WriteMask: gputypes.ColorWriteMaskAll}
	if !d.BlendingEnabled {
		return t, nil
	}
	src, err := BlendFactor(d.BlendSrc)
	if err != nil {
		return t, err
	}
	dst, err := BlendFactor(d.BlendDst)
	if err != nil {
		return t, err
	}
	op, err := BlendOperation(d.BlendEquation)
	if err != nil {
		return t, err
	}
	// GL ignores the factors of Min and Max; WebGPU requires them to be One.
	if op == gputypes.BlendOperationMin || op == gputypes.BlendOperationMax {
		src, dst = gputypes.BlendFactorOne, gputypes.BlendFactorOne
	}
	c := gputypes.BlendComponent{SrcFactor: src, DstFactor: dst, Operation: op}
	t.Blend = &gputypes.BlendState{Color: c, Alpha: c}
	return t, nil
}
