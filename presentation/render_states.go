package presentation

import "github.com/gogpu/g3d/pipeline"

// RenderStates is the subset of pipeline state a material controls:
// blending, depth testing and writing, and face culling.
type RenderStates struct {
	Blend      bool
	BlendSrc   pipeline.BlendFactor
	BlendDst   pipeline.BlendFactor
	DepthTest  bool
	DepthWrite bool
	Cull       Cull
}

// DefaultRenderStates returns opaque, depth-tested, depth-writing states
// with no culling. The blend factors are One and Zero.
func DefaultRenderStates() RenderStates {
	return RenderStates{
		BlendSrc:   pipeline.BlendFactorOne,
		BlendDst:   pipeline.BlendFactorZero,
		DepthTest:  true,
		DepthWrite: true,
		Cull:       CullNone,
	}
}

// Apply writes r into d. The blend factors are copied only when blending
// is on; the blend equation and depth function are left alone.
func (r RenderStates) Apply(d *pipeline.RenderStateDescriptor) {
	d.BlendingEnabled = r.Blend
	if r.Blend {
		d.BlendSrc, d.BlendDst = r.BlendSrc, r.BlendDst
	}
	d.DepthTestEnabled = r.DepthTest
	d.DepthWriteMask = r.DepthWrite
	d.CullFace = r.Cull.ToCullFace()
}
