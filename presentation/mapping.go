package presentation

import (
	"fmt"

	"github.com/gogpu/g3d/pipeline"
)

// ToCullFace converts c to the pipeline face-culling enum.
func (c Cull) ToCullFace() pipeline.CullFace {
	switch c {
	case CullBack:
		return pipeline.CullFaceBack
	case CullFront:
		return pipeline.CullFaceFront
	case CullFrontAndBack:
		return pipeline.CullFaceFrontAndBack
	default:
		return pipeline.CullFaceNone
	}
}

// ToComparison converts t to the pipeline comparison enum. Values outside
// the enum map to Less, the GL default depth function.
func (t DepthTest) ToComparison() pipeline.Comparison {
	switch t {
	case DepthTestNever:
		return pipeline.ComparisonNever
	case DepthTestEqual:
		return pipeline.ComparisonEqual
	case DepthTestLessOrEqual:
		return pipeline.ComparisonLessEqual
	case DepthTestGreater:
		return pipeline.ComparisonGreater
	case DepthTestNotEqual:
		return pipeline.ComparisonNotEqual
	case DepthTestGreaterOrEqual:
		return pipeline.ComparisonGreaterEqual
	case DepthTestAlways:
		return pipeline.ComparisonAlways
	default:
		return pipeline.ComparisonLess
	}
}

// ToClearMask converts f to the GL clear bitfield.
func (f ClearFlag) ToClearMask() pipeline.ClearMask {
	switch f {
	case ClearFlagColor:
		return pipeline.ClearColorBit
	case ClearFlagDepth:
		return pipeline.ClearDepthBit
	case ClearFlagStencil:
		return pipeline.ClearStencilBit
	case ClearFlagColorDepth:
		return pipeline.ClearColorBit | pipeline.ClearDepthBit
	case ClearFlagColorStencil:
		return pipeline.ClearColorBit | pipeline.ClearStencilBit
	case ClearFlagDepthStencil:
		return pipeline.ClearDepthBit | pipeline.ClearStencilBit
	case ClearFlagAll:
		return pipeline.ClearAllBits
	default:
		return 0
	}
}

// ToBufferUsage converts h to the matching *Draw buffer usage.
func (h DrawModeHint) ToBufferUsage() pipeline.BufferUsage {
	switch h {
	case DrawModeHintDynamic:
		return pipeline.BufferUsageDynamicDraw
	case DrawModeHintStream:
		return pipeline.BufferUsageStreamDraw
	default:
		return pipeline.BufferUsageStaticDraw
	}
}

// ToMagFilter converts f to a texture magnification filter. Gaussian is a
// post-processing kernel with no fixed-function equivalent.
func (f FilterMode) ToMagFilter() (pipeline.TextureMagFilter, error) {
	switch f {
	case FilterModePoint:
		return pipeline.TextureMagFilterNearest, nil
	case FilterModeLinear:
		return pipeline.TextureMagFilterLinear, nil
	}
	return 0, fmt.Errorf("presentation: filter mode %v: %w", f, ErrNoEquivalent)
}

// ToPrimitiveType converts g to a GL primitive type. Quads were removed
// from core GL and have no equivalent.
func (g GeometryType) ToPrimitiveType() (pipeline.PrimitiveType, error) {
	switch g {
	case GeometryTypePoints:
		return pipeline.PrimitiveTypePoints, nil
	case GeometryTypeLines:
		return pipeline.PrimitiveTypeLines, nil
	case GeometryTypeTriangles:
		return pipeline.PrimitiveTypeTriangles, nil
	case GeometryTypeFan:
		return pipeline.PrimitiveTypeTriangleFan, nil
	case GeometryTypeStrip:
		return pipeline.PrimitiveTypeTriangleStrip, nil
	}
	return 0, fmt.Errorf("presentation: geometry type %v: %w", g, ErrNoEquivalent)
}

// Apply sets the blend state of d for t. Opaque disables blending and
// leaves the factors alone.
func (t Transparency) Apply(d *pipeline.RenderStateDescriptor) {
	if t == TransparencyOpaque {
		d.BlendingEnabled = false
		return
	}
	d.BlendingEnabled = true
	d.BlendEquation = pipeline.BlendEquationAdd
	switch t {
	case TransparencyAdditive:
		d.BlendSrc, d.BlendDst = pipeline.BlendFactorOne, pipeline.BlendFactorOne
	case TransparencyMultiply:
		d.BlendSrc, d.BlendDst = pipeline.BlendFactorDstColor, pipeline.BlendFactorZero
	default:
		d.BlendSrc, d.BlendDst = pipeline.BlendFactorSrcAlpha, pipeline.BlendFactorOneMinusSrcAlpha
	}
}

// Apply sets the depth write flag of d from m. Color and stencil writes
// have no field in the descriptor; the stencil write mask is carried by
// StencilMask.
func (m WriteMask) Apply(d *pipeline.RenderStateDescriptor) {
	d.DepthWriteMask = m.Has(WriteMaskDepth)
}
