package webgpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/g3d/pipeline"
)

// ErrUnsupported is returned when a GL value has no WebGPU equivalent.
var ErrUnsupported = errors.New("webgpu: unsupported value")

func unsupported(kind string, v fmt.Stringer) error {
	return fmt.Errorf("webgpu: %s %v: %w", kind, v, ErrUnsupported)
}

// CompareFunction converts a GL comparison.
func CompareFunction(c pipeline.Comparison) (gputypes.CompareFunction, error) {
	switch c {
	case pipeline.ComparisonNever:
		return gputypes.CompareFunctionNever, nil
	case pipeline.ComparisonLess:
		return gputypes.CompareFunctionLess, nil
	case pipeline.ComparisonEqual:
		return gputypes.CompareFunctionEqual, nil
	case pipeline.ComparisonLessEqual:
		return gputypes.CompareFunctionLessEqual, nil
	case pipeline.ComparisonGreater:
		return gputypes.CompareFunctionGreater, nil
	case pipeline.ComparisonNotEqual:
		return gputypes.CompareFunctionNotEqual, nil
	case pipeline.ComparisonGreaterEqual:
		return gputypes.CompareFunctionGreaterEqual, nil
	case pipeline.ComparisonAlways:
		return gputypes.CompareFunctionAlways, nil
	}
	return gputypes.CompareFunctionUndefined, unsupported("comparison", c)
}

// BlendFactor converts a GL blend factor. GL's constant color maps to
// WebGPU's blend constant; constant alpha and dual-source factors have no
// equivalent.
func BlendFactor(f pipeline.BlendFactor) (gputypes.BlendFactor, error) {
	switch f {
	case pipeline.BlendFactorZero:
		return gputypes.BlendFactorZero, nil
	case pipeline.BlendFactorOne:
		return gputypes.BlendFactorOne, nil
	case pipeline.BlendFactorSrcColor:
		return gputypes.BlendFactorSrc, nil
	case pipeline.BlendFactorOneMinusSrcColor:
		return gputypes.BlendFactorOneMinusSrc, nil
	case pipeline.BlendFactorSrcAlpha:
		return gputypes.BlendFactorSrcAlpha, nil
	case pipeline.BlendFactorOneMinusSrcAlpha:
		return gputypes.BlendFactorOneMinusSrcAlpha, nil
	case pipeline.BlendFactorDstColor:
		return gputypes.BlendFactorDst, nil
	case pipeline.BlendFactorOneMinusDstColor:
		return gputypes.BlendFactorOneMinusDst, nil
	case pipeline.BlendFactorDstAlpha:
		return gputypes.BlendFactorDstAlpha, nil
	case pipeline.BlendFactorOneMinusDstAlpha:
		return gputypes.BlendFactorOneMinusDstAlpha, nil
	case pipeline.BlendFactorSrcAlphaSaturate:
		return gputypes.BlendFactorSrcAlphaSaturated, nil
	case pipeline.BlendFactorConstantColor:
		return gputypes.BlendFactorConstant, nil
	case pipeline.BlendFactorOneMinusConstantColor:
		return gputypes.BlendFactorOneMinusConstant, nil
	}
	return gputypes.BlendFactorUndefined, unsupported("blend factor", f)
}

// BlendOperation converts a GL blend equation.
func BlendOperation(e pipeline.BlendEquation) (gputypes.BlendOperation, error) {
	switch e {
	case pipeline.BlendEquationAdd:
		return gputypes.BlendOperationAdd, nil
	case pipeline.BlendEquationSubtract:
		return gputypes.BlendOperationSubtract, nil
	case pipeline.BlendEquationReverseSubtract:
		return gputypes.BlendOperationReverseSubtract, nil
	case pipeline.BlendEquationMin:
		return gputypes.BlendOperationMin, nil
	case pipeline.BlendEquationMax:
		return gputypes.BlendOperationMax, nil
	}
	return gputypes.BlendOperationUndefined, unsupported("blend equation", e)
}

// CullMode converts a GL cull face. WebGPU cannot cull both faces.
func CullMode(c pipeline.CullFace) (gputypes.CullMode, error) {
	switch c {
	case pipeline.CullFaceNone:
		return gputypes.CullModeNone, nil
	case pipeline.CullFaceFront:
		return gputypes.CullModeFront, nil
	case pipeline.CullFaceBack:
		return gputypes.CullModeBack, nil
	}
	return gputypes.CullModeNone, unsupported("cull face", c)
}

// FrontFace converts a GL face winding.
func FrontFace(w pipeline.FaceWinding) (gputypes.FrontFace, error) {
	switch w {
	case pipeline.FaceWindingCounterClockwise:
		return gputypes.FrontFaceCCW, nil
	case pipeline.FaceWindingClockwise:
		return gputypes.FrontFaceCW, nil
	}
	return gputypes.FrontFaceCCW, unsupported("face winding", w)
}

// StencilOperation converts a GL stencil operation. GL's INCR and DECR
// saturate, matching WebGPU's clamp variants.
func StencilOperation(op pipeline.StencilOperation) (gputypes.StencilOperation, error) {
	switch op {
	case pipeline.StencilOperationKeep:
		return gputypes.StencilOperationKeep, nil
	case pipeline.StencilOperationZero:
		return gputypes.StencilOperationZero, nil
	case pipeline.StencilOperationReplace:
		return gputypes.StencilOperationReplace, nil
	case pipeline.StencilOperationInvert:
		return gputypes.StencilOperationInvert, nil
	case pipeline.StencilOperationIncrement:
		return gputypes.StencilOperationIncrementClamp, nil
	case pipeline.StencilOperationDecrement:
		return gputypes.StencilOperationDecrementClamp, nil
	case pipeline.StencilOperationIncrementWrap:
		return gputypes.StencilOperationIncrementWrap, nil
	case pipeline.StencilOperationDecrementWrap:
		return gputypes.StencilOperationDecrementWrap, nil
	}
	return gputypes.StencilOperationUndefined, unsupported("stencil operation", op)
}

// MagFilter converts a GL magnification filter.
func MagFilter(f pipeline.TextureMagFilter) (gputypes.FilterMode, error) {
	switch f {
	case pipeline.TextureMagFilterNearest:
		return gputypes.FilterModeNearest, nil
	case pipeline.TextureMagFilterLinear:
		return gputypes.FilterModeLinear, nil
	}
	return gputypes.FilterModeUndefined, unsupported("mag filter", f)
}

// MinFilter splits a GL minification filter into the WebGPU texel filter
// and mipmap filter. Filters without a mipmap part sample the base level,
// which WebGPU expresses as nearest mipmap filtering.
func MinFilter(f pipeline.TextureMinFilter) (gputypes.FilterMode, gputypes.MipmapFilterMode, error) {
	switch f {
	case pipeline.TextureMinFilterNearest:
		return gputypes.FilterModeNearest, gputypes.MipmapFilterModeNearest, nil
	case pipeline.TextureMinFilterLinear:
		return gputypes.FilterModeLinear, gputypes.MipmapFilterModeNearest, nil
	case pipeline.TextureMinFilterNearestMipmapNearest:
		return gputypes.FilterModeNearest, gputypes.MipmapFilterModeNearest, nil
	case pipeline.TextureMinFilterLinearMipmapNearest:
		return gputypes.FilterModeLinear, gputypes.MipmapFilterModeNearest, nil
	case pipeline.TextureMinFilterNearestMipmapLinear:
		return gputypes.FilterModeNearest, gputypes.MipmapFilterModeLinear, nil
	case pipeline.TextureMinFilterLinearMipmapLinear:
		return gputypes.FilterModeLinear, gputypes.MipmapFilterModeLinear, nil
	}
	return gputypes.FilterModeUndefined, gputypes.MipmapFilterModeUndefined, unsupported("min filter", f)
}

// AddressMode converts a GL texture wrap mode.
func AddressMode(w pipeline.TextureWrap) (gputypes.AddressMode, error) {
	switch w {
	case pipeline.TextureWrapRepeat:
		return gputypes.AddressModeRepeat, nil
	case pipeline.TextureWrapClampToEdge:
		return gputypes.AddressModeClampToEdge, nil
	case pipeline.TextureWrapMirroredRepeat:
		return gputypes.AddressModeMirrorRepeat, nil
	}
	return gputypes.AddressModeUndefined, unsupported("texture wrap", w)
}

// BufferUsage converts a GL usage hint to the transfer usages it implies.
// GL hints say how the host accesses a buffer, not what it is bound as;
// callers OR in the binding usage (Vertex, Index, Uniform) themselves.
func BufferUsage(u pipeline.BufferUsage) (gputypes.BufferUsage, error) {
	switch u {
	case pipeline.BufferUsageStreamDraw, pipeline.BufferUsageStaticDraw, pipeline.BufferUsageDynamicDraw:
		return gputypes.BufferUsageCopyDst, nil
	case pipeline.BufferUsageStreamRead, pipeline.BufferUsageStaticRead, pipeline.BufferUsageDynamicRead:
		return gputypes.BufferUsageCopyDst | gputypes.BufferUsageMapRead, nil
	case pipeline.BufferUsageStreamCopy, pipeline.BufferUsageStaticCopy, pipeline.BufferUsageDynamicCopy:
		return gputypes.BufferUsageCopySrc | gputypes.BufferUsageCopyDst, nil
	}
	return gputypes.BufferUsageNone, unsupported("buffer usage", u)
}

// PrimitiveTopology converts a GL primitive type. Loops, fans, adjacency
// primitives and patches have no WebGPU topology.
func PrimitiveTopology(p pipeline.PrimitiveType) (gputypes.PrimitiveTopology, error) {
	switch p {
	case pipeline.PrimitiveTypePoints:
		return gputypes.PrimitiveTopologyPointList, nil
	case pipeline.PrimitiveTypeLines:
		return gputypes.PrimitiveTopologyLineList, nil
	case pipeline.PrimitiveTypeLineStrip:
		return gputypes.PrimitiveTopologyLineStrip, nil
	case pipeline.PrimitiveTypeTriangles:
		return gputypes.PrimitiveTopologyTriangleList, nil
	case pipeline.PrimitiveTypeTriangleStrip:
		return gputypes.PrimitiveTopologyTriangleStrip, nil
	}
	return gputypes.PrimitiveTopologyTriangleList, unsupported("primitive type", p)
}

// SamplerDescriptor builds a sampler from GL texture parameters. The R
// coordinate wraps like T.
func SamplerDescriptor(label string, minF pipeline.TextureMinFilter, magF pipeline.TextureMagFilter, wrapS, wrapT pipeline.TextureWrap) (gputypes.SamplerDescriptor, error) {
	minMode, mipMode, err := MinFilter(minF)
	if err != nil {
		return gputypes.SamplerDescriptor{}, err
	}
	magMode, err := MagFilter(magF)
	if err != nil {
		return gputypes.SamplerDescriptor{}, err
	}
	u, err := AddressMode(wrapS)
	if err != nil {
		return gputypes.SamplerDescriptor{}, err
	}
	v, err := AddressMode(wrapT)
	if err != nil {
		return gputypes.SamplerDescriptor{}, err
	}
	return gputypes.SamplerDescriptor{
		Label:         label,
		AddressModeU:  u,
		AddressModeV:  v,
		AddressModeW:  v,
		MagFilter:     magMode,
		MinFilter:     minMode,
		MipmapFilter:  mipMode,
		LodMinClamp:   0,
		LodMaxClamp:   32,
		MaxAnisotropy: 1,
	}, nil
}
