package pipeline

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

// Hash returns a 64-bit FNV-1a hash of every field of d. Equal descriptors
// hash equally.
func (d RenderStateDescriptor) Hash() uint64 {
	b := make([]byte, 0, 160)
	b = appendBool(b, d.BlendingEnabled)
	b = binary.LittleEndian.AppendUint32(b, uint32(d.BlendEquation))
	b = binary.LittleEndian.AppendUint32(b, uint32(d.BlendSrc))
	b = binary.LittleEndian.AppendUint32(b, uint32(d.BlendDst))

	b = appendBool(b, d.DepthTestEnabled)
	b = binary.LittleEndian.AppendUint32(b, uint32(d.DepthFunc))
	b = appendBool(b, d.DepthWriteMask)

	b = appendBool(b, d.StencilTestEnabled)
	b = binary.LittleEndian.AppendUint32(b, uint32(d.StencilFunc))
	b = binary.LittleEndian.AppendUint32(b, uint32(d.StencilRef))
	b = binary.LittleEndian.AppendUint32(b, d.StencilMask)
	b = binary.LittleEndian.AppendUint32(b, uint32(d.StencilFail))
	b = binary.LittleEndian.AppendUint32(b, uint32(d.StencilZFail))
	b = binary.LittleEndian.AppendUint32(b, uint32(d.StencilZPass))

	b = binary.LittleEndian.AppendUint32(b, uint32(d.CullFace))
	b = binary.LittleEndian.AppendUint32(b, uint32(d.FrontFace))
	b = binary.LittleEndian.AppendUint32(b, uint32(d.PolygonMode))
	b = appendBool(b, d.AlphaToCoverage)
	b = appendBool(b, d.Dither)

	b = appendBool(b, d.ScissorTest)
	b = binary.LittleEndian.AppendUint32(b, uint32(d.ScissorX))
	b = binary.LittleEndian.AppendUint32(b, uint32(d.ScissorY))
	b = binary.LittleEndian.AppendUint32(b, d.ScissorWidth)
	b = binary.LittleEndian.AppendUint32(b, d.ScissorHeight)

	b = binary.LittleEndian.AppendUint32(b, uint32(d.ViewportX))
	b = binary.LittleEndian.AppendUint32(b, uint32(d.ViewportY))
	b = binary.LittleEndian.AppendUint32(b, d.ViewportWidth)
	b = binary.LittleEndian.AppendUint32(b, d.ViewportHeight)

	for _, f := range [...]float64{d.ClearColorR, d.ClearColorG, d.ClearColorB, d.ClearColorA, d.ClearDepth} {
		b = binary.LittleEndian.AppendUint64(b, floatBits(f))
	}
	b = binary.LittleEndian.AppendUint32(b, uint32(d.ClearStencil))
	b = binary.LittleEndian.AppendUint32(b, uint32(d.ClearMask))

	h := fnv.New64a()
	_, _ = h.Write(b) // fnv never fails
	return h.Sum64()
}

func appendBool(b []byte, v bool) []byte {
	if v {
		return append(b, 1)
	}
	return append(b, 0)
}

// floatBits folds -0 into +0 so values that compare equal hash equally.
func floatBits(f float64) uint64 {
	if f == 0 {
		return 0
	}
	return math.Float64bits(f)
}
