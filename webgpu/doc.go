// Package webgpu translates a pipeline.RenderStateDescriptor into the
// WebGPU state objects defined by github.com/gogpu/gputypes.
//
// GL keeps render state in a global state machine; WebGPU bakes most of it
// into a render pipeline and supplies the rest (viewport, scissor, stencil
// reference, clear values) per render pass. Translate splits a descriptor
// along that line and returns both halves as a Pipeline.
//
// # Surface Format
//
// The color target format is taken, in order of preference, from
// WithColorFormat, from the SurfaceFormat of a gpucontext.DeviceProvider
// given with WithDeviceProvider, or defaults to BGRA8Unorm:
//
//	p, err := webgpu.Translate(d, webgpu.WithDeviceProvider(app))
//
// # Unsupported State
//
// A few GL states have no WebGPU equivalent: non-fill polygon modes,
// culling both faces, dual-source and constant-alpha blend factors and
// clamp-to-border wrapping. Translating them fails with ErrUnsupported.
// Dithering is ignored; WebGPU implementations choose it themselves.
package webgpu
