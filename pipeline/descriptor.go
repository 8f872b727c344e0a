package pipeline

import (
	"log/slog"

	"github.com/gogpu/g3d"
)

// RenderStateDescriptor is a complete snapshot of the fixed-function
// pipeline state: blending, depth, stencil, rasterizer, scissor, viewport
// and clear values.
//
// It is plain data. Every field is always populated, no field's validity
// depends on another, and the struct is comparable with == and copied by
// value. Start from DefaultDescriptor and change what differs.
type RenderStateDescriptor struct {
	// Blend state.
	BlendingEnabled bool          `yaml:"blending_enabled"`
	BlendEquation   BlendEquation `yaml:"blend_equation"`
	BlendSrc        BlendFactor   `yaml:"blend_src"`
	BlendDst        BlendFactor   `yaml:"blend_dst"`

	// Depth state. DepthWriteMask enables depth buffer writes.
	DepthTestEnabled bool       `yaml:"depth_test_enabled"`
	DepthFunc        Comparison `yaml:"depth_func"`
	DepthWriteMask   bool       `yaml:"depth_write_mask"`

	// Stencil state. StencilMask is used as both the read and write mask.
	StencilTestEnabled bool             `yaml:"stencil_test_enabled"`
	StencilFunc        Comparison       `yaml:"stencil_func"`
	StencilRef         int32            `yaml:"stencil_ref"`
	StencilMask        uint32           `yaml:"stencil_mask"`
	StencilFail        StencilOperation `yaml:"stencil_fail"`
	StencilZFail       StencilOperation `yaml:"stencil_z_fail"`
	StencilZPass       StencilOperation `yaml:"stencil_z_pass"`

	// Rasterizer state.
	CullFace        CullFace    `yaml:"cull_face"`
	FrontFace       FaceWinding `yaml:"front_face"`
	PolygonMode     PolygonMode `yaml:"polygon_mode"`
	AlphaToCoverage bool        `yaml:"alpha_to_coverage"`
	Dither          bool        `yaml:"dither"`

	// Scissor state.
	ScissorTest   bool   `yaml:"scissor_test"`
	ScissorX      int32  `yaml:"scissor_x"`
	ScissorY      int32  `yaml:"scissor_y"`
	ScissorWidth  uint32 `yaml:"scissor_width"`
	ScissorHeight uint32 `yaml:"scissor_height"`

	// Viewport.
	ViewportX      int32  `yaml:"viewport_x"`
	ViewportY      int32  `yaml:"viewport_y"`
	ViewportWidth  uint32 `yaml:"viewport_width"`
	ViewportHeight uint32 `yaml:"viewport_height"`

	// Clear values.
	ClearColorR  float64   `yaml:"clear_color_r"`
	ClearColorG  float64   `yaml:"clear_color_g"`
	ClearColorB  float64   `yaml:"clear_color_b"`
	ClearColorA  float64   `yaml:"clear_color_a"`
	ClearDepth   float64   `yaml:"clear_depth"`
	ClearStencil int32     `yaml:"clear_stencil"`
	ClearMask    ClearMask `yaml:"clear_mask"`
}

// DefaultDescriptor returns the GL initial state: blending off with
// Add/One/Zero, depth test off with Less and writes on, stencil off with
// Always, reference 0, mask 0xFF and Keep for every operation, no culling,
// counter-clockwise front faces, filled polygons, alpha-to-coverage and
// dither off, scissor off, empty scissor and viewport rectangles, clear
// color opaque black, clear depth 1, clear stencil 0 and an empty clear
// mask.
func DefaultDescriptor() RenderStateDescriptor {
	return RenderStateDescriptor{
		BlendingEnabled: false,
		BlendEquation:   BlendEquationAdd,
		BlendSrc:        BlendFactorOne,
		BlendDst:        BlendFactorZero,

		DepthTestEnabled: false,
		DepthFunc:        ComparisonLess,
		DepthWriteMask:   true,

		StencilTestEnabled: false,
		StencilFunc:        ComparisonAlways,
		StencilRef:         0,
		StencilMask:        0xFF,
		StencilFail:        StencilOperationKeep,
		StencilZFail:       StencilOperationKeep,
		StencilZPass:       StencilOperationKeep,

		CullFace:        CullFaceNone,
		FrontFace:       FaceWindingCounterClockwise,
		PolygonMode:     PolygonModeFill,
		AlphaToCoverage: false,
		Dither:          false,

		ScissorTest: false,

		ClearColorA:  1,
		ClearDepth:   1,
		ClearStencil: 0,
		ClearMask:    0,
	}
}

// ClearColor returns the clear color.
func (d RenderStateDescriptor) ClearColor() g3d.Srgba {
	return g3d.NewSrgba(d.ClearColorR, d.ClearColorG, d.ClearColorB, d.ClearColorA)
}

// SetClearColor sets the four clear color fields.
func (d *RenderStateDescriptor) SetClearColor(c g3d.Srgba) {
	d.ClearColorR, d.ClearColorG, d.ClearColorB, d.ClearColorA = c.R, c.G, c.B, c.A
}

// Viewport returns the viewport rectangle.
func (d RenderStateDescriptor) Viewport() Viewport {
	return Viewport{X: d.ViewportX, Y: d.ViewportY, Width: d.ViewportWidth, Height: d.ViewportHeight}
}

// SetViewport sets the viewport rectangle.
func (d *RenderStateDescriptor) SetViewport(v Viewport) {
	d.ViewportX, d.ViewportY, d.ViewportWidth, d.ViewportHeight = v.X, v.Y, v.Width, v.Height
}

// Scissor returns the scissor rectangle, regardless of ScissorTest.
func (d RenderStateDescriptor) Scissor() ScissorBox {
	return ScissorBox{X: d.ScissorX, Y: d.ScissorY, Width: d.ScissorWidth, Height: d.ScissorHeight}
}

// SetScissor sets the scissor rectangle. It does not touch ScissorTest.
func (d *RenderStateDescriptor) SetScissor(s ScissorBox) {
	d.ScissorX, d.ScissorY, d.ScissorWidth, d.ScissorHeight = s.X, s.Y, s.Width, s.Height
}

// ClearState groups the values used by a clear operation.
type ClearState struct {
	Color   g3d.Srgba
	Depth   float64
	Stencil int32
	Mask    ClearMask
}

// ClearState returns the clear values of d.
func (d RenderStateDescriptor) ClearState() ClearState {
	return ClearState{Color: d.ClearColor(), Depth: d.ClearDepth, Stencil: d.ClearStencil, Mask: d.ClearMask}
}

// SetClearState copies every clear value of c into d.
func (d *RenderStateDescriptor) SetClearState(c ClearState) {
	d.SetClearColor(c.Color)
	d.ClearDepth = c.Depth
	d.ClearStencil = c.Stencil
	d.ClearMask = c.Mask
}

// LogValue implements slog.LogValuer. Enum fields are logged as their
// numeric codes, the form the engine consumes.
func (d RenderStateDescriptor) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Group("blend",
			slog.Bool("enabled", d.BlendingEnabled),
			slog.Any("equation", d.BlendEquation.Code()),
			slog.Any("src", d.BlendSrc.Code()),
			slog.Any("dst", d.BlendDst.Code()),
		),
		slog.Group("depth",
			slog.Bool("enabled", d.DepthTestEnabled),
			slog.Any("func", d.DepthFunc.Code()),
			slog.Bool("write", d.DepthWriteMask),
		),
		slog.Group("stencil",
			slog.Bool("enabled", d.StencilTestEnabled),
			slog.Any("func", d.StencilFunc.Code()),
			slog.Int("ref", int(d.StencilRef)),
			slog.Any("mask", d.StencilMask),
			slog.Any("fail", d.StencilFail.Code()),
			slog.Any("zfail", d.StencilZFail.Code()),
			slog.Any("zpass", d.StencilZPass.Code()),
		),
		slog.Group("raster",
			slog.Any("cull", d.CullFace.Code()),
			slog.Any("front", d.FrontFace.Code()),
			slog.Any("polygon", d.PolygonMode.Code()),
			slog.Bool("alpha_to_coverage", d.AlphaToCoverage),
			slog.Bool("dither", d.Dither),
		),
		slog.Group("scissor",
			slog.Bool("enabled", d.ScissorTest),
			slog.String("rect", d.Scissor().String()),
		),
		slog.String("viewport", d.Viewport().String()),
		slog.Group("clear",
			slog.Any("color", [4]float64{d.ClearColorR, d.ClearColorG, d.ClearColorB, d.ClearColorA}),
			slog.Float64("depth", d.ClearDepth),
			slog.Int("stencil", int(d.ClearStencil)),
			slog.Any("mask", d.ClearMask.Code()),
		),
	)
}
