package presentation

import "fmt"

// Cull selects which faces a material hides. It is the material-level
// counterpart of pipeline.CullFace; convert with ToCullFace.
type Cull uint8

const (
	CullNone         Cull = iota
	CullBack
	CullFront
	CullFrontAndBack
)

var cullNames = [...]string{
	CullNone:         "None",
	CullBack:         "Back",
	CullFront:        "Front",
	CullFrontAndBack: "FrontAndBack",
}

// String returns the member name, or "Cull(n)" for values outside the enum.
func (v Cull) String() string {
	if int(v) < len(cullNames) {
		return cullNames[v]
	}
	return fmt.Sprintf("Cull(%d)", uint8(v))
}

// DepthTest is the depth comparison chosen on a material. Convert with
// ToComparison.
type DepthTest uint8

const (
	DepthTestNever          DepthTest = iota
	DepthTestLess
	DepthTestEqual
	DepthTestLessOrEqual
	DepthTestGreater
	DepthTestNotEqual
	DepthTestGreaterOrEqual
	DepthTestAlways
)

var depthTestNames = [...]string{
	DepthTestNever:          "Never",
	DepthTestLess:           "Less",
	DepthTestEqual:          "Equal",
	DepthTestLessOrEqual:    "LessOrEqual",
	DepthTestGreater:        "Greater",
	DepthTestNotEqual:       "NotEqual",
	DepthTestGreaterOrEqual: "GreaterOrEqual",
	DepthTestAlways:         "Always",
}

func (v DepthTest) String() string {
	if int(v) < len(depthTestNames) {
		return depthTestNames[v]
	}
	return fmt.Sprintf("DepthTest(%d)", uint8(v))
}

// Transparency is how a material composites over what is already drawn.
type Transparency uint8

const (
	TransparencyOpaque   Transparency = iota
	TransparencyAlpha    // src*a + dst*(1-a)
	TransparencyAdditive // src + dst
	TransparencyMultiply // src * dst
)

var transparencyNames = [...]string{
	TransparencyOpaque:   "Opaque",
	TransparencyAlpha:    "Alpha",
	TransparencyAdditive: "Additive",
	TransparencyMultiply: "Multiply",
}

func (v Transparency) String() string {
	if int(v) < len(transparencyNames) {
		return transparencyNames[v]
	}
	return fmt.Sprintf("Transparency(%d)", uint8(v))
}

// ClearFlag names a combination of buffers to clear.
type ClearFlag uint8

const (
	ClearFlagColor        ClearFlag = iota
	ClearFlagDepth
	ClearFlagStencil
	ClearFlagColorDepth
	ClearFlagColorStencil
	ClearFlagDepthStencil
	ClearFlagAll
)

var clearFlagNames = [...]string{
	ClearFlagColor:        "Color",
	ClearFlagDepth:        "Depth",
	ClearFlagStencil:      "Stencil",
	ClearFlagColorDepth:   "ColorDepth",
	ClearFlagColorStencil: "ColorStencil",
	ClearFlagDepthStencil: "DepthStencil",
	ClearFlagAll:          "All",
}

func (v ClearFlag) String() string {
	if int(v) < len(clearFlagNames) {
		return clearFlagNames[v]
	}
	return fmt.Sprintf("ClearFlag(%d)", uint8(v))
}

// DrawModeHint is how often geometry data is expected to change.
type DrawModeHint uint8

const (
	DrawModeHintStatic  DrawModeHint = iota
	DrawModeHintDynamic
	DrawModeHintStream
)

var drawModeHintNames = [...]string{
	DrawModeHintStatic:  "Static",
	DrawModeHintDynamic: "Dynamic",
	DrawModeHintStream:  "Stream",
}

func (v DrawModeHint) String() string {
	if int(v) < len(drawModeHintNames) {
		return drawModeHintNames[v]
	}
	return fmt.Sprintf("DrawModeHint(%d)", uint8(v))
}

// FilterMode is the sampling filter of a post-processing effect.
type FilterMode uint8

const (
	FilterModePoint    FilterMode = iota
	FilterModeLinear
	FilterModeGaussian
)

var filterModeNames = [...]string{
	FilterModePoint:    "Point",
	FilterModeLinear:   "Linear",
	FilterModeGaussian: "Gaussian",
}

func (v FilterMode) String() string {
	if int(v) < len(filterModeNames) {
		return filterModeNames[v]
	}
	return fmt.Sprintf("FilterMode(%d)", uint8(v))
}

// GeometryType is how a mesh's vertices form primitives.
type GeometryType uint8

const (
	GeometryTypePoints    GeometryType = iota
	GeometryTypeLines
	GeometryTypeTriangles
	GeometryTypeFan
	GeometryTypeStrip
	GeometryTypeQuads
)

var geometryTypeNames = [...]string{
	GeometryTypePoints:    "Points",
	GeometryTypeLines:     "Lines",
	GeometryTypeTriangles: "Triangles",
	GeometryTypeFan:       "Fan",
	GeometryTypeStrip:     "Strip",
	GeometryTypeQuads:     "Quads",
}

func (v GeometryType) String() string {
	if int(v) < len(geometryTypeNames) {
		return geometryTypeNames[v]
	}
	return fmt.Sprintf("GeometryType(%d)", uint8(v))
}
