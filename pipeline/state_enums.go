package pipeline

import "gopkg.in/yaml.v3"

// Comparison is a depth or stencil comparison function.
type Comparison uint32

const (
	ComparisonNever        Comparison = 0x0200 // GL_NEVER
	ComparisonLess         Comparison = 0x0201 // GL_LESS
	ComparisonEqual        Comparison = 0x0202 // GL_EQUAL
	ComparisonLessEqual    Comparison = 0x0203 // GL_LEQUAL
	ComparisonGreater      Comparison = 0x0204 // GL_GREATER
	ComparisonNotEqual     Comparison = 0x0205 // GL_NOTEQUAL
	ComparisonGreaterEqual Comparison = 0x0206 // GL_GEQUAL
	ComparisonAlways       Comparison = 0x0207 // GL_ALWAYS
)

var comparisonTable = newEnumTable("comparison", map[Comparison]string{
	ComparisonNever:        "Never",
	ComparisonLess:         "Less",
	ComparisonEqual:        "Equal",
	ComparisonLessEqual:    "LessEqual",
	ComparisonGreater:      "Greater",
	ComparisonNotEqual:     "NotEqual",
	ComparisonGreaterEqual: "GreaterEqual",
	ComparisonAlways:       "Always",
}, map[string]Comparison{
	"LEQUAL":         ComparisonLessEqual,
	"LessOrEqual":    ComparisonLessEqual,
	"GEQUAL":         ComparisonGreaterEqual,
	"GreaterOrEqual": ComparisonGreaterEqual,
})

// Code returns the native GL constant.
func (v Comparison) Code() uint32 { return uint32(v) }

func (v Comparison) String() string { return comparisonTable.name(v) }

// Valid reports whether v is a member of the enum.
func (v Comparison) Valid() bool { return comparisonTable.valid(v) }

// MarshalYAML writes the numeric code, annotated with the name.
func (v Comparison) MarshalYAML() (interface{}, error) { return comparisonTable.node(v), nil }

// UnmarshalYAML accepts a numeric code or a name.
func (v *Comparison) UnmarshalYAML(n *yaml.Node) error { return comparisonTable.decode(n, v) }

// ComparisonFromCode converts a GL constant. Codes outside the enum fail with
// ErrUnknownCode.
func ComparisonFromCode(code uint32) (Comparison, error) { return comparisonTable.fromCode(code) }

// ParseComparison parses a name, a GL alias or a numeric code.
func ParseComparison(s string) (Comparison, error) { return comparisonTable.parse(s) }

// BlendEquation combines the weighted source and destination colors.
type BlendEquation uint32

const (
	BlendEquationAdd             BlendEquation = 0x8006 // GL_FUNC_ADD
	BlendEquationSubtract        BlendEquation = 0x800A // GL_FUNC_SUBTRACT
	BlendEquationReverseSubtract BlendEquation = 0x800B // GL_FUNC_REVERSE_SUBTRACT
	BlendEquationMin             BlendEquation = 0x8007 // GL_MIN
	BlendEquationMax             BlendEquation = 0x8008 // GL_MAX
)

var blendEquationTable = newEnumTable("blend equation", map[BlendEquation]string{
	BlendEquationAdd:             "Add",
	BlendEquationSubtract:        "Subtract",
	BlendEquationReverseSubtract: "ReverseSubtract",
	BlendEquationMin:             "Min",
	BlendEquationMax:             "Max",
}, map[string]BlendEquation{
	"FUNC_ADD":              BlendEquationAdd,
	"FUNC_SUBTRACT":         BlendEquationSubtract,
	"FUNC_REVERSE_SUBTRACT": BlendEquationReverseSubtract,
})

func (v BlendEquation) Code() uint32                      { return uint32(v) }
func (v BlendEquation) String() string                    { return blendEquationTable.name(v) }
func (v BlendEquation) Valid() bool                       { return blendEquationTable.valid(v) }
func (v BlendEquation) MarshalYAML() (interface{}, error) { return blendEquationTable.node(v), nil }
func (v *BlendEquation) UnmarshalYAML(n *yaml.Node) error { return blendEquationTable.decode(n, v) }

// BlendEquationFromCode converts a GL constant.
func BlendEquationFromCode(code uint32) (BlendEquation, error) { return blendEquationTable.fromCode(code) }

// ParseBlendEquation parses a name, a GL alias or a numeric code.
func ParseBlendEquation(s string) (BlendEquation, error) { return blendEquationTable.parse(s) }

// BlendFactor is the weight applied to a blend input. Its codes are the
// GL values. Older hosts that sent 0x0308/0x0309 for Src1Color and
// OneMinusSrc1Color, or 0x881A/0x881B for the Src1Alpha pair, are not
// remapped: 0x0308 decodes as SrcAlphaSaturate and the others are unknown
// codes.
type BlendFactor uint32

const (
	BlendFactorZero                  BlendFactor = 0x0000 // GL_ZERO
	BlendFactorOne                   BlendFactor = 0x0001 // GL_ONE
	BlendFactorSrcColor              BlendFactor = 0x0300 // GL_SRC_COLOR
	BlendFactorOneMinusSrcColor      BlendFactor = 0x0301 // GL_ONE_MINUS_SRC_COLOR
	BlendFactorSrcAlpha              BlendFactor = 0x0302 // GL_SRC_ALPHA
	BlendFactorOneMinusSrcAlpha      BlendFactor = 0x0303 // GL_ONE_MINUS_SRC_ALPHA
	BlendFactorDstAlpha              BlendFactor = 0x0304 // GL_DST_ALPHA
	BlendFactorOneMinusDstAlpha      BlendFactor = 0x0305 // GL_ONE_MINUS_DST_ALPHA
	BlendFactorDstColor              BlendFactor = 0x0306 // GL_DST_COLOR
	BlendFactorOneMinusDstColor      BlendFactor = 0x0307 // GL_ONE_MINUS_DST_COLOR
	BlendFactorSrcAlphaSaturate      BlendFactor = 0x0308 // GL_SRC_ALPHA_SATURATE
	BlendFactorConstantColor         BlendFactor = 0x8001 // GL_CONSTANT_COLOR
	BlendFactorOneMinusConstantColor BlendFactor = 0x8002 // GL_ONE_MINUS_CONSTANT_COLOR
	BlendFactorConstantAlpha         BlendFactor = 0x8003 // GL_CONSTANT_ALPHA
	BlendFactorOneMinusConstantAlpha BlendFactor = 0x8004 // GL_ONE_MINUS_CONSTANT_ALPHA
	BlendFactorSrc1Alpha             BlendFactor = 0x8589 // GL_SRC1_ALPHA
	BlendFactorSrc1Color             BlendFactor = 0x88F9 // GL_SRC1_COLOR
	BlendFactorOneMinusSrc1Color     BlendFactor = 0x88FA // GL_ONE_MINUS_SRC1_COLOR
	BlendFactorOneMinusSrc1Alpha     BlendFactor = 0x88FB // GL_ONE_MINUS_SRC1_ALPHA
)

var blendFactorTable = newEnumTable("blend factor", map[BlendFactor]string{
	BlendFactorZero:                  "Zero",
	BlendFactorOne:                   "One",
	BlendFactorSrcColor:              "SrcColor",
	BlendFactorOneMinusSrcColor:      "OneMinusSrcColor",
	BlendFactorSrcAlpha:              "SrcAlpha",
	BlendFactorOneMinusSrcAlpha:      "OneMinusSrcAlpha",
	BlendFactorDstAlpha:              "DstAlpha",
	BlendFactorOneMinusDstAlpha:      "OneMinusDstAlpha",
	BlendFactorDstColor:              "DstColor",
	BlendFactorOneMinusDstColor:      "OneMinusDstColor",
	BlendFactorSrcAlphaSaturate:      "SrcAlphaSaturate",
	BlendFactorConstantColor:         "ConstantColor",
	BlendFactorOneMinusConstantColor: "OneMinusConstantColor",
	BlendFactorConstantAlpha:         "ConstantAlpha",
	BlendFactorOneMinusConstantAlpha: "OneMinusConstantAlpha",
	BlendFactorSrc1Alpha:             "Src1Alpha",
	BlendFactorSrc1Color:             "Src1Color",
	BlendFactorOneMinusSrc1Color:     "OneMinusSrc1Color",
	BlendFactorOneMinusSrc1Alpha:     "OneMinusSrc1Alpha",
}, nil)

func (v BlendFactor) Code() uint32                      { return uint32(v) }
func (v BlendFactor) String() string                    { return blendFactorTable.name(v) }
func (v BlendFactor) Valid() bool                       { return blendFactorTable.valid(v) }
func (v BlendFactor) MarshalYAML() (interface{}, error) { return blendFactorTable.node(v), nil }
func (v *BlendFactor) UnmarshalYAML(n *yaml.Node) error { return blendFactorTable.decode(n, v) }

// BlendFactorFromCode converts a GL constant.
func BlendFactorFromCode(code uint32) (BlendFactor, error) { return blendFactorTable.fromCode(code) }

// ParseBlendFactor parses a name, a GL alias or a numeric code.
func ParseBlendFactor(s string) (BlendFactor, error) { return blendFactorTable.parse(s) }

// CullFace selects which polygon faces are discarded. CullFaceNone
// disables culling; it has no GL constant of its own.
type CullFace uint32

const (
	CullFaceNone         CullFace = 0x0000 // culling disabled
	CullFaceFront        CullFace = 0x0404 // GL_FRONT
	CullFaceBack         CullFace = 0x0405 // GL_BACK
	CullFaceFrontAndBack CullFace = 0x0408 // GL_FRONT_AND_BACK
)

var cullFaceTable = newEnumTable("cull face", map[CullFace]string{
	CullFaceNone:         "None",
	CullFaceFront:        "Front",
	CullFaceBack:         "Back",
	CullFaceFrontAndBack: "FrontAndBack",
}, nil)

func (v CullFace) Code() uint32                      { return uint32(v) }
func (v CullFace) String() string                    { return cullFaceTable.name(v) }
func (v CullFace) Valid() bool                       { return cullFaceTable.valid(v) }
func (v CullFace) MarshalYAML() (interface{}, error) { return cullFaceTable.node(v), nil }
func (v *CullFace) UnmarshalYAML(n *yaml.Node) error { return cullFaceTable.decode(n, v) }

// CullFaceFromCode converts a GL constant.
func CullFaceFromCode(code uint32) (CullFace, error) { return cullFaceTable.fromCode(code) }

// ParseCullFace parses a name, a GL alias or a numeric code.
func ParseCullFace(s string) (CullFace, error) { return cullFaceTable.parse(s) }

// FaceWinding is the vertex order that marks a polygon as front-facing.
type FaceWinding uint32

const (
	FaceWindingClockwise        FaceWinding = 0x0900 // GL_CW
	FaceWindingCounterClockwise FaceWinding = 0x0901 // GL_CCW
)

var faceWindingTable = newEnumTable("face winding", map[FaceWinding]string{
	FaceWindingClockwise:        "Clockwise",
	FaceWindingCounterClockwise: "CounterClockwise",
}, map[string]FaceWinding{
	"CW":  FaceWindingClockwise,
	"CCW": FaceWindingCounterClockwise,
})

func (v FaceWinding) Code() uint32                      { return uint32(v) }
func (v FaceWinding) String() string                    { return faceWindingTable.name(v) }
func (v FaceWinding) Valid() bool                       { return faceWindingTable.valid(v) }
func (v FaceWinding) MarshalYAML() (interface{}, error) { return faceWindingTable.node(v), nil }
func (v *FaceWinding) UnmarshalYAML(n *yaml.Node) error { return faceWindingTable.decode(n, v) }

// FaceWindingFromCode converts a GL constant.
func FaceWindingFromCode(code uint32) (FaceWinding, error) { return faceWindingTable.fromCode(code) }

// ParseFaceWinding parses a name, a GL alias or a numeric code.
func ParseFaceWinding(s string) (FaceWinding, error) { return faceWindingTable.parse(s) }

// StencilOperation updates the stencil buffer after a test.
type StencilOperation uint32

const (
	StencilOperationZero          StencilOperation = 0x0000 // GL_ZERO
	StencilOperationKeep          StencilOperation = 0x1E00 // GL_KEEP
	StencilOperationReplace       StencilOperation = 0x1E01 // GL_REPLACE
	StencilOperationIncrement     StencilOperation = 0x1E02 // GL_INCR
	StencilOperationDecrement     StencilOperation = 0x1E03 // GL_DECR
	StencilOperationInvert        StencilOperation = 0x150A // GL_INVERT
	StencilOperationIncrementWrap StencilOperation = 0x8507 // GL_INCR_WRAP
	StencilOperationDecrementWrap StencilOperation = 0x8508 // GL_DECR_WRAP
)

var stencilOperationTable = newEnumTable("stencil operation", map[StencilOperation]string{
	StencilOperationZero:          "Zero",
	StencilOperationKeep:          "Keep",
	StencilOperationReplace:       "Replace",
	StencilOperationIncrement:     "Increment",
	StencilOperationDecrement:     "Decrement",
	StencilOperationInvert:        "Invert",
	StencilOperationIncrementWrap: "IncrementWrap",
	StencilOperationDecrementWrap: "DecrementWrap",
}, map[string]StencilOperation{
	"INCR":      StencilOperationIncrement,
	"DECR":      StencilOperationDecrement,
	"INCR_WRAP": StencilOperationIncrementWrap,
	"DECR_WRAP": StencilOperationDecrementWrap,
})

func (v StencilOperation) Code() uint32                      { return uint32(v) }
func (v StencilOperation) String() string                    { return stencilOperationTable.name(v) }
func (v StencilOperation) Valid() bool                       { return stencilOperationTable.valid(v) }
func (v StencilOperation) MarshalYAML() (interface{}, error) { return stencilOperationTable.node(v), nil }
func (v *StencilOperation) UnmarshalYAML(n *yaml.Node) error { return stencilOperationTable.decode(n, v) }

// StencilOperationFromCode converts a GL constant.
func StencilOperationFromCode(code uint32) (StencilOperation, error) { return stencilOperationTable.fromCode(code) }

// ParseStencilOperation parses a name, a GL alias or a numeric code.
func ParseStencilOperation(s string) (StencilOperation, error) { return stencilOperationTable.parse(s) }

// PolygonMode controls how polygons are rasterized.
type PolygonMode uint32

const (
	PolygonModePoint PolygonMode = 0x1B00 // GL_POINT
	PolygonModeLine  PolygonMode = 0x1B01 // GL_LINE
	PolygonModeFill  PolygonMode = 0x1B02 // GL_FILL
)

var polygonModeTable = newEnumTable("polygon mode", map[PolygonMode]string{
	PolygonModePoint: "Point",
	PolygonModeLine:  "Line",
	PolygonModeFill:  "Fill",
}, nil)

func (v PolygonMode) Code() uint32                      { return uint32(v) }
func (v PolygonMode) String() string                    { return polygonModeTable.name(v) }
func (v PolygonMode) Valid() bool                       { return polygonModeTable.valid(v) }
func (v PolygonMode) MarshalYAML() (interface{}, error) { return polygonModeTable.node(v), nil }
func (v *PolygonMode) UnmarshalYAML(n *yaml.Node) error { return polygonModeTable.decode(n, v) }

// PolygonModeFromCode converts a GL constant.
func PolygonModeFromCode(code uint32) (PolygonMode, error) { return polygonModeTable.fromCode(code) }

// ParsePolygonMode parses a name, a GL alias or a numeric code.
func ParsePolygonMode(s string) (PolygonMode, error) { return polygonModeTable.parse(s) }
