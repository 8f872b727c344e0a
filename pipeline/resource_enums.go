package pipeline

import "gopkg.in/yaml.v3"

// TextureMinFilter is the minification filter, optionally with mipmapping.
type TextureMinFilter uint32

const (
	TextureMinFilterNearest              TextureMinFilter = 0x2600 // GL_NEAREST
	TextureMinFilterLinear               TextureMinFilter = 0x2601 // GL_LINEAR
	TextureMinFilterNearestMipmapNearest TextureMinFilter = 0x2700 // GL_NEAREST_MIPMAP_NEAREST
	TextureMinFilterLinearMipmapNearest  TextureMinFilter = 0x2701 // GL_LINEAR_MIPMAP_NEAREST
	TextureMinFilterNearestMipmapLinear  TextureMinFilter = 0x2702 // GL_NEAREST_MIPMAP_LINEAR
	TextureMinFilterLinearMipmapLinear   TextureMinFilter = 0x2703 // GL_LINEAR_MIPMAP_LINEAR
)

var textureMinFilterTable = newEnumTable("texture min filter", map[TextureMinFilter]string{
	TextureMinFilterNearest:              "Nearest",
	TextureMinFilterLinear:               "Linear",
	TextureMinFilterNearestMipmapNearest: "NearestMipmapNearest",
	TextureMinFilterLinearMipmapNearest:  "LinearMipmapNearest",
	TextureMinFilterNearestMipmapLinear:  "NearestMipmapLinear",
	TextureMinFilterLinearMipmapLinear:   "LinearMipmapLinear",
}, nil)

// Code returns the native GL constant.
func (v TextureMinFilter) Code() uint32 { return uint32(v) }

func (v TextureMinFilter) String() string { return textureMinFilterTable.name(v) }

// Valid reports whether v is a member of the enum.
func (v TextureMinFilter) Valid() bool { return textureMinFilterTable.valid(v) }

// MarshalYAML writes the numeric code, annotated with the name.
func (v TextureMinFilter) MarshalYAML() (interface{}, error) { return textureMinFilterTable.node(v), nil }

// UnmarshalYAML accepts a numeric code or a name.
func (v *TextureMinFilter) UnmarshalYAML(n *yaml.Node) error { return textureMinFilterTable.decode(n, v) }

// TextureMinFilterFromCode converts a GL constant. Codes outside the enum fail with
// ErrUnknownCode.
func TextureMinFilterFromCode(code uint32) (TextureMinFilter, error) { return textureMinFilterTable.fromCode(code) }

// ParseTextureMinFilter parses a name, a GL alias or a numeric code.
func ParseTextureMinFilter(s string) (TextureMinFilter, error) { return textureMinFilterTable.parse(s) }

// TextureMagFilter is the magnification filter.
type TextureMagFilter uint32

const (
	TextureMagFilterNearest TextureMagFilter = 0x2600 // GL_NEAREST
	TextureMagFilterLinear  TextureMagFilter = 0x2601 // GL_LINEAR
)

var textureMagFilterTable = newEnumTable("texture mag filter", map[TextureMagFilter]string{
	TextureMagFilterNearest: "Nearest",
	TextureMagFilterLinear:  "Linear",
}, nil)

func (v TextureMagFilter) Code() uint32                      { return uint32(v) }
func (v TextureMagFilter) String() string                    { return textureMagFilterTable.name(v) }
func (v TextureMagFilter) Valid() bool                       { return textureMagFilterTable.valid(v) }
func (v TextureMagFilter) MarshalYAML() (interface{}, error) { return textureMagFilterTable.node(v), nil }
func (v *TextureMagFilter) UnmarshalYAML(n *yaml.Node) error { return textureMagFilterTable.decode(n, v) }

// TextureMagFilterFromCode converts a GL constant.
func TextureMagFilterFromCode(code uint32) (TextureMagFilter, error) { return textureMagFilterTable.fromCode(code) }

// ParseTextureMagFilter parses a name, a GL alias or a numeric code.
func ParseTextureMagFilter(s string) (TextureMagFilter, error) { return textureMagFilterTable.parse(s) }

// TextureWrap is the addressing mode outside [0, 1].
type TextureWrap uint32

const (
	TextureWrapRepeat         TextureWrap = 0x2901 // GL_REPEAT
	TextureWrapClampToBorder  TextureWrap = 0x812D // GL_CLAMP_TO_BORDER
	TextureWrapClampToEdge    TextureWrap = 0x812F // GL_CLAMP_TO_EDGE
	TextureWrapMirroredRepeat TextureWrap = 0x8370 // GL_MIRRORED_REPEAT
)

var textureWrapTable = newEnumTable("texture wrap", map[TextureWrap]string{
	TextureWrapRepeat:         "Repeat",
	TextureWrapClampToBorder:  "ClampToBorder",
	TextureWrapClampToEdge:    "ClampToEdge",
	TextureWrapMirroredRepeat: "MirroredRepeat",
}, nil)

func (v TextureWrap) Code() uint32                      { return uint32(v) }
func (v TextureWrap) String() string                    { return textureWrapTable.name(v) }
func (v TextureWrap) Valid() bool                       { return textureWrapTable.valid(v) }
func (v TextureWrap) MarshalYAML() (interface{}, error) { return textureWrapTable.node(v), nil }
func (v *TextureWrap) UnmarshalYAML(n *yaml.Node) error { return textureWrapTable.decode(n, v) }

// TextureWrapFromCode converts a GL constant.
func TextureWrapFromCode(code uint32) (TextureWrap, error) { return textureWrapTable.fromCode(code) }

// ParseTextureWrap parses a name, a GL alias or a numeric code.
func ParseTextureWrap(s string) (TextureWrap, error) { return textureWrapTable.parse(s) }

// BufferUsage is the access-frequency hint given when a buffer is created.
type BufferUsage uint32

const (
	BufferUsageStreamDraw  BufferUsage = 0x88E0 // GL_STREAM_DRAW
	BufferUsageStreamRead  BufferUsage = 0x88E1 // GL_STREAM_READ
	BufferUsageStreamCopy  BufferUsage = 0x88E2 // GL_STREAM_COPY
	BufferUsageStaticDraw  BufferUsage = 0x88E4 // GL_STATIC_DRAW
	BufferUsageStaticRead  BufferUsage = 0x88E5 // GL_STATIC_READ
	BufferUsageStaticCopy  BufferUsage = 0x88E6 // GL_STATIC_COPY
	BufferUsageDynamicDraw BufferUsage = 0x88E8 // GL_DYNAMIC_DRAW
	BufferUsageDynamicRead BufferUsage = 0x88E9 // GL_DYNAMIC_READ
	BufferUsageDynamicCopy BufferUsage = 0x88EA // GL_DYNAMIC_COPY
)

var bufferUsageTable = newEnumTable("buffer usage", map[BufferUsage]string{
	BufferUsageStreamDraw:  "StreamDraw",
	BufferUsageStreamRead:  "StreamRead",
	BufferUsageStreamCopy:  "StreamCopy",
	BufferUsageStaticDraw:  "StaticDraw",
	BufferUsageStaticRead:  "StaticRead",
	BufferUsageStaticCopy:  "StaticCopy",
	BufferUsageDynamicDraw: "DynamicDraw",
	BufferUsageDynamicRead: "DynamicRead",
	BufferUsageDynamicCopy: "DynamicCopy",
}, nil)

func (v BufferUsage) Code() uint32                      { return uint32(v) }
func (v BufferUsage) String() string                    { return bufferUsageTable.name(v) }
func (v BufferUsage) Valid() bool                       { return bufferUsageTable.valid(v) }
func (v BufferUsage) MarshalYAML() (interface{}, error) { return bufferUsageTable.node(v), nil }
func (v *BufferUsage) UnmarshalYAML(n *yaml.Node) error { return bufferUsageTable.decode(n, v) }

// BufferUsageFromCode converts a GL constant.
func BufferUsageFromCode(code uint32) (BufferUsage, error) { return bufferUsageTable.fromCode(code) }

// ParseBufferUsage parses a name, a GL alias or a numeric code.
func ParseBufferUsage(s string) (BufferUsage, error) { return bufferUsageTable.parse(s) }

// PrimitiveType is how a vertex stream is assembled into primitives.
type PrimitiveType uint32

const (
	PrimitiveTypePoints                 PrimitiveType = 0x0000 // GL_POINTS
	PrimitiveTypeLines                  PrimitiveType = 0x0001 // GL_LINES
	PrimitiveTypeLineLoop               PrimitiveType = 0x0002 // GL_LINE_LOOP
	PrimitiveTypeLineStrip              PrimitiveType = 0x0003 // GL_LINE_STRIP
	PrimitiveTypeTriangles              PrimitiveType = 0x0004 // GL_TRIANGLES
	PrimitiveTypeTriangleStrip          PrimitiveType = 0x0005 // GL_TRIANGLE_STRIP
	PrimitiveTypeTriangleFan            PrimitiveType = 0x0006 // GL_TRIANGLE_FAN
	PrimitiveTypeLinesAdjacency         PrimitiveType = 0x000A // GL_LINES_ADJACENCY
	PrimitiveTypeLineStripAdjacency     PrimitiveType = 0x000B // GL_LINE_STRIP_ADJACENCY
	PrimitiveTypeTrianglesAdjacency     PrimitiveType = 0x000C // GL_TRIANGLES_ADJACENCY
	PrimitiveTypeTriangleStripAdjacency PrimitiveType = 0x000D // GL_TRIANGLE_STRIP_ADJACENCY
	PrimitiveTypePatches                PrimitiveType = 0x000E // GL_PATCHES
)

var primitiveTypeTable = newEnumTable("primitive type", map[PrimitiveType]string{
	PrimitiveTypePoints:                 "Points",
	PrimitiveTypeLines:                  "Lines",
	PrimitiveTypeLineLoop:               "LineLoop",
	PrimitiveTypeLineStrip:              "LineStrip",
	PrimitiveTypeTriangles:              "Triangles",
	PrimitiveTypeTriangleStrip:          "TriangleStrip",
	PrimitiveTypeTriangleFan:            "TriangleFan",
	PrimitiveTypeLinesAdjacency:         "LinesAdjacency",
	PrimitiveTypeLineStripAdjacency:     "LineStripAdjacency",
	PrimitiveTypeTrianglesAdjacency:     "TrianglesAdjacency",
	PrimitiveTypeTriangleStripAdjacency: "TriangleStripAdjacency",
	PrimitiveTypePatches:                "Patches",
}, nil)

func (v PrimitiveType) Code() uint32                      { return uint32(v) }
func (v PrimitiveType) String() string                    { return primitiveTypeTable.name(v) }
func (v PrimitiveType) Valid() bool                       { return primitiveTypeTable.valid(v) }
func (v PrimitiveType) MarshalYAML() (interface{}, error) { return primitiveTypeTable.node(v), nil }
func (v *PrimitiveType) UnmarshalYAML(n *yaml.Node) error { return primitiveTypeTable.decode(n, v) }

// PrimitiveTypeFromCode converts a GL constant.
func PrimitiveTypeFromCode(code uint32) (PrimitiveType, error) { return primitiveTypeTable.fromCode(code) }

// ParsePrimitiveType parses a name, a GL alias or a numeric code.
func ParsePrimitiveType(s string) (PrimitiveType, error) { return primitiveTypeTable.parse(s) }

// ShaderType is a programmable pipeline stage.
type ShaderType uint32

const (
	ShaderTypeFragment               ShaderType = 0x8B30 // GL_FRAGMENT_SHADER
	ShaderTypeVertex                 ShaderType = 0x8B31 // GL_VERTEX_SHADER
	ShaderTypeGeometry               ShaderType = 0x8DD9 // GL_GEOMETRY_SHADER
	ShaderTypeTessellationEvaluation ShaderType = 0x8E87 // GL_TESS_EVALUATION_SHADER
	ShaderTypeTessellationControl    ShaderType = 0x8E88 // GL_TESS_CONTROL_SHADER
	ShaderTypeCompute                ShaderType = 0x91B9 // GL_COMPUTE_SHADER
)

var shaderTypeTable = newEnumTable("shader type", map[ShaderType]string{
	ShaderTypeFragment:               "Fragment",
	ShaderTypeVertex:                 "Vertex",
	ShaderTypeGeometry:               "Geometry",
	ShaderTypeTessellationEvaluation: "TessellationEvaluation",
	ShaderTypeTessellationControl:    "TessellationControl",
	ShaderTypeCompute:                "Compute",
}, map[string]ShaderType{
	"FRAGMENT_SHADER":        ShaderTypeFragment,
	"VERTEX_SHADER":          ShaderTypeVertex,
	"GEOMETRY_SHADER":        ShaderTypeGeometry,
	"COMPUTE_SHADER":         ShaderTypeCompute,
	"TESS_CONTROL_SHADER":    ShaderTypeTessellationControl,
	"TESS_EVALUATION_SHADER": ShaderTypeTessellationEvaluation,
})

func (v ShaderType) Code() uint32                      { return uint32(v) }
func (v ShaderType) String() string                    { return shaderTypeTable.name(v) }
func (v ShaderType) Valid() bool                       { return shaderTypeTable.valid(v) }
func (v ShaderType) MarshalYAML() (interface{}, error) { return shaderTypeTable.node(v), nil }
func (v *ShaderType) UnmarshalYAML(n *yaml.Node) error { return shaderTypeTable.decode(n, v) }

// ShaderTypeFromCode converts a GL constant.
func ShaderTypeFromCode(code uint32) (ShaderType, error) { return shaderTypeTable.fromCode(code) }

// ParseShaderType parses a name, a GL alias or a numeric code.
func ParseShaderType(s string) (ShaderType, error) { return shaderTypeTable.parse(s) }

// DataType is the component type of vertex attributes and pixel data.
type DataType uint32

const (
	DataTypeByte          DataType = 0x1400 // GL_BYTE
	DataTypeUnsignedByte  DataType = 0x1401 // GL_UNSIGNED_BYTE
	DataTypeShort         DataType = 0x1402 // GL_SHORT
	DataTypeUnsignedShort DataType = 0x1403 // GL_UNSIGNED_SHORT
	DataTypeInt           DataType = 0x1404 // GL_INT
	DataTypeUnsignedInt   DataType = 0x1405 // GL_UNSIGNED_INT
	DataTypeFloat         DataType = 0x1406 // GL_FLOAT
	DataTypeDouble        DataType = 0x140A // GL_DOUBLE
	DataTypeHalfFloat     DataType = 0x140B // GL_HALF_FLOAT
)

var dataTypeTable = newEnumTable("data type", map[DataType]string{
	DataTypeByte:          "Byte",
	DataTypeUnsignedByte:  "UnsignedByte",
	DataTypeShort:         "Short",
	DataTypeUnsignedShort: "UnsignedShort",
	DataTypeInt:           "Int",
	DataTypeUnsignedInt:   "UnsignedInt",
	DataTypeFloat:         "Float",
	DataTypeDouble:        "Double",
	DataTypeHalfFloat:     "HalfFloat",
}, nil)

func (v DataType) Code() uint32                      { return uint32(v) }
func (v DataType) String() string                    { return dataTypeTable.name(v) }
func (v DataType) Valid() bool                       { return dataTypeTable.valid(v) }
func (v DataType) MarshalYAML() (interface{}, error) { return dataTypeTable.node(v), nil }
func (v *DataType) UnmarshalYAML(n *yaml.Node) error { return dataTypeTable.decode(n, v) }

// DataTypeFromCode converts a GL constant.
func DataTypeFromCode(code uint32) (DataType, error) { return dataTypeTable.fromCode(code) }

// ParseDataType parses a name, a GL alias or a numeric code.
func ParseDataType(s string) (DataType, error) { return dataTypeTable.parse(s) }

// CubeMapSide is one face of a cube map texture.
type CubeMapSide uint32

const (
	CubeMapSidePositiveX CubeMapSide = 0x8515 // GL_TEXTURE_CUBE_MAP_POSITIVE_X
	CubeMapSideNegativeX CubeMapSide = 0x8516 // GL_TEXTURE_CUBE_MAP_NEGATIVE_X
	CubeMapSidePositiveY CubeMapSide = 0x8517 // GL_TEXTURE_CUBE_MAP_POSITIVE_Y
	CubeMapSideNegativeY CubeMapSide = 0x8518 // GL_TEXTURE_CUBE_MAP_NEGATIVE_Y
	CubeMapSidePositiveZ CubeMapSide = 0x8519 // GL_TEXTURE_CUBE_MAP_POSITIVE_Z
	CubeMapSideNegativeZ CubeMapSide = 0x851A // GL_TEXTURE_CUBE_MAP_NEGATIVE_Z
)

var cubeMapSideTable = newEnumTable("cube map side", map[CubeMapSide]string{
	CubeMapSidePositiveX: "PositiveX",
	CubeMapSideNegativeX: "NegativeX",
	CubeMapSidePositiveY: "PositiveY",
	CubeMapSideNegativeY: "NegativeY",
	CubeMapSidePositiveZ: "PositiveZ",
	CubeMapSideNegativeZ: "NegativeZ",
}, nil)

func (v CubeMapSide) Code() uint32                      { return uint32(v) }
func (v CubeMapSide) String() string                    { return cubeMapSideTable.name(v) }
func (v CubeMapSide) Valid() bool                       { return cubeMapSideTable.valid(v) }
func (v CubeMapSide) MarshalYAML() (interface{}, error) { return cubeMapSideTable.node(v), nil }
func (v *CubeMapSide) UnmarshalYAML(n *yaml.Node) error { return cubeMapSideTable.decode(n, v) }

// CubeMapSideFromCode converts a GL constant.
func CubeMapSideFromCode(code uint32) (CubeMapSide, error) { return cubeMapSideTable.fromCode(code) }

// ParseCubeMapSide parses a name, a GL alias or a numeric code.
func ParseCubeMapSide(s string) (CubeMapSide, error) { return cubeMapSideTable.parse(s) }
