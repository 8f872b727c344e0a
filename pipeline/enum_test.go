package pipeline

import (
	"errors"
	"testing"
)

func TestComparisonCodes(t *testing.T) {
	tests := []struct {
		c    Comparison
		code uint32
		name string
	}{
		{ComparisonNever, 0x0200, "Never"},
		{ComparisonLess, 0x0201, "Less"},
		{ComparisonEqual, 0x0202, "Equal"},
		{ComparisonLessEqual, 0x0203, "LessEqual"},
		{ComparisonGreater, 0x0204, "Greater"},
		{ComparisonNotEqual, 0x0205, "NotEqual"},
		{ComparisonGreaterEqual, 0x0206, "GreaterEqual"},
		{ComparisonAlways, 0x0207, "Always"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.c.Code() != tt.code {
				t.Errorf("Code() = %#x, want %#x", tt.c.Code(), tt.code)
			}
			if tt.c.String() != tt.name {
				t.Errorf("String() = %q, want %q", tt.c.String(), tt.name)
			}
			got, err := ComparisonFromCode(tt.code)
			if err != nil || got != tt.c {
				t.Errorf("ComparisonFromCode(%#x) = %v, %v", tt.code, got, err)
			}
		})
	}
}

func TestEnumCodesMatchGL(t *testing.T) {
	tests := []struct {
		name string
		got  uint32
		want uint32
	}{
		{"FUNC_ADD", BlendEquationAdd.Code(), 0x8006},
		{"MIN", BlendEquationMin.Code(), 0x8007},
		{"MAX", BlendEquationMax.Code(), 0x8008},
		{"FUNC_SUBTRACT", BlendEquationSubtract.Code(), 0x800A},
		{"FUNC_REVERSE_SUBTRACT", BlendEquationReverseSubtract.Code(), 0x800B},
		{"ZERO", BlendFactorZero.Code(), 0},
		{"ONE", BlendFactorOne.Code(), 1},
		{"SRC_ALPHA", BlendFactorSrcAlpha.Code(), 0x0302},
		{"ONE_MINUS_SRC_ALPHA", BlendFactorOneMinusSrcAlpha.Code(), 0x0303},
		{"SRC_ALPHA_SATURATE", BlendFactorSrcAlphaSaturate.Code(), 0x0308},
		{"CONSTANT_ALPHA", BlendFactorConstantAlpha.Code(), 0x8003},
		{"SRC1_ALPHA", BlendFactorSrc1Alpha.Code(), 0x8589},
		{"SRC1_COLOR", BlendFactorSrc1Color.Code(), 0x88F9},
		{"FRONT", CullFaceFront.Code(), 0x0404},
		{"BACK", CullFaceBack.Code(), 0x0405},
		{"FRONT_AND_BACK", CullFaceFrontAndBack.Code(), 0x0408},
		{"CW", FaceWindingClockwise.Code(), 0x0900},
		{"CCW", FaceWindingCounterClockwise.Code(), 0x0901},
		{"KEEP", StencilOperationKeep.Code(), 0x1E00},
		{"INCR_WRAP", StencilOperationIncrementWrap.Code(), 0x8507},
		{"INVERT", StencilOperationInvert.Code(), 0x150A},
		{"FILL", PolygonModeFill.Code(), 0x1B02},
		{"LINEAR_MIPMAP_LINEAR", TextureMinFilterLinearMipmapLinear.Code(), 0x2703},
		{"LINEAR", TextureMagFilterLinear.Code(), 0x2601},
		{"CLAMP_TO_EDGE", TextureWrapClampToEdge.Code(), 0x812F},
		{"STATIC_DRAW", BufferUsageStaticDraw.Code(), 0x88E4},
		{"TRIANGLES", PrimitiveTypeTriangles.Code(), 4},
		{"PATCHES", PrimitiveTypePatches.Code(), 0x0E},
		{"VERTEX_SHADER", ShaderTypeVertex.Code(), 0x8B31},
		{"FLOAT", DataTypeFloat.Code(), 0x1406},
		{"TEXTURE_CUBE_MAP_NEGATIVE_Z", CubeMapSideNegativeZ.Code(), 0x851A},
		{"COLOR_BUFFER_BIT", ClearColorBit.Code(), 0x4000},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %#x, want %#x", tt.name, tt.got, tt.want)
		}
	}
}

func TestFromCode_Unknown(t *testing.T) {
	tests := []struct {
		name string
		fn   func() error
	}{
		{"comparison", func() error { _, err := ComparisonFromCode(0x0208); return err }},
		{"blend equation", func() error { _, err := BlendEquationFromCode(0); return err }},
		{"blend factor", func() error { _, err := BlendFactorFromCode(2); return err }},
		{"cull face", func() error { _, err := CullFaceFromCode(0x0406); return err }},
		{"face winding", func() error { _, err := FaceWindingFromCode(0); return err }},
		{"stencil operation", func() error { _, err := StencilOperationFromCode(1); return err }},
		{"polygon mode", func() error { _, err := PolygonModeFromCode(0x1B03); return err }},
		{"min filter", func() error { _, err := TextureMinFilterFromCode(0x2704); return err }},
		{"mag filter", func() error { _, err := TextureMagFilterFromCode(0x2700); return err }},
		{"wrap", func() error { _, err := TextureWrapFromCode(0x2900); return err }},
		{"buffer usage", func() error { _, err := BufferUsageFromCode(0x88E3); return err }},
		{"primitive", func() error { _, err := PrimitiveTypeFromCode(7); return err }},
		{"shader", func() error { _, err := ShaderTypeFromCode(0); return err }},
		{"data type", func() error { _, err := DataTypeFromCode(0x1407); return err }},
		{"cube side", func() error { _, err := CubeMapSideFromCode(0x8514); return err }},
		{"clear mask", func() error { _, err := ClearMaskFromCode(0x4001); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.fn(); !errors.Is(err, ErrUnknownCode) {
				t.Errorf("err = %v, want ErrUnknownCode", err)
			}
		})
	}
}

func TestParse_Spellings(t *testing.T) {
	tests := []struct {
		in   string
		want Comparison
	}{
		{"LessEqual", ComparisonLessEqual},
		{"less_equal", ComparisonLessEqual},
		{"LESS_EQUAL", ComparisonLessEqual},
		{"LEQUAL", ComparisonLessEqual},
		{"GL_LEQUAL", ComparisonLessEqual},
		{"less-or-equal", ComparisonLessEqual},
		{" always ", ComparisonAlways},
		{"GL_GEQUAL", ComparisonGreaterEqual},
		{"0x203", ComparisonLessEqual},
		{"515", ComparisonLessEqual},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseComparison(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("ParseComparison(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Aliases(t *testing.T) {
	if v, err := ParseStencilOperation("INCR_WRAP"); err != nil || v != StencilOperationIncrementWrap {
		t.Errorf("INCR_WRAP = %v, %v", v, err)
	}
	if v, err := ParseFaceWinding("ccw"); err != nil || v != FaceWindingCounterClockwise {
		t.Errorf("ccw = %v, %v", v, err)
	}
	if v, err := ParseBlendEquation("GL_FUNC_REVERSE_SUBTRACT"); err != nil || v != BlendEquationReverseSubtract {
		t.Errorf("GL_FUNC_REVERSE_SUBTRACT = %v, %v", v, err)
	}
	if v, err := ParseBufferUsage("static_draw"); err != nil || v != BufferUsageStaticDraw {
		t.Errorf("static_draw = %v, %v", v, err)
	}
	if v, err := ParseBlendFactor("one_minus_src_alpha"); err != nil || v != BlendFactorOneMinusSrcAlpha {
		t.Errorf("one_minus_src_alpha = %v, %v", v, err)
	}
	if v, err := ParseShaderType("GL_TESS_CONTROL_SHADER"); err != nil || v != ShaderTypeTessellationControl {
		t.Errorf("GL_TESS_CONTROL_SHADER = %v, %v", v, err)
	}
}

func TestParse_Errors(t *testing.T) {
	if _, err := ParseComparison("sometimes"); !errors.Is(err, ErrUnknownName) {
		t.Errorf("unknown name err = %v", err)
	}
	if _, err := ParseComparison("0x999"); !errors.Is(err, ErrUnknownCode) {
		t.Errorf("unknown code err = %v", err)
	}
	if _, err := ParseCullFace(""); !errors.Is(err, ErrUnknownName) {
		t.Errorf("empty err = %v", err)
	}
}

func TestString_Unknown(t *testing.T) {
	if got := Comparison(0x999).String(); got != "comparison(0x999)" {
		t.Errorf("String() = %q", got)
	}
	if Comparison(0x999).Valid() {
		t.Error("0x999 reported valid")
	}
	if !CullFaceNone.Valid() {
		t.Error("CullFaceNone reported invalid")
	}
}

func TestTextureFiltersShareCodes(t *testing.T) {
	// Min and mag filters are distinct types that agree on the shared codes.
	if TextureMinFilterNearest.Code() != TextureMagFilterNearest.Code() ||
		TextureMinFilterLinear.Code() != TextureMagFilterLinear.Code() {
		t.Error("nearest/linear codes differ between min and mag filters")
	}
}

func TestBlendFactor_LegacyDualSourceCodes(t *testing.T) {
	if f, err := BlendFactorFromCode(0x0308); err != nil || f != BlendFactorSrcAlphaSaturate {
		t.Errorf("0x0308 = %v, %v; want SrcAlphaSaturate", f, err)
	}
	for _, code := range []uint32{0x0309, 0x881A, 0x881B} {
		if _, err := BlendFactorFromCode(code); !errors.Is(err, ErrUnknownCode) {
			t.Errorf("%#x err = %v, want ErrUnknownCode", code, err)
		}
	}
}
