package pipeline

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDescriptor_EmptyIsDefault(t *testing.T) {
	d, err := LoadDescriptor(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if d != DefaultDescriptor() {
		t.Errorf("empty document = %+v", d)
	}
}

func TestLoadDescriptor_NamesAndCodes(t *testing.T) {
	const doc = `
blending_enabled: true
blend_src: src_alpha
blend_dst: GL_ONE_MINUS_SRC_ALPHA
depth_test_enabled: true
depth_func: 0x203
stencil_mask: 0x0F
cull_face: back
front_face: CW
clear_color_r: 0.5
clear_mask: color|depth
`
	d, err := LoadDescriptor(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}

	want := DefaultDescriptor()
	want.BlendingEnabled = true
	want.BlendSrc = BlendFactorSrcAlpha
	want.BlendDst = BlendFactorOneMinusSrcAlpha
	want.DepthTestEnabled = true
	want.DepthFunc = ComparisonLessEqual
	want.StencilMask = 0x0F
	want.CullFace = CullFaceBack
	want.FrontFace = FaceWindingClockwise
	want.ClearColorR = 0.5
	want.ClearMask = ClearColorBit | ClearDepthBit

	if d != want {
		t.Errorf("LoadDescriptor =\n%+v\nwant\n%+v", d, want)
	}
}

func TestLoadDescriptor_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"unknown name", "depth_func: sometimes\n", ErrUnknownName},
		{"unknown code", "cull_face: 0x0406\n", ErrUnknownCode},
		{"bad mask", "clear_mask: accum\n", ErrUnknownName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadDescriptor(strings.NewReader(tt.doc))
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := LoadDescriptor(strings.NewReader("no_such_field: 1\n")); err == nil {
		t.Error("unknown key accepted")
	}
	if _, err := LoadDescriptor(strings.NewReader("depth_func: [1, 2]\n")); err == nil {
		t.Error("sequence accepted for an enum")
	}
}

func TestWriteDescriptor_RoundTrip(t *testing.T) {
	for _, name := range PresetNames() {
		t.Run(name, func(t *testing.T) {
			d, err := Preset(name)
			if err != nil {
				t.Fatal(err)
			}
			var buf bytes.Buffer
			if err := WriteDescriptor(&buf, d); err != nil {
				t.Fatal(err)
			}
			got, err := LoadDescriptor(&buf)
			if err != nil {
				t.Fatalf("reload: %v\n%s", err, buf.String())
			}
			if got != d {
				t.Errorf("round trip =\n%+v\nwant\n%+v", got, d)
			}
		})
	}
}

func TestWriteDescriptor_NumericCodes(t *testing.T) {
	d := DefaultDescriptor()
	d.DepthFunc = ComparisonLessEqual
	var buf bytes.Buffer
	if err := WriteDescriptor(&buf, d); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"depth_func: 0x203 # LessEqual", "blend_equation: 0x8006 # Add", "cull_face: 0x0 # None", "clear_mask: 0x0 # None"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestLoadDescriptorFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preset.yaml")
	if err := os.WriteFile(path, []byte("dither: true\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	d, err := LoadDescriptorFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !d.Dither {
		t.Error("dither not loaded")
	}

	if _, err := LoadDescriptorFile(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file err = %v", err)
	}
}

func TestPreset(t *testing.T) {
	d, err := Preset("transparent")
	if err != nil {
		t.Fatal(err)
	}
	if !d.BlendingEnabled || d.BlendSrc != BlendFactorSrcAlpha || d.DepthWriteMask {
		t.Errorf("transparent = %+v", d)
	}
	if _, err := Preset("nope"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("err = %v", err)
	}
	// Presets hand out copies.
	d.Dither = true
	again, _ := Preset("transparent")
	if again.Dither {
		t.Error("preset mutated through a returned copy")
	}
}
