package pipeline

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/g3d"
)

// ErrUnknownPreset is returned by Preset for names with no built-in preset.
var ErrUnknownPreset = errors.New("pipeline: unknown preset")

// presets are the built-in descriptors, keyed by name.
var presets = map[string]func() RenderStateDescriptor{
	"default": DefaultDescriptor,
	"opaque": func() RenderStateDescriptor {
		d := DefaultDescriptor()
		d.DepthTestEnabled = true
		d.DepthFunc = ComparisonLessEqual
		d.CullFace = CullFaceBack
		d.ClearMask = ClearColorBit | ClearDepthBit
		return d
	},
	"transparent": func() RenderStateDescriptor {
		d := DefaultDescriptor()
		d.BlendingEnabled = true
		d.BlendSrc = BlendFactorSrcAlpha
		d.BlendDst = BlendFactorOneMinusSrcAlpha
		d.DepthTestEnabled = true
		d.DepthFunc = ComparisonLessEqual
		d.DepthWriteMask = false
		return d
	},
	"additive": func() RenderStateDescriptor {
		d := DefaultDescriptor()
		d.BlendingEnabled = true
		d.BlendSrc = BlendFactorOne
		d.BlendDst = BlendFactorOne
		d.DepthTestEnabled = true
		d.DepthWriteMask = false
		return d
	},
	"stencil-mask": func() RenderStateDescriptor {
		d := DefaultDescriptor()
		d.StencilTestEnabled = true
		d.StencilRef = 1
		d.StencilZPass = StencilOperationReplace
		d.ClearMask = ClearStencilBit
		return d
	},
	"wireframe": func() RenderStateDescriptor {
		d := DefaultDescriptor()
		d.DepthTestEnabled = true
		d.PolygonMode = PolygonModeLine
		d.ClearMask = ClearAllBits
		return d
	},
}

// Preset returns a copy of the built-in descriptor called name.
func Preset(name string) (RenderStateDescriptor, error) {
	build, ok := presets[name]
	if !ok {
		return RenderStateDescriptor{}, fmt.Errorf("pipeline: preset %q: %w", name, ErrUnknownPreset)
	}
	return build(), nil
}

// PresetNames returns the built-in preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadDescriptor reads a YAML descriptor from r. Keys absent from the
// document keep their DefaultDescriptor values, so an empty document
// yields the default state. Unknown keys are an error.
func LoadDescriptor(r io.Reader) (RenderStateDescriptor, error) {
	d := DefaultDescriptor()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil && !errors.Is(err, io.EOF) {
		return RenderStateDescriptor{}, fmt.Errorf("pipeline: parse descriptor: %w", err)
	}
	return d, nil
}

// LoadDescriptorFile reads a YAML descriptor from path.
func LoadDescriptorFile(path string) (RenderStateDescriptor, error) {
	f, err := os.Open(path)
	if err != nil {
		return RenderStateDescriptor{}, fmt.Errorf("pipeline: open %s: %w", path, err)
	}
	defer f.Close()

	d, err := LoadDescriptor(f)
	if err != nil {
		return RenderStateDescriptor{}, fmt.Errorf("%s: %w", path, err)
	}
	g3d.Logger().Debug("pipeline: loaded descriptor", "path", path, "state", d)
	return d, nil
}

// WriteDescriptor writes d as YAML. Enum fields are written as their
// numeric codes with the member name as a line comment.
func WriteDescriptor(w io.Writer, d RenderStateDescriptor) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("pipeline: encode descriptor: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("pipeline: encode descriptor: %w", err)
	}
	return nil
}
