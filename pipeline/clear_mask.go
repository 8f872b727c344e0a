package pipeline

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ClearMask selects the buffers a clear operation touches. Bits combine
// with |; the zero value clears nothing.
type ClearMask uint32

const (
	ClearDepthBit   ClearMask = 0x0100 // GL_DEPTH_BUFFER_BIT
	ClearStencilBit ClearMask = 0x0400 // GL_STENCIL_BUFFER_BIT
	ClearColorBit   ClearMask = 0x4000 // GL_COLOR_BUFFER_BIT

	ClearAllBits = ClearColorBit | ClearDepthBit | ClearStencilBit
)

var clearMaskBits = [...]struct {
	bit  ClearMask
	name string
}{
	{ClearColorBit, "Color"},
	{ClearDepthBit, "Depth"},
	{ClearStencilBit, "Stencil"},
}

// Code returns the GL bitfield.
func (m ClearMask) Code() uint32 { return uint32(m) }

// Has reports whether every bit of b is set in m.
func (m ClearMask) Has(b ClearMask) bool { return m&b == b }

// Valid reports whether m holds only known bits.
func (m ClearMask) Valid() bool { return m&^ClearAllBits == 0 }

// String lists the set bits, for example "Color|Depth". The empty mask is
// "None"; unknown bits are appended in hex.
func (m ClearMask) String() string {
	if m == 0 {
		return "None"
	}
	var parts []string
	for _, b := range clearMaskBits {
		if m.Has(b.bit) {
			parts = append(parts, b.name)
		}
	}
	if rest := m &^ ClearAllBits; rest != 0 {
		parts = append(parts, fmt.Sprintf("%#x", uint32(rest)))
	}
	return strings.Join(parts, "|")
}

// ClearMaskFromCode converts a GL bitfield, rejecting unknown bits.
func ClearMaskFromCode(code uint32) (ClearMask, error) {
	m := ClearMask(code)
	if !m.Valid() {
		return 0, fmt.Errorf("pipeline: clear mask %#x: %w", code, ErrUnknownCode)
	}
	return m, nil
}

// ParseClearMask parses a numeric bitfield or bit names joined by '|' or
// ',' ("color|depth", "All", "None").
func ParseClearMask(s string) (ClearMask, error) {
	s = strings.TrimSpace(s)
	if code, err := strconv.ParseUint(s, 0, 32); err == nil {
		return ClearMaskFromCode(uint32(code))
	}

	var m ClearMask
	for _, part := range strings.FieldsFunc(s, func(r rune) bool { return r == '|' || r == ',' }) {
		switch foldName(part) {
		case "color", "colorbufferbit":
			m |= ClearColorBit
		case "depth", "depthbufferbit":
			m |= ClearDepthBit
		case "stencil", "stencilbufferbit":
			m |= ClearStencilBit
		case "all":
			m |= ClearAllBits
		case "none":
		default:
			return 0, fmt.Errorf("pipeline: clear mask %q: %w", part, ErrUnknownName)
		}
	}
	return m, nil
}

// MarshalYAML writes the numeric bitfield, annotated with the bit names.
func (m ClearMask) MarshalYAML() (interface{}, error) {
	return &yaml.Node{
		Kind:        yaml.ScalarNode,
		Tag:         "!!int",
		Value:       fmt.Sprintf("%#x", uint32(m)),
		LineComment: m.String(),
	}, nil
}

// UnmarshalYAML accepts a numeric bitfield or bit names.
func (m *ClearMask) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("pipeline: clear mask at line %d: expected a scalar", n.Line)
	}
	v, err := ParseClearMask(n.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", n.Line, err)
	}
	*m = v
	return nil
}
