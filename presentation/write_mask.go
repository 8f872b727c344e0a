package presentation

import "strings"

// WriteMask selects which buffers a material writes to.
type WriteMask uint8

const (
	WriteMaskNone    WriteMask = 0
	WriteMaskColor   WriteMask = 1 << 0
	WriteMaskDepth   WriteMask = 1 << 1
	WriteMaskStencil WriteMask = 1 << 2
	WriteMaskAll               = WriteMaskColor | WriteMaskDepth | WriteMaskStencil
)

// Has reports whether every bit of b is set in m.
func (m WriteMask) Has(b WriteMask) bool { return m&b == b }

func (m WriteMask) String() string {
	switch m {
	case WriteMaskNone:
		return "None"
	case WriteMaskAll:
		return "All"
	}
	var parts []string
	if m.Has(WriteMaskColor) {
		parts = append(parts, "Color")
	}
	if m.Has(WriteMaskDepth) {
		parts = append(parts, "Depth")
	}
	if m.Has(WriteMaskStencil) {
		parts = append(parts, "Stencil")
	}
	if m&^WriteMaskAll != 0 {
		parts = append(parts, "?")
	}
	return strings.Join(parts, "|")
}
