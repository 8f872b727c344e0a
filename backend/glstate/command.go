// Package glstate encodes a pipeline.RenderStateDescriptor as the sequence
// of GL state calls that establishes it.
//
// Commands are typed structs carrying GL numeric codes, in the spirit of
// a display list: they can be inspected, diffed, replayed onto a
// descriptor, or handed to a thin executor that forwards each one to the
// matching gl* entry point.
//
// # Architecture
//
//   - Encode produces the full command list for a descriptor.
//   - Diff produces only the commands needed to move from one descriptor
//     to another.
//   - Replay applies commands to a descriptor, the inverse of Encode.
//
// Importing the package registers the "gl" backend:
//
//	import _ "github.com/gogpu/g3d/backend/glstate"
package glstate

import (
	"fmt"

	"github.com/gogpu/g3d/pipeline"
)

// CommandType identifies the type of a command.
// Each command type corresponds to one GL entry point.
type CommandType uint8

const (
	// Capability commands
	CmdEnable  CommandType = iota // glEnable
	CmdDisable                    // glDisable

	// Blend commands
	CmdBlendEquation // glBlendEquation
	CmdBlendFunc     // glBlendFunc

	// Depth and stencil commands
	CmdDepthFunc   // glDepthFunc
	CmdDepthMask   // glDepthMask
	CmdStencilFunc // glStencilFunc
	CmdStencilOp   // glStencilOp
	CmdStencilMask // glStencilMask

	// Rasterizer commands
	CmdCullFace    // glCullFace
	CmdFrontFace   // glFrontFace
	CmdPolygonMode // glPolygonMode
	CmdScissor     // glScissor
	CmdViewport    // glViewport

	// Clear commands
	CmdClearColor   // glClearColor
	CmdClearDepth   // glClearDepth
	CmdClearStencil // glClearStencil
	CmdClear        // glClear

	// Program commands
	CmdUniform // glUniform*
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdEnable:        "Enable",
	CmdDisable:       "Disable",
	CmdBlendEquation: "BlendEquation",
	CmdBlendFunc:     "BlendFunc",
	CmdDepthFunc:     "DepthFunc",
	CmdDepthMask:     "DepthMask",
	CmdStencilFunc:   "StencilFunc",
	CmdStencilOp:     "StencilOp",
	CmdStencilMask:   "StencilMask",
	CmdCullFace:      "CullFace",
	CmdFrontFace:     "FrontFace",
	CmdPolygonMode:   "PolygonMode",
	CmdScissor:       "Scissor",
	CmdViewport:      "Viewport",
	CmdClearColor:    "ClearColor",
	CmdClearDepth:    "ClearDepth",
	CmdClearStencil:  "ClearStencil",
	CmdClear:         "Clear",
	CmdUniform:       "Uniform",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
// String renders the command as the GL call it stands for.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
	fmt.Stringer
}

// Capability is a server-side GL capability toggled by glEnable and
// glDisable.
type Capability uint32

const (
	CapCullFace              Capability = 0x0B44 // GL_CULL_FACE
	CapDepthTest             Capability = 0x0B71 // GL_DEPTH_TEST
	CapStencilTest           Capability = 0x0B90 // GL_STENCIL_TEST
	CapDither                Capability = 0x0BD0 // GL_DITHER
	CapBlend                 Capability = 0x0BE2 // GL_BLEND
	CapScissorTest           Capability = 0x0C11 // GL_SCISSOR_TEST
	CapSampleAlphaToCoverage Capability = 0x809E // GL_SAMPLE_ALPHA_TO_COVERAGE
)

var capabilityNames = map[Capability]string{
	CapCullFace:              "GL_CULL_FACE",
	CapDepthTest:             "GL_DEPTH_TEST",
	CapStencilTest:           "GL_STENCIL_TEST",
	CapDither:                "GL_DITHER",
	CapBlend:                 "GL_BLEND",
	CapScissorTest:           "GL_SCISSOR_TEST",
	CapSampleAlphaToCoverage: "GL_SAMPLE_ALPHA_TO_COVERAGE",
}

func (c Capability) String() string {
	if n, ok := capabilityNames[c]; ok {
		return n
	}
	return fmt.Sprintf("Capability(%#x)", uint32(c))
}

// toggle returns Enable or Disable for c.
func toggle(c Capability, on bool) Command {
	if on {
		return Enable{Cap: c}
	}
	return Disable{Cap: c}
}

// code formats an enum as its hex code followed by its name.
func code[T interface {
	Code() uint32
	fmt.Stringer
}](v T) string {
	return fmt.Sprintf("%#x /* %s */", v.Code(), v)
}

// --------------------------------------------------------------------------
// Capability Commands
// --------------------------------------------------------------------------

// Enable turns a capability on.
type Enable struct {
	Cap Capability
}

// Type implements Command.
func (Enable) Type() CommandType { return CmdEnable }

func (c Enable) String() string { return fmt.Sprintf("glEnable(%v)", c.Cap) }

// Disable turns a capability off.
type Disable struct {
	Cap Capability
}

// Type implements Command.
func (Disable) Type() CommandType { return CmdDisable }

func (c Disable) String() string { return fmt.Sprintf("glDisable(%v)", c.Cap) }

// --------------------------------------------------------------------------
// Blend Commands
// --------------------------------------------------------------------------

// BlendEquation sets the blend equation for color and alpha.
type BlendEquation struct {
	Mode pipeline.BlendEquation
}

// Type implements Command.
func (BlendEquation) Type() CommandType { return CmdBlendEquation }

func (c BlendEquation) String() string { return "glBlendEquation(" + code(c.Mode) + ")" }

// BlendFunc sets the source and destination blend factors.
type BlendFunc struct {
	Src, Dst pipeline.BlendFactor
}

// Type implements Command.
func (BlendFunc) Type() CommandType { return CmdBlendFunc }

func (c BlendFunc) String() string {
	return "glBlendFunc(" + code(c.Src) + ", " + code(c.Dst) + ")"
}

// --------------------------------------------------------------------------
// Depth and Stencil Commands
// --------------------------------------------------------------------------

// DepthFunc sets the depth comparison.
type DepthFunc struct {
	Func pipeline.Comparison
}

// Type implements Command.
func (DepthFunc) Type() CommandType { return CmdDepthFunc }

func (c DepthFunc) String() string { return "glDepthFunc(" + code(c.Func) + ")" }

// DepthMask enables or disables depth buffer writes.
type DepthMask struct {
	Write bool
}

// Type implements Command.
func (DepthMask) Type() CommandType { return CmdDepthMask }

func (c DepthMask) String() string { return fmt.Sprintf("glDepthMask(%t)", c.Write) }

// StencilFunc sets the stencil comparison, reference and read mask.
type StencilFunc struct {
	Func pipeline.Comparison
	Ref  int32
	Mask uint32
}

// Type implements Command.
func (StencilFunc) Type() CommandType { return CmdStencilFunc }

func (c StencilFunc) String() string {
	return fmt.Sprintf("glStencilFunc(%s, %d, %#x)", code(c.Func), c.Ref, c.Mask)
}

// StencilOp sets the actions taken on stencil fail, depth fail and pass.
type StencilOp struct {
	Fail, ZFail, ZPass pipeline.StencilOperation
}

// Type implements Command.
func (StencilOp) Type() CommandType { return CmdStencilOp }

func (c StencilOp) String() string {
	return "glStencilOp(" + code(c.Fail) + ", " + code(c.ZFail) + ", " + code(c.ZPass) + ")"
}

// StencilMask sets the stencil write mask.
type StencilMask struct {
	Mask uint32
}

// Type implements Command.
func (StencilMask) Type() CommandType { return CmdStencilMask }

func (c StencilMask) String() string { return fmt.Sprintf("glStencilMask(%#x)", c.Mask) }

// --------------------------------------------------------------------------
// Rasterizer Commands
// --------------------------------------------------------------------------

// CullFace selects the culled faces. It is only meaningful while
// CapCullFace is enabled; Mode is never CullFaceNone.
type CullFace struct {
	Mode pipeline.CullFace
}

// Type implements Command.
func (CullFace) Type() CommandType { return CmdCullFace }

func (c CullFace) String() string { return "glCullFace(" + code(c.Mode) + ")" }

// FrontFace sets the winding of front-facing polygons.
type FrontFace struct {
	Mode pipeline.FaceWinding
}

// Type implements Command.
func (FrontFace) Type() CommandType { return CmdFrontFace }

func (c FrontFace) String() string { return "glFrontFace(" + code(c.Mode) + ")" }

// PolygonMode sets the rasterization mode of both faces.
type PolygonMode struct {
	Mode pipeline.PolygonMode
}

// Type implements Command.
func (PolygonMode) Type() CommandType { return CmdPolygonMode }

func (c PolygonMode) String() string {
	return "glPolygonMode(" + code(pipeline.CullFaceFrontAndBack) + ", " + code(c.Mode) + ")"
}

// Scissor sets the scissor box.
type Scissor struct {
	Box pipeline.ScissorBox
}

// Type implements Command.
func (Scissor) Type() CommandType { return CmdScissor }

func (c Scissor) String() string {
	return fmt.Sprintf("glScissor(%d, %d, %d, %d)", c.Box.X, c.Box.Y, c.Box.Width, c.Box.Height)
}

// Viewport sets the viewport rectangle.
type Viewport struct {
	Rect pipeline.Viewport
}

// Type implements Command.
func (Viewport) Type() CommandType { return CmdViewport }

func (c Viewport) String() string {
	return fmt.Sprintf("glViewport(%d, %d, %d, %d)", c.Rect.X, c.Rect.Y, c.Rect.Width, c.Rect.Height)
}

// --------------------------------------------------------------------------
// Clear Commands
// --------------------------------------------------------------------------

// ClearColor sets the color used by Clear. GL takes the channels in
// single precision.
type ClearColor struct {
	R, G, B, A float32
}

// Type implements Command.
func (ClearColor) Type() CommandType { return CmdClearColor }

func (c ClearColor) String() string {
	return fmt.Sprintf("glClearColor(%g, %g, %g, %g)", c.R, c.G, c.B, c.A)
}

// ClearDepth sets the depth used by Clear.
type ClearDepth struct {
	Depth float64
}

// Type implements Command.
func (ClearDepth) Type() CommandType { return CmdClearDepth }

func (c ClearDepth) String() string { return fmt.Sprintf("glClearDepth(%g)", c.Depth) }

// ClearStencil sets the stencil value used by Clear.
type ClearStencil struct {
	Stencil int32
}

// Type implements Command.
func (ClearStencil) Type() CommandType { return CmdClearStencil }

func (c ClearStencil) String() string { return fmt.Sprintf("glClearStencil(%d)", c.Stencil) }

// Clear clears the buffers selected by Mask.
type Clear struct {
	Mask pipeline.ClearMask
}

// Type implements Command.
func (Clear) Type() CommandType { return CmdClear }

func (c Clear) String() string { return "glClear(" + code(c.Mask) + ")" }

// --------------------------------------------------------------------------
// Program Commands
// --------------------------------------------------------------------------

// Uniform uploads a uniform value by name. The GL entry point is chosen
// from the element count, so a 2x2 matrix is uploaded as a vec4.
type Uniform struct {
	Name string
	Data []float32
}

// Type implements Command.
func (Uniform) Type() CommandType { return CmdUniform }

// Entry returns the name of the GL function that uploads u.
func (u Uniform) Entry() string {
	switch n := len(u.Data); n {
	case 1, 2, 3, 4:
		return fmt.Sprintf("glUniform%dfv", n)
	case 9:
		return "glUniformMatrix3fv"
	case 16:
		return "glUniformMatrix4fv"
	}
	return "glUniform1fv"
}

func (u Uniform) String() string {
	return fmt.Sprintf("%s(%q, %v)", u.Entry(), u.Name, u.Data)
}
