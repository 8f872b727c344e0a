package glstate

import (
	"errors"
	"fmt"

	"github.com/gogpu/g3d"
	"github.com/gogpu/g3d/pipeline"
)

// Encode returns the commands that establish d from any prior GL state.
// Every state group is emitted. A Clear is appended when d.ClearMask is not
// empty.
func Encode(d pipeline.RenderStateDescriptor) []Command {
	return appendState(make([]Command, 0, 32), nil, d)
}

// Diff returns the commands that move GL from prev to next: only the state
// that differs, followed by a Clear when next.ClearMask is not empty.
// Clearing is an action rather than state, so it is never elided.
func Diff(prev, next pipeline.RenderStateDescriptor) []Command {
	return appendState(nil, &prev, next)
}

// appendState appends the commands for next. A nil prev emits every group.
func appendState(cmds []Command, prev *pipeline.RenderStateDescriptor, next pipeline.RenderStateDescriptor) []Command {
	full := prev == nil
	if full {
		prev = &pipeline.RenderStateDescriptor{}
	}

	// Blend
	if full || prev.BlendingEnabled != next.BlendingEnabled {
		cmds = append(cmds, toggle(CapBlend, next.BlendingEnabled))
	}
	if full || prev.BlendEquation != next.BlendEquation {
		cmds = append(cmds, BlendEquation{Mode: next.BlendEquation})
	}
	if full || prev.BlendSrc != next.BlendSrc || prev.BlendDst != next.BlendDst {
		cmds = append(cmds, BlendFunc{Src: next.BlendSrc, Dst: next.BlendDst})
	}

	// Depth
	if full || prev.DepthTestEnabled != next.DepthTestEnabled {
		cmds = append(cmds, toggle(CapDepthTest, next.DepthTestEnabled))
	}
	if full || prev.DepthFunc != next.DepthFunc {
		cmds = append(cmds, DepthFunc{Func: next.DepthFunc})
	}
	if full || prev.DepthWriteMask != next.DepthWriteMask {
		cmds = append(cmds, DepthMask{Write: next.DepthWriteMask})
	}

	// Stencil. StencilMask feeds both the read mask and the write mask.
	if full || prev.StencilTestEnabled != next.StencilTestEnabled {
		cmds = append(cmds, toggle(CapStencilTest, next.StencilTestEnabled))
	}
	if full || prev.StencilFunc != next.StencilFunc || prev.StencilRef != next.StencilRef || prev.StencilMask != next.StencilMask {
		cmds = append(cmds, StencilFunc{Func: next.StencilFunc, Ref: next.StencilRef, Mask: next.StencilMask})
	}
	if full || prev.StencilFail != next.StencilFail || prev.StencilZFail != next.StencilZFail || prev.StencilZPass != next.StencilZPass {
		cmds = append(cmds, StencilOp{Fail: next.StencilFail, ZFail: next.StencilZFail, ZPass: next.StencilZPass})
	}
	if full || prev.StencilMask != next.StencilMask {
		cmds = append(cmds, StencilMask{Mask: next.StencilMask})
	}

	// Rasterizer
	culling := next.CullFace != pipeline.CullFaceNone
	if full || (prev.CullFace != pipeline.CullFaceNone) != culling {
		cmds = append(cmds, toggle(CapCullFace, culling))
	}
	if culling && (full || prev.CullFace != next.CullFace) {
		cmds = append(cmds, CullFace{Mode: next.CullFace})
	}
	if full || prev.FrontFace != next.FrontFace {
		cmds = append(cmds, FrontFace{Mode: next.FrontFace})
	}
	if full || prev.PolygonMode != next.PolygonMode {
		cmds = append(cmds, PolygonMode{Mode: next.PolygonMode})
	}
	if full || prev.AlphaToCoverage != next.AlphaToCoverage {
		cmds = append(cmds, toggle(CapSampleAlphaToCoverage, next.AlphaToCoverage))
	}
	if full || prev.Dither != next.Dither {
		cmds = append(cmds, toggle(CapDither, next.Dither))
	}

	// Scissor and viewport
	if full || prev.ScissorTest != next.ScissorTest {
		cmds = append(cmds, toggle(CapScissorTest, next.ScissorTest))
	}
	if full || prev.Scissor() != next.Scissor() {
		cmds = append(cmds, Scissor{Box: next.Scissor()})
	}
	if full || prev.Viewport() != next.Viewport() {
		cmds = append(cmds, Viewport{Rect: next.Viewport()})
	}

	// Clear values
	if full || prev.ClearColor() != next.ClearColor() {
		cmds = append(cmds, ClearColor{
			R: g3d.ToSingle(next.ClearColorR),
			G: g3d.ToSingle(next.ClearColorG),
			B: g3d.ToSingle(next.ClearColorB),
			A: g3d.ToSingle(next.ClearColorA),
		})
	}
	if full || prev.ClearDepth != next.ClearDepth {
		cmds = append(cmds, ClearDepth{Depth: next.ClearDepth})
	}
	if full || prev.ClearStencil != next.ClearStencil {
		cmds = append(cmds, ClearStencil{Stencil: next.ClearStencil})
	}
	if next.ClearMask != 0 {
		cmds = append(cmds, Clear{Mask: next.ClearMask})
	}
	return cmds
}

// Replay applies cmds to d as a GL context would. ClearMask ends up as the
// mask of the last Clear in cmds, or empty when there is none. Uniform
// commands carry no descriptor state and are skipped.
func Replay(d *pipeline.RenderStateDescriptor, cmds []Command) {
	d.ClearMask = 0
	// GL keeps the cull mode while culling is disabled; track it so that
	// a later Enable restores it.
	cullMode := d.CullFace
	culling := cullMode != pipeline.CullFaceNone
	if !culling {
		cullMode = pipeline.CullFaceBack
	}

	for _, cmd := range cmds {
		switch c := cmd.(type) {
		case Enable:
			setCapability(d, c.Cap, true, &culling)
		case Disable:
			setCapability(d, c.Cap, false, &culling)
		case BlendEquation:
			d.BlendEquation = c.Mode
		case BlendFunc:
			d.BlendSrc, d.BlendDst = c.Src, c.Dst
		case DepthFunc:
			d.DepthFunc = c.Func
		case DepthMask:
			d.DepthWriteMask = c.Write
		case StencilFunc:
			d.StencilFunc, d.StencilRef, d.StencilMask = c.Func, c.Ref, c.Mask
		case StencilOp:
			d.StencilFail, d.StencilZFail, d.StencilZPass = c.Fail, c.ZFail, c.ZPass
		case StencilMask:
			d.StencilMask = c.Mask
		case CullFace:
			cullMode = c.Mode
		case FrontFace:
			d.FrontFace = c.Mode
		case PolygonMode:
			d.PolygonMode = c.Mode
		case Scissor:
			d.SetScissor(c.Box)
		case Viewport:
			d.SetViewport(c.Rect)
		case ClearColor:
			d.SetClearColor(g3d.NewSrgba(g3d.ToDouble(c.R), g3d.ToDouble(c.G), g3d.ToDouble(c.B), g3d.ToDouble(c.A)))
		case ClearDepth:
			d.ClearDepth = c.Depth
		case ClearStencil:
			d.ClearStencil = c.Stencil
		case Clear:
			d.ClearMask = c.Mask
		}
	}

	if culling {
		d.CullFace = cullMode
	} else {
		d.CullFace = pipeline.CullFaceNone
	}
}

func setCapability(d *pipeline.RenderStateDescriptor, c Capability, on bool, culling *bool) {
	switch c {
	case CapBlend:
		d.BlendingEnabled = on
	case CapDepthTest:
		d.DepthTestEnabled = on
	case CapStencilTest:
		d.StencilTestEnabled = on
	case CapCullFace:
		*culling = on
	case CapScissorTest:
		d.ScissorTest = on
	case CapDither:
		d.Dither = on
	case CapSampleAlphaToCoverage:
		d.AlphaToCoverage = on
	}
}

// Validate reports every enum field of d whose value is not a GL code of
// its type. The returned error wraps pipeline.ErrUnknownCode.
func Validate(d pipeline.RenderStateDescriptor) error {
	var errs []error
	check := func(field string, valid bool, code uint32) {
		if !valid {
			errs = append(errs, fmt.Errorf("glstate: %s %#x: %w", field, code, pipeline.ErrUnknownCode))
		}
	}
	check("blend_equation", d.BlendEquation.Valid(), d.BlendEquation.Code())
	check("blend_src", d.BlendSrc.Valid(), d.BlendSrc.Code())
	check("blend_dst", d.BlendDst.Valid(), d.BlendDst.Code())
	check("depth_func", d.DepthFunc.Valid(), d.DepthFunc.Code())
	check("stencil_func", d.StencilFunc.Valid(), d.StencilFunc.Code())
	check("stencil_fail", d.StencilFail.Valid(), d.StencilFail.Code())
	check("stencil_z_fail", d.StencilZFail.Valid(), d.StencilZFail.Code())
	check("stencil_z_pass", d.StencilZPass.Valid(), d.StencilZPass.Code())
	check("cull_face", d.CullFace.Valid(), d.CullFace.Code())
	check("front_face", d.FrontFace.Valid(), d.FrontFace.Code())
	check("polygon_mode", d.PolygonMode.Valid(), d.PolygonMode.Code())
	check("clear_mask", d.ClearMask.Valid(), d.ClearMask.Code())
	return errors.Join(errs...)
}
