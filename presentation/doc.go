// Package presentation holds the enums a scene or material description is
// written in: cull and depth choices, transparency, tone mapping, light and
// shading models and similar.
//
// The values are plain iota discriminants with no numeric meaning to a GPU
// API. Where a presentation enum has a counterpart in package pipeline it
// is converted by an explicit method (Cull.ToCullFace,
// DepthTest.ToComparison, ClearFlag.ToClearMask, DrawModeHint.ToBufferUsage
// and friends). The two families are never matched by name.
//
// RenderStates and SceneCamera are material and camera settings that write
// themselves into a pipeline.RenderStateDescriptor with Apply, as
// Transparency and WriteMask do.
package presentation
