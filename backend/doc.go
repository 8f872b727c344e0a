// Package backend hands render state and uniforms to a pluggable engine
// backend.
//
// A backend receives a Submission: a complete pipeline.RenderStateDescriptor
// plus the uniform values for a draw, already converted to single
// precision. Backends are registered by name and selected at runtime.
//
// # Backend Registration
//
// Backends register themselves from init functions. The null backend is
// always present; importing a backend package adds its entry:
//
//	import _ "github.com/gogpu/g3d/backend/glstate"
//	import _ "github.com/gogpu/g3d/webgpu"
//
// # Backend Selection
//
// Use Best to get the highest-priority registered backend, or New to
// request one by name:
//
//	b := backend.Best()
//	b, err := backend.New("gl")
//
// Priority order is webgpu, gl, null.
//
// # Submitting
//
//	sub := backend.Submission{
//		State: pipeline.DefaultDescriptor(),
//		Uniforms: []backend.Uniform{
//			backend.MatrixUniform("u_mvp", mvp),
//			backend.ColorUniform("u_tint", g3d.White),
//		},
//	}
//	if err := backend.Submit(b, sub); err != nil {
//		log.Fatal(err)
//	}
//
// Submit copies the submission before the backend sees it, so callers may
// reuse their uniform slices immediately.
package backend
