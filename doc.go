// Package g3d provides the value types exchanged between a host application
// and a single-precision 3D rendering engine.
//
// # Overview
//
// Host code computes in float64. The engine stores and uploads float32.
// g3d holds the float64 side (points, vectors, matrices, quaternions,
// angles, colors) and defines how each crosses the boundary:
//
//	m := g3d.Perspective(g3d.Degrees(60).ToRadians(), 16.0/9.0, 0.1, 100)
//	buf := m.AppendBytes(nil)      // 64 bytes, column-major float32
//	n := m.ToNative()              // f32.Mat4
//
// Narrowing is a plain IEEE conversion (round to nearest). Widening never
// fails and is exact, so a value survives a round trip only when it is
// representable in float32.
//
// # Conventions
//
//   - Matrices are column-major: element (row, col) is at index col*N+row.
//     The golang.org/x/image/math/f32 matrices used as the engine form are
//     row-major, so ToNative and the FromNative functions transpose.
//   - Cross products are right-handed.
//   - Normalize returns the zero vector for a zero-length input.
//   - Lerp extrapolates for t outside [0, 1] and is exact at both ends.
//   - Quaternions are never normalized implicitly.
//   - Degrees and Radians are distinct types; convert explicitly.
//
// # Sub-packages
//
//   - pipeline: the enum catalog with native GL codes and the
//     RenderStateDescriptor snapshot.
//   - presentation: engine-facing enums without numeric significance.
//   - backend: the contract with the external rendering backend.
//   - backend/glstate: GL state command encoding.
//   - webgpu: translation of descriptors into gputypes pipeline state.
//
// # Logging
//
// g3d is silent by default. SetLogger installs a *slog.Logger shared by all
// sub-packages. Math operations never log.
package g3d
