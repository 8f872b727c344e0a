package g3d

import "golang.org/x/image/math/f32"

// Point2 is a 2D position. Unlike Vector2 it carries no magnitude, so it
// has no length or normalize operations.
type Point2 struct {
	X, Y float64
}

// Pt2 is a convenience function to create a Point2.
func Pt2(x, y float64) Point2 {
	return Point2{X: x, Y: y}
}

// Add returns the point displaced by v.
func (p Point2) Add(v Vector2) Point2 {
	return Point2{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the displacement from q to p.
func (p Point2) Sub(q Point2) Vector2 {
	return Vector2{X: p.X - q.X, Y: p.Y - q.Y}
}

// ToVector reinterprets the position as a displacement from the origin.
func (p Point2) ToVector() Vector2 {
	return Vector2(p)
}

// ToNative converts the point to the engine's single-precision form.
func (p Point2) ToNative() f32.Vec2 {
	return f32.Vec2{float32(p.X), float32(p.Y)}
}

// Point2FromNative widens an engine point to host precision.
func Point2FromNative(v f32.Vec2) Point2 {
	return Point2{X: float64(v[0]), Y: float64(v[1])}
}

// Point3 is a 3D position.
type Point3 struct {
	X, Y, Z float64
}

// Pt3 is a convenience function to create a Point3.
func Pt3(x, y, z float64) Point3 {
	return Point3{X: x, Y: y, Z: z}
}

// Add returns the point displaced by v.
func (p Point3) Add(v Vector3) Point3 {
	return Point3{X: p.X + v.X, Y: p.Y + v.Y, Z: p.Z + v.Z}
}

// Sub returns the displacement from q to p.
func (p Point3) Sub(q Point3) Vector3 {
	return Vector3{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

// ToVector reinterprets the position as a displacement from the origin.
func (p Point3) ToVector() Vector3 {
	return Vector3(p)
}

// ToNative converts the point to the engine's single-precision form.
func (p Point3) ToNative() f32.Vec3 {
	return f32.Vec3{float32(p.X), float32(p.Y), float32(p.Z)}
}

// Point3FromNative widens an engine point to host precision.
func Point3FromNative(v f32.Vec3) Point3 {
	return Point3{X: float64(v[0]), Y: float64(v[1]), Z: float64(v[2])}
}
