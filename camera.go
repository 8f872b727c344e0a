package g3d

import "fmt"

// Default perspective camera parameters.
const (
	DefaultFovY Degrees = 45
	DefaultNear         = 0.1
	DefaultFar          = 1000.0
)

// Camera is a perspective camera: an eye position looking at a target,
// with a vertical field of view and clip planes. It is plain data; the
// matrices are derived on demand. The aspect ratio belongs to the viewport
// and is passed to Projection.
type Camera struct {
	Position Point3
	Target   Point3
	Up       Vector3
	FovY     Degrees
	Near     float64
	Far      float64
}

// NewCamera returns a camera at position looking at target, with the
// default field of view and clip planes.
func NewCamera(position, target Point3, up Vector3) Camera {
	return Camera{
		Position: position,
		Target:   target,
		Up:       up,
		FovY:     DefaultFovY,
		Near:     DefaultNear,
		Far:      DefaultFar,
	}
}

// Forward returns the unit view direction, or zero when the position and
// target coincide.
func (c Camera) Forward() Vector3 { return c.Target.Sub(c.Position).Normalize() }

// View returns the world-to-view matrix.
func (c Camera) View() Matrix4 { return LookAt(c.Position, c.Target, c.Up) }

// Projection returns the view-to-clip matrix for a viewport of the given
// width/height ratio. Depth maps to [0, 1].
func (c Camera) Projection(aspect float64) Matrix4 {
	return Perspective(c.FovY.ToRadians(), aspect, c.Near, c.Far)
}

// ViewProjection returns Projection(aspect) * View().
func (c Camera) ViewProjection(aspect float64) Matrix4 {
	return c.Projection(aspect).Mul(c.View())
}

func (c Camera) String() string {
	return fmt.Sprintf("Camera(position=%v, target=%v, fov=%v)", c.Position, c.Target, float64(c.FovY))
}
