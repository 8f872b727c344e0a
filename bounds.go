package g3d

import "math"

// AxisAlignedBoundingBox is a box aligned with the coordinate axes.
// A box whose min exceeds its max on some axis is empty.
type AxisAlignedBoundingBox struct {
	MinX, MinY, MinZ float64
	MaxX, MaxY, MaxZ float64
}

// NewAABB creates a box from its corners. The corners are stored as given.
func NewAABB(minX, minY, minZ, maxX, maxY, maxZ float64) AxisAlignedBoundingBox {
	return AxisAlignedBoundingBox{
		MinX: minX, MinY: minY, MinZ: minZ,
		MaxX: maxX, MaxY: maxY, MaxZ: maxZ,
	}
}

// AABBFromPoints returns the smallest box containing every point.
// With no points it returns an empty box that any Merge replaces.
func AABBFromPoints(pts ...Point3) AxisAlignedBoundingBox {
	b := AxisAlignedBoundingBox{
		MinX: math.Inf(1), MinY: math.Inf(1), MinZ: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1), MaxZ: math.Inf(-1),
	}
	for _, p := range pts {
		b = b.Merge(AxisAlignedBoundingBox{MinX: p.X, MinY: p.Y, MinZ: p.Z, MaxX: p.X, MaxY: p.Y, MaxZ: p.Z})
	}
	return b
}

// Min returns the minimum corner.
func (b AxisAlignedBoundingBox) Min() Point3 { return Point3{X: b.MinX, Y: b.MinY, Z: b.MinZ} }

// Max returns the maximum corner.
func (b AxisAlignedBoundingBox) Max() Point3 { return Point3{X: b.MaxX, Y: b.MaxY, Z: b.MaxZ} }

// Center returns the midpoint of the box.
func (b AxisAlignedBoundingBox) Center() Point3 {
	return Point3{
		X: (b.MinX + b.MaxX) * 0.5,
		Y: (b.MinY + b.MaxY) * 0.5,
		Z: (b.MinZ + b.MaxZ) * 0.5,
	}
}

// Size returns the extent along each axis.
func (b AxisAlignedBoundingBox) Size() Vector3 {
	return b.Max().Sub(b.Min())
}

// IsEmpty reports whether the box contains no points.
func (b AxisAlignedBoundingBox) IsEmpty() bool {
	return b.MinX > b.MaxX || b.MinY > b.MaxY || b.MinZ > b.MaxZ
}

// Contains reports whether p lies inside the box. Faces are inclusive.
func (b AxisAlignedBoundingBox) Contains(p Point3) bool {
	return p.X >= b.MinX && p.X <= b.MaxX &&
		p.Y >= b.MinY && p.Y <= b.MaxY &&
		p.Z >= b.MinZ && p.Z <= b.MaxZ
}

// Merge returns the smallest box enclosing both b and o.
func (b AxisAlignedBoundingBox) Merge(o AxisAlignedBoundingBox) AxisAlignedBoundingBox {
	return AxisAlignedBoundingBox{
		MinX: math.Min(b.MinX, o.MinX),
		MinY: math.Min(b.MinY, o.MinY),
		MinZ: math.Min(b.MinZ, o.MinZ),
		MaxX: math.Max(b.MaxX, o.MaxX),
		MaxY: math.Max(b.MaxY, o.MaxY),
		MaxZ: math.Max(b.MaxZ, o.MaxZ),
	}
}

// Transform returns the box enclosing the eight corners of b after m.
func (b AxisAlignedBoundingBox) Transform(m Matrix4) AxisAlignedBoundingBox {
	if b.IsEmpty() {
		return b
	}
	var pts [8]Point3
	for i := range pts {
		p := b.Min()
		if i&1 != 0 {
			p.X = b.MaxX
		}
		if i&2 != 0 {
			p.Y = b.MaxY
		}
		if i&4 != 0 {
			p.Z = b.MaxZ
		}
		pts[i] = m.TransformPoint(p)
	}
	return AABBFromPoints(pts[:]...)
}
