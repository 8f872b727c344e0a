package pipeline

import "fmt"

// Viewport is the window-space rectangle the rasterizer maps clip space to.
type Viewport struct {
	X, Y          int32
	Width, Height uint32
}

// ViewportAt returns a viewport anchored at the origin.
func ViewportAt(width, height uint32) Viewport {
	return Viewport{Width: width, Height: height}
}

// AspectRatio returns width/height, or 1 when the height is zero.
func (v Viewport) AspectRatio() float64 {
	if v.Height == 0 {
		return 1
	}
	return float64(v.Width) / float64(v.Height)
}

// Contains reports whether the pixel (px, py) lies inside the viewport.
// The right and top edges are exclusive.
func (v Viewport) Contains(px, py int32) bool {
	return contains(v.X, v.Y, v.Width, v.Height, px, py)
}

// IsEmpty reports whether the viewport covers no pixels.
func (v Viewport) IsEmpty() bool { return v.Width == 0 || v.Height == 0 }

func (v Viewport) String() string {
	return fmt.Sprintf("Viewport(%d,%d,%d,%d)", v.X, v.Y, v.Width, v.Height)
}

// ScissorBox is the rectangle outside which fragments are discarded when
// the scissor test is enabled. A zero-sized box is legal and discards
// everything.
type ScissorBox struct {
	X, Y          int32
	Width, Height uint32
}

// Contains reports whether the pixel (px, py) passes the scissor test.
func (s ScissorBox) Contains(px, py int32) bool {
	return contains(s.X, s.Y, s.Width, s.Height, px, py)
}

// IsEmpty reports whether the box covers no pixels.
func (s ScissorBox) IsEmpty() bool { return s.Width == 0 || s.Height == 0 }

func (s ScissorBox) String() string {
	return fmt.Sprintf("ScissorBox(%d,%d,%d,%d)", s.X, s.Y, s.Width, s.Height)
}

func contains(x, y int32, w, h uint32, px, py int32) bool {
	// int64 keeps x+w from overflowing.
	return int64(px) >= int64(x) && int64(px) < int64(x)+int64(w) &&
		int64(py) >= int64(y) && int64(py) < int64(y)+int64(h)
}
