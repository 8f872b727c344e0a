package presentation

import (
	"fmt"

	"github.com/gogpu/g3d"
	"github.com/gogpu/g3d/pipeline"
)

// SceneCamera places a camera in a viewport and says which buffers are
// cleared before it renders.
type SceneCamera struct {
	Camera     g3d.Camera
	Viewport   pipeline.Viewport
	ClearColor bool
	ClearDepth bool
}

// NewSceneCamera returns a scene camera that clears color and depth.
func NewSceneCamera(c g3d.Camera, v pipeline.Viewport) SceneCamera {
	return SceneCamera{Camera: c, Viewport: v, ClearColor: true, ClearDepth: true}
}

// Projection returns the camera projection for the viewport's aspect
// ratio.
func (s SceneCamera) Projection() g3d.Matrix4 {
	return s.Camera.Projection(s.Viewport.AspectRatio())
}

// ViewProjection returns the combined world-to-clip matrix.
func (s SceneCamera) ViewProjection() g3d.Matrix4 {
	return s.Camera.ViewProjection(s.Viewport.AspectRatio())
}

// Apply sets the viewport of d and its color and depth clear bits. The
// stencil bit is kept.
func (s SceneCamera) Apply(d *pipeline.RenderStateDescriptor) {
	d.SetViewport(s.Viewport)
	mask := d.ClearMask &^ (pipeline.ClearColorBit | pipeline.ClearDepthBit)
	if s.ClearColor {
		mask |= pipeline.ClearColorBit
	}
	if s.ClearDepth {
		mask |= pipeline.ClearDepthBit
	}
	d.ClearMask = mask
}

func (s SceneCamera) String() string {
	return fmt.Sprintf("SceneCamera(viewport=%v, fov=%v)", s.Viewport, float64(s.Camera.FovY))
}
