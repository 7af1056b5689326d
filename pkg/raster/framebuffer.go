package raster

import "github.com/kadrey/headcast/pkg/la"

// Framebuffer bundles the three image planes a frame produces: the shaded
// Color output, the Depth buffer, and the Light auxiliary buffer the
// occlusion pass writes into.
//
// Grounded on spec's Framebuffers data model: separate full Images rather
// than packed channels, matching original_source/src/tga.rs's use of a
// whole second tga::Image as the z-buffer.
type Framebuffer struct {
	Width, Height int
	Color         *Image
	Depth         *Image
	Light         *Image
}

// NewFramebuffer allocates a fresh Framebuffer, cleared to black/zero depth,
// for one frame. Framebuffers are not reused across frames (spec section 5
// Lifecycles): the scene driver allocates one per render call.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Color:  NewImage(width, height),
		Depth:  NewImage(width, height),
		Light:  NewImage(width, height),
	}
}

// DepthAt returns the depth value (0-255, higher is closer) stored at
// (x, y), or 0 if out of bounds — 0 is the farthest possible depth, so an
// out-of-bounds read never wins a depth test.
func (fb *Framebuffer) DepthAt(x, y int) uint8 {
	return fb.Depth.GetPixel(x, y).R
}

// TestAndSetDepth performs the pipeline's depth test: candidate passes only
// if it is strictly greater (closer) than the stored depth. On success it
// writes the new depth and reports true.
func (fb *Framebuffer) TestAndSetDepth(x, y int, candidate uint8) bool {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return false
	}
	if candidate <= fb.DepthAt(x, y) {
		return false
	}
	fb.Depth.SetPixel(x, y, la.Gray(candidate))
	return true
}
