package raster

import (
	"testing"

	"github.com/kadrey/headcast/pkg/la"
)

// singleTriangleSource is a minimal ModelSource: one triangle facing the
// camera, with a flat (200,150,100) texture and a flat +Z normal map.
type singleTriangleSource struct {
	verts [3]la.Vec3
	uvs   [3]la.Vec2
}

func (s *singleTriangleSource) NumFaces() int           { return 1 }
func (s *singleTriangleSource) Vertex(face, k int) la.Vec3 { return s.verts[k] }
func (s *singleTriangleSource) UV(face, k int) la.Vec2     { return s.uvs[k] }
func (s *singleTriangleSource) SampleTexture(u, v float32) la.Color {
	return la.RGB(200, 150, 100)
}
func (s *singleTriangleSource) SampleNormal(u, v float32) la.Vec3 {
	return la.V3(0, 0, 1)
}

func testTriangle() *singleTriangleSource {
	return &singleTriangleSource{
		verts: [3]la.Vec3{
			la.V3(-1, -1, 0),
			la.V3(1, -1, 0),
			la.V3(0, 1, 0),
		},
		uvs: [3]la.Vec2{
			la.V2(0, 0),
			la.V2(1, 0),
			la.V2(0.5, 1),
		},
	}
}

func TestRenderProducesVisiblePixels(t *testing.T) {
	conf := DefaultConfig(64, 64)
	conf.Eye = la.V3(0, 0, 5)
	fb := Render(conf, testTriangle())

	found := false
	for _, p := range fb.Color.Pixels {
		if p != (la.Color{}) {
			found = true
			break
		}
	}
	if !found {
		t.Fatal("Render produced an entirely black color buffer")
	}
}

func TestRenderDepthBufferWritten(t *testing.T) {
	conf := DefaultConfig(64, 64)
	conf.Eye = la.V3(0, 0, 5)
	fb := Render(conf, testTriangle())

	found := false
	for _, p := range fb.Depth.Pixels {
		if p.R != 0 {
			found = true
			break
		}
	}
	if !found {
		t.Fatal("Render left the depth buffer entirely zero")
	}
}

func TestRenderOcclusionPassRuns(t *testing.T) {
	conf := DefaultConfig(32, 32)
	conf.Eye = la.V3(0, 0, 5)
	conf.Occlusion = true
	// Should not panic, and should produce a framebuffer of the right size.
	fb := Render(conf, testTriangle())
	if fb.Width != 32 || fb.Height != 32 {
		t.Errorf("framebuffer size = %dx%d, want 32x32", fb.Width, fb.Height)
	}
}
