package raster

import (
	"math"
	"testing"

	"github.com/kadrey/headcast/pkg/la"
)

func TestBarycentric(t *testing.T) {
	tests := []struct {
		name     string
		px, py   float32
		expected la.Vec3
	}{
		{"vertex 0", 0, 0, la.V3(1, 0, 0)},
		{"vertex 1", 1, 0, la.V3(0, 1, 0)},
		{"vertex 2", 0, 1, la.V3(0, 0, 1)},
		{"centroid", 1.0 / 3, 1.0 / 3, la.V3(1.0/3, 1.0/3, 1.0/3)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			bc := barycentric(0, 0, 1, 0, 0, 1, tc.px, tc.py)
			if math.Abs(float64(bc.X-tc.expected.X)) > 0.001 ||
				math.Abs(float64(bc.Y-tc.expected.Y)) > 0.001 ||
				math.Abs(float64(bc.Z-tc.expected.Z)) > 0.001 {
				t.Errorf("barycentric(%v, %v) = %v, want %v", tc.px, tc.py, bc, tc.expected)
			}
		})
	}

	t.Run("outside triangle", func(t *testing.T) {
		bc := barycentric(0, 0, 1, 0, 0, 1, -1, -1)
		if bc.X >= 0 && bc.Y >= 0 && bc.Z >= 0 {
			t.Error("point outside triangle should have a negative barycentric coordinate")
		}
	})

	t.Run("partition of unity", func(t *testing.T) {
		bc := barycentric(0, 0, 4, 0, 0, 4, 1, 1)
		sum := bc.X + bc.Y + bc.Z
		if math.Abs(float64(sum-1)) > 1e-4 {
			t.Errorf("barycentric weights sum to %v, want 1", sum)
		}
	})
}

// mockShader counts how many fragments the rasterizer invokes.
type mockShader struct {
	calls int
}

func (m *mockShader) Vertex(face, k int) la.Vec3 { return la.Vec3{} }
func (m *mockShader) Fragment(bary la.Vec3)      { m.calls++ }

func TestDrawTriangleFragmentInvokedUnconditionally(t *testing.T) {
	sh := &mockShader{}
	// A small triangle with CCW winding in screen space (n.z >= 0, so it
	// is not backface-culled).
	DrawTriangle(la.V3(0, 0, 0), la.V3(4, 0, 0), la.V3(0, 4, 0), sh)
	if sh.calls == 0 {
		t.Fatal("expected Fragment to be invoked for the triangle's bounding box")
	}
	// Bounding box is 5x5; Fragment runs for every pixel in it, not just
	// the ones inside the triangle.
	if sh.calls != 25 {
		t.Errorf("Fragment invoked %d times, want 25 (5x5 bbox)", sh.calls)
	}
}

func TestDrawTriangleBackfaceCulled(t *testing.T) {
	sh := &mockShader{}
	// CW winding (negative z cross product) should be culled entirely.
	DrawTriangle(la.V3(0, 0, 0), la.V3(0, 4, 0), la.V3(4, 0, 0), sh)
	if sh.calls != 0 {
		t.Errorf("expected backface triangle to be culled, got %d fragment calls", sh.calls)
	}
}

func TestFramebufferDepthHigherIsCloser(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	if !fb.TestAndSetDepth(1, 1, 100) {
		t.Fatal("first write to empty depth buffer should pass")
	}
	if fb.TestAndSetDepth(1, 1, 50) {
		t.Error("a farther (lower) depth should not overwrite a closer one")
	}
	if !fb.TestAndSetDepth(1, 1, 200) {
		t.Error("a closer (higher) depth should pass the test")
	}
	if fb.DepthAt(1, 1) != 200 {
		t.Errorf("DepthAt = %d, want 200", fb.DepthAt(1, 1))
	}
}
