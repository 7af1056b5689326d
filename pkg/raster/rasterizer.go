package raster

import "github.com/kadrey/headcast/pkg/la"

// Shader is the vertex/fragment capability the rasterizer drives.
//
// Grounded on original_source/src/shader.rs's Shader trait, and kept in
// the teacher's shader-as-capability idiom: pkg/render/rasterizer.go takes
// duck-typed MeshRenderer/BoundedMeshRenderer interfaces rather than a
// single monolithic renderer type, and Shader follows the same pattern.
type Shader interface {
	// Vertex runs the vertex stage for the k-th corner (0, 1, or 2) of
	// triangle face, returning its screen-space position. Implementations
	// stash whatever per-triangle varyings Fragment will need as fields on
	// themselves.
	Vertex(face, k int) la.Vec3
	// Fragment runs the fragment stage for one rasterized pixel, given its
	// barycentric coordinates relative to the triangle's three corners.
	// It is invoked unconditionally for every pixel in the triangle's
	// bounding box; rejecting pixels outside the triangle (negative
	// barycentric weights) is the fragment stage's own responsibility.
	Fragment(bary la.Vec3)
}

// barycentric computes the barycentric coordinates of point (px, py)
// relative to triangle (ax,ay), (bx,by), (cx,cy), using the cross-product
// method from original_source/src/la.rs's barycentric(). This is the
// formula spec's testable properties pin exactly; it differs from the
// teacher's dot-product/projection formula in pkg/render/rasterizer.go.
func barycentric(ax, ay, bx, by, cx, cy, px, py float32) la.Vec3 {
	u := la.V3(cx-ax, bx-ax, ax-px).Cross(la.V3(cy-ay, by-ay, ay-py))
	if u.Z == 0 {
		// Degenerate (zero-area) triangle: no valid barycentric weights.
		// Return a coordinate with a negative weight so every fragment
		// rejects it.
		return la.V3(-1, 1, 1)
	}
	return la.V3(1-(u.Y+u.X)/u.Z, u.Y/u.Z, u.X/u.Z)
}

// DrawTriangle rasterizes one triangle given its three already-computed
// screen-space vertex positions (z carries the depth-buffer value in
// [0,255]).
//
// Grounded on original_source/src/shader.rs's free function triangle():
// backface cull via the sign of the cross product's z component, an
// integer bounding box from rounded min/max, and Fragment invoked
// unconditionally for every pixel in that box.
func DrawTriangle(v1, v2, v3 la.Vec3, shader Shader) {
	e1 := v2.Sub(v1)
	e2 := v3.Sub(v1)
	n := e1.Cross(e2)
	if n.Z < 0 {
		return
	}

	x0 := int(la.Round32(min3(v1.X, v2.X, v3.X)))
	y0 := int(la.Round32(min3(v1.Y, v2.Y, v3.Y)))
	x1 := int(la.Round32(max3(v1.X, v2.X, v3.X)))
	y1 := int(la.Round32(max3(v1.Y, v2.Y, v3.Y)))

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			bc := barycentric(v1.X, v1.Y, v2.X, v2.Y, v3.X, v3.Y, float32(x), float32(y))
			shader.Fragment(bc)
		}
	}
}

func min3(a, b, c float32) float32 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func max3(a, b, c float32) float32 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}
