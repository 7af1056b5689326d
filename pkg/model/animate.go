package model

import "github.com/kadrey/headcast/pkg/la"

// Animate returns a displaced copy of mesh at time t, rippling each vertex
// radially in the horizontal (XZ) plane, with a pseudo-random per-vertex
// phase offset on the time ramp.
//
// Grounded on original_source/src/web.rs's animate(), which perturbs each
// vertex by a per-vertex hash of its own coordinates combined with a
// triangular time ramp. The original's hash is a chain of floating-point
// products (7919.0*x*7589.0*y*3433.0*z, taken mod 10) which is sensitive to
// floating-point rounding and iteration order; this port uses a fixed
// integer hash of the vertex index instead, so the displacement is
// deterministic and independent of platform float rounding, while
// preserving the original's intent: an orthogonal, optional mesh
// transformer a caller can apply per frame, not a step wired into the core
// render pipeline (spec section 9's characterization of the animation
// hook).
func Animate(mesh *Mesh, t float32) *Mesh {
	out := mesh.Clone()
	for i, v := range out.Vertices {
		h := vertexHash(i)
		ripple := triangleWave(t+h) * 0.05
		dir := la.V3(v.X, 0, v.Z).Normalize()
		out.Vertices[i] = v.Add(dir.Scale(ripple))
	}
	out.CalculateBounds()
	if len(out.Normals) == len(out.Vertices) {
		out.CalculateNormals()
	}
	return out
}

// vertexHash derives a stable pseudo-random phase in [0,1) from a vertex
// index, standing in for the original's coordinate-hash.
func vertexHash(i int) float32 {
	h := uint32(i)*2654435761 + 1
	return float32(h%1000) / 1000
}

// triangleWave returns a -1..1 triangular ramp with period 1, matching the
// shape of the original's time-based ripple.
func triangleWave(x float32) float32 {
	frac := x - float32(int(x))
	if frac < 0 {
		frac += 1
	}
	if frac < 0.5 {
		return 4*frac - 1
	}
	return 3 - 4*frac
}
