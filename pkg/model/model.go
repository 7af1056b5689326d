package model

import (
	"github.com/kadrey/headcast/pkg/la"
	"github.com/kadrey/headcast/pkg/raster"
)

// Model bundles a Mesh with the diffuse texture and tangent-space normal
// map the shader samples while shading it.
//
// Grounded on original_source/src/model.rs's Model{model, normal_map,
// texture}.
type Model struct {
	Mesh      *Mesh
	Texture   *raster.Image
	NormalMap *raster.Image
}

// NumFaces returns the triangle count.
func (m *Model) NumFaces() int { return m.Mesh.TriangleCount() }

// Vertex returns the position of corner k (0,1,2) of face.
func (m *Model) Vertex(face, k int) la.Vec3 {
	return m.Mesh.Vertices[m.Mesh.Faces[face].V[k]]
}

// UV returns the texture coordinate of corner k (0,1,2) of face.
func (m *Model) UV(face, k int) la.Vec2 {
	return m.Mesh.UVs[m.Mesh.Faces[face].T[k]]
}

// SampleTexture nearest-neighbor samples the diffuse texture.
func (m *Model) SampleTexture(u, v float32) la.Color {
	if m.Texture == nil {
		return la.Gray(150)
	}
	return raster.SampleTexture(m.Texture, u, v)
}

// SampleNormal nearest-neighbor samples the tangent-space normal map,
// applying the BGR->XYZ channel swap spec section 9 requires.
func (m *Model) SampleNormal(u, v float32) la.Vec3 {
	if m.NormalMap == nil {
		return la.V3(0, 0, 1)
	}
	return raster.SampleNormal(m.NormalMap, u, v)
}
