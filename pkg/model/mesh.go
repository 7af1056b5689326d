// Package model provides mesh loading (OBJ, GLTF) and the textured Model
// type the shaders sample from.
package model

import "github.com/kadrey/headcast/pkg/la"

// Face is one triangle: three vertex indices and three UV indices, each
// into the Mesh's parallel Vertices/UVs arrays.
//
// Grounded on spec's Mesh data model and on
// original_source/src/model.rs's Wavefront (vertices, texture_coord,
// normals, faces: Vec<([i32;3],[i32;3])>) — an ordinary OBJ face carries
// independent v/vt index streams per corner, which the teacher's combined
// MeshVertex{Position,Normal,UV} (pkg/models/mesh.go) cannot represent, so
// this type departs from the teacher's layout in favor of the original's.
// The shading pipeline never consults per-vertex file normals (it always
// either samples a normal map or falls back to a per-triangle face normal
// computed at render time), matching original_source's own parser, which
// discards each face's third (vn) index.
type Face struct {
	V [3]int
	T [3]int
}

// Mesh is a triangle mesh stored as parallel attribute arrays plus an
// index list, the shape spec.md requires.
type Mesh struct {
	Name      string
	Vertices  []la.Vec3
	UVs       []la.Vec2
	Normals   []la.Vec3 // OBJ vn lines in file order, or per-vertex normals (GLTF, CalculateNormals); may be empty
	Faces     []Face
	BoundsMin la.Vec3
	BoundsMax la.Vec3
}

// NewMesh creates an empty, named mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{Name: name}
}

// VertexCount returns the number of distinct vertex positions.
func (m *Mesh) VertexCount() int { return len(m.Vertices) }

// TriangleCount returns the number of triangular faces.
func (m *Mesh) TriangleCount() int { return len(m.Faces) }

// CalculateBounds computes the axis-aligned bounding box over Vertices.
func (m *Mesh) CalculateBounds() {
	if len(m.Vertices) == 0 {
		return
	}
	min, max := m.Vertices[0], m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		min = minVec(min, v)
		max = maxVec(max, v)
	}
	m.BoundsMin, m.BoundsMax = min, max
}

func minVec(a, b la.Vec3) la.Vec3 {
	return la.V3(fMin(a.X, b.X), fMin(a.Y, b.Y), fMin(a.Z, b.Z))
}

func maxVec(a, b la.Vec3) la.Vec3 {
	return la.V3(fMax(a.X, b.X), fMax(a.Y, b.Y), fMax(a.Z, b.Z))
}

func fMin(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func fMax(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// Center returns the midpoint of the bounding box.
func (m *Mesh) Center() la.Vec3 {
	return m.BoundsMin.Add(m.BoundsMax).Scale(0.5)
}

// Size returns the bounding box dimensions.
func (m *Mesh) Size() la.Vec3 {
	return m.BoundsMax.Sub(m.BoundsMin)
}

// CalculateNormals computes per-vertex smooth normals by accumulating each
// adjoining triangle's face normal and normalizing, the way the teacher's
// CalculateSmoothNormals does (pkg/models/mesh.go) — adapted here to the
// parallel-array Mesh, where Normals is indexed exactly like Vertices
// rather than being baked per-corner.
func (m *Mesh) CalculateNormals() {
	m.Normals = make([]la.Vec3, len(m.Vertices))
	for _, f := range m.Faces {
		v0, v1, v2 := m.Vertices[f.V[0]], m.Vertices[f.V[1]], m.Vertices[f.V[2]]
		n := v1.Sub(v0).Cross(v2.Sub(v0))
		m.Normals[f.V[0]] = m.Normals[f.V[0]].Add(n)
		m.Normals[f.V[1]] = m.Normals[f.V[1]].Add(n)
		m.Normals[f.V[2]] = m.Normals[f.V[2]].Add(n)
	}
	for i := range m.Normals {
		m.Normals[i] = m.Normals[i].Normalize()
	}
}

// Transform applies a matrix to every vertex position and, if present,
// every normal (as a direction, using the matrix's rotation part).
func (m *Mesh) Transform(mat la.Mat4) {
	for i := range m.Vertices {
		m.Vertices[i] = mat.MulPoint(m.Vertices[i])
	}
	for i := range m.Normals {
		m.Normals[i] = mat.MulDir(m.Normals[i]).Normalize()
	}
	m.CalculateBounds()
}

// Clone returns a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	c := &Mesh{
		Name:      m.Name,
		Vertices:  append([]la.Vec3(nil), m.Vertices...),
		UVs:       append([]la.Vec2(nil), m.UVs...),
		Normals:   append([]la.Vec3(nil), m.Normals...),
		Faces:     append([]Face(nil), m.Faces...),
		BoundsMin: m.BoundsMin,
		BoundsMax: m.BoundsMax,
	}
	return c
}
