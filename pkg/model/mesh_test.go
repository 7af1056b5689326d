package model

import (
	"math"
	"testing"

	"github.com/kadrey/headcast/pkg/la"
)

func TestCalculateBounds(t *testing.T) {
	m := NewMesh("box")
	m.Vertices = []la.Vec3{
		la.V3(-1, -2, -3),
		la.V3(4, 5, 6),
		la.V3(0, 0, 0),
	}
	m.CalculateBounds()
	if m.BoundsMin != la.V3(-1, -2, -3) {
		t.Errorf("BoundsMin = %v, want {-1 -2 -3}", m.BoundsMin)
	}
	if m.BoundsMax != la.V3(4, 5, 6) {
		t.Errorf("BoundsMax = %v, want {4 5 6}", m.BoundsMax)
	}
}

func TestCenterAndSize(t *testing.T) {
	m := NewMesh("box")
	m.Vertices = []la.Vec3{la.V3(0, 0, 0), la.V3(2, 4, 6)}
	m.CalculateBounds()
	if m.Center() != la.V3(1, 2, 3) {
		t.Errorf("Center = %v, want {1 2 3}", m.Center())
	}
	if m.Size() != la.V3(2, 4, 6) {
		t.Errorf("Size = %v, want {2 4 6}", m.Size())
	}
}

func TestCalculateNormalsUnitLength(t *testing.T) {
	m := NewMesh("tri")
	m.Vertices = []la.Vec3{la.V3(0, 0, 0), la.V3(1, 0, 0), la.V3(0, 1, 0)}
	m.Faces = []Face{{V: [3]int{0, 1, 2}}}
	m.CalculateNormals()
	for i, n := range m.Normals {
		if math.Abs(float64(n.Len())-1) > 1e-4 {
			t.Errorf("Normals[%d].Len() = %v, want ~1", i, n.Len())
		}
	}
}

func TestAnimateProducesDeterministicDisplacement(t *testing.T) {
	m := NewMesh("plane")
	m.Vertices = []la.Vec3{la.V3(1, 0, 0), la.V3(0, 0, 1)}
	a := Animate(m, 0.25)
	b := Animate(m, 0.25)
	if a.Vertices[0] != b.Vertices[0] || a.Vertices[1] != b.Vertices[1] {
		t.Error("Animate should be deterministic for the same mesh and time")
	}
	if a.Vertices[0] == m.Vertices[0] {
		t.Error("Animate should displace at least one vertex")
	}
}
