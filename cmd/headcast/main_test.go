package main

import (
	"math"
	"testing"

	"github.com/kadrey/headcast/pkg/la"
	"github.com/kadrey/headcast/pkg/model"
)

func TestCenterAndScaleNormalizesBounds(t *testing.T) {
	m := model.NewMesh("box")
	m.Vertices = []la.Vec3{
		la.V3(0, 0, 0),
		la.V3(10, 20, 0),
		la.V3(10, 0, 40),
	}
	centerAndScale(m)

	if m.Center().Len() > 1e-4 {
		t.Errorf("Center() = %v, want ~origin after centering", m.Center())
	}
	size := m.Size()
	maxDim := math.Max(float64(size.X), math.Max(float64(size.Y), float64(size.Z)))
	if math.Abs(maxDim-2) > 1e-4 {
		t.Errorf("largest dimension after scaling = %v, want 2", maxDim)
	}
}

func TestCenterAndScaleDegenerateMeshNoPanic(t *testing.T) {
	m := model.NewMesh("point")
	m.Vertices = []la.Vec3{la.V3(3, 3, 3)}
	centerAndScale(m)
	if m.Vertices[0] != la.V3(3, 3, 3) {
		t.Errorf("a zero-extent mesh should be left untouched, got %v", m.Vertices[0])
	}
}
