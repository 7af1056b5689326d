package la

import (
	"math"
	"testing"
)

func TestVec3Normalize(t *testing.T) {
	tests := []struct {
		name string
		v    Vec3
	}{
		{"unit x", V3(1, 0, 0)},
		{"arbitrary", V3(3, 4, 0)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			n := tc.v.Normalize()
			if math.Abs(float64(n.Len())-1) > 1e-4 {
				t.Errorf("Normalize(%v).Len() = %v, want ~1", tc.v, n.Len())
			}
		})
	}
}

func TestVec3NormalizeZero(t *testing.T) {
	n := Zero3().Normalize()
	if math.IsNaN(float64(n.X)) || math.IsNaN(float64(n.Y)) || math.IsNaN(float64(n.Z)) {
		t.Fatalf("Normalize of zero vector produced NaN: %v", n)
	}
}

func TestMat4InverseIdentity(t *testing.T) {
	id := Identity4()
	inv := id.Inverse()
	if inv != id {
		t.Errorf("Inverse(Identity) = %v, want Identity", inv)
	}
}

func TestMat4InverseRoundTrip(t *testing.T) {
	m := Translate4(V3(1, 2, 3)).Mul(Mat4{
		{1, 0, 0, 0},
		{0, 2, 0, 0},
		{0, 0, 4, 0},
		{0, 0, 0, 1},
	})
	inv := m.Inverse()
	prod := m.Mul(inv)
	id := Identity4()
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if math.Abs(float64(prod[r][c]-id[r][c])) > 1e-3 {
				t.Fatalf("m * m.Inverse() = %v, want identity", prod)
			}
		}
	}
}

func TestMat4InverseZeroPivotPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic inverting a singular matrix")
		}
	}()
	var singular Mat4 // all zero: first pivot is zero
	singular.Inverse()
}

func TestLookAtViewMatrixFixedPoint(t *testing.T) {
	eye := V3(0.5, 0.5, 1)
	center := Zero3()
	m := LookAt(eye, center)
	got := m.MulPoint(center)
	want := Zero3()
	if math.Abs(float64(got.X-want.X)) > 1e-5 ||
		math.Abs(float64(got.Y-want.Y)) > 1e-5 ||
		math.Abs(float64(got.Z-want.Z)) > 1e-5 {
		t.Errorf("LookAt(%v, %v) maps center to %v, want %v", eye, center, got, want)
	}
}

func TestMat4TransposeInvolution(t *testing.T) {
	m := LookAt(V3(0, 0, 5), V3(0, 0, 0))
	if m.Transpose().Transpose() != m {
		t.Error("Transpose is not involutive")
	}
}

func TestPersp108Literal(t *testing.T) {
	v := Persp(5.0, V3(1, 1, 0))
	want := float32(1) / 1.08
	if math.Abs(float64(v.X-want)) > 1e-5 {
		t.Errorf("Persp(5, (1,1,0)).X = %v, want %v", v.X, want)
	}
}

func TestColorHighlightMonotonic(t *testing.T) {
	c := RGB(200, 200, 200)
	lo := c.Highlight(0)
	hi := c.Highlight(2)
	if hi.R <= lo.R {
		t.Errorf("Highlight should brighten with higher intensity: lo=%v hi=%v", lo, hi)
	}
}

func TestColorHighlightZeroIsIdentity(t *testing.T) {
	// p=0 gives exponent 1, i.e. (c/255)^1 * 255 == c: the curve is the
	// identity at zero lighting intensity.
	c := RGB(123, 45, 6)
	got := c.Highlight(0)
	if got != c {
		t.Errorf("Highlight(0) = %v, want identity %v", got, c)
	}
}
