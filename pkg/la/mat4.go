package la

import "math"

// Mat4 is a 4x4 matrix stored row-major, m[row][col].
//
// This mirrors the shape of the original source's const-generic
// Matrix<4,4>; Go has no value generics for array length, so distinct named
// types (Mat3, Mat4, Mat2x3) stand in for each fixed shape the pipeline
// needs instead of one generic Matrix<X,Y>.
type Mat4 [4][4]float32

// Identity4 returns the 4x4 identity matrix.
func Identity4() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Translate4 creates a translation matrix for v.
func Translate4(v Vec3) Mat4 {
	m := Identity4()
	m[0][3] = v.X
	m[1][3] = v.Y
	m[2][3] = v.Z
	return m
}

// Mul multiplies two matrices: a * b.
func (a Mat4) Mul(b Mat4) Mat4 {
	var m Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += a[row][k] * b[k][col]
			}
			m[row][col] = sum
		}
	}
	return m
}

// MulPoint transforms v as a homogeneous point (w=1) and divides by the
// resulting w, exactly as the original source's look_at() does.
func (m Mat4) MulPoint(v Vec3) Vec3 {
	x := m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z + m[0][3]
	y := m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z + m[1][3]
	z := m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z + m[2][3]
	w := m[3][0]*v.X + m[3][1]*v.Y + m[3][2]*v.Z + m[3][3]
	return Vec3{x / w, y / w, z / w}
}

// MulDir transforms v as a homogeneous direction (w=0); no perspective
// divide is meaningful for a direction, so none is applied.
func (m Mat4) MulDir(v Vec3) Vec3 {
	x := m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z
	y := m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z
	z := m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z
	return Vec3{x, y, z}
}

// Transpose returns the transposed matrix.
func (m Mat4) Transpose() Mat4 {
	var t Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			t[col][row] = m[row][col]
		}
	}
	return t
}

// Inverse returns the inverse of m via in-place Gauss-Jordan elimination on
// an augmented matrix, with no partial pivoting.
//
// A zero pivot panics rather than falling back to the identity: the
// rasterizer's core transform math is fault-intolerant by design, a
// singular view matrix is a caller bug, not a recoverable pixel-level
// condition.
func (m Mat4) Inverse() Mat4 {
	rows := gaussJordanInverse(m[:], 4)
	var out Mat4
	for r := 0; r < 4; r++ {
		copy(out[r][:], rows[r])
	}
	return out
}

// gaussJordanInverse inverts an n x n matrix given as n rows of n float32
// each, returning the inverse as n rows of n float32. It panics if any pivot
// is zero.
func gaussJordanInverse(m [][4]float32, n int) [][]float32 {
	aug := make([][]float32, n)
	for r := 0; r < n; r++ {
		aug[r] = make([]float32, 2*n)
		copy(aug[r], m[r][:n])
		aug[r][n+r] = 1
	}

	for y := 0; y < n; y++ {
		if aug[y][y] == 0 {
			panic("la: zero pivot in Gauss-Jordan inverse")
		}
		for x := 0; x < n; x++ {
			if x == y {
				continue
			}
			ratio := aug[x][y] / aug[y][y]
			for k := 0; k < 2*n; k++ {
				aug[x][k] -= ratio * aug[y][k]
			}
		}
	}

	res := make([][]float32, n)
	for y := 0; y < n; y++ {
		res[y] = make([]float32, n)
		for x := 0; x < n; x++ {
			res[y][x] = aug[y][n+x] / aug[y][y]
		}
	}
	return res
}

// LookAt builds the view matrix for a camera at eye looking toward center:
// center is mapped to the origin and eye onto the +Z axis, so the camera
// looks down -Z.
//
// Grounded on original_source/src/la.rs get_look_at: up is fixed to world
// up, and the basis is built from z = normalize(eye-center) rather than
// center-eye, matching the original's right-handed convention exactly.
func LookAt(eye, center Vec3) Mat4 {
	up := Up()
	z := eye.Sub(center).Normalize()
	x := up.Cross(z).Normalize()
	y := z.Cross(x).Normalize()

	rot := Mat4{
		{x.X, x.Y, x.Z, 0},
		{y.X, y.Y, y.Z, 0},
		{z.X, z.Y, z.Z, 0},
		{0, 0, 0, 1},
	}
	tr := Translate4(Vec3{-center.X, -center.Y, -center.Z})
	return rot.Mul(tr)
}

// Persp applies the pipeline's perspective transform: each component of v is
// divided by (1.08 - v.Z/c). The 1.08 bias (rather than 1.0) is load-bearing
// and intentional: it is what the original source settled on after an
// earlier 1.0 revision, and it is reproduced here unchanged.
func Persp(c float32, v Vec3) Vec3 {
	denom := 1.08 - v.Z/c
	return Vec3{v.X / denom, v.Y / denom, v.Z / denom}
}

// ToScreenSpace maps clip-space coordinates in [-1,1] to pixel coordinates
// in [0,width-1]x[0,height-1], with Z mapped to a [0,255] depth value.
func ToScreenSpace(v Vec3, width, height int) Vec3 {
	x := (v.X + 1) * float32(width-1) / 2
	y := (v.Y + 1) * float32(height-1) / 2
	z := ((v.Z + 1) / 2) * 255
	return Vec3{x, y, z}
}

// Round32 rounds a float32 to the nearest integer, half away from zero,
// matching Rust's f32::round used throughout the original source.
func Round32(f float32) float32 {
	return float32(math.Round(float64(f)))
}
