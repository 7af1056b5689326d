package la

// Mat3 is a 3x3 matrix stored row-major, m[row][col].
//
// In the rasterizer it is reused as the per-triangle XYZ varying matrix:
// row 0/1/2 hold the three screen-space x/y/z values of the triangle's
// vertices, one column per vertex, exactly as
// original_source/src/shader.rs stores varying_xy.
type Mat3 [3][3]float32

// SetColumn writes the column-vector v into column c (c in 0..2), one
// vertex's worth of x/y/z at a time, mirroring BasicShader.vertex's
// varying_xy[0..2][vertex] = ss.{0,1,2} assignment.
func (m *Mat3) SetColumn(c int, v Vec3) {
	m[0][c] = v.X
	m[1][c] = v.Y
	m[2][c] = v.Z
}

// MulBary multiplies the matrix by a barycentric weight column, producing
// the interpolated x/y/z for that point.
func (m Mat3) MulBary(bary Vec3) Vec3 {
	w := [3]float32{bary.X, bary.Y, bary.Z}
	var out Vec3
	out.X = m[0][0]*w[0] + m[0][1]*w[1] + m[0][2]*w[2]
	out.Y = m[1][0]*w[0] + m[1][1]*w[1] + m[1][2]*w[2]
	out.Z = m[2][0]*w[0] + m[2][1]*w[1] + m[2][2]*w[2]
	return out
}

// Mat2x3 is a 2x3 matrix (2 rows, 3 columns) stored row-major.
//
// Used as the per-triangle UV varying matrix: row 0 holds the three u
// values, row 1 the three v values, one column per vertex — the shape
// original_source/src/shader.rs calls Matrix<3,2>.
type Mat2x3 [2][3]float32

// SetColumn writes uv into column c (c in 0..2).
func (m *Mat2x3) SetColumn(c int, uv Vec2) {
	m[0][c] = uv.X
	m[1][c] = uv.Y
}

// MulBary multiplies the matrix by a barycentric weight column, producing
// the interpolated UV for that point.
func (m Mat2x3) MulBary(bary Vec3) Vec2 {
	w := [3]float32{bary.X, bary.Y, bary.Z}
	return Vec2{
		m[0][0]*w[0] + m[0][1]*w[1] + m[0][2]*w[2],
		m[1][0]*w[0] + m[1][1]*w[1] + m[1][2]*w[2],
	}
}
