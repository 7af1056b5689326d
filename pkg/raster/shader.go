package raster

import (
	"math"

	"github.com/kadrey/headcast/pkg/la"
)

// ModelSource is the subset of model.Model the shaders need, kept as an
// interface here (rather than importing pkg/model directly) to avoid a
// pkg/model <-> pkg/raster import cycle: pkg/model's Model already embeds
// *raster.Image textures, so pkg/raster cannot import pkg/model back.
type ModelSource interface {
	NumFaces() int
	Vertex(face, k int) la.Vec3
	UV(face, k int) la.Vec2
	SampleTexture(u, v float32) la.Color
	SampleNormal(u, v float32) la.Vec3
}

// BasicShader is the primary Phong diffuse+specular, texture+normal-map
// shader.
//
// Ported near-verbatim from original_source/src/shader.rs's BasicShader:
// the vertex stage projects a model-space vertex through the view matrix,
// the pipeline's persp() bias, and screen-space mapping, caching a flat
// face normal on the third corner; the fragment stage rejects
// outside-triangle and failed-depth-test pixels, samples texture/normal
// maps (or their toggled-off fallbacks), computes Phong diffuse+specular
// against a single directional light, and writes the highlighted color
// plus the new depth.
type BasicShader struct {
	Conf          Config
	LightDir      la.Vec3
	ViewMatrix    la.Mat4
	ViewMatrixInv la.Mat4 // inverse-transpose of ViewMatrix, for normal transforms
	Source        ModelSource
	FB            *Framebuffer

	varyingUV  la.Mat2x3
	varyingXYZ la.Mat3
	vertices   [3]la.Vec3
	faceNormal la.Vec3
}

// Vertex implements Shader.
func (s *BasicShader) Vertex(face, k int) la.Vec3 {
	v := s.Source.Vertex(face, k)
	uv := s.Source.UV(face, k)
	s.varyingUV.SetColumn(k, uv)

	viewSpace := s.ViewMatrix.MulPoint(v)
	projected := la.Persp(5.0, viewSpace)
	screen := la.ToScreenSpace(projected, s.FB.Width, s.FB.Height)

	s.vertices[k] = screen
	s.varyingXYZ.SetColumn(k, screen)

	if k == 2 {
		s.faceNormal = s.vertices[1].Sub(s.vertices[0]).Cross(s.vertices[2].Sub(s.vertices[1])).Normalize()
	}
	return screen
}

// Fragment implements Shader.
func (s *BasicShader) Fragment(bary la.Vec3) {
	if bary.X < 0 || bary.Y < 0 || bary.Z < 0 {
		return
	}

	xyz := s.varyingXYZ.MulBary(bary)
	x := int(la.Round32(xyz.X))
	y := int(la.Round32(xyz.Y))
	z := clampDepth(xyz.Z)

	if !s.FB.TestAndSetDepth(x, y, z) {
		return
	}

	uv := s.varyingUV.MulBary(bary)

	var texColor la.Color
	if s.Conf.Texture {
		texColor = s.Source.SampleTexture(uv.X, uv.Y)
	} else {
		texColor = la.Gray(150)
	}

	var normal la.Vec3
	if s.Conf.Normals {
		n := s.Source.SampleNormal(uv.X, uv.Y)
		normal = s.ViewMatrixInv.MulDir(n).Normalize()
	} else {
		normal = s.faceNormal
	}

	light := normal.Dot(s.LightDir)
	if light < 0 {
		light = 0
	}
	reflected := normal.Scale(2 * normal.Dot(s.LightDir)).Sub(s.LightDir).Normalize()
	specAngle := reflected.Z
	if specAngle < 0 {
		specAngle = 0
	}
	lightSpec := float32(math.Pow(float64(specAngle), 23))

	var highlight float32
	if s.Conf.DiffuseLight {
		highlight += light
	}
	if s.Conf.SpecularLight {
		highlight += lightSpec * 0.9
	}

	s.FB.Color.SetPixel(x, y, texColor.Highlight(highlight))
}

func clampDepth(z float32) uint8 {
	r := la.Round32(z)
	if r < 0 {
		return 0
	}
	if r > 255 {
		return 255
	}
	return uint8(r)
}
