package raster

import "github.com/kadrey/headcast/pkg/la"

// Render runs one full frame of the pipeline: view-matrix setup, the
// BasicShader pass over every triangle in source, the optional occlusion
// pass, and the final gamma curve — a fresh Framebuffer is allocated and
// returned each call (spec section 5 Lifecycles: no persistent state
// between frames).
//
// Grounded on original_source/src/web.rs's render(): it builds lookat and
// lookat_i = lookat.inverse().transpose(), derives the light direction,
// rasterizes every face of the model through BasicShader, optionally
// rasterizes the occlusion quad through a second shader, and finishes with
// out_texture.apply_gamma(1.5) before handing back the raw pixel buffer.
func Render(conf Config, source ModelSource) *Framebuffer {
	fb := NewFramebuffer(conf.ImageWidth, conf.ImageHeight)

	viewMatrix := la.LookAt(conf.Eye.Add(conf.Pan), conf.Pan)
	viewMatrixInv := viewMatrix.Inverse().Transpose()

	// The configured light direction is transformed by the view matrix and
	// normalized, with no perspective divide: see DESIGN.md's Open
	// Question decision on this point (a direction vector has no
	// meaningful w-divide, unlike a point).
	lightDir := viewMatrix.MulDir(conf.LightDirWorld).Normalize()

	shader := &BasicShader{
		Conf:          conf,
		LightDir:      lightDir,
		ViewMatrix:    viewMatrix,
		ViewMatrixInv: viewMatrixInv,
		Source:        source,
		FB:            fb,
	}

	for face := 0; face < source.NumFaces(); face++ {
		var v [3]la.Vec3
		for k := 0; k < 3; k++ {
			v[k] = shader.Vertex(face, k)
		}
		DrawTriangle(v[0], v[1], v[2], shader)
	}

	if conf.Occlusion {
		DrawOcclusionQuad(&OcclusionShader{FB: fb})
	}

	fb.Color.ApplyGamma(1.5)

	return fb
}
