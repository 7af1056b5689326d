package raster

import "github.com/kadrey/headcast/pkg/la"

// Config is the scene driver's external configuration, passed explicitly
// into each frame's render call rather than held as ambient/global state
// (spec section 9).
//
// Grounded on original_source/src/shader.rs's ShaderConf (diff_light,
// spec_light, texture, normals) extended with the fields
// original_source/src/web.rs's Msg enum confirms exist in the fuller
// implementation (Occl, Zbuff) plus the camera/light placement fields spec
// section 6's External Interfaces names (eye, pan, light_dir_world,
// image_size).
type Config struct {
	DiffuseLight  bool
	SpecularLight bool
	Texture       bool
	Normals       bool
	Occlusion     bool
	ShowZBuffer   bool

	ImageWidth, ImageHeight int
	Eye                     la.Vec3
	Pan                     la.Vec3
	LightDirWorld           la.Vec3
}

// DefaultConfig returns the configuration original_source/src/shader.rs's
// ShaderConf::new() starts from: diffuse, specular, texture and normal
// mapping on; the occlusion pass and the z-buffer view off.
func DefaultConfig(width, height int) Config {
	return Config{
		DiffuseLight:  true,
		SpecularLight: true,
		Texture:       true,
		Normals:       true,
		Occlusion:     false,
		ShowZBuffer:   false,
		ImageWidth:    width,
		ImageHeight:   height,
		Eye:           la.V3(0, 0, 5),
		Pan:           la.Zero3(),
		LightDirWorld: la.V3(1, 0, 0.5),
	}
}
