package raster

import (
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG decoder, for textures shipped alongside GLTF assets
	_ "image/png"  // register PNG decoder
	"os"
	"path/filepath"
	"strings"

	"github.com/kadrey/headcast/pkg/la"
)

// LoadTexture loads a diffuse or normal-map texture from path.
//
// Grounded on pkg/render/texture.go's LoadTexture: .tga files go through
// this module's own codec (the domain format spec.md specifies); any other
// extension falls back to the standard library's image.Decode, exactly the
// way the teacher does for its png/jpg-based textures.
func LoadTexture(path string) (*Image, error) {
	if strings.EqualFold(filepath.Ext(path), ".tga") {
		return LoadTGA(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open texture: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return fromGoImage(img), nil
}

func fromGoImage(img image.Image) *Image {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	out := NewImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := img.At(bounds.Min.X+x, bounds.Min.Y+y)
			r, g, b, _ := c.RGBA()
			out.SetPixel(x, y, la.Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)})
		}
	}
	return out
}

// SampleTexture nearest-neighbor samples img at UV coordinates (u, v),
// matching original_source/src/model.rs's Model::texture:
// pixel_at(round(u*W), round(v*H)).
func SampleTexture(img *Image, u, v float32) la.Color {
	x := int(la.Round32(u * float32(img.Width)))
	y := int(la.Round32(v * float32(img.Height)))
	return img.GetPixel(x, y)
}

// SampleNormal nearest-neighbor samples a tangent-space normal map at UV
// coordinates (u, v), applying the BGR->XYZ channel swap and mapping
// [0,255] to [-1,1], matching original_source/src/model.rs's Model::normal:
//
//	Vec3f((n.2/255*2)-1, (n.1/255*2)-1, (n.0/255*2)-1).normalize()
func SampleNormal(img *Image, u, v float32) la.Vec3 {
	c := SampleTexture(img, u, v)
	n := la.V3(
		float32(c.B)/255*2-1,
		float32(c.G)/255*2-1,
		float32(c.R)/255*2-1,
	)
	return n.Normalize()
}
