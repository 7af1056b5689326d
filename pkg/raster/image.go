// Package raster implements the pipeline's rasterizer: a row-major Image
// type, a Framebuffer bundling color/depth/light planes, the triangle
// rasterizer, and the shader implementations that run over it.
package raster

import (
	"image"
	"image/color"
	"math"
	"os"

	"github.com/kadrey/headcast/pkg/la"
	"github.com/kadrey/headcast/pkg/tga"
)

// Image is a dense row-major grid of Colors.
//
// Grounded on the teacher's render.Framebuffer (pkg/render/framebuffer.go):
// same bounds-checked Set/Get, same flat row-major slice storage. Out of
// bounds reads return black rather than erroring, matching spec's
// silently-recoverable pixel-level condition policy.
type Image struct {
	Width, Height int
	Pixels        []la.Color
}

// NewImage creates a black image of the given dimensions.
func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pixels: make([]la.Color, width*height),
	}
}

// Clear fills the image with a solid color.
func (img *Image) Clear(c la.Color) {
	for i := range img.Pixels {
		img.Pixels[i] = c
	}
}

// SetPixel sets the pixel at (x, y). Out-of-bounds writes are silently
// skipped.
func (img *Image) SetPixel(x, y int, c la.Color) {
	if x < 0 || x >= img.Width || y < 0 || y >= img.Height {
		return
	}
	img.Pixels[y*img.Width+x] = c
}

// GetPixel returns the pixel at (x, y), or black if out of bounds.
func (img *Image) GetPixel(x, y int) la.Color {
	if x < 0 || x >= img.Width || y < 0 || y >= img.Height {
		return la.Color{}
	}
	return img.Pixels[y*img.Width+x]
}

// ApplyGamma applies a per-channel power curve c' = (c/255)^gamma * 255 to
// every pixel, matching the scene driver's post-process step (spec
// gamma=1.5, original_source/src/web.rs's apply_gamma call).
func (img *Image) ApplyGamma(gamma float32) {
	var lut [256]uint8
	for i := range lut {
		lut[i] = gammaChannel(uint8(i), gamma)
	}
	for i, p := range img.Pixels {
		img.Pixels[i] = la.Color{R: lut[p.R], G: lut[p.G], B: lut[p.B]}
	}
}

func gammaChannel(c uint8, gamma float32) uint8 {
	v := math.Pow(float64(c)/255.0, float64(gamma)) * 255.0
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return uint8(math.Round(v))
}

// RawRGBA returns the image as a flat RGBA byte buffer (alpha fixed at
// 255), matching the scene driver's "raw pixel output" interface
// (original_source/src/web.rs calls get_raw_bytes() and hands the result to
// an HTML canvas's ImageData).
func (img *Image) RawRGBA() []byte {
	out := make([]byte, 0, len(img.Pixels)*4)
	for _, p := range img.Pixels {
		out = append(out, p.R, p.G, p.B, 255)
	}
	return out
}

// ToGoImage converts the image to a standard library image.RGBA, for saving
// via image/png or similar, the way the teacher's Framebuffer.ToImage does.
func (img *Image) ToGoImage() *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			p := img.GetPixel(x, y)
			out.SetRGBA(x, y, color.RGBA{R: p.R, G: p.G, B: p.B, A: 255})
		}
	}
	return out
}

// SaveTGA writes the image to path using the 24-bit TGA codec.
func (img *Image) SaveTGA(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return tga.Encode(f, img.Width, img.Height, img.Pixels)
}

// LoadTGA reads a 24-bit or 32-bit BGR(A) TGA file into an Image.
func LoadTGA(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	w, h, pixels, err := tga.Decode(f)
	if err != nil {
		return nil, err
	}
	return &Image{Width: w, Height: h, Pixels: pixels}, nil
}
