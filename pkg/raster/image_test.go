package raster

import (
	"testing"

	"github.com/kadrey/headcast/pkg/la"
)

func TestImageSetGetPixelBounds(t *testing.T) {
	img := NewImage(4, 4)
	img.SetPixel(1, 1, la.RGB(10, 20, 30))
	if got := img.GetPixel(1, 1); got != la.RGB(10, 20, 30) {
		t.Errorf("GetPixel(1,1) = %v, want {10 20 30}", got)
	}
	if got := img.GetPixel(-1, 0); got != (la.Color{}) {
		t.Errorf("out-of-bounds GetPixel = %v, want black", got)
	}
	// Out-of-bounds writes should not panic and should not be observable.
	img.SetPixel(100, 100, la.RGB(1, 2, 3))
}

func TestApplyGammaIdentityAtOne(t *testing.T) {
	img := NewImage(2, 2)
	img.SetPixel(0, 0, la.RGB(123, 45, 6))
	img.ApplyGamma(1.0)
	if got := img.GetPixel(0, 0); got != la.RGB(123, 45, 6) {
		t.Errorf("ApplyGamma(1.0) changed a pixel: got %v, want {123 45 6}", got)
	}
}

func TestRawRGBALength(t *testing.T) {
	img := NewImage(3, 2)
	raw := img.RawRGBA()
	if len(raw) != 3*2*4 {
		t.Errorf("RawRGBA length = %d, want %d", len(raw), 3*2*4)
	}
	// Alpha channel is always opaque.
	if raw[3] != 255 {
		t.Errorf("alpha channel = %d, want 255", raw[3])
	}
}
