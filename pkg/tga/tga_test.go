package tga

import (
	"bytes"
	"testing"

	"github.com/kadrey/headcast/pkg/la"
)

func TestRoundTrip(t *testing.T) {
	const w, h = 4, 3
	pixels := make([]la.Color, w*h)
	for i := range pixels {
		pixels[i] = la.Color{R: uint8(i * 7), G: uint8(i * 11), B: uint8(i * 13)}
	}

	var buf bytes.Buffer
	if err := Encode(&buf, w, h, pixels); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	gotW, gotH, got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if gotW != w || gotH != h {
		t.Fatalf("Decode dims = %dx%d, want %dx%d", gotW, gotH, w, h)
	}
	for i := range pixels {
		if got[i] != pixels[i] {
			t.Errorf("pixel %d = %v, want %v", i, got[i], pixels[i])
		}
	}
}

func TestEncodePixelCountMismatch(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(&buf, 4, 4, make([]la.Color, 3))
	if err == nil {
		t.Fatal("expected error for mismatched pixel count")
	}
}
