package raster

import (
	"bytes"
	"strings"
	"testing"

	"github.com/kadrey/headcast/pkg/la"
)

func TestWriteANSIProducesOneLinePerTwoRows(t *testing.T) {
	img := NewImage(4, 4)
	img.Clear(la.RGB(10, 20, 30))

	var buf bytes.Buffer
	if err := WriteANSI(&buf, img); err != nil {
		t.Fatalf("WriteANSI: %v", err)
	}
	lines := strings.Count(buf.String(), "\r\n")
	if lines != 2 {
		t.Errorf("line count = %d, want 2 (4 rows / 2 per cell)", lines)
	}
}

func TestWriteANSIOddHeightDropsLastRow(t *testing.T) {
	img := NewImage(2, 3)
	var buf bytes.Buffer
	if err := WriteANSI(&buf, img); err != nil {
		t.Fatalf("WriteANSI: %v", err)
	}
	if strings.Count(buf.String(), "\r\n") != 1 {
		t.Errorf("expected exactly 1 output row for a 3-row image")
	}
}
