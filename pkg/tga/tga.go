// Package tga implements a minimal TGA (Truevision Targa) codec: 24-bit
// truecolor encoding and 24/32-bit truecolor decoding.
//
// Grounded on original_source/src/tga.rs's write_to_tga (an 18-byte packed
// header followed by raw BGR-order pixel bytes); the decode path and 32-bit
// BGRA support are not present in any retrieved original-source snapshot
// and are specified directly from spec.md section 4.6.
package tga

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/kadrey/headcast/pkg/la"
)

// header is the 18-byte TGA header, laid out exactly as the file format
// requires: little-endian, no padding.
type header struct {
	IDLength        uint8
	ColorMapType    uint8
	ImageType       uint8
	CMapFirstEntry  uint16
	CMapLength      uint16
	CMapEntrySize   uint8
	XOrigin         uint16
	YOrigin         uint16
	Width           uint16
	Height          uint16
	PixelDepth      uint8
	ImageDescriptor uint8
}

const (
	imageTypeTruecolor = 2
)

// Encode writes width x height pixels as an uncompressed 24-bit truecolor
// TGA image to w. Pixels must be in row-major order, top row first.
func Encode(w io.Writer, width, height int, pixels []la.Color) error {
	if len(pixels) != width*height {
		return fmt.Errorf("tga: pixel count %d does not match %dx%d", len(pixels), width, height)
	}
	h := header{
		ImageType:  imageTypeTruecolor,
		Width:      uint16(width),
		Height:     uint16(height),
		PixelDepth: 24,
	}
	if err := binary.Write(w, binary.LittleEndian, h); err != nil {
		return err
	}

	buf := make([]byte, 0, width*height*3)
	// TGA rows are bottom-to-top by default (ImageDescriptor bit 5 unset);
	// write rows in reverse order so the stored file displays upright.
	for y := height - 1; y >= 0; y-- {
		for x := 0; x < width; x++ {
			p := pixels[y*width+x]
			buf = append(buf, p.B, p.G, p.R)
		}
	}
	_, err := w.Write(buf)
	return err
}

// Decode reads a 24-bit or 32-bit uncompressed truecolor TGA image from r,
// returning its dimensions and pixels in row-major, top-row-first order
// (the stored bottom-to-top order is flipped during decode).
func Decode(r io.Reader) (width, height int, pixels []la.Color, err error) {
	var h header
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return 0, 0, nil, err
	}
	if h.ImageType != imageTypeTruecolor {
		return 0, 0, nil, fmt.Errorf("tga: unsupported image type %d (only uncompressed truecolor is supported)", h.ImageType)
	}
	if h.IDLength > 0 {
		if _, err := io.CopyN(io.Discard, r, int64(h.IDLength)); err != nil {
			return 0, 0, nil, err
		}
	}

	var bytesPerPixel int
	switch h.PixelDepth {
	case 24:
		bytesPerPixel = 3
	case 32:
		bytesPerPixel = 4
	default:
		return 0, 0, nil, fmt.Errorf("tga: unsupported pixel depth %d", h.PixelDepth)
	}

	width, height = int(h.Width), int(h.Height)
	raw := make([]byte, width*height*bytesPerPixel)
	if _, err := io.ReadFull(r, raw); err != nil {
		return 0, 0, nil, err
	}

	// Bit 5 of the image descriptor set means the data is already stored
	// top-to-bottom; otherwise it is bottom-to-top and must be flipped.
	topToBottom := h.ImageDescriptor&0x20 != 0

	pixels = make([]la.Color, width*height)
	for row := 0; row < height; row++ {
		srcRow := row
		if !topToBottom {
			srcRow = height - 1 - row
		}
		for col := 0; col < width; col++ {
			off := (srcRow*width + col) * bytesPerPixel
			b, g, rr := raw[off], raw[off+1], raw[off+2]
			pixels[row*width+col] = la.Color{R: rr, G: g, B: b}
		}
	}
	return width, height, pixels, nil
}
