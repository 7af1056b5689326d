package raster

import (
	"fmt"
	"io"
	"strings"
)

// WriteANSI writes img to w as a grid of half-block (▀) glyphs, one cell per
// two image rows: the top row becomes the glyph's 24-bit foreground color,
// the bottom row its background. img's height should be 2x the terminal
// area's row count; with an odd height the unpaired last row is not written.
//
// Grounded on the teacher's render.Framebuffer.Draw (pkg/render/terminal.go)
// for the half-block/double-vertical-resolution technique, adapted to write
// raw ANSI truecolor escapes directly rather than through a cell-buffer
// widget, matching the direct-escape style cmd/trophy/main.go's HUD.Render
// already uses for the rest of the terminal UI.
func WriteANSI(w io.Writer, img *Image) error {
	var b strings.Builder
	b.Grow(img.Width * (img.Height / 2) * 24)

	fgR, fgG, fgB := -1, -1, -1
	bgR, bgG, bgB := -1, -1, -1

	for row := 0; row*2+1 < img.Height; row++ {
		topY := row * 2
		botY := topY + 1

		for col := 0; col < img.Width; col++ {
			top := img.GetPixel(col, topY)
			bot := img.GetPixel(col, botY)

			if int(top.R) != fgR || int(top.G) != fgG || int(top.B) != fgB {
				fmt.Fprintf(&b, "\x1b[38;2;%d;%d;%dm", top.R, top.G, top.B)
				fgR, fgG, fgB = int(top.R), int(top.G), int(top.B)
			}
			if int(bot.R) != bgR || int(bot.G) != bgG || int(bot.B) != bgB {
				fmt.Fprintf(&b, "\x1b[48;2;%d;%d;%dm", bot.R, bot.G, bot.B)
				bgR, bgG, bgB = int(bot.R), int(bot.G), int(bot.B)
			}
			b.WriteRune('▀')
		}
		b.WriteString("\x1b[0m\r\n")
		fgR, fgG, fgB, bgR, bgG, bgB = -1, -1, -1, -1, -1, -1
	}

	_, err := io.WriteString(w, b.String())
	return err
}
