package main

import (
	"fmt"
	"math"
	"time"

	"github.com/kadrey/headcast/pkg/la"
	"github.com/kadrey/headcast/pkg/raster"
)

// HUD renders an overlay with model info and feature toggles directly via
// ANSI cursor-positioning escapes, the way cmd/trophy/main.go's HUD does —
// raw escapes rather than routing through the terminal's cell buffer.
type HUD struct {
	filename  string
	polyCount int
	fps       float64
	fpsFrames int
	fpsTime   time.Time
}

func NewHUD(filename string, polyCount int) *HUD {
	return &HUD{filename: filename, polyCount: polyCount, fpsTime: time.Now()}
}

func (h *HUD) UpdateFPS() {
	h.fpsFrames++
	elapsed := time.Since(h.fpsTime)
	if elapsed >= time.Second {
		h.fps = float64(h.fpsFrames) / elapsed.Seconds()
		h.fpsFrames = 0
		h.fpsTime = time.Now()
	}
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

// Render draws the HUD's top and bottom rows. width/height are terminal
// cells, not framebuffer pixels.
func (h *HUD) Render(width, height int, conf raster.Config, showHUD bool) {
	const (
		reset   = "\x1b[0m"
		bold    = "\x1b[1m"
		bgBlack = "\x1b[40m"
		fgWhite = "\x1b[97m"
		fgGreen = "\x1b[92m"
		fgCyan  = "\x1b[96m"
		clear   = "\x1b[2K"
	)
	moveTo := func(row, col int) string { return fmt.Sprintf("\x1b[%d;%dH", row, col) }

	fmt.Print(moveTo(1, 1) + clear)
	fmt.Print(moveTo(height, 1) + clear)

	if !showHUD {
		return
	}

	fmt.Print(fmt.Sprintf("%s%s%s %.0f FPS %s", moveTo(1, 1), bgBlack, fgGreen, h.fps, reset))

	title := fmt.Sprintf("%s%s%s %s %s", bold, bgBlack, fgWhite, h.filename, reset)
	titleCol := max((width-len(h.filename)-2)/2, 1)
	fmt.Print(moveTo(1, titleCol) + title)

	poly := fmt.Sprintf("%s%s%s %d tris %s", bgBlack, fgCyan, bold, h.polyCount, reset)
	fmt.Print(moveTo(1, max(width-14, 1)) + poly)

	status := fmt.Sprintf("%s%s diff%s spec%s tex%s norm%s occl%s z %s",
		bgBlack, fgWhite,
		checkbox(conf.DiffuseLight), checkbox(conf.SpecularLight),
		checkbox(conf.Texture), checkbox(conf.Normals),
		checkbox(conf.Occlusion), checkbox(conf.ShowZBuffer))
	fmt.Print(moveTo(height, 1) + status + reset)
}

// screenToLightDir maps a mouse position to a light direction on the
// hemisphere facing the camera, the way cmd/trophy/main.go's
// ViewState.ScreenToLightDir does.
func screenToLightDir(screenX, screenY, width, height int) la.Vec3 {
	nx := (float64(screenX)/float64(width))*2 - 1
	ny := (float64(screenY)/float64(height))*2 - 1

	lenSq := nx*nx + ny*ny
	if lenSq > 1 {
		l := math.Sqrt(lenSq)
		nx /= l
		ny /= l
		lenSq = 1
	}
	nz := math.Sqrt(1 - lenSq)
	return la.V3(float32(nx), float32(-ny), float32(nz)).Normalize()
}
