// headcast - Terminal software rasterizer / model viewer.
//
// Controls:
//
//	Mouse drag  - Orbit the model (yaw/pitch)
//	Scroll      - Zoom in/out
//	W/S         - Pitch up/down
//	A/D         - Yaw left/right
//	1           - Toggle diffuse lighting
//	2           - Toggle specular lighting
//	3           - Toggle texture
//	4           - Toggle normal mapping
//	5           - Toggle ambient occlusion
//	Z           - Toggle z-buffer view
//	L           - Light positioning mode (move mouse, click to set, Esc to cancel)
//	?           - Toggle HUD overlay
//	R           - Reset view
//	Esc         - Quit (or cancel light mode)
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	uv "github.com/charmbracelet/ultraviolet"

	"github.com/kadrey/headcast/pkg/la"
	"github.com/kadrey/headcast/pkg/model"
	"github.com/kadrey/headcast/pkg/raster"
)

var (
	texturePath   = flag.String("texture", "", "Path to a diffuse texture (TGA/PNG/JPG)")
	normalMapPath = flag.String("normalmap", "", "Path to a tangent-space normal map (TGA/PNG/JPG)")
	targetFPS     = flag.Int("fps", 30, "Target FPS")
	bgColor       = flag.String("bg", "30,30,40", "Background color (R,G,B)")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "headcast - Terminal software rasterizer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: headcast [options] <model.obj|model.glb>\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadMesh(path string) (*model.Mesh, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".glb", ".gltf":
		return model.Load(path)
	case ".obj":
		return model.LoadOBJ(path)
	default:
		return nil, fmt.Errorf("unsupported format: %s (use .obj, .gltf or .glb)", path)
	}
}

// centerAndScale moves mesh so its bounding box is centered at the origin
// and its largest dimension is 2 units, matching cmd/trophy/main.go's
// framing of a freshly loaded model.
func centerAndScale(mesh *model.Mesh) {
	mesh.CalculateBounds()
	center := mesh.Center()
	size := mesh.Size()
	maxDim := size.MaxComponent()
	if maxDim == 0 {
		return
	}
	scale := 2 / maxDim
	for i := range mesh.Vertices {
		mesh.Vertices[i] = mesh.Vertices[i].Sub(center).Scale(scale)
	}
	mesh.CalculateBounds()
}

func run(modelPath string) error {
	var bgR, bgG, bgB uint8 = 30, 30, 40
	fmt.Sscanf(*bgColor, "%d,%d,%d", &bgR, &bgG, &bgB)
	bg := la.RGB(bgR, bgG, bgB)

	mesh, err := loadMesh(modelPath)
	if err != nil {
		return fmt.Errorf("load model: %w", err)
	}
	if len(mesh.Normals) == 0 {
		mesh.CalculateNormals()
	}
	centerAndScale(mesh)

	mdl := &model.Model{Mesh: mesh}
	if *texturePath != "" {
		mdl.Texture, err = raster.LoadTexture(*texturePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not load texture: %v\n", err)
		}
	}
	if *normalMapPath != "" {
		mdl.NormalMap, err = raster.LoadTexture(*normalMapPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not load normal map: %v\n", err)
		}
	}

	term := uv.DefaultTerminal()
	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}
	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}
	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	fmt.Fprint(os.Stdout, "\x1b[?1003h")
	fmt.Fprint(os.Stdout, "\x1b[?1006h")

	conf := raster.DefaultConfig(width, height*2)
	orbit := newOrbitState(*targetFPS)
	hud := NewHUD(filepath.Base(modelPath), mesh.TriangleCount())
	showHUD := true
	lightMode := false
	pendingLight := conf.LightDirWorld

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	inputTorque := struct{ yaw, pitch float64 }{}
	const torqueStrength = 3.0
	var mouseDown bool
	var lastMouseX, lastMouseY int

	go func() {
		for ev := range term.Events() {
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				width, height = ev.Width, ev.Height
				term.Erase()
				term.Resize(width, height)
				conf.ImageWidth, conf.ImageHeight = width, height*2

			case uv.KeyPressEvent:
				switch {
				case ev.MatchString("escape"):
					if lightMode {
						lightMode = false
					} else {
						cancel()
						return
					}
				case ev.MatchString("ctrl+c"):
					cancel()
					return
				case ev.MatchString("r"):
					orbit.Reset()
				case ev.MatchString("w", "up"):
					inputTorque.pitch = -torqueStrength
				case ev.MatchString("s", "down"):
					inputTorque.pitch = torqueStrength
				case ev.MatchString("a", "left"):
					inputTorque.yaw = -torqueStrength
				case ev.MatchString("d", "right"):
					inputTorque.yaw = torqueStrength
				case ev.MatchString("1"):
					conf.DiffuseLight = !conf.DiffuseLight
				case ev.MatchString("2"):
					conf.SpecularLight = !conf.SpecularLight
				case ev.MatchString("3"):
					conf.Texture = !conf.Texture
				case ev.MatchString("4"):
					conf.Normals = !conf.Normals
				case ev.MatchString("5"):
					conf.Occlusion = !conf.Occlusion
				case ev.MatchString("z"):
					conf.ShowZBuffer = !conf.ShowZBuffer
				case ev.MatchString("l"):
					lightMode = true
					pendingLight = conf.LightDirWorld
				case ev.MatchString("?"), ev.MatchString("shift+/"):
					showHUD = !showHUD
				}

			case uv.KeyReleaseEvent:
				switch {
				case ev.MatchString("w"), ev.MatchString("up"), ev.MatchString("s"), ev.MatchString("down"):
					inputTorque.pitch = 0
				case ev.MatchString("a"), ev.MatchString("left"), ev.MatchString("d"), ev.MatchString("right"):
					inputTorque.yaw = 0
				}

			case uv.MouseClickEvent:
				if lightMode {
					conf.LightDirWorld = pendingLight
					lightMode = false
				} else {
					mouseDown = true
					lastMouseX, lastMouseY = ev.X, ev.Y
				}

			case uv.MouseReleaseEvent:
				if !lightMode {
					mouseDown = false
				}

			case uv.MouseMotionEvent:
				if lightMode {
					pendingLight = screenToLightDir(ev.X, ev.Y, width, height)
				} else if mouseDown {
					dx := ev.X - lastMouseX
					dy := ev.Y - lastMouseY
					orbit.ApplyImpulse(float64(dx)*0.05, float64(dy)*0.05)
					lastMouseX, lastMouseY = ev.X, ev.Y
				}

			case uv.MouseWheelEvent:
				switch ev.Button {
				case uv.MouseWheelUp:
					orbit.Zoom(-0.5)
				case uv.MouseWheelDown:
					orbit.Zoom(0.5)
				}
			}
		}
	}()

	targetDuration := time.Second / time.Duration(*targetFPS)
	lastFrame := time.Now()

	cleanup := func() {
		fmt.Fprint(os.Stdout, "\x1b[?1003l")
		fmt.Fprint(os.Stdout, "\x1b[?1006l")
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}

	for {
		select {
		case <-ctx.Done():
			cleanup()
			return nil
		default:
		}

		now := time.Now()
		dt := now.Sub(lastFrame).Seconds()
		lastFrame = now
		if dt > 0.1 {
			dt = 0.1
		}

		orbit.ApplyImpulse(inputTorque.yaw*dt, inputTorque.pitch*dt)
		orbit.Update()

		conf.Eye = orbit.Eye()
		conf.Pan = la.Zero3()
		if lightMode {
			conf.LightDirWorld = pendingLight
		}

		fb := raster.Render(conf, mdl)

		var out strings.Builder
		out.Grow(width * height * 24)
		display := fb.Color
		if conf.ShowZBuffer {
			display = fb.Depth
		}
		compositeBackground(display, bg)
		if err := raster.WriteANSI(&out, display); err != nil {
			cleanup()
			return fmt.Errorf("render: %w", err)
		}
		fmt.Fprint(os.Stdout, "\x1b[H"+out.String())

		hud.UpdateFPS()
		hud.Render(width, height, conf, showHUD)

		elapsed := time.Since(now)
		if elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}

// compositeBackground replaces untouched (pure black) pixels with bg,
// approximating the transparent-background compositing web.rs leaves to its
// canvas host: the pipeline never writes an alpha channel, so a flat
// background swap is this viewer's stand-in.
func compositeBackground(img *raster.Image, bg la.Color) {
	for i, p := range img.Pixels {
		if p == (la.Color{}) {
			img.Pixels[i] = bg
		}
	}
}

