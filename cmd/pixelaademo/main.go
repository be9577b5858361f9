// Command pixelaademo renders a rotating, scaling pixel-art sprite with
// antialiased sampling and writes the frames as PNG files.
package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/pixelaa"
	"github.com/gogpu/pixelaa/internal/texture"
)

func main() {
	var (
		width     = flag.Int("width", 640, "frame width")
		height    = flag.Int("height", 480, "frame height")
		texels    = flag.Int("texels", 32, "sprite size in texels")
		seed      = flag.Int64("seed", 1, "sprite pattern seed")
		smooth    = flag.Float64("smooth", pixelaa.DefaultSmoothSize, "antialias zone in screen pixels")
		frames    = flag.Int("frames", 1, "number of frames to render")
		smoothing = flag.Bool("smoothing", true, "enable antialiased sampling")
		fade      = flag.Bool("fade", true, "enable boundary fade and mesh expansion")
		output    = flag.String("output", "frame%03d.png", "output file pattern")
	)
	flag.Parse()

	sprite := texture.NewRandomPattern(*texels, *texels, *seed)
	renderer := pixelaa.NewSoftwareRenderer(
		pixelaa.WithDefaultSmoothSize(*smooth),
	)

	face := loadLabelFace()

	for i := 0; i < *frames; i++ {
		t := float64(i) / 60.0

		frame := pixelaa.NewPixmap(*width, *height)
		frame.Clear(pixelaa.RGB(0.12, 0.12, 0.16))

		state := pixelaa.RenderState{
			Angle:        t,
			Scale:        spriteScale(t),
			Center:       pixelaa.V2(float64(*width)/2, float64(*height)/2),
			SmoothSize:   *smooth,
			Smoothing:    *smoothing,
			BoundaryFade: *fade,
		}

		if err := renderer.Draw(frame, sprite, state); err != nil {
			log.Fatalf("Failed to draw frame %d: %v", i, err)
		}

		drawLabel(frame, face, statusLabel(state))

		name := fmt.Sprintf(*output, i)
		if err := frame.SavePNG(name); err != nil {
			log.Fatalf("Failed to save: %v", err)
		}
		log.Printf("Frame saved to %s (%dx%d)\n", name, *width, *height)
	}
}

// spriteScale oscillates the zoom so both magnified and near-1:1 texel
// densities show up over a run.
func spriteScale(t float64) pixelaa.Vec2 {
	s := 6 + 4*math.Sin(t*0.7)
	return pixelaa.V2(s, s)
}

func statusLabel(state pixelaa.RenderState) string {
	mode := "nearest"
	if state.Smoothing {
		mode = fmt.Sprintf("smooth %.1fpx", state.SmoothSize)
	}
	if state.BoundaryFade {
		mode += " + fade"
	}
	return fmt.Sprintf("%s  angle %.2f  scale %.1fx", mode, state.Angle, state.Scale.X)
}

// loadLabelFace parses the embedded Go Regular font for the HUD label.
func loadLabelFace() font.Face {
	parsed, err := opentype.Parse(goregular.TTF)
	if err != nil {
		log.Fatalf("Failed to parse label font: %v", err)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    14,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		log.Fatalf("Failed to create label face: %v", err)
	}
	return face
}

// drawLabel draws the status line into the bottom-left corner of the frame.
func drawLabel(frame *pixelaa.Pixmap, face font.Face, text string) {
	d := &font.Drawer{
		Dst:  frame,
		Src:  image.White,
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(8),
			Y: fixed.I(frame.Height() - 10),
		},
	}
	d.DrawString(text)
}
