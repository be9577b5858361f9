package pixelaa

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestPixmapSetGetPixel(t *testing.T) {
	p := NewPixmap(4, 4)

	c := RGBA{R: 1, G: 0.5, B: 0, A: 1}
	p.SetPixel(2, 1, c)

	got := p.GetPixel(2, 1)
	if !approxColor(got.R, 1, 0.01) || !approxColor(got.G, 0.5, 0.01) {
		t.Errorf("GetPixel = %+v, want %+v", got, c)
	}
}

func TestPixmapOutOfBounds(t *testing.T) {
	p := NewPixmap(4, 4)

	// Out-of-bounds writes are dropped, reads return transparent.
	p.SetPixel(-1, 0, White)
	p.SetPixel(4, 0, White)
	p.SetPixel(0, 4, White)

	if got := p.GetPixel(-1, 0); got != Transparent {
		t.Errorf("out-of-bounds GetPixel = %+v, want Transparent", got)
	}
	for _, b := range p.Data() {
		if b != 0 {
			t.Fatal("out-of-bounds SetPixel wrote into the buffer")
		}
	}
}

func TestPixmapBlendPixel(t *testing.T) {
	p := NewPixmap(2, 2)
	p.Clear(Black)

	// Half-transparent white over black: mid gray.
	p.BlendPixel(0, 0, RGBA{R: 1, G: 1, B: 1, A: 0.5})
	got := p.GetPixel(0, 0)
	if !approxColor(got.R, 0.5, 0.01) || got.A != 1 {
		t.Errorf("BlendPixel = %+v, want mid gray", got)
	}

	// Fully transparent source leaves the destination alone.
	p.BlendPixel(1, 1, RGBA{R: 1, A: 0})
	if got := p.GetPixel(1, 1); got != Black {
		t.Errorf("transparent blend changed pixel: %+v", got)
	}

	// Opaque source replaces.
	p.BlendPixel(0, 1, RGBA{R: 1, A: 1})
	if got := p.GetPixel(0, 1); got.R != 1 {
		t.Errorf("opaque blend = %+v, want pure red", got)
	}
}

func TestPixmapClear(t *testing.T) {
	p := NewPixmap(3, 3)
	p.Clear(RGB(0.25, 0.5, 0.75))

	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			got := p.GetPixel(x, y)
			if !approxColor(got.G, 0.5, 0.01) {
				t.Fatalf("Clear missed pixel (%d,%d): %+v", x, y, got)
			}
		}
	}
}

func TestPixmapImageInterface(t *testing.T) {
	p := NewPixmap(5, 7)

	if p.Bounds().Dx() != 5 || p.Bounds().Dy() != 7 {
		t.Errorf("Bounds = %v", p.Bounds())
	}
	if p.ColorModel() != color.NRGBAModel {
		t.Error("ColorModel is not NRGBA")
	}

	p.SetPixel(1, 1, White)
	if r, _, _, a := p.At(1, 1).RGBA(); r != 0xffff || a != 0xffff {
		t.Errorf("At(1,1) = %v, want white", p.At(1, 1))
	}

	// Set (draw.Image) writes through the same buffer.
	p.Set(2, 2, color.NRGBA{R: 255, A: 255})
	if got := p.GetPixel(2, 2); got.R != 1 {
		t.Errorf("Set wrote %+v, want red", got)
	}
}

func TestPixmapToImageStraightAlpha(t *testing.T) {
	// The pixmap buffer holds straight alpha, so ToImage must produce an
	// NRGBA image. A half-transparent red stored as RGBA would read back
	// brightened (premultiplied reinterpretation); as NRGBA it is exact.
	p := NewPixmap(2, 2)
	p.SetPixel(0, 0, RGBA{R: 1, A: 127.0 / 255.0})

	img := p.ToImage()
	want := color.NRGBA{R: 255, A: 127}
	if got := img.NRGBAAt(0, 0); got != want {
		t.Errorf("NRGBAAt(0,0) = %v, want %v", got, want)
	}
	// The premultiplied view of the same pixel scales the red channel
	// down by the alpha.
	if r, _, _, a := img.At(0, 0).RGBA(); r>>8 != 127 || a>>8 != 127 {
		t.Errorf("At(0,0).RGBA() = (%d, _, _, %d), want premultiplied (127, 127)", r>>8, a>>8)
	}
}

func TestPixmapSavePNG(t *testing.T) {
	p := NewPixmap(4, 4)
	p.Clear(RGB(1, 0, 0))

	path := filepath.Join(t.TempDir(), "out.png")
	if err := p.SavePNG(path); err != nil {
		t.Fatalf("SavePNG() = %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Error("SavePNG wrote an empty file")
	}
}
