package pixelaa

import (
	"image/color"
	"testing"
)

func TestRGB(t *testing.T) {
	c := RGB(0.5, 0.25, 1)
	if c.A != 1 {
		t.Errorf("RGB alpha = %v, want 1", c.A)
	}
	if c.R != 0.5 || c.G != 0.25 || c.B != 1 {
		t.Errorf("RGB = %+v", c)
	}
}

func TestLerp(t *testing.T) {
	tests := []struct {
		name string
		t    float64
		want RGBA
	}{
		{"at zero", 0, RGBA{R: 1, A: 1}},
		{"at one", 1, RGBA{B: 1, A: 1}},
		{"midpoint", 0.5, RGBA{R: 0.5, B: 0.5, A: 1}},
	}
	a := RGBA{R: 1, A: 1}
	b := RGBA{B: 1, A: 1}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Lerp(b, tt.t); got != tt.want {
				t.Errorf("Lerp(%v) = %+v, want %+v", tt.t, got, tt.want)
			}
		})
	}
}

func TestScale(t *testing.T) {
	c := RGBA{R: 1, G: 0.5, B: 0.25, A: 0.8}
	got := c.Scale(0.5)
	if got.R != 1 || got.G != 0.5 || got.B != 0.25 {
		t.Errorf("Scale changed RGB: %+v", got)
	}
	if got.A != 0.4 {
		t.Errorf("Scale alpha = %v, want 0.4", got.A)
	}
}

func TestModulate(t *testing.T) {
	c := White.Modulate(RGBA{R: 1, G: 0.5, B: 0, A: 0.5})
	want := RGBA{R: 1, G: 0.5, B: 0, A: 0.5}
	if c != want {
		t.Errorf("Modulate = %+v, want %+v", c, want)
	}

	// White tint is the identity.
	c = RGBA{R: 0.3, G: 0.6, B: 0.9, A: 1}
	if got := c.Modulate(White); got != c {
		t.Errorf("Modulate(White) = %+v, want %+v", got, c)
	}
}

func TestPremultiply(t *testing.T) {
	c := RGBA{R: 1, G: 0.5, B: 0, A: 0.5}
	got := c.Premultiply()
	if got.R != 0.5 || got.G != 0.25 || got.B != 0 || got.A != 0.5 {
		t.Errorf("Premultiply = %+v", got)
	}
}

func TestColorRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		c    RGBA
	}{
		{"opaque red", RGBA{R: 1, A: 1}},
		{"semi-transparent", RGBA{R: 0.5, G: 0.5, B: 0.5, A: 0.5}},
		{"white", White},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromColor(tt.c.Color())
			if !approxColor(got.R, tt.c.R, 0.01) || !approxColor(got.A, tt.c.A, 0.01) {
				t.Errorf("round-trip = %+v, want %+v", got, tt.c)
			}
		})
	}
}

func TestFromColorZeroAlpha(t *testing.T) {
	if got := FromColor(color.NRGBA{}); got != (RGBA{}) {
		t.Errorf("FromColor(transparent) = %+v, want zero value", got)
	}
}
