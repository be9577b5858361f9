package texture

import (
	"bytes"
	"testing"
)

func TestNewRandomPatternDeterministic(t *testing.T) {
	a := NewRandomPattern(8, 8, 42)
	b := NewRandomPattern(8, 8, 42)
	if !bytes.Equal(a.Data(), b.Data()) {
		t.Error("same seed produced different patterns")
	}

	c := NewRandomPattern(8, 8, 43)
	if bytes.Equal(a.Data(), c.Data()) {
		t.Error("different seeds produced identical patterns")
	}
}

func TestNewRandomPatternOpaqueAndBright(t *testing.T) {
	tex := NewRandomPattern(4, 4, 7)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			r, g, b, a := tex.GetRGBA(x, y)
			if a != 255 {
				t.Fatalf("texel (%d,%d) alpha = %d, want 255", x, y, a)
			}
			if r < 64 || g < 64 || b < 64 {
				t.Fatalf("texel (%d,%d) = (%d,%d,%d), want all channels >= 64", x, y, r, g, b)
			}
		}
	}
}

func TestNewCheckerPattern(t *testing.T) {
	c0 := [4]byte{255, 0, 0, 255}
	c1 := [4]byte{0, 0, 255, 255}
	tex := NewCheckerPattern(4, 4, c0, c1)

	if r, _, _, _ := tex.GetRGBA(0, 0); r != 255 {
		t.Errorf("texel (0,0) r=%d, want c0", r)
	}
	if _, _, b, _ := tex.GetRGBA(1, 0); b != 255 {
		t.Errorf("texel (1,0) b=%d, want c1", b)
	}
	if _, _, b, _ := tex.GetRGBA(0, 1); b != 255 {
		t.Errorf("texel (0,1) b=%d, want c1", b)
	}
	if r, _, _, _ := tex.GetRGBA(1, 1); r != 255 {
		t.Errorf("texel (1,1) r=%d, want c0", r)
	}
}

func TestNewSolid(t *testing.T) {
	tex := NewSolid(3, 3, [4]byte{1, 2, 3, 4})
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			r, g, b, a := tex.GetRGBA(x, y)
			if r != 1 || g != 2 || b != 3 || a != 4 {
				t.Fatalf("texel (%d,%d) = (%d,%d,%d,%d)", x, y, r, g, b, a)
			}
		}
	}
}

func TestPatternDegenerateSize(t *testing.T) {
	// Degenerate sizes fall back to a 1x1 transparent texture instead of
	// panicking, as documented on the constructors.
	patterns := map[string]*Texture{
		"random":  NewRandomPattern(0, 0, 1),
		"checker": NewCheckerPattern(-1, 3, [4]byte{}, [4]byte{}),
		"solid":   NewSolid(2, 0, [4]byte{255, 0, 0, 255}),
	}
	for name, tex := range patterns {
		if w, h := tex.Bounds(); w != 1 || h != 1 {
			t.Errorf("%s: fallback bounds = (%d, %d), want (1, 1)", name, w, h)
		}
		if _, _, _, a := tex.GetRGBA(0, 0); a != 0 {
			t.Errorf("%s: fallback texel is not transparent (alpha %d)", name, a)
		}
	}
}
