package texture

import "testing"

// gradient2x1 builds a 2x1 texture with value 0 on the left texel and
// 200 on the right, in every channel.
func gradient2x1(t *testing.T) *Texture {
	t.Helper()
	tex, err := New(2, 1)
	if err != nil {
		t.Fatal(err)
	}
	if err := tex.SetRGBA(0, 0, 0, 0, 0, 0); err != nil {
		t.Fatal(err)
	}
	if err := tex.SetRGBA(1, 0, 200, 200, 200, 200); err != nil {
		t.Fatal(err)
	}
	return tex
}

func TestSampleLinearAtTexelCenter(t *testing.T) {
	tex := gradient2x1(t)

	// Texel centers are at u = 0.25 and u = 0.75: exact texel values,
	// no neighbor bleed.
	if r, _, _, _ := tex.SampleLinear(0.25, 0.5); r != 0 {
		t.Errorf("left center = %d, want 0", r)
	}
	if r, _, _, _ := tex.SampleLinear(0.75, 0.5); r != 200 {
		t.Errorf("right center = %d, want 200", r)
	}
}

func TestSampleLinearBlend(t *testing.T) {
	tex := gradient2x1(t)

	tests := []struct {
		name string
		u    float64
		want byte
	}{
		{"midpoint", 0.5, 100},
		{"quarter between centers", 0.375, 50},
		{"three quarters between centers", 0.625, 150},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if r, _, _, _ := tex.SampleLinear(tt.u, 0.5); r != tt.want {
				t.Errorf("SampleLinear(%v) = %d, want %d", tt.u, r, tt.want)
			}
		})
	}
}

func TestSampleLinearClampsAtEdges(t *testing.T) {
	tex := gradient2x1(t)

	// Beyond the outermost texel centers the blend partner is the edge
	// texel itself: the value holds flat instead of fading out.
	if r, _, _, _ := tex.SampleLinear(0.05, 0.5); r != 0 {
		t.Errorf("near left edge = %d, want 0", r)
	}
	if r, _, _, _ := tex.SampleLinear(0.99, 0.5); r != 200 {
		t.Errorf("near right edge = %d, want 200", r)
	}

	// Fully outside [0,1], as on an expanded quad rim.
	if r, _, _, _ := tex.SampleLinear(-0.2, 0.5); r != 0 {
		t.Errorf("outside left = %d, want 0", r)
	}
	if r, _, _, _ := tex.SampleLinear(1.3, 0.5); r != 200 {
		t.Errorf("outside right = %d, want 200", r)
	}
}

func TestSampleLinearVertical(t *testing.T) {
	tex, err := New(1, 2)
	if err != nil {
		t.Fatal(err)
	}
	_ = tex.SetRGBA(0, 0, 0, 0, 0, 255)
	_ = tex.SetRGBA(0, 1, 100, 0, 0, 255)

	if r, _, _, _ := tex.SampleLinear(0.5, 0.5); r != 50 {
		t.Errorf("vertical midpoint = %d, want 50", r)
	}
}

func TestSampleNearest(t *testing.T) {
	tex := gradient2x1(t)

	tests := []struct {
		name string
		u    float64
		want byte
	}{
		{"inside left texel", 0.49, 0},
		{"inside right texel", 0.51, 200},
		{"near right edge", 0.99, 200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if r, _, _, _ := tex.SampleNearest(tt.u, 0.5); r != tt.want {
				t.Errorf("SampleNearest(%v) = %d, want %d", tt.u, r, tt.want)
			}
		})
	}
}
