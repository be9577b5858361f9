package texture

import "math/rand"

// NewRandomPattern creates a texture with an independent random opaque
// color per texel. Small random patterns are the worst case for texel-edge
// antialiasing, since every edge is a color discontinuity, which makes
// them the standard test image for the smooth sampler.
//
// The pattern is deterministic for a given seed. Non-positive dimensions
// yield a 1x1 transparent texture rather than an error, so pattern
// constructors stay chainable in test setup.
func NewRandomPattern(width, height int, seed int64) *Texture {
	t, err := New(width, height)
	if err != nil {
		return mustTexture()
	}

	rng := rand.New(rand.NewSource(seed)) //nolint:gosec // deterministic test pattern, not crypto
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			// Bias toward bright colors so edges stay visible on any
			// background.
			r := byte(64 + rng.Intn(192))
			g := byte(64 + rng.Intn(192))
			b := byte(64 + rng.Intn(192))
			_ = t.SetRGBA(x, y, r, g, b, 255)
		}
	}
	return t
}

// NewCheckerPattern creates a two-color checkerboard texture. Checker
// edges are axis-aligned color discontinuities, convenient for asserting
// exact blend values in tests. Non-positive dimensions yield a 1x1
// transparent texture.
func NewCheckerPattern(width, height int, c0, c1 [4]byte) *Texture {
	t, err := New(width, height)
	if err != nil {
		return mustTexture()
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := c0
			if (x+y)%2 == 1 {
				c = c1
			}
			_ = t.SetRGBA(x, y, c[0], c[1], c[2], c[3])
		}
	}
	return t
}

// NewSolid creates a single-color texture. Non-positive dimensions yield
// a 1x1 transparent texture.
func NewSolid(width, height int, c [4]byte) *Texture {
	t, err := New(width, height)
	if err != nil {
		return mustTexture()
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			_ = t.SetRGBA(x, y, c[0], c[1], c[2], c[3])
		}
	}
	return t
}

// mustTexture returns a 1x1 transparent texture for the degenerate-size
// paths above.
func mustTexture() *Texture {
	t, _ := New(1, 1)
	return t
}
