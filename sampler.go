package pixelaa

import "math"

// DefaultSmoothSize is the default width, in screen pixels, of the
// antialiasing transition zone around each texel edge.
const DefaultSmoothSize = 1.0

// SampleParams holds the per-draw uniforms of the smooth sampling function.
// All fields are plain values recomputed each frame from the current
// transform; nothing is mutated after construction.
type SampleParams struct {
	// ImageSize is the raw texture dimensions in texels.
	ImageSize Vec2

	// TexelScale is the number of screen pixels one texel occupies along
	// each axis at the current zoom. It must reflect the same scale factors
	// the draw call uses, or the smooth zone misaligns with actual
	// screen-pixel boundaries.
	TexelScale Vec2

	// SmoothSize is the width of the antialias transition zone around each
	// texel edge, in screen pixels. The default of 1 blends across exactly
	// one output pixel. Values <= 0 disable smoothing entirely: the sample
	// snaps to the containing texel's center, which is plain
	// nearest-neighbor sampling.
	SmoothSize float64
}

// smoothAxis evaluates the sampling function along one axis.
// uv is the normalized coordinate, size the texel count, and scale the
// screen pixels per texel. It returns the reconstructed sampling
// coordinate (still normalized) and the saturated interpolation factor.
func smoothAxis(uv, size, scale, smooth float64) (sample, factor float64) {
	texel := uv * size
	if smooth <= 0 {
		// Nearest-neighbor fallback: the containing texel's center.
		return (math.Floor(texel) + 0.5) / size, 0
	}

	nearest := math.Floor(texel + 0.5)

	// Signed distance from the nearest texel boundary in screen pixels,
	// saturating at the half-width of the smooth zone.
	dist := (texel - nearest) * scale
	factor = clampUnit(dist / (smooth * 0.5))

	// A fractional position between two texel centers. A hardware linear
	// tap at this coordinate performs the actual blend; once factor has
	// saturated to -1 or +1 the tap lands on an exact center and returns
	// that texel unblended.
	sample = (nearest + 0.5*factor) / size
	return sample, factor
}

// SmoothUV maps a fragment's texture coordinate to the position the texture
// should be sampled at with linear filtering. The returned coordinate lies
// between the centers of the two texels adjacent to the nearest edge when
// the fragment falls inside the smooth zone, and exactly on a texel center
// otherwise.
func (p SampleParams) SmoothUV(uv Vec2) Vec2 {
	sx, _ := smoothAxis(uv.X, p.ImageSize.X, p.TexelScale.X, p.SmoothSize)
	sy, _ := smoothAxis(uv.Y, p.ImageSize.Y, p.TexelScale.Y, p.SmoothSize)
	return Vec2{X: sx, Y: sy}
}

// Factor returns the per-axis interpolation factor in [-1, 1] for a
// fragment at uv. Zero means the sample lands on the nearest texel center;
// +-1 means it lands on the neighboring texel's center. Exposed for
// diagnostics and tests.
func (p SampleParams) Factor(uv Vec2) Vec2 {
	_, fx := smoothAxis(uv.X, p.ImageSize.X, p.TexelScale.X, p.SmoothSize)
	_, fy := smoothAxis(uv.Y, p.ImageSize.Y, p.TexelScale.Y, p.SmoothSize)
	return Vec2{X: fx, Y: fy}
}

// BoundaryAlpha computes the alpha falloff near the outer edge of the
// image. The result is 1 at the image center and decreases monotonically
// to 0 at a distance of half the image's on-screen size from the center,
// forming a fade ring one smooth-width wide at the silhouette. It is only
// meaningful when the drawn quad has been expanded (see BuildQuad);
// without expansion the quad clips the ring off.
func (p SampleParams) BoundaryAlpha(uv Vec2) float64 {
	ax := boundaryAxis(uv.X, p.ImageSize.X, p.TexelScale.X, p.SmoothSize)
	ay := boundaryAxis(uv.Y, p.ImageSize.Y, p.TexelScale.Y, p.SmoothSize)
	return 1 - math.Max(ax, ay)
}

// boundaryAxis returns the clamped overshoot past the fade threshold on
// one axis, in units of the smooth width.
func boundaryAxis(uv, size, scale, smooth float64) float64 {
	if smooth <= 0 {
		smooth = 1e-6
	}
	// Distance from the image center in screen pixels, measured against
	// half the image's on-screen extent minus the smooth half-width. The
	// fade runs over one smooth half-width and hits zero exactly at the
	// image edge.
	distPx := math.Abs(uv-0.5) * size * scale
	edgePx := 0.5*size*scale - 0.5*smooth
	return clamp01((distPx - edgePx) / (0.5 * smooth))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clampUnit(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
