package pixelaa

// RenderState carries the per-frame draw parameters. The caller rebuilds
// it (or mutates its fields) every frame from the current transform and
// passes it explicitly into the draw step; the library keeps no global
// frame state.
type RenderState struct {
	// Angle is the rotation applied to the drawn image, in radians.
	// The mesh-expansion stage must see the same angle as the draw call,
	// or the expansion direction will not match the on-screen orientation.
	Angle float64

	// Scale is the number of screen pixels one texel occupies along each
	// axis at the current zoom.
	Scale Vec2

	// Center is the screen-space point the image center is drawn at.
	Center Vec2

	// SmoothSize is the antialias zone width in screen pixels.
	// Ignored when Smoothing is false.
	SmoothSize float64

	// Smoothing selects the antialiased sampling path. When false the
	// image is sampled nearest-neighbor, which is the A/B comparison the
	// demo toggles.
	Smoothing bool

	// BoundaryFade enables the alpha falloff at the image silhouette.
	// It implies mesh expansion so the fade ring has room to render.
	BoundaryFade bool

	// Tint is the vertex color the sampled color is modulated with.
	// The zero value is treated as opaque white.
	Tint RGBA
}

// Params derives the sampling uniforms for a texture of the given size in
// texels. SmoothSize is forced to zero when Smoothing is off so the
// sampler takes its nearest-neighbor path.
func (s RenderState) Params(imageSize Vec2) SampleParams {
	smooth := s.SmoothSize
	if !s.Smoothing {
		smooth = 0
	}
	return SampleParams{
		ImageSize:  imageSize,
		TexelScale: s.Scale,
		SmoothSize: smooth,
	}
}

// tint returns the effective vertex color.
func (s RenderState) tint() RGBA {
	if s.Tint == (RGBA{}) {
		return White
	}
	return s.Tint
}
