// Package pixelaa implements antialiased sampling for pixel art under
// smooth transforms.
//
// # Overview
//
// Naive bilinear filtering of a magnified nearest-neighbor texture blurs
// every texel edge. Plain nearest-neighbor sampling keeps edges sharp but
// shimmers as the image rotates or scales to non-integer screen-pixel
// ratios. pixelaa implements the middle ground: each fragment samples
// either a texel's exact center or a blend between two adjacent texel
// centers, producing a one-screen-pixel-wide antialiased transition across
// texel edges while interiors stay perfectly crisp. The blend is realized
// with a single hardware linear-filter tap at a reconstructed fractional
// position, so the fragment cost stays at one texture read.
//
// # Quick Start
//
//	tex := texture.NewRandomPattern(3, 3, 1)
//	dst := pixelaa.NewPixmap(256, 256)
//
//	r := pixelaa.NewSoftwareRenderer()
//	state := pixelaa.RenderState{
//	    Angle:      0.3,
//	    Scale:      pixelaa.V2(40, 40),
//	    SmoothSize: 1.0,
//	    Smoothing:  true,
//	}
//	_ = r.Draw(dst, tex, state)
//	_ = dst.SavePNG("out.png")
//
// # Architecture
//
// The library is organized into:
//   - Public API: SampleParams, RenderState, Quad, SoftwareRenderer, Pixmap
//   - internal/texture: pixel buffers, linear sampling, test patterns
//   - internal/gpu: WGSL shader and wgpu render pipeline
//
// The sampling math (SampleParams) is the single source of truth: the CPU
// renderer evaluates it directly and the WGSL shader in internal/gpu is a
// line-for-line port. Tests pin the two together through shared scenarios.
//
// # Coordinate System
//
// Texture coordinates are normalized to [0,1] with (0,0) at the top-left.
// Texel space addresses discrete source pixels; screen space is measured in
// output pixels. Angles are in radians.
//
// # Preconditions
//
// The GPU path requires linear filtering on the sampler; nearest filtering
// breaks the interpolated-tap trick. The texel scale passed in SampleParams
// must match the scale the draw call actually applies, or the smooth zone
// misaligns with real screen-pixel boundaries. Neither violation is an
// error: the output is silently wrong instead.
package pixelaa

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
