package pixelaa

import (
	"errors"

	"github.com/gogpu/pixelaa/internal/texture"
)

// Software rendering errors.
var (
	// ErrNilPixmap is returned when drawing into a nil pixmap.
	ErrNilPixmap = errors.New("pixelaa: nil destination pixmap")

	// ErrNilTexture is returned when drawing a nil texture.
	ErrNilTexture = errors.New("pixelaa: nil source texture")
)

// SoftwareRenderer is the CPU reference implementation of the render
// pipeline. It composes the two stages explicitly: BuildQuad is the
// vertex stage (transform plus optional mesh expansion) and shadeFragment
// is the per-fragment color function. The GPU path in internal/gpu
// executes the same two stages as WGSL entry points.
//
// The software path exists for testing, headless rendering, and as a
// readable reference for what the shader does; it is not optimized.
type SoftwareRenderer struct {
	opts rendererOptions
}

// NewSoftwareRenderer creates a new software renderer.
func NewSoftwareRenderer(opts ...RendererOption) *SoftwareRenderer {
	o := defaultRendererOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &SoftwareRenderer{opts: o}
}

// Draw renders the texture into dst under the given per-frame state,
// compositing source-over.
func (r *SoftwareRenderer) Draw(dst *Pixmap, tex *texture.Texture, state RenderState) error {
	if dst == nil {
		return ErrNilPixmap
	}
	if tex == nil {
		return ErrNilTexture
	}

	if state.Smoothing && state.SmoothSize <= 0 {
		state.SmoothSize = r.opts.defaultSmoothSize
	}

	tw, th := tex.Bounds()
	imageSize := V2(float64(tw), float64(th))
	params := state.Params(imageSize)

	// Vertex stage: the transformed, possibly expanded quad.
	quad := BuildQuad(state, imageSize)
	minX, minY, maxX, maxY := quad.Bounds()
	minX = max(minX, 0)
	minY = max(minY, 0)
	maxX = min(maxX, dst.Width())
	maxY = min(maxY, dst.Height())

	// UV extent of the quad. Without boundary fade the quad is not
	// expanded and fragments clip at the image edge.
	var du, dv float64
	fade := state.BoundaryFade && state.Smoothing
	if fade {
		du = 0.5 * state.SmoothSize / (imageSize.X * state.Scale.X)
		dv = 0.5 * state.SmoothSize / (imageSize.Y * state.Scale.Y)
	}

	sizePx := imageSize.MulV(state.Scale)
	tint := state.tint()

	for y := minY; y < maxY; y++ {
		for x := minX; x < maxX; x++ {
			// Inverse of the vertex transform: pixel center back to UV.
			p := V2(float64(x)+0.5, float64(y)+0.5)
			local := p.Sub(state.Center).Rotate(-state.Angle)
			uv := local.DivV(sizePx).Add(V2(0.5, 0.5))

			if uv.X < -du || uv.X > 1+du || uv.Y < -dv || uv.Y > 1+dv {
				continue
			}

			c := shadeFragment(tex, params, uv, fade)
			dst.BlendPixel(x, y, c.Modulate(tint))
		}
	}

	Logger().Debug("software draw",
		"texture", [2]int{tw, th},
		"bounds", [4]int{minX, minY, maxX, maxY},
		"smoothing", state.Smoothing,
		"fade", fade)
	return nil
}

// shadeFragment is the per-fragment color function: one smooth-sampler
// evaluation, one linear texture tap, and the optional boundary fade.
func shadeFragment(tex *texture.Texture, params SampleParams, uv Vec2, fade bool) RGBA {
	suv := params.SmoothUV(uv)
	cr, cg, cb, ca := tex.SampleLinear(suv.X, suv.Y)
	c := RGBA{
		R: float64(cr) / 255,
		G: float64(cg) / 255,
		B: float64(cb) / 255,
		A: float64(ca) / 255,
	}
	if fade {
		c = c.Scale(params.BoundaryAlpha(uv))
	}
	return c
}
