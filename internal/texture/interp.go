package texture

import "math"

// SampleLinear performs bilinear interpolation at normalized coordinates
// (u, v), where (0,0) is the top-left and (1,1) the bottom-right. This is
// the CPU stand-in for the GPU's hardware linear filter and is the only
// filter the smooth sampling path may use: a tap at a fractional position
// between two texel centers returns exactly the blend the algorithm
// relies on. Out-of-range coordinates clamp to the edge.
func (t *Texture) SampleLinear(u, v float64) (r, g, b, a byte) {
	// Continuous texel coordinates with centers at integer+0.5.
	fx := u*float64(t.width) - 0.5
	fy := v*float64(t.height) - 0.5

	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := fx - float64(x0)
	ty := fy - float64(y0)

	// GetRGBA clamps, so the +1 neighbors are safe at the edges.
	r00, g00, b00, a00 := t.GetRGBA(x0, y0)
	r10, g10, b10, a10 := t.GetRGBA(x0+1, y0)
	r01, g01, b01, a01 := t.GetRGBA(x0, y0+1)
	r11, g11, b11, a11 := t.GetRGBA(x0+1, y0+1)

	r = byte(lerp2D(float64(r00), float64(r10), float64(r01), float64(r11), tx, ty) + 0.5)
	g = byte(lerp2D(float64(g00), float64(g10), float64(g01), float64(g11), tx, ty) + 0.5)
	b = byte(lerp2D(float64(b00), float64(b10), float64(b01), float64(b11), tx, ty) + 0.5)
	a = byte(lerp2D(float64(a00), float64(a10), float64(a01), float64(a11), tx, ty) + 0.5)
	return r, g, b, a
}

// SampleNearest selects the texel containing (u, v) with no interpolation.
// Kept for A/B comparison against the smooth path; the smooth sampler
// never uses it.
func (t *Texture) SampleNearest(u, v float64) (r, g, b, a byte) {
	x := int(math.Floor(u * float64(t.width)))
	y := int(math.Floor(v * float64(t.height)))
	return t.GetRGBA(x, y)
}

// lerp performs linear interpolation between a and b.
func lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// lerp2D performs bilinear interpolation on a 2x2 grid.
func lerp2D(v00, v10, v01, v11, tx, ty float64) float64 {
	v0 := lerp(v00, v10, tx)
	v1 := lerp(v01, v11, tx)
	return lerp(v0, v1, ty)
}
