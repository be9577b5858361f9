package pixelaa

import (
	"encoding/binary"
	"math"
)

// QuadVertex is a single vertex of the drawn quad: a screen-space position
// and a texture coordinate. The layout matches VertexInput in the WGSL
// shader (two vec2<f32>, 16 bytes per vertex).
type QuadVertex struct {
	// Position in screen space
	X, Y float32

	// Texture coordinate, normalized; may lie outside [0,1] on an
	// expanded quad
	U, V float32
}

// quadVertexStride is the byte stride per vertex: position (8) + uv (8).
const quadVertexStride = 16

// Quad is the drawn geometry for one image: four vertices in the order
// top-left, top-right, bottom-right, bottom-left.
type Quad struct {
	V [4]QuadVertex
}

// BuildQuad computes the screen-space quad for an image of the given size
// in texels under the state's transform. This is the explicit vertex
// stage of the pipeline.
//
// When BoundaryFade is set the quad is expanded outward by half the smooth
// size along the local (rotated) axes, and the texture coordinates are
// shifted outward by the equivalent UV delta, so the fade ring at the
// silhouette renders without being clipped by the original quad bounds.
func BuildQuad(state RenderState, imageSize Vec2) Quad {
	halfPx := imageSize.MulV(state.Scale).Mul(0.5)

	var expandPx float64
	if state.BoundaryFade && state.Smoothing {
		expandPx = 0.5 * state.SmoothSize
	}

	// Corner offsets in local (unrotated) screen space, and the matching
	// UV extents. The UV delta is the expansion converted back to
	// normalized texture units, so position and texture coordinate stay
	// in lockstep across the expanded rim.
	ex := halfPx.X + expandPx
	ey := halfPx.Y + expandPx
	du := expandPx / (imageSize.X * state.Scale.X)
	dv := expandPx / (imageSize.Y * state.Scale.Y)

	local := [4]Vec2{
		{X: -ex, Y: -ey}, // top-left
		{X: ex, Y: -ey},  // top-right
		{X: ex, Y: ey},   // bottom-right
		{X: -ex, Y: ey},  // bottom-left
	}
	uvs := [4]Vec2{
		{X: -du, Y: -dv},
		{X: 1 + du, Y: -dv},
		{X: 1 + du, Y: 1 + dv},
		{X: -du, Y: 1 + dv},
	}

	var q Quad
	for i, p := range local {
		sp := p.Rotate(state.Angle).Add(state.Center)
		q.V[i] = QuadVertex{
			X: float32(sp.X),
			Y: float32(sp.Y),
			U: float32(uvs[i].X),
			V: float32(uvs[i].Y),
		}
	}
	return q
}

// Bounds returns the axis-aligned screen-space bounding box of the quad,
// expanded to integer pixel coordinates.
func (q Quad) Bounds() (minX, minY, maxX, maxY int) {
	fminX, fminY := math.Inf(1), math.Inf(1)
	fmaxX, fmaxY := math.Inf(-1), math.Inf(-1)
	for _, v := range q.V {
		fminX = math.Min(fminX, float64(v.X))
		fminY = math.Min(fminY, float64(v.Y))
		fmaxX = math.Max(fmaxX, float64(v.X))
		fmaxY = math.Max(fmaxY, float64(v.Y))
	}
	return int(math.Floor(fminX)), int(math.Floor(fminY)),
		int(math.Ceil(fmaxX)), int(math.Ceil(fmaxY))
}

// VertexData serializes the quad into raw little-endian vertex bytes
// suitable for GPU upload: 4 vertices x 16 bytes.
func (q Quad) VertexData() []byte {
	data := make([]byte, 4*quadVertexStride)
	off := 0
	for _, v := range q.V {
		binary.LittleEndian.PutUint32(data[off+0:], math.Float32bits(v.X))
		binary.LittleEndian.PutUint32(data[off+4:], math.Float32bits(v.Y))
		binary.LittleEndian.PutUint32(data[off+8:], math.Float32bits(v.U))
		binary.LittleEndian.PutUint32(data[off+12:], math.Float32bits(v.V))
		off += quadVertexStride
	}
	return data
}

// QuadIndexData returns the index buffer for one quad as two triangles,
// using the pattern 0,1,2, 2,3,0, serialized as little-endian uint16.
func QuadIndexData() []byte {
	indices := []uint16{0, 1, 2, 2, 3, 0}
	data := make([]byte, len(indices)*2)
	for i, idx := range indices {
		binary.LittleEndian.PutUint16(data[i*2:], idx)
	}
	return data
}
