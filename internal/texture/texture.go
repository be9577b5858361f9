// Package texture provides the source pixel buffers the samplers read.
//
// A Texture is a plain RGBA8 buffer addressed in integer texel
// coordinates. The package also supplies the linear (bilinear) sampling
// that stands in for the GPU's hardware filter on the CPU path, decoders
// for common image formats, and procedural test patterns for demos and
// tests.
package texture

import (
	"errors"
	"image"
)

// Texture errors.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("texture: invalid dimensions")

	// ErrOutOfBounds is returned when texel coordinates are outside bounds.
	ErrOutOfBounds = errors.New("texture: coordinates out of bounds")
)

// Texture is an RGBA8 pixel buffer, 4 bytes per texel, row-major.
type Texture struct {
	data   []byte
	width  int
	height int
}

// New creates a texture of the given dimensions, initially transparent.
func New(width, height int) (*Texture, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Texture{
		data:   make([]byte, width*height*4),
		width:  width,
		height: height,
	}, nil
}

// Bounds returns the texture dimensions in texels.
func (t *Texture) Bounds() (width, height int) {
	return t.width, t.height
}

// Data returns the raw RGBA pixel data. The slice aliases the texture's
// storage; it is what gets uploaded to the GPU.
func (t *Texture) Data() []byte {
	return t.data
}

// SetRGBA sets the texel at (x, y). Returns ErrOutOfBounds when the
// coordinates fall outside the texture.
func (t *Texture) SetRGBA(x, y int, r, g, b, a byte) error {
	if x < 0 || x >= t.width || y < 0 || y >= t.height {
		return ErrOutOfBounds
	}
	i := (y*t.width + x) * 4
	t.data[i+0] = r
	t.data[i+1] = g
	t.data[i+2] = b
	t.data[i+3] = a
	return nil
}

// GetRGBA returns the texel at (x, y). Coordinates are clamped to the
// edge, matching the clamp-to-edge address mode the GPU sampler uses.
func (t *Texture) GetRGBA(x, y int) (r, g, b, a byte) {
	x = clamp(x, 0, t.width-1)
	y = clamp(y, 0, t.height-1)
	i := (y*t.width + x) * 4
	return t.data[i+0], t.data[i+1], t.data[i+2], t.data[i+3]
}

// FromImage creates a texture from a standard image.Image.
func FromImage(img image.Image) *Texture {
	bounds := img.Bounds()
	t := &Texture{
		data:   make([]byte, bounds.Dx()*bounds.Dy()*4),
		width:  bounds.Dx(),
		height: bounds.Dy(),
	}
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			t.data[i+0] = byte(r >> 8)
			t.data[i+1] = byte(g >> 8)
			t.data[i+2] = byte(b >> 8)
			t.data[i+3] = byte(a >> 8)
			i += 4
		}
	}
	return t
}

// ToImage converts the texture to an image.RGBA.
func (t *Texture) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, t.width, t.height))
	copy(img.Pix, t.data)
	return img
}

// clamp clamps an integer value to [minVal, maxVal].
func clamp(val, minVal, maxVal int) int {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}
