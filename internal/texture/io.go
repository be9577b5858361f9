package texture

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/webp"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the image format is not supported.
	ErrUnsupportedFormat = errors.New("texture: unsupported format")
)

// Load loads a texture from the given file path, choosing the decoder by
// extension. Supported formats: PNG, JPEG, WebP.
func Load(path string) (*Texture, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("texture: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return decodeWith(png.Decode, f)
	case ".jpg", ".jpeg":
		return decodeWith(jpeg.Decode, f)
	case ".webp":
		return decodeWith(webp.Decode, f)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Decode decodes a texture from a reader, auto-detecting the format via
// image.Decode. WebP is registered through the golang.org/x/image/webp
// decoder.
func Decode(r io.Reader) (*Texture, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("texture: decode: %w", err)
	}
	return FromImage(img), nil
}

// decodeWith runs a specific decoder and wraps the result.
func decodeWith(decode func(io.Reader) (image.Image, error), r io.Reader) (*Texture, error) {
	img, err := decode(r)
	if err != nil {
		return nil, fmt.Errorf("texture: decode: %w", err)
	}
	return FromImage(img), nil
}

// SavePNG saves the texture to a PNG file. Mostly useful for inspecting
// generated test patterns.
func (t *Texture) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("texture: create file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return png.Encode(f, t.ToImage())
}
