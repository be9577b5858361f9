package gpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/pixelaa/internal/texture"
)

// ErrNilSourceTexture is returned when uploading a nil texture.
var ErrNilSourceTexture = errors.New("gpu: source texture is nil")

// UploadTexture creates a GPU texture from src and uploads its RGBA
// pixel data via the queue. The returned view is ready for binding
// with BuildFrameResources. The caller owns both handles and must
// destroy them when done.
func UploadTexture(device hal.Device, queue hal.Queue, src *texture.Texture, label string) (hal.Texture, hal.TextureView, error) {
	if device == nil {
		return nil, nil, ErrNilDevice
	}
	if src == nil {
		return nil, nil, ErrNilSourceTexture
	}

	tw, th := src.Bounds()
	w := uint32(tw) //nolint:gosec // texture dimensions are validated positive
	h := uint32(th) //nolint:gosec // texture dimensions are validated positive

	tex, err := device.CreateTexture(&hal.TextureDescriptor{
		Label:         label,
		Size:          hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("create texture %q: %w", label, err)
	}

	view, err := device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label:         label + "_view",
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Dimension:     gputypes.TextureViewDimension2D,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: 1,
	})
	if err != nil {
		device.DestroyTexture(tex)
		return nil, nil, fmt.Errorf("create texture view %q: %w", label, err)
	}

	queue.WriteTexture(
		&hal.ImageCopyTexture{
			Texture:  tex,
			MipLevel: 0,
		},
		src.Data(),
		&hal.ImageDataLayout{
			Offset:       0,
			BytesPerRow:  w * 4,
			RowsPerImage: h,
		},
		&hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
	)

	return tex, view, nil
}
