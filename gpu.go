// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pixelaa

import (
	"errors"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/pixelaa/internal/texture"
)

// DeviceHandle provides GPU device access from the host application.
//
// The host application (e.g., gogpu.App) implements DeviceHandle and
// passes it to NewGPURenderer, allowing pixelaa to share the host's GPU
// device. pixelaa RECEIVES the device from the host, it does NOT create
// one.
//
// DeviceHandle is an alias for gpucontext.DeviceProvider, providing a
// pixelaa-specific name for the interface while maintaining full
// compatibility with the gpucontext ecosystem.
type DeviceHandle = gpucontext.DeviceProvider

// ErrNilDeviceHandle is returned when creating a GPU renderer without a
// device handle from the host.
var ErrNilDeviceHandle = errors.New("pixelaa: nil device handle")

// GPURenderer renders through the host's GPU device where possible.
//
// For pixmap targets rendering falls back to the software path; GPU
// surface targets go through the hal pipeline in internal/gpu, which the
// host drives with its own frame loop (see internal/gpu.SmoothPipeline).
type GPURenderer struct {
	// handle is the GPU device handle from the host application.
	handle DeviceHandle

	// softwareFallback serves CPU targets.
	softwareFallback *SoftwareRenderer
}

// NewGPURenderer creates a renderer bound to the host's GPU device.
// The DeviceHandle must be provided by the host application; an error is
// returned when it is nil.
func NewGPURenderer(handle DeviceHandle, opts ...RendererOption) (*GPURenderer, error) {
	if handle == nil {
		return nil, ErrNilDeviceHandle
	}
	return &GPURenderer{
		handle:           handle,
		softwareFallback: NewSoftwareRenderer(opts...),
	}, nil
}

// Draw renders the texture into dst under the given per-frame state.
// Pixmap targets are CPU memory, so this delegates to the software path;
// the GPU device is used for surface rendering driven by the host.
func (r *GPURenderer) Draw(dst *Pixmap, tex *texture.Texture, state RenderState) error {
	return r.softwareFallback.Draw(dst, tex, state)
}

// DeviceHandle returns the underlying device handle. This allows the host
// to hand the device to internal/gpu.Pipeline for surface rendering.
func (r *GPURenderer) DeviceHandle() DeviceHandle {
	return r.handle
}
