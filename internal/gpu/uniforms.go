// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/pixelaa"
)

// smoothUniformSize is the byte size of the uniform buffer.
// Layout, matching SmoothUniforms in pixelaa.wgsl:
//
//	transform   (mat4x4<f32>) = 64 bytes
//	tint        (vec4<f32>)   = 16 bytes
//	image_size  (vec2<f32>)   =  8 bytes
//	texel_scale (vec2<f32>)   =  8 bytes
//	angle       (f32)         =  4 bytes
//	smooth_size (f32)         =  4 bytes
//	flags       (u32)         =  4 bytes
//	_pad        (u32)         =  4 bytes
//
// Total = 112 bytes.
const smoothUniformSize = 112

// Flag bits in the uniform flags word. Must match the FLAG_* constants in
// pixelaa.wgsl.
const (
	flagSmoothing    uint32 = 1 << 0
	flagBoundaryFade uint32 = 1 << 1
)

// SmoothUniforms mirrors the uniform buffer structure in pixelaa.wgsl.
type SmoothUniforms struct {
	// Transform maps rotated local screen-pixel coordinates to clip
	// space (4x4 for alignment, filled row-major from the 2D affine).
	Transform [16]float32

	// Tint is the vertex color (RGBA, non-premultiplied; the shader
	// premultiplies its output).
	Tint [4]float32

	// ImageSize is the texture dimensions in texels.
	ImageSize [2]float32

	// TexelScale is screen pixels per texel along each axis.
	TexelScale [2]float32

	// Angle is the rotation in radians.
	Angle float32

	// SmoothSize is the antialias zone width in screen pixels.
	SmoothSize float32

	// Flags holds the flagSmoothing and flagBoundaryFade bits.
	Flags uint32
}

// BuildUniforms derives the uniform block for drawing a texture of
// imageSize texels under state, into a viewport of the given pixel
// dimensions.
func BuildUniforms(state pixelaa.RenderState, imageSize pixelaa.Vec2, viewportW, viewportH uint32) SmoothUniforms {
	var flags uint32
	if state.Smoothing {
		flags |= flagSmoothing
	}
	if state.BoundaryFade {
		flags |= flagBoundaryFade
	}

	smooth := state.SmoothSize
	if smooth <= 0 {
		smooth = pixelaa.DefaultSmoothSize
	}
	if !state.Smoothing {
		smooth = 0
	}

	tint := state.Tint
	if tint == (pixelaa.RGBA{}) {
		tint = pixelaa.White
	}

	u := SmoothUniforms{
		Tint: [4]float32{
			float32(tint.R), float32(tint.G), float32(tint.B), float32(tint.A),
		},
		ImageSize:  [2]float32{float32(imageSize.X), float32(imageSize.Y)},
		TexelScale: [2]float32{float32(state.Scale.X), float32(state.Scale.Y)},
		Angle:      float32(state.Angle),
		SmoothSize: float32(smooth),
		Flags:      flags,
	}

	// Screen-pixel coordinates (origin at the image center, y down) to
	// clip space: translate by the draw center, normalize to [-1, 1],
	// flip y. Affine 2x3 widened to 4x4 the same way the text pipeline
	// does it:
	//
	//	a b 0 c / d e 0 f / 0 0 1 0 / 0 0 0 1
	w := float64(viewportW)
	h := float64(viewportH)
	u.Transform = [16]float32{
		float32(2 / w), 0, 0, float32(2*state.Center.X/w - 1),
		0, float32(-2 / h), 0, float32(1 - 2*state.Center.Y/h),
		0, 0, 1, 0,
		0, 0, 0, 1,
	}

	return u
}

// Bytes serializes the uniform block for GPU upload, little-endian,
// matching the WGSL std140-compatible layout documented on
// smoothUniformSize.
func (u SmoothUniforms) Bytes() []byte {
	buf := make([]byte, smoothUniformSize)
	off := 0

	putF32 := func(v float32) {
		binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(v))
		off += 4
	}

	for _, v := range u.Transform {
		putF32(v)
	}
	for _, v := range u.Tint {
		putF32(v)
	}
	putF32(u.ImageSize[0])
	putF32(u.ImageSize[1])
	putF32(u.TexelScale[0])
	putF32(u.TexelScale[1])
	putF32(u.Angle)
	putF32(u.SmoothSize)
	binary.LittleEndian.PutUint32(buf[off:], u.Flags)
	// Trailing _pad word stays zero.

	return buf
}
