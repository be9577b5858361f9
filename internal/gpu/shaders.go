// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gpu provides the wgpu render pipeline that executes the smooth
// sampling shader.
package gpu

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
)

// Embedded WGSL shader source, compiled at build time via go:embed.
//
//go:embed shaders/pixelaa.wgsl
var smoothShaderSource string

// GetSmoothShaderSource returns the WGSL source for the smooth sampling
// shader.
func GetSmoothShaderSource() string {
	return smoothShaderSource
}

// CompileShaderToSPIRV compiles WGSL source to a SPIR-V uint32 slice for
// backends that do not consume WGSL directly.
func CompileShaderToSPIRV(wgslSource string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(wgslSource)
	if err != nil {
		return nil, fmt.Errorf("gpu: compile shader: %w", err)
	}

	// SPIR-V is little-endian 32-bit words.
	spirvCode := make([]uint32, len(spirvBytes)/4)
	for i := range spirvCode {
		spirvCode[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}

	return spirvCode, nil
}

// CreateSPIRVShaderModule creates a HAL shader module from SPIR-V code.
func CreateSPIRVShaderModule(device hal.Device, label string, spirvCode []uint32) (hal.ShaderModule, error) {
	return device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label: label,
		Source: hal.ShaderSource{
			SPIRV: spirvCode,
		},
	})
}
