// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/pixelaa"
)

// Pipeline errors.
var (
	// ErrNilDevice is returned when the pipeline is created without a device.
	ErrNilDevice = errors.New("gpu: device is nil")

	// ErrPipelineNotInitialized is returned when drawing before Init.
	ErrPipelineNotInitialized = errors.New("gpu: smooth pipeline not initialized")

	// ErrNilTextureView is returned when building frame resources without
	// an uploaded texture.
	ErrNilTextureView = errors.New("gpu: texture view is nil")
)

// quadVertexStride is the byte stride per vertex in the smooth pipeline.
// Layout per vertex:
//
//	uv (vec2<f32>) = 8 bytes  (location 0)
//
// Positions are derived in vs_main from the uv corner and the uniform
// transform, so the unit quad is the only vertex data ever uploaded.
const quadVertexStride = 8

// quadIndexCount is the index count for one two-triangle quad.
const quadIndexCount = 6

// SmoothPipeline manages GPU resources for antialiased pixel-art
// rendering. Each image is drawn as a single textured quad; the vertex
// stage expands the quad by half the smooth zone and the fragment stage
// snaps UVs so that one hardware linear tap produces at most a
// one-screen-pixel blend band between texels.
//
// Architecture:
//
//	SmoothPipeline owns shader, layouts, pipeline, sampler
//	FrameResources hold per-draw buffers and the bind group
//	bind groups are created per texture (uniform + texture + sampler)
type SmoothPipeline struct {
	device hal.Device
	queue  hal.Queue

	// GPU objects for the render pipeline.
	shader        hal.ShaderModule
	uniformLayout hal.BindGroupLayout
	pipeLayout    hal.PipelineLayout
	pipeline      hal.RenderPipeline

	// Sampler shared by every draw. Linear filtering is mandatory:
	// the fragment shader relies on the hardware lerp to realize the
	// smoothing blend, and clamp-to-edge keeps the expanded quad's
	// out-of-range UVs from wrapping.
	sampler hal.Sampler
}

// NewSmoothPipeline creates a new smooth pipeline with the given device
// and queue. GPU objects are not created until Init is called.
func NewSmoothPipeline(device hal.Device, queue hal.Queue) (*SmoothPipeline, error) {
	if device == nil {
		return nil, ErrNilDevice
	}
	return &SmoothPipeline{
		device: device,
		queue:  queue,
	}, nil
}

// Init compiles the shader and creates the render pipeline. Safe to
// call more than once; subsequent calls are no-ops.
func (p *SmoothPipeline) Init() error {
	if p.pipeline != nil {
		return nil
	}
	return p.createPipeline()
}

// Initialized reports whether Init has completed successfully.
func (p *SmoothPipeline) Initialized() bool {
	return p.pipeline != nil
}

// Destroy releases all GPU resources held by the pipeline. Safe to call
// multiple times or on a pipeline with no allocated resources.
func (p *SmoothPipeline) Destroy() {
	if p.device == nil {
		return
	}
	if p.pipeline != nil {
		p.device.DestroyRenderPipeline(p.pipeline)
		p.pipeline = nil
	}
	if p.sampler != nil {
		p.device.DestroySampler(p.sampler)
		p.sampler = nil
	}
	if p.pipeLayout != nil {
		p.device.DestroyPipelineLayout(p.pipeLayout)
		p.pipeLayout = nil
	}
	if p.uniformLayout != nil {
		p.device.DestroyBindGroupLayout(p.uniformLayout)
		p.uniformLayout = nil
	}
	if p.shader != nil {
		p.device.DestroyShaderModule(p.shader)
		p.shader = nil
	}
}

// createPipeline compiles the smooth shader and creates the render
// pipeline with premultiplied alpha blending.
func (p *SmoothPipeline) createPipeline() error {
	if smoothShaderSource == "" {
		return fmt.Errorf("pixelaa shader source is empty")
	}

	shader, err := p.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "pixelaa_smooth_shader",
		Source: hal.ShaderSource{WGSL: smoothShaderSource},
	})
	if err != nil {
		return fmt.Errorf("compile pixelaa shader: %w", err)
	}
	p.shader = shader

	// Bind group layout:
	//   Binding 0: SmoothUniforms (uniform buffer, vertex+fragment)
	//   Binding 1: pixel-art texture (texture_2d, fragment)
	//   Binding 2: Sampler (fragment)
	uniformLayout, err := p.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "pixelaa_uniform_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageVertex | gputypes.ShaderStageFragment,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
			},
			{
				Binding:    1,
				Visibility: gputypes.ShaderStageFragment,
				Texture: &gputypes.TextureBindingLayout{
					SampleType:    gputypes.TextureSampleTypeFloat,
					ViewDimension: gputypes.TextureViewDimension2D,
				},
			},
			{
				Binding:    2,
				Visibility: gputypes.ShaderStageFragment,
				Sampler:    &gputypes.SamplerBindingLayout{Type: gputypes.SamplerBindingTypeFiltering},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("create pixelaa uniform layout: %w", err)
	}
	p.uniformLayout = uniformLayout

	pipeLayout, err := p.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "pixelaa_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{p.uniformLayout},
	})
	if err != nil {
		return fmt.Errorf("create pixelaa pipeline layout: %w", err)
	}
	p.pipeLayout = pipeLayout

	sampler, err := p.device.CreateSampler(&hal.SamplerDescriptor{
		Label:        "pixelaa_sampler",
		AddressModeU: gputypes.AddressModeClampToEdge,
		AddressModeV: gputypes.AddressModeClampToEdge,
		AddressModeW: gputypes.AddressModeClampToEdge,
		MagFilter:    gputypes.FilterModeLinear,
		MinFilter:    gputypes.FilterModeLinear,
		MipmapFilter: gputypes.FilterModeLinear,
	})
	if err != nil {
		return fmt.Errorf("create pixelaa sampler: %w", err)
	}
	p.sampler = sampler

	premulBlend := gputypes.BlendStatePremultiplied()
	pipeline, err := p.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  "pixelaa_smooth_pipeline",
		Layout: p.pipeLayout,
		Vertex: hal.VertexState{
			Module:     p.shader,
			EntryPoint: "vs_main",
			Buffers:    quadVertexLayout(),
		},
		Fragment: &hal.FragmentState{
			Module:     p.shader,
			EntryPoint: "fs_main",
			Targets: []gputypes.ColorTargetState{
				{
					Format:    gputypes.TextureFormatBGRA8Unorm,
					Blend:     &premulBlend,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return fmt.Errorf("create pixelaa pipeline: %w", err)
	}
	p.pipeline = pipeline

	return nil
}

// FrameResources holds per-draw GPU resources for one quad.
type FrameResources struct {
	vertBuf    hal.Buffer
	idxBuf     hal.Buffer
	uniformBuf hal.Buffer
	bindGroup  hal.BindGroup
	indexCount uint32
}

// Destroy releases the frame resources. Safe on nil.
func (r *FrameResources) Destroy(device hal.Device) {
	if r == nil || device == nil {
		return
	}
	if r.bindGroup != nil {
		device.DestroyBindGroup(r.bindGroup)
		r.bindGroup = nil
	}
	if r.uniformBuf != nil {
		device.DestroyBuffer(r.uniformBuf)
		r.uniformBuf = nil
	}
	if r.idxBuf != nil {
		device.DestroyBuffer(r.idxBuf)
		r.idxBuf = nil
	}
	if r.vertBuf != nil {
		device.DestroyBuffer(r.vertBuf)
		r.vertBuf = nil
	}
}

// BuildFrameResources uploads the unit quad, indices and uniforms for
// drawing a texture of imageSize texels under state into a viewport of
// the given pixel dimensions, and binds them against view.
func (p *SmoothPipeline) BuildFrameResources(
	view hal.TextureView,
	state pixelaa.RenderState,
	imageSize pixelaa.Vec2,
	viewportW, viewportH uint32,
) (*FrameResources, error) {
	if p.pipeline == nil {
		return nil, ErrPipelineNotInitialized
	}
	if view == nil {
		return nil, ErrNilTextureView
	}

	vertBuf, err := p.createAndUploadBuffer("pixelaa_quad_verts", unitQuadVertexData(),
		gputypes.BufferUsageVertex|gputypes.BufferUsageCopyDst)
	if err != nil {
		return nil, fmt.Errorf("create vertex buffer: %w", err)
	}

	idxBuf, err := p.createAndUploadBuffer("pixelaa_quad_indices", unitQuadIndexData(),
		gputypes.BufferUsageIndex|gputypes.BufferUsageCopyDst)
	if err != nil {
		p.device.DestroyBuffer(vertBuf)
		return nil, fmt.Errorf("create index buffer: %w", err)
	}

	uniforms := BuildUniforms(state, imageSize, viewportW, viewportH)
	uniformBuf, err := p.createAndUploadBuffer("pixelaa_uniforms", uniforms.Bytes(),
		gputypes.BufferUsageUniform|gputypes.BufferUsageCopyDst)
	if err != nil {
		p.device.DestroyBuffer(idxBuf)
		p.device.DestroyBuffer(vertBuf)
		return nil, fmt.Errorf("create uniform buffer: %w", err)
	}

	bindGroup, err := p.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  "pixelaa_bind",
		Layout: p.uniformLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.BufferBinding{
				Buffer: uniformBuf.NativeHandle(), Offset: 0, Size: smoothUniformSize,
			}},
			{Binding: 1, Resource: gputypes.TextureViewBinding{
				TextureView: view.NativeHandle(),
			}},
			{Binding: 2, Resource: gputypes.SamplerBinding{
				Sampler: p.sampler.NativeHandle(),
			}},
		},
	})
	if err != nil {
		p.device.DestroyBuffer(uniformBuf)
		p.device.DestroyBuffer(idxBuf)
		p.device.DestroyBuffer(vertBuf)
		return nil, fmt.Errorf("create bind group: %w", err)
	}

	return &FrameResources{
		vertBuf:    vertBuf,
		idxBuf:     idxBuf,
		uniformBuf: uniformBuf,
		bindGroup:  bindGroup,
		indexCount: quadIndexCount,
	}, nil
}

// RecordDraws records the quad draw into an existing render pass.
func (p *SmoothPipeline) RecordDraws(rp hal.RenderPassEncoder, resources *FrameResources) {
	if resources == nil || resources.indexCount == 0 {
		return
	}
	rp.SetPipeline(p.pipeline)
	rp.SetBindGroup(0, resources.bindGroup, nil)
	rp.SetVertexBuffer(0, resources.vertBuf, 0)
	rp.SetIndexBuffer(resources.idxBuf, gputypes.IndexFormatUint16, 0)
	rp.DrawIndexed(resources.indexCount, 1, 0, 0, 0)
}

// createAndUploadBuffer creates a GPU buffer and uploads data.
func (p *SmoothPipeline) createAndUploadBuffer(label string, data []byte, usage gputypes.BufferUsage) (hal.Buffer, error) {
	buf, err := p.device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  uint64(len(data)),
		Usage: usage,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", label, err)
	}
	p.queue.WriteBuffer(buf, 0, data)
	return buf, nil
}

// quadVertexLayout returns the vertex buffer layout for the smooth
// pipeline. Matches VertexInput in pixelaa.wgsl:
//
//	location 0: uv (vec2<f32>)
func quadVertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: quadVertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0}, // uv
			},
		},
	}
}

// unitQuadVertexData serializes the unit-quad UV corners
// (top-left, top-right, bottom-right, bottom-left) for GPU upload.
func unitQuadVertexData() []byte {
	corners := [4][2]float32{
		{0, 0},
		{1, 0},
		{1, 1},
		{0, 1},
	}
	data := make([]byte, len(corners)*quadVertexStride)
	off := 0
	for _, c := range corners {
		binary.LittleEndian.PutUint32(data[off:], math.Float32bits(c[0]))
		binary.LittleEndian.PutUint32(data[off+4:], math.Float32bits(c[1]))
		off += quadVertexStride
	}
	return data
}

// unitQuadIndexData serializes the two-triangle index pattern
// 0,1,2, 2,3,0 for GPU upload.
func unitQuadIndexData() []byte {
	indices := [quadIndexCount]uint16{0, 1, 2, 2, 3, 0}
	data := make([]byte, len(indices)*2)
	for i, idx := range indices {
		binary.LittleEndian.PutUint16(data[i*2:], idx)
	}
	return data
}
