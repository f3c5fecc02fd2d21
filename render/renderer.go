// Copyright (c) 2026, The imdraw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	_ "embed"
	"fmt"
	"image"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/slicesx"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/imdraw/imdraw"
)

//go:embed shaders/paint.wgsl
var paintShader string

// Renderer uploads imdraw meshes and textures to a WebGPU device and
// records the draw calls to replay them. It owns the pipeline, the
// grow-only vertex and index buffers, and the bind group per texture.
// All methods must be called from the same goroutine that owns the
// device, in the order UpdateTexture*, UpdateBuffers, Render,
// FreeTexture* within one frame.
type Renderer struct {
	format  wgpu.TextureFormat
	samples int

	pipeline     *wgpu.RenderPipeline
	sampler      *wgpu.Sampler
	textureGroup *wgpu.BindGroupLayout

	screenUniform *wgpu.Buffer
	screenGroup   *wgpu.BindGroup

	vertex sizedBuffer
	index  sizedBuffer

	textures map[imdraw.TextureID]*texture

	// per-mesh draw ranges for the primitives passed to the last
	// UpdateBuffers call, consumed in the same order by Render.
	meshes []meshRange

	// staging slices reused across frames
	verts []imdraw.Vertex
	idxs  []uint32
}

// texture is one device texture with its fragment bind group.
type texture struct {
	texture   *wgpu.Texture
	view      *wgpu.TextureView
	bindGroup *wgpu.BindGroup
	size      image.Point
}

// meshRange locates one mesh inside the shared vertex and index buffers.
type meshRange struct {
	texture    imdraw.TextureID
	baseVertex int32
	firstIndex uint32
	indexCount uint32
}

// NewRenderer returns a Renderer that draws into targets of the given
// texture format, with the given multisample count (1 for none).
// Errors during pipeline creation are logged and leave the Renderer
// inert: Render then records nothing.
func NewRenderer(device *wgpu.Device, format wgpu.TextureFormat, samples int) *Renderer {
	rd := &Renderer{
		format:   format,
		samples:  samples,
		textures: make(map[imdraw.TextureID]*texture),
	}
	rd.vertex.label = "imdraw.vertex"
	rd.vertex.usage = wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst
	rd.index.label = "imdraw.index"
	rd.index.usage = wgpu.BufferUsageIndex | wgpu.BufferUsageCopyDst
	errors.Log(rd.config(device))
	return rd
}

// screenUniformSize is the byte size of the screen uniform block:
// vec2<f32> size in points plus padding to 16-byte alignment.
const screenUniformSize = 16

func (rd *Renderer) config(device *wgpu.Device) error {
	shader, err := device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "imdraw.paint",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: paintShader},
	})
	if err != nil {
		return err
	}
	defer shader.Release()

	rd.sampler, err = device.CreateSampler(&wgpu.SamplerDescriptor{
		Label:         "imdraw.sampler",
		AddressModeU:  wgpu.AddressModeClampToEdge,
		AddressModeV:  wgpu.AddressModeClampToEdge,
		AddressModeW:  wgpu.AddressModeClampToEdge,
		MagFilter:     wgpu.FilterModeLinear,
		MinFilter:     wgpu.FilterModeLinear,
		MipmapFilter:  wgpu.MipmapFilterModeNearest,
		MaxAnisotropy: 1,
	})
	if err != nil {
		return err
	}

	screenLayout, err := device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "imdraw.screen.layout",
		Entries: []wgpu.BindGroupLayoutEntry{{
			Binding:    0,
			Visibility: wgpu.ShaderStageVertex,
			Buffer: wgpu.BufferBindingLayout{
				Type:           wgpu.BufferBindingTypeUniform,
				MinBindingSize: screenUniformSize,
			},
		}},
	})
	if err != nil {
		return err
	}
	defer screenLayout.Release()

	rd.textureGroup, err = device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "imdraw.texture.layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageFragment,
				Texture: wgpu.TextureBindingLayout{
					SampleType:    wgpu.TextureSampleTypeFloat,
					ViewDimension: wgpu.TextureViewDimension2D,
				},
			},
			{
				Binding:    1,
				Visibility: wgpu.ShaderStageFragment,
				Sampler: wgpu.SamplerBindingLayout{
					Type: wgpu.SamplerBindingTypeFiltering,
				},
			},
		},
	})
	if err != nil {
		return err
	}

	rd.screenUniform, err = device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "imdraw.screen",
		Contents: make([]byte, screenUniformSize),
		Usage:    wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return err
	}

	rd.screenGroup, err = device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "imdraw.screen",
		Layout: screenLayout,
		Entries: []wgpu.BindGroupEntry{{
			Binding: 0,
			Buffer:  rd.screenUniform,
			Size:    screenUniformSize,
		}},
	})
	if err != nil {
		return err
	}

	layout, err := device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            "imdraw.paint",
		BindGroupLayouts: []*wgpu.BindGroupLayout{screenLayout, rd.textureGroup},
	})
	if err != nil {
		return err
	}
	defer layout.Release()

	rd.pipeline, err = device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  "imdraw.paint",
		Layout: layout,
		Vertex: wgpu.VertexState{
			Module:     shader,
			EntryPoint: "vs_main",
			Buffers: []wgpu.VertexBufferLayout{{
				ArrayStride: imdraw.VertexSize,
				StepMode:    wgpu.VertexStepModeVertex,
				Attributes: []wgpu.VertexAttribute{
					{Format: wgpu.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
					{Format: wgpu.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1},
					{Format: wgpu.VertexFormatUnorm8x4, Offset: 16, ShaderLocation: 2},
				},
			}},
		},
		Fragment: &wgpu.FragmentState{
			Module:     shader,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{{
				Format: rd.format,
				Blend: &wgpu.BlendState{
					Color: wgpu.BlendComponent{
						SrcFactor: wgpu.BlendFactorSrcAlpha,
						DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
						Operation: wgpu.BlendOperationAdd,
					},
					Alpha: wgpu.BlendComponent{
						SrcFactor: wgpu.BlendFactorOne,
						DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
						Operation: wgpu.BlendOperationAdd,
					},
				},
				WriteMask: wgpu.ColorWriteMaskAll,
			}},
		},
		Primitive: wgpu.PrimitiveState{
			Topology: wgpu.PrimitiveTopologyTriangleList,
		},
		Multisample: wgpu.MultisampleState{
			Count: uint32(rd.samples),
			Mask:  0xFFFFFFFF,
		},
	})
	return err
}

// UpdateTexture creates or updates the device texture for id from the
// given delta. A whole delta (Pos == nil) replaces the texture,
// reallocating if the size changed; a partial delta writes the region
// at Pos into the existing texture, which must already exist and
// contain the region.
func (rd *Renderer) UpdateTexture(device *wgpu.Device, queue *wgpu.Queue, id imdraw.TextureID, delta *imdraw.ImageDelta) {
	rimg := ImageToRGBA(delta.Image)
	sz := rimg.Rect.Size()

	if delta.Pos == nil {
		tx, ok := rd.textures[id]
		if !ok || tx.size != sz {
			if ok {
				tx.release()
			}
			tx = errors.Log1(rd.newTexture(device, id, sz))
			if tx == nil {
				return
			}
			rd.textures[id] = tx
		}
		rd.writeTexture(queue, tx, image.Point{}, rimg)
		return
	}

	tx, ok := rd.textures[id]
	if !ok {
		errors.Log(fmt.Errorf("render.Renderer: partial update of texture %d, which does not exist", id))
		return
	}
	pos := *delta.Pos
	if pos.X+sz.X > tx.size.X || pos.Y+sz.Y > tx.size.Y {
		errors.Log(fmt.Errorf("render.Renderer: partial update at %v size %v exceeds texture %d size %v", pos, sz, id, tx.size))
		return
	}
	rd.writeTexture(queue, tx, pos, rimg)
}

func (rd *Renderer) newTexture(device *wgpu.Device, id imdraw.TextureID, sz image.Point) (*texture, error) {
	t, err := device.CreateTexture(&wgpu.TextureDescriptor{
		Label: fmt.Sprintf("imdraw.texture.%d", id),
		Size: wgpu.Extent3D{
			Width:              uint32(sz.X),
			Height:             uint32(sz.Y),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        wgpu.TextureFormatRGBA8UnormSrgb,
		Usage:         wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst,
	})
	if err != nil {
		return nil, err
	}
	vw, err := t.CreateView(nil)
	if err != nil {
		t.Release()
		return nil, err
	}
	bg, err := device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  fmt.Sprintf("imdraw.texture.%d", id),
		Layout: rd.textureGroup,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, TextureView: vw},
			{Binding: 1, Sampler: rd.sampler},
		},
	})
	if err != nil {
		vw.Release()
		t.Release()
		return nil, err
	}
	return &texture{texture: t, view: vw, bindGroup: bg, size: sz}, nil
}

func (rd *Renderer) writeTexture(queue *wgpu.Queue, tx *texture, pos image.Point, rimg *image.RGBA) {
	sz := rimg.Rect.Size()
	queue.WriteTexture(
		&wgpu.ImageCopyTexture{
			Aspect:   wgpu.TextureAspectAll,
			Texture:  tx.texture,
			MipLevel: 0,
			Origin:   wgpu.Origin3D{X: uint32(pos.X), Y: uint32(pos.Y), Z: 0},
		},
		rimg.Pix,
		&wgpu.TextureDataLayout{
			Offset:       0,
			BytesPerRow:  4 * uint32(sz.X),
			RowsPerImage: uint32(sz.Y),
		},
		&wgpu.Extent3D{
			Width:              uint32(sz.X),
			Height:             uint32(sz.Y),
			DepthOrArrayLayers: 1,
		},
	)
}

// FreeTexture releases the device texture for id. Freeing an unknown
// id is a no-op.
func (rd *Renderer) FreeTexture(id imdraw.TextureID) {
	tx, ok := rd.textures[id]
	if !ok {
		return
	}
	tx.release()
	delete(rd.textures, id)
}

// UpdateBuffers uploads the vertex and index data for all primitives
// into the shared buffers and updates the screen uniform. Must be
// called before Render each frame, with the same primitives.
func (rd *Renderer) UpdateBuffers(device *wgpu.Device, queue *wgpu.Queue, primitives []imdraw.ClippedPrimitive, screen *imdraw.ScreenDescriptor) {
	if rd.pipeline == nil {
		return
	}
	pts := screen.SizeInPoints()
	su := [4]float32{pts.X, pts.Y, 0, 0}
	errors.Log(queue.WriteBuffer(rd.screenUniform, 0, wgpu.ToBytes(su[:])))

	nv, ni := 0, 0
	for i := range primitives {
		mesh := &primitives[i].Mesh
		if mesh.IsEmpty() {
			continue
		}
		nv += len(mesh.Vertices)
		ni += len(mesh.Indices)
	}
	rd.meshes = slicesx.SetLength(rd.meshes, len(primitives))
	rd.verts = slicesx.SetLength(rd.verts, nv)
	rd.idxs = slicesx.SetLength(rd.idxs, ni)

	nv, ni = 0, 0
	for i := range primitives {
		mesh := &primitives[i].Mesh
		if mesh.IsEmpty() {
			rd.meshes[i] = meshRange{texture: mesh.Texture}
			continue
		}
		rd.meshes[i] = meshRange{
			texture:    mesh.Texture,
			baseVertex: int32(nv),
			firstIndex: uint32(ni),
			indexCount: uint32(len(mesh.Indices)),
		}
		copy(rd.verts[nv:], mesh.Vertices)
		copy(rd.idxs[ni:], mesh.Indices)
		nv += len(mesh.Vertices)
		ni += len(mesh.Indices)
	}
	if nv > 0 {
		errors.Log(rd.vertex.upload(device, queue, wgpu.ToBytes(rd.verts)))
		errors.Log(rd.index.upload(device, queue, wgpu.ToBytes(rd.idxs)))
	}
}

// Render records one draw call per non-empty mesh into a render pass
// on output, loading the existing contents (no clear). The depth
// attachment, if non-nil, is passed through to the pass descriptor
// untouched. Clip rectangles become scissor rects, clamped to the
// physical target size; meshes whose scissor is empty are skipped.
func (rd *Renderer) Render(cmd *wgpu.CommandEncoder, output *wgpu.TextureView, primitives []imdraw.ClippedPrimitive, screen *imdraw.ScreenDescriptor, depth *wgpu.RenderPassDepthStencilAttachment) {
	if rd.pipeline == nil || len(primitives) != len(rd.meshes) {
		return
	}
	rp := cmd.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "imdraw.paint",
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:    output,
			LoadOp:  wgpu.LoadOpLoad,
			StoreOp: wgpu.StoreOpStore,
		}},
		DepthStencilAttachment: depth,
	})
	rp.SetPipeline(rd.pipeline)
	rp.SetBindGroup(0, rd.screenGroup, nil)
	if rd.vertex.buffer != nil {
		rp.SetVertexBuffer(0, rd.vertex.buffer, 0, wgpu.WholeSize)
		rp.SetIndexBuffer(rd.index.buffer, wgpu.IndexFormatUint32, 0, wgpu.WholeSize)
	}

	for i := range primitives {
		mr := &rd.meshes[i]
		if mr.indexCount == 0 {
			continue
		}
		tx, ok := rd.textures[mr.texture]
		if !ok {
			errors.Log(fmt.Errorf("render.Renderer: mesh references texture %d, which does not exist", mr.texture))
			continue
		}
		sc, ok := scissorRect(primitives[i].ClipRect, screen.PixelsPerPoint, screen.Size)
		if !ok {
			continue
		}
		rp.SetScissorRect(sc.x, sc.y, sc.w, sc.h)
		rp.SetBindGroup(1, tx.bindGroup, nil)
		rp.DrawIndexed(mr.indexCount, 1, mr.firstIndex, mr.baseVertex, 0)
	}
	rp.End()
	rp.Release()
}

// Release frees all device resources held by the Renderer.
// The Renderer must not be used after this.
func (rd *Renderer) Release() {
	for id, tx := range rd.textures {
		tx.release()
		delete(rd.textures, id)
	}
	rd.vertex.release()
	rd.index.release()
	if rd.screenGroup != nil {
		rd.screenGroup.Release()
		rd.screenGroup = nil
	}
	if rd.screenUniform != nil {
		rd.screenUniform.Release()
		rd.screenUniform = nil
	}
	if rd.textureGroup != nil {
		rd.textureGroup.Release()
		rd.textureGroup = nil
	}
	if rd.sampler != nil {
		rd.sampler.Release()
		rd.sampler = nil
	}
	if rd.pipeline != nil {
		rd.pipeline.Release()
		rd.pipeline = nil
	}
}

func (tx *texture) release() {
	tx.bindGroup.Release()
	tx.view.Release()
	tx.texture.Release()
}
