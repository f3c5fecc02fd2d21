// Copyright (c) 2026, The imdraw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package painter

import (
	"sync"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/imdraw/imdraw"
	"github.com/imdraw/imdraw/render"
)

// Renderer is the GPU collaborator driven by the [Painter]. The
// concrete implementation is [render.Renderer]; tests substitute
// their own. Texture and buffer updates are called under the render
// state's write lock, Render under its read lock.
type Renderer interface {

	// UpdateTexture creates or updates the texture for id from delta.
	UpdateTexture(device *wgpu.Device, queue *wgpu.Queue, id imdraw.TextureID, delta *imdraw.ImageDelta)

	// UpdateBuffers uploads the vertex and index data for primitives,
	// to be drawn by the following Render call.
	UpdateBuffers(device *wgpu.Device, queue *wgpu.Queue, primitives []imdraw.ClippedPrimitive, screen *imdraw.ScreenDescriptor)

	// Render records the draw calls for primitives into cmd,
	// targeting output. It records only; submission is the caller's.
	Render(cmd *wgpu.CommandEncoder, output *wgpu.TextureView, primitives []imdraw.ClippedPrimitive, screen *imdraw.ScreenDescriptor, depth *wgpu.RenderPassDepthStencilAttachment)

	// FreeTexture releases the texture for id.
	FreeTexture(id imdraw.TextureID)

	// Release frees all GPU resources held by the renderer.
	Release()
}

// RendererConstructor makes a [Renderer] for the given device,
// target texture format, and multisample count.
type RendererConstructor func(device *wgpu.Device, format wgpu.TextureFormat, samples int) Renderer

// RenderState is the lazily-created bundle holding the renderer for a
// surface whose texture format is known. It is shared: the [Painter]
// and any callback holding the pointer from [Painter.RenderState] see
// the same state, which lives as long as any holder does. The
// embedded lock protects Renderer: mutation (texture and buffer
// updates, frees) takes the write lock, draw recording the read lock,
// so custom paint callbacks can record concurrently.
type RenderState struct {
	sync.RWMutex

	// Renderer performs the GPU work. Hold the lock to use it.
	Renderer Renderer

	// TargetFormat is the surface texture format the Renderer was
	// constructed for, fixed for the life of the state.
	TargetFormat wgpu.TextureFormat
}

// Painter owns the optional [RenderState] for one window and the
// per-frame paint entry point. The zero of its lifecycle is
// surface-less: all GPU work is deferred until [Painter.SetWindow]
// attaches a surface, because device and format selection need one.
// The public API expects single-goroutine use in the frame loop.
type Painter struct {
	renderState *RenderState
	newRenderer RendererConstructor
	samples     int
}

// New returns a Painter with no render state, drawing with the given
// multisample count (1 for none) once a window is attached.
func New(samples int) *Painter {
	if samples <= 0 {
		samples = 1
	}
	return &Painter{
		samples: samples,
		newRenderer: func(device *wgpu.Device, format wgpu.TextureFormat, samples int) Renderer {
			return render.NewRenderer(device, format, samples)
		},
	}
}

// RenderState returns the shared render state, or nil before the
// first successful [Painter.SetWindow]. Non-blocking and
// side-effect-free; callers may hold the result across frames.
func (pt *Painter) RenderState() *RenderState {
	return pt.renderState
}

// SetWindow attaches a window surface, creating the render state on
// the first call with a non-nil surface. Must be called before any
// paint call does work. The caller guarantees the underlying window
// outlives the surface. A nil surface leaves the painter as-is:
// before first attachment paint calls stay no-ops.
func (pt *Painter) SetWindow(device *wgpu.Device, adapter *wgpu.Adapter, surface Surface) {
	if surface == nil {
		return
	}
	pt.ensureRenderState(device, adapter, surface)
}

// ensureRenderState creates the render state if it does not yet
// exist, selecting the first format the surface supports on adapter.
// Idempotent: once created, later calls are no-ops even with a
// different surface. The format is assumed stable for the process
// lifetime.
func (pt *Painter) ensureRenderState(device *wgpu.Device, adapter *wgpu.Adapter, surface Surface) {
	if pt.renderState != nil {
		return
	}
	formats := surface.SupportedFormats(adapter)
	if len(formats) == 0 {
		return
	}
	format := formats[0]
	pt.renderState = &RenderState{
		Renderer:     pt.newRenderer(device, format, pt.samples),
		TargetFormat: format,
	}
}

// MaxTextureSide returns the device's maximum 2D texture dimension.
// Reports false before the first surface attachment, when no device
// pairing has been established.
func (pt *Painter) MaxTextureSide(device *wgpu.Device) (int, bool) {
	if pt.renderState == nil {
		return 0, false
	}
	limits := device.GetLimits()
	return int(limits.Limits.MaxTextureDimension2D), true
}

// PaintAndUpdateTextures is the per-frame paint entry point. It
// applies the texture additions in textures and uploads the buffer
// data for primitives, records the draw calls into cmd targeting
// output with no depth-stencil attachment, and then frees the
// textures removed in textures. Frees come strictly after recording:
// cmd has not executed yet and may reference them. Width and height
// are the output size in physical pixels and pixelsPerPoint the DPI
// scale. Before the first surface attachment this is a silent no-op,
// so callers may paint before a window exists.
func (pt *Painter) PaintAndUpdateTextures(pixelsPerPoint float32, primitives []imdraw.ClippedPrimitive, textures *imdraw.TexturesDelta, device *wgpu.Device, cmd *wgpu.CommandEncoder, queue *wgpu.Queue, width, height uint32, output *wgpu.TextureView) {
	rs := pt.renderState
	if rs == nil {
		return
	}
	screen := imdraw.NewScreenDescriptor(int(width), int(height), pixelsPerPoint)

	rs.Lock()
	for i := range textures.Set {
		set := &textures.Set[i]
		rs.Renderer.UpdateTexture(device, queue, set.ID, &set.Delta)
	}
	rs.Renderer.UpdateBuffers(device, queue, primitives, &screen)
	rs.Unlock()

	rs.RLock()
	rs.Renderer.Render(cmd, output, primitives, &screen, nil)
	rs.RUnlock()

	rs.Lock()
	for _, id := range textures.Free {
		rs.Renderer.FreeTexture(id)
	}
	rs.Unlock()
}

// Destroy is reserved for explicit teardown. It is currently a no-op:
// the ordering of renderer, surface and device release on shutdown is
// unresolved, and a shared render state may still be held elsewhere.
// TODO: release the renderer here once RenderState tracks its holders.
func (pt *Painter) Destroy() {
}
