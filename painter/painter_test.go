// Copyright (c) 2026, The imdraw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package painter

import (
	"image"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/imdraw/imdraw"
	"github.com/stretchr/testify/assert"
)

// stubSurface reports a fixed format list without touching a GPU.
type stubSurface struct {
	formats []wgpu.TextureFormat
}

func (ss *stubSurface) SupportedFormats(adapter *wgpu.Adapter) []wgpu.TextureFormat {
	return ss.formats
}

// stubRenderer records the order of calls made to it.
type stubRenderer struct {
	format wgpu.TextureFormat
	calls  []string
}

func (sr *stubRenderer) UpdateTexture(device *wgpu.Device, queue *wgpu.Queue, id imdraw.TextureID, delta *imdraw.ImageDelta) {
	sr.calls = append(sr.calls, "UpdateTexture")
}

func (sr *stubRenderer) UpdateBuffers(device *wgpu.Device, queue *wgpu.Queue, primitives []imdraw.ClippedPrimitive, screen *imdraw.ScreenDescriptor) {
	sr.calls = append(sr.calls, "UpdateBuffers")
}

func (sr *stubRenderer) Render(cmd *wgpu.CommandEncoder, output *wgpu.TextureView, primitives []imdraw.ClippedPrimitive, screen *imdraw.ScreenDescriptor, depth *wgpu.RenderPassDepthStencilAttachment) {
	sr.calls = append(sr.calls, "Render")
}

func (sr *stubRenderer) FreeTexture(id imdraw.TextureID) {
	sr.calls = append(sr.calls, "FreeTexture")
}

func (sr *stubRenderer) Release() {
	sr.calls = append(sr.calls, "Release")
}

// newStubPainter returns a Painter whose renderer constructor makes
// stubRenderers, and a pointer through which the last one made can
// be inspected.
func newStubPainter() (*Painter, **stubRenderer) {
	pt := New(1)
	last := new(*stubRenderer)
	pt.newRenderer = func(device *wgpu.Device, format wgpu.TextureFormat, samples int) Renderer {
		sr := &stubRenderer{format: format}
		*last = sr
		return sr
	}
	return pt, last
}

func TestRenderStateAbsentUntilAttach(t *testing.T) {
	pt, _ := newStubPainter()
	assert.Nil(t, pt.RenderState())

	pt.SetWindow(nil, nil, &stubSurface{formats: []wgpu.TextureFormat{wgpu.TextureFormatBGRA8Unorm}})
	rs := pt.RenderState()
	assert.NotNil(t, rs)

	// repeated attachment keeps the same state
	pt.SetWindow(nil, nil, &stubSurface{formats: []wgpu.TextureFormat{wgpu.TextureFormatRGBA8Unorm}})
	assert.Same(t, rs, pt.RenderState())
	assert.Equal(t, wgpu.TextureFormatBGRA8Unorm, rs.TargetFormat)
}

func TestSetWindowNilSurface(t *testing.T) {
	pt, _ := newStubPainter()
	pt.SetWindow(nil, nil, nil)
	assert.Nil(t, pt.RenderState())
}

func TestFirstSupportedFormatSelected(t *testing.T) {
	pt, last := newStubPainter()
	pt.SetWindow(nil, nil, &stubSurface{formats: []wgpu.TextureFormat{
		wgpu.TextureFormatRGBA8UnormSrgb,
		wgpu.TextureFormatBGRA8Unorm,
	}})
	assert.NotNil(t, *last)
	assert.Equal(t, wgpu.TextureFormatRGBA8UnormSrgb, (*last).format)
	assert.Equal(t, wgpu.TextureFormatRGBA8UnormSrgb, pt.RenderState().TargetFormat)
}

func TestPaintBeforeAttachIsNoOp(t *testing.T) {
	pt, last := newStubPainter()
	textures := &imdraw.TexturesDelta{}
	textures.Add(1, imdraw.NewImageDelta(image.NewRGBA(image.Rect(0, 0, 1, 1))))

	assert.NotPanics(t, func() {
		pt.PaintAndUpdateTextures(2, nil, textures, nil, nil, nil, 640, 480, nil)
	})
	assert.Nil(t, *last)
}

func TestPaintCallOrder(t *testing.T) {
	pt, last := newStubPainter()
	pt.SetWindow(nil, nil, &stubSurface{formats: []wgpu.TextureFormat{wgpu.TextureFormatBGRA8Unorm}})
	sr := *last

	textures := &imdraw.TexturesDelta{}
	textures.Add(1, imdraw.NewImageDelta(image.NewRGBA(image.Rect(0, 0, 8, 8))))
	textures.Add(2, imdraw.NewImageDelta(image.NewRGBA(image.Rect(0, 0, 4, 4))))
	textures.FreeTexture(7)

	pt.PaintAndUpdateTextures(1, nil, textures, nil, nil, nil, 640, 480, nil)
	assert.Equal(t, []string{
		"UpdateTexture", "UpdateTexture", "UpdateBuffers", "Render", "FreeTexture",
	}, sr.calls)
}

func TestEmptyPaintsOnlyRender(t *testing.T) {
	pt, last := newStubPainter()
	pt.SetWindow(nil, nil, &stubSurface{formats: []wgpu.TextureFormat{wgpu.TextureFormatBGRA8Unorm}})
	sr := *last

	textures := &imdraw.TexturesDelta{}
	pt.PaintAndUpdateTextures(1, nil, textures, nil, nil, nil, 640, 480, nil)
	pt.PaintAndUpdateTextures(1, nil, textures, nil, nil, nil, 640, 480, nil)

	// two render records, no texture adds or frees
	assert.Equal(t, []string{"UpdateBuffers", "Render", "UpdateBuffers", "Render"}, sr.calls)

	// state is not reset between frames
	assert.NotNil(t, pt.RenderState())
	assert.Same(t, sr, pt.RenderState().Renderer)
}

func TestMaxTextureSideBeforeAttach(t *testing.T) {
	pt, _ := newStubPainter()
	side, ok := pt.MaxTextureSide(nil)
	assert.False(t, ok)
	assert.Equal(t, 0, side)
}

func TestDestroyKeepsState(t *testing.T) {
	pt, _ := newStubPainter()
	pt.SetWindow(nil, nil, &stubSurface{formats: []wgpu.TextureFormat{wgpu.TextureFormatBGRA8Unorm}})
	rs := pt.RenderState()
	pt.Destroy()
	assert.Same(t, rs, pt.RenderState())
}

func TestEmptySupportedFormats(t *testing.T) {
	pt, last := newStubPainter()
	pt.SetWindow(nil, nil, &stubSurface{})
	assert.Nil(t, pt.RenderState())
	assert.Nil(t, *last)
}
