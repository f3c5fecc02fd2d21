// Copyright (c) 2026, The imdraw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package painter

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// Surface is the slice of a window surface the [Painter] needs for
// render state creation: the texture formats it supports on a given
// adapter, best first. [WindowSurface] is the real implementation.
type Surface interface {
	SupportedFormats(adapter *wgpu.Adapter) []wgpu.TextureFormat
}

// WindowSurface adapts a WebGPU window surface to [Surface].
type WindowSurface struct {
	Surface *wgpu.Surface
}

// NewWindowSurface returns a [Surface] wrapping the given WebGPU
// surface, which must stay valid as long as the result is used.
func NewWindowSurface(surface *wgpu.Surface) *WindowSurface {
	return &WindowSurface{Surface: surface}
}

// SupportedFormats returns the texture formats the surface supports
// on adapter, in the surface's preference order.
func (ws *WindowSurface) SupportedFormats(adapter *wgpu.Adapter) []wgpu.TextureFormat {
	return ws.Surface.GetCapabilities(adapter).Formats
}
