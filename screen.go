// Copyright (c) 2026, The imdraw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imdraw

import (
	"image"

	"cogentcore.org/core/math32"
)

// ScreenDescriptor is the per-frame screen metadata needed to map
// logical GUI coordinates to device pixels: the render target size in
// physical pixels and the DPI scale in pixels per logical point.
type ScreenDescriptor struct {

	// Size is the render target size in physical pixels.
	Size image.Point

	// PixelsPerPoint is the DPI scale factor:
	// physical pixels per logical point.
	PixelsPerPoint float32
}

// NewScreenDescriptor returns a descriptor for the given pixel
// dimensions and DPI scale. A zero or negative scale is treated as 1.
func NewScreenDescriptor(width, height int, pixelsPerPoint float32) ScreenDescriptor {
	if pixelsPerPoint <= 0 {
		pixelsPerPoint = 1
	}
	return ScreenDescriptor{Size: image.Point{X: width, Y: height}, PixelsPerPoint: pixelsPerPoint}
}

// SizeInPoints returns the screen size in logical points.
func (sd *ScreenDescriptor) SizeInPoints() math32.Vector2 {
	return math32.Vec2(float32(sd.Size.X)/sd.PixelsPerPoint, float32(sd.Size.Y)/sd.PixelsPerPoint)
}

// Size32 returns the pixel size as uint32 values.
func (sd *ScreenDescriptor) Size32() (width, height uint32) {
	width = uint32(sd.Size.X)
	height = uint32(sd.Size.Y)
	return
}

// Bounds returns the pixel rectangle of the render target: 0,0,w,h.
func (sd *ScreenDescriptor) Bounds() image.Rectangle {
	return image.Rectangle{Max: sd.Size}
}
