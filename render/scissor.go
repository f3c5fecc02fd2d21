// Copyright (c) 2026, The imdraw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image"

	"cogentcore.org/core/math32"
)

// scissor is a scissor rectangle in physical pixels.
type scissor struct {
	x, y, w, h uint32
}

// scissorRect converts a clip rectangle in logical points to a scissor
// rectangle in physical pixels, clamped to the target size. Reports
// false when the clamped rectangle is empty, in which case nothing
// should be drawn.
func scissorRect(clip math32.Box2, pixelsPerPoint float32, size image.Point) (scissor, bool) {
	// rounding matches the tessellator's feathering: the clip rect
	// already includes the feather margin, so round to nearest.
	x := int(math32.Round(clip.Min.X * pixelsPerPoint))
	y := int(math32.Round(clip.Min.Y * pixelsPerPoint))
	x2 := int(math32.Round(clip.Max.X * pixelsPerPoint))
	y2 := int(math32.Round(clip.Max.Y * pixelsPerPoint))

	x = min(max(x, 0), size.X)
	y = min(max(y, 0), size.Y)
	x2 = min(max(x2, x), size.X)
	y2 = min(max(y2, y), size.Y)

	if x2 == x || y2 == y {
		return scissor{}, false
	}
	return scissor{
		x: uint32(x),
		y: uint32(y),
		w: uint32(x2 - x),
		h: uint32(y2 - y),
	}, true
}
