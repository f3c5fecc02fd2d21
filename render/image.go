// Copyright (c) 2026, The imdraw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image"

	"cogentcore.org/core/base/iox/imagex"
)

// ImageToRGBA returns img as an *image.RGBA with its origin at (0,0),
// using it directly when it already is one, converting otherwise.
// Texture uploads need contiguous RGBA pixels starting at the origin.
func ImageToRGBA(img image.Image) *image.RGBA {
	if rg, ok := img.(*image.RGBA); ok && rg.Rect.Min == (image.Point{}) {
		return rg
	}
	return imagex.CloneAsRGBA(img)
}
