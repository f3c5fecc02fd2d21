// Copyright (c) 2026, The imdraw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imdraw

import (
	"image"
)

// TextureID identifies one texture managed by the GPU backend on
// behalf of the GUI layer. IDs are allocated by the GUI (typically a
// font atlas at 0 and user images counting up) and are only
// meaningful to the backend that received the corresponding
// [TexturesDelta] additions.
type TextureID int64

// ImageDelta describes a pending change to one texture: either a
// whole-texture (re)creation, or a partial update of an existing
// texture at a given position.
type ImageDelta struct {

	// Image holds the pixel data. Any Go image kind is accepted;
	// the backend converts to RGBA as needed.
	Image image.Image

	// Pos is the destination of a partial update in texels.
	// nil means the delta replaces the whole texture.
	Pos *image.Point
}

// NewImageDelta returns a whole-texture delta for the given image.
func NewImageDelta(img image.Image) ImageDelta {
	return ImageDelta{Image: img}
}

// NewImageDeltaAt returns a partial-update delta writing img into an
// existing texture at the given texel position.
func NewImageDeltaAt(img image.Image, pos image.Point) ImageDelta {
	return ImageDelta{Image: img, Pos: &pos}
}

// IsWhole reports whether the delta replaces the whole texture,
// as opposed to updating a region of an existing one.
func (d *ImageDelta) IsWhole() bool {
	return d.Pos == nil
}

// TextureSet is one texture addition or update, keyed by id.
type TextureSet struct {
	ID    TextureID
	Delta ImageDelta
}

// TexturesDelta is the per-frame description of texture changes
// requested by the GUI layer: additions/updates in Set, removals in
// Free. Set order is preserved: deltas apply in the order recorded.
// Additions must be applied before the frame is drawn, and frees
// only after, since the outgoing frame may still reference them.
type TexturesDelta struct {
	Set  []TextureSet
	Free []TextureID
}

// Add appends an addition or update for the given id.
func (t *TexturesDelta) Add(id TextureID, delta ImageDelta) {
	t.Set = append(t.Set, TextureSet{ID: id, Delta: delta})
}

// FreeTexture appends id to the removal set.
func (t *TexturesDelta) FreeTexture(id TextureID) {
	t.Free = append(t.Free, id)
}

// IsEmpty reports whether the delta carries no changes.
func (t *TexturesDelta) IsEmpty() bool {
	return len(t.Set) == 0 && len(t.Free) == 0
}

// Clear resets the delta for reuse on the next frame,
// keeping the allocated capacity.
func (t *TexturesDelta) Clear() {
	t.Set = t.Set[:0]
	t.Free = t.Free[:0]
}
