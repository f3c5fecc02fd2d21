// Copyright (c) 2026, The imdraw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imdraw

import (
	"image"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestVertexLayout(t *testing.T) {
	// the GPU vertex buffer layout depends on this exact packing
	assert.Equal(t, uintptr(VertexSize), unsafe.Sizeof(Vertex{}))
	var v Vertex
	assert.Equal(t, uintptr(0), unsafe.Offsetof(v.Pos))
	assert.Equal(t, uintptr(8), unsafe.Offsetof(v.UV))
	assert.Equal(t, uintptr(16), unsafe.Offsetof(v.Color))
}

func TestMeshIsEmpty(t *testing.T) {
	var m Mesh
	assert.True(t, m.IsEmpty())
	m.Vertices = []Vertex{Vtx(0, 0, 0, 0, [4]uint8{255, 255, 255, 255})}
	assert.True(t, m.IsEmpty())
	m.Indices = []uint32{0, 0, 0}
	assert.False(t, m.IsEmpty())
}

func TestImageDelta(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	whole := NewImageDelta(img)
	assert.True(t, whole.IsWhole())

	at := NewImageDeltaAt(img, image.Point{3, 5})
	assert.False(t, at.IsWhole())
	assert.Equal(t, image.Point{3, 5}, *at.Pos)
}

func TestTexturesDelta(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	var td TexturesDelta
	assert.True(t, td.IsEmpty())

	td.Add(2, NewImageDelta(img))
	td.Add(1, NewImageDelta(img))
	td.FreeTexture(3)
	assert.False(t, td.IsEmpty())

	// order of addition is preserved
	assert.Equal(t, TextureID(2), td.Set[0].ID)
	assert.Equal(t, TextureID(1), td.Set[1].ID)
	assert.Equal(t, []TextureID{3}, td.Free)

	td.Clear()
	assert.True(t, td.IsEmpty())
}

func TestScreenDescriptor(t *testing.T) {
	sd := NewScreenDescriptor(1920, 1080, 2)
	pts := sd.SizeInPoints()
	assert.Equal(t, float32(960), pts.X)
	assert.Equal(t, float32(540), pts.Y)

	w, h := sd.Size32()
	assert.Equal(t, uint32(1920), w)
	assert.Equal(t, uint32(1080), h)
	assert.Equal(t, image.Rect(0, 0, 1920, 1080), sd.Bounds())

	// a bogus scale falls back to 1
	sd = NewScreenDescriptor(100, 100, 0)
	assert.Equal(t, float32(1), sd.PixelsPerPoint)
}
