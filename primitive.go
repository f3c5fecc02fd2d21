// Copyright (c) 2026, The imdraw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imdraw

import (
	"cogentcore.org/core/math32"
)

// Vertex is one tessellated GUI vertex. Position and texture
// coordinates are in logical points; the color is straight
// (non-premultiplied) sRGB with linear alpha. The layout matches the
// vertex buffer layout used by the GPU backend, so a []Vertex can be
// uploaded directly.
type Vertex struct {

	// Pos is the position in logical points, y down, origin top-left.
	Pos math32.Vector2

	// UV is the texture coordinate in normalized [0..1] texels.
	UV math32.Vector2

	// Color is the vertex color as RGBA bytes.
	Color [4]uint8
}

// VertexSize is the byte size of one Vertex as laid out in a vertex
// buffer: two float32 pairs plus four color bytes.
const VertexSize = 20

// Vtx returns a Vertex at the given position and texture coordinate
// with the given color.
func Vtx(x, y, u, v float32, color [4]uint8) Vertex {
	return Vertex{Pos: math32.Vec2(x, y), UV: math32.Vec2(u, v), Color: color}
}

// Mesh is a triangle mesh produced by the GUI's tessellator,
// referencing one texture. Indices index into Vertices in groups of
// three (triangle list).
type Mesh struct {
	// Indices are the triangle list indices into Vertices.
	Indices []uint32

	// Vertices are the mesh vertices.
	Vertices []Vertex

	// Texture identifies the texture all triangles sample from.
	Texture TextureID
}

// IsEmpty reports whether the mesh has no triangles.
func (m *Mesh) IsEmpty() bool {
	return len(m.Indices) == 0 || len(m.Vertices) == 0
}

// ClippedPrimitive is one draw-call unit: a mesh together with the
// clip rectangle it must be scissored to, both in logical points.
type ClippedPrimitive struct {
	// ClipRect is the clip rectangle in logical points.
	ClipRect math32.Box2

	// Mesh is the geometry to draw within ClipRect.
	Mesh Mesh
}
