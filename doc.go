// Copyright (c) 2026, The imdraw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package imdraw defines the paint data model exchanged between an
// immediate-mode GUI layer and a GPU rendering backend: tessellated
// meshes with clip rectangles, per-frame texture deltas, and the
// screen metadata needed to map logical GUI coordinates to device
// pixels. The render subpackage binds this data to WebGPU, and the
// painter subpackage ties rendering to a platform window surface.
package imdraw
