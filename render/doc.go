// Copyright (c) 2026, The imdraw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render implements the WebGPU renderer for imdraw paint
// data: it owns the GPU-side textures requested by the GUI layer,
// uploads per-frame vertex and index data, and records the draw
// calls for a frame's clipped primitives into a caller-supplied
// command encoder. Surface and window lifecycle live in the painter
// package; this package never submits commands itself.
package render
