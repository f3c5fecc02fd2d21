// Copyright (c) 2026, The imdraw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package painter binds imdraw paint output to a WebGPU surface tied
// to a platform window. The [Painter] lazily creates its render state
// when the first window surface is attached, locking in the surface's
// preferred texture format, and then forwards per-frame primitives
// and texture deltas to the renderer, recording into a caller-supplied
// command encoder. The caller owns the device, queue, swapchain and
// submission; the Painter is orchestration only.
package painter
