// Copyright (c) 2026, The imdraw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// sizedBuffer is a grow-only device buffer. Uploads that fit the
// current allocation go through Queue.WriteBuffer; larger ones
// release the buffer and recreate it from the new contents.
type sizedBuffer struct {
	buffer    *wgpu.Buffer
	allocSize int
	label     string
	usage     wgpu.BufferUsage
}

func (sb *sizedBuffer) upload(device *wgpu.Device, queue *wgpu.Queue, from []byte) error {
	nb := len(from)
	if sb.buffer != nil && nb <= sb.allocSize {
		return queue.WriteBuffer(sb.buffer, 0, from)
	}
	sb.release()
	buf, err := device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    sb.label,
		Contents: from,
		Usage:    sb.usage,
	})
	if err != nil {
		return err
	}
	sb.buffer = buf
	sb.allocSize = nb
	return nil
}

func (sb *sizedBuffer) release() {
	if sb.buffer == nil {
		return
	}
	sb.buffer.Release()
	sb.buffer = nil
	sb.allocSize = 0
}
