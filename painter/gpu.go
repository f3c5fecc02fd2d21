// Copyright (c) 2026, The imdraw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package painter

import (
	"cogentcore.org/core/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

var theInstance *wgpu.Instance

// Instance returns the shared WebGPU instance, creating it on first
// call. Surfaces and adapters must come from the same instance.
func Instance() *wgpu.Instance {
	if theInstance == nil {
		theInstance = wgpu.CreateInstance(nil)
	}
	return theInstance
}

// NewGPU requests an adapter compatible with the given surface
// (nil for headless use) and a device on it. The caller owns both
// and submits its own command encoders on the device queue.
func NewGPU(surface *wgpu.Surface) (*wgpu.Adapter, *wgpu.Device, error) {
	adapter, err := Instance().RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface: surface,
		PowerPreference:   wgpu.PowerPreferenceHighPerformance,
	})
	if errors.Log(err) != nil {
		return nil, nil, err
	}
	device, err := adapter.RequestDevice(nil)
	if errors.Log(err) != nil {
		adapter.Release()
		return nil, nil, err
	}
	return adapter, device, nil
}
