// Copyright (c) 2026, The imdraw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !offscreen && ((darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd)

package painter

import (
	"image"

	"cogentcore.org/core/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// This file holds the glfw dependencies, for desktop platform builds.
// Other platforms need to create their window surface themselves.

// Init initializes glfw for window and surface creation.
// IMPORTANT: must be called on the main initial thread.
func Init() error {
	return errors.Log(glfw.Init())
}

// Terminate shuts glfw down. Call as the last thing before quitting.
// IMPORTANT: must be called on the main initial thread.
func Terminate() {
	glfw.Terminate()
}

// GLFWCreateWindow is a helper for simple programs and examples: it
// makes a glfw window with no client API and a WebGPU surface on it
// from the shared [Instance]. resize, if non-nil, is dereferenced on
// window size changes, so it can be assigned after this returns.
func GLFWCreateWindow(size image.Point, title string, resize *func(size image.Point)) (surface *wgpu.Surface, terminate func(), pollEvents func() bool, err error) {
	if err = Init(); err != nil {
		return
	}
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	window, err := glfw.CreateWindow(size.X, size.Y, title, nil, nil)
	if err != nil {
		return
	}
	surface = Instance().CreateSurface(wgpuglfw.GetSurfaceDescriptor(window))
	terminate = func() {
		window.Destroy()
		Terminate()
	}
	pollEvents = func() bool {
		if window.ShouldClose() {
			return false
		}
		glfw.PollEvents()
		return true
	}
	window.SetSizeCallback(func(w *glfw.Window, width, height int) {
		if resize != nil {
			(*resize)(image.Point{width, height})
		}
	})
	return
}
