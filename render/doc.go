// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render is the backend-neutral GPU model used by the capture
// pipeline.
//
// The capture core never talks to a graphics API directly. It allocates
// textures through a [Device], records work into a [CommandList], and attaches
// that list to a [Camera] at a [CameraEvent]. The backend executes the list
// while it renders the frame. This mirrors the host-injected device pattern:
// the library receives a device from the host, it does not create one.
//
// # Core Types
//
//   - DeviceHandle: host GPU access (gpucontext.DeviceProvider)
//   - Device: texture allocation
//   - Texture: GPU image owned by whoever created it
//   - CommandList: replayable list of copy, set-uniform and draw operations
//   - Camera: renders a frame into a RenderTarget and runs attached lists
//   - RenderTarget: where a camera renders (PixmapTarget, LayeredPixmapTarget)
//
// # Thread Safety
//
// Command lists and cameras are used from the frame loop goroutine only.
package render
