// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package software is the CPU backend of the capture pipeline.
//
// It implements [render.Device] with pixel-buffer textures under a memory
// budget, [render.Camera] over a layered CPU scene, and a [Renderer] that
// draws one frame at a time: scene layers, attached command lists at their
// events, overlay layers, then the end-of-frame tasks of a [frame.Loop].
//
// Material blits run the CPU reference of the effect shader, so captures
// produced here match what the WGSL module computes on a GPU.
//
// Importing the package registers it with the backend registry as
// "software".
package software
