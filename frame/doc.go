// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package frame provides the end-of-frame task queue.
//
// Work that must observe a fully rendered frame (publishing a captured image,
// releasing textures the GPU may still read) is queued with
// [Scheduler.AtEndOfFrame] and runs after the renderer finishes the frame.
// A task queued while [Loop.EndFrame] runs belongs to the next frame.
package frame
