// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "fmt"

// CameraEvent is a point in a camera's frame at which command lists run.
type CameraEvent uint8

const (
	// EventAfterOpaque runs after opaque geometry.
	EventAfterOpaque CameraEvent = iota

	// EventAfterTransparent runs after transparent geometry.
	EventAfterTransparent

	// EventBeforeOverlay runs after all scene rendering and before overlay UI
	// is composited. Captures attach here so they see the finished scene but
	// not the panels drawn on top of it.
	EventBeforeOverlay

	// EventAfterEverything runs last in the frame.
	EventAfterEverything

	cameraEventCount
)

// String returns the event name.
func (e CameraEvent) String() string {
	switch e {
	case EventAfterOpaque:
		return "AfterOpaque"
	case EventAfterTransparent:
		return "AfterTransparent"
	case EventBeforeOverlay:
		return "BeforeOverlay"
	case EventAfterEverything:
		return "AfterEverything"
	default:
		return fmt.Sprintf("CameraEvent(%d)", e)
	}
}

// Valid reports whether e is a known event.
func (e CameraEvent) Valid() bool { return e < cameraEventCount }

// Camera renders frames into a target and executes attached command lists at
// their events. Attaching the same list twice at one event is a no-op;
// removing a list that is not attached is a no-op.
type Camera interface {
	// Target returns the camera's active render target, or nil when it has
	// none (e.g. the window is minimised).
	Target() RenderTarget

	// AddCommandList attaches cl at evt. The list runs every frame until it
	// is removed.
	AddCommandList(evt CameraEvent, cl *CommandList)

	// RemoveCommandList detaches cl from evt.
	RemoveCommandList(evt CameraEvent, cl *CommandList)
}
