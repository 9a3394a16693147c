package backdrop

import "errors"

// Capture errors. RequestCapture wraps them with context; test with
// errors.Is.
var (
	// ErrNoCamera is returned when no camera or render target is available.
	// The request is a no-op and can simply be repeated later.
	ErrNoCamera = errors.New("backdrop: no active camera")

	// ErrShaderUnavailable is returned when the effect material could not be
	// resolved at setup. Captures stay disabled for the capturer's lifetime.
	ErrShaderUnavailable = errors.New("backdrop: effect shader unavailable")

	// ErrReleased is returned by RequestCapture after Close.
	ErrReleased = errors.New("backdrop: capturer closed")
)

// Setup errors reported by (*Capturer).Err.
var (
	// ErrNoDevice is reported when New is given a nil device.
	ErrNoDevice = errors.New("backdrop: no device")

	// ErrNoScheduler is reported when New has no end-of-frame scheduler.
	// Without one captured images could never be published.
	ErrNoScheduler = errors.New("backdrop: no frame scheduler")
)
