package backend

import (
	"errors"

	"github.com/gogpu/backdrop/render"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not available.
	ErrBackendNotAvailable = errors.New("backend: not available")
)

// Backend name constants.
const (
	// BackendSoftware is the name of the CPU backend.
	BackendSoftware = "software"
)

// DeviceBackend creates texture devices from a host device handle.
//
// Backends must be registered via Register() and are selected via
// Get() or Default().
type DeviceBackend interface {
	// Name returns the backend identifier (e.g., "software").
	Name() string

	// NewDevice creates a device bound to the host handle. A nil handle
	// selects the backend's own defaults.
	NewDevice(handle render.DeviceHandle) (render.Device, error)
}
