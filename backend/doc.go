// Package backend provides a pluggable device backend registry.
//
// A backend turns the host's device handle into a [render.Device] the
// capture pipeline allocates textures from. Backends register themselves
// from init() functions; the software backend registers on import:
//
//	import _ "github.com/gogpu/backdrop/backend/software"
//
// # Backend Selection
//
// Use Default() to get the best available backend, or Get() to request
// a specific backend by name:
//
//	b := backend.Get("software")
//	dev, err := b.NewDevice(render.NullDeviceHandle{})
//
// Open combines both steps:
//
//	dev, err := backend.Open("", nil)
//
// # Available Backends
//
// - "software": CPU textures and command execution (always available)
package backend
