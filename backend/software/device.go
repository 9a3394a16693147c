// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package software

import (
	"fmt"
	"sync"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/backdrop/backend"
	"github.com/gogpu/backdrop/internal/image"
	"github.com/gogpu/backdrop/render"
)

// Default memory limits.
const (
	// DefaultMaxMemoryMB is the default texture memory budget (256 MB).
	DefaultMaxMemoryMB = 256

	// MinMemoryMB is the minimum allowed memory budget (1 MB).
	MinMemoryMB = 1
)

// MemoryStats contains texture memory usage statistics.
type MemoryStats struct {
	// TotalBytes is the total memory budget in bytes.
	TotalBytes uint64

	// UsedBytes is the currently allocated memory in bytes.
	UsedBytes uint64

	// AvailableBytes is the remaining memory budget.
	AvailableBytes uint64

	// TextureCount is the number of live textures.
	TextureCount int

	// Utilization is the fraction of budget used (0.0 to 1.0).
	Utilization float64
}

// String returns a human-readable string of memory stats.
func (s MemoryStats) String() string {
	return fmt.Sprintf("Memory[%.1f%% used, %d/%d KB, %d textures]",
		s.Utilization*100,
		s.UsedBytes/1024,
		s.TotalBytes/1024,
		s.TextureCount)
}

// DeviceConfig holds configuration for creating a Device.
type DeviceConfig struct {
	// MaxMemoryMB is the texture memory budget in megabytes.
	// Defaults to DefaultMaxMemoryMB if below MinMemoryMB.
	MaxMemoryMB int
}

// Device allocates CPU textures and tracks them against a memory budget.
//
// Device is safe for concurrent use.
type Device struct {
	mu sync.Mutex

	handle render.DeviceHandle

	budgetBytes uint64
	usedBytes   uint64
	textures    map[*Texture]struct{}

	closed bool
}

// NewDevice creates a device bound to the host handle. A nil handle is
// replaced with render.NullDeviceHandle.
func NewDevice(handle render.DeviceHandle, config DeviceConfig) *Device {
	if handle == nil {
		handle = render.NullDeviceHandle{}
	}
	maxMB := config.MaxMemoryMB
	if maxMB < MinMemoryMB {
		maxMB = DefaultMaxMemoryMB
	}
	//nolint:gosec // G115: maxMB is bounded by MinMemoryMB minimum
	return &Device{
		handle:      handle,
		budgetBytes: uint64(maxMB) * 1024 * 1024,
		textures:    make(map[*Texture]struct{}),
	}
}

// Handle returns the host device handle.
func (d *Device) Handle() render.DeviceHandle { return d.handle }

// CreateTexture allocates a texture. Only RGBA8Unorm is supported; an
// undefined format selects it. Depth and mip levels are not allocated.
func (d *Device) CreateTexture(desc render.TextureDescriptor) (render.Texture, error) {
	if desc.Format == gputypes.TextureFormatUndefined {
		desc.Format = gputypes.TextureFormatRGBA8Unorm
	}
	if desc.Format != gputypes.TextureFormatRGBA8Unorm {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, desc.Format)
	}
	if desc.Width <= 0 || desc.Height <= 0 {
		return nil, fmt.Errorf("software: texture %q: %w", desc.Label, image.ErrInvalidDimensions)
	}

	//nolint:gosec // G115: dimensions validated above
	required := uint64(desc.Width) * uint64(desc.Height) * image.BytesPerPixel

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return nil, ErrDeviceClosed
	}
	if d.usedBytes+required > d.budgetBytes {
		slogger().Warn("software: texture allocation failed",
			"label", desc.Label, "width", desc.Width, "height", desc.Height,
			"used", d.usedBytes, "budget", d.budgetBytes)
		return nil, fmt.Errorf("%w: texture %q needs %d KB, %d KB available",
			ErrBudgetExceeded, desc.Label, required/1024, (d.budgetBytes-d.usedBytes)/1024)
	}

	buf, err := image.NewBuf(desc.Width, desc.Height)
	if err != nil {
		return nil, err
	}
	tex := &Texture{buf: buf, desc: desc, device: d, size: required}
	d.textures[tex] = struct{}{}
	d.usedBytes += required

	slogger().Debug("software: texture created",
		"label", desc.Label, "width", desc.Width, "height", desc.Height,
		"filter", desc.Filter)
	return tex, nil
}

// release unregisters tex. Textures not owned by d are ignored.
func (d *Device) release(tex *Texture) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.textures[tex]; !ok {
		return
	}
	delete(d.textures, tex)
	d.usedBytes -= tex.size
}

// Stats returns current memory usage.
func (d *Device) Stats() MemoryStats {
	d.mu.Lock()
	defer d.mu.Unlock()

	var util float64
	if d.budgetBytes > 0 {
		util = float64(d.usedBytes) / float64(d.budgetBytes)
	}
	return MemoryStats{
		TotalBytes:     d.budgetBytes,
		UsedBytes:      d.usedBytes,
		AvailableBytes: d.budgetBytes - d.usedBytes,
		TextureCount:   len(d.textures),
		Utilization:    util,
	}
}

// Close destroys every live texture. Further allocations fail with
// ErrDeviceClosed. Safe to call more than once.
func (d *Device) Close() {
	d.mu.Lock()
	live := make([]*Texture, 0, len(d.textures))
	for tex := range d.textures {
		live = append(live, tex)
	}
	d.closed = true
	d.mu.Unlock()

	for _, tex := range live {
		tex.Destroy()
	}
}

// softwareBackend adapts NewDevice to the backend registry.
type softwareBackend struct{}

func (softwareBackend) Name() string { return backend.BackendSoftware }

func (softwareBackend) NewDevice(handle render.DeviceHandle) (render.Device, error) {
	return NewDevice(handle, DeviceConfig{}), nil
}

// init registers the software backend on package import.
func init() {
	backend.Register(backend.BackendSoftware, func() backend.DeviceBackend {
		return softwareBackend{}
	})
}

// Ensure Device implements render.Device.
var _ render.Device = (*Device)(nil)
