// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package software

import "errors"

// Software backend errors.
var (
	// ErrBudgetExceeded is returned when an allocation would exceed the
	// device memory budget.
	ErrBudgetExceeded = errors.New("software: memory budget exceeded")

	// ErrDeviceClosed is returned when allocating from a closed device.
	ErrDeviceClosed = errors.New("software: device closed")

	// ErrUnsupportedFormat is returned for texture formats other than RGBA8.
	ErrUnsupportedFormat = errors.New("software: unsupported texture format")

	// ErrInvalidCommand is returned when a command list cannot be executed.
	ErrInvalidCommand = errors.New("software: invalid command")
)
