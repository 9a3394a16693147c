// Package backdrop renders one-shot blurred and tone-adjusted snapshots of
// a camera for use as a static backdrop behind overlay panels.
//
// # Overview
//
// A Capturer records a short command list that copies the camera's frame
// after opaque and transparent geometry (before the overlay UI), runs it
// through the effect material into a downsampled working buffer and blits
// the result into an output texture. The texture is published by a swap
// scheduled at the end of the frame, so consumers never see a half
// rendered buffer and the previous image stays visible during a resize.
//
// # Quick Start
//
//	device := software.NewDevice(nil, software.DeviceConfig{})
//	camera := software.NewCamera(scene, software.DefaultOverlayZ)
//	renderer := software.NewRenderer(camera, nil)
//
//	c := backdrop.New(device,
//		backdrop.WithScheduler(renderer.Loop()),
//		backdrop.WithCamera(camera),
//	)
//	defer c.Close()
//
//	if err := c.RequestCapture(); err != nil {
//		return err
//	}
//	renderer.RenderFrame()
//	tex := c.Texture() // published after the frame
//
// # Parameters
//
// Params holds the effect configuration: tone mode and level, colour mode
// and effect colour, blur mode and radius, extra blur iterations, the two
// desampling rates and the sampling filter. Levels are clamped on write.
//
// Buffer sizes come from Resolve: the base size divided by the desampling
// rate and rounded to the nearest power of two.
//
// # Resources
//
// The capturer owns its output texture, textures awaiting release and the
// command list. They are freed only by Release and Close, both of which are
// idempotent.
//
// # Logging
//
// backdrop is silent by default. Use SetLogger to route diagnostics from
// backdrop, shader and backend/software to a slog.Logger.
package backdrop
