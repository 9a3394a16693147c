package backdrop

import (
	"github.com/gogpu/backdrop/frame"
	"github.com/gogpu/backdrop/render"
	"github.com/gogpu/backdrop/shader"
)

// Option configures a Capturer during creation.
//
// Example:
//
//	loop := frame.NewLoop()
//	c := backdrop.New(device,
//		backdrop.WithScheduler(loop),
//		backdrop.WithCamera(camera),
//	)
type Option func(*options)

// CameraSource returns the camera to capture from, or nil when none is
// active. It is called on every RequestCapture and Resolve.
type CameraSource func() render.Camera

// ShaderLookup resolves the material of a shader variant.
type ShaderLookup func(shader.Variant) (*shader.Material, error)

// options holds optional configuration for Capturer creation.
type options struct {
	scheduler frame.Scheduler
	camera    CameraSource
	fallback  Resolution
	event     render.CameraEvent
	params    Params
	lookup    ShaderLookup
}

// defaultOptions returns the default capturer options.
func defaultOptions() options {
	return options{
		event:  render.EventBeforeOverlay,
		params: DefaultParams(),
		lookup: shader.Lookup,
	}
}

// WithScheduler sets the end-of-frame scheduler used for the deferred swap.
// Without one, the swap never runs and captures are never published.
func WithScheduler(s frame.Scheduler) Option {
	return func(o *options) {
		o.scheduler = s
	}
}

// WithCameraSource sets the function that yields the active camera.
func WithCameraSource(src CameraSource) Option {
	return func(o *options) {
		o.camera = src
	}
}

// WithCamera binds a fixed camera. A nil camera leaves the capturer without
// a source. A typed nil pointer is passed through, so its Target method must
// handle a nil receiver and return nil, as software.Camera does.
func WithCamera(c render.Camera) Option {
	if c == nil {
		return WithCameraSource(nil)
	}
	return WithCameraSource(func() render.Camera { return c })
}

// WithFallbackSize sets the base size Resolve uses when no camera target is
// available.
func WithFallbackSize(width, height int) Option {
	return func(o *options) {
		o.fallback = Resolution{Width: width, Height: height}
	}
}

// WithEvent overrides the camera event the capture list attaches at.
// The default is render.EventBeforeOverlay.
func WithEvent(evt render.CameraEvent) Option {
	return func(o *options) {
		if evt.Valid() {
			o.event = evt
		}
	}
}

// WithParams sets the initial parameters.
func WithParams(p Params) Option {
	return func(o *options) {
		o.params = p
	}
}

// WithShaderLookup replaces the material lookup. A nil lookup is ignored.
func WithShaderLookup(fn ShaderLookup) Option {
	return func(o *options) {
		if fn != nil {
			o.lookup = fn
		}
	}
}
