package backdrop

import (
	"testing"

	"github.com/gogpu/backdrop/frame"
	"github.com/gogpu/backdrop/render"
	"github.com/gogpu/backdrop/shader"
)

// TestDefaultOptions tests the configuration New starts from.
func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.event != render.EventBeforeOverlay {
		t.Errorf("event = %v, want %v", o.event, render.EventBeforeOverlay)
	}
	if o.scheduler != nil || o.camera != nil {
		t.Error("default options should have no scheduler and no camera")
	}
	if o.lookup == nil {
		t.Error("default lookup is nil")
	}
	if o.params != DefaultParams() {
		t.Errorf("params = %+v, want DefaultParams()", o.params)
	}
}

// TestOptionsApply tests that each option sets its field.
func TestOptionsApply(t *testing.T) {
	loop := frame.NewLoop()
	cam := &stubCamera{}
	p := DefaultParams()
	p.SetBlurRadius(3)

	o := defaultOptions()
	for _, opt := range []Option{
		WithScheduler(loop),
		WithCamera(cam),
		WithFallbackSize(320, 200),
		WithEvent(render.EventAfterTransparent),
		WithParams(p),
	} {
		opt(&o)
	}

	if o.scheduler != loop {
		t.Error("WithScheduler did not set the scheduler")
	}
	if o.camera == nil || o.camera() != cam {
		t.Error("WithCamera did not bind the camera")
	}
	if o.fallback != (Resolution{Width: 320, Height: 200}) {
		t.Errorf("fallback = %v, want 320x200", o.fallback)
	}
	if o.event != render.EventAfterTransparent {
		t.Errorf("event = %v, want AfterTransparent", o.event)
	}
	if o.params.BlurRadius() != 3 {
		t.Errorf("params.BlurRadius() = %v, want 3", o.params.BlurRadius())
	}
}

// TestOptionsIgnoreInvalid tests that invalid values keep the defaults.
func TestOptionsIgnoreInvalid(t *testing.T) {
	o := defaultOptions()
	WithEvent(render.CameraEvent(200))(&o)
	WithShaderLookup(nil)(&o)

	if o.event != render.EventBeforeOverlay {
		t.Errorf("event = %v, want default after invalid WithEvent", o.event)
	}
	if o.lookup == nil {
		t.Error("WithShaderLookup(nil) cleared the lookup")
	}
}

// TestWithShaderLookupUsed tests that New resolves materials through the hook.
func TestWithShaderLookupUsed(t *testing.T) {
	var got []shader.Variant
	lookup := func(v shader.Variant) (*shader.Material, error) {
		got = append(got, v)
		return stubLookup(v)
	}
	p := DefaultParams()
	p.SetToneMode(shader.ToneNega)
	New(newTestDevice(t), WithScheduler(frameLoop()), WithParams(p), WithShaderLookup(lookup))

	if len(got) != 1 || got[0] != p.Variant() {
		t.Errorf("lookup calls = %v, want [%v]", got, p.Variant())
	}
}

// stubCamera is a camera without a target.
type stubCamera struct{}

func (*stubCamera) Target() render.RenderTarget                                 { return nil }
func (*stubCamera) AddCommandList(render.CameraEvent, *render.CommandList)    {}
func (*stubCamera) RemoveCommandList(render.CameraEvent, *render.CommandList) {}
