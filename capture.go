package backdrop

import (
	"errors"
	"fmt"

	"github.com/gogpu/backdrop/render"
	"github.com/gogpu/backdrop/shader"
)

// Temporaries of the capture command list.
const (
	copyTemp render.TempID = iota + 1
	workTemp
	pingTemp
)

// listKey is everything baked into a recorded capture list. A request with
// an equal key replays the existing list.
type listKey struct {
	output       render.Texture
	work         Resolution
	filter       render.FilterMode
	material     *shader.Material
	iterations   int
	effectFactor [4]float32
	colorFactor  [4]float32
}

// Capturer renders one-shot captures of a camera into a texture.
//
// A capture is requested with RequestCapture, rendered by the camera during
// the next frame, and published by a deferred swap at the end of that frame.
// Until then Texture keeps returning the previous image.
//
// Capturer owns every texture and command list it creates; Release and
// Close are the only paths that free them. It is not safe for concurrent
// use and belongs to the goroutine driving the frame loop.
type Capturer struct {
	device render.Device
	opts   options
	params Params

	material *shader.Material
	err      error
	warned   map[shader.Variant]bool

	output    render.Texture
	published render.Texture
	pending   []render.Texture

	list     *render.CommandList
	key      listKey
	bound    render.Camera
	rebuilds int

	epoch  uint64
	queued int
	closed bool
}

// New creates a capturer allocating from device.
//
// Configuration problems (nil device, no scheduler, effect shader that
// fails to compile) do not fail construction. They are logged once and
// reported by Err, and every RequestCapture returns them.
func New(device render.Device, opts ...Option) *Capturer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	c := &Capturer{
		device: device,
		opts:   o,
		params: o.params,
		warned: make(map[shader.Variant]bool),
	}
	switch {
	case device == nil:
		c.err = ErrNoDevice
		Logger().Warn("backdrop: capturer disabled", "err", c.err)
	case o.scheduler == nil:
		c.err = ErrNoScheduler
		Logger().Warn("backdrop: capturer disabled", "err", c.err)
	default:
		c.resolveMaterial()
	}
	return c
}

// resolveMaterial looks up the material of the current variant and records
// a configuration error on failure.
func (c *Capturer) resolveMaterial() {
	v := c.params.Variant()
	mat, err := c.opts.lookup(v)
	if err == nil && mat == nil {
		err = errors.New("lookup returned no material")
	}
	if err != nil {
		c.material = nil
		c.err = fmt.Errorf("%w: variant %s: %w", ErrShaderUnavailable, v, err)
		if !c.warned[v] {
			c.warned[v] = true
			Logger().Warn("backdrop: effect shader unavailable, captures disabled",
				"variant", v.String(), "err", err)
		}
		return
	}
	c.material = mat
	c.err = nil
}

// Err returns the configuration error that disables captures, or nil.
func (c *Capturer) Err() error { return c.err }

// Params returns a copy of the current parameters.
func (c *Capturer) Params() Params { return c.params }

// SetParams replaces the parameters. A changed shader variant is resolved
// immediately; a lookup failure is reported by Err. Live textures are not
// touched until the next RequestCapture.
func (c *Capturer) SetParams(p Params) {
	old := c.params.Variant()
	c.params = p
	if c.device == nil || c.opts.scheduler == nil {
		return
	}
	if p.Variant() != old || c.material == nil {
		c.resolveMaterial()
	}
}

// IsTransparent reports whether the published image is displayed with a
// near-zero tint alpha and can be skipped.
func (c *Capturer) IsTransparent() bool { return c.params.IsTransparent() }

// Texture returns the published image, or nil before the first swap and
// after Release(true). The capturer keeps ownership.
func (c *Capturer) Texture() render.Texture { return c.published }

func (c *Capturer) camera() render.Camera {
	if c.opts.camera == nil {
		return nil
	}
	return c.opts.camera()
}

// Resolve returns the buffer size rate would produce against the active
// camera target, or the fallback size when there is none.
func (c *Capturer) Resolve(rate DesamplingRate) (Resolution, error) {
	if cam := c.camera(); cam != nil {
		if t := cam.Target(); t != nil {
			return ResolveSize(Resolution{Width: t.Width(), Height: t.Height()}, rate), nil
		}
	}
	if c.opts.fallback.Width > 0 && c.opts.fallback.Height > 0 {
		return ResolveSize(c.opts.fallback, rate), nil
	}
	return Resolution{}, ErrNoCamera
}

// RequestCapture captures the next frame of the active camera.
//
// It sizes the output buffer, records (or reuses) the capture command list,
// attaches it to the camera and schedules the swap that publishes the
// result at the end of the frame. On error nothing changes and the previous
// image stays published: ErrReleased after Close, the configuration error
// from Err, ErrNoCamera without an active target, or the device error when
// the output buffer cannot be allocated.
func (c *Capturer) RequestCapture() error {
	if c.closed {
		return ErrReleased
	}
	if c.err != nil {
		return c.err
	}

	cam := c.camera()
	if cam == nil || cam.Target() == nil {
		Logger().Debug("backdrop: capture skipped, no active camera")
		return fmt.Errorf("backdrop: capture: %w", ErrNoCamera)
	}
	target := cam.Target()
	base := Resolution{Width: target.Width(), Height: target.Height()}
	out := ResolveSize(base, c.params.OutputDesampling())
	work := ResolveSize(base, c.params.WorkingDesampling())

	if c.output == nil || !matches(c.output, out, c.params.Filter()) {
		desc := render.ColorTextureDescriptor("backdrop/output", out.Width, out.Height, c.params.Filter())
		tex, err := c.device.CreateTexture(desc)
		if err != nil {
			Logger().Warn("backdrop: output allocation failed", "size", out.String(), "err", err)
			return fmt.Errorf("backdrop: allocate %s output: %w", out, err)
		}
		if c.output != nil {
			c.retire(c.output)
		}
		c.output = tex
		Logger().Debug("backdrop: output allocated", "size", out.String(), "filter", c.params.Filter())
	}

	key := listKey{
		output:       c.output,
		work:         work,
		filter:       c.params.Filter(),
		material:     c.material,
		iterations:   c.params.Iterations(),
		effectFactor: c.params.EffectFactor(out.Width),
		colorFactor:  c.params.ColorFactor(),
	}
	if c.list == nil || c.key != key {
		c.record(key)
	}

	if c.bound != nil && c.bound != cam {
		c.bound.RemoveCommandList(c.opts.event, c.list)
	}
	cam.AddCommandList(c.opts.event, c.list)
	c.bound = cam

	epoch, runs := c.epoch, c.list.Executions()
	c.queued++
	c.opts.scheduler.AtEndOfFrame(func() { c.swap(epoch, runs) })
	return nil
}

func matches(tex render.Texture, size Resolution, filter render.FilterMode) bool {
	return tex.Width() == size.Width && tex.Height() == size.Height && tex.Filter() == filter
}

// retire schedules tex for release. A texture that was never published
// cannot be on screen and is destroyed at once; the published one stays
// alive until the swap replaces it.
func (c *Capturer) retire(tex render.Texture) {
	if tex != c.published {
		tex.Destroy()
		return
	}
	c.pending = append(c.pending, tex)
}

// record rebuilds the capture command list for key.
func (c *Capturer) record(key listKey) {
	if c.list == nil {
		c.list = render.NewCommandList("backdrop/capture")
	} else {
		c.list.Clear()
	}
	cl := c.list
	props := shader.Properties()

	cl.GetTemporary(copyTemp, render.FullSize, render.FullSize, render.FilterBilinear)
	cl.Blit(render.CurrentActive(), render.Temporary(copyTemp))
	cl.SetGlobalVector(props.EffectFactor, key.effectFactor)
	cl.SetGlobalVector(props.ColorFactor, key.colorFactor)
	cl.GetTemporary(workTemp, key.work.Width, key.work.Height, key.filter)
	cl.BlitMaterial(render.Temporary(copyTemp), render.Temporary(workTemp), key.material, shader.PassEffect)

	result := workTemp
	if key.iterations > 1 {
		cl.GetTemporary(pingTemp, key.work.Width, key.work.Height, key.filter)
		other := pingTemp
		for range key.iterations - 1 {
			cl.BlitMaterial(render.Temporary(result), render.Temporary(other), key.material, shader.PassBlur)
			result, other = other, result
		}
	}
	cl.Blit(render.Temporary(result), render.TextureTarget(key.output))

	cl.ReleaseTemporary(copyTemp)
	cl.ReleaseTemporary(workTemp)
	if key.iterations > 1 {
		cl.ReleaseTemporary(pingTemp)
	}

	c.key = key
	c.rebuilds++
	Logger().Debug("backdrop: capture list recorded",
		"work", key.work.String(), "iterations", key.iterations, "commands", cl.Len())
}

// swap publishes the output at the end of the frame a request was issued
// in. It is a no-op when the capturer was released after the request. When
// the capture list did not run to completion since the request (camera
// disabled, a failed command) the previous image stays published and the
// retired textures stay alive.
func (c *Capturer) swap(epoch, runs uint64) {
	if c.closed || epoch != c.epoch {
		return
	}
	c.queued--
	c.detach()
	if c.list.Executions() == runs {
		Logger().Debug("backdrop: capture not rendered, keeping previous image",
			"pending", len(c.pending))
		return
	}
	c.destroyPending()
	c.published = c.output
	Logger().Debug("backdrop: capture published",
		"width", c.output.Width(), "height", c.output.Height())
}

func (c *Capturer) detach() {
	if c.bound != nil && c.list != nil {
		c.bound.RemoveCommandList(c.opts.event, c.list)
	}
	c.bound = nil
}

func (c *Capturer) destroyPending() {
	for i, tex := range c.pending {
		if tex == c.published {
			c.published = nil
		}
		tex.Destroy()
		c.pending[i] = nil
	}
	c.pending = c.pending[:0]
}

// Release frees GPU resources. It always detaches and releases the command
// list and frees textures pending release; swaps scheduled before the call
// become no-ops. With full set it also clears the published image and frees
// the output buffer.
//
// Release is idempotent and safe when nothing was allocated.
func (c *Capturer) Release(full bool) {
	c.epoch++
	c.queued = 0

	c.detach()
	if c.list != nil {
		c.list.Release()
		c.list = nil
		c.key = listKey{}
	}
	c.destroyPending()

	if full {
		c.published = nil
		if c.output != nil {
			c.output.Destroy()
			c.output = nil
		}
	}
}

// Close releases everything and disables the capturer. Safe to call more
// than once.
func (c *Capturer) Close() {
	c.Release(true)
	c.closed = true
}

// Stats describes the resources a capturer currently owns.
type Stats struct {
	// Textures is the number of live textures (output plus pending).
	Textures int

	// Bytes is the memory of those textures.
	Bytes uint64

	// Pending is the number of textures awaiting deferred release.
	Pending int

	// Published reports whether Texture returns an image.
	Published bool

	// ListAttached reports whether the command list is bound to a camera.
	ListAttached bool

	// Rebuilds counts how often the command list was recorded.
	Rebuilds int

	// QueuedSwaps is the number of swaps scheduled and not yet run.
	QueuedSwaps int
}

// Stats returns resource accounting for the capturer.
func (c *Capturer) Stats() Stats {
	s := Stats{
		Pending:      len(c.pending),
		Published:    c.published != nil,
		ListAttached: c.bound != nil,
		Rebuilds:     c.rebuilds,
		QueuedSwaps:  c.queued,
	}
	add := func(t render.Texture) {
		s.Textures++
		//nolint:gosec // G115: texture dimensions are positive
		s.Bytes += uint64(t.Width()) * uint64(t.Height()) * 4
	}
	if c.output != nil {
		add(c.output)
	}
	for _, t := range c.pending {
		add(t)
	}
	return s
}
