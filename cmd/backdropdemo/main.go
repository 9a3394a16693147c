// Command backdropdemo captures a blurred backdrop of a synthetic layered
// scene and writes it to PNG.
//
// Usage:
//
//	backdropdemo -preset frosted.toml -output backdrop.png
//
// The capture excludes the overlay panel. With -composite the captured
// image is drawn back behind the panel and the final frame is written
// instead.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"

	"github.com/gogpu/backdrop"
	"github.com/gogpu/backdrop/backend"
	"github.com/gogpu/backdrop/backend/software"
	"github.com/gogpu/backdrop/widget"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "backdropdemo:", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		width      = flag.Int("width", 960, "scene width")
		height     = flag.Int("height", 540, "scene height")
		output     = flag.String("output", "backdrop.png", "output file")
		presetPath = flag.String("preset", "", "TOML preset with effect parameters")
		backendArg = flag.String("backend", "", "device backend (default: best available)")
		radius     = flag.Float64("blur-radius", 2, "blur radius in [0,4]")
		rate       = flag.String("rate", "x2", "output desampling rate (None, x1, x2, x4, x8)")
		composite  = flag.Bool("composite", false, "write the final frame with the backdrop behind the panel")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	backdrop.SetLogger(logger)

	params, err := buildParams(*presetPath, *radius, *rate)
	if err != nil {
		return err
	}

	scene, err := buildScene(*width, *height)
	if err != nil {
		return err
	}

	device, err := backend.Open(*backendArg, nil)
	if err != nil {
		return err
	}
	camera := software.NewCamera(scene, software.DefaultOverlayZ)
	renderer := software.NewRenderer(camera, nil)

	c := backdrop.New(device,
		backdrop.WithScheduler(renderer.Loop()),
		backdrop.WithCamera(camera),
		backdrop.WithParams(params),
	)
	defer c.Close()
	if err := c.Err(); err != nil {
		return err
	}

	if err := c.RequestCapture(); err != nil {
		return err
	}
	if err := renderer.RenderFrame(); err != nil {
		return err
	}
	captured, ok := c.Texture().(*software.Texture)
	if !ok || captured == nil {
		return errors.New("no image published")
	}
	logger.Info("captured", "width", captured.Width(), "height", captured.Height())

	img := captured.Image()
	if *composite {
		img, err = compose(renderer, c, captured)
		if err != nil {
			return err
		}
	}
	if err := savePNG(*output, img); err != nil {
		return err
	}
	logger.Info("saved", "path", *output)
	return nil
}

func buildParams(path string, radius float64, rate string) (backdrop.Params, error) {
	p := backdrop.DefaultParams()
	p.SetWorkingDesampling(backdrop.DesamplingX4)
	p.SetBlurRadius(float32(radius))

	r, err := backdrop.ParseDesamplingRate(rate)
	if err != nil {
		return p, err
	}
	p.SetOutputDesampling(r)

	if path != "" {
		pr, err := loadPreset(path)
		if err != nil {
			return p, err
		}
		if err := pr.apply(&p); err != nil {
			return p, fmt.Errorf("preset %s: %w", path, err)
		}
	}
	return p, nil
}

// compose draws the captured image behind the overlay panel and renders
// one more frame.
func compose(r *software.Renderer, c *backdrop.Capturer, tex *software.Texture) (*image.RGBA, error) {
	scene := r.Camera().Scene()
	w, h := scene.Width(), scene.Height()
	panel := panelRect(w, h)

	b := widget.NewBackdrop(c, w, h)
	b.SetBounds(widget.Rect{
		X: float32(panel.Min.X), Y: float32(panel.Min.Y),
		W: float32(panel.Dx()), H: float32(panel.Dy()),
	})
	b.SetUVBounds(widget.Rect{
		X: float32(panel.Min.X) / float32(w), Y: float32(panel.Min.Y) / float32(h),
		W: float32(panel.Dx()) / float32(w), H: float32(panel.Dy()) / float32(h),
	})

	var mesh widget.Mesh
	if b.IsVisible() {
		b.EmitGeometry(&mesh)
	}
	layer := scene.Layer(backdropZ)
	if layer == nil {
		return nil, errors.New("backdrop layer missing")
	}
	drawMesh(layer.Image(), tex.Image(), &mesh)

	if err := r.RenderFrame(); err != nil {
		return nil, err
	}
	return r.Camera().Frame().Image(), nil
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
