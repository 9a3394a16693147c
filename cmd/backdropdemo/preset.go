package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/backdrop"
	"github.com/gogpu/backdrop/render"
	"github.com/gogpu/backdrop/shader"
)

// preset is the TOML form of backdrop.Params. Unset fields keep their
// current value.
type preset struct {
	ToneMode          string   `toml:"tone_mode"`
	ToneLevel         *float32 `toml:"tone_level"`
	ColorMode         string   `toml:"color_mode"`
	EffectColor       string   `toml:"effect_color"`
	BlurMode          string   `toml:"blur_mode"`
	BlurRadius        *float32 `toml:"blur_radius"`
	Iterations        *int     `toml:"iterations"`
	OutputDesampling  string   `toml:"output_desampling"`
	WorkingDesampling string   `toml:"working_desampling"`
	Filter            string   `toml:"filter"`
	Tint              string   `toml:"tint"`
}

func loadPreset(path string) (preset, error) {
	f, err := os.Open(path)
	if err != nil {
		return preset{}, err
	}
	defer f.Close()
	return decodePreset(f)
}

func decodePreset(r io.Reader) (preset, error) {
	var pr preset
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&pr); err != nil {
		return preset{}, fmt.Errorf("preset: %w", err)
	}
	return pr, nil
}

// apply writes the set fields of pr into p.
func (pr preset) apply(p *backdrop.Params) error {
	if pr.ToneMode != "" {
		m, err := shader.ParseToneMode(pr.ToneMode)
		if err != nil {
			return err
		}
		p.SetToneMode(m)
	}
	if pr.ColorMode != "" {
		m, err := shader.ParseColorMode(pr.ColorMode)
		if err != nil {
			return err
		}
		p.SetColorMode(m)
	}
	if pr.BlurMode != "" {
		m, err := shader.ParseBlurMode(pr.BlurMode)
		if err != nil {
			return err
		}
		p.SetBlurMode(m)
	}
	if pr.OutputDesampling != "" {
		r, err := backdrop.ParseDesamplingRate(pr.OutputDesampling)
		if err != nil {
			return err
		}
		p.SetOutputDesampling(r)
	}
	if pr.WorkingDesampling != "" {
		r, err := backdrop.ParseDesamplingRate(pr.WorkingDesampling)
		if err != nil {
			return err
		}
		p.SetWorkingDesampling(r)
	}
	if pr.Filter != "" {
		f, err := render.ParseFilterMode(pr.Filter)
		if err != nil {
			return err
		}
		p.SetFilter(f)
	}
	if pr.ToneLevel != nil {
		p.SetToneLevel(*pr.ToneLevel)
	}
	if pr.BlurRadius != nil {
		p.SetBlurRadius(*pr.BlurRadius)
	}
	if pr.Iterations != nil {
		p.SetIterations(*pr.Iterations)
	}
	if pr.EffectColor != "" {
		c, err := backdrop.ParseHex(pr.EffectColor)
		if err != nil {
			return fmt.Errorf("effect_color: %w", err)
		}
		p.SetEffectColor(c)
	}
	if pr.Tint != "" {
		c, err := backdrop.ParseHex(pr.Tint)
		if err != nil {
			return fmt.Errorf("tint: %w", err)
		}
		p.SetTint(c)
	}
	return nil
}
