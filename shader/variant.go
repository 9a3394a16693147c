// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shader

import "fmt"

// ToneMode selects the tone transform applied before colouring.
type ToneMode uint8

const (
	// ToneNone leaves colours unchanged.
	ToneNone ToneMode = iota

	// ToneGrayscale blends towards luminance by the tone level.
	ToneGrayscale

	// ToneSepia blends towards a sepia-toned colour by the tone level.
	ToneSepia

	// ToneNega blends towards the inverted colour by the tone level.
	ToneNega

	// TonePixel quantises sampling coordinates; higher levels give larger cells.
	TonePixel

	toneModeCount
)

// String returns the mode name.
func (m ToneMode) String() string {
	switch m {
	case ToneNone:
		return "None"
	case ToneGrayscale:
		return "Grayscale"
	case ToneSepia:
		return "Sepia"
	case ToneNega:
		return "Nega"
	case TonePixel:
		return "Pixel"
	default:
		return fmt.Sprintf("ToneMode(%d)", m)
	}
}

// ColorMode selects how the effect colour is combined with the image.
type ColorMode uint8

const (
	// ColorMultiply multiplies by the effect colour, weighted by its alpha.
	ColorMultiply ColorMode = iota

	// ColorFill replaces the colour, weighted by the effect colour alpha.
	ColorFill

	// ColorAdd adds the effect colour scaled by its alpha.
	ColorAdd

	// ColorSubtract subtracts the effect colour scaled by its alpha.
	ColorSubtract

	colorModeCount
)

// String returns the mode name.
func (m ColorMode) String() string {
	switch m {
	case ColorMultiply:
		return "Multiply"
	case ColorFill:
		return "Fill"
	case ColorAdd:
		return "Add"
	case ColorSubtract:
		return "Subtract"
	default:
		return fmt.Sprintf("ColorMode(%d)", m)
	}
}

// BlurMode selects the blur kernel size.
type BlurMode uint8

const (
	// BlurNone disables blurring.
	BlurNone BlurMode = iota

	// BlurFast uses a 3x3 kernel.
	BlurFast

	// BlurMedium uses a 5x5 kernel.
	BlurMedium

	// BlurDetail uses a 7x7 kernel.
	BlurDetail

	blurModeCount
)

// String returns the mode name.
func (m BlurMode) String() string {
	switch m {
	case BlurNone:
		return "None"
	case BlurFast:
		return "Fast"
	case BlurMedium:
		return "Medium"
	case BlurDetail:
		return "Detail"
	default:
		return fmt.Sprintf("BlurMode(%d)", m)
	}
}

// KernelRadius returns the number of taps on each side of the centre texel.
func (m BlurMode) KernelRadius() int {
	switch m {
	case BlurFast:
		return 1
	case BlurMedium:
		return 2
	case BlurDetail:
		return 3
	default:
		return 0
	}
}

// Variant is the shader permutation key. Materials are cached per Variant.
type Variant struct {
	Tone  ToneMode
	Color ColorMode
	Blur  BlurMode
}

// Valid reports whether every mode of the variant is known.
func (v Variant) Valid() bool {
	return v.Tone < toneModeCount && v.Color < colorModeCount && v.Blur < blurModeCount
}

// String returns a stable label such as "Grayscale/Multiply/Fast".
func (v Variant) String() string {
	return v.Tone.String() + "/" + v.Color.String() + "/" + v.Blur.String()
}

// ParseToneMode returns the tone mode whose String is s.
func ParseToneMode(s string) (ToneMode, error) {
	for m := range toneModeCount {
		if m.String() == s {
			return m, nil
		}
	}
	return ToneNone, fmt.Errorf("shader: unknown tone mode %q", s)
}

// ParseColorMode returns the colour mode whose String is s.
func ParseColorMode(s string) (ColorMode, error) {
	for m := range colorModeCount {
		if m.String() == s {
			return m, nil
		}
	}
	return ColorMultiply, fmt.Errorf("shader: unknown color mode %q", s)
}

// ParseBlurMode returns the blur mode whose String is s.
func ParseBlurMode(s string) (BlurMode, error) {
	for m := range blurModeCount {
		if m.String() == s {
			return m, nil
		}
	}
	return BlurNone, fmt.Errorf("shader: unknown blur mode %q", s)
}
