// Package colors provides an immutable HSLuv color value for building
// terminal palettes: perceptually uniform lightness ramps, contrasting
// shades, and hex/RGB conversion.
package colors

import (
	"fmt"
	"iter"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/based-utils/calx"
)

// Name is a named hue from the built-in palette
type Name string

const (
	Red       Name = "red"
	Orange    Name = "orange"
	Yellow    Name = "yellow"
	Poison    Name = "poison"
	Green     Name = "green"
	Turquoise Name = "turquoise"
	Blue      Name = "blue"
	Indigo    Name = "indigo"
	Purple    Name = "purple"
	Pink      Name = "pink"
)

// Hue table: positions on a 36-step wheel, nudged half a step so red
// sits just off pure 0
var hues = map[Name]float64{
	Red:       hueStep(0),
	Orange:    hueStep(3),
	Yellow:    hueStep(6),
	Poison:    hueStep(10),
	Green:     hueStep(13),
	Turquoise: hueStep(21),
	Blue:      hueStep(24),
	Indigo:    hueStep(26),
	Purple:    hueStep(27),
	Pink:      hueStep(33),
}

func hueStep(h float64) float64 { return (h + 0.5) / 36 }

// RGB is a 24-bit color
type RGB struct {
	R, G, B uint8
}

// Color is an immutable HSLuv color. All fields are ratios in [0,1];
// Hue is the fraction of a full hue circle.
type Color struct {
	Lightness  float64
	Saturation float64
	Hue        float64
}

// New returns a Color with lightness and saturation trimmed into [0,1]
// and hue wrapped into [0,1)
func New(lightness, saturation, hue float64) Color {
	return Color{
		Lightness:  calx.Trim(lightness, 0, 1),
		Saturation: calx.Trim(saturation, 0, 1),
		Hue:        wrap1(hue),
	}
}

// FromName returns a mid-lightness, fully saturated color of the named
// hue
func FromName(name Name) (Color, error) {
	h, ok := hues[name]
	if !ok {
		return Color{}, fmt.Errorf("colors: unknown name %q", name)
	}
	return New(0.5, 1, h), nil
}

// Grey returns a desaturated color of the given lightness
func Grey(lightness float64) Color {
	return New(lightness, 0, 0)
}

// FromHSLuv builds a Color from the hsluv reference convention:
// hue in degrees, saturation and lightness in percent
func FromHSLuv(h, s, l float64) Color {
	return New(l/100, s/100, h/360)
}

// HSLuv returns the color in the hsluv reference convention:
// hue in degrees, saturation and lightness in percent
func (c Color) HSLuv() (h, s, l float64) {
	return c.Hue * 360, c.Saturation * 100, c.Lightness * 100
}

// FromHex parses an RGB hex string, with or without a leading '#'.
// Short forms expand per channel: "3" -> 333333, "03" -> 030303,
// "303" -> 330033; full six-digit strings pass through.
func FromHex(hex string) (Color, error) {
	hex = strings.ToLower(strings.TrimPrefix(hex, "#"))

	var expanded string
	switch len(hex) {
	case 1:
		expanded = strings.Repeat(hex, 6)
	case 2:
		expanded = strings.Repeat(hex, 3)
	case 3:
		expanded = fmt.Sprintf("%c%c%c%c%c%c", hex[0], hex[0], hex[1], hex[1], hex[2], hex[2])
	case 6:
		expanded = hex
	default:
		return Color{}, fmt.Errorf("colors: invalid hex %q", hex)
	}

	parsed, err := colorful.Hex("#" + expanded)
	if err != nil {
		return Color{}, fmt.Errorf("colors: invalid hex %q: %w", hex, err)
	}
	h, s, l := parsed.HSLuv()
	return Color{Lightness: l, Saturation: s, Hue: wrap1(h / 360)}, nil
}

// Hex returns the color as six lowercase hex digits, no '#'
func (c Color) Hex() string {
	return c.colorful().Clamped().Hex()[1:]
}

// FromRGB builds a Color from 24-bit RGB
func FromRGB(rgb RGB) Color {
	h, s, l := colorful.Color{
		R: float64(rgb.R) / 255,
		G: float64(rgb.G) / 255,
		B: float64(rgb.B) / 255,
	}.HSLuv()
	return Color{Lightness: l, Saturation: s, Hue: wrap1(h / 360)}
}

// ToRGB returns the color as 24-bit RGB
func (c Color) ToRGB() RGB {
	r, g, b := c.colorful().Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

func (c Color) colorful() colorful.Color {
	return colorful.HSLuv(c.Hue*360, c.Saturation, c.Lightness)
}

// WithLightness returns the color with lightness replaced
func (c Color) WithLightness(lightness float64) Color {
	return New(lightness, c.Saturation, c.Hue)
}

// WithSaturation returns the color with saturation replaced
func (c Color) WithSaturation(saturation float64) Color {
	return New(c.Lightness, saturation, c.Hue)
}

// WithHue returns the color with hue replaced
func (c Color) WithHue(hue float64) Color {
	return New(c.Lightness, c.Saturation, hue)
}

// ScaleLightness returns the color with lightness multiplied by f
func (c Color) ScaleLightness(f float64) Color {
	return New(c.Lightness*f, c.Saturation, c.Hue)
}

// ScaleSaturation returns the color with saturation multiplied by f
func (c Color) ScaleSaturation(f float64) Color {
	return New(c.Lightness, c.Saturation*f, c.Hue)
}

// RotateHue returns the color with the hue rotated by delta revolutions
func (c Color) RotateHue(delta float64) Color {
	return New(c.Lightness, c.Saturation, c.Hue+delta)
}

// ContrastingShade returns the color with a lightness 50% away from the
// current one, same hue and saturation. Suitable as a background for
// text in this color.
func (c Color) ContrastingShade() Color {
	return c.WithLightness(wrap1(c.Lightness + 0.5))
}

// ContrastingHue returns the color with the hue rotated half a circle,
// same saturation and perceived lightness
func (c Color) ContrastingHue() Color {
	return c.RotateHue(0.5)
}

// Shade returns the color at the given lightness
func (c Color) Shade(lightness float64) Color {
	return c.WithLightness(lightness)
}

// Shades returns n evenly spaced shades of the color from dark to
// light. With inclusive set, black and white bracket the ramp.
func (c Color) Shades(n int, inclusive bool) iter.Seq[Color] {
	fr := calx.Fractions(n)
	if inclusive {
		fr = calx.FractionsInclusive(n)
	}
	return func(yield func(Color) bool) {
		for lightness := range fr {
			if !yield(c.Shade(lightness)) {
				return
			}
		}
	}
}

// String renders the color in the hsluv reference convention
func (c Color) String() string {
	h, s, l := c.HSLuv()
	return fmt.Sprintf("Color(hue=%.2f°, saturation=%.2f%%, lightness=%.2f%%)", h, s, l)
}

// wrap1 reduces x into [0,1)
func wrap1(x float64) float64 {
	m := math.Mod(x, 1)
	if m < 0 {
		m++
	}
	return m
}
