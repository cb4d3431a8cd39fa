// fixture generates the CSS Color Level 3 hsl()/hsla() test vectors: every
// combination of a few alphas, lightnesses, saturations and hues, each paired
// with the RGBA value a conformant parser should produce.
package fixture

import (
	"fmt"
	"image/color"

	"github.com/realh/hslfixtures/pkg/colorsys"
	"github.com/realh/hslfixtures/pkg/pyfloat"
)

const (
	// Lightness and saturation are enumerated in thousandths so that the
	// printed percentages (value / 10) are exact.
	CHANNEL_SCALE = 1000
	CHANNEL_STEP  = 125
	HUE_LIMIT     = 360
	HUE_STEP      = 30
	// RGB components are rounded to this many decimal places
	RGB_DIGITS = 10
)

// Alpha is an optional alpha value. The zero value means no alpha, which
// selects hsl() rather than hsla().
type Alpha struct {
	Value float64
	Set   bool
}

// NoAlpha is the unset Alpha.
var NoAlpha = Alpha{}

// WithAlpha returns a set Alpha.
func WithAlpha(v float64) Alpha {
	return Alpha{Value: v, Set: true}
}

// Effective returns the alpha component of the resulting colour, 1 if unset.
func (a Alpha) Effective() float64 {
	if a.Set {
		return a.Value
	}
	return 1
}

// Alphas are enumerated in this order, outermost.
var Alphas = []Alpha{NoAlpha, WithAlpha(1), WithAlpha(0.2), WithAlpha(0)}

// inclusiveRange returns start, start + step ... up to and including stop.
func inclusiveRange(start, stop, step int) []int {
	var r []int
	for v := start; v <= stop; v += step {
		r = append(r, v)
	}
	return r
}

// Lightnesses returns 0 ... 1000 in steps of 125, both ends included.
func Lightnesses() []int {
	return inclusiveRange(0, CHANNEL_SCALE, CHANNEL_STEP)
}

// Saturations returns the same values as Lightnesses.
func Saturations() []int {
	return inclusiveRange(0, CHANNEL_SCALE, CHANNEL_STEP)
}

// Hues returns 0 ... 330 degrees; 360 is excluded because it's the same as 0.
func Hues() []int {
	return inclusiveRange(0, HUE_LIMIT-1, HUE_STEP)
}

// Count returns the number of entries Generate produces.
func Count() int {
	return len(Alphas) * len(Lightnesses()) * len(Saturations()) * len(Hues())
}

// Entry is one test vector. Hue is in degrees, Saturation and Lightness are
// in thousandths.
type Entry struct {
	Alpha      Alpha
	Hue        int
	Saturation int
	Lightness  int
	RGBA       [4]float64
}

// NewEntry computes the expected colour for the given parameters.
func NewEntry(alpha Alpha, lightness, saturation, hue int) Entry {
	r, g, b := colorsys.HLSToRGB(float64(hue)/HUE_LIMIT,
		float64(lightness)/CHANNEL_SCALE, float64(saturation)/CHANNEL_SCALE)
	return Entry{
		Alpha:      alpha,
		Hue:        hue,
		Saturation: saturation,
		Lightness:  lightness,
		RGBA: [4]float64{
			pyfloat.Round(r, RGB_DIGITS),
			pyfloat.Round(g, RGB_DIGITS),
			pyfloat.Round(b, RGB_DIGITS),
			alpha.Effective(),
		},
	}
}

// Generate returns every entry, nested alpha, lightness, saturation, hue with
// hue varying fastest.
func Generate() []Entry {
	entries := make([]Entry, 0, Count())
	for _, a := range Alphas {
		for _, l := range Lightnesses() {
			for _, s := range Saturations() {
				for _, h := range Hues() {
					entries = append(entries, NewEntry(a, l, s, h))
				}
			}
		}
	}
	return entries
}

// Name is "hsla" if the entry has an alpha, otherwise "hsl".
func (e Entry) Name() string {
	if e.Alpha.Set {
		return "hsla"
	}
	return "hsl"
}

// percent converts thousandths to a percentage string without the % sign.
func percent(v int) string {
	return pyfloat.Format(float64(v) / 10)
}

// Function returns the CSS function text eg "hsla(0, 100%, 50%, 0.2)".
func (e Entry) Function() string {
	var alpha string
	if e.Alpha.Set {
		alpha = ", " + pyfloat.Format(e.Alpha.Value)
	}
	return fmt.Sprintf("%s(%d, %s%%, %s%%%s)", e.Name(), e.Hue,
		percent(e.Saturation), percent(e.Lightness), alpha)
}

// String returns the entry as it appears in the list, without the separator.
func (e Entry) String() string {
	return fmt.Sprintf(`"%s", [%s, %s, %s, %s]`, e.Function(),
		pyfloat.Format(e.RGBA[0]), pyfloat.Format(e.RGBA[1]),
		pyfloat.Format(e.RGBA[2]), pyfloat.Format(e.RGBA[3]))
}

// NRGBA returns the expected colour quantised to 8 bits per channel.
func (e Entry) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: quantise(e.RGBA[0]),
		G: quantise(e.RGBA[1]),
		B: quantise(e.RGBA[2]),
		A: quantise(e.RGBA[3]),
	}
}
