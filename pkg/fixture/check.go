package fixture

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/crazy3lf/colorconv"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	// ROUND_TRIP_TOLERANCE allows for rounding to RGB_DIGITS places plus the
	// difference between two float implementations of the same formula.
	ROUND_TRIP_TOLERANCE = 1e-9
	// BYTE_TOLERANCE is for comparisons after quantising to 8 bits.
	BYTE_TOLERANCE = 1.0/255 + 1e-9
)

// ErrCheck is wrapped by all errors returned by Check.
var ErrCheck = errors.New("fixture check failed")

// AllowedAlphas are the only alpha components an entry may have.
var AllowedAlphas = []float64{1, 0.2, 0}

func checkError(p Parsed, format string, args ...any) error {
	return fmt.Errorf("line %d: %w: %s", p.Line, ErrCheck,
		fmt.Sprintf(format, args...))
}

// Check verifies one parsed entry: components in range, the function name
// agrees with the presence of alpha, no number is written with a redundant
// ".0", and converting the function text with independent HSL
// implementations gives the stated RGB. It returns all the problems it finds
// joined together, or nil.
func Check(p Parsed) error {
	var errs []error
	for i, c := range p.RGBA[:3] {
		if c < 0 || c > 1 {
			errs = append(errs, checkError(p,
				"component %d (%v) is outside [0, 1]", i, c))
		}
	}
	alpha := p.RGBA[3]
	allowed := false
	for _, a := range AllowedAlphas {
		if alpha == a {
			allowed = true
		}
	}
	if !allowed {
		errs = append(errs, checkError(p, "unexpected alpha %v", alpha))
	}
	fn := p.Function
	switch fn.Name {
	case "hsl":
		if fn.Alpha.Set {
			errs = append(errs, checkError(p, "hsl() has an alpha argument"))
		}
		if alpha != 1 {
			errs = append(errs, checkError(p, "hsl() has alpha %v, not 1",
				alpha))
		}
	case "hsla":
		if !fn.Alpha.Set {
			errs = append(errs, checkError(p, "hsla() has no alpha argument"))
		} else if fn.Alpha.Value != alpha {
			errs = append(errs, checkError(p,
				"hsla() alpha %v doesn't match component %v",
				fn.Alpha.Value, alpha))
		}
	}
	for _, tok := range append(append([]string{}, fn.Tokens...), p.Tokens...) {
		if strings.HasSuffix(tok, ".0") {
			errs = append(errs, checkError(p, "'%s' has a trailing .0", tok))
		}
	}
	if err := checkRoundTrip(p); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// checkRoundTrip compares the stated RGB with go-colorful's CSS-style HSL
// conversion, then checks the lightness colorconv derives from the 8-bit
// version of the stated colour.
func checkRoundTrip(p Parsed) error {
	fn := p.Function
	s := fn.Saturation / 100
	l := fn.Lightness / 100
	c := colorful.Hsl(fn.Hue, s, l)
	want := [3]float64{c.R, c.G, c.B}
	for i, w := range want {
		if math.Abs(w-p.RGBA[i]) > ROUND_TRIP_TOLERANCE {
			return checkError(p,
				"%s converts to %v, not %v", "rgb"[i:i+1], w, p.RGBA[i])
		}
	}
	q := color.NRGBA{
		R: quantise(p.RGBA[0]),
		G: quantise(p.RGBA[1]),
		B: quantise(p.RGBA[2]),
		A: 255,
	}
	_, _, ql := colorconv.ColorToHSL(q)
	if math.Abs(ql-l) > BYTE_TOLERANCE {
		return checkError(p, "8-bit colour %v has lightness %v, not %v",
			q, ql, l)
	}
	return nil
}

func quantise(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

// CheckAll checks every entry, and also the number of entries unless
// wantCount is negative.
func CheckAll(entries []Parsed, wantCount int) error {
	var errs []error
	if wantCount >= 0 && len(entries) != wantCount {
		errs = append(errs, fmt.Errorf("%w: found %d entries, expected %d",
			ErrCheck, len(entries), wantCount))
	}
	for _, p := range entries {
		if err := Check(p); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Problems flattens the errors joined by Check and CheckAll into a list with
// one problem per element.
func Problems(err error) []error {
	if err == nil {
		return nil
	}
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		var errs []error
		for _, e := range j.Unwrap() {
			errs = append(errs, Problems(e)...)
		}
		return errs
	}
	return []error{err}
}
