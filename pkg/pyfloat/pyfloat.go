// pyfloat formats float64 values the way Python's str() and round() do, which
// is the notation used by the fixture files these tools produce.
package pyfloat

import (
	"math"
	"strconv"
	"strings"
)

// Repr returns the shortest decimal string that parses back to f. Unlike
// strconv's shortest format it always has a fraction or an exponent, eg "1.0",
// and only switches to exponent form outside 1e-4 <= |f| < 1e16.
func Repr(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case f == 0:
		if math.Signbit(f) {
			return "-0.0"
		}
		return "0.0"
	}
	e := strconv.FormatFloat(f, 'e', -1, 64)
	exp, err := strconv.Atoi(e[strings.IndexByte(e, 'e')+1:])
	if err != nil || exp < -4 || exp >= 16 {
		// strconv already pads the exponent to 2 digits with a sign
		return e
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// Round rounds f to ndigits decimal places. Exact ties go to the even digit,
// which is what a correctly rounded decimal conversion gives.
func Round(f float64, ndigits int) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) || f == 0 {
		return f
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(f, 'f', ndigits, 64), 64)
	if err != nil {
		return f
	}
	return r
}

// Trim removes a trailing ".0" so that integral values print as integers.
func Trim(s string) string {
	return strings.TrimSuffix(s, ".0")
}

// Format is Trim(Repr(f)).
func Format(f float64) string {
	return Trim(Repr(f))
}
