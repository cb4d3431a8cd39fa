// colorsys converts between RGB and HLS with the same arithmetic as Python's
// colorsys module, so that values computed here are bit-for-bit identical to
// fixtures produced by other IEEE 754 implementations of that module.
package colorsys

import "math"

// All values are in the range 0.0 - 1.0.
const (
	ONE_THIRD = 1.0 / 3.0
	ONE_SIXTH = 1.0 / 6.0
	TWO_THIRD = 2.0 / 3.0
)

// unitMod returns x modulo 1.0 with the sign of the divisor, ie in [0, 1).
func unitMod(x float64) float64 {
	m := math.Mod(x, 1.0)
	if m < 0 {
		m += 1.0
	}
	return m
}

// HLSToRGB converts hue, lightness, saturation to red, green, blue. Note the
// argument order is h, l, s and not h, s, l.
func HLSToRGB(h, l, s float64) (r, g, b float64) {
	if s == 0.0 {
		return l, l, l
	}
	var m2 float64
	if l <= 0.5 {
		m2 = l * (1.0 + s)
	} else {
		m2 = l + s - float64(l*s)
	}
	m1 := float64(2.0*l) - m2
	return channel(m1, m2, h+ONE_THIRD), channel(m1, m2, h),
		channel(m1, m2, h-ONE_THIRD)
}

// channel interpolates one component. The explicit float64 conversions stop
// the compiler fusing multiply-adds, which would change the last bit on some
// architectures.
func channel(m1, m2, hue float64) float64 {
	hue = unitMod(hue)
	if hue < ONE_SIXTH {
		return m1 + float64((m2-m1)*hue*6.0)
	}
	if hue < 0.5 {
		return m2
	}
	if hue < TWO_THIRD {
		return m1 + float64((m2-m1)*(TWO_THIRD-hue)*6.0)
	}
	return m1
}

// RGBToHLS is the inverse of HLSToRGB. Greys have hue and saturation 0.
func RGBToHLS(r, g, b float64) (h, l, s float64) {
	maxc := max(r, g, b)
	minc := min(r, g, b)
	sumc := maxc + minc
	rangec := maxc - minc
	l = sumc / 2.0
	if minc == maxc {
		return 0.0, l, 0.0
	}
	if l <= 0.5 {
		s = rangec / sumc
	} else {
		s = rangec / (2.0 - maxc - minc)
	}
	rc := (maxc - r) / rangec
	gc := (maxc - g) / rangec
	bc := (maxc - b) / rangec
	if r == maxc {
		h = bc - gc
	} else if g == maxc {
		h = 2.0 + rc - bc
	} else {
		h = 4.0 + gc - rc
	}
	h = unitMod(h / 6.0)
	return
}
