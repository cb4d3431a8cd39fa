package colorsys

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type rgb struct{ r, g, b float64 }

func TestHLSToRGB(t *testing.T) {
	tests := []struct {
		name    string
		h, l, s float64
		want    rgb
	}{
		{"black", 0, 0, 0, rgb{0, 0, 0}},
		{"grey", 0.5, 0.375, 0, rgb{0.375, 0.375, 0.375}},
		{"white", 0, 1, 1, rgb{1, 1, 1}},
		{"red", 0, 0.5, 1, rgb{1, 0, 0}},
		{"orange", 30.0 / 360.0, 0.5, 1, rgb{1, 0.5, 0}},
		{"dark", 30.0 / 360.0, 0.125, 0.125, rgb{0.140625, 0.125, 0.109375}},
		{"pale", 90.0 / 360.0, 0.875, 0.625, rgb{0.875, 0.953125, 0.796875}},
		{"magenta", 300.0 / 360.0, 0.5, 1, rgb{1, 0, 0.9999999999999998}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := HLSToRGB(tt.h, tt.l, tt.s)
			assert.Equal(t, tt.want, rgb{r, g, b})
		})
	}
}

func TestHLSToRGBArgumentOrder(t *testing.T) {
	// lightness 0 is black whatever the saturation; saturation 0 is grey
	r, g, b := HLSToRGB(0, 0, 1)
	assert.Equal(t, rgb{0, 0, 0}, rgb{r, g, b})
	r, g, b = HLSToRGB(0, 1, 0)
	assert.Equal(t, rgb{1, 1, 1}, rgb{r, g, b})
}

func TestRGBToHLSRoundTrip(t *testing.T) {
	for hue := 0; hue < 360; hue += 30 {
		for _, l := range []float64{0.125, 0.375, 0.5, 0.625, 0.875} {
			for _, s := range []float64{0.25, 0.5, 1} {
				h0 := float64(hue) / 360.0
				r, g, b := HLSToRGB(h0, l, s)
				h, l2, s2 := RGBToHLS(r, g, b)
				assert.InDelta(t, h0, h, 1e-12, "hue %d l %v s %v", hue, l, s)
				assert.InDelta(t, l, l2, 1e-12)
				assert.InDelta(t, s, s2, 1e-12)
			}
		}
	}
	h, l, s := RGBToHLS(0.25, 0.25, 0.25)
	assert.Equal(t, 0.0, h)
	assert.Equal(t, 0.25, l)
	assert.Equal(t, 0.0, s)
}
