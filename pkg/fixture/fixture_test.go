package fixture

import (
	"bytes"
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const goldenFile = "hsl.txt"

func TestRanges(t *testing.T) {
	assert.Equal(t, []int{0, 125, 250, 375, 500, 625, 750, 875, 1000},
		Lightnesses())
	assert.Equal(t, Lightnesses(), Saturations())
	assert.Equal(t,
		[]int{0, 30, 60, 90, 120, 150, 180, 210, 240, 270, 300, 330}, Hues())
	assert.Equal(t, 4*9*9*12, Count())
}

func TestGenerate(t *testing.T) {
	entries := Generate()
	require.Len(t, entries, Count())

	// hue varies fastest, then saturation, lightness and alpha
	assert.Equal(t, 30, entries[1].Hue)
	assert.Equal(t, 125, entries[12].Saturation)
	assert.Equal(t, 0, entries[12].Lightness)
	assert.Equal(t, 125, entries[12*9].Lightness)
	assert.Equal(t, WithAlpha(1), entries[12*9*9].Alpha)

	last := entries[len(entries)-1]
	assert.Equal(t, Entry{
		Alpha: WithAlpha(0), Hue: 330, Saturation: 1000, Lightness: 1000,
		RGBA: [4]float64{1, 1, 1, 0},
	}, last)

	for _, e := range entries {
		for _, c := range e.RGBA[:3] {
			assert.GreaterOrEqual(t, c, 0.0)
			assert.LessOrEqual(t, c, 1.0)
		}
		assert.Contains(t, AllowedAlphas, e.RGBA[3])
	}
}

func TestEntryString(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
		want  string
	}{
		{
			"black",
			NewEntry(NoAlpha, 0, 0, 0),
			`"hsl(0, 0%, 0%)", [0, 0, 0, 1]`,
		},
		{
			"red",
			NewEntry(WithAlpha(1), 500, 1000, 0),
			`"hsla(0, 100%, 50%, 1)", [1, 0, 0, 1]`,
		},
		{
			"fractional percentages",
			NewEntry(NoAlpha, 125, 125, 30),
			`"hsl(30, 12.5%, 12.5%)", [0.140625, 0.125, 0.109375, 1]`,
		},
		{
			"translucent",
			NewEntry(WithAlpha(0.2), 875, 625, 90),
			`"hsla(90, 62.5%, 87.5%, 0.2)", [0.875, 0.953125, 0.796875, 0.2]`,
		},
		{
			"transparent",
			NewEntry(WithAlpha(0), 1000, 1000, 330),
			`"hsla(330, 100%, 100%, 0)", [1, 1, 1, 0]`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.entry.String())
		})
	}
}

func TestSaturationAndLightnessNotSwapped(t *testing.T) {
	// full saturation at zero lightness is black, zero saturation at full
	// lightness is white
	e := NewEntry(NoAlpha, 0, 1000, 120)
	assert.Equal(t, [4]float64{0, 0, 0, 1}, e.RGBA)
	assert.Equal(t, "hsl(120, 100%, 0%)", e.Function())
	e = NewEntry(NoAlpha, 1000, 0, 120)
	assert.Equal(t, [4]float64{1, 1, 1, 1}, e.RGBA)
	assert.Equal(t, "hsl(120, 0%, 100%)", e.Function())
}

func TestAlphaOmission(t *testing.T) {
	for _, e := range Generate() {
		fn := e.Function()
		if e.Alpha.Set {
			assert.True(t, strings.HasPrefix(fn, "hsla("), fn)
			assert.Equal(t, 3, strings.Count(fn, ","), fn)
		} else {
			assert.True(t, strings.HasPrefix(fn, "hsl("), fn)
			assert.Equal(t, 2, strings.Count(fn, ","), fn)
		}
	}
}

func TestWriteMatchesReference(t *testing.T) {
	want, err := os.ReadFile(filepath.Join("testdata", goldenFile))
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, Generate()))
	assert.Equal(t, string(want), buf.String())
}

func TestWriteFormat(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, []Entry{
		NewEntry(NoAlpha, 0, 0, 0),
		NewEntry(WithAlpha(1), 500, 1000, 0),
	}))
	assert.Equal(t, "[\n"+
		`"hsl(0, 0%, 0%)", [0, 0, 0, 1],`+"\n"+
		`"hsla(0, 100%, 50%, 1)", [1, 0, 0, 1]`+"\n"+
		"]\n", buf.String())

	buf.Reset()
	require.NoError(t, Write(&buf, nil))
	assert.Equal(t, "[\n]\n", buf.String())
}

func TestNRGBA(t *testing.T) {
	assert.Equal(t, color.NRGBA{255, 0, 0, 51},
		NewEntry(WithAlpha(0.2), 500, 1000, 0).NRGBA())
	assert.Equal(t, color.NRGBA{36, 32, 28, 255},
		NewEntry(NoAlpha, 125, 125, 30).NRGBA())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteError(t *testing.T) {
	err := Write(failingWriter{}, Generate())
	assert.ErrorContains(t, err, "disk full")
}
