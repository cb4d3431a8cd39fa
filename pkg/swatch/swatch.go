// swatch renders fixture entries as a grid of solid tiles so that a set of
// generated colours can be eyeballed.
package swatch

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"math"
	"os"

	"github.com/realh/hslfixtures/pkg/fixture"
)

// Quality returns the "quality" factor for arranging numTiles in a grid with
// numColumns. Lower values are better.
func Quality(numTiles, numColumns int) float64 {
	wastage := numColumns - (numTiles % numColumns)
	if wastage == numColumns {
		wastage = 0
	}
	numRows := (numTiles + numColumns - 1) / numColumns
	quality := float64(wastage) / math.Sqrt(float64(numColumns))
	quality += math.Sqrt(float64(numColumns) / float64(numRows))
	return quality
}

// BestFit returns the "best" dimensions for a grid of numTiles uniform square
// tiles, no wider than maxColumns (0 for no limit). It's a compromise between
// minimum wastage and "squareness".
func BestFit(numTiles, maxColumns int) (columns, rows int) {
	if numTiles <= 0 {
		return 0, 0
	}
	if maxColumns <= 0 {
		maxColumns = numTiles
	}
	maxColumns = min(numTiles, maxColumns)
	square := int(math.Ceil(math.Sqrt(float64(numTiles))))
	columns = min(square, maxColumns)
	best := Quality(numTiles, columns)
	for i := columns + 1; i <= maxColumns; i++ {
		quality := Quality(numTiles, i)
		if quality < best {
			best = quality
			columns = i
		}
	}
	rows = (numTiles + columns - 1) / columns
	return
}

// Compose draws one tileSize square per entry, left to right then top to
// bottom in the order given. If columns is 0 or less BestFit chooses it.
// Unused tiles in the last row are left transparent.
func Compose(entries []fixture.Entry, columns, tileSize int) *image.NRGBA {
	var rows int
	if columns <= 0 {
		columns, rows = BestFit(len(entries), 0)
	} else {
		rows = (len(entries) + columns - 1) / columns
	}
	img := image.NewNRGBA(image.Rect(0, 0, columns*tileSize, rows*tileSize))
	for i, e := range entries {
		x0 := (i % columns) * tileSize
		y0 := (i / columns) * tileSize
		c := e.NRGBA()
		for y := y0; y < y0+tileSize; y++ {
			for x := x0; x < x0+tileSize; x++ {
				img.SetNRGBA(x, y, c)
			}
		}
	}
	return img
}

// SavePNG writes img to fileName with maximum PNG compression, replacing
// any existing file.
func SavePNG(img image.Image, fileName string) (err error) {
	f, err := os.Create(fileName)
	if err != nil {
		return fmt.Errorf("failed to open '%s' for writing: %w", fileName, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close '%s': %w", fileName, cerr)
		}
	}()
	w := bufio.NewWriter(f)
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err = enc.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode PNG as '%s': %w", fileName, err)
	}
	if err = w.Flush(); err != nil {
		return fmt.Errorf("failed to write '%s': %w", fileName, err)
	}
	return nil
}
