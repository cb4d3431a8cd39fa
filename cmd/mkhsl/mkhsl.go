// mkhsl prints the CSS hsl()/hsla() test vectors as a bracketed list of
// ["function text", [r, g, b, a]] pairs, ready to paste into a parser's test
// data. With no arguments the list goes to stdout. Optionally it also renders
// the colours as a PNG swatch; by default each row holds the 12 hues of one
// alpha, lightness and saturation.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/alexflint/go-arg"

	"github.com/realh/hslfixtures/pkg/fixture"
	"github.com/realh/hslfixtures/pkg/swatch"
)

var args struct {
	Output  string `arg:"-o, --output" help:"Write the list to this file instead of stdout"`
	Swatch  string `arg:"--swatch" help:"Also render the colours as a PNG with this filename"`
	Columns int    `arg:"--columns" default:"12" help:"Number of tiles per swatch row; 0 picks a roughly square layout"`
	Tile    int    `arg:"--tile" default:"8" help:"Width and height of each swatch tile in pixels"`
}

// writeList writes entries to the file named output, or stdout if it's "".
func writeList(entries []fixture.Entry, output string) error {
	if output == "" {
		return fixture.Write(os.Stdout, entries)
	}
	fd, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to open '%s' for writing: %w", output, err)
	}
	if err = fixture.Write(fd, entries); err != nil {
		fd.Close()
		return err
	}
	return fd.Close()
}

func main() {
	p := arg.MustParse(&args)
	if args.Tile < 1 {
		p.Fail("--tile must be at least 1")
	}
	entries := fixture.Generate()
	if err := writeList(entries, args.Output); err != nil {
		log.Fatalf("Unable to write fixtures: %v", err)
	}
	if args.Output != "" {
		log.Printf("Wrote %d fixtures to '%s'", len(entries), args.Output)
	}
	if args.Swatch != "" {
		img := swatch.Compose(entries, args.Columns, args.Tile)
		if err := swatch.SavePNG(img, args.Swatch); err != nil {
			log.Fatal(err)
		}
		b := img.Bounds()
		log.Printf("Saved %dx%d swatch to '%s'", b.Dx(), b.Dy(), args.Swatch)
	}
}
