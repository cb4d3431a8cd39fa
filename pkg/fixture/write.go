package fixture

import (
	"bufio"
	"fmt"
	"io"
)

// Write outputs entries as a bracketed list, one entry per line, with commas
// between entries but not after the last one.
func Write(w io.Writer, entries []Entry) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "[")
	for i, e := range entries {
		fmt.Fprint(bw, e.String())
		if i < len(entries)-1 {
			fmt.Fprintln(bw, ",")
		} else {
			fmt.Fprintln(bw)
		}
	}
	fmt.Fprintln(bw, "]")
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write fixtures: %w", err)
	}
	return nil
}
