// hslcheck reads a list in the format output by mkhsl and verifies every
// entry: components in range, hsl/hsla naming agrees with the alpha, numbers
// have no redundant ".0", and the function text converts back to the stated
// colour. If there is an argument it's used as the input filename, otherwise
// stdin is used. Problems are logged and the exit status is 1 if there were
// any.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/alexflint/go-arg"

	"github.com/realh/hslfixtures/pkg/fixture"
)

var args struct {
	Input string `arg:"positional" help:"Fixture list to check (default stdin)"`
	Count *int   `arg:"--count" help:"Expected number of entries, --count=-1 skips the count check [default: as many as mkhsl generates]"`
}

// readFixtures parses the named file, or stdin if input is "" or "-". It also
// returns the name to use in messages.
func readFixtures(input string) ([]fixture.Parsed, string, error) {
	if input == "" || input == "-" {
		entries, err := fixture.Read(os.Stdin)
		return entries, "stdin", err
	}
	fd, err := os.Open(input)
	if err != nil {
		return nil, input, fmt.Errorf("error opening '%s': %w", input, err)
	}
	entries, err := fixture.Read(fd)
	fd.Close()
	return entries, input, err
}

func main() {
	arg.MustParse(&args)
	entries, name, err := readFixtures(args.Input)
	if err != nil {
		log.Fatalf("Failed to read '%s': %v", name, err)
	}
	count := fixture.Count()
	if args.Count != nil {
		count = *args.Count
	}
	err = fixture.CheckAll(entries, count)
	if err == nil {
		log.Printf("%d entries in '%s' are OK", len(entries), name)
		return
	}
	problems := fixture.Problems(err)
	for _, e := range problems {
		log.Println(e)
	}
	log.Fatalf("Found %d problems in '%s'", len(problems), name)
}
