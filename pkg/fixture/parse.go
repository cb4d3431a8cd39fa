package fixture

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrSyntax is wrapped by all parsing errors.
var ErrSyntax = errors.New("invalid fixture syntax")

func syntaxError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrSyntax, fmt.Sprintf(format, args...))
}

// Function is a parsed hsl() or hsla() call. Hue is in degrees, Saturation
// and Lightness are percentages. Tokens holds the numbers as they were
// written, without any % sign.
type Function struct {
	Name       string
	Hue        float64
	Saturation float64
	Lightness  float64
	Alpha      Alpha
	Tokens     []string
}

// ParseFunction parses text such as "hsla(120, 50%, 25%, 0.2)". It accepts an
// alpha argument whichever the name; Check reports a mismatch.
func ParseFunction(s string) (fn Function, err error) {
	s = strings.TrimSpace(s)
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return fn, syntaxError("'%s' is not a function call", s)
	}
	fn.Name = strings.TrimSpace(s[:open])
	if fn.Name != "hsl" && fn.Name != "hsla" {
		return fn, syntaxError("unknown function '%s'", fn.Name)
	}
	args := strings.Split(s[open+1:len(s)-1], ",")
	if len(args) != 3 && len(args) != 4 {
		return fn, syntaxError("%s has %d arguments", fn.Name, len(args))
	}
	for i := range args {
		args[i] = strings.TrimSpace(args[i])
	}
	if fn.Hue, err = parseNumber(args[0], false); err != nil {
		return fn, fmt.Errorf("hue: %w", err)
	}
	if fn.Saturation, err = parseNumber(args[1], true); err != nil {
		return fn, fmt.Errorf("saturation: %w", err)
	}
	if fn.Lightness, err = parseNumber(args[2], true); err != nil {
		return fn, fmt.Errorf("lightness: %w", err)
	}
	if len(args) == 4 {
		var a float64
		if a, err = parseNumber(args[3], false); err != nil {
			return fn, fmt.Errorf("alpha: %w", err)
		}
		fn.Alpha = WithAlpha(a)
	}
	for _, a := range args {
		fn.Tokens = append(fn.Tokens, strings.TrimSuffix(a, "%"))
	}
	return fn, nil
}

func parseNumber(s string, pct bool) (float64, error) {
	if pct {
		if !strings.HasSuffix(s, "%") {
			return 0, syntaxError("'%s' is not a percentage", s)
		}
		s = s[:len(s)-1]
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, syntaxError("'%s' is not a number", s)
	}
	return v, nil
}

// Parsed is one entry read back from a fixture list.
type Parsed struct {
	Line     int
	Function Function
	RGBA     [4]float64
	// Tokens holds the RGBA numbers as written
	Tokens []string
}

// ParseEntry parses one line of a list, with or without its trailing comma.
func ParseEntry(line string) (p Parsed, err error) {
	line = strings.TrimSuffix(strings.TrimSpace(line), ",")
	if !strings.HasPrefix(line, `"`) {
		return p, syntaxError("entry doesn't start with a quoted string")
	}
	end := strings.IndexByte(line[1:], '"')
	if end < 0 {
		return p, syntaxError("unterminated string")
	}
	end++
	if p.Function, err = ParseFunction(line[1:end]); err != nil {
		return
	}
	rest := strings.TrimSpace(line[end+1:])
	if !strings.HasPrefix(rest, ",") {
		return p, syntaxError("missing ',' after function")
	}
	rest = strings.TrimSpace(rest[1:])
	if !strings.HasPrefix(rest, "[") || !strings.HasSuffix(rest, "]") {
		return p, syntaxError("expected [r, g, b, a] after function")
	}
	values := strings.Split(rest[1:len(rest)-1], ",")
	if len(values) != 4 {
		return p, syntaxError("expected 4 components, found %d", len(values))
	}
	for i, v := range values {
		v = strings.TrimSpace(v)
		if p.RGBA[i], err = parseNumber(v, false); err != nil {
			return
		}
		p.Tokens = append(p.Tokens, v)
	}
	return p, nil
}

// Read parses a whole list as written by Write. Line numbers start at 1.
func Read(r io.Reader) ([]Parsed, error) {
	rdr := bufio.NewReader(r)
	var entries []Parsed
	lineNum := 0
	opened, closed := false, false
	needComma := false
	for {
		line, err := rdr.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return entries, fmt.Errorf("error reading fixtures: %w", err)
		}
		if len(line) == 0 && err != nil {
			break
		}
		lineNum++
		// In case of DOS line endings
		line = strings.TrimSpace(line)
		switch {
		case line == "":
		case closed:
			return entries, fmt.Errorf("line %d: %w",
				lineNum, syntaxError("text after closing ']'"))
		case !opened:
			if line != "[" {
				return entries, fmt.Errorf("line %d: %w",
					lineNum, syntaxError("expected '['"))
			}
			opened = true
		case line == "]":
			if needComma {
				return entries, fmt.Errorf("line %d: %w",
					lineNum, syntaxError("trailing ',' before ']'"))
			}
			closed = true
		default:
			if len(entries) > 0 && !needComma {
				return entries, fmt.Errorf("line %d: %w",
					lineNum, syntaxError("missing ',' after previous entry"))
			}
			p, perr := ParseEntry(line)
			if perr != nil {
				return entries, fmt.Errorf("line %d: %w", lineNum, perr)
			}
			p.Line = lineNum
			entries = append(entries, p)
			needComma = strings.HasSuffix(line, ",")
		}
		if err != nil {
			break
		}
	}
	if !closed {
		return entries, fmt.Errorf("line %d: %w",
			lineNum, syntaxError("missing closing ']'"))
	}
	return entries, nil
}
