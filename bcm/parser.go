package bcm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/bcmaps/core"
)

// FormatName tags ParseErrors produced by this package.
const FormatName = "bcm"

// Section headers, matched exactly after trimming.
const (
	headerCities = "[Cities]"
	headerRoads  = "[Roads]"
	commentMark  = "#"
)

// MaxLineBytes is the longest input line Parse accepts.
const MaxLineBytes = 4 << 20

type section int

const (
	sectionNone section = iota
	sectionCities
	sectionRoads
)

// field is one comma-separated value with its 1-based column in the raw line.
type field struct {
	text string
	col  int
}

// ParseString parses BCM text held in memory.
func ParseString(s string, opts ...core.MapOption) (*core.Map, error) {
	return Parse(strings.NewReader(s), opts...)
}

// Parse reads a BCM document from r and builds a map.
// Map options (name, capacity) are forwarded to core.NewMap.
//
// Complexity: O(L) time over the input length, O(C+R) memory.
func Parse(r io.Reader, opts ...core.MapOption) (*core.Map, error) {
	p := &parser{m: core.NewMap(opts...)}
	sc := bufio.NewScanner(r)
	sc.Buffer(nil, MaxLineBytes)
	for sc.Scan() {
		p.line++
		if err := p.parseLine(sc.Text()); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		p.line++
		return nil, p.fail(0, fmt.Errorf("read input: %w", err))
	}

	return p.m, nil
}

// parser holds the state of a single Parse call.
type parser struct {
	m          *core.Map
	line       int
	state      section
	seenCities bool
}

func (p *parser) parseLine(raw string) error {
	line := strings.TrimSpace(raw)
	if line == "" || strings.HasPrefix(line, commentMark) {
		return nil
	}

	switch line {
	case headerCities:
		p.state = sectionCities
		p.seenCities = true
		return nil
	case headerRoads:
		if !p.seenCities {
			return p.fail(0, ErrRoadsBeforeCities)
		}
		p.state = sectionRoads
		return nil
	}

	fields := splitFields(raw)
	switch p.state {
	case sectionCities:
		return p.parseCity(fields)
	case sectionRoads:
		return p.parseRoad(fields)
	default:
		if len(fields) == 2 {
			return p.fail(0, ErrRoadsBeforeCities)
		}
		return p.fail(0, ErrNoSection)
	}
}

// parseCity handles "<name>, <x>, <y>".
func (p *parser) parseCity(fields []field) error {
	if len(fields) != 3 {
		return p.fail(0, fmt.Errorf("%w: city line has %d, want 3", ErrFieldCount, len(fields)))
	}
	name := fields[0]
	if name.text == "" {
		return p.fail(name.col, ErrEmptyName)
	}

	var coords [2]float64
	for i, f := range fields[1:] {
		v, err := strconv.ParseFloat(f.text, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return p.fail(f.col, fmt.Errorf("%w: %q", ErrBadNumber, f.text))
		}
		coords[i] = v
	}

	if _, err := p.m.AddCity(name.text, coords[0], coords[1]); err != nil {
		if errors.Is(err, core.ErrCityExists) {
			return p.fail(name.col, fmt.Errorf("%w: %w", ErrDuplicateCity, err))
		}
		return p.fail(name.col, err)
	}

	return nil
}

// parseRoad handles "<name>, <name>".
func (p *parser) parseRoad(fields []field) error {
	if len(fields) != 2 {
		return p.fail(0, fmt.Errorf("%w: road line has %d, want 2", ErrFieldCount, len(fields)))
	}
	a, b := fields[0], fields[1]
	for _, f := range fields {
		if !p.m.HasCity(f.text) {
			return p.fail(f.col, fmt.Errorf("%w: %q", ErrUnknownCity, f.text))
		}
	}

	_, err := p.m.AddRoad(a.text, b.text)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, core.ErrSelfLoop):
		return p.fail(b.col, fmt.Errorf("%w: %w", ErrSelfRoad, err))
	case errors.Is(err, core.ErrRoadExists):
		return p.fail(a.col, fmt.Errorf("%w: %w", ErrDuplicateRoad, err))
	default:
		return p.fail(a.col, err)
	}
}

func (p *parser) fail(col int, err error) error {
	return &core.ParseError{Format: FormatName, Line: p.line, Column: col, Err: err}
}

// splitFields splits raw on commas and trims every field, remembering where
// each trimmed field starts in raw.
func splitFields(raw string) []field {
	parts := strings.Split(raw, ",")
	out := make([]field, 0, len(parts))
	offset := 0
	for _, part := range parts {
		lead := len(part) - len(strings.TrimLeft(part, " \t"))
		out = append(out, field{text: strings.TrimSpace(part), col: offset + lead + 1})
		offset += len(part) + 1
	}

	return out
}
