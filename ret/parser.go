package ret

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/katalvlaran/bcmaps/core"
)

// row is one grid line and where it sits in the source.
type row struct {
	line  int // 1-based source line
	first int // 1-based source column of the first cell
	cells []rune
}

// cellPos is a (column, row) position in the text grid.
type cellPos struct{ c, r int }

type marker struct {
	pos   cellPos
	found bool
}

// grid is the validated text grid of a single Parse call.
type grid struct {
	rows               []row
	w, h               int
	origin, start, end marker
	ids                []int    // city ID per cell, -1 for obstacles
	names              []string // city name per cell
}

// ParseString parses a reticle held in memory.
func ParseString(s string, opts Options) (*Result, error) {
	return Parse(strings.NewReader(s), opts)
}

// Parse reads a reticle from r and builds its map and, when '#' and '$' are
// present, the routing problem with every expected path.
//
// Complexity: O(W·H) for the map; expected-path discovery is O(M²) over
// the marked cells plus the size of the enumerated paths.
func Parse(r io.Reader, opts Options) (*Result, error) {
	if !opts.Connectivity.Valid() {
		return nil, fmt.Errorf("%w: got %v", ErrConnectivity, opts.Connectivity)
	}

	rows, err := readRows(r)
	if err != nil {
		return nil, err
	}
	g := &grid{rows: rows, w: len(rows[0].cells), h: len(rows)}
	if err = g.scanMarkers(); err != nil {
		return nil, err
	}

	m, err := g.buildMap(opts.Connectivity)
	if err != nil {
		return nil, err
	}
	problem, err := g.problem(m, opts.maxExpected())
	if err != nil {
		return nil, err
	}

	return &Result{
		Map:     m,
		Problem: problem,
		Origin:  [2]int{g.origin.pos.c, g.origin.pos.r},
		Width:   g.w,
		Height:  g.h,
	}, nil
}

// readRows splits the input into bar-delimited rows of equal width.
func readRows(r io.Reader) ([]row, error) {
	var rows []row
	sc := bufio.NewScanner(r)
	sc.Buffer(nil, MaxLineBytes)
	line := 0
	for sc.Scan() {
		line++
		raw := sc.Text()
		text := strings.TrimSpace(raw)
		if text == "" {
			continue
		}
		lead := utf8.RuneCountInString(raw[:len(raw)-len(strings.TrimLeftFunc(raw, unicode.IsSpace))])

		runes := []rune(text)
		switch {
		case runes[0] != bar:
			return nil, fail(line, lead+1, ErrMissingBar)
		case len(runes) < 2 || runes[len(runes)-1] != bar:
			return nil, fail(line, lead+len(runes), ErrMissingBar)
		}
		cells := runes[1 : len(runes)-1]
		for i, ch := range cells {
			if ch == bar {
				return nil, fail(line, lead+2+i, ErrStrayBar)
			}
		}
		if len(rows) > 0 && len(cells) != len(rows[0].cells) {
			return nil, fail(line, 0, fmt.Errorf("%w: width %d, first row has %d",
				ErrRaggedRow, len(cells), len(rows[0].cells)))
		}
		rows = append(rows, row{line: line, first: lead + 2, cells: cells})
	}
	if err := sc.Err(); err != nil {
		return nil, fail(line+1, 0, fmt.Errorf("read input: %w", err))
	}

	if len(rows) == 0 {
		return nil, &core.ParseError{Format: FormatName, Err: ErrEmptyGrid}
	}
	if len(rows[0].cells) == 0 {
		return nil, fail(rows[0].line, 0, ErrEmptyGrid)
	}

	return rows, nil
}

// scanMarkers locates 'o', '#' and '$', rejecting duplicates, and resolves
// the default origin.
func (g *grid) scanMarkers() error {
	slots := map[rune]*marker{
		cellOrigin: &g.origin,
		cellStart:  &g.start,
		cellEnd:    &g.end,
	}
	for r, rw := range g.rows {
		for c, ch := range rw.cells {
			mk, ok := slots[ch]
			if !ok {
				continue
			}
			if mk.found {
				return g.fail(c, r, fmt.Errorf("%w: %q", ErrDuplicateMarker, ch))
			}
			*mk = marker{pos: cellPos{c, r}, found: true}
		}
	}
	if !g.origin.found {
		g.origin.pos = cellPos{0, g.h - 1}
	}

	return nil
}

// buildMap adds a city per non-obstacle cell in row-major order, then the
// roads of every cell in offset order.
func (g *grid) buildMap(conn Connectivity) (*core.Map, error) {
	m := core.NewMap(core.WithCapacity(g.w * g.h))
	g.ids = make([]int, g.w*g.h)
	g.names = make([]string, g.w*g.h)

	for r, rw := range g.rows {
		for c, ch := range rw.cells {
			i := g.index(c, r)
			if ch == cellObstacle {
				g.ids[i] = -1
				continue
			}
			x, y := c-g.origin.pos.c, g.origin.pos.r-r
			name := CityName(x, y)
			city, err := m.AddCity(name, float64(x), float64(y))
			if err != nil {
				return nil, g.fail(c, r, err)
			}
			g.ids[i], g.names[i] = city.ID(), name
		}
	}

	steps := offsets4
	if conn == Conn8 {
		steps = offsets8
	}
	for r := 0; r < g.h; r++ {
		for c := 0; c < g.w; c++ {
			from := g.index(c, r)
			if g.ids[from] < 0 {
				continue
			}
			for _, s := range steps {
				nc, nr := c+s.dc, r+s.dr
				if nc < 0 || nc >= g.w || nr >= g.h {
					continue
				}
				to := g.index(nc, nr)
				if g.ids[to] < 0 {
					continue
				}
				if _, err := m.AddRoad(g.names[from], g.names[to]); err != nil {
					return nil, g.fail(c, r, err)
				}
			}
		}
	}

	return m, nil
}

func (g *grid) index(c, r int) int { return r*g.w + c }

func (g *grid) cityID(p cellPos) int { return g.ids[g.index(p.c, p.r)] }

// fail positions err at cell (c, r).
func (g *grid) fail(c, r int, err error) error {
	return fail(g.rows[r].line, g.rows[r].first+c, err)
}

func fail(line, col int, err error) error {
	return &core.ParseError{Format: FormatName, Line: line, Column: col, Err: err}
}
