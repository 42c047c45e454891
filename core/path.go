// File: path.go
// Role: Path (ordered city sequence with its cost) and Problem (routing task).

package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Path is an ordered sequence of cities where every consecutive pair is
// joined by a road. Cost is the sum of the traversed road lengths.
//
// A single-city path is valid and costs 0.
type Path struct {
	Cities []*City
	Cost   float64
}

// NewPath builds a Path over m from city names, checking that consecutive
// cities are joined by roads and summing the road lengths in order.
//
// Errors:
//   - ErrEmptyPath: no names given.
//   - ErrCityNotFound: a name is not registered in m.
//   - ErrNotConnected: two consecutive cities have no road between them.
func NewPath(m *Map, names ...string) (Path, error) {
	if len(names) == 0 {
		return Path{}, ErrEmptyPath
	}

	cities := make([]*City, 0, len(names))
	var cost float64
	for i, name := range names {
		c, ok := m.City(name)
		if !ok {
			return Path{}, fmt.Errorf("path position %d: city %q: %w", i, name, ErrCityNotFound)
		}
		if i > 0 {
			r, ok := m.Road(names[i-1], name)
			if !ok {
				return Path{}, fmt.Errorf("path position %d: %s-%s: %w", i, names[i-1], name, ErrNotConnected)
			}
			cost += r.Length()
		}
		cities = append(cities, c)
	}

	return Path{Cities: cities, Cost: cost}, nil
}

// Len returns the number of cities on the path.
func (p Path) Len() int { return len(p.Cities) }

// Empty reports whether the path has no cities.
func (p Path) Empty() bool { return len(p.Cities) == 0 }

// Start returns the first city, or nil for an empty path.
func (p Path) Start() *City {
	if len(p.Cities) == 0 {
		return nil
	}

	return p.Cities[0]
}

// End returns the last city, or nil for an empty path.
func (p Path) End() *City {
	if len(p.Cities) == 0 {
		return nil
	}

	return p.Cities[len(p.Cities)-1]
}

// Names returns the city names in path order.
func (p Path) Names() []string {
	out := make([]string, len(p.Cities))
	for i, c := range p.Cities {
		out[i] = c.name
	}

	return out
}

// SameCities reports whether p and o visit exactly the same city names in
// the same order. Costs are not compared.
func (p Path) SameCities(o Path) bool {
	if len(p.Cities) != len(o.Cities) {
		return false
	}
	for i := range p.Cities {
		if p.Cities[i].name != o.Cities[i].name {
			return false
		}
	}

	return true
}

// String renders the path as "[A B C] cost=7".
func (p Path) String() string {
	return "[" + strings.Join(p.Names(), " ") + "] cost=" + strconv.FormatFloat(p.Cost, 'g', -1, 64)
}

// Problem is a routing task embedded in a map source: where to start, where
// to go and, optionally, the shortest paths a correct search may return.
type Problem struct {
	Start    string
	End      string
	Expected []Path
}

// Validate checks that both endpoints exist in m.
func (p *Problem) Validate(m *Map) error {
	if !m.HasCity(p.Start) {
		return fmt.Errorf("problem start %q: %w", p.Start, ErrCityNotFound)
	}
	if !m.HasCity(p.End) {
		return fmt.Errorf("problem end %q: %w", p.End, ErrCityNotFound)
	}

	return nil
}

// MinExpectedCost returns the smallest cost among the expected paths.
// The second result is false when no expected path is listed.
func (p *Problem) MinExpectedCost() (float64, bool) {
	if len(p.Expected) == 0 {
		return 0, false
	}
	best := p.Expected[0].Cost
	for _, e := range p.Expected[1:] {
		if e.Cost < best {
			best = e.Cost
		}
	}

	return best, true
}
