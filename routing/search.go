package routing

import (
	"fmt"
	"math"

	"github.com/katalvlaran/bcmaps/core"
)

// search holds the mutable state of a single shortest-path call.
type search struct {
	m        *core.Map
	cities   []*core.City // snapshot indexed by city ID
	from, to *core.City
	dist     []float64 // best known distance from start, +Inf if unseen
	prev     []int     // predecessor city ID on the best known path, -1 if none
	done     []bool    // distance is final
}

// newSearch validates the endpoints and allocates per-call state.
func newSearch(m *core.Map, start, end string) (*search, error) {
	if m == nil {
		return nil, ErrNilMap
	}
	from, ok := m.City(start)
	if !ok {
		return nil, fmt.Errorf("%w: start %q", ErrInvalidEndpoint, start)
	}
	to, ok := m.City(end)
	if !ok {
		return nil, fmt.Errorf("%w: end %q", ErrInvalidEndpoint, end)
	}

	cities := m.Cities()
	s := &search{
		m:      m,
		cities: cities,
		from:   from,
		to:     to,
		dist:   make([]float64, len(cities)),
		prev:   make([]int, len(cities)),
		done:   make([]bool, len(cities)),
	}
	for i := range s.dist {
		s.dist[i] = math.Inf(1)
		s.prev[i] = -1
	}
	s.dist[from.ID()] = 0

	return s, nil
}

// trivial reports whether start and end are the same city.
func (s *search) trivial() bool { return s.from == s.to }

// relax offers every road out of u. accept is called for each neighbour
// whose distance strictly improved.
func (s *search) relax(u int, accept func(v int, d float64)) {
	s.m.ForEachNeighbor(u, func(r *core.Road, next *core.City) {
		v := next.ID()
		if s.done[v] {
			return
		}
		if d := s.dist[u] + r.Length(); d < s.dist[v] {
			s.dist[v] = d
			s.prev[v] = u
			if accept != nil {
				accept(v, d)
			}
		}
	})
}

// result walks predecessors back from the goal and reverses them.
func (s *search) result() (core.Path, error) {
	if s.trivial() {
		return core.Path{Cities: []*core.City{s.from}}, nil
	}
	goal := s.to.ID()
	if math.IsInf(s.dist[goal], 1) {
		return core.Path{}, fmt.Errorf("%w: %s to %s", ErrNoPath, s.from.Name(), s.to.Name())
	}

	var n int
	for v := goal; v >= 0; v = s.prev[v] {
		n++
	}
	cities := make([]*core.City, n)
	for v := goal; v >= 0; v = s.prev[v] {
		n--
		cities[n] = s.cities[v]
	}

	return core.Path{Cities: cities, Cost: s.dist[goal]}, nil
}
