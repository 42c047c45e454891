package routing

import "github.com/katalvlaran/bcmaps/core"

// DijkstraPQ is Dijkstra's algorithm over a binary heap with lazy
// decrease-key: an improved distance pushes a fresh entry and stale entries
// are dropped when popped.
//
// Complexity: O((V + E) log V) time, O(V + E) memory.
func DijkstraPQ(m *core.Map, start, end string) (core.Path, error) {
	s, err := newSearch(m, start, end)
	if err != nil {
		return core.Path{}, err
	}
	if s.trivial() {
		return s.result()
	}

	f := newFrontier(len(s.cities))
	f.push(s.from.ID(), 0)
	s.run(f, func(v int, d float64) { f.push(v, d) })

	return s.result()
}

// run drains f, finalising each popped city and relaxing its roads, until the
// goal is finalised or the frontier is empty.
func (s *search) run(f *frontier, accept func(v int, d float64)) {
	goal := s.to.ID()
	for f.len() > 0 {
		u := f.pop().id
		if s.done[u] {
			continue
		}
		s.done[u] = true
		if u == goal {
			return
		}
		s.relax(u, accept)
	}
}
