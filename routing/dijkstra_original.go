package routing

import (
	"math"

	"github.com/katalvlaran/bcmaps/core"
)

// DijkstraOriginal is Dijkstra's algorithm with linear-scan selection of the
// next city. Among equal tentative distances the lowest city ID wins.
//
// Complexity: O(V² + E) time, O(V) memory.
func DijkstraOriginal(m *core.Map, start, end string) (core.Path, error) {
	s, err := newSearch(m, start, end)
	if err != nil {
		return core.Path{}, err
	}
	if s.trivial() {
		return s.result()
	}

	goal := s.to.ID()
	for {
		u := -1
		for v, d := range s.dist {
			if s.done[v] || math.IsInf(d, 1) {
				continue
			}
			if u < 0 || d < s.dist[u] {
				u = v
			}
		}
		if u < 0 || u == goal {
			break
		}
		s.done[u] = true
		s.relax(u, nil)
	}

	return s.result()
}
