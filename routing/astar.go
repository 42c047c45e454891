package routing

import "github.com/katalvlaran/bcmaps/core"

// AStar is DijkstraPQ with priority g + h, where g is the distance travelled
// and h the straight-line distance to end.
//
// Complexity: O((V + E) log V) worst case; usually far fewer cities are
// expanded than with DijkstraPQ.
func AStar(m *core.Map, start, end string) (core.Path, error) {
	s, err := newSearch(m, start, end)
	if err != nil {
		return core.Path{}, err
	}
	if s.trivial() {
		return s.result()
	}

	f := newFrontier(len(s.cities))
	f.push(s.from.ID(), s.from.DistanceTo(s.to))
	s.run(f, func(v int, d float64) {
		f.push(v, d+s.cities[v].DistanceTo(s.to))
	})

	return s.result()
}
