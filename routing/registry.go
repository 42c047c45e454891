package routing

import (
	"fmt"

	"github.com/katalvlaran/bcmaps/core"
)

type entry struct {
	name string
	fn   Algorithm
}

// registry is fixed at build time and never mutated.
var registry = []entry{
	{NameAStar, AStar},
	{NameDijkstraOriginal, DijkstraOriginal},
	{NameDijkstraPQ, DijkstraPQ},
}

// Names returns the registered algorithm names in a fixed order.
func Names() []string {
	out := make([]string, len(registry))
	for i, e := range registry {
		out[i] = e.name
	}

	return out
}

// Lookup returns the algorithm registered under name.
func Lookup(name string) (Algorithm, error) {
	for _, e := range registry {
		if e.name == name {
			return e.fn, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Run looks up the algorithm by name and searches m from start to end.
func Run(m *core.Map, start, end, name string) (core.Path, error) {
	alg, err := Lookup(name)
	if err != nil {
		return core.Path{}, err
	}

	return alg(m, start, end)
}
