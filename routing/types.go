package routing

import (
	"errors"

	"github.com/katalvlaran/bcmaps/core"
)

// Sentinel errors returned by the search algorithms and the registry.
var (
	// ErrNilMap indicates a nil *core.Map.
	ErrNilMap = errors.New("routing: map is nil")

	// ErrInvalidEndpoint indicates a start or end city missing from the map.
	ErrInvalidEndpoint = errors.New("routing: endpoint not in map")

	// ErrNoPath indicates that start and end are not connected.
	ErrNoPath = errors.New("routing: no path")

	// ErrUnknownAlgorithm indicates an unregistered algorithm name.
	ErrUnknownAlgorithm = errors.New("routing: unknown algorithm")
)

// Algorithm computes a shortest path from start to end over m.
// A start equal to end yields the one-city path with cost 0.
type Algorithm func(m *core.Map, start, end string) (core.Path, error)

// Registered algorithm names.
const (
	NameAStar            = "a-star"
	NameDijkstraOriginal = "dij-o"
	NameDijkstraPQ       = "dij-pq"
)
