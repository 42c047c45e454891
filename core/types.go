// File: types.go
// Role: City, Road and Map declarations, sentinel errors, NewMap.
//
// Concurrency:
//   - Map.mu guards every catalog field below it.
//   - City and Road values are immutable after construction and need no lock.

package core

import (
	"errors"
	"sync"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Sentinel errors for map operations.
var (
	// ErrEmptyCityName indicates that a city was created without a name.
	ErrEmptyCityName = errors.New("core: city name is empty")

	// ErrBadCoordinate indicates a NaN or infinite coordinate.
	ErrBadCoordinate = errors.New("core: coordinate is not a finite number")

	// ErrCityExists indicates a second city with an already registered name.
	ErrCityExists = errors.New("core: city already exists")

	// ErrCityNotFound indicates an operation referenced an unknown city.
	ErrCityNotFound = errors.New("core: city not found")

	// ErrSelfLoop indicates a road whose two endpoints are the same city.
	ErrSelfLoop = errors.New("core: road endpoints must be distinct")

	// ErrRoadExists indicates a second road between the same pair of cities.
	ErrRoadExists = errors.New("core: road already exists")

	// ErrNotConnected indicates two consecutive path cities without a road between them.
	ErrNotConnected = errors.New("core: cities are not connected by a road")

	// ErrEmptyPath indicates a path without any city.
	ErrEmptyPath = errors.New("core: path is empty")
)

// City is a named point on the map.
//
// The zero value is not usable; cities are created through Map.AddCity only,
// which assigns the dense ID and guarantees name uniqueness.
type City struct {
	id   int
	name string
	loc  orb.Point
}

// ID returns the insertion index of the city within its map (0-based).
func (c *City) ID() int { return c.id }

// Name returns the unique city name.
func (c *City) Name() string { return c.name }

// X returns the horizontal coordinate.
func (c *City) X() float64 { return c.loc.X() }

// Y returns the vertical coordinate.
func (c *City) Y() float64 { return c.loc.Y() }

// Point returns the location as an orb.Point.
func (c *City) Point() orb.Point { return c.loc }

// DistanceTo returns the straight-line distance between c and o.
func (c *City) DistanceTo(o *City) float64 {
	return planar.Distance(c.loc, o.loc)
}

// String returns the city name.
func (c *City) String() string { return c.name }

// Road is a straight bidirectional connection between two distinct cities.
type Road struct {
	a, b *City
}

// A returns the first endpoint, as passed to AddRoad.
func (r *Road) A() *City { return r.a }

// B returns the second endpoint, as passed to AddRoad.
func (r *Road) B() *City { return r.b }

// Length returns the Euclidean distance between the endpoints.
// It is recomputed from geometry on every call; roads carry no stored weight.
func (r *Road) Length() float64 {
	return planar.Distance(r.a.loc, r.b.loc)
}

// Other returns the endpoint that is not c, or nil if c is not an endpoint.
func (r *Road) Other(c *City) *City {
	switch c {
	case r.a:
		return r.b
	case r.b:
		return r.a
	default:
		return nil
	}
}

// MapOption configures a Map before creation.
type MapOption func(m *Map)

// WithName attaches a descriptive name (usually the source file) to the map.
func WithName(name string) MapOption {
	return func(m *Map) { m.name = name }
}

// WithCapacity preallocates room for n cities.
// Panics on negative n.
func WithCapacity(n int) MapOption {
	if n < 0 {
		panic("core: WithCapacity(n < 0)")
	}
	return func(m *Map) {
		m.cities = make([]*City, 0, n)
		m.byName = make(map[string]*City, n)
		m.incident = make([][]*Road, 0, n)
	}
}

// Map is the in-memory routing graph: cities plus undirected roads.
//
// mu protects all fields below it. pairs indexes roads by their unordered
// endpoint ID pair so duplicate detection and HasRoad are O(1).
type Map struct {
	mu sync.RWMutex

	name     string
	cities   []*City          // ID → city
	byName   map[string]*City // name → city
	roads    []*Road          // insertion order
	incident [][]*Road        // ID → incident roads, insertion order
	pairs    map[[2]int]*Road // {min(ID), max(ID)} → road
}

// NewMap creates an empty Map with the given options applied in order.
// Complexity: O(len(opts)).
func NewMap(opts ...MapOption) *Map {
	m := &Map{
		cities:   make([]*City, 0),
		byName:   make(map[string]*City),
		incident: make([][]*Road, 0),
		pairs:    make(map[[2]int]*Road),
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// pairKey returns the order-independent key of a road between i and j.
func pairKey(i, j int) [2]int {
	if i > j {
		i, j = j, i
	}

	return [2]int{i, j}
}
