// File: methods.go
// Role: Map construction (AddCity, AddRoad) and read-only queries.
//
// Determinism:
//   - Cities(), Roads() and ForEachNeighbor() follow insertion order.
//
// Concurrency:
//   - Mutators take mu for writing, queries take it for reading.

package core

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// AddCity registers a new city at (x, y).
//
// Errors:
//   - ErrEmptyCityName: name == "".
//   - ErrBadCoordinate: x or y is NaN or ±Inf.
//   - ErrCityExists: a city with the same name is already registered.
//
// Complexity: O(1) amortized.
func (m *Map) AddCity(name string, x, y float64) (*City, error) {
	if name == "" {
		return nil, ErrEmptyCityName
	}
	if !finite(x) || !finite(y) {
		return nil, fmt.Errorf("city %q at (%v, %v): %w", name, x, y, ErrBadCoordinate)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.byName[name]; exists {
		return nil, fmt.Errorf("city %q: %w", name, ErrCityExists)
	}

	c := &City{id: len(m.cities), name: name, loc: orb.Point{x, y}}
	m.cities = append(m.cities, c)
	m.byName[name] = c
	m.incident = append(m.incident, nil)

	return c, nil
}

// AddRoad connects the cities named a and b with a bidirectional road.
//
// Errors:
//   - ErrCityNotFound: a or b is not registered.
//   - ErrSelfLoop: a == b.
//   - ErrRoadExists: a road between a and b exists, in either orientation.
//
// Complexity: O(1) amortized.
func (m *Map) AddRoad(a, b string) (*Road, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ca, ok := m.byName[a]
	if !ok {
		return nil, fmt.Errorf("road %s-%s: city %q: %w", a, b, a, ErrCityNotFound)
	}
	cb, ok := m.byName[b]
	if !ok {
		return nil, fmt.Errorf("road %s-%s: city %q: %w", a, b, b, ErrCityNotFound)
	}
	if ca == cb {
		return nil, fmt.Errorf("road %s-%s: %w", a, b, ErrSelfLoop)
	}

	key := pairKey(ca.id, cb.id)
	if _, exists := m.pairs[key]; exists {
		return nil, fmt.Errorf("road %s-%s: %w", a, b, ErrRoadExists)
	}

	r := &Road{a: ca, b: cb}
	m.roads = append(m.roads, r)
	m.pairs[key] = r
	m.incident[ca.id] = append(m.incident[ca.id], r)
	m.incident[cb.id] = append(m.incident[cb.id], r)

	return r, nil
}

// Name returns the descriptive name given with WithName, if any.
func (m *Map) Name() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.name
}

// City looks a city up by name.
func (m *Map) City(name string) (*City, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.byName[name]

	return c, ok
}

// CityAt looks a city up by its dense ID.
func (m *Map) CityAt(id int) (*City, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if id < 0 || id >= len(m.cities) {
		return nil, false
	}

	return m.cities[id], true
}

// HasCity reports whether a city named name exists.
func (m *Map) HasCity(name string) bool {
	_, ok := m.City(name)

	return ok
}

// Cities returns all cities in insertion (ID) order.
// The returned slice is a copy; the cities themselves are shared and immutable.
func (m *Map) Cities() []*City {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*City, len(m.cities))
	copy(out, m.cities)

	return out
}

// Roads returns all roads in insertion order.
func (m *Map) Roads() []*Road {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Road, len(m.roads))
	copy(out, m.roads)

	return out
}

// CityCount returns the number of cities.
func (m *Map) CityCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.cities)
}

// RoadCount returns the number of roads.
func (m *Map) RoadCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.roads)
}

// HasRoad reports whether a road joins the cities named a and b (either orientation).
func (m *Map) HasRoad(a, b string) bool {
	_, ok := m.Road(a, b)

	return ok
}

// Road returns the road joining the cities named a and b, if any.
func (m *Map) Road(a, b string) (*Road, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ca, okA := m.byName[a]
	cb, okB := m.byName[b]
	if !okA || !okB {
		return nil, false
	}
	r, ok := m.pairs[pairKey(ca.id, cb.id)]

	return r, ok
}

// Degree returns the number of roads incident to the city with the given ID,
// or -1 if the ID is unknown.
func (m *Map) Degree(id int) int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if id < 0 || id >= len(m.incident) {
		return -1
	}

	return len(m.incident[id])
}

// ForEachNeighbor calls fn for every road incident to the city with the given
// ID, in road insertion order, passing the road and the city at its far end.
// Unknown IDs are ignored.
//
// The read lock is held while fn runs, so fn must not mutate the map.
// Complexity: O(deg(id)), no allocation.
func (m *Map) ForEachNeighbor(id int, fn func(r *Road, next *City)) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if id < 0 || id >= len(m.incident) {
		return
	}
	from := m.cities[id]
	for _, r := range m.incident[id] {
		fn(r, r.Other(from))
	}
}

// Bound returns the bounding box of all city locations.
// The second result is false for an empty map.
func (m *Map) Bound() (orb.Bound, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if len(m.cities) == 0 {
		return orb.Bound{}, false
	}
	b := m.cities[0].loc.Bound()
	for _, c := range m.cities[1:] {
		b = b.Extend(c.loc)
	}

	return b, true
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
