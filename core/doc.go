// Package core provides the map model shared by every other bcmaps package:
// cities placed on a plane, straight bidirectional roads between them,
// paths over those roads and routing problems.
//
// The Map M = (C,R) has a deliberately small surface:
//
//   - Cities are immutable once created; each one has a unique name, an
//     orb.Point location (kilometres for BCM maps, grid units for reticles)
//     and a dense ID equal to its insertion index.
//   - Roads join two distinct cities. A road stores no weight: its length is
//     always the Euclidean distance between its endpoints, so it can never
//     drift away from the geometry.
//   - Iteration order is insertion order everywhere (Cities, Roads,
//     ForEachNeighbor). Algorithms built on top rely on it for reproducible
//     tie-breaking.
//   - A single sync.RWMutex guards the catalog. Building a map takes the
//     write lock; every query takes the read lock, so one Map can be shared by
//     any number of concurrent searches.
//
// Core Methods:
//
//	// Construction
//	NewMap(opts ...MapOption) *Map
//	AddCity(name string, x, y float64) (*City, error)  // O(1)
//	AddRoad(a, b string) (*Road, error)                // O(1)
//
//	// Query
//	City(name string) (*City, bool)                    // O(1)
//	CityAt(id int) (*City, bool)                       // O(1)
//	Cities() []*City                                   // O(C), insertion order
//	Roads() []*Road                                    // O(R), insertion order
//	HasRoad(a, b string) bool                          // O(1)
//	ForEachNeighbor(id int, fn func(*Road, *City))     // O(deg)
//	Bound() (orb.Bound, bool)                          // O(C)
//
// Paths and problems:
//
//	NewPath(m, names...) (Path, error)  // validated, cost computed from geometry
//	Problem{Start, End, Expected}       // routing task embedded in some formats
//
// Errors:
//
//	ErrEmptyCityName – zero-length city name
//	ErrBadCoordinate – NaN or infinite coordinate
//	ErrCityExists    – duplicate city name
//	ErrCityNotFound  – unknown city name or ID
//	ErrSelfLoop      – road from a city to itself
//	ErrRoadExists    – second road between the same two cities
//	ErrNotConnected  – consecutive path cities without a road
//	ErrEmptyPath     – path without cities
package core
