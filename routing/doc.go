// Package routing finds shortest paths between two cities of a core.Map.
//
// Three interchangeable algorithms share one contract (Algorithm):
//
//   - DijkstraOriginal ("dij-o"): tentative-distance table with linear-scan
//     selection. O(V²); kept as the baseline for timing comparisons.
//   - DijkstraPQ ("dij-pq"): the same relaxation with a binary heap and lazy
//     deletion of stale entries. O((V + E) log V).
//   - AStar ("a-star"): DijkstraPQ ordered by cost-so-far plus the straight
//     line distance to the goal. Road lengths are straight-line distances, so
//     the heuristic is admissible and consistent.
//
// Determinism:
//
// Relaxation only accepts strictly shorter distances. DijkstraOriginal picks
// the lowest city ID among equal tentative distances; the heap-based
// algorithms pop equal priorities in the order they were pushed. Repeated
// runs of one algorithm on one map therefore return the same path; different
// algorithms may return different paths of equal cost.
//
// Concurrency:
//
// All search state (distances, predecessors, frontier) is local to a call and
// the map is only read, so any number of searches may share one map.
//
// Errors:
//
//   - ErrNilMap:           the map is nil.
//   - ErrInvalidEndpoint:  start or end is not a city of the map.
//   - ErrNoPath:           no sequence of roads joins start and end.
//   - ErrUnknownAlgorithm: Lookup or Run got a name outside Names().
package routing
