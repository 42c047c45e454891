// Package bcmaps computes and checks shortest paths on small road maps.
//
// Maps come in two text formats:
//
//	bcm/      named cities with planar coordinates plus the roads between them
//	ret/      a character reticle whose cells are cities; marked cells also
//	          describe the expected shortest paths of a routing problem
//
// The rest of the module is organized as:
//
//	core/     City, Road, Map, Path and Problem, shared by every package
//	routing/  A* and two Dijkstra variants behind one Algorithm signature
//	check/    compares a computed path with the expected ones
//	engine/   load, search and check in one call, plus a caching task Runner
//	builder/  deterministic random and grid maps for tests and benchmarks
//	cmd/bcm   the command line front end
//
// Quick start:
//
//	m, problem, err := engine.LoadProblem(src, engine.RET)
//	path, err := engine.RunSearch(m, problem.Start, problem.End, routing.NameAStar)
//	outcome, err := engine.CheckResult(path, problem)
//
// All algorithms share the same tie-breaking rules, so their output is
// deterministic for a given map.
package bcmaps
