package ret

import (
	"fmt"
	"math"

	"github.com/katalvlaran/bcmaps/core"
)

// costTolerance is the relative tolerance used when comparing path costs
// built from sums of 1 and √2.
const costTolerance = 1e-9

// step is an edge of the shortest-path DAG over marked cells.
type step struct {
	to     int
	length float64
}

// problem derives the routing problem from the markers. It returns nil when
// the grid has neither '#' nor '$'. Without '@' cells the problem has
// endpoints only and Expected is nil.
func (g *grid) problem(m *core.Map, limit int) (*core.Problem, error) {
	switch {
	case !g.start.found && !g.end.found:
		if p, ok := g.firstCell(cellPath); ok {
			return nil, g.fail(p.c, p.r, ErrOrphanPathCell)
		}
		return nil, nil
	case !g.start.found:
		return nil, g.fail(g.end.pos.c, g.end.pos.r, ErrUnpairedMarker)
	case !g.end.found:
		return nil, g.fail(g.start.pos.c, g.start.pos.r, ErrUnpairedMarker)
	}

	startName := g.names[g.index(g.start.pos.c, g.start.pos.r)]
	endName := g.names[g.index(g.end.pos.c, g.end.pos.r)]
	if _, ok := g.firstCell(cellPath); !ok {
		return &core.Problem{Start: startName, End: endName}, nil
	}

	startID, endID := g.cityID(g.start.pos), g.cityID(g.end.pos)
	var members []int
	marked := make([]bool, m.CityCount())
	for r, rw := range g.rows {
		for c, ch := range rw.cells {
			if ch == cellStart || ch == cellEnd || ch == cellPath {
				id := g.ids[g.index(c, r)]
				marked[id] = true
				members = append(members, id)
			}
		}
	}

	fromStart := distancesWithin(m, members, marked, startID)
	fromEnd := distancesWithin(m, members, marked, endID)
	best := fromStart[endID]

	// Every marked cell must lie on some minimum-cost start-to-end path.
	onPath := make([]bool, len(marked))
	for r, rw := range g.rows {
		for c, ch := range rw.cells {
			if ch != cellStart && ch != cellEnd && ch != cellPath {
				continue
			}
			id := g.ids[g.index(c, r)]
			ds, de := fromStart[id], fromEnd[id]
			if math.IsInf(ds, 1) || math.IsInf(de, 1) || !approxEqual(ds+de, best) {
				return nil, g.fail(c, r, ErrOrphanPathCell)
			}
			onPath[id] = true
		}
	}

	dag := make([][]step, len(marked))
	for _, id := range members {
		m.ForEachNeighbor(id, func(road *core.Road, next *core.City) {
			to := next.ID()
			if onPath[to] && approxEqual(fromStart[id]+road.Length(), fromStart[to]) {
				dag[id] = append(dag[id], step{to: to, length: road.Length()})
			}
		})
	}

	if n := countPaths(dag, startID, endID, limit); n > limit {
		return nil, &core.ParseError{
			Format: FormatName,
			Err:    fmt.Errorf("%w: more than %d", ErrTooManyPaths, limit),
		}
	}

	return &core.Problem{
		Start:    startName,
		End:      endName,
		Expected: collectPaths(m, dag, startID, endID),
	}, nil
}

// firstCell returns the first cell holding ch in row-major order.
func (g *grid) firstCell(ch rune) (cellPos, bool) {
	for r, rw := range g.rows {
		for c, v := range rw.cells {
			if v == ch {
				return cellPos{c, r}, true
			}
		}
	}

	return cellPos{}, false
}

// distancesWithin returns shortest distances from src using only roads
// between member cities. Non-members and unreachable cities stay at +Inf.
// The member set is small, so selection is a linear scan.
func distancesWithin(m *core.Map, members []int, isMember []bool, src int) []float64 {
	dist := make([]float64, len(isMember))
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	done := make([]bool, len(isMember))
	dist[src] = 0

	for {
		u := -1
		for _, v := range members {
			if !done[v] && !math.IsInf(dist[v], 1) && (u < 0 || dist[v] < dist[u]) {
				u = v
			}
		}
		if u < 0 {
			return dist
		}
		done[u] = true
		m.ForEachNeighbor(u, func(road *core.Road, next *core.City) {
			v := next.ID()
			if isMember[v] && !done[v] && dist[u]+road.Length() < dist[v] {
				dist[v] = dist[u] + road.Length()
			}
		})
	}
}

// countPaths counts start-to-end paths in dag, saturating at limit+1.
func countPaths(dag [][]step, start, end, limit int) int {
	memo := make([]int, len(dag))
	for i := range memo {
		memo[i] = -1
	}
	var count func(u int) int
	count = func(u int) int {
		if u == end {
			return 1
		}
		if memo[u] >= 0 {
			return memo[u]
		}
		n := 0
		for _, s := range dag[u] {
			n += count(s.to)
			if n > limit {
				n = limit + 1
				break
			}
		}
		memo[u] = n

		return n
	}

	return count(start)
}

// collectPaths enumerates every start-to-end path of dag depth first, in
// road insertion order.
func collectPaths(m *core.Map, dag [][]step, start, end int) []core.Path {
	var (
		out   []core.Path
		trail = []int{start}
	)
	var walk func(u int, cost float64)
	walk = func(u int, cost float64) {
		if u == end {
			cities := make([]*core.City, len(trail))
			for i, id := range trail {
				cities[i], _ = m.CityAt(id)
			}
			out = append(out, core.Path{Cities: cities, Cost: cost})
			return
		}
		for _, s := range dag[u] {
			trail = append(trail, s.to)
			walk(s.to, cost+s.length)
			trail = trail[:len(trail)-1]
		}
	}
	walk(start, 0)

	return out
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) <= costTolerance*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}
