package routing_test

import (
	"io"
	"math"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/bcmaps/builder"
	"github.com/katalvlaran/bcmaps/core"
	"github.com/katalvlaran/bcmaps/ret"
	"github.com/katalvlaran/bcmaps/routing"
)

func mustMap(t testing.TB, cities map[string][2]float64, order []string, roads [][2]string) *core.Map {
	t.Helper()
	m := core.NewMap()
	for _, name := range order {
		xy := cities[name]
		_, err := m.AddCity(name, xy[0], xy[1])
		require.NoError(t, err)
	}
	for _, r := range roads {
		_, err := m.AddRoad(r[0], r[1])
		require.NoError(t, err)
	}

	return m
}

// AlgorithmSuite runs every case against every registered algorithm.
type AlgorithmSuite struct {
	suite.Suite
	trivial *core.Map
}

func (s *AlgorithmSuite) SetupTest() {
	s.trivial = mustMap(s.T(),
		map[string][2]float64{"A": {0, 0}, "B": {1, 1}, "C": {5, 5}},
		[]string{"A", "B", "C"},
		[][2]string{{"A", "B"}},
	)
}

func (s *AlgorithmSuite) each(fn func(name string, alg routing.Algorithm)) {
	for _, name := range routing.Names() {
		alg, err := routing.Lookup(name)
		s.Require().NoError(err)
		s.Run(name, func() { fn(name, alg) })
	}
}

func (s *AlgorithmSuite) TestTriangleScenario() {
	m := mustMap(s.T(),
		map[string][2]float64{"A": {0, 0}, "B": {3, 0}, "C": {3, 4}},
		[]string{"A", "B", "C"},
		[][2]string{{"A", "B"}, {"B", "C"}},
	)
	s.each(func(_ string, alg routing.Algorithm) {
		p, err := alg(m, "A", "C")
		s.Require().NoError(err)
		s.Equal([]string{"A", "B", "C"}, p.Names())
		s.Equal(7.0, p.Cost)
	})
}

func (s *AlgorithmSuite) TestSameStartAndEnd() {
	s.each(func(_ string, alg routing.Algorithm) {
		p, err := alg(s.trivial, "A", "A")
		s.Require().NoError(err)
		s.Equal([]string{"A"}, p.Names())
		s.Zero(p.Cost)

		// An isolated city still reaches itself.
		p, err = alg(s.trivial, "C", "C")
		s.Require().NoError(err)
		s.Equal([]string{"C"}, p.Names())
	})
}

func (s *AlgorithmSuite) TestUnreachable() {
	s.each(func(_ string, alg routing.Algorithm) {
		p, err := alg(s.trivial, "A", "C")
		s.ErrorIs(err, routing.ErrNoPath)
		s.True(p.Empty())

		_, err = alg(s.trivial, "C", "A")
		s.ErrorIs(err, routing.ErrNoPath)
	})
}

func (s *AlgorithmSuite) TestDiagonalRoad() {
	s.each(func(_ string, alg routing.Algorithm) {
		p, err := alg(s.trivial, "A", "B")
		s.Require().NoError(err)
		s.Equal([]string{"A", "B"}, p.Names())
		s.Equal(math.Sqrt2, p.Cost)
	})
}

func (s *AlgorithmSuite) TestInvalidInput() {
	s.each(func(_ string, alg routing.Algorithm) {
		_, err := alg(nil, "A", "B")
		s.ErrorIs(err, routing.ErrNilMap)

		_, err = alg(s.trivial, "Z", "A")
		s.ErrorIs(err, routing.ErrInvalidEndpoint)
		s.Contains(err.Error(), `start "Z"`)

		_, err = alg(s.trivial, "A", "Z")
		s.ErrorIs(err, routing.ErrInvalidEndpoint)
		s.Contains(err.Error(), `end "Z"`)
	})
}

func (s *AlgorithmSuite) TestReticlesMatchExpectedPaths() {
	for _, file := range []string{"testdata/staircase.ret", "testdata/detour.ret"} {
		res, err := ret.Parse(openFile(s.T(), file), ret.Options{Connectivity: ret.Conn8})
		s.Require().NoError(err)
		want, ok := res.Problem.MinExpectedCost()
		s.Require().True(ok)

		s.each(func(name string, alg routing.Algorithm) {
			p, err := alg(res.Map, res.Problem.Start, res.Problem.End)
			s.Require().NoError(err)
			s.InDelta(want, p.Cost, 1e-9)

			listed := false
			for _, e := range res.Problem.Expected {
				if p.SameCities(e) {
					listed = true
					break
				}
			}
			s.True(listed, "%s: %s is not an expected path of %s", name, p, file)
		})
	}
}

func (s *AlgorithmSuite) TestIdempotent() {
	m, err := builder.GridMap(12, 12, builder.WithDiagonals())
	s.Require().NoError(err)

	s.each(func(_ string, alg routing.Algorithm) {
		first, err := alg(m, "0:0", "11:7")
		s.Require().NoError(err)
		for i := 0; i < 5; i++ {
			again, err := alg(m, "0:0", "11:7")
			s.Require().NoError(err)
			s.True(first.SameCities(again), "run %d: %s != %s", i, again, first)
			s.Equal(first.Cost, again.Cost)
		}
	})
}

func TestAlgorithmSuite(t *testing.T) {
	suite.Run(t, new(AlgorithmSuite))
}

// TestTieBreaking pins the path each algorithm picks among the six equally
// short routes across a 3×3 orthogonal grid.
func TestTieBreaking(t *testing.T) {
	m, err := builder.GridMap(3, 3)
	require.NoError(t, err)

	tests := []struct {
		name string
		want []string
	}{
		{routing.NameDijkstraOriginal, []string{"0:0", "1:0", "2:0", "2:1", "2:2"}},
		{routing.NameDijkstraPQ, []string{"0:0", "1:0", "2:0", "2:1", "2:2"}},
		{routing.NameAStar, []string{"0:0", "1:0", "1:1", "2:1", "2:2"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := routing.Run(m, "0:0", "2:2", tc.name)
			require.NoError(t, err)
			assert.Equal(t, tc.want, p.Names())
			assert.Equal(t, 4.0, p.Cost)
		})
	}
}

// TestAgreesWithExhaustiveSearch compares every algorithm with a brute-force
// enumeration of simple paths on small random maps.
func TestAgreesWithExhaustiveSearch(t *testing.T) {
	for seed := int64(1); seed <= 40; seed++ {
		opts := []builder.Option{builder.WithSeed(seed), builder.WithExtent(10)}
		if seed%2 == 0 {
			opts = append(opts, builder.WithIntegerCoords())
		}
		m, err := builder.RandomMap(7, 0.35, opts...)
		require.NoError(t, err)

		cities := m.Cities()
		for _, a := range cities {
			for _, b := range cities {
				want := exhaustive(m, a, b)
				for _, name := range routing.Names() {
					p, err := routing.Run(m, a.Name(), b.Name(), name)
					if math.IsInf(want, 1) {
						require.ErrorIs(t, err, routing.ErrNoPath, "seed %d %s %s→%s", seed, name, a, b)
						continue
					}
					require.NoError(t, err, "seed %d %s %s→%s", seed, name, a, b)
					require.InDelta(t, want, p.Cost, 1e-9, "seed %d %s %s→%s", seed, name, a, b)

					rebuilt, err := core.NewPath(m, p.Names()...)
					require.NoError(t, err)
					require.InDelta(t, p.Cost, rebuilt.Cost, 1e-9)
					require.Equal(t, a.Name(), p.Start().Name())
					require.Equal(t, b.Name(), p.End().Name())
				}
			}
		}
	}
}

// exhaustive returns the cheapest simple-path cost from a to b, +Inf if none.
func exhaustive(m *core.Map, a, b *core.City) float64 {
	best := math.Inf(1)
	seen := make([]bool, m.CityCount())
	var walk func(u *core.City, cost float64)
	walk = func(u *core.City, cost float64) {
		if u == b {
			best = math.Min(best, cost)
			return
		}
		seen[u.ID()] = true
		var next []*core.Road
		m.ForEachNeighbor(u.ID(), func(r *core.Road, _ *core.City) { next = append(next, r) })
		for _, r := range next {
			if v := r.Other(u); !seen[v.ID()] {
				walk(v, cost+r.Length())
			}
		}
		seen[u.ID()] = false
	}
	walk(a, 0)

	return best
}

// TestConcurrentSearchesShareMap runs all algorithms in parallel over one map
// and checks the results against a sequential run.
func TestConcurrentSearchesShareMap(t *testing.T) {
	m, err := builder.GridMap(30, 30, builder.WithDiagonals())
	require.NoError(t, err)

	names := routing.Names()
	want := make(map[string]core.Path, len(names))
	for _, name := range names {
		p, err := routing.Run(m, "0:0", "29:17", name)
		require.NoError(t, err)
		want[name] = p
	}

	var wg sync.WaitGroup
	errs := make(chan error, 8*len(names))
	got := make(chan [2]any, 8*len(names))
	for i := 0; i < 8; i++ {
		for _, name := range names {
			wg.Add(1)
			go func(name string) {
				defer wg.Done()
				p, err := routing.Run(m, "0:0", "29:17", name)
				if err != nil {
					errs <- err
					return
				}
				got <- [2]any{name, p}
			}(name)
		}
	}
	wg.Wait()
	close(errs)
	close(got)

	for err := range errs {
		t.Error(err)
	}
	for r := range got {
		name, p := r[0].(string), r[1].(core.Path)
		assert.True(t, want[name].SameCities(p), "%s: %s != %s", name, p, want[name])
	}
}

func TestRegistry(t *testing.T) {
	assert.Equal(t, []string{"a-star", "dij-o", "dij-pq"}, routing.Names())

	_, err := routing.Lookup("bfs")
	assert.ErrorIs(t, err, routing.ErrUnknownAlgorithm)

	_, err = routing.Run(core.NewMap(), "A", "B", "bfs")
	assert.ErrorIs(t, err, routing.ErrUnknownAlgorithm)
}

func openFile(t *testing.T, name string) io.Reader {
	t.Helper()
	f, err := os.Open(name)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	return f
}
