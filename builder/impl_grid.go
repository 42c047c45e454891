// SPDX-License-Identifier: MIT
// Package: bcmaps/builder
//
// impl_grid.go: GridMap(cols, rows): a full reticle of cities.
//
// Contract:
//   • cols ≥ 1 and rows ≥ 1 (else ErrTooFewCities).
//   • City "x:y" sits at (x, y) for x∈[0..cols-1], y∈[0..rows-1]; the
//     naming is fixed and ignores cfg.idFn.
//   • Roads per cell: East, then South; with WithDiagonals also South-East
//     and South-West.
//
// Complexity:
//   • Time: O(cols*rows). Space: O(cols*rows) for the name table.

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/bcmaps/core"
)

const methodGrid = "GridMap"

// gridStep is one neighbour offset in (dx, dy).
type gridStep struct{ dx, dy int }

var (
	gridOrth = []gridStep{{1, 0}, {0, 1}}
	gridDiag = []gridStep{{1, 0}, {0, 1}, {1, 1}, {-1, 1}}
)

// GridName returns the city name GridMap uses for cell (x, y).
func GridName(x, y int) string {
	return strconv.Itoa(x) + ":" + strconv.Itoa(y)
}

// GridMap returns a cols×rows reticle with every cell a city.
func GridMap(cols, rows int, opts ...Option) (*core.Map, error) {
	if cols < minCities || rows < minCities {
		return nil, fmt.Errorf("%s: cols=%d, rows=%d (each must be ≥ %d): %w",
			methodGrid, cols, rows, minCities, ErrTooFewCities)
	}
	cfg := newConfig(opts...)

	m := core.NewMap(core.WithCapacity(cols * rows))
	names := make([]string, cols*rows)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			name := GridName(x, y)
			names[y*cols+x] = name
			if _, err := m.AddCity(name, float64(x), float64(y)); err != nil {
				return nil, fmt.Errorf("%s: AddCity(%s): %w", methodGrid, name, err)
			}
		}
	}

	steps := gridOrth
	if cfg.diagonals {
		steps = gridDiag
	}
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			for _, s := range steps {
				nx, ny := x+s.dx, y+s.dy
				if nx < 0 || nx >= cols || ny >= rows {
					continue
				}
				u, v := names[y*cols+x], names[ny*cols+nx]
				if _, err := m.AddRoad(u, v); err != nil {
					return nil, fmt.Errorf("%s: AddRoad(%s, %s): %w", methodGrid, u, v, err)
				}
			}
		}
	}

	return m, nil
}
