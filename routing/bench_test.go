package routing_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/bcmaps/builder"
	"github.com/katalvlaran/bcmaps/routing"
)

// BenchmarkAlgorithms compares the three algorithms corner to corner on
// diagonal grids of growing size.
func BenchmarkAlgorithms(b *testing.B) {
	for _, n := range []int{16, 64, 128} {
		m, err := builder.GridMap(n, n, builder.WithDiagonals())
		if err != nil {
			b.Fatal(err)
		}
		end := builder.GridName(n-1, n/2)
		for _, name := range routing.Names() {
			alg, _ := routing.Lookup(name)
			b.Run(fmt.Sprintf("%s/n=%d", name, n), func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					if _, err := alg(m, "0:0", end); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

// BenchmarkRandomMap runs on sparse random maps where A* gains less.
func BenchmarkRandomMap(b *testing.B) {
	m, err := builder.RandomMap(400, 0.02, builder.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}
	for _, name := range routing.Names() {
		alg, _ := routing.Lookup(name)
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = alg(m, "C0", "C399")
			}
		})
	}
}
