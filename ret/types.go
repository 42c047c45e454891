package ret

import (
	"strconv"

	"github.com/katalvlaran/bcmaps/core"
)

// FormatName tags ParseErrors produced by this package.
const FormatName = "ret"

// MaxLineBytes is the longest input line Parse accepts.
const MaxLineBytes = 4 << 20

// DefaultMaxExpected caps expected-path enumeration when Options.MaxExpected is 0.
const DefaultMaxExpected = 4096

// Reserved cell characters.
const (
	cellObstacle = 'x'
	cellOrigin   = 'o'
	cellStart    = '#'
	cellEnd      = '$'
	cellPath     = '@'
	bar          = '|'
)

// Connectivity selects which neighbours are joined by roads.
// The zero value is invalid so that callers must choose.
type Connectivity int

const (
	// Conn4 joins horizontal and vertical neighbours.
	Conn4 Connectivity = iota + 1
	// Conn8 also joins diagonal neighbours.
	Conn8
)

// String returns "conn4", "conn8" or "Connectivity(n)".
func (c Connectivity) String() string {
	switch c {
	case Conn4:
		return "conn4"
	case Conn8:
		return "conn8"
	default:
		return "Connectivity(" + strconv.Itoa(int(c)) + ")"
	}
}

// Valid reports whether c is Conn4 or Conn8.
func (c Connectivity) Valid() bool { return c == Conn4 || c == Conn8 }

// Options configures Parse.
type Options struct {
	// Connectivity is required.
	Connectivity Connectivity
	// MaxExpected caps the number of expected paths; 0 means DefaultMaxExpected.
	MaxExpected int
}

func (o Options) maxExpected() int {
	if o.MaxExpected <= 0 {
		return DefaultMaxExpected
	}

	return o.MaxExpected
}

// Result is a parsed reticle.
type Result struct {
	Map *core.Map
	// Problem is nil when the grid has no '#'/'$' markers.
	Problem *core.Problem
	// Origin is the (column, row) of the origin cell in the text grid.
	Origin [2]int
	Width  int
	Height int
}

// offset is a (dc, dr) step in text grid coordinates; dr grows downward.
type offset struct{ dc, dr int }

// Road emission order per cell. Each undirected neighbour pair is produced
// exactly once because every offset points forward in row-major order.
var (
	offsets4 = []offset{{1, 0}, {0, 1}}
	offsets8 = []offset{{1, 0}, {0, 1}, {1, 1}, {-1, 1}}
)

// CityName returns the name a reticle gives to the city at logical (x, y).
func CityName(x, y int) string {
	return strconv.Itoa(x) + ":" + strconv.Itoa(y)
}
