package check

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/katalvlaran/bcmaps/core"
)

// Epsilon is the relative tolerance for cost comparisons.
const Epsilon = 1e-9

// ErrNoExpectedPaths indicates that there is nothing to check against.
var ErrNoExpectedPaths = errors.New("check: no expected paths")

// Kind classifies an Outcome.
type Kind int

const (
	// Match means the cost is minimal and the route is listed.
	Match Kind = iota
	// CostMismatch means the cost differs from the cheapest expected cost.
	CostMismatch
	// VariantMismatch means the cost is right but the route is not listed.
	VariantMismatch
)

// String returns "match", "cost mismatch" or "variant mismatch".
func (k Kind) String() string {
	switch k {
	case Match:
		return "match"
	case CostMismatch:
		return "cost mismatch"
	case VariantMismatch:
		return "variant mismatch"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Outcome is the result of Check.
type Outcome struct {
	Kind     Kind
	Computed core.Path
	Want     float64 // cheapest expected cost
	Match    int     // index of the matching expected path, -1 if none
}

// OK reports whether the check passed.
func (o Outcome) OK() bool { return o.Kind == Match }

// Err returns nil for a passing outcome and a *Mismatch otherwise.
func (o Outcome) Err() error {
	if o.OK() {
		return nil
	}

	return &Mismatch{Kind: o.Kind, Got: o.Computed, Want: o.Want}
}

// Mismatch describes a failed check as an error value for reporting.
type Mismatch struct {
	Kind Kind
	Got  core.Path
	Want float64
}

func (m *Mismatch) Error() string {
	if m.Kind == CostMismatch {
		return fmt.Sprintf("check: cost mismatch: got %s, want cost %s", m.Got, formatCost(m.Want))
	}

	return fmt.Sprintf("check: variant mismatch: %s is not an expected path", m.Got)
}

// Check compares computed with the expected paths.
//
// Errors:
//   - ErrNoExpectedPaths: expected is empty.
func Check(computed core.Path, expected []core.Path) (Outcome, error) {
	if len(expected) == 0 {
		return Outcome{Computed: computed, Match: -1}, ErrNoExpectedPaths
	}

	want := expected[0].Cost
	for _, e := range expected[1:] {
		want = math.Min(want, e.Cost)
	}
	out := Outcome{Computed: computed, Want: want, Match: -1}

	if !SameCost(computed.Cost, want) {
		out.Kind = CostMismatch
		return out, nil
	}
	for i, e := range expected {
		if computed.SameCities(e) {
			out.Kind = Match
			out.Match = i
			return out, nil
		}
	}
	out.Kind = VariantMismatch

	return out, nil
}

// SameCost reports whether a and b are equal within Epsilon relative to
// their magnitude (absolute below 1).
func SameCost(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

func formatCost(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
