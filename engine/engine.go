package engine

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/bcmaps/bcm"
	"github.com/katalvlaran/bcmaps/check"
	"github.com/katalvlaran/bcmaps/core"
	"github.com/katalvlaran/bcmaps/ret"
	"github.com/katalvlaran/bcmaps/routing"
)

// ErrNoProblem indicates that the input carries no routing problem: a BCM
// document, or a reticle without '#' and '$'.
var ErrNoProblem = errors.New("engine: no routing problem in input")

// LoadGraph parses text in the given format and returns the map.
func LoadGraph(text string, f Format, opts ...Option) (*core.Map, error) {
	m, _, err := load(text, f, newConfig(opts...))

	return m, err
}

// LoadProblem parses text and returns the map with its embedded problem.
//
// Errors:
//   - ErrNoProblem: BCM input, or a reticle without start and end markers.
//   - parse errors as returned by the bcm and ret packages.
func LoadProblem(text string, f Format, opts ...Option) (*core.Map, *core.Problem, error) {
	m, p, err := load(text, f, newConfig(opts...))
	if err != nil {
		return nil, nil, err
	}
	if p == nil {
		return nil, nil, fmt.Errorf("%w (%s)", ErrNoProblem, f)
	}

	return m, p, nil
}

// RunSearch finds a shortest path from start to end with the algorithm
// registered under name ("a-star", "dij-o" or "dij-pq").
func RunSearch(m *core.Map, start, end, algorithm string) (core.Path, error) {
	return routing.Run(m, start, end, algorithm)
}

// CheckResult compares path with the expected paths of problem.
func CheckResult(path core.Path, problem *core.Problem) (check.Outcome, error) {
	if problem == nil {
		return check.Outcome{Computed: path, Match: -1}, ErrNoProblem
	}

	return check.Check(path, problem.Expected)
}

// load dispatches on format. The problem is nil for BCM input.
func load(text string, f Format, cfg config) (*core.Map, *core.Problem, error) {
	switch f {
	case BCM:
		m, err := bcm.ParseString(text)
		if err != nil {
			return nil, nil, err
		}
		return m, nil, nil
	case RET:
		res, err := ret.ParseString(text, cfg.retOptions())
		if err != nil {
			return nil, nil, err
		}
		return res.Map, res.Problem, nil
	default:
		return nil, nil, fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
}
