package engine

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/katalvlaran/bcmaps/check"
	"github.com/katalvlaran/bcmaps/core"
	"github.com/katalvlaran/bcmaps/ret"
	"github.com/katalvlaran/bcmaps/routing"
)

// AllAlgorithms expands to every registered algorithm in a Task.
const AllAlgorithms = "all"

// DefaultCacheSize is the number of parsed maps a Runner keeps.
const DefaultCacheSize = 64

// ErrUnknownCommand indicates a Task with an unset or unknown Command.
var ErrUnknownCommand = errors.New("engine: unknown command")

// Command selects what a Task does with its map.
type Command int

const (
	// CmdPath searches between the Task's Start and End cities.
	CmdPath Command = iota + 1
	// CmdSolve searches between the endpoints embedded in the input.
	CmdSolve
	// CmdCheck solves and checks the result against the expected paths.
	CmdCheck
)

var commandNames = map[Command]string{CmdPath: "path", CmdSolve: "solve", CmdCheck: "check"}

// String returns "path", "solve", "check" or "Command(n)".
func (c Command) String() string {
	if s, ok := commandNames[c]; ok {
		return s
	}

	return fmt.Sprintf("Command(%d)", int(c))
}

// ParseCommand maps "path", "solve" or "check" to a Command.
func ParseCommand(s string) (Command, error) {
	for c, name := range commandNames {
		if strings.EqualFold(s, name) {
			return c, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownCommand, s)
}

// Task is one input processed by a Runner.
type Task struct {
	Name       string // label for reports and logs, usually the file name
	Source     string // map text
	Format     Format
	Command    Command
	Start, End string   // used by CmdPath only
	Algorithms []string // registered names or AllAlgorithms; empty means a-star
}

// Report is the result of running one algorithm on one Task. Err is set when
// the task could not be loaded or the search failed; in that case Algorithm
// may be empty. A failed check is not an error: see Outcome.
type Report struct {
	Task      string
	Algorithm string
	Path      core.Path
	Outcome   *check.Outcome // CmdCheck only
	Expected  []core.Path    // CmdCheck only, in problem order
	Elapsed   time.Duration  // per-call time when timing is enabled
	Err       error
}

// RunnerOption configures a Runner. Constructors panic on meaningless
// arguments.
type RunnerOption func(*Runner)

// WithLogger sets the logger. Panics on nil.
func WithLogger(l *zap.Logger) RunnerOption {
	if l == nil {
		panic("engine: WithLogger(nil)")
	}
	return func(r *Runner) {
		r.log = l
	}
}

// WithCacheSize sets how many parsed maps are kept. Panics unless n > 0.
func WithCacheSize(n int) RunnerOption {
	if n <= 0 {
		panic("engine: WithCacheSize(n <= 0)")
	}
	return func(r *Runner) {
		r.cacheSize = n
	}
}

// WithLoadOptions sets the options used to parse every task.
func WithLoadOptions(opts ...Option) RunnerOption {
	return func(r *Runner) {
		r.load = newConfig(opts...)
	}
}

// WithTiming enables Time measurements for every successful search.
// Panics unless repeat and number are positive.
func WithTiming(repeat, number int) RunnerOption {
	if repeat < 1 || number < 1 {
		panic("engine: WithTiming(repeat or number < 1)")
	}
	return func(r *Runner) {
		r.repeat, r.number = repeat, number
	}
}

// cacheKey identifies a parse result: the same text parsed with the same
// options yields the same map.
type cacheKey struct {
	format      Format
	conn        ret.Connectivity
	maxExpected int
	sum         [sha256.Size]byte
}

type parsed struct {
	m       *core.Map
	problem *core.Problem
}

// Runner executes batches of tasks sequentially. Parsed maps are cached and
// shared between tasks; searches never mutate them.
type Runner struct {
	log            *zap.Logger
	cacheSize      int
	cache          *lru.Cache[cacheKey, parsed]
	load           config
	repeat, number int
}

// NewRunner builds a Runner. Without options it logs nowhere, caches
// DefaultCacheSize maps and does not time searches.
func NewRunner(opts ...RunnerOption) (*Runner, error) {
	r := &Runner{log: zap.NewNop(), cacheSize: DefaultCacheSize}
	for _, opt := range opts {
		opt(r)
	}

	cache, err := lru.New[cacheKey, parsed](r.cacheSize)
	if err != nil {
		return nil, fmt.Errorf("engine: map cache: %w", err)
	}
	r.cache = cache

	return r, nil
}

// Run processes tasks in order and returns their reports in the same order.
// Once ctx is done, the remaining tasks report ctx.Err().
func (r *Runner) Run(ctx context.Context, tasks []Task) []Report {
	var out []Report
	for _, t := range tasks {
		out = append(out, r.RunTask(ctx, t)...)
	}

	return out
}

// RunTask processes a single task and returns one report per algorithm, or a
// single report when the task fails before any search.
func (r *Runner) RunTask(ctx context.Context, t Task) []Report {
	log := r.log.With(zap.String("task", t.Name), zap.Stringer("command", t.Command))
	fail := func(err error) []Report {
		log.Warn("task failed", zap.Error(err))
		return []Report{{Task: t.Name, Err: err}}
	}

	if err := ctx.Err(); err != nil {
		return fail(err)
	}
	log.Info("task started", zap.Stringer("format", t.Format), zap.Int("bytes", len(t.Source)))

	algs, err := expandAlgorithms(t.Algorithms)
	if err != nil {
		return fail(err)
	}
	p, err := r.parse(log, t)
	if err != nil {
		return fail(err)
	}
	start, end, err := endpoints(t, p.problem)
	if err != nil {
		return fail(err)
	}

	reports := make([]Report, 0, len(algs))
	for _, alg := range algs {
		if err := ctx.Err(); err != nil {
			reports = append(reports, Report{Task: t.Name, Algorithm: alg, Err: err})
			continue
		}
		rep := r.search(t, p, alg, start, end)
		fields := []zap.Field{zap.String("algorithm", alg)}
		if rep.Err != nil {
			log.Warn("search failed", append(fields, zap.Error(rep.Err))...)
		} else {
			fields = append(fields, zap.Int("cities", rep.Path.Len()), zap.Float64("cost", rep.Path.Cost))
			if rep.Outcome != nil {
				fields = append(fields, zap.Stringer("check", rep.Outcome.Kind))
			}
			if rep.Elapsed > 0 {
				fields = append(fields, zap.Duration("per_call", rep.Elapsed))
			}
			log.Info("search done", fields...)
		}
		reports = append(reports, rep)
	}

	return reports
}

// search runs one algorithm, checks and times it as the task requires.
func (r *Runner) search(t Task, p parsed, alg, start, end string) Report {
	rep := Report{Task: t.Name, Algorithm: alg}
	rep.Path, rep.Err = RunSearch(p.m, start, end, alg)
	if rep.Err != nil {
		return rep
	}

	if t.Command == CmdCheck {
		out, err := CheckResult(rep.Path, p.problem)
		if err != nil {
			rep.Err = err
			return rep
		}
		rep.Outcome = &out
		rep.Expected = p.problem.Expected
	}

	if r.repeat > 0 {
		rep.Elapsed, rep.Err = Time(func() error {
			_, err := RunSearch(p.m, start, end, alg)
			return err
		}, r.repeat, r.number)
	}

	return rep
}

// parse returns the cached parse of t.Source or parses and caches it.
func (r *Runner) parse(log *zap.Logger, t Task) (parsed, error) {
	key := cacheKey{
		format:      t.Format,
		conn:        r.load.conn,
		maxExpected: r.load.maxExpected,
		sum:         sha256.Sum256([]byte(t.Source)),
	}
	if p, ok := r.cache.Get(key); ok {
		log.Debug("map cache hit")
		return p, nil
	}

	m, problem, err := load(t.Source, t.Format, r.load)
	if err != nil {
		return parsed{}, err
	}
	p := parsed{m: m, problem: problem}
	r.cache.Add(key, p)
	log.Debug("map parsed", zap.Int("cities", m.CityCount()), zap.Int("roads", m.RoadCount()))

	return p, nil
}

// expandAlgorithms resolves AllAlgorithms and validates names.
func expandAlgorithms(names []string) ([]string, error) {
	if len(names) == 0 {
		return []string{routing.NameAStar}, nil
	}

	var out []string
	for _, name := range names {
		if name == AllAlgorithms {
			out = append(out, routing.Names()...)
			continue
		}
		if _, err := routing.Lookup(name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}

	return out, nil
}

// endpoints picks the search endpoints for the task's command.
func endpoints(t Task, problem *core.Problem) (start, end string, err error) {
	switch t.Command {
	case CmdPath:
		return t.Start, t.End, nil
	case CmdSolve, CmdCheck:
		if problem == nil {
			return "", "", fmt.Errorf("%w (%s, %s)", ErrNoProblem, t.Format, t.Command)
		}
		return problem.Start, problem.End, nil
	default:
		return "", "", fmt.Errorf("%w: %v", ErrUnknownCommand, t.Command)
	}
}

// CacheLen returns the number of cached parse results.
func (r *Runner) CacheLen() int { return r.cache.Len() }
