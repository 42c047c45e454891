// Command bcm computes and checks shortest paths on BCM and RET maps.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/bcmaps/core"
	"github.com/katalvlaran/bcmaps/engine"
	"github.com/katalvlaran/bcmaps/routing"
)

const version = "0.3.0"

const usage = `BiiCodeMaps: map routing problems for the masses.

Usage:
    bcm path [options] <from> <to> [- | <file>...]
    bcm solve [options] [- | <file>...]
    bcm check [options] [- | <file>...]
    bcm help
    bcm version

Options:
    -a, --algorithm <alg>   a-star, dij-o, dij-pq or all [default: a-star]
    -f, --format <format>   bcm or ret; guessed from the file extension,
                            required when reading stdin
    -t, --time              report the time per search
    --time-opts <r:n>       best of r runs of n searches [default: 3:100]
    --diagonal              join diagonal reticle neighbours [default: true]
    --config <file>         YAML file with defaults for the options above
    --log-level <level>     debug, info, warn or error [default: warn]

Commands:
    path   shortest path between two named cities
    solve  shortest path between the start and end marked in a reticle
    check  solve and compare with the paths marked in a reticle
`

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

var errUsage = errors.New("usage")

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is main without the process: it returns the exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return exitUsage
	}
	switch args[0] {
	case "help", "-h", "--help":
		fmt.Fprint(stdout, usage)
		return exitOK
	case "version", "-v", "--version":
		fmt.Fprintln(stdout, "BiiCodeMaps", version)
		return exitOK
	}

	inv, err := parseArgs(args, stderr)
	if err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintln(stderr, "bcm:", err)
		}
		return exitUsage
	}

	log, err := inv.cfg.NewLogger()
	if err != nil {
		fmt.Fprintln(stderr, "bcm:", err)
		return exitUsage
	}
	defer func() { _ = log.Sync() }()

	opts, err := inv.cfg.runnerOptions(log)
	if err != nil {
		fmt.Fprintln(stderr, "bcm:", err)
		return exitUsage
	}
	runner, err := engine.NewRunner(opts...)
	if err != nil {
		fmt.Fprintln(stderr, "bcm:", err)
		return exitFailure
	}

	code := exitOK
	ctx := context.Background()
	for _, src := range inv.sources {
		task, err := inv.task(src, stdin)
		if src.name != "-" {
			fmt.Fprintf(stdout, "-- %s\n", src.name)
		}
		if err != nil {
			fmt.Fprintf(stderr, "bcm: %s: %v\n", src.name, err)
			code = exitFailure
			continue
		}
		for _, rep := range runner.RunTask(ctx, task) {
			if !printReport(stdout, stderr, rep, inv.cfg) {
				code = exitFailure
			}
		}
	}

	return code
}

// source is one input: a file name or "-" for stdin.
type source struct{ name string }

// invocation is a parsed command line.
type invocation struct {
	cmd        engine.Command
	cfg        Config
	start, end string
	sources    []source
}

func parseArgs(args []string, stderr io.Writer) (*invocation, error) {
	cmd, err := engine.ParseCommand(args[0])
	if err != nil {
		fmt.Fprint(stderr, usage)
		return nil, errUsage
	}

	cfg := DefaultConfig()
	var (
		algorithm, format, timeOpts, logLevel, configPath string
		timeIt, diagonal                                  bool
	)
	fs := flag.NewFlagSet("bcm "+cmd.String(), flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, usage) }
	fs.StringVar(&algorithm, "a", cfg.Algorithm, "")
	fs.StringVar(&algorithm, "algorithm", cfg.Algorithm, "")
	fs.StringVar(&format, "f", "", "")
	fs.StringVar(&format, "format", "", "")
	fs.BoolVar(&timeIt, "t", false, "")
	fs.BoolVar(&timeIt, "time", false, "")
	fs.StringVar(&timeOpts, "time-opts", cfg.TimeOpts, "")
	fs.BoolVar(&diagonal, "diagonal", cfg.Diagonal, "")
	fs.StringVar(&configPath, "config", "", "")
	fs.StringVar(&logLevel, "log-level", cfg.LogLevel, "")
	if err = fs.Parse(args[1:]); err != nil {
		return nil, errUsage
	}

	if configPath != "" {
		if err = ReadConfig(configPath, &cfg); err != nil {
			return nil, err
		}
	}
	// Flags given on the command line win over the file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "a", "algorithm":
			cfg.Algorithm = algorithm
		case "t", "time":
			cfg.Time = timeIt
		case "time-opts":
			cfg.TimeOpts = timeOpts
		case "diagonal":
			cfg.Diagonal = diagonal
		case "log-level":
			cfg.LogLevel = logLevel
		}
	})
	if format != "" {
		if cfg.Format, err = engine.ParseFormat(format); err != nil {
			return nil, err
		}
	}
	if cfg.Algorithm != engine.AllAlgorithms {
		if _, err = routing.Lookup(cfg.Algorithm); err != nil {
			return nil, err
		}
	}
	if _, _, err = engine.ParseTimeOpts(cfg.TimeOpts); err != nil {
		return nil, err
	}

	inv := &invocation{cmd: cmd, cfg: cfg}
	rest := fs.Args()
	if cmd == engine.CmdPath {
		if len(rest) < 2 {
			return nil, fmt.Errorf("path needs <from> and <to>")
		}
		inv.start, inv.end, rest = rest[0], rest[1], rest[2:]
	}
	if len(rest) == 0 {
		rest = []string{"-"}
	}
	for _, name := range rest {
		if name == "-" && cfg.Format == 0 {
			return nil, fmt.Errorf("a format (-f) is required when reading stdin")
		}
		inv.sources = append(inv.sources, source{name: name})
	}

	return inv, nil
}

// task reads one source and describes it for the runner.
func (inv *invocation) task(src source, stdin io.Reader) (engine.Task, error) {
	var (
		data []byte
		err  error
	)
	if src.name == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(src.name)
	}
	if err != nil {
		return engine.Task{}, err
	}

	format := inv.cfg.Format
	if format == 0 {
		if format, err = engine.FormatFromPath(src.name); err != nil {
			return engine.Task{}, err
		}
	}

	return engine.Task{
		Name:       src.name,
		Source:     string(data),
		Format:     format,
		Command:    inv.cmd,
		Start:      inv.start,
		End:        inv.end,
		Algorithms: []string{inv.cfg.Algorithm},
	}, nil
}

// printReport writes one report in the classic layout and reports whether it
// succeeded.
func printReport(stdout, stderr io.Writer, rep engine.Report, cfg Config) bool {
	if rep.Algorithm != "" {
		fmt.Fprintf(stdout, "-- %s\n", rep.Algorithm)
	}
	if rep.Err != nil {
		fmt.Fprintf(stderr, "bcm: %s: %v\n", rep.Task, rep.Err)
		return false
	}

	ok := true
	if rep.Outcome == nil {
		fmt.Fprintf(stdout, "Result path : [%s]\n", strings.Join(rep.Path.Names(), ", "))
		fmt.Fprintf(stdout, "Total cost  : %s\n", strconv.FormatFloat(rep.Path.Cost, 'g', -1, 64))
	} else if rep.Outcome.OK() {
		fmt.Fprintln(stdout, "OK.")
	} else {
		ok = false
		fmt.Fprintln(stdout, "FAILURE.")
		fmt.Fprintf(stdout, "Algorithm result : [%s] cost %s\n",
			strings.Join(rep.Path.Names(), ", "), strconv.FormatFloat(rep.Path.Cost, 'g', -1, 64))
		fmt.Fprintf(stdout, "Expected cost    : %s\n", strconv.FormatFloat(rep.Outcome.Want, 'g', -1, 64))
		fmt.Fprintf(stdout, "Reason           : %s\n", rep.Outcome.Kind)
		printExpected(stdout, rep.Expected)
	}

	if cfg.Time {
		repeat, number, _ := engine.ParseTimeOpts(cfg.TimeOpts)
		fmt.Fprintf(stdout, "%0.2f ms per loop in best of %d runs of %d loops\n",
			float64(rep.Elapsed)/float64(time.Millisecond), repeat, number)
	}

	return ok
}

// maxShownExpected bounds the expected paths listed after a FAILURE.
const maxShownExpected = 3

func printExpected(w io.Writer, expected []core.Path) {
	label := "Expected result  :"
	for i, p := range expected {
		if i == maxShownExpected {
			fmt.Fprintf(w, "%*s (%d more)\n", len(label), "", len(expected)-i)
			return
		}
		fmt.Fprintf(w, "%s [%s] cost %s\n", label,
			strings.Join(p.Names(), ", "), strconv.FormatFloat(p.Cost, 'g', -1, 64))
		label = strings.Repeat(" ", len(label))
	}
}
