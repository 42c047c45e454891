// Package engine is the entry point used by front ends such as cmd/bcm.
//
// It ties the parsers, the search algorithms and the checker together:
//
//   - LoadGraph(text, format):   parse a BCM or RET document into a map.
//   - LoadProblem(text, format): parse a RET document into a map and the
//     routing problem it embeds.
//   - RunSearch(m, start, end, algorithm): search by registered name.
//   - CheckResult(path, problem): compare a path with the expected paths.
//
// Runner processes batches of tasks (one per input file) with structured
// logging through zap and an LRU cache of parsed maps. A task that fails to
// parse or search produces a Report carrying the error and never stops the
// remaining tasks.
//
// Time measures a unit of work the way the command line --time flag reports
// it: the best per-call duration over several rounds.
package engine
