// Package bcm reads and writes maps in the BCM text format.
//
// Format:
//
//	# Comment
//
//	[Cities]
//	<city name>, <x (km)>, <y (km)>
//	...
//
//	[Roads]
//	<city name>, <city name>
//	...
//
// Comments and blank lines may appear anywhere. Section headers are
// case-sensitive and must match exactly. Fields are comma separated and
// trimmed. Roads may only name cities declared on an earlier line.
//
// A BCM file carries a map only; start and end cities are supplied by the
// caller.
//
// Errors:
//
// Every parse failure is a *core.ParseError carrying the 1-based line (and
// column for field-level problems) and wrapping one of:
//
//   - ErrNoSection:         content before any section header.
//   - ErrRoadsBeforeCities: a [Roads] section before any [Cities] section.
//   - ErrFieldCount:        wrong number of comma-separated fields.
//   - ErrBadNumber:         a coordinate is not a finite real number.
//   - ErrEmptyName:         an empty city name.
//   - ErrDuplicateCity:     a city name declared twice.
//   - ErrUnknownCity:       a road names an undeclared city.
//   - ErrSelfRoad:          a road from a city to itself.
//   - ErrDuplicateRoad:     the same road listed twice, in either orientation.
//
// Parsing stops at the first error; no partial map is returned.
//
// Write emits a map back in the same format so that Parse(Write(m)) yields an
// equivalent map (same cities, same coordinates, same roads).
package bcm
