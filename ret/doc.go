// Package ret reads reticles: maps drawn as a character grid where every
// cell is a city unless marked as an obstacle.
//
// Format:
//
//	|         x$|
//	|    @@@@@@ |
//	|  @x o     |
//	|#@@        |
//
// Every non-blank line is trimmed and must be bounded by '|' on both sides.
// All rows must have the same width. Reserved characters:
//
//   - 'x' an obstacle, no city.
//   - 'o' the origin of the logical coordinate system (at most one).
//   - '#' the start city, '$' the end city (at most one each, both or neither).
//   - '@' a city on an expected shortest path.
//
// Any other character is a plain city cell.
//
// Coordinates:
//
// Cell (c, r) of the text, with r counted downward from the first row, sits at
// logical x = c - oc, y = or - r where (oc, or) is the origin cell, by default
// the bottom-left cell. The city is named "x:y" and placed at (x, y).
//
// Adjacency:
//
// Conn4 joins horizontal and vertical neighbours; Conn8 also joins diagonal
// neighbours whenever both cells are cities. Road lengths follow from the
// coordinates (1 or √2). The connectivity must be chosen by the caller.
//
// Expected paths:
//
// The '#', '$' and '@' cells form the marked set. Every minimum-cost path from
// '#' to '$' that stays inside the marked set is an expected path. An '@' on
// none of them is an error, so overlaid alternatives are allowed but stray
// marks are not. Without any '@' the grid only names the endpoints and the
// problem has no expected paths.
//
// Errors are *core.ParseError values with 1-based line and column, wrapping
// the sentinels declared in errors.go. An invalid connectivity is reported as
// ErrConnectivity without a position.
package ret
