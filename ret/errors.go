package ret

import "errors"

// Sentinel errors for RET parsing.
var (
	// ErrMissingBar indicates a row not bounded by '|' on both sides.
	ErrMissingBar = errors.New("ret: row must start and end with '|'")

	// ErrStrayBar indicates a '|' inside a row.
	ErrStrayBar = errors.New("ret: '|' inside a row")

	// ErrRaggedRow indicates a row whose width differs from the first row.
	ErrRaggedRow = errors.New("ret: rows must have the same width")

	// ErrEmptyGrid indicates no rows, or rows of zero width.
	ErrEmptyGrid = errors.New("ret: grid must have at least one row and one column")

	// ErrDuplicateMarker indicates a second 'o', '#' or '$'.
	ErrDuplicateMarker = errors.New("ret: duplicate marker")

	// ErrUnpairedMarker indicates '#' without '$' or '$' without '#'.
	ErrUnpairedMarker = errors.New("ret: start and end markers must come together")

	// ErrOrphanPathCell indicates a marked cell on no shortest start-to-end
	// path through marked cells.
	ErrOrphanPathCell = errors.New("ret: path cell not on any shortest start-to-end path")

	// ErrTooManyPaths indicates more expected paths than Options.MaxExpected.
	ErrTooManyPaths = errors.New("ret: too many expected paths")

	// ErrConnectivity indicates a missing or unknown Connectivity.
	ErrConnectivity = errors.New("ret: connectivity must be Conn4 or Conn8")
)
