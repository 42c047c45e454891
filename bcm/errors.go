package bcm

import "errors"

// Sentinel errors for BCM parsing. They always reach the caller wrapped in a
// *core.ParseError.
var (
	// ErrNoSection indicates content before any [Cities] or [Roads] header.
	ErrNoSection = errors.New("bcm: content outside of a section")

	// ErrRoadsBeforeCities indicates a [Roads] section opened before any [Cities] section.
	ErrRoadsBeforeCities = errors.New("bcm: roads section before cities section")

	// ErrFieldCount indicates a line with the wrong number of comma-separated fields.
	ErrFieldCount = errors.New("bcm: wrong number of fields")

	// ErrBadNumber indicates a coordinate that is not a finite real number.
	ErrBadNumber = errors.New("bcm: malformed number")

	// ErrEmptyName indicates an empty city name field.
	ErrEmptyName = errors.New("bcm: empty city name")

	// ErrDuplicateCity indicates a city name declared twice.
	ErrDuplicateCity = errors.New("bcm: duplicate city")

	// ErrUnknownCity indicates a road referencing an undeclared city.
	ErrUnknownCity = errors.New("bcm: unknown city")

	// ErrSelfRoad indicates a road whose endpoints are the same city.
	ErrSelfRoad = errors.New("bcm: road from a city to itself")

	// ErrDuplicateRoad indicates the same road listed twice.
	ErrDuplicateRoad = errors.New("bcm: duplicate road")
)
