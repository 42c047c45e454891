package engine

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/bcmaps/bcm"
	"github.com/katalvlaran/bcmaps/ret"
)

// ErrUnknownFormat indicates a format hint or file extension that is
// neither bcm nor ret.
var ErrUnknownFormat = errors.New("engine: unknown format")

// Format identifies a map text format. The zero value is not a format.
type Format int

const (
	// BCM is the sectioned cities/roads format.
	BCM Format = iota + 1
	// RET is the reticle grid format.
	RET
)

// String returns "bcm", "ret" or "Format(n)".
func (f Format) String() string {
	switch f {
	case BCM:
		return bcm.FormatName
	case RET:
		return ret.FormatName
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (f Format) MarshalText() ([]byte, error) {
	if f != BCM && f != RET {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, int(f))
	}

	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, so formats can be read
// from configuration files.
func (f *Format) UnmarshalText(text []byte) error {
	v, err := ParseFormat(string(text))
	if err != nil {
		return err
	}
	*f = v

	return nil
}

// ParseFormat maps a hint such as "bcm" or "RET" to a Format.
func ParseFormat(hint string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(hint)) {
	case bcm.FormatName:
		return BCM, nil
	case ret.FormatName:
		return RET, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, hint)
	}
}

// FormatFromPath guesses the format from a file extension (.bcm or .ret,
// any case).
func FormatFromPath(name string) (Format, error) {
	ext := filepath.Ext(name)
	if ext == "" {
		return 0, fmt.Errorf("%w: %q has no extension", ErrUnknownFormat, name)
	}
	f, err := ParseFormat(ext[1:])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}

	return f, nil
}
