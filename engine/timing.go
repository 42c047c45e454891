package engine

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Default timing parameters, as in "--time-opts 3:100".
const (
	DefaultRepeat = 3
	DefaultNumber = 100
)

// ErrBadTiming indicates non-positive or malformed timing parameters.
var ErrBadTiming = errors.New("engine: repeat and number must be positive integers")

// Time calls unit number times per round for repeat rounds and returns the
// best average duration of one call. The first error from unit aborts the
// measurement.
func Time(unit func() error, repeat, number int) (time.Duration, error) {
	if repeat < 1 || number < 1 {
		return 0, fmt.Errorf("%w: %d:%d", ErrBadTiming, repeat, number)
	}

	var best time.Duration
	for r := 0; r < repeat; r++ {
		began := time.Now()
		for n := 0; n < number; n++ {
			if err := unit(); err != nil {
				return 0, err
			}
		}
		if elapsed := time.Since(began); r == 0 || elapsed < best {
			best = elapsed
		}
	}

	return best / time.Duration(number), nil
}

// ParseTimeOpts reads "<repeat>:<number>".
func ParseTimeOpts(s string) (repeat, number int, err error) {
	a, b, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadTiming, s)
	}
	if repeat, err = strconv.Atoi(a); err != nil || repeat < 1 {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadTiming, s)
	}
	if number, err = strconv.Atoi(b); err != nil || number < 1 {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadTiming, s)
	}

	return repeat, number, nil
}
