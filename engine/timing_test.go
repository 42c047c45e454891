package engine_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bcmaps/engine"
)

func TestTime_CallsUnitRepeatTimesNumber(t *testing.T) {
	calls := 0
	d, err := engine.Time(func() error { calls++; return nil }, 3, 7)
	require.NoError(t, err)
	assert.Equal(t, 21, calls)
	assert.GreaterOrEqual(t, int64(d), int64(0))
}

func TestTime_StopsOnError(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	_, err := engine.Time(func() error { calls++; return boom }, 3, 100)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}

func TestTime_RejectsBadParameters(t *testing.T) {
	_, err := engine.Time(func() error { return nil }, 0, 1)
	assert.ErrorIs(t, err, engine.ErrBadTiming)
	_, err = engine.Time(func() error { return nil }, 1, 0)
	assert.ErrorIs(t, err, engine.ErrBadTiming)
}

func TestParseTimeOpts(t *testing.T) {
	repeat, number, err := engine.ParseTimeOpts("3:100")
	require.NoError(t, err)
	assert.Equal(t, engine.DefaultRepeat, repeat)
	assert.Equal(t, engine.DefaultNumber, number)

	for _, bad := range []string{"", "3", "3:", "x:1", "0:5", "5:-1", "1:2:3"} {
		_, _, err := engine.ParseTimeOpts(bad)
		assert.ErrorIs(t, err, engine.ErrBadTiming, bad)
	}
}
