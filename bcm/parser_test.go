package bcm_test

import (
	"bufio"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bcmaps/bcm"
	"github.com/katalvlaran/bcmaps/core"
)

const sample = `
    # A sample map

    [Cities]
    A, 0.5, -1.2
    B, -3.2, 0.8
    C, 5, 5

    [Roads]
    A, B
    # comments inside sections are fine
    B, C
`

func TestParse_Sample(t *testing.T) {
	m, err := bcm.ParseString(sample)
	require.NoError(t, err)

	assert.Equal(t, 3, m.CityCount())
	assert.Equal(t, 2, m.RoadCount())

	b, ok := m.City("B")
	require.True(t, ok)
	assert.Equal(t, -3.2, b.X())
	assert.Equal(t, 0.8, b.Y())
	assert.Equal(t, 2, m.Degree(b.ID()))
	assert.True(t, m.HasRoad("C", "B"))
	assert.False(t, m.HasRoad("A", "C"))
}

func TestParse_File(t *testing.T) {
	f, err := os.Open(filepath.Join("testdata", "sample.bcm"))
	require.NoError(t, err)
	defer f.Close()

	m, err := bcm.Parse(f, core.WithName("sample.bcm"))
	require.NoError(t, err)
	assert.Equal(t, "sample.bcm", m.Name())
	assert.Equal(t, 6, m.CityCount())
	assert.Equal(t, 7, m.RoadCount())
}

func TestParse_EmptyInput(t *testing.T) {
	m, err := bcm.ParseString("\n# nothing here\n\n")
	require.NoError(t, err)
	assert.Zero(t, m.CityCount())
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		err    error
		line   int
		column int
	}{
		{
			name:  "RoadsBeforeCities",
			input: "# header\n[Roads]\nA, B\n",
			err:   bcm.ErrRoadsBeforeCities,
			line:  2,
		},
		{
			name:  "RoadLineBeforeCities",
			input: "A, B\n[Cities]\n",
			err:   bcm.ErrRoadsBeforeCities,
			line:  1,
		},
		{
			name:  "ContentBeforeSection",
			input: "A, 1, 2\n[Cities]\n",
			err:   bcm.ErrNoSection,
			line:  1,
		},
		{
			name:  "LowercaseHeaderIsNotAHeader",
			input: "[cities]\nA, 1, 2\n",
			err:   bcm.ErrNoSection,
			line:  1,
		},
		{
			name:  "CityFieldCount",
			input: "[Cities]\nA, 1\n",
			err:   bcm.ErrFieldCount,
			line:  2,
		},
		{
			name:  "RoadFieldCount",
			input: "[Cities]\nA, 1, 2\n[Roads]\nA\n",
			err:   bcm.ErrFieldCount,
			line:  4,
		},
		{
			name:   "BadNumber",
			input:  "[Cities]\nA, 1, two\n",
			err:    bcm.ErrBadNumber,
			line:   2,
			column: 7,
		},
		{
			name:   "NaNIsRejected",
			input:  "[Cities]\nA, NaN, 0\n",
			err:    bcm.ErrBadNumber,
			line:   2,
			column: 4,
		},
		{
			name:   "EmptyName",
			input:  "[Cities]\n  , 1, 2\n",
			err:    bcm.ErrEmptyName,
			line:   2,
			column: 3,
		},
		{
			name:   "DuplicateCity",
			input:  "[Cities]\nA, 1, 2\n\nA, 3, 4\n",
			err:    bcm.ErrDuplicateCity,
			line:   4,
			column: 1,
		},
		{
			name:   "UnknownCity",
			input:  "[Cities]\nA, 1, 2\n[Roads]\nA, Z\n",
			err:    bcm.ErrUnknownCity,
			line:   4,
			column: 4,
		},
		{
			name:   "SelfRoad",
			input:  "[Cities]\nA, 1, 2\n[Roads]\nA, A\n",
			err:    bcm.ErrSelfRoad,
			line:   4,
			column: 4,
		},
		{
			name:   "DuplicateRoad",
			input:  "[Cities]\nA, 1, 2\nB, 2, 2\n[Roads]\nA, B\nB, A\n",
			err:    bcm.ErrDuplicateRoad,
			line:   6,
			column: 1,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := bcm.ParseString(tc.input)
			require.Error(t, err)
			assert.Nil(t, m)
			assert.ErrorIs(t, err, tc.err)

			var pe *core.ParseError
			require.True(t, errors.As(err, &pe), "want *core.ParseError, got %T", err)
			assert.Equal(t, "bcm", pe.Format)
			assert.Equal(t, tc.line, pe.Line)
			assert.Equal(t, tc.column, pe.Column)
		})
	}
}

// TestParse_DuplicateWrapsCoreSentinel keeps the core cause reachable.
func TestParse_DuplicateWrapsCoreSentinel(t *testing.T) {
	_, err := bcm.ParseString("[Cities]\nA, 1, 2\nA, 1, 2\n")
	assert.ErrorIs(t, err, bcm.ErrDuplicateCity)
	assert.ErrorIs(t, err, core.ErrCityExists)
}

func TestParse_LongLines(t *testing.T) {
	long := "# " + strings.Repeat("-", 100_000) + "\n[Cities]\nA, 0, 0\n"
	m, err := bcm.ParseString(long)
	require.NoError(t, err)
	assert.Equal(t, 1, m.CityCount())

	tooLong := "[Cities]\n# " + strings.Repeat("-", bcm.MaxLineBytes) + "\n"
	_, err = bcm.ParseString(tooLong)
	var pe *core.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 2, pe.Line)
	assert.ErrorIs(t, err, bufio.ErrTooLong)
}

func TestParse_ReadErrorCarriesLine(t *testing.T) {
	boom := errors.New("disk gone")
	r := io.MultiReader(strings.NewReader("[Cities]\nA, 0, 0\n"), iotest.ErrReader(boom))

	_, err := bcm.Parse(r)
	var pe *core.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 3, pe.Line)
	assert.ErrorIs(t, err, boom)
}
