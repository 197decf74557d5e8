//go:build unit

package timerange_test

import (
	"testing"
	"time"

	"scheduling-core/internal/domain/timerange"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(h, m int) time.Time {
	return time.Date(2025, 6, 2, h, m, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name string
		a, b timerange.Interval
		want bool
	}{
		{name: "touching does not overlap", a: timerange.Interval{Start: at(0, 0), End: at(0, 30)}, b: timerange.Interval{Start: at(0, 30), End: at(1, 0)}, want: false},
		{name: "partial overlap", a: timerange.Interval{Start: at(10, 0), End: at(10, 30)}, b: timerange.Interval{Start: at(10, 15), End: at(10, 45)}, want: true},
		{name: "containment", a: timerange.Interval{Start: at(9, 0), End: at(17, 0)}, b: timerange.Interval{Start: at(12, 0), End: at(12, 30)}, want: true},
		{name: "identical", a: timerange.Interval{Start: at(9, 0), End: at(9, 30)}, b: timerange.Interval{Start: at(9, 0), End: at(9, 30)}, want: true},
		{name: "disjoint", a: timerange.Interval{Start: at(9, 0), End: at(9, 30)}, b: timerange.Interval{Start: at(11, 0), End: at(11, 30)}, want: false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, timerange.Overlaps(c.a, c.b))
			assert.Equal(t, timerange.Overlaps(c.a, c.b), timerange.Overlaps(c.b, c.a), "overlap must be symmetric")
		})
	}
}

func TestOverlapsSymmetryGrid(t *testing.T) {
	var intervals []timerange.Interval
	for s := 0; s < 6; s++ {
		for l := 1; l < 4; l++ {
			start := at(9, s*15)
			intervals = append(intervals, timerange.Of(start, time.Duration(l*15)*time.Minute))
		}
	}
	for _, a := range intervals {
		for _, b := range intervals {
			require.Equal(t, timerange.Overlaps(a, b), timerange.Overlaps(b, a), "a=%s b=%s", a, b)
		}
	}
}

func TestNew(t *testing.T) {
	_, err := timerange.New(at(10, 0), at(10, 0))
	require.ErrorIs(t, err, timerange.ErrEmptyInterval)

	_, err = timerange.New(at(10, 30), at(10, 0))
	require.ErrorIs(t, err, timerange.ErrEmptyInterval)

	iv, err := timerange.New(at(10, 0), at(10, 30))
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, iv.Duration())
	assert.True(t, iv.Contains(at(10, 0)))
	assert.False(t, iv.Contains(at(10, 30)))
}

func TestDayAndSteps(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	day := timerange.Day(time.Date(2025, 6, 2, 15, 4, 0, 0, loc), loc)
	assert.Equal(t, 24*time.Hour, day.Duration())
	assert.Equal(t, 0, day.Start.Hour())

	window := timerange.Interval{Start: at(9, 0), End: at(17, 0)}
	assert.Equal(t, 16, window.Steps(30*time.Minute))
	assert.Equal(t, 8, window.Steps(time.Hour))
	assert.Equal(t, 0, window.Steps(0))
}
