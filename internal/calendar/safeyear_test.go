package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// janFirstWeekday computes the weekday of January 1st through the package's
// own composition and decomposition.
func janFirstWeekday(t *testing.T, year int64) int {
	t.Helper()
	tm, err := UTC(Timegm(Tm{Year: int32(year - YearBase), Mday: 1}))
	require.NoError(t, err)
	return tm.Wday
}

func TestAnchorTable(t *testing.T) {
	anchors := Anchors()
	require.Len(t, anchors, 28)

	seen := make(map[int]bool)
	for i, a := range anchors {
		assert.Equal(t, i, a.Year%28, "anchor %d is not at its cycle position", a.Year)
		assert.Equal(t, janFirstWeekday(t, int64(a.Year)), a.JanFirstWday, "weekday of Jan 1 %d", a.Year)
		assert.GreaterOrEqual(t, a.Year, 2010)
		assert.LessOrEqual(t, a.Year, 2037)
		seen[a.Year] = true
	}
	assert.Len(t, seen, 28, "anchor years must be distinct")
}

func TestSafeYear_KnownValues(t *testing.T) {
	tests := []struct {
		year int64
		want int
	}{
		{2038, 2010},
		{2040, 2012},
		{2100, 2027},
		{2101, 2033},
		{2200, 2031},
		{2400, 2028},
		{2440, 2012},
		{3000, 2031},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SafeYear(tt.year), "SafeYear(%d)", tt.year)
	}
}

func TestSafeYear_AnchorYearsMapToThemselves(t *testing.T) {
	for y := int64(2010); y <= MaxSafeYear; y++ {
		assert.Equal(t, int(y), SafeYear(y))
	}
}

func TestSafeYear_GregorianPeriodic(t *testing.T) {
	for y := int64(2001); y < 2801; y++ {
		want := SafeYear(y)
		for k := int64(1); k <= 3; k++ {
			assert.Equal(t, want, SafeYear(y+400*k), "SafeYear(%d) vs SafeYear(%d)", y, y+400*k)
		}
	}
}

func TestSafeYear_MatchesCalendarStructure(t *testing.T) {
	years := []int64{2099, 2100, 2101, 2199, 2200, 2201, 2300, 2301, 2399, 2400, 2401, 1900, 1800, 1601, 1}
	for y := int64(2038); y < 3300; y++ {
		years = append(years, y)
	}

	for _, y := range years {
		safe := int64(SafeYear(y))
		assert.Equal(t, IsLeap(y), IsLeap(safe), "leap status of %d and proxy %d", y, safe)
		assert.Equal(t, janFirstWeekday(t, y), janFirstWeekday(t, safe), "Jan 1 weekday of %d and proxy %d", y, safe)

		feb := daysInMonth[leapIndex(y)][1]
		assert.Equal(t, feb, daysInMonth[leapIndex(safe)][1], "February of %d and proxy %d", y, safe)
	}
}
