package calendar

// Calendar tables indexed by leap flag (0 = common year, 1 = leap year).
var (
	daysInMonth = [2][12]int{
		{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31},
		{31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31},
	}

	julianDaysByMonth = [2][12]int{
		{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334},
		{0, 31, 60, 91, 121, 152, 182, 213, 244, 274, 305, 335},
	}

	lengthOfYear = [2]int{365, 366}
)

const (
	yearsInGregorianCycle = 400
	daysInGregorianCycle  = 365*400 + 100 - 4 + 1

	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour

	// epochYear is the calendar year of Time(0).
	epochYear = 1970

	// epochWeekday is the weekday of 1970-01-01 (Thursday).
	epochWeekday = 4

	// YearBase is the calendar year stored as Tm.Year == 0.
	YearBase = 1900
)

// solarCycleLength is the number of years after which weekdays and leap years
// repeat as long as no exception century intervenes.
const solarCycleLength = 28

// Anchor years spanning one solar cycle inside the 32-bit time range.
// safeYears[y%28] == y for every y in [2010, 2037].
var safeYears = [solarCycleLength]int{
	2016, 2017, 2018, 2019,
	2020, 2021, 2022, 2023,
	2024, 2025, 2026, 2027,
	2028, 2029, 2030, 2031,
	2032, 2033, 2034, 2035,
	2036, 2037, 2010, 2011,
	2012, 2013, 2014, 2015,
}

// Weekday of January 1st for each entry of safeYears.
var dowYearStart = [solarCycleLength]int{
	5, 0, 1, 2, // 2016 - 2019
	3, 5, 6, 0,
	1, 3, 4, 5,
	6, 1, 2, 3,
	4, 6, 0, 1,
	2, 4, 5, 6, // 2036, 2037, 2010, 2011
	0, 2, 3, 4, // 2012, 2013, 2014, 2015
}

// Anchor describes one entry of the anchor-year table.
type Anchor struct {
	Index        int  `json:"index"`
	Year         int  `json:"year"`
	Leap         bool `json:"leap"`
	JanFirstWday int  `json:"jan_first_wday"`
}

// Anchors returns a copy of the anchor-year table in index order.
func Anchors() []Anchor {
	out := make([]Anchor, solarCycleLength)
	for i, y := range safeYears {
		out[i] = Anchor{
			Index:        i,
			Year:         y,
			Leap:         IsLeap(int64(y)),
			JanFirstWday: dowYearStart[i],
		}
	}
	return out
}

func leapIndex(year int64) int {
	if IsLeap(year) {
		return 1
	}
	return 0
}
