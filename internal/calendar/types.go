package calendar

import "fmt"

// Time is a signed count of seconds since 1970-01-01T00:00:00 UTC.
// It covers dates far outside the range of a 32-bit time_t.
type Time int64

// Tm is a broken-down calendar time in the shape of C's struct tm.
type Tm struct {
	Sec   int   `json:"sec" yaml:"sec"`     // [0, 61], allows leap seconds
	Min   int   `json:"min" yaml:"min"`     // [0, 59]
	Hour  int   `json:"hour" yaml:"hour"`   // [0, 23]
	Mday  int   `json:"mday" yaml:"mday"`   // [1, 31]
	Mon   int   `json:"mon" yaml:"mon"`     // [0, 11]
	Year  int32 `json:"year" yaml:"year"`   // years since YearBase
	Wday  int   `json:"wday" yaml:"wday"`   // [0, 6], 0 = Sunday
	Yday  int   `json:"yday" yaml:"yday"`   // [0, 365]
	IsDST bool  `json:"isdst" yaml:"isdst"` // daylight saving time in effect

	// GMTOff is the offset east of UTC in seconds.
	GMTOff int64 `json:"gmtoff" yaml:"gmtoff"`

	// Zone is the abbreviated zone name, "UTC" for UTC decompositions.
	Zone string `json:"zone" yaml:"zone"`
}

// FullYear returns the absolute calendar year.
func (tm Tm) FullYear() int64 {
	return int64(tm.Year) + YearBase
}

// String renders tm as "YYYY-MM-DD HH:MM:SS +hhmm ZONE".
// Years outside [0, 9999] keep their full width and sign.
func (tm Tm) String() string {
	return fmt.Sprintf("%s %s %s", tm.Date(), tm.Clock(), tm.offset())
}

// Date renders the date part as YYYY-MM-DD.
func (tm Tm) Date() string {
	return fmt.Sprintf("%04d-%02d-%02d", tm.FullYear(), tm.Mon+1, tm.Mday)
}

// Clock renders the time-of-day part as HH:MM:SS.
func (tm Tm) Clock() string {
	return fmt.Sprintf("%02d:%02d:%02d", tm.Hour, tm.Min, tm.Sec)
}

func (tm Tm) offset() string {
	sign := '+'
	off := tm.GMTOff
	if off < 0 {
		sign = '-'
		off = -off
	}
	return fmt.Sprintf("%c%02d%02d %s", sign, off/secondsPerHour, (off%secondsPerHour)/secondsPerMinute, tm.Zone)
}

var weekdayNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// WeekdayName returns the three-letter English name of tm.Wday.
func (tm Tm) WeekdayName() string {
	if tm.Wday < 0 || tm.Wday > 6 {
		return fmt.Sprintf("Wday(%d)", tm.Wday)
	}
	return weekdayNames[tm.Wday]
}
