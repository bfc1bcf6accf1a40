package calendar

import "fmt"

// IsLeap reports whether the absolute calendar year is a Gregorian leap year.
func IsLeap(year int64) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// IsExceptionCentury reports whether year is a century year without a leap day
// (1900, 2100, 2200, 2300, 2500, ...).
func IsExceptionCentury(year int64) bool {
	return year%100 == 0 && year%400 != 0
}

// CycleOffset returns the shift, in positions of the 28-year solar cycle, that
// the exception centuries between 2000 and year have accumulated. Each skipped
// leap day moves the cycle by 16 positions.
//
// CycleOffset panics if year is before 2001.
func CycleOffset(year int64) int64 {
	if year < 2001 {
		panic(fmt.Sprintf("calendar: CycleOffset(%d): year must be >= 2001", year))
	}
	diff := year - 2001
	exceptions := diff/100 - diff/400
	return exceptions * 16
}
