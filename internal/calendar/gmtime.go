package calendar

import "math"

// UTC decomposes t into a UTC calendar time.
//
// It fails with an *OverflowError, and returns the zero Tm, when the year
// does not fit Tm.Year.
func UTC(t Time) (Tm, error) {
	secs := int64(t)

	sec := secs % 60
	secs /= 60
	min := secs % 60
	secs /= 60
	hour := secs % 24
	days := secs / 24

	// Truncated division leaves negative remainders; borrow from the next unit.
	if sec < 0 {
		sec += 60
		min--
	}
	if min < 0 {
		min += 60
		hour--
	}
	if hour < 0 {
		hour += 24
		days--
	}

	wday := (days + epochWeekday) % 7
	if wday < 0 {
		wday += 7
	}

	year, mon, mday0, leap := splitDays(days)

	tmYear := year - YearBase
	if tmYear < math.MinInt32 || tmYear > math.MaxInt32 {
		return Tm{}, &OverflowError{Input: t, Year: year}
	}

	tm := Tm{
		Sec:  int(sec),
		Min:  int(min),
		Hour: int(hour),
		Mday: int(mday0) + 1,
		Mon:  mon,
		Year: int32(tmYear),
		Wday: int(wday),
		Yday: julianDaysByMonth[leap][mon] + int(mday0),
		Zone: "UTC",
	}
	mustValid(tm)
	return tm, nil
}

// splitDays turns a day count relative to the epoch into an absolute year, a
// month, the zero-based day within that month and the year's leap flag.
func splitDays(days int64) (year int64, mon int, mday0 int64, leap int) {
	m := days
	if m >= 0 {
		year = epochYear

		// Whole Gregorian cycles first; far dates would otherwise walk year by year.
		cycles := m / daysInGregorianCycle
		m -= cycles * daysInGregorianCycle
		year += cycles * yearsInGregorianCycle

		leap = leapIndex(year)
		for m >= int64(lengthOfYear[leap]) {
			m -= int64(lengthOfYear[leap])
			year++
			leap = leapIndex(year)
		}

		for m >= int64(daysInMonth[leap][mon]) {
			m -= int64(daysInMonth[leap][mon])
			mon++
		}
		return year, mon, m, leap
	}

	year = epochYear - 1

	if m < -daysInGregorianCycle {
		cycles := (-m - 1) / daysInGregorianCycle
		m += cycles * daysInGregorianCycle
		year -= cycles * yearsInGregorianCycle
	}

	leap = leapIndex(year)
	for m < -int64(lengthOfYear[leap]) {
		m += int64(lengthOfYear[leap])
		year--
		leap = leapIndex(year)
	}

	mon = 11
	for m < -int64(daysInMonth[leap][mon]) {
		m += int64(daysInMonth[leap][mon])
		mon--
	}
	m += int64(daysInMonth[leap][mon])
	return year, mon, m, leap
}
