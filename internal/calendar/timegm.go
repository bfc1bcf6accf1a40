package calendar

// Timegm composes the UTC calendar fields of tm back into seconds since the
// epoch. Wday, Yday, IsDST, GMTOff and Zone are ignored. A month outside
// [0, 11] is carried into the year.
func Timegm(tm Tm) Time {
	year := tm.FullYear()
	mon := tm.Mon
	if mon < 0 || mon > 11 {
		year += int64(mon / 12)
		mon %= 12
		if mon < 0 {
			mon += 12
			year--
		}
	}

	days := daysBeforeYear(year)
	days += int64(julianDaysByMonth[leapIndex(year)][mon])
	days += int64(tm.Mday - 1)

	secs := days * secondsPerDay
	secs += int64(tm.Hour) * secondsPerHour
	secs += int64(tm.Min) * secondsPerMinute
	secs += int64(tm.Sec)
	return Time(secs)
}

// daysBeforeYear returns the signed number of days from 1970-01-01 to
// January 1st of year.
func daysBeforeYear(year int64) int64 {
	var days int64
	y := int64(epochYear)

	if year >= y {
		cycles := (year - y) / yearsInGregorianCycle
		days += cycles * daysInGregorianCycle
		y += cycles * yearsInGregorianCycle
		for y < year {
			days += int64(lengthOfYear[leapIndex(y)])
			y++
		}
		return days
	}

	cycles := (y - year) / yearsInGregorianCycle
	days -= cycles * daysInGregorianCycle
	y -= cycles * yearsInGregorianCycle
	for y > year {
		y--
		days -= int64(lengthOfYear[leapIndex(y)])
	}
	return days
}
