package calendar

// Range of years a 32-bit time_t can represent in full.
const (
	MinSafeYear = 1902
	MaxSafeYear = 2037
)

// Range of the anchor years SafeYear returns.
const (
	MinAnchorYear = 2010
	MaxAnchorYear = 2037
)

// SafeYear maps year onto an anchor year in [MinAnchorYear, MaxAnchorYear] that has the same
// leap-year status and starts on the same weekday, so that a host limited to
// 32-bit time values applies the same weekday-dependent zone rules.
//
// Years before 2001 are first moved forward by whole Gregorian cycles, which
// repeat weekdays and leap years exactly.
func SafeYear(year int64) int {
	if year < 2001 {
		cycles := (2001 - year + yearsInGregorianCycle - 1) / yearsInGregorianCycle
		year += cycles * yearsInGregorianCycle
	}

	pos := year + CycleOffset(year)
	if IsExceptionCentury(year) {
		pos += 11
	}
	pos %= solarCycleLength

	return safeYears[pos]
}
