package calendar

import "fmt"

// maxGMTOff bounds Tm.GMTOff to one day either side of UTC.
const maxGMTOff = 24 * secondsPerHour

// Validate checks tm against the ranges documented on Tm, including the
// leap-year consistency of Yday and February days.
func (tm Tm) Validate() error {
	checks := []struct {
		field    string
		value    int64
		min, max int64
	}{
		{"sec", int64(tm.Sec), 0, 61},
		{"min", int64(tm.Min), 0, 59},
		{"hour", int64(tm.Hour), 0, 23},
		{"mday", int64(tm.Mday), 1, 31},
		{"mon", int64(tm.Mon), 0, 11},
		{"wday", int64(tm.Wday), 0, 6},
		{"yday", int64(tm.Yday), 0, 365},
		{"gmtoff", tm.GMTOff, -maxGMTOff, maxGMTOff},
	}
	for _, c := range checks {
		if c.value < c.min || c.value > c.max {
			return &InvariantError{Field: c.field, Value: c.value, Rule: rangeRule(c.min, c.max)}
		}
	}

	if !IsLeap(tm.FullYear()) {
		if tm.Yday > 364 {
			return &InvariantError{Field: "yday", Value: int64(tm.Yday), Rule: "<= 364 in a common year"}
		}
		if tm.Mon == 1 && tm.Mday > 28 {
			return &InvariantError{Field: "mday", Value: int64(tm.Mday), Rule: "<= 28 in February of a common year"}
		}
	}
	return nil
}

func rangeRule(min, max int64) string {
	return fmt.Sprintf("in [%d, %d]", min, max)
}

// mustValid panics when invariant checks are compiled in and tm is invalid.
func mustValid(tm Tm) {
	if !invariantChecks {
		return
	}
	if err := tm.Validate(); err != nil {
		panic(err)
	}
}
