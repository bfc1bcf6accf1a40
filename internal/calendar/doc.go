// Package calendar converts 64-bit epoch seconds to broken-down calendar time.
//
// UTC decomposition is pure arithmetic and works for any year that fits
// Tm.Year. Local decomposition delegates zone and DST rules to a Host which,
// like localtime_r on a platform with a 32-bit time_t, may only accept times
// between 1901 and 2038.
//
// # Year folding
//
// To convert a time after 2037 to local time, the year is replaced by an
// anchor year in [2010, 2037] with the same leap status and the same weekday
// for January 1st (see SafeYear). The folded calendar time is composed back
// into seconds with Timegm, handed to the host, and the true year is put back
// into the host's answer. Two artifacts of the substitution are corrected:
//
//   - the zone offset moves the local date across a year boundary, detected as
//     a month difference of +11 or -11 between the local and UTC records;
//   - Dec 31 of a common xx00 year read through a leap proxy year reports
//     day-of-year 365, which is clamped to 364.
//
// Times before the host's range are folded the same way once the host
// rejects them with ErrHostRange, unless WithFoldPast(false) is given.
//
// # Invariants
//
// Every Tm produced by this package satisfies Tm.Validate. The check runs after
// each conversion and panics on failure; build with -tags time64_nocheck to
// compile it out.
package calendar
