package calendar

import (
	"fmt"
	"math"
	"time"
)

// Host converts epoch seconds the host can represent into local calendar
// time, applying the host's zone and DST rules.
type Host interface {
	Localtime(t int64) (Tm, error)
}

// HostFunc adapts a function to the Host interface.
type HostFunc func(t int64) (Tm, error)

// Localtime calls f(t).
func (f HostFunc) Localtime(t int64) (Tm, error) {
	return f(t)
}

// ZoneHost is a Host backed by a time.Location. A nil Loc means time.Local.
type ZoneHost struct {
	Loc *time.Location
}

// Localtime implements Host.
func (h ZoneHost) Localtime(t int64) (Tm, error) {
	loc := h.Loc
	if loc == nil {
		loc = time.Local
	}
	return FromTime(time.Unix(t, 0).In(loc))
}

// FromTime breaks a time.Time down into a Tm in the time's own location.
func FromTime(tt time.Time) (Tm, error) {
	year := int64(tt.Year())
	if year-YearBase < math.MinInt32 || year-YearBase > math.MaxInt32 {
		return Tm{}, &OverflowError{Input: Time(tt.Unix()), Year: year}
	}
	zone, off := tt.Zone()
	return Tm{
		Sec:    tt.Second(),
		Min:    tt.Minute(),
		Hour:   tt.Hour(),
		Mday:   tt.Day(),
		Mon:    int(tt.Month()) - 1,
		Year:   int32(year - YearBase),
		Wday:   int(tt.Weekday()),
		Yday:   tt.YearDay() - 1,
		IsDST:  tt.IsDST(),
		GMTOff: int64(off),
		Zone:   zone,
	}, nil
}

// Bounded32 restricts a Host to the range of a signed 32-bit time_t, the
// way localtime_r behaves on platforms with a 32-bit time_t.
type Bounded32 struct {
	Host Host
}

// Localtime implements Host.
func (b Bounded32) Localtime(t int64) (Tm, error) {
	if t < math.MinInt32 || t > math.MaxInt32 {
		return Tm{}, fmt.Errorf("%w: %d does not fit 32 bits", ErrHostRange, t)
	}
	return b.Host.Localtime(t)
}

// SystemHost returns the default host: the process's local zone limited to
// 32-bit time values.
func SystemHost() Host {
	return Bounded32{Host: ZoneHost{}}
}
