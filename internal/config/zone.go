package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"
)

// ParseZone resolves a zone setting to a location.
//
// Accepted forms: "" or "Local" for the process zone, any name known to
// time.LoadLocation, and fixed offsets "+hh", "+hhmm" or "+hh:mm" (also
// with "-"), optionally prefixed by "UTC".
func ParseZone(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	if off, ok := parseOffset(name); ok {
		return time.FixedZone(offsetName(off), off), nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("unknown zone %q: %w", name, err)
	}
	return loc, nil
}

func parseOffset(s string) (int, bool) {
	s = strings.TrimPrefix(s, "UTC")
	if len(s) < 2 || (s[0] != '+' && s[0] != '-') {
		return 0, false
	}
	sign := 1
	if s[0] == '-' {
		sign = -1
	}
	digits := strings.ReplaceAll(s[1:], ":", "")

	var hh, mm string
	switch len(digits) {
	case 1, 2:
		hh = digits
	case 4:
		hh, mm = digits[:2], digits[2:]
	default:
		return 0, false
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h > 14 {
		return 0, false
	}
	m := 0
	if mm != "" {
		m, err = strconv.Atoi(mm)
		if err != nil || m > 59 {
			return 0, false
		}
	}
	return sign * (h*3600 + m*60), true
}

func offsetName(off int) string {
	sign := '+'
	if off < 0 {
		sign = '-'
		off = -off
	}
	return fmt.Sprintf("UTC%c%02d:%02d", sign, off/3600, off%3600/60)
}
