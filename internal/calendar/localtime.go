package calendar

import (
	"errors"
	"fmt"
	"sync"
)

// Fold describes the year substitution made for a local conversion.
type Fold struct {
	Applied   bool  `json:"applied"`
	TrueYear  int64 `json:"true_year"`
	ProxyYear int   `json:"proxy_year,omitempty"`
}

// Converter performs local decompositions through a Host. Host calls are
// serialized, so a Converter is safe for concurrent use even when the host
// is not.
type Converter struct {
	host     Host
	foldPast bool

	mu sync.Mutex
}

// Option configures a Converter.
type Option func(*Converter)

// WithFoldPast controls folding of years before MinSafeYear. When enabled
// (the default) such a year is folded onto an anchor year if the host
// rejects the unfolded value with ErrHostRange. When disabled only years
// after MaxSafeYear are folded and the host's ErrHostRange is returned.
func WithFoldPast(fold bool) Option {
	return func(c *Converter) {
		c.foldPast = fold
	}
}

// NewConverter creates a Converter. A nil host means SystemHost().
// Past folding is on unless WithFoldPast(false) is given.
func NewConverter(host Host, opts ...Option) *Converter {
	if host == nil {
		host = SystemHost()
	}
	c := &Converter{host: host, foldPast: true}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FoldPast reports whether years before MinSafeYear are folded.
func (c *Converter) FoldPast() bool {
	return c.foldPast
}

var defaultConverter = NewConverter(nil)

// Local decomposes t into the process's local time zone using the default
// converter.
func Local(t Time) (Tm, error) {
	return defaultConverter.Local(t)
}

// Local decomposes t into local calendar time.
func (c *Converter) Local(t Time) (Tm, error) {
	tm, _, err := c.LocalFold(t)
	return tm, err
}

// LocalFold is Local that also reports whether the year was folded onto an
// anchor year for the host call.
func (c *Converter) LocalFold(t Time) (Tm, Fold, error) {
	gm, err := UTC(t)
	if err != nil {
		return Tm{}, Fold{}, err
	}

	origYear := gm.FullYear()
	fold := Fold{TrueYear: origYear}
	if origYear > MaxSafeYear {
		fold = foldYear(&gm, origYear)
	}

	safeTime := Timegm(gm)
	local, err := c.localtime(int64(safeTime))
	if err != nil && c.foldPast && origYear < MinSafeYear && errors.Is(err, ErrHostRange) {
		fold = foldYear(&gm, origYear)
		safeTime = Timegm(gm)
		local, err = c.localtime(int64(safeTime))
	}
	if err != nil {
		return Tm{}, fold, fmt.Errorf("host localtime(%d): %w", int64(safeTime), err)
	}

	// The zone offset can move the local date into the neighbouring year.
	year := origYear
	switch local.Mon - gm.Mon {
	case 11:
		year--
	case -11:
		year++
	}
	if year-YearBase != int64(int32(year-YearBase)) {
		return Tm{}, fold, &OverflowError{Input: t, Year: year}
	}
	local.Year = int32(year - YearBase)

	// Dec 31 of a common xx00 year seen through a leap proxy year.
	if !IsLeap(year) && local.Yday == 365 {
		local.Yday--
	}

	mustValid(local)
	return local, fold, nil
}

// foldYear moves gm onto the anchor year of year.
func foldYear(gm *Tm, year int64) Fold {
	proxy := SafeYear(year)
	gm.Year = int32(proxy - YearBase)
	return Fold{Applied: true, TrueYear: year, ProxyYear: proxy}
}

func (c *Converter) localtime(t int64) (Tm, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.host.Localtime(t)
}
