// Package testutil provides calendar hosts with predictable behavior for
// tests across packages.
package testutil

import (
	"errors"
	"sync"
	"time"

	"github.com/roach88/time64/internal/calendar"
)

// FixedZoneHost returns a 32-bit bounded host for a fixed UTC offset.
//
// Fixed zones keep expectations independent of the tz database of the
// machine running the tests.
func FixedZoneHost(name string, offsetSeconds int) calendar.Host {
	return calendar.Bounded32{Host: calendar.ZoneHost{Loc: time.FixedZone(name, offsetSeconds)}}
}

// ErrHostDown is returned by FailingHost.
var ErrHostDown = errors.New("host unavailable")

// FailingHost is a host that always fails with ErrHostDown.
func FailingHost() calendar.Host {
	return calendar.HostFunc(func(int64) (calendar.Tm, error) {
		return calendar.Tm{}, ErrHostDown
	})
}

// RecordingHost wraps a host and records every value it is handed.
//
// Thread-safety: all methods are safe for concurrent use via internal mutex.
type RecordingHost struct {
	Host calendar.Host

	mu       sync.Mutex
	calls    []int64
	inFlight int
	maxPar   int
}

// NewRecordingHost wraps host.
func NewRecordingHost(host calendar.Host) *RecordingHost {
	return &RecordingHost{Host: host}
}

// Localtime implements calendar.Host.
func (h *RecordingHost) Localtime(t int64) (calendar.Tm, error) {
	h.mu.Lock()
	h.calls = append(h.calls, t)
	h.inFlight++
	if h.inFlight > h.maxPar {
		h.maxPar = h.inFlight
	}
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		h.inFlight--
		h.mu.Unlock()
	}()
	return h.Host.Localtime(t)
}

// Calls returns a copy of the recorded values in call order.
func (h *RecordingHost) Calls() []int64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]int64, len(h.calls))
	copy(out, h.calls)
	return out
}

// MaxConcurrent returns the largest number of overlapping calls seen.
func (h *RecordingHost) MaxConcurrent() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.maxPar
}

// Reset forgets recorded calls.
func (h *RecordingHost) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.calls = nil
	h.maxPar = 0
}
