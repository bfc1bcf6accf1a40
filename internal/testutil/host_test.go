package testutil

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/time64/internal/calendar"
)

func TestFixedZoneHost(t *testing.T) {
	h := FixedZoneHost("PKT", 5*3600)

	tm, err := h.Localtime(0)
	require.NoError(t, err)
	assert.Equal(t, 5, tm.Hour)
	assert.Equal(t, int64(5*3600), tm.GMTOff)
	assert.Equal(t, "PKT", tm.Zone)

	_, err = h.Localtime(math.MaxInt32 + 1)
	assert.ErrorIs(t, err, calendar.ErrHostRange)
}

func TestFailingHost(t *testing.T) {
	_, err := FailingHost().Localtime(0)
	assert.ErrorIs(t, err, ErrHostDown)
}

func TestRecordingHost(t *testing.T) {
	h := NewRecordingHost(FixedZoneHost("UTC", 0))

	for _, v := range []int64{3, 1, 2} {
		_, err := h.Localtime(v)
		require.NoError(t, err)
	}
	assert.Equal(t, []int64{3, 1, 2}, h.Calls())
	assert.Equal(t, 1, h.MaxConcurrent())

	h.Reset()
	assert.Empty(t, h.Calls())
	assert.Equal(t, 0, h.MaxConcurrent())
}

func TestRecordingHost_ConcurrentSafe(t *testing.T) {
	h := NewRecordingHost(FixedZoneHost("UTC", 0))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = h.Localtime(int64(i))
		}()
	}
	wg.Wait()

	assert.Len(t, h.Calls(), 50)
	assert.GreaterOrEqual(t, h.MaxConcurrent(), 1)
}
