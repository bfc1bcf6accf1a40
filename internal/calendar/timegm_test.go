package calendar

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimegm_KnownValues(t *testing.T) {
	tests := []struct {
		tm   Tm
		want Time
	}{
		{Tm{Mday: 1, Year: 70}, 0},
		{Tm{Sec: 59, Min: 59, Hour: 23, Mday: 31, Mon: 11, Year: 69}, -1},
		{Tm{Mday: 29, Mon: 1, Year: 100}, 951782400},
		{Tm{Mday: 1, Year: 1100}, 32503680000},
		{Tm{Hour: 3, Mday: 1, Year: 201}, 4133991600},
		{Tm{Hour: 22, Mday: 31, Mon: 11, Year: 200}, 4133973600},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Timegm(tt.tm), "Timegm(%v)", tt.tm)
	}
}

func TestTimegm_IgnoresDerivedFields(t *testing.T) {
	tm := Tm{Mday: 1, Year: 70, Wday: 6, Yday: 200, IsDST: true, GMTOff: 3600, Zone: "XYZ"}
	assert.Equal(t, Time(0), Timegm(tm))
}

func TestTimegm_CarriesMonth(t *testing.T) {
	assert.Equal(t, Timegm(Tm{Mday: 1, Year: 71}), Timegm(Tm{Mday: 1, Mon: 12, Year: 70}))
	assert.Equal(t, Timegm(Tm{Mday: 1, Mon: 11, Year: 69}), Timegm(Tm{Mday: 1, Mon: -1, Year: 70}))
	assert.Equal(t, Timegm(Tm{Mday: 1, Mon: 1, Year: 68}), Timegm(Tm{Mday: 1, Mon: -23, Year: 70}))
}

func TestTimegm_MatchesStdlib(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 5000; i++ {
		year := rng.Intn(20000) - 10000
		mon := rng.Intn(12)
		day := 1 + rng.Intn(daysInMonth[leapIndex(int64(year))][mon])
		hour, min, sec := rng.Intn(24), rng.Intn(60), rng.Intn(60)

		tm := Tm{Sec: sec, Min: min, Hour: hour, Mday: day, Mon: mon, Year: int32(year - YearBase)}
		want := time.Date(year, time.Month(mon+1), day, hour, min, sec, 0, time.UTC).Unix()
		assert.Equal(t, Time(want), Timegm(tm), "Timegm(%v)", tm)
	}
}

func TestTimegm_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	inputs := []Time{0, -1, 1, 1 << 31, -(1 << 31), 1 << 40, -(1 << 40), 1 << 55, -(1 << 55)}
	for i := 0; i < 20000; i++ {
		inputs = append(inputs, Time(rng.Int63n(1<<56)-1<<55))
	}

	for _, in := range inputs {
		tm, err := UTC(in)
		require.NoError(t, err)
		assert.Equal(t, in, Timegm(tm), "round trip of %d through %v", in, tm)
	}
}
