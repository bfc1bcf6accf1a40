package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/time64/internal/calendar"
)

func TestModeValid(t *testing.T) {
	assert.True(t, ModeUTC.Valid())
	assert.True(t, ModeLocal.Valid())
	assert.False(t, Mode("gmt").Valid())
	assert.False(t, Mode("").Valid())
}

func TestRecordObject_Canonical(t *testing.T) {
	rec := Record{
		RunToken: "run-1",
		Seq:      1,
		Input:    0,
		Mode:     ModeUTC,
		Tm:       calendar.Tm{Mday: 1, Year: 70, Wday: 4, Zone: "UTC"},
	}

	out, err := MarshalCanonical(rec.Object())
	require.NoError(t, err)
	assert.Equal(t,
		`{"input":0,"mode":"utc","run_token":"run-1","seq":1,"tm":{"gmtoff":0,"hour":0,"isdst":false,"mday":1,"min":0,"mon":0,"sec":0,"wday":4,"yday":0,"year":70,"zone":"UTC"}}`,
		string(out))
}

func TestRecordObject_Fold(t *testing.T) {
	rec := Record{
		RunToken: "run-1",
		Seq:      2,
		Input:    4133991600,
		Mode:     ModeLocal,
		Tm:       calendar.Tm{Hour: 22, Mday: 31, Mon: 11, Year: 200, Wday: 5, Yday: 364, GMTOff: -18000, Zone: "EST"},
		Fold:     calendar.Fold{Applied: true, TrueYear: 2101, ProxyYear: 2033},
	}

	obj := rec.Object()
	require.Contains(t, obj, "fold")
	assert.Equal(t, IRObject{"true_year": IRInt(2101), "proxy_year": IRInt(2033)}, obj["fold"])
}

func TestRecordObject_Error(t *testing.T) {
	rec := Record{RunToken: "run-1", Seq: 3, Input: 9223372036854775807, Mode: ModeUTC, Error: "overflow"}

	out, err := MarshalCanonical(rec.Object())
	require.NoError(t, err)
	assert.Equal(t, `{"error":"overflow","input":9223372036854775807,"mode":"utc","run_token":"run-1","seq":3}`, string(out))
}
