package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/time64/internal/calendar"
	"github.com/roach88/time64/internal/ir"
)

func TestSchema_AcceptsRecords(t *testing.T) {
	schema, err := NewSchema()
	require.NoError(t, err)

	tm, err := calendar.UTC(0)
	require.NoError(t, err)

	records := []ir.Record{
		{RunToken: "r", Seq: 1, Input: 0, Mode: ir.ModeUTC, Tm: tm},
		{RunToken: "r", Seq: 2, Input: 32503680000, Mode: ir.ModeLocal, Tm: tm,
			Fold: calendar.Fold{Applied: true, TrueYear: 3000, ProxyYear: 2031}},
		{RunToken: "r", Seq: 3, Input: 1 << 62, Mode: ir.ModeUTC, Error: "overflow"},
	}
	for _, rec := range records {
		assert.NoError(t, schema.ValidateRecord(rec), "seq %d", rec.Seq)
	}
}

func TestSchema_RejectsRecords(t *testing.T) {
	schema, err := NewSchema()
	require.NoError(t, err)

	tests := []struct {
		name string
		json string
	}{
		{"hour out of range", `{"input":0,"mode":"utc","run_token":"r","seq":1,"tm":{"gmtoff":0,"hour":24,"isdst":false,"mday":1,"min":0,"mon":0,"sec":0,"wday":4,"yday":0,"year":70,"zone":"UTC"}}`},
		{"mday zero", `{"input":0,"mode":"utc","run_token":"r","seq":1,"tm":{"gmtoff":0,"hour":0,"isdst":false,"mday":0,"min":0,"mon":0,"sec":0,"wday":4,"yday":0,"year":70,"zone":"UTC"}}`},
		{"unknown mode", `{"input":0,"mode":"tai","run_token":"r","seq":1,"error":"overflow"}`},
		{"unknown error", `{"input":0,"mode":"utc","run_token":"r","seq":1,"error":"boom"}`},
		{"proxy outside anchors", `{"fold":{"proxy_year":2040,"true_year":3000},"input":0,"mode":"local","run_token":"r","seq":1,"tm":{"gmtoff":0,"hour":0,"isdst":false,"mday":1,"min":0,"mon":0,"sec":0,"wday":4,"yday":0,"year":70,"zone":"UTC"}}`},
		{"seq zero", `{"input":0,"mode":"utc","run_token":"r","seq":0,"error":"overflow"}`},
		{"missing tm", `{"input":0,"mode":"utc","run_token":"r","seq":1}`},
		{"error and tm", `{"error":"overflow","input":0,"mode":"utc","run_token":"r","seq":1,"tm":{"gmtoff":0,"hour":0,"isdst":false,"mday":1,"min":0,"mon":0,"sec":0,"wday":4,"yday":0,"year":70,"zone":"UTC"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, schema.ValidateJSON([]byte(tt.json)))
		})
	}
}

func TestSnapshot(t *testing.T) {
	tm, err := calendar.UTC(0)
	require.NoError(t, err)

	out, err := Snapshot([]ir.Record{
		{RunToken: "run-1", Seq: 1, Input: 0, Mode: ir.ModeUTC, Tm: tm},
		{RunToken: "run-1", Seq: 2, Input: 1 << 62, Mode: ir.ModeUTC, Error: "overflow"},
	})
	require.NoError(t, err)

	want := `{"input":0,"mode":"utc","run_token":"run-1","seq":1,"tm":{"gmtoff":0,"hour":0,"isdst":false,"mday":1,"min":0,"mon":0,"sec":0,"wday":4,"yday":0,"year":70,"zone":"UTC"}}` + "\n" +
		`{"error":"overflow","input":4611686018427387904,"mode":"utc","run_token":"run-1","seq":2}` + "\n"
	assert.Equal(t, want, string(out))
}
