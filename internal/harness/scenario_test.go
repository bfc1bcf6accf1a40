package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/time64/internal/ir"
)

func TestParseScenario_Valid(t *testing.T) {
	data := []byte(`
name: sample
description: sample scenario
mode: local
zone: "+05:30"
fold_past: true
cases:
  - input: 0
    expect:
      date: "1970-01-01"
      time: "05:30:00"
      gmtoff: 19800
      isdst: false
      folded: false
  - input: 9223372036854775807
    expect:
      error: overflow
assertions:
  - type: fold_count
    count: 0
`)

	s, err := ParseScenario(data)
	require.NoError(t, err)

	assert.Equal(t, "sample", s.Name)
	assert.Equal(t, ir.ModeLocal, s.Mode)
	require.NotNil(t, s.FoldPast)
	assert.True(t, *s.FoldPast)
	assert.True(t, s.foldPast())
	assert.Equal(t, []int64{0, 9223372036854775807}, s.Inputs())

	e := s.Cases[0].Expect
	require.NotNil(t, e)
	assert.Equal(t, "05:30:00", e.Time)
	require.NotNil(t, e.GMTOff)
	assert.Equal(t, int64(19800), *e.GMTOff)
	require.NotNil(t, e.IsDST)
	assert.False(t, *e.IsDST)
	assert.Nil(t, e.Wday)
	assert.Equal(t, "overflow", s.Cases[1].Expect.Error)
}

func TestParseScenario_FoldPastDefault(t *testing.T) {
	s, err := ParseScenario([]byte("name: n\ndescription: d\nmode: local\ncases: [{input: 0}]\n"))
	require.NoError(t, err)
	assert.Nil(t, s.FoldPast)
	assert.True(t, s.foldPast())

	s, err = ParseScenario([]byte("name: n\ndescription: d\nmode: local\nfold_past: false\ncases: [{input: 0}]\n"))
	require.NoError(t, err)
	assert.False(t, s.foldPast())
}

func TestParseScenario_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "missing name",
			yaml:    "description: d\nmode: utc\ncases: [{input: 0}]\n",
			wantErr: "name is required",
		},
		{
			name:    "missing description",
			yaml:    "name: n\nmode: utc\ncases: [{input: 0}]\n",
			wantErr: "description is required",
		},
		{
			name:    "bad mode",
			yaml:    "name: n\ndescription: d\nmode: solar\ncases: [{input: 0}]\n",
			wantErr: "mode must be utc or local",
		},
		{
			name:    "zone in utc mode",
			yaml:    "name: n\ndescription: d\nmode: utc\nzone: UTC\ncases: [{input: 0}]\n",
			wantErr: "only apply to local mode",
		},
		{
			name:    "fold_past in utc mode",
			yaml:    "name: n\ndescription: d\nmode: utc\nfold_past: false\ncases: [{input: 0}]\n",
			wantErr: "only apply to local mode",
		},
		{
			name:    "no cases",
			yaml:    "name: n\ndescription: d\nmode: utc\n",
			wantErr: "cases list is required",
		},
		{
			name:    "error with date",
			yaml:    "name: n\ndescription: d\nmode: utc\ncases: [{input: 0, expect: {error: overflow, date: \"1970-01-01\"}}]\n",
			wantErr: "error excludes calendar fields",
		},
		{
			name:    "unknown assertion",
			yaml:    "name: n\ndescription: d\nmode: utc\ncases: [{input: 0}]\nassertions: [{type: trace_count}]\n",
			wantErr: "unknown assertion type",
		},
		{
			name:    "unknown field",
			yaml:    "name: n\ndescription: d\nmode: utc\ncase: [{input: 0}]\n",
			wantErr: "failed to parse YAML",
		},
		{
			name:    "input out of range",
			yaml:    "name: n\ndescription: d\nmode: utc\ncases: [{input: 9223372036854775808}]\n",
			wantErr: "failed to parse YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScenario([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read scenario file")
}

func TestLoadScenario_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: n\ndescription: d\nmode: utc\ncases: [{input: 86400}]\n"), 0o644))

	s, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, "scenario-n", s.runToken())
	assert.Equal(t, "UTC", s.zone())
}
