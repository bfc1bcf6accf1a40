package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/time64/internal/config"
)

func TestDefaults(t *testing.T) {
	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "Local", cfg.Zone)
	assert.True(t, cfg.FoldPast)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "time64.db", cfg.DBPath)
	assert.Equal(t, 4, cfg.Workers)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("TIME64_ZONE", "Asia/Karachi")
	t.Setenv("TIME64_FOLD_PAST", "false")
	t.Setenv("TIME64_LOG_LEVEL", "debug")
	t.Setenv("TIME64_LOG_FORMAT", "json")
	t.Setenv("TIME64_DB_PATH", "/tmp/journal.db")
	t.Setenv("TIME64_WORKERS", "16")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "Asia/Karachi", cfg.Zone)
	assert.False(t, cfg.FoldPast)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "/tmp/journal.db", cfg.DBPath)
	assert.Equal(t, 16, cfg.Workers)
}

func TestLoad_IgnoresUnprefixedVars(t *testing.T) {
	t.Setenv("WORKERS", "99")
	t.Setenv("ZONE", "Nowhere/Invalid")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Workers)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"zero workers", "TIME64_WORKERS", "0"},
		{"bad log format", "TIME64_LOG_FORMAT", "xml"},
		{"bad log level", "TIME64_LOG_LEVEL", "loud"},
		{"unknown zone", "TIME64_ZONE", "Nowhere/Invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := config.Load()

			assert.ErrorIs(t, err, config.ErrInvalid)
		})
	}
}

func TestParseZone(t *testing.T) {
	tests := []struct {
		in         string
		wantOffset int
		wantName   string
	}{
		{"+05:30", 19800, "UTC+05:30"},
		{"-0330", -12600, "UTC-03:30"},
		{"+9", 32400, "UTC+09:00"},
		{"UTC-05", -18000, "UTC-05:00"},
		{"UTC", 0, "UTC"},
	}

	ref := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			loc, err := config.ParseZone(tt.in)
			require.NoError(t, err)

			name, off := ref.In(loc).Zone()
			assert.Equal(t, tt.wantOffset, off)
			assert.Equal(t, tt.wantName, name)
		})
	}
}

func TestParseZone_Local(t *testing.T) {
	for _, in := range []string{"", "Local"} {
		loc, err := config.ParseZone(in)
		require.NoError(t, err)
		assert.Equal(t, time.Local, loc)
	}
}

func TestParseZone_Rejects(t *testing.T) {
	for _, in := range []string{"+25", "+05:75", "+123", "Mars/Olympus"} {
		_, err := config.ParseZone(in)
		assert.Error(t, err, in)
	}
}
