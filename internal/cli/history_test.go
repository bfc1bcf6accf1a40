package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedJournal runs one batch into a fresh journal and returns its path and run token.
func seedJournal(t *testing.T) (string, string) {
	t.Helper()
	db := filepath.Join(t.TempDir(), "journal.db")
	stdout, _, err := execute(t, "0\n4102444800\n32503680000\n9223372036854775807\n",
		"batch", "--db", db, "--zone=+05:00", "--format", "json")
	require.NoError(t, err)
	view := decodeBatch(t, stdout)
	require.NotNil(t, view.Run)
	return db, view.Run.Token
}

func TestHistoryCommand_ByRun(t *testing.T) {
	db, token := seedJournal(t)

	stdout, _, err := execute(t, "", "history", "--db", db, "--run", token, "--format", "json")
	require.NoError(t, err)

	view := decodeBatch(t, stdout)
	require.NotNil(t, view.Run)
	assert.Equal(t, token, view.Run.Token)
	assert.Equal(t, "+05:00", view.Run.Zone)
	require.Len(t, view.Records, 4)
	for i, rec := range view.Records {
		assert.Equal(t, int64(i+1), rec.Seq)
	}
	assert.Equal(t, 2, view.Folded)
	assert.Equal(t, 1, view.Failed)
	assert.Equal(t, "overflow", view.Records[3].Error)
}

func TestHistoryCommand_ByYear(t *testing.T) {
	db, _ := seedJournal(t)

	stdout, _, err := execute(t, "", "history", "--db", db, "--from", "2038", "--to", "3000")
	require.NoError(t, err)
	assert.Contains(t, stdout, "2 record(s), 2 folded, 0 failed")
	assert.Contains(t, stdout, "2100-01-01 05:00:00 +0500 UTC+05:00")
	assert.Contains(t, stdout, "3000-01-01 05:00:00 +0500 UTC+05:00")
	assert.NotContains(t, stdout, "1970-01-01")
}

func TestHistoryCommand_Errors(t *testing.T) {
	db, _ := seedJournal(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no selector", []string{"history", "--db", db}, "one of --run or --from/--to is required"},
		{"no database", []string{"history", "--run", "x"}, "--db is required"},
		{"unknown run", []string{"history", "--db", db, "--run", "nope"}, "run not found: nope"},
		{"missing database", []string{"history", "--db", filepath.Join(filepath.Dir(db), "typo.db"), "--from", "2038", "--to", "2100"}, "Error [E003]: database not found"},
		{"inverted range", []string{"history", "--db", db, "--from", "3000", "--to", "2038"}, "Error [E003]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, "", tt.args...)
			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err))
			assert.Contains(t, stdout, tt.want)
		})
	}
}

func TestHistoryCommand_RunExcludesRange(t *testing.T) {
	_, _, err := execute(t, "", "history", "--db", "x.db", "--run", "a", "--from", "1", "--to", "2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "none of the others can be")
}

func TestHistoryCommand_MissingDatabaseNotCreated(t *testing.T) {
	db := filepath.Join(t.TempDir(), "typo.db")

	_, _, err := execute(t, "", "history", "--db", db, "--run", "x")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.NoFileExists(t, db)
}
