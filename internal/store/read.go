package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/roach88/time64/internal/ir"
)

// ErrRunNotFound is returned by ReadRunInfo for unknown tokens.
var ErrRunNotFound = errors.New("run not found")

const selectConversions = `
	SELECT id, run_token, seq, input, mode,
		sec, min, hour, mday, mon, year, wday, yday, isdst, gmtoff, zone,
		folded, true_year, proxy_year, error
	FROM conversions
`

// ReadRunInfo returns the options a run was recorded with.
func (s *Store) ReadRunInfo(ctx context.Context, token string) (ir.Run, error) {
	var (
		run      ir.Run
		mode     string
		foldPast int
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT token, mode, zone, fold_past, engine_version, record_version
		FROM runs WHERE token = ?
	`, token).Scan(&run.Token, &mode, &run.Zone, &foldPast, &run.EngineVersion, &run.RecordVersion)
	if errors.Is(err, sql.ErrNoRows) {
		return ir.Run{}, fmt.Errorf("%w: %s", ErrRunNotFound, token)
	}
	if err != nil {
		return ir.Run{}, fmt.Errorf("read run %s: %w", token, err)
	}
	run.Mode = ir.Mode(mode)
	run.FoldPast = foldPast != 0
	return run, nil
}

// ReadRun returns all records of a run in seq order.
func (s *Store) ReadRun(ctx context.Context, token string) ([]ir.Record, error) {
	rows, err := s.db.QueryContext(ctx, selectConversions+`
		WHERE run_token = ?
		ORDER BY seq ASC, id ASC COLLATE BINARY
	`, token)
	if err != nil {
		return nil, fmt.Errorf("read run %s: %w", token, err)
	}
	defer rows.Close()
	return scanRecords(rows)
}

// ReadByYear returns successfully converted records whose calendar year
// lies in [from, to], across all runs.
func (s *Store) ReadByYear(ctx context.Context, from, to int64) ([]ir.Record, error) {
	if from > to {
		return nil, fmt.Errorf("read by year: from %d after to %d", from, to)
	}
	rows, err := s.db.QueryContext(ctx, selectConversions+`
		WHERE error = '' AND full_year BETWEEN ? AND ?
		ORDER BY seq ASC, id ASC COLLATE BINARY
	`, from, to)
	if err != nil {
		return nil, fmt.Errorf("read by year %d..%d: %w", from, to, err)
	}
	defer rows.Close()
	return scanRecords(rows)
}

// LatestSeq returns the highest seq in the journal, or 0 when empty.
func (s *Store) LatestSeq(ctx context.Context) (int64, error) {
	var seq sql.NullInt64
	if err := s.db.QueryRowContext(ctx, `SELECT MAX(seq) FROM conversions`).Scan(&seq); err != nil {
		return 0, fmt.Errorf("latest seq: %w", err)
	}
	return seq.Int64, nil
}

func scanRecords(rows *sql.Rows) ([]ir.Record, error) {
	var out []ir.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}
	return out, nil
}

func scanRecord(rows *sql.Rows) (ir.Record, error) {
	var (
		rec   ir.Record
		mode  string
		isDST int
	)
	tm := &rec.Tm
	err := rows.Scan(
		&rec.ID, &rec.RunToken, &rec.Seq, &rec.Input, &mode,
		&tm.Sec, &tm.Min, &tm.Hour, &tm.Mday, &tm.Mon, &tm.Year, &tm.Wday, &tm.Yday,
		&isDST, &tm.GMTOff, &tm.Zone,
		&rec.Fold.Applied, &rec.Fold.TrueYear, &rec.Fold.ProxyYear, &rec.Error,
	)
	if err != nil {
		return ir.Record{}, fmt.Errorf("scan record: %w", err)
	}
	rec.Mode = ir.Mode(mode)
	tm.IsDST = isDST != 0
	return rec, nil
}
