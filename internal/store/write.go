package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/roach88/time64/internal/ir"
)

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// WriteRun records a batch run. Writing the same token twice is a no-op.
func (s *Store) WriteRun(ctx context.Context, run ir.Run) error {
	if !run.Mode.Valid() {
		return fmt.Errorf("write run %s: invalid mode %q", run.Token, run.Mode)
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (token, mode, zone, fold_past, engine_version, record_version)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(token) DO NOTHING
	`, run.Token, string(run.Mode), run.Zone, boolToInt(run.FoldPast), run.EngineVersion, run.RecordVersion)
	if err != nil {
		return fmt.Errorf("write run %s: %w", run.Token, err)
	}
	return nil
}

// WriteRecord appends a conversion record to the journal.
// Idempotent: a record whose ID already exists is ignored.
func (s *Store) WriteRecord(ctx context.Context, rec ir.Record) error {
	return writeRecord(ctx, s.db, rec)
}

// WriteRecords appends records in a single transaction.
func (s *Store) WriteRecords(ctx context.Context, recs []ir.Record) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, rec := range recs {
		if err := writeRecord(ctx, tx, rec); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit records: %w", err)
	}
	return nil
}

func writeRecord(ctx context.Context, db execer, rec ir.Record) error {
	if rec.ID == "" {
		return fmt.Errorf("write record seq=%d: empty id", rec.Seq)
	}
	if !rec.Mode.Valid() {
		return fmt.Errorf("write record %s: invalid mode %q", rec.ID, rec.Mode)
	}
	canonical, err := ir.MarshalCanonical(rec.Object())
	if err != nil {
		return fmt.Errorf("write record %s: canonical form: %w", rec.ID, err)
	}

	tm := rec.Tm
	var fullYear int64
	if rec.Error == "" {
		fullYear = tm.FullYear()
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO conversions (
			id, run_token, seq, input, mode,
			sec, min, hour, mday, mon, year, wday, yday, isdst, gmtoff, zone,
			full_year, folded, true_year, proxy_year, error, canonical
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		rec.ID, rec.RunToken, rec.Seq, rec.Input, string(rec.Mode),
		tm.Sec, tm.Min, tm.Hour, tm.Mday, tm.Mon, tm.Year, tm.Wday, tm.Yday,
		boolToInt(tm.IsDST), tm.GMTOff, tm.Zone,
		fullYear, boolToInt(rec.Fold.Applied), rec.Fold.TrueYear, rec.Fold.ProxyYear, rec.Error, string(canonical),
	)
	if err != nil {
		return fmt.Errorf("write record %s: %w", rec.ID, err)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
