package harness

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/roach88/time64/internal/calendar"
	"github.com/roach88/time64/internal/config"
	"github.com/roach88/time64/internal/engine"
	"github.com/roach88/time64/internal/ir"
	"github.com/roach88/time64/internal/store"
)

// Run executes a scenario and returns the result.
//
// Each scenario runs in a fresh in-memory journal for isolation, with a
// fixed run token and a clock starting at zero.
//
// Execution flow:
// 1. Resolve the zone and build a 32-bit bounded host for it
// 2. Convert all cases in one engine run, journaling to the store
// 3. Read the run back from the journal
// 4. Check every record against the schema and its expect clause
// 5. Evaluate assertions
func Run(scenario *Scenario) (*Result, error) {
	return RunContext(context.Background(), scenario)
}

// RunContext is Run with a caller-supplied context.
func RunContext(ctx context.Context, scenario *Scenario) (*Result, error) {
	if err := validateScenario(scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	loc, err := config.ParseZone(scenario.zone())
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}
	host := calendar.Bounded32{Host: calendar.ZoneHost{Loc: loc}}
	conv := calendar.NewConverter(host, calendar.WithFoldPast(scenario.foldPast()))

	st, err := store.Open(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to create in-memory store: %w", err)
	}
	defer st.Close()

	schema, err := NewSchema()
	if err != nil {
		return nil, err
	}

	eng := engine.New(conv,
		engine.WithTokenGenerator(engine.NewFixedGenerator(scenario.runToken())),
		engine.WithJournal(st),
		engine.WithZoneName(scenario.zone()),
		engine.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)

	res, err := eng.Run(ctx, scenario.Inputs(), scenario.Mode)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}

	records, err := st.ReadRun(ctx, res.Run.Token)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: read journal: %w", scenario.Name, err)
	}

	result := NewResult()
	result.Run = res.Run
	result.Records = records

	if len(records) != len(scenario.Cases) {
		result.AddError(fmt.Sprintf("journal holds %d records, want %d", len(records), len(scenario.Cases)))
		return result, nil
	}

	for i, rec := range records {
		for _, msg := range checkRecord(schema, rec) {
			result.AddError(fmt.Sprintf("cases[%d] (input %d): %s", i, rec.Input, msg))
		}
		for _, msg := range matchExpect(scenario.Cases[i].Expect, rec) {
			result.AddError(fmt.Sprintf("cases[%d] (input %d): %s", i, rec.Input, msg))
		}
	}

	for _, msg := range EvaluateAssertions(records, scenario.Assertions) {
		result.AddError(msg)
	}

	return result, nil
}

// checkRecord applies the schema and the calendar invariants.
func checkRecord(schema *Schema, rec ir.Record) []string {
	var errs []string
	if err := schema.ValidateRecord(rec); err != nil {
		errs = append(errs, err.Error())
	}
	if rec.Error == "" {
		if err := rec.Tm.Validate(); err != nil {
			errs = append(errs, err.Error())
		}
	}
	return errs
}
