package engine

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/roach88/time64/internal/calendar"
	"github.com/roach88/time64/internal/ir"
)

// DefaultWorkers is the default size of the conversion worker pool.
const DefaultWorkers = 4

// Error codes carried by records whose input could not be converted.
const (
	RecordErrOverflow  = "overflow"
	RecordErrHostRange = "host_range"
)

// Journal persists runs and their records. Implemented by *store.Store.
type Journal interface {
	WriteRun(ctx context.Context, run ir.Run) error
	WriteRecords(ctx context.Context, recs []ir.Record) error
}

// Observer is notified of every stamped record, in seq order.
type Observer interface {
	ObserveRecord(rec ir.Record)
}

// Engine converts batches of wide time values.
//
// Thread-safety: Run may be called from several goroutines; runs share the
// clock, so their seq ranges interleave but never collide.
type Engine struct {
	converter *calendar.Converter
	zone      string
	clock     *Clock
	tokens    RunTokenGenerator
	workers   int
	journal   Journal
	observers []Observer
	logger    *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock sets the logical clock. Default: NewClock().
func WithClock(c *Clock) Option {
	return func(e *Engine) {
		e.clock = c
	}
}

// WithTokenGenerator sets the run token generator. Default: UUIDv7Generator.
func WithTokenGenerator(g RunTokenGenerator) Option {
	return func(e *Engine) {
		e.tokens = g
	}
}

// WithWorkers sets the worker pool size. Values below 1 select DefaultWorkers.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		e.workers = n
	}
}

// WithJournal writes every run to j.
func WithJournal(j Journal) Option {
	return func(e *Engine) {
		e.journal = j
	}
}

// WithObserver registers an observer. May be given more than once.
func WithObserver(o Observer) Option {
	return func(e *Engine) {
		e.observers = append(e.observers, o)
	}
}

// WithLogger sets the logger. Default: slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// WithZoneName records the zone name runs are journaled with.
func WithZoneName(name string) Option {
	return func(e *Engine) {
		e.zone = name
	}
}

// New creates an Engine converting local times through conv.
// A nil conv uses the system host.
func New(conv *calendar.Converter, opts ...Option) *Engine {
	if conv == nil {
		conv = calendar.NewConverter(nil)
	}
	e := &Engine{
		converter: conv,
		zone:      "Local",
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.clock == nil {
		e.clock = NewClock()
	}
	if e.tokens == nil {
		e.tokens = UUIDv7Generator{}
	}
	if e.workers < 1 {
		e.workers = DefaultWorkers
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	return e
}

// Clock returns the engine's logical clock.
func (e *Engine) Clock() *Clock {
	return e.clock
}

// Result is the outcome of one batch run.
type Result struct {
	Run     ir.Run
	Records []ir.Record
}

// Folded counts records whose year was folded for the host call.
func (r *Result) Folded() int {
	n := 0
	for _, rec := range r.Records {
		if rec.Fold.Applied {
			n++
		}
	}
	return n
}

// Failed counts records carrying an error code.
func (r *Result) Failed() int {
	n := 0
	for _, rec := range r.Records {
		if rec.Error != "" {
			n++
		}
	}
	return n
}

// conversion is one worker's output for a single input.
type conversion struct {
	tm      calendar.Tm
	fold    calendar.Fold
	errCode string
}

// Run converts inputs in the given mode.
//
// Records are returned in input order with strictly increasing seq.
// Overflowing inputs produce records with Error set instead of failing
// the run. The context cancels pending conversions.
func (e *Engine) Run(ctx context.Context, inputs []int64, mode ir.Mode) (*Result, error) {
	if !mode.Valid() {
		return nil, &BatchError{
			Code:    ErrCodeInvalidMode,
			Message: "unknown mode " + string(mode),
		}
	}

	run := ir.Run{
		Token:         e.tokens.Generate(),
		Mode:          mode,
		Zone:          e.zone,
		FoldPast:      e.converter.FoldPast(),
		EngineVersion: ir.EngineVersion,
		RecordVersion: ir.RecordVersion,
	}
	if mode == ir.ModeUTC {
		run.Zone = "UTC"
		run.FoldPast = false
	}

	e.logger.Debug("batch starting",
		"run", run.Token,
		"mode", mode,
		"inputs", len(inputs),
		"workers", e.workers)

	slots := make([]conversion, len(inputs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i, input := range inputs {
		i, input := i, input
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			c, err := e.convert(input, mode)
			if err != nil {
				return &BatchError{
					Code:     ErrCodeConversion,
					Message:  "conversion failed",
					RunToken: run.Token,
					Input:    input,
					Err:      err,
				}
			}
			slots[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		e.logger.Error("batch aborted", "run", run.Token, "error", err)
		return nil, err
	}

	records := make([]ir.Record, len(inputs))
	for i, input := range inputs {
		seq := e.clock.Next()
		records[i] = ir.Record{
			ID:       ir.MustRecordID(run.Token, seq, input, mode),
			RunToken: run.Token,
			Seq:      seq,
			Input:    input,
			Mode:     mode,
			Tm:       slots[i].tm,
			Fold:     slots[i].fold,
			Error:    slots[i].errCode,
		}
	}

	if e.journal != nil {
		if err := e.writeJournal(ctx, run, records); err != nil {
			e.logger.Error("journal write failed", "run", run.Token, "error", err)
			return nil, err
		}
	}

	for _, rec := range records {
		for _, o := range e.observers {
			o.ObserveRecord(rec)
		}
	}

	res := &Result{Run: run, Records: records}
	e.logger.Info("batch complete",
		"run", run.Token,
		"mode", mode,
		"records", len(records),
		"folded", res.Folded(),
		"failed", res.Failed())
	return res, nil
}

func (e *Engine) writeJournal(ctx context.Context, run ir.Run, records []ir.Record) error {
	if err := e.journal.WriteRun(ctx, run); err != nil {
		return &BatchError{Code: ErrCodeJournal, Message: "write run", RunToken: run.Token, Err: err}
	}
	if err := e.journal.WriteRecords(ctx, records); err != nil {
		return &BatchError{Code: ErrCodeJournal, Message: "write records", RunToken: run.Token, Err: err}
	}
	return nil
}

// convert decomposes one input. Overflow and host-range failures are
// folded into the error code; anything else is returned.
func (e *Engine) convert(input int64, mode ir.Mode) (conversion, error) {
	var (
		c   conversion
		err error
	)
	if mode == ir.ModeUTC {
		c.tm, err = calendar.UTC(calendar.Time(input))
	} else {
		c.tm, c.fold, err = e.converter.LocalFold(calendar.Time(input))
	}

	switch {
	case err == nil:
		if !c.fold.Applied {
			c.fold = calendar.Fold{}
		}
		return c, nil
	case calendar.IsOverflow(err):
		return conversion{errCode: RecordErrOverflow}, nil
	case errors.Is(err, calendar.ErrHostRange):
		return conversion{errCode: RecordErrHostRange}, nil
	}
	return conversion{}, err
}
