package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/time64/internal/calendar"
	"github.com/roach88/time64/internal/engine"
	"github.com/roach88/time64/internal/ir"
	"github.com/roach88/time64/internal/metrics"
	"github.com/roach88/time64/internal/store"
)

// BatchOptions holds flags for the batch command.
type BatchOptions struct {
	*RootOptions
	Database string
	Workers  int
	Metrics  bool
	Mode     string
	Zone     string
	FoldPast bool
}

// BatchView is the output of batch and history.
type BatchView struct {
	Run     *ir.Run      `json:"run,omitempty"`
	Records []RecordView `json:"records"`
	Folded  int          `json:"folded"`
	Failed  int          `json:"failed"`
}

func newBatchView(run *ir.Run, records []ir.Record) BatchView {
	list := newConversionList(records, true)
	v := BatchView{Run: run, Records: list.Records, Failed: list.Failed}
	for _, rec := range records {
		if rec.Fold.Applied {
			v.Folded++
		}
	}
	return v
}

func (v BatchView) String() string {
	var b strings.Builder
	if v.Run != nil {
		fmt.Fprintf(&b, "Run %s (%s, zone %s)\n", v.Run.Token, v.Run.Mode, v.Run.Zone)
	}
	fmt.Fprintf(&b, "%d record(s), %d folded, %d failed", len(v.Records), v.Folded, v.Failed)
	for _, rec := range v.Records {
		b.WriteString("\n")
		b.WriteString(rec.String())
	}
	return b.String()
}

// NewBatchCommand creates the batch command.
func NewBatchCommand(rootOpts *RootOptions) *cobra.Command {
	cfg := rootOpts.config()
	opts := &BatchOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "batch [file]",
		Short: "Convert a file of values and journal the results",
		Long: `Convert whitespace-separated second counts read from a file (or stdin)
on a pool of workers, and append the records to the conversion journal.

Lines starting with '#' are ignored. Records are stamped with a sequence
number continuing from the last one in the journal. Use --db "" to skip
journaling.

Examples:
  time64 batch inputs.txt --db ./time64.db
  seq 0 86400 864000 | time64 batch --mode utc --db ""
  time64 batch inputs.txt --zone Asia/Kolkata --workers 8 --metrics`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runBatch(opts, cmd, path)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", cfg.DBPath, "path to SQLite journal (empty disables journaling)")
	cmd.Flags().IntVar(&opts.Workers, "workers", cfg.Workers, "number of conversion workers")
	cmd.Flags().BoolVar(&opts.Metrics, "metrics", false, "print Prometheus metrics to stderr")
	cmd.Flags().StringVar(&opts.Mode, "mode", string(ir.ModeLocal), "conversion mode (utc|local)")
	cmd.Flags().StringVar(&opts.Zone, "zone", cfg.Zone, "time zone for local mode")
	cmd.Flags().BoolVar(&opts.FoldPast, "fold-past", cfg.FoldPast, "fold years before 1902 that the 32-bit host rejects")

	return cmd
}

func runBatch(opts *BatchOptions, cmd *cobra.Command, path string) error {
	ctx := cmd.Context()
	f := opts.formatter(cmd)

	mode := ir.Mode(opts.Mode)
	if !mode.Valid() {
		return f.Fail(ExitCommandError, CodeInvalidInput, fmt.Sprintf("invalid mode %q", opts.Mode), nil)
	}
	if opts.Workers < 1 {
		return f.Fail(ExitCommandError, CodeInvalidInput, "workers must be at least 1", nil)
	}

	inputs, err := readBatchInputs(cmd, path)
	if err != nil {
		return f.Fail(ExitCommandError, CodeInvalidInput, "failed to read inputs", err)
	}
	f.VerboseLog("read %d input(s)", len(inputs))

	var conv *calendar.Converter
	if mode == ir.ModeLocal {
		conv, err = newConverter(opts.Zone, opts.FoldPast)
		if err != nil {
			return f.Fail(ExitCommandError, CodeInvalidInput, "invalid zone", err)
		}
	}

	reg := metrics.New()
	engOpts := []engine.Option{
		engine.WithLogger(opts.logger()),
		engine.WithWorkers(opts.Workers),
		engine.WithZoneName(opts.Zone),
		engine.WithObserver(reg),
	}

	if opts.Database != "" {
		st, err := store.Open(opts.Database)
		if err != nil {
			return f.Fail(ExitCommandError, CodeDatabase, "failed to open database", err)
		}
		defer st.Close()

		last, err := st.LatestSeq(ctx)
		if err != nil {
			return f.Fail(ExitCommandError, CodeDatabase, "failed to read journal", err)
		}
		f.VerboseLog("journal %s at seq %d", opts.Database, last)
		engOpts = append(engOpts, engine.WithJournal(st), engine.WithClock(engine.NewClockAt(last)))
	}

	res, err := engine.New(conv, engOpts...).Run(ctx, inputs, mode)
	if err != nil {
		code := CodeConversion
		if engine.IsJournalError(err) {
			code = CodeDatabase
		}
		return f.Fail(ExitFailure, code, "batch failed", err)
	}

	if err := f.Success(newBatchView(&res.Run, res.Records)); err != nil {
		return err
	}
	if opts.Metrics {
		if err := reg.WriteText(f.GetErrWriter()); err != nil {
			return WrapExitError(ExitFailure, "failed to write metrics", err)
		}
	}
	return nil
}

// readBatchInputs reads values from path, or from the command's stdin when
// path is empty or "-".
func readBatchInputs(cmd *cobra.Command, path string) ([]int64, error) {
	var r io.Reader = cmd.InOrStdin()
	if path != "" && path != "-" {
		file, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		r = file
	}
	return parseBatch(r)
}

func parseBatch(r io.Reader) ([]int64, error) {
	var inputs []int64
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		for _, field := range strings.Fields(text) {
			v, err := strconv.ParseInt(field, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			inputs = append(inputs, v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return inputs, nil
}
