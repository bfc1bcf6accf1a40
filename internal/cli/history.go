package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/time64/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Database string
	RunToken string
	From     int64
	To       int64
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	cfg := rootOpts.config()
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Query the conversion journal",
		Long: `Query journaled conversions, either one run by token or all
successful conversions whose calendar year lies in a range.

Examples:
  time64 history --db ./time64.db --run 0190f5c2-...
  time64 history --db ./time64.db --from 2038 --to 2100
  time64 history --run 0190f5c2-... --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", cfg.DBPath, "path to SQLite journal")
	cmd.Flags().StringVar(&opts.RunToken, "run", "", "run token to show")
	cmd.Flags().Int64Var(&opts.From, "from", 0, "first calendar year (inclusive)")
	cmd.Flags().Int64Var(&opts.To, "to", 0, "last calendar year (inclusive)")
	cmd.MarkFlagsMutuallyExclusive("run", "from")
	cmd.MarkFlagsMutuallyExclusive("run", "to")
	cmd.MarkFlagsRequiredTogether("from", "to")

	return cmd
}

func runHistory(opts *HistoryOptions, cmd *cobra.Command) error {
	ctx := cmd.Context()
	f := opts.formatter(cmd)

	byYear := cmd.Flags().Changed("from")
	if opts.RunToken == "" && !byYear {
		return f.Fail(ExitCommandError, CodeInvalidInput, "one of --run or --from/--to is required", nil)
	}
	if opts.Database == "" {
		return f.Fail(ExitCommandError, CodeInvalidInput, "--db is required", nil)
	}

	// store.Open creates missing files.
	if _, err := os.Stat(opts.Database); err != nil {
		return f.Fail(ExitCommandError, CodeDatabase, "database not found: "+opts.Database, err)
	}

	st, err := store.Open(opts.Database)
	if err != nil {
		return f.Fail(ExitCommandError, CodeDatabase, "failed to open database", err)
	}
	defer st.Close()

	if byYear {
		records, err := st.ReadByYear(ctx, opts.From, opts.To)
		if err != nil {
			return f.Fail(ExitCommandError, CodeDatabase, "failed to query journal", err)
		}
		return f.Success(newBatchView(nil, records))
	}

	run, err := st.ReadRunInfo(ctx, opts.RunToken)
	if errors.Is(err, store.ErrRunNotFound) {
		return f.Fail(ExitCommandError, CodeInvalidInput, "run not found: "+opts.RunToken, nil)
	}
	if err != nil {
		return f.Fail(ExitCommandError, CodeDatabase, "failed to query journal", err)
	}
	records, err := st.ReadRun(ctx, opts.RunToken)
	if err != nil {
		return f.Fail(ExitCommandError, CodeDatabase, "failed to query journal", err)
	}
	return f.Success(newBatchView(&run, records))
}
