package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/time64/internal/calendar"
	"github.com/roach88/time64/internal/config"
	"github.com/roach88/time64/internal/engine"
	"github.com/roach88/time64/internal/ir"
)

// LocalOptions holds flags for the local command.
type LocalOptions struct {
	*RootOptions
	Zone     string
	FoldPast bool
}

// NewUTCCommand creates the utc command.
func NewUTCCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "utc <seconds>...",
		Short: "Decompose seconds since the epoch in UTC",
		Long: `Decompose 64-bit second counts since 1970-01-01T00:00:00Z into UTC
calendar time. Values whose year does not fit a 32-bit year field are
reported as overflow.

Exit codes:
  0 - All values converted
  1 - One or more values overflowed
  2 - Command error (malformed number)

Examples:
  time64 utc 0 2147483648
  time64 utc -- -1
  time64 utc 32503680000 --format json`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(rootOpts, cmd, args, ir.ModeUTC, nil, "UTC")
		},
	}
	return cmd
}

// NewLocalCommand creates the local command.
func NewLocalCommand(rootOpts *RootOptions) *cobra.Command {
	cfg := rootOpts.config()
	opts := &LocalOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "local <seconds>...",
		Short: "Decompose seconds since the epoch in a local zone",
		Long: `Decompose 64-bit second counts into local calendar time.

The zone is consulted through a 32-bit localtime: years after 2037, and
earlier values the 32-bit range cannot hold, are folded onto an anchor year
with the same leap status and starting weekday, then restored.
--fold-past=false reports those earlier values as host_range instead.

Examples:
  time64 local 32503680000 --zone America/New_York
  time64 local 4102444800 --zone -05:00
  time64 local -- -5364662400 --zone UTC --fold-past=false`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			conv, err := newConverter(opts.Zone, opts.FoldPast)
			if err != nil {
				return opts.formatter(cmd).Fail(ExitCommandError, CodeInvalidInput, "invalid zone", err)
			}
			return runConvert(rootOpts, cmd, args, ir.ModeLocal, conv, opts.Zone)
		},
	}

	cmd.Flags().StringVar(&opts.Zone, "zone", cfg.Zone, "time zone (IANA name, Local, UTC or +hh:mm)")
	cmd.Flags().BoolVar(&opts.FoldPast, "fold-past", cfg.FoldPast, "fold years before 1902 that the 32-bit host rejects")

	return cmd
}

// newConverter builds a converter over a 32-bit bounded host for zone.
func newConverter(zone string, foldPast bool) (*calendar.Converter, error) {
	loc, err := config.ParseZone(zone)
	if err != nil {
		return nil, err
	}
	host := calendar.Bounded32{Host: calendar.ZoneHost{Loc: loc}}
	return calendar.NewConverter(host, calendar.WithFoldPast(foldPast)), nil
}

func parseInputs(args []string) ([]int64, error) {
	inputs := make([]int64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		inputs[i] = v
	}
	return inputs, nil
}

func runConvert(opts *RootOptions, cmd *cobra.Command, args []string, mode ir.Mode, conv *calendar.Converter, zone string) error {
	f := opts.formatter(cmd)

	inputs, err := parseInputs(args)
	if err != nil {
		return f.Fail(ExitCommandError, CodeInvalidInput, "invalid seconds value", err)
	}

	eng := engine.New(conv,
		engine.WithLogger(opts.logger()),
		engine.WithZoneName(zone),
		engine.WithWorkers(opts.config().Workers),
	)
	res, err := eng.Run(cmd.Context(), inputs, mode)
	if err != nil {
		return f.Fail(ExitFailure, CodeConversion, "conversion failed", err)
	}

	list := newConversionList(res.Records, false)
	if err := f.Success(list); err != nil {
		return err
	}
	if list.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d value(s) could not be converted", list.Failed))
	}
	return nil
}
