package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/time64/internal/calendar"
)

// SafeYearView maps a year to its anchor year.
type SafeYearView struct {
	Year         int64 `json:"year"`
	Anchor       int   `json:"anchor"`
	Leap         bool  `json:"leap"`
	JanFirstWday int   `json:"jan_first_wday"`
}

// SafeYearList is the output of safe-year.
type SafeYearList []SafeYearView

func (l SafeYearList) String() string {
	lines := make([]string, len(l))
	for i, v := range l {
		leap := "common"
		if v.Leap {
			leap = "leap"
		}
		lines[i] = fmt.Sprintf("%d -> %d  (%s, starts %s)", v.Year, v.Anchor, leap, weekdayName(v.JanFirstWday))
	}
	return strings.Join(lines, "\n")
}

// AnchorTable is the output of table.
type AnchorTable []calendar.Anchor

func (t AnchorTable) String() string {
	var b strings.Builder
	b.WriteString("index  year  leap   jan1")
	for _, a := range t {
		leap := "no"
		if a.Leap {
			leap = "yes"
		}
		fmt.Fprintf(&b, "\n%5d  %4d  %-5s  %s", a.Index, a.Year, leap, weekdayName(a.JanFirstWday))
	}
	return b.String()
}

func weekdayName(wday int) string {
	return calendar.Tm{Wday: wday}.WeekdayName()
}

// NewSafeYearCommand creates the safe-year command.
func NewSafeYearCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "safe-year <year>...",
		Short: "Show the anchor year a year is folded onto",
		Long: `Show the anchor year in 2010-2037 with the same leap status and
starting weekday as each given year.

Examples:
  time64 safe-year 2038 2100 3000
  time64 safe-year -- -44`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := rootOpts.formatter(cmd)
			out := make(SafeYearList, 0, len(args))
			for _, arg := range args {
				year, err := parseYear(arg)
				if err != nil {
					return f.Fail(ExitCommandError, CodeInvalidInput, "invalid year", err)
				}
				anchor := calendar.SafeYear(year)
				out = append(out, SafeYearView{
					Year:         year,
					Anchor:       anchor,
					Leap:         calendar.IsLeap(int64(anchor)),
					JanFirstWday: janFirstWday(anchor),
				})
			}
			return f.Success(out)
		},
	}
	return cmd
}

// Years a calendar.Tm can hold.
const (
	minYear = math.MinInt32 + calendar.YearBase
	maxYear = math.MaxInt32 + calendar.YearBase
)

func parseYear(arg string) (int64, error) {
	year, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, err
	}
	if year < minYear || year > maxYear {
		return 0, fmt.Errorf("year %d outside [%d, %d]", year, int64(minYear), int64(maxYear))
	}
	return year, nil
}

func janFirstWday(anchor int) int {
	for _, a := range calendar.Anchors() {
		if a.Year == anchor {
			return a.JanFirstWday
		}
	}
	return -1
}

// NewTableCommand creates the table command.
func NewTableCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "table",
		Short:         "Print the anchor-year table",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.formatter(cmd).Success(AnchorTable(calendar.Anchors()))
		},
	}
	return cmd
}
