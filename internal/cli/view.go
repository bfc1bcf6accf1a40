package cli

import (
	"fmt"
	"strings"

	"github.com/roach88/time64/internal/calendar"
	"github.com/roach88/time64/internal/ir"
)

// RecordView is the printed form of a conversion record.
type RecordView struct {
	Seq      int64          `json:"seq,omitempty"`
	RunToken string         `json:"run_token,omitempty"`
	Input    int64          `json:"input"`
	Mode     ir.Mode        `json:"mode"`
	Text     string         `json:"text,omitempty"`
	Weekday  string         `json:"weekday,omitempty"`
	Tm       *calendar.Tm   `json:"tm,omitempty"`
	Fold     *calendar.Fold `json:"fold,omitempty"`
	Error    string         `json:"error,omitempty"`
}

func newRecordView(rec ir.Record, withSeq bool) RecordView {
	v := RecordView{
		Input: rec.Input,
		Mode:  rec.Mode,
		Error: rec.Error,
	}
	if withSeq {
		v.Seq = rec.Seq
		v.RunToken = rec.RunToken
	}
	if rec.Error != "" {
		return v
	}
	tm := rec.Tm
	v.Tm = &tm
	v.Text = tm.String()
	v.Weekday = tm.WeekdayName()
	if rec.Fold.Applied {
		fold := rec.Fold
		v.Fold = &fold
	}
	return v
}

// String renders one line:
//
//	32503680000  3000-01-01 05:00:00 +0500 UTC+05:00  Wed  yday=0  fold=3000->2031
func (v RecordView) String() string {
	var b strings.Builder
	if v.Seq != 0 {
		fmt.Fprintf(&b, "#%d  ", v.Seq)
	}
	fmt.Fprintf(&b, "%d  ", v.Input)
	if v.Error != "" {
		fmt.Fprintf(&b, "error: %s", v.Error)
		return b.String()
	}
	fmt.Fprintf(&b, "%s  %s  yday=%d", v.Text, v.Weekday, v.Tm.Yday)
	if v.Tm.IsDST {
		b.WriteString("  dst")
	}
	if v.Fold != nil {
		fmt.Fprintf(&b, "  fold=%d->%d", v.Fold.TrueYear, v.Fold.ProxyYear)
	}
	return b.String()
}

// ConversionList is the output of utc and local.
type ConversionList struct {
	Records []RecordView `json:"records"`
	Failed  int          `json:"failed"`
}

func newConversionList(records []ir.Record, withSeq bool) ConversionList {
	out := ConversionList{Records: make([]RecordView, len(records))}
	for i, rec := range records {
		out.Records[i] = newRecordView(rec, withSeq)
		if rec.Error != "" {
			out.Failed++
		}
	}
	return out
}

func (l ConversionList) String() string {
	lines := make([]string, len(l.Records))
	for i, v := range l.Records {
		lines[i] = v.String()
	}
	return strings.Join(lines, "\n")
}
