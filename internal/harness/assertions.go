package harness

import (
	"fmt"

	"github.com/roach88/time64/internal/ir"
)

// matchExpect compares rec against the fields set in e.
func matchExpect(e *ExpectClause, rec ir.Record) []string {
	if e == nil {
		return nil
	}

	var errs []string
	mismatch := func(field string, got, want any) {
		errs = append(errs, fmt.Sprintf("%s = %v, want %v", field, got, want))
	}

	if e.Error != "" || rec.Error != "" {
		if rec.Error != e.Error {
			mismatch("error", quoteOrNone(rec.Error), quoteOrNone(e.Error))
		}
		return errs
	}

	tm := rec.Tm
	if e.Date != "" && tm.Date() != e.Date {
		mismatch("date", tm.Date(), e.Date)
	}
	if e.Time != "" && tm.Clock() != e.Time {
		mismatch("time", tm.Clock(), e.Time)
	}
	if e.Wday != nil && tm.Wday != *e.Wday {
		mismatch("wday", tm.Wday, *e.Wday)
	}
	if e.Yday != nil && tm.Yday != *e.Yday {
		mismatch("yday", tm.Yday, *e.Yday)
	}
	if e.IsDST != nil && tm.IsDST != *e.IsDST {
		mismatch("isdst", tm.IsDST, *e.IsDST)
	}
	if e.GMTOff != nil && tm.GMTOff != *e.GMTOff {
		mismatch("gmtoff", tm.GMTOff, *e.GMTOff)
	}
	if e.Zone != nil && tm.Zone != *e.Zone {
		mismatch("zone", tm.Zone, *e.Zone)
	}
	if e.Folded != nil && rec.Fold.Applied != *e.Folded {
		mismatch("folded", rec.Fold.Applied, *e.Folded)
	}
	if e.ProxyYear != nil && rec.Fold.ProxyYear != *e.ProxyYear {
		mismatch("proxy_year", rec.Fold.ProxyYear, *e.ProxyYear)
	}
	return errs
}

func quoteOrNone(s string) string {
	if s == "" {
		return "none"
	}
	return fmt.Sprintf("%q", s)
}

// EvaluateAssertions checks run-level assertions against the records.
// Returns one message per failed assertion.
func EvaluateAssertions(records []ir.Record, assertions []Assertion) []string {
	var errs []string
	for i, a := range assertions {
		if msg := evaluateAssertion(records, a); msg != "" {
			errs = append(errs, fmt.Sprintf("assertions[%d] %s: %s", i, a.Type, msg))
		}
	}
	return errs
}

func evaluateAssertion(records []ir.Record, a Assertion) string {
	switch a.Type {
	case AssertFoldCount:
		n := 0
		for _, rec := range records {
			if rec.Fold.Applied {
				n++
			}
		}
		if n != a.Count {
			return fmt.Sprintf("got %d folded records, want %d", n, a.Count)
		}
	case AssertErrorCount:
		n := 0
		for _, rec := range records {
			if rec.Error != "" {
				n++
			}
		}
		if n != a.Count {
			return fmt.Sprintf("got %d error records, want %d", n, a.Count)
		}
	case AssertSeqOrder:
		for i := 1; i < len(records); i++ {
			if records[i].Seq <= records[i-1].Seq {
				return fmt.Sprintf("seq %d follows %d", records[i].Seq, records[i-1].Seq)
			}
		}
	default:
		return "unknown assertion type"
	}
	return ""
}
