package ir

import "github.com/roach88/time64/internal/calendar"

// Mode selects the decomposition a record was produced with.
type Mode string

const (
	ModeUTC   Mode = "utc"
	ModeLocal Mode = "local"
)

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m == ModeUTC || m == ModeLocal
}

// Record is one conversion of a wide time value.
type Record struct {
	ID       string        `json:"id"`
	RunToken string        `json:"run_token"`
	Seq      int64         `json:"seq"`
	Input    int64         `json:"input"`
	Mode     Mode          `json:"mode"`
	Tm       calendar.Tm   `json:"tm"`
	Fold     calendar.Fold `json:"fold"`

	// Error holds the failure code for inputs that could not be converted,
	// e.g. "overflow". Tm is zero when Error is set.
	Error string `json:"error,omitempty"`
}

// TmObject converts calendar fields to an IRObject with snake_case keys.
func TmObject(tm calendar.Tm) IRObject {
	return IRObject{
		"sec":    IRInt(tm.Sec),
		"min":    IRInt(tm.Min),
		"hour":   IRInt(tm.Hour),
		"mday":   IRInt(tm.Mday),
		"mon":    IRInt(tm.Mon),
		"year":   IRInt(tm.Year),
		"wday":   IRInt(tm.Wday),
		"yday":   IRInt(tm.Yday),
		"isdst":  IRBool(tm.IsDST),
		"gmtoff": IRInt(tm.GMTOff),
		"zone":   IRString(tm.Zone),
	}
}

// Object converts the record to an IRObject for canonical serialization.
// The ID is left out so the object can be hashed into it.
func (r Record) Object() IRObject {
	obj := IRObject{
		"run_token": IRString(r.RunToken),
		"seq":       IRInt(r.Seq),
		"input":     IRInt(r.Input),
		"mode":      IRString(r.Mode),
	}
	if r.Error != "" {
		obj["error"] = IRString(r.Error)
		return obj
	}
	obj["tm"] = TmObject(r.Tm)
	if r.Fold.Applied {
		obj["fold"] = IRObject{
			"true_year":  IRInt(r.Fold.TrueYear),
			"proxy_year": IRInt(r.Fold.ProxyYear),
		}
	}
	return obj
}

// Run describes one batch of conversions sharing a token and options.
type Run struct {
	Token         string `json:"token"`
	Mode          Mode   `json:"mode"`
	Zone          string `json:"zone"`
	FoldPast      bool   `json:"fold_past"`
	EngineVersion string `json:"engine_version"`
	RecordVersion string `json:"record_version"`
}
