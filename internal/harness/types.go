package harness

import "github.com/roach88/time64/internal/ir"

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass indicates overall test success.
	// True if every record check, expect clause and assertion passed.
	Pass bool `json:"pass"`

	// Run is the journaled run.
	Run ir.Run `json:"run"`

	// Records are the records read back from the journal, in seq order.
	Records []ir.Record `json:"records"`

	// Errors contains validation error messages.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Errors: []string{},
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}
