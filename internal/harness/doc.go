// Package harness provides conformance testing for time64 conversions.
//
// The harness loads conversion scenarios, runs them through the batch
// engine against a fixed zone, journals the records in an in-memory store
// and checks every record read back from the journal.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: scenario_name
//	description: "What this scenario validates"
//	mode: local            # utc or local
//	zone: "+05:00"         # optional, default UTC
//	fold_past: false       # optional, default true
//	run_token: run-fixed   # optional, default "scenario-<name>"
//	cases:
//	  - input: 32503680000
//	    expect:
//	      date: "3000-01-01"
//	      time: "05:00:00"
//	      wday: 3
//	      yday: 0
//	      gmtoff: 18000
//	      folded: true
//	      proxy_year: 2031
//	  - input: 9223372036854775807
//	    expect:
//	      error: overflow
//	assertions:
//	  - type: fold_count
//	    count: 1
//
// # Record Checks
//
// Every successful record must satisfy the CUE schema in schema.cue and
// calendar.Tm.Validate. Expect clauses are subset matches: only the fields
// given are compared.
//
// # Assertion Types
//
//   - fold_count: exactly Count records were folded
//   - error_count: exactly Count records carry an error code
//   - seq_order: seq strictly increases in case order
//
// # Golden Files
//
// RunWithGolden compares the canonical JSON of every record, one per line,
// against testdata/golden/<name>.golden. Regenerate with:
//
//	go test ./internal/harness -update
package harness
