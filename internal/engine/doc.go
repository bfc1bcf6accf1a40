// Package engine implements the time64 batch conversion engine.
//
// The engine converts a list of wide time values to calendar records,
// either in UTC or in the converter's local zone, and journals them.
//
// ARCHITECTURE:
//
// Fan-out, ordered fan-in:
// Inputs are decomposed on a bounded pool of workers. Results land in a
// slot per input, so the output order never depends on scheduling. Once
// every worker is done the engine stamps records in input order:
// 1. seq from Clock.Next()
// 2. ID from ir.RecordID(run token, seq, input, mode)
// 3. Journal write (optional, one transaction per run)
// 4. Observer callbacks (metrics)
//
// Host calls for local conversions are serialized by calendar.Converter,
// so extra workers only parallelize the arithmetic around them.
//
// CRITICAL PATTERNS:
//
// Logical Clock
// All records stamped with monotonic seq counter from Clock.Next().
// NEVER use wall-clock timestamps for ordering.
//
// Recoverable failures
// Overflow and host-range failures become records with an error code.
// Any other failure aborts the run.
package engine
