// Package ir provides the canonical record representation for time64.
//
// A Record captures one conversion: the wide input, the mode it was converted
// in, the resulting calendar fields and the year fold applied for local
// conversions. Records are serialized with MarshalCanonical and identified by
// a content-addressed ID, so the same request always yields the same bytes.
//
// Key design constraints:
//   - NO float types anywhere, numbers are int64
//   - All JSON tags use snake_case
//   - Logical clocks (seq) only, never wall-clock timestamps
//
// ir imports only internal/calendar.
package ir
