// Package store provides SQLite-backed durable storage for time64 conversion
// journals.
//
// The store implements an append-only log with:
//   - Runs: one row per batch, recording the zone and folding options used
//   - Conversions: one row per converted input, keyed by content-addressed ID
//
// # Critical Patterns
//
// Idempotency
//   - conversions.id is the ir.RecordID of the request
//   - INSERT ... ON CONFLICT(id) DO NOTHING, so re-running a batch is safe
//
// Logical Time
//   - All ordering uses seq INTEGER (logical clock), NEVER timestamps
//
// Deterministic Query Results
//   - All queries include: ORDER BY seq ASC, id ASC COLLATE BINARY
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
package store
