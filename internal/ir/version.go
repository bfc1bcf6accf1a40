package ir

// Version constants for the record schema.
const (
	// RecordVersion is the record schema version.
	RecordVersion = "1"

	// EngineVersion is the time64 conversion engine version.
	EngineVersion = "0.1.0"
)
