package ir

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Domain prefixes for content-addressed identity.
// Version suffix enables future algorithm migration.
const (
	DomainRecord = "time64/record/v1"
)

// hashWithDomain computes SHA-256 hash with domain separation.
// Format: SHA256(domain + 0x00 + data)
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// RecordID computes the content-addressed ID of a conversion request.
// Only the request (run, seq, input, mode) is hashed; the result is a pure
// function of it for a given host.
func RecordID(runToken string, seq, input int64, mode Mode) (string, error) {
	obj := IRObject{
		"run_token": IRString(runToken),
		"seq":       IRInt(seq),
		"input":     IRInt(input),
		"mode":      IRString(mode),
	}

	canonical, err := MarshalCanonical(obj)
	if err != nil {
		return "", fmt.Errorf("RecordID: failed to marshal: %w", err)
	}
	return hashWithDomain(DomainRecord, canonical), nil
}

// MustRecordID is RecordID that panics on error. The request object holds
// only strings and ints, so marshaling cannot fail.
func MustRecordID(runToken string, seq, input int64, mode Mode) string {
	id, err := RecordID(runToken, seq, input, mode)
	if err != nil {
		panic(err)
	}
	return id
}
