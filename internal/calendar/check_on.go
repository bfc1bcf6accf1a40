//go:build !time64_nocheck

package calendar

// invariantChecks enables mustValid. Build with -tags time64_nocheck to
// compile the checks out.
const invariantChecks = true
