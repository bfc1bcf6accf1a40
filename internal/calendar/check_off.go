//go:build time64_nocheck

package calendar

const invariantChecks = false
