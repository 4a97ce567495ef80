// Package format renders the iteration and attempt counters the chain
// driver reports during a run into human-readable strings.
package format

import "github.com/dustin/go-humanize"

// IterationCount renders a raw search micro-step counter with thousands
// separators, e.g. 12,482,901.
func IterationCount(n int) string {
	return humanize.Comma(int64(n))
}

// Attempts renders a running sequence-population count the same way.
func Attempts(n int) string {
	return humanize.Comma(int64(n))
}

// Rate renders an iterations-per-second figure with an SI prefix, at most
// one decimal place (trailing zeros dropped) and an "/s" suffix, e.g.
// "482.3 k/s".
func Rate(iterationsPerSecond float64) string {
	return humanize.SIWithDigits(iterationsPerSecond, 1, "/s")
}
