// Package enginelog is the engine's logging facade for soft anomalies
// that never escape the API as errors. Stale track keys and unknown
// easing names are logged here; missing point data and zero/past
// durations are handled silently by the coroutine scheduler.
package enginelog

import (
	"log"
	"os"
)

var (
	coroutineLog = log.New(os.Stderr, "[coroutine] ", log.LstdFlags)
	trackLog     = log.New(os.Stderr, "[track] ", log.LstdFlags)
	parseLog     = log.New(os.Stderr, "[pointdef] ", log.LstdFlags)
)

// Soft logs a non-fatal anomaly on the coroutine scheduler's behalf,
// e.g. a stale Track Key encountered by poll_events.
func Soft(format string, args ...any) {
	coroutineLog.Printf(format, args...)
}

// StaleHandle logs a soft anomaly for a track key whose generation no
// longer matches.
func StaleHandle(context string) {
	trackLog.Printf("stale track key during %s; dropping", context)
}

// UnknownEasing logs the parser warning for an unrecognized easing
// name: callers still must substitute easeLinear.
func UnknownEasing(name string) {
	parseLog.Printf("unknown easing name %q, falling back to easeLinear", name)
}
