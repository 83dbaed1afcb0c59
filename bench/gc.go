package bench

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// GCMode selects the garbage collector setting a run is measured under.
type GCMode string

const (
	GCDefault  GCMode = "default"
	GCTuned    GCMode = "tuned"
	GCDisabled GCMode = "disabled"
)

// ParseGCMode accepts "default", "tuned" or "disabled". Empty means default.
func ParseGCMode(s string) (GCMode, error) {
	switch GCMode(s) {
	case "", GCDefault:
		return GCDefault, nil
	case GCTuned:
		return GCTuned, nil
	case GCDisabled:
		return GCDisabled, nil
	}
	return "", fmt.Errorf("bench: unknown GC mode %q", s)
}

func (m GCMode) percent() int {
	switch m {
	case GCTuned:
		return 500
	case GCDisabled:
		return -1
	}
	return 100
}

// apply switches the collector to m and returns a func restoring the
// previous setting.
func (m GCMode) apply() (restore func()) {
	original := debug.SetGCPercent(m.percent())
	runtime.GC()
	return func() {
		debug.SetGCPercent(original)
		runtime.GC()
	}
}
