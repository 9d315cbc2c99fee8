package fp

import (
	"os"
	"strconv"
)

// DispatchLevel identifies how error-free products are computed.
type DispatchLevel int

const (
	// DispatchDekker splits operands into 26-bit halves (Veltkamp/Dekker).
	DispatchDekker DispatchLevel = iota

	// DispatchFMA uses a hardware fused multiply-add.
	DispatchFMA
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchDekker:
		return "dekker"
	case DispatchFMA:
		return "fma"
	default:
		return "unknown"
	}
}

// currentLevel is set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// CurrentLevel returns the product strategy selected for this CPU.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// NoFMAEnv checks if the LIBM_NO_FMA environment variable is set.
// When set, TwoProd uses Dekker splitting regardless of CPU capabilities.
// Both strategies return identical results; the variable exists for testing.
func NoFMAEnv() bool {
	val := os.Getenv("LIBM_NO_FMA")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// setLevel is used by tests to exercise both product strategies.
func setLevel(d DispatchLevel) (restore func()) {
	prev := currentLevel
	currentLevel = d
	return func() { currentLevel = prev }
}
