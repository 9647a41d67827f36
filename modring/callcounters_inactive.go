//go:build !callcounters

package modring

import (
	"testing"

	"github.com/hmseidel/modring/internal/callcounters"
)

// This file contains the no-op implementations used when the callcounters
// build tag is not set, so the instrumented operations have no runtime cost.

// CallCountersActive is a constant whose value depends on build flags;
// it is true if call counters are active, meaning we profile the number of
// calls to the ring operations.
const CallCountersActive = false

// IncrementCallCounter increments the given call counter if call counters are
// active (via build tags). It is a no-op otherwise.
func IncrementCallCounter(id callcounters.Id) {
}

// BenchmarkWithCallCounters stops the benchmark timer and includes the call
// counters in the report as custom per-op metrics. If call counters are
// inactive, it is a no-op.
func BenchmarkWithCallCounters(b *testing.B) {
}

// ResetCallCounters resets all call counters to zero. It is a no-op if call
// counters are inactive.
func ResetCallCounters() {
}
