//go:build callcounters

package modring

import (
	"testing"

	"github.com/hmseidel/modring/internal/callcounters"
)

// This file is only compiled if tags=callcounters is set, otherwise
// callcounters_inactive.go is used; the functions here become no-ops there.

// CallCountersActive is a constant whose value depends on build flags;
// it is true if call counters are active, meaning we profile the number of
// calls to the ring operations.
const CallCountersActive = true

// IncrementCallCounter increments the given call counter if call counters are
// active (via build tags). It is a no-op otherwise.
func IncrementCallCounter(id callcounters.Id) {
	id.Increment()
}

// BenchmarkWithCallCounters stops the benchmark timer and includes the call
// counters in the report as custom per-op metrics. If call counters are
// inactive, it is a no-op.
func BenchmarkWithCallCounters(b *testing.B) {
	b.StopTimer()
	for _, item := range callcounters.ReportCallCounters(true, false) {
		b.ReportMetric(float64(item.Calls)/float64(b.N), item.Tag+"/op")
	}
}

// ResetCallCounters resets all call counters to zero. It is a no-op if call
// counters are inactive.
func ResetCallCounters() {
	callcounters.ResetAllCounters()
}
