package modring

import (
	"math/rand"
	"testing"
)

// Benchmarks only: operand caches and sinks. Assigning results to package
// level sinks keeps the compiler from optimizing the benchmarked call away.

const benchSize = 256

var benchSinkStd Element[uint64, modGoldilocks]
var benchSinkMont MontgomeryElement[uint64, modGoldilocks]

func benchStdElements(seed int64) (ret [benchSize]Element[uint64, modGoldilocks]) {
	rnd := rand.New(rand.NewSource(seed))
	for i := range ret {
		ret[i] = New[uint64, modGoldilocks](rnd.Uint64())
	}
	return
}

func benchMontElements(seed int64) (ret [benchSize]MontgomeryElement[uint64, modGoldilocks]) {
	std := benchStdElements(seed)
	for i := range ret {
		ret[i] = std[i].Montgomery()
	}
	return
}

func BenchmarkElementAdd(b *testing.B) {
	xs := benchStdElements(100)
	ys := benchStdElements(101)
	ResetCallCounters()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		benchSinkStd = xs[n%benchSize].Add(ys[n%benchSize])
	}
	BenchmarkWithCallCounters(b)
}

func BenchmarkElementMul(b *testing.B) {
	xs := benchStdElements(100)
	ys := benchStdElements(101)
	ResetCallCounters()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		benchSinkStd = xs[n%benchSize].Mul(ys[n%benchSize])
	}
	BenchmarkWithCallCounters(b)
}

func BenchmarkMontgomeryMul(b *testing.B) {
	xs := benchMontElements(100)
	ys := benchMontElements(101)
	ResetCallCounters()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		benchSinkMont = xs[n%benchSize].Mul(ys[n%benchSize])
	}
	BenchmarkWithCallCounters(b)
}

func BenchmarkMontgomeryConversionRoundTrip(b *testing.B) {
	xs := benchStdElements(100)
	ResetCallCounters()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		benchSinkStd = xs[n%benchSize].Montgomery().Standard()
	}
	BenchmarkWithCallCounters(b)
}
