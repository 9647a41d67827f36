package modring

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/hmseidel/modring/internal/testutils"
)

// samplesBelow returns deterministic pseudo-random values in [0, q), always
// including the boundary cases.
func samplesBelow(q uint64, num int, seed int64) []uint64 {
	rnd := rand.New(rand.NewSource(seed))
	s := []uint64{0, q - 1, q / 2, 1 % q}
	for len(s) < num {
		s = append(s, rnd.Uint64()%q)
	}
	return s
}

// kernelModuli are the moduli the exhaustive kernel comparisons run against,
// per width. Chosen to cover primes, odd composites and width-boundary values.
var kernelModuli = map[string][]uint64{
	"uint8":  {1, 2, 13, 10, 128, 251, 255},
	"uint16": {1, 13, 9999, 65521, 1<<16 - 1},
	"uint32": {1, 13, 2013265921, 1<<32 - 2, 1<<32 - 1},
	"uint64": {1, 13, 18446744069414584321, 1<<64 - 2, 1<<64 - 1},
}

func TestKernelsAgainstBigInt(t *testing.T) {
	t.Run("uint8", testKernelsAgainstBigInt[uint8])
	t.Run("uint16", testKernelsAgainstBigInt[uint16])
	t.Run("uint32", testKernelsAgainstBigInt[uint32])
	t.Run("uint64", testKernelsAgainstBigInt[uint64])
}

func testKernelsAgainstBigInt[T Uint](t *testing.T) {
	widthName := map[uint]string{8: "uint8", 16: "uint16", 32: "uint32", 64: "uint64"}[bitWidth[T]()]
	for _, q64 := range kernelModuli[widthName] {
		q := T(q64)
		qBig := new(big.Int).SetUint64(q64)
		xs := samplesBelow(q64, 32, 1)
		ys := samplesBelow(q64, 32, 2)
		for _, x64 := range xs {
			for _, y64 := range ys {
				a, b := T(x64), T(y64)
				aBig := new(big.Int).SetUint64(x64)
				bBig := new(big.Int).SetUint64(y64)

				want := new(big.Int).Add(aBig, bBig)
				want.Mod(want, qBig)
				testutils.FatalUnless(t, uint64(addMod(a, b, q)) == want.Uint64(),
					"addMod(%v, %v, %v) != %v", a, b, q, want)

				want.Sub(aBig, bBig)
				want.Mod(want, qBig)
				testutils.FatalUnless(t, uint64(subMod(a, b, q)) == want.Uint64(),
					"subMod(%v, %v, %v) != %v", a, b, q, want)

				want.Mul(aBig, bBig)
				want.Mod(want, qBig)
				testutils.FatalUnless(t, uint64(mulModWide(a, b, q)) == want.Uint64(),
					"mulModWide(%v, %v, %v) != %v", a, b, q, want)
			}
		}
	}
}

// The uint8 ring is small enough to check the kernels exhaustively.
func TestKernelsExhaustiveUint8(t *testing.T) {
	for _, q := range []uint8{1, 2, 13, 254, 255} {
		for a := uint64(0); a < uint64(q); a++ {
			for b := uint64(0); b < uint64(q); b++ {
				testutils.FatalUnless(t, uint64(addMod(uint8(a), uint8(b), q)) == (a+b)%uint64(q),
					"addMod broken at %v+%v mod %v", a, b, q)
				testutils.FatalUnless(t, uint64(subMod(uint8(a), uint8(b), q)) == (a+uint64(q)-b)%uint64(q),
					"subMod broken at %v-%v mod %v", a, b, q)
				testutils.FatalUnless(t, uint64(mulModWide(uint8(a), uint8(b), q)) == (a*b)%uint64(q),
					"mulModWide broken at %v*%v mod %v", a, b, q)
			}
		}
	}
}

// Property-based check of the 64-bit limb-decomposition fallback, where
// the interesting carry behavior lives.
func TestKernelsUint64Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	const q = uint64(18446744069414584321)
	qBig := new(big.Int).SetUint64(q)

	properties.Property("mulModWide agrees with big.Int", prop.ForAll(
		func(a, b uint64) bool {
			a, b = a%q, b%q
			want := new(big.Int).SetUint64(a)
			want.Mul(want, new(big.Int).SetUint64(b))
			want.Mod(want, qBig)
			return mulModWide(a, b, q) == want.Uint64()
		},
		gen.UInt64(), gen.UInt64(),
	))

	properties.Property("addMod and subMod invert each other", prop.ForAll(
		func(a, b uint64) bool {
			a, b = a%q, b%q
			return subMod(addMod(a, b, q), b, q) == a
		},
		gen.UInt64(), gen.UInt64(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
