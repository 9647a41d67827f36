package modring

import (
	"math/bits"
	"reflect"
	"sync"

	"github.com/hmseidel/modring/modring/errdata"
)

// This file implements the Montgomery arithmetic kernels: derivation of the
// per-modulus constants, the REDC reduction step and the REDC-based multiply.
//
// Throughout, R = 2^(bit width of T) is the Montgomery radix and q the (odd)
// modulus. A Montgomery representative of x is x*R mod q. REDC divides by one
// factor of R using only native-width multiplications, additions and a shift;
// a modulus-sized division never occurs.

// montConstants holds the derived per-(T, M) constants.
type montConstants[T Uint] struct {
	mPrime T // -q^-1 mod R, the REDC coefficient
	r2     T // R^2 mod q, multiplier for entering the Montgomery domain
	rModQ  T // R mod q, the Montgomery representative of 1
}

// montConstantCache memoizes montConstants per modulus tag type.
//
// Population is idempotent: concurrent first accesses may derive the constants
// more than once, but every derivation agrees, and LoadOrStore keeps a single
// winner. Correctness never depends on computing them exactly once.
var montConstantCache sync.Map // reflect.Type -> montConstants[T]

func montConstantsFor[T Uint, M Modulus[T]]() montConstants[T] {
	key := reflect.TypeFor[M]()
	if c, ok := montConstantCache.Load(key); ok {
		return c.(montConstants[T])
	}
	q := modulusOf[T, M]()
	c := montConstants[T]{
		mPrime: montCoeff(q),
		r2:     rSquared(q),
		rModQ:  rModulus(q),
	}
	actual, _ := montConstantCache.LoadOrStore(key, c)
	return actual.(montConstants[T])
}

// montCoeff derives the REDC coefficient q' with q*q' == -1 (mod R) by 2-adic
// Newton iteration: for odd q, q is its own inverse mod 8, and each iteration
// doubles the number of correct low bits, so 5 iterations cover all widths up
// to 64 bits.
//
// An even modulus has no inverse mod R; this is rejected here, at derivation
// time, rather than silently miscomputed into a wrong constant.
func montCoeff[T Uint](q T) T {
	if q&1 == 0 {
		panic(errdata.AddDataToError(ErrEvenModulus, ModulusData{Modulus: uint64(q)}))
	}
	inv := q
	for i := 0; i < 5; i++ {
		inv *= 2 - q*inv
	}
	return -inv
}

// rModulus computes R mod q. ^T(0) is R-1, and (R-1 mod q) + 1 cannot wrap
// since it is at most q <= R-1 for odd q > 1; the final reduction handles q == 1.
func rModulus[T Uint](q T) T {
	return ((^T(0) % q) + 1) % q
}

// rSquared computes R^2 mod q by starting from R mod q and doubling modularly
// once per bit of the width.
func rSquared[T Uint](q T) T {
	r := rModulus(q)
	for i := uint(0); i < bitWidth[T](); i++ {
		r = addMod(r, r, q)
	}
	return r
}

// redc performs one REDC step on a single value x in [0, q): it returns
// t = (x + ((x * mPrime) mod R) * q) / R, reduced once, which is x * R^-1 mod q.
//
// The multiplication x * mPrime wraps at the representation width, which is
// exactly the mod-R truncation. By construction the low word of the sum
// x + m*q is zero, so the division by R is the shift that drops it.
func redc[T Uint](x, q, mPrime T) T {
	switch any(x).(type) {
	case uint64:
		m := uint64(x) * uint64(mPrime)
		mHi, mLo := bits.Mul64(m, uint64(q))
		_, carry := bits.Add64(uint64(x), mLo, 0)
		t := mHi + carry // mHi <= q-1, so this cannot wrap
		if t >= uint64(q) {
			t -= uint64(q)
		}
		return T(t)
	default:
		// x + m*q <= (R-1) + (R-1)^2 < 2^64 even at 32-bit width.
		w := bitWidth[T]()
		m := x * mPrime
		t := (uint64(x) + uint64(m)*uint64(q)) >> w
		if t >= uint64(q) {
			t -= uint64(q)
		}
		return T(t)
	}
}

// montMul computes a * b * R^-1 mod q for a, b in [0, q): the full product is
// widened, then reduced by the same REDC step as redc. For Montgomery-domain
// operands (a = x*R, b = y*R) the result is the Montgomery representative of
// x*y, which is why multiplication never leaves the domain.
func montMul[T Uint](a, b, q, mPrime T) T {
	switch any(a).(type) {
	case uint64:
		hi, lo := bits.Mul64(uint64(a), uint64(b))
		m := lo * uint64(mPrime)
		mHi, mLo := bits.Mul64(m, uint64(q))
		_, carry := bits.Add64(lo, mLo, 0)
		t, wrapped := bits.Add64(hi, mHi, carry)
		if wrapped != 0 || t >= uint64(q) {
			t -= uint64(q)
		}
		return T(t)
	case uint32:
		// The product fits a uint64, but adding m*q can carry into bit 64.
		prod := uint64(a) * uint64(b)
		m := uint32(prod) * uint32(mPrime)
		lo, carry := bits.Add64(prod, uint64(m)*uint64(q), 0)
		t := carry<<32 | lo>>32
		if t >= uint64(q) {
			t -= uint64(q)
		}
		return T(t)
	default:
		// At 8 and 16 bits both the product and the REDC sum fit a uint64.
		w := bitWidth[T]()
		prod := uint64(a) * uint64(b)
		m := T(prod) * mPrime
		t := (prod + uint64(m)*uint64(q)) >> w
		if t >= uint64(q) {
			t -= uint64(q)
		}
		return T(t)
	}
}

// toMont moves a plain residue x in [0, q) into the Montgomery domain via one
// Montgomery multiplication by R^2 mod q.
func toMont[T Uint](x, q T, c montConstants[T]) T {
	return montMul(x, c.r2, q, c.mPrime)
}
