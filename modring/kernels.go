package modring

import "math/bits"

// This file implements the modular primitive kernels all element operations
// delegate to. Operands named a, b are always assumed to be already reduced to
// [0, q); the kernels preserve that invariant.

// addMod computes (a + b) mod q without intermediate overflow.
//
// a + b may wrap around the representation width; the wrapped sum is smaller
// than a in exactly that case, and subtracting q then yields the correct
// residue since a + b - q < q fits the width again.
func addMod[T Uint](a, b, q T) T {
	s := a + b
	if s < a || s >= q {
		s -= q
	}
	return s
}

// subMod computes (a - b) mod q.
func subMod[T Uint](a, b, q T) T {
	if a >= b {
		return a - b
	}
	// a - b wraps; adding q wraps back, leaving exactly a - b + q in [1, q).
	return a - b + q
}

// mulModWide computes (a * b) mod q by widening the product to double the
// operand width and reducing.
//
// uint8/uint16/uint32 widen exactly into a uint64 product. uint64 has no wider
// native type, so the maximum width falls back to limb decomposition:
// bits.Mul64 produces the 128-bit product as two 64-bit halves and bits.Rem64
// performs the 128-by-64 division. Since a, b < q, the high half is < q, so
// Rem64 cannot fault on quotient overflow.
func mulModWide[T Uint](a, b, q T) T {
	switch any(a).(type) {
	case uint64:
		hi, lo := bits.Mul64(uint64(a), uint64(b))
		return T(bits.Rem64(hi, lo, uint64(q)))
	default:
		return T(uint64(a) * uint64(b) % uint64(q))
	}
}
