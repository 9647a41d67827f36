package modring

import "golang.org/x/exp/constraints"

// This file holds the conversions between the two element kinds and the
// centralized integer promotion used by every constructor and mixed-operand
// helper. All three conversion paths are total; the only rejected combination,
// mismatched moduli, is already a type error.

// Montgomery converts a standard element into the Montgomery domain by one
// Montgomery multiplication with R^2 mod M.
func (x Element[T, M]) Montgomery() MontgomeryElement[T, M] {
	IncrementCallCounter("DomainConversions")
	q := modulusOf[T, M]()
	c := montConstantsFor[T, M]()
	return MontgomeryElement[T, M]{toMont(x.val, q, c)}
}

// Standard converts a Montgomery element back into the standard domain by one
// REDC step, which strips the factor R.
func (x MontgomeryElement[T, M]) Standard() Element[T, M] {
	IncrementCallCounter("DomainConversions")
	q := modulusOf[T, M]()
	c := montConstantsFor[T, M]()
	return Element[T, M]{redc(x.val, q, c.mPrime)}
}

// FromInteger constructs a standard element from any machine integer,
// collapsing the per-width/per-signedness constructor overloads into one
// promotion rule: non-negative values reduce directly, negative values reduce
// their magnitude and negate modularly.
func FromInteger[T Uint, M Modulus[T], I constraints.Integer](x I) Element[T, M] {
	if x < 0 {
		return FromInt64[T, M](int64(x))
	}
	return New[T, M](uint64(x))
}

// MontgomeryFromInteger is the Montgomery-domain counterpart of [FromInteger].
func MontgomeryFromInteger[T Uint, M Modulus[T], I constraints.Integer](x I) MontgomeryElement[T, M] {
	if x < 0 {
		return MontgomeryFromInt64[T, M](int64(x))
	}
	return NewMontgomery[T, M](uint64(x))
}
