package modring

import (
	"fmt"
	"math/big"
)

// MontgomeryElement is a residue modulo the modulus carried by the tag type M,
// stored as its Montgomery representative residue * R mod M for the radix
// R = 2^(bit width of T). The modulus must be odd.
//
// Addition, subtraction, negation and multiplication stay entirely inside the
// Montgomery domain; multiplication is the operation this representation
// optimizes. Division, parity and ordering have no cheap Montgomery-domain
// formulation and pay one conversion through the standard domain per call,
// which is acceptable when they are rare relative to multiplication.
//
// The zero value is the ring's zero (0 * R == 0). Values are immutable and
// compare correctly with ==.
type MontgomeryElement[T Uint, M Modulus[T]] struct {
	val T // invariant: 0 <= val < M's modulus; encodes residue * R mod M
}

// NewMontgomery constructs the Montgomery element representing x mod M:
// the input is reduced at full width, narrowed and transformed into the
// Montgomery domain.
func NewMontgomery[T Uint, M Modulus[T]](x uint64) MontgomeryElement[T, M] {
	q := modulusOf[T, M]()
	c := montConstantsFor[T, M]()
	return MontgomeryElement[T, M]{toMont(T(x%uint64(q)), q, c)}
}

// MontgomeryFromInt64 constructs the Montgomery element representing x mod M,
// promoting negative inputs by magnitude reduction and modular negation.
func MontgomeryFromInt64[T Uint, M Modulus[T]](x int64) MontgomeryElement[T, M] {
	mag := uint64(x)
	if x < 0 {
		mag = -mag
	}
	e := NewMontgomery[T, M](mag)
	if x < 0 {
		e = e.Neg()
	}
	return e
}

// MontgomeryFromBigInt constructs the Montgomery element representing x mod M.
func MontgomeryFromBigInt[T Uint, M Modulus[T]](x *big.Int) MontgomeryElement[T, M] {
	return FromBigInt[T, M](x).Montgomery()
}

// MontgomeryZero returns the additive neutral element.
func MontgomeryZero[T Uint, M Modulus[T]]() MontgomeryElement[T, M] {
	montConstantsFor[T, M]() // configuration check only
	return MontgomeryElement[T, M]{}
}

// MontgomeryOne returns the multiplicative neutral element, whose Montgomery
// representative is R mod M.
func MontgomeryOne[T Uint, M Modulus[T]]() MontgomeryElement[T, M] {
	return MontgomeryElement[T, M]{montConstantsFor[T, M]().rModQ}
}

// Add returns x + y mod M. Addition is linear, so it works on Montgomery
// representatives unchanged.
func (x MontgomeryElement[T, M]) Add(y MontgomeryElement[T, M]) MontgomeryElement[T, M] {
	IncrementCallCounter("AddSub")
	var m M
	return MontgomeryElement[T, M]{addMod(x.val, y.val, m.Modulus())}
}

// Sub returns x - y mod M.
func (x MontgomeryElement[T, M]) Sub(y MontgomeryElement[T, M]) MontgomeryElement[T, M] {
	IncrementCallCounter("AddSub")
	var m M
	return MontgomeryElement[T, M]{subMod(x.val, y.val, m.Modulus())}
}

// Neg returns -x mod M.
func (x MontgomeryElement[T, M]) Neg() MontgomeryElement[T, M] {
	var m M
	return MontgomeryElement[T, M]{subMod(0, x.val, m.Modulus())}
}

// Double returns 2*x mod M.
func (x MontgomeryElement[T, M]) Double() MontgomeryElement[T, M] {
	return x.Add(x)
}

// Mul returns x * y mod M via REDC, staying in the Montgomery domain: the
// factor R^-1 introduced by the reduction cancels one of the two R factors of
// the operands.
func (x MontgomeryElement[T, M]) Mul(y MontgomeryElement[T, M]) MontgomeryElement[T, M] {
	IncrementCallCounter("Muls")
	q := modulusOf[T, M]()
	c := montConstantsFor[T, M]()
	return MontgomeryElement[T, M]{montMul(x.val, y.val, q, c.mPrime)}
}

// Square returns x * x mod M.
func (x MontgomeryElement[T, M]) Square() MontgomeryElement[T, M] {
	return x.Mul(x)
}

// DivRem divides the standard-domain representatives: both operands leave the
// Montgomery domain, divide as plain integers, and the results re-enter the
// domain through the constructor. Panics with [ErrDivisionByZero] if y is zero.
func (x MontgomeryElement[T, M]) DivRem(y MontgomeryElement[T, M]) (quo, rem MontgomeryElement[T, M]) {
	q, r := x.Standard().DivRem(y.Standard())
	return q.Montgomery(), r.Montgomery()
}

// Div returns the quotient part of DivRem.
func (x MontgomeryElement[T, M]) Div(y MontgomeryElement[T, M]) MontgomeryElement[T, M] {
	quo, _ := x.DivRem(y)
	return quo
}

// IsZero checks whether the element is 0. Zero's Montgomery representative is
// zero, so no conversion is needed.
func (x MontgomeryElement[T, M]) IsZero() bool {
	return x.val == 0
}

// IsOne checks whether the element is 1.
func (x MontgomeryElement[T, M]) IsOne() bool {
	return x == MontgomeryOne[T, M]()
}

// IsOdd checks the parity of the standard-domain representative, not of the
// Montgomery word.
func (x MontgomeryElement[T, M]) IsOdd() bool {
	return x.Standard().IsOdd()
}

// IsEqual checks whether x and y represent the same residue. Montgomery
// representatives are canonical in [0, M), so this is plain ==.
func (x MontgomeryElement[T, M]) IsEqual(y MontgomeryElement[T, M]) bool {
	return x == y
}

// Cmp compares standard-domain representatives, returning -1, 0 or +1, so the
// order agrees with the standard element's order.
func (x MontgomeryElement[T, M]) Cmp(y MontgomeryElement[T, M]) int {
	return x.Standard().Cmp(y.Standard())
}

// Less reports x < y on standard-domain representatives.
func (x MontgomeryElement[T, M]) Less(y MontgomeryElement[T, M]) bool {
	return x.Cmp(y) < 0
}

// LessOrEqual reports x <= y on standard-domain representatives.
func (x MontgomeryElement[T, M]) LessOrEqual(y MontgomeryElement[T, M]) bool {
	return x.Cmp(y) <= 0
}

// Greater reports x > y on standard-domain representatives.
func (x MontgomeryElement[T, M]) Greater(y MontgomeryElement[T, M]) bool {
	return x.Cmp(y) > 0
}

// GreaterOrEqual reports x >= y on standard-domain representatives.
func (x MontgomeryElement[T, M]) GreaterOrEqual(y MontgomeryElement[T, M]) bool {
	return x.Cmp(y) >= 0
}

// AddUint64 returns x + y mod M, promoting y into the element type first.
func (x MontgomeryElement[T, M]) AddUint64(y uint64) MontgomeryElement[T, M] {
	return x.Add(NewMontgomery[T, M](y))
}

// AddInt64 returns x + y mod M for a possibly negative y.
func (x MontgomeryElement[T, M]) AddInt64(y int64) MontgomeryElement[T, M] {
	return x.Add(MontgomeryFromInt64[T, M](y))
}

// SubUint64 returns x - y mod M.
func (x MontgomeryElement[T, M]) SubUint64(y uint64) MontgomeryElement[T, M] {
	return x.Sub(NewMontgomery[T, M](y))
}

// SubInt64 returns x - y mod M.
func (x MontgomeryElement[T, M]) SubInt64(y int64) MontgomeryElement[T, M] {
	return x.Sub(MontgomeryFromInt64[T, M](y))
}

// MulUint64 returns x * y mod M.
func (x MontgomeryElement[T, M]) MulUint64(y uint64) MontgomeryElement[T, M] {
	return x.Mul(NewMontgomery[T, M](y))
}

// MulInt64 returns x * y mod M.
func (x MontgomeryElement[T, M]) MulInt64(y int64) MontgomeryElement[T, M] {
	return x.Mul(MontgomeryFromInt64[T, M](y))
}

// DivUint64 divides the standard-domain representative by the plain integer y,
// with the same divisor constraints as [Element.DivUint64].
func (x MontgomeryElement[T, M]) DivUint64(y uint64) MontgomeryElement[T, M] {
	return x.Standard().DivUint64(y).Montgomery()
}

// DivInt64 divides by a possibly negative integer, dividing by the magnitude
// and flipping the quotient's sign modularly.
func (x MontgomeryElement[T, M]) DivInt64(y int64) MontgomeryElement[T, M] {
	return x.Standard().DivInt64(y).Montgomery()
}

// Rep returns the raw stored word. Note that this is the Montgomery-domain
// representative residue * R mod M, not the residue itself.
func (x MontgomeryElement[T, M]) Rep() T {
	return x.val
}

// Uint64 returns the residue (standard domain) as a uint64.
func (x MontgomeryElement[T, M]) Uint64() uint64 {
	return x.Standard().Uint64()
}

// Int64 returns the residue as an int64, or an error wrapping
// [ErrCannotRepresentElement] if it exceeds the int64 range.
func (x MontgomeryElement[T, M]) Int64() (int64, error) {
	return x.Standard().Int64()
}

// BigInt returns a new big.Int holding the residue.
func (x MontgomeryElement[T, M]) BigInt() *big.Int {
	return x.Standard().BigInt()
}

// String renders the standard-domain representative with a suffix identifying
// the modulus and the representation. Debugging output only.
func (x MontgomeryElement[T, M]) String() string {
	var m M
	return fmt.Sprintf("%d mod %d (Montgomery)", x.Standard().Rep(), m.Modulus())
}

// Format satisfies fmt.Formatter by delegating numeric verbs to the
// standard-domain representative. Defined on a value receiver.
func (x MontgomeryElement[T, M]) Format(s fmt.State, ch rune) {
	x.BigInt().Format(s, ch)
}
