package modring

import (
	"cmp"
	"fmt"
	"math/big"

	"github.com/hmseidel/modring/modring/errdata"
	"github.com/hmseidel/modring/internal/callcounters"
)

// Benchmarking only:

var _ = callcounters.CreateHierarchicalCallCounter("RingOps", "Ring operations", "")
var _ = callcounters.CreateHierarchicalCallCounter("AddSub", "Additions and subtractions", "RingOps")
var _ = callcounters.CreateHierarchicalCallCounter("Muls", "Multiplications", "RingOps")
var _ = callcounters.CreateHierarchicalCallCounter("Divisions", "", "RingOps")
var _ = callcounters.CreateHierarchicalCallCounter("DomainConversions", "Montgomery domain crossings", "RingOps")

// Element is a residue modulo the modulus carried by the tag type M, stored
// directly as its canonical representative.
//
// The zero value is the ring's zero. Elements are immutable: every operation
// returns a new value, and values of the same type compare correctly with ==.
type Element[T Uint, M Modulus[T]] struct {
	val T // invariant: 0 <= val < M's modulus
}

// New constructs the element representing x mod M. The reduction happens at
// the full uint64 width before narrowing to T, since x need not fit T.
func New[T Uint, M Modulus[T]](x uint64) Element[T, M] {
	q := modulusOf[T, M]()
	return Element[T, M]{T(x % uint64(q))}
}

// FromInt64 constructs the element representing x mod M. Negative inputs are
// promoted by reducing the magnitude and negating modularly.
func FromInt64[T Uint, M Modulus[T]](x int64) Element[T, M] {
	mag := uint64(x)
	if x < 0 {
		mag = -mag
	}
	e := New[T, M](mag)
	if x < 0 {
		e = e.Neg()
	}
	return e
}

// FromBigInt constructs the element representing x mod M. The value of x does
// not have to be in [0, M) and may be negative; big.Int's Mod already yields
// the non-negative residue.
func FromBigInt[T Uint, M Modulus[T]](x *big.Int) Element[T, M] {
	q := modulusOf[T, M]()
	var r big.Int
	r.Mod(x, new(big.Int).SetUint64(uint64(q)))
	return Element[T, M]{T(r.Uint64())}
}

// Zero returns the additive neutral element.
func Zero[T Uint, M Modulus[T]]() Element[T, M] {
	modulusOf[T, M]() // configuration check only
	return Element[T, M]{}
}

// One returns the multiplicative neutral element.
func One[T Uint, M Modulus[T]]() Element[T, M] {
	q := modulusOf[T, M]()
	return Element[T, M]{1 % q}
}

// Add returns x + y mod M.
func (x Element[T, M]) Add(y Element[T, M]) Element[T, M] {
	IncrementCallCounter("AddSub")
	var m M
	return Element[T, M]{addMod(x.val, y.val, m.Modulus())}
}

// Sub returns x - y mod M.
func (x Element[T, M]) Sub(y Element[T, M]) Element[T, M] {
	IncrementCallCounter("AddSub")
	var m M
	return Element[T, M]{subMod(x.val, y.val, m.Modulus())}
}

// Neg returns -x mod M, i.e. zero - x.
func (x Element[T, M]) Neg() Element[T, M] {
	var m M
	return Element[T, M]{subMod(0, x.val, m.Modulus())}
}

// Double returns 2*x mod M.
func (x Element[T, M]) Double() Element[T, M] {
	return x.Add(x)
}

// Mul returns x * y mod M.
func (x Element[T, M]) Mul(y Element[T, M]) Element[T, M] {
	IncrementCallCounter("Muls")
	var m M
	return Element[T, M]{mulModWide(x.val, y.val, m.Modulus())}
}

// Square returns x * x mod M.
func (x Element[T, M]) Square() Element[T, M] {
	return x.Mul(x)
}

// DivRem performs ordinary integer division of the representatives and returns
// quotient and remainder, satisfying x = y*quo + rem with 0 <= rem < y.
//
// This is deliberately NOT multiplication by a modular inverse: an inverse
// need not exist for a composite modulus. Panics with [ErrDivisionByZero] if
// y is zero.
func (x Element[T, M]) DivRem(y Element[T, M]) (quo, rem Element[T, M]) {
	IncrementCallCounter("Divisions")
	if y.val == 0 {
		panic(ErrDivisionByZero)
	}
	return Element[T, M]{x.val / y.val}, Element[T, M]{x.val % y.val}
}

// Div returns the quotient part of DivRem.
func (x Element[T, M]) Div(y Element[T, M]) Element[T, M] {
	quo, _ := x.DivRem(y)
	return quo
}

// IsZero checks whether the element is 0.
func (x Element[T, M]) IsZero() bool {
	return x.val == 0
}

// IsOne checks whether the element is 1.
func (x Element[T, M]) IsOne() bool {
	var m M
	return x.val == 1%m.Modulus()
}

// IsOdd checks whether the representative is odd.
func (x Element[T, M]) IsOdd() bool {
	return x.val&1 == 1
}

// IsEqual checks whether x and y represent the same residue. Since
// representatives are canonical, this is plain ==.
func (x Element[T, M]) IsEqual(y Element[T, M]) bool {
	return x == y
}

// Cmp compares the representatives, returning -1, 0 or +1.
//
// The ring itself has no canonical order; this is a convenience total order
// on representatives for algorithms that need one.
func (x Element[T, M]) Cmp(y Element[T, M]) int {
	return cmp.Compare(x.val, y.val)
}

// Less reports x < y on representatives.
func (x Element[T, M]) Less(y Element[T, M]) bool { return x.val < y.val }

// LessOrEqual reports x <= y on representatives.
func (x Element[T, M]) LessOrEqual(y Element[T, M]) bool { return x.val <= y.val }

// Greater reports x > y on representatives.
func (x Element[T, M]) Greater(y Element[T, M]) bool { return x.val > y.val }

// GreaterOrEqual reports x >= y on representatives.
func (x Element[T, M]) GreaterOrEqual(y Element[T, M]) bool { return x.val >= y.val }

// AddUint64 returns x + y mod M, promoting y into the element type first.
func (x Element[T, M]) AddUint64(y uint64) Element[T, M] {
	return x.Add(New[T, M](y))
}

// AddInt64 returns x + y mod M for a possibly negative y.
func (x Element[T, M]) AddInt64(y int64) Element[T, M] {
	return x.Add(FromInt64[T, M](y))
}

// SubUint64 returns x - y mod M.
func (x Element[T, M]) SubUint64(y uint64) Element[T, M] {
	return x.Sub(New[T, M](y))
}

// SubInt64 returns x - y mod M.
func (x Element[T, M]) SubInt64(y int64) Element[T, M] {
	return x.Sub(FromInt64[T, M](y))
}

// MulUint64 returns x * y mod M.
func (x Element[T, M]) MulUint64(y uint64) Element[T, M] {
	return x.Mul(New[T, M](y))
}

// MulInt64 returns x * y mod M.
func (x Element[T, M]) MulInt64(y int64) Element[T, M] {
	return x.Mul(FromInt64[T, M](y))
}

// DivUint64 divides the representative by the plain integer y. Unlike the
// additive and multiplicative promotions, the divisor is NOT reduced modulo M;
// it must fit the representation width, otherwise the call panics with
// [ErrDivisorOutOfRange] carrying a [DivisorData].
func (x Element[T, M]) DivUint64(y uint64) Element[T, M] {
	modulusOf[T, M]()
	if y == 0 {
		panic(ErrDivisionByZero)
	}
	if y > uint64(^T(0)) {
		panic(errdata.AddDataToError(ErrDivisorOutOfRange, DivisorData{Divisor: y}))
	}
	return Element[T, M]{x.val / T(y)}
}

// DivInt64 divides by a possibly negative integer. A negative divisor divides
// by the magnitude and flips the sign of the quotient modularly, rather than
// operating on a negative number.
func (x Element[T, M]) DivInt64(y int64) Element[T, M] {
	mag := uint64(y)
	if y < 0 {
		mag = -mag
	}
	quo := x.DivUint64(mag)
	if y < 0 {
		quo = quo.Neg()
	}
	return quo
}

// Rep returns the raw stored representative. For the standard element this is
// the residue itself.
func (x Element[T, M]) Rep() T {
	return x.val
}

// Uint64 returns the residue as a uint64. This is always exact.
func (x Element[T, M]) Uint64() uint64 {
	return uint64(x.val)
}

// Int64 returns the residue as an int64, or an error wrapping
// [ErrCannotRepresentElement] if it exceeds the int64 range (possible only at
// 64-bit width). The failing representative can be recovered from the error
// with errdata.GetDataFromError[RepresentativeData].
func (x Element[T, M]) Int64() (int64, error) {
	v := uint64(x.val)
	if v > 1<<63-1 {
		return 0, errdata.AddDataToError(ErrCannotRepresentElement, RepresentativeData{Representative: v})
	}
	return int64(v), nil
}

// BigInt returns a new big.Int holding the residue.
func (x Element[T, M]) BigInt() *big.Int {
	return new(big.Int).SetUint64(uint64(x.val))
}

// String renders the representative with a suffix identifying the modulus.
// Debugging output only, not a parseable format.
func (x Element[T, M]) String() string {
	var m M
	return fmt.Sprintf("%d mod %d", x.val, m.Modulus())
}

// Format satisfies fmt.Formatter by delegating numeric verbs to the
// representative. Defined on a value receiver.
func (x Element[T, M]) Format(s fmt.State, ch rune) {
	x.BigInt().Format(s, ch)
}
