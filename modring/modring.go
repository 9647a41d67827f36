// Package modring implements a family of residue-ring element types: machine-width
// unsigned integers that wrap at a fixed modulus on every operation.
//
// The modulus is part of the *type*, not of the value: it is carried by a zero-size
// tag type implementing [Modulus]. Two elements can only be combined if they agree
// on both the representation width and the modulus tag, so mixing incompatible
// moduli is a compile-time error rather than a runtime miscomputation.
//
// Two interchangeable element kinds are provided. [Element] stores the residue
// directly. [MontgomeryElement] stores residue * R mod M for the power-of-two
// radix R = 2^(bit width of T), which makes repeated multiplication considerably
// cheaper at the cost of a one-time conversion at the domain boundary. Both kinds
// expose the same operation surface and convert into each other losslessly.
//
// All element values are immutable; every operation returns a new value and is
// safe to run concurrently without synchronization.
package modring

import "math/bits"

// Uint is the constraint for the supported representation widths.
//
// Note the absence of ~: the kernels dispatch on the exact dynamic type, so
// defined types with these underlying types are deliberately excluded.
type Uint interface {
	uint8 | uint16 | uint32 | uint64
}

// Modulus is implemented by zero-size tag types that bind a modulus constant to
// a Go type, e.g.
//
//	type F13 struct{}
//	func (F13) Modulus() uint8 { return 13 }
//
// The returned value must be positive and must not depend on external state.
// For [MontgomeryElement] it must additionally be odd.
type Modulus[T Uint] interface {
	Modulus() T
}

// bitWidth returns the number of bits of T. This is also log2 of the Montgomery
// radix R.
func bitWidth[T Uint]() uint {
	return uint(bits.OnesCount64(uint64(^T(0))))
}

// modulusOf reads the modulus off the tag type and rejects the zero modulus.
// All construction paths go through here.
func modulusOf[T Uint, M Modulus[T]]() T {
	var m M
	q := m.Modulus()
	if q == 0 {
		panic(ErrZeroModulus)
	}
	return q
}
