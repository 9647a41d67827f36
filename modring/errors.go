package modring

import "errors"

// This file collects all errors originating from this package.
//
// Arithmetic misuse (division by zero, invalid configuration) panics with one
// of these values, possibly wrapped with additional data via [errdata]. Never
// compare panic values or returned errors for equality; use [errors.Is] and
// [errdata.GetDataFromError].

// ErrorPrefix is the prefix used by all error message strings originating from
// this package.
const ErrorPrefix = "modring / residue element: "

var (
	// ErrZeroModulus reports a modulus tag whose Modulus method returned 0.
	// Raised on the first construction of an element of the offending type.
	ErrZeroModulus = errors.New(ErrorPrefix + "modulus is zero")

	// ErrEvenModulus reports an even modulus used with a Montgomery element.
	// The power-of-two radix is not invertible modulo an even number, so the
	// REDC coefficient does not exist. Raised when the coefficient is derived.
	ErrEvenModulus = errors.New(ErrorPrefix + "Montgomery representation requires an odd modulus")

	// ErrDivisionByZero reports division by an element or integer with zero
	// representative.
	ErrDivisionByZero = errors.New(ErrorPrefix + "division by zero")

	// ErrDivisorOutOfRange reports an integer divisor that does not fit the
	// element's representation width. The panic value carries a [DivisorData].
	ErrDivisorOutOfRange = errors.New(ErrorPrefix + "integer divisor does not fit the representation width")

	// ErrCannotRepresentElement is wrapped by the errors returned from Int64
	// when the residue is outside the representable range. The returned error
	// carries a [RepresentativeData].
	ErrCannotRepresentElement = errors.New(ErrorPrefix + "residue not representable by the requested integer type")
)

// DivisorData is the payload attached to ErrDivisorOutOfRange panics.
type DivisorData struct {
	Divisor uint64
}

// ModulusData is the payload attached to ErrEvenModulus panics.
type ModulusData struct {
	Modulus uint64
}

// RepresentativeData is the payload attached to errors wrapping
// ErrCannotRepresentElement.
type RepresentativeData struct {
	Representative uint64
}
