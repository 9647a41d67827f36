// Package errdata attaches a typed data payload to errors.
//
// A wrapped error keeps its message and its place in the errors.Is chain and
// additionally satisfies [ErrorWithData] for the payload type, so callers can
// recover structured context (an offending divisor, a bad modulus) without
// parsing the message. Payloads are retrieved with [GetDataFromError], which
// walks the wrap chain.
package errdata

import "errors"

// ErrorWithData is an error carrying a payload of type DataType.
type ErrorWithData[DataType any] interface {
	error
	GetData() DataType
}

type wrappedError[DataType any] struct {
	base error
	data DataType
}

func (e *wrappedError[DataType]) Error() string {
	return e.base.Error()
}

func (e *wrappedError[DataType]) Unwrap() error {
	return e.base
}

func (e *wrappedError[DataType]) GetData() DataType {
	return e.data
}

// AddDataToError wraps base with the given payload. The result satisfies
// errors.Is(result, base). A nil base yields nil.
func AddDataToError[DataType any](base error, data DataType) ErrorWithData[DataType] {
	if base == nil {
		return nil
	}
	return &wrappedError[DataType]{base: base, data: data}
}

// GetDataFromError retrieves the first payload of type DataType found in err's
// wrap chain. ok reports whether one was found.
func GetDataFromError[DataType any](err error) (data DataType, ok bool) {
	for err != nil {
		if e, match := err.(ErrorWithData[DataType]); match {
			return e.GetData(), true
		}
		err = errors.Unwrap(err)
	}
	return
}
