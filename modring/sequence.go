package modring

// ScalarSequence adapts a single value to the finite-sequence shape expected
// by generic bulk-processing code, yielding the value exactly once. The
// sequence is not restartable: after the single Next, it stays exhausted.
// It carries no data beyond the element itself.
type ScalarSequence[E any] struct {
	elem     E
	consumed bool
}

// Next returns the element and true on the first call, and the zero value and
// false on every later call.
func (s *ScalarSequence[E]) Next() (elem E, ok bool) {
	if s.consumed {
		return
	}
	s.consumed = true
	return s.elem, true
}

// Len returns the number of values Next will still yield: 1 before
// consumption, 0 after.
func (s *ScalarSequence[E]) Len() int {
	if s.consumed {
		return 0
	}
	return 1
}

// AsSequence returns a one-element sequence yielding x.
func (x Element[T, M]) AsSequence() *ScalarSequence[Element[T, M]] {
	return &ScalarSequence[Element[T, M]]{elem: x}
}

// AsSequence returns a one-element sequence yielding x.
func (x MontgomeryElement[T, M]) AsSequence() *ScalarSequence[MontgomeryElement[T, M]] {
	return &ScalarSequence[MontgomeryElement[T, M]]{elem: x}
}
