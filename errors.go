package qsim

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidState    = errors.New("invalid quantum state")
	ErrIndexOutOfRange = errors.New("register index out of range")
	ErrUnknownGate     = errors.New("unknown gate")
)

/*
InvalidStateError is returned when a pair of amplitudes does not satisfy
|alpha|^2 + |beta|^2 == 1 within Tolerance. Construction fails instead of
renormalizing, so callers never hold a physically invalid state.
*/
type InvalidStateError struct {
	Alpha Amplitude
	Beta  Amplitude
	Norm  float64
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf(
		"%v: |%v|^2 + |%v|^2 = %g, want 1",
		ErrInvalidState, e.Alpha, e.Beta, e.Norm,
	)
}

func (e *InvalidStateError) Is(target error) bool {
	return target == ErrInvalidState
}

// IndexOutOfRangeError reports a register access past its fixed length.
type IndexOutOfRangeError struct {
	Index  uint
	Length uint
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("%v: index %d, length %d", ErrIndexOutOfRange, e.Index, e.Length)
}

func (e *IndexOutOfRangeError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}
