package qsim

import (
	"fmt"
	"math"
	"strconv"
)

/*
Amplitude is the complex coefficient of one basis state in a qubit's state
vector. On its own it carries no invariant; it only becomes meaningful once
paired with its sibling inside a QuantumState.
*/
type Amplitude complex128

// Re returns the real part.
func (a Amplitude) Re() float64 {
	return real(a)
}

// Im returns the imaginary part.
func (a Amplitude) Im() float64 {
	return imag(a)
}

/*
MagnitudeSquared returns |a|^2 = re*re + im*im, which is both the
probability contribution of the amplitude and the term used by the
normalization check.
*/
func (a Amplitude) MagnitudeSquared() float64 {
	re, im := real(a), imag(a)
	return re*re + im*im
}

// approxEqual compares two amplitudes componentwise within tol.
func (a Amplitude) approxEqual(b Amplitude, tol float64) bool {
	return math.Abs(real(a)-real(b)) <= tol && math.Abs(imag(a)-imag(b)) <= tol
}

// String renders the amplitude as "a + bi" or "a - bi".
func (a Amplitude) String() string {
	re, im := real(a), imag(a)
	sign := "+"
	if im < 0 {
		sign = "-"
		im = -im
	}
	return fmt.Sprintf("%s %s %si", formatFloat(re), sign, formatFloat(im))
}

func formatFloat(f float64) string {
	// -0 prints as 0
	if f == 0 {
		f = 0
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
