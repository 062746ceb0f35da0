package qsim

import "strconv"

// Bit is a classical measurement outcome.
type Bit uint8

const (
	BitZero Bit = 0
	BitOne  Bit = 1
)

func (b Bit) String() string {
	return strconv.Itoa(int(b))
}

/*
Measure collapses qs to a classical bit using the Born rule in the
computational basis. p1 = |beta|^2 is clamped to [0, 1], one uniform draw u
is taken from src, and the outcome is BitOne iff u < p1.

The state itself is not modified; measurement here observes an outcome for
single-shot sampling and does not track the post-measurement state.
*/
func Measure(qs QuantumState, src RandomSource) Bit {
	p1 := clampProbability(qs.beta.MagnitudeSquared())

	if src.Float64() < p1 {
		return BitOne
	}

	return BitZero
}
