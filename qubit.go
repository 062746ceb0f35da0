package qsim

import (
	"fmt"
	"math"
)

// Tolerance bounds floating drift in normalization and equality checks.
const Tolerance = 1e-9

/*
QuantumState is a single qubit's state vector alpha|0⟩ + beta|1⟩.

States are immutable values. Gate application returns a fresh state, so
intermediate states can be shared and compared freely.
*/
type QuantumState struct {
	alpha Amplitude // |0⟩ amplitude
	beta  Amplitude // |1⟩ amplitude
}

/*
NewQuantumState validates the normalization law and returns the state.
It fails with an *InvalidStateError rather than renormalizing.
*/
func NewQuantumState(alpha, beta Amplitude) (QuantumState, error) {
	qs := QuantumState{alpha: alpha, beta: beta}

	if !qs.IsNormalized() {
		return QuantumState{}, &InvalidStateError{
			Alpha: alpha,
			Beta:  beta,
			Norm:  qs.Norm(),
		}
	}

	return qs, nil
}

// Zero returns |0⟩ = (1, 0).
func Zero() QuantumState {
	return QuantumState{alpha: 1, beta: 0}
}

// One returns |1⟩ = (0, 1).
func One() QuantumState {
	return QuantumState{alpha: 0, beta: 1}
}

// PhasedOne returns (0, -1), the result of PHASE on One. It is a state,
// not to be confused with GateFlip (Pauli-Y).
func PhasedOne() QuantumState {
	return QuantumState{alpha: 0, beta: -1}
}

// QuarterTurn returns (i, 0).
func QuarterTurn() QuantumState {
	return QuantumState{alpha: 1i, beta: 0}
}

// BackQuarterTurn returns (0, -i).
func BackQuarterTurn() QuantumState {
	return QuantumState{alpha: 0, beta: -1i}
}

func (qs QuantumState) Alpha() Amplitude {
	return qs.alpha
}

func (qs QuantumState) Beta() Amplitude {
	return qs.beta
}

// Norm returns |alpha|^2 + |beta|^2.
func (qs QuantumState) Norm() float64 {
	return qs.alpha.MagnitudeSquared() + qs.beta.MagnitudeSquared()
}

func (qs QuantumState) IsNormalized() bool {
	return math.Abs(qs.Norm()-1) <= Tolerance
}

/*
Probability returns the Born-rule probability of observing b when the state
is measured in the computational basis. The value is clamped to [0, 1] so
rounding never leaks out as a negative or >1 probability.
*/
func (qs QuantumState) Probability(b Bit) float64 {
	p1 := clampProbability(qs.beta.MagnitudeSquared())

	if b == BitOne {
		return p1
	}

	return 1 - p1
}

// Equal compares amplitudes componentwise within Tolerance.
func (qs QuantumState) Equal(other QuantumState) bool {
	return qs.alpha.approxEqual(other.alpha, Tolerance) &&
		qs.beta.approxEqual(other.beta, Tolerance)
}

func (qs QuantumState) String() string {
	return fmt.Sprintf("(%v)|0⟩ + (%v)|1⟩", qs.alpha, qs.beta)
}

func clampProbability(p float64) float64 {
	return math.Min(1, math.Max(0, p))
}
