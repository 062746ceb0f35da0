package qsim

import (
	"strings"

	"github.com/theapemachine/errnie"
)

/*
Register is a fixed-length, zero-indexed sequence of independent qubits.
It is the sole owner of its entries: applying a gate replaces the addressed
slot with a new state and leaves every other slot untouched. No
entanglement between entries is modeled.
*/
type Register struct {
	qubits []QuantumState
}

// NewRegister creates size qubits, all |0⟩. A size of zero is valid.
func NewRegister(size uint) *Register {
	qubits := make([]QuantumState, size)
	for i := range qubits {
		qubits[i] = Zero()
	}

	return &Register{qubits: qubits}
}

func (r *Register) Len() uint {
	return uint(len(r.qubits))
}

func (r *Register) IsEmpty() bool {
	return len(r.qubits) == 0
}

// Get returns the state at index or an *IndexOutOfRangeError.
func (r *Register) Get(index uint) (QuantumState, error) {
	if index >= r.Len() {
		return QuantumState{}, &IndexOutOfRangeError{Index: index, Length: r.Len()}
	}

	return r.qubits[index], nil
}

// Apply replaces the qubit at index with g applied to it.
func (r *Register) Apply(g Gate, index uint) error {
	qs, err := r.Get(index)
	if err != nil {
		errnie.Warn("Register.Apply - %s on qubit %d: %v", g, index, err)
		return err
	}

	r.qubits[index] = g.Apply(qs)
	errnie.Debug("Register.Apply - %s on qubit %d -> %v", g, index, r.qubits[index])

	return nil
}

// States returns a copy of the register's entries.
func (r *Register) States() []QuantumState {
	states := make([]QuantumState, len(r.qubits))
	copy(states, r.qubits)
	return states
}

func (r *Register) String() string {
	parts := make([]string, len(r.qubits))
	for i, qs := range r.qubits {
		parts[i] = qs.String()
	}

	return "<" + strings.Join(parts, ", ") + ">"
}
