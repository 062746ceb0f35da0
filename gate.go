package qsim

import (
	"fmt"
	"math"
	"strings"
)

/*
Gate tags one of the fixed, named single-qubit unitaries. The set is closed:
every tag maps to an immutable Matrix and there is no runtime registration.
Sequential application means calling Apply more than once.
*/
type Gate int

const (
	// GateNot is Pauli X: swaps the |0⟩ and |1⟩ amplitudes.
	GateNot Gate = iota
	// GateFlip is Pauli Y: (alpha, beta) -> (-i beta, i alpha).
	GateFlip
	// GatePhase is Pauli Z: flips the phase of |1⟩.
	GatePhase
	// GateRotate is a quarter rotation about Y, 1/√2 [[1, -1], [1, 1]].
	GateRotate
	// GateSuperposition is the Hadamard gate, 1/√2 [[1, 1], [1, -1]].
	GateSuperposition
)

// Matrix is a 2x2 complex matrix in row-major order.
type Matrix [2][2]Amplitude

const invSqrt2 = 1 / math.Sqrt2

var gateMatrices = [...]Matrix{
	GateNot: {
		{0, 1},
		{1, 0},
	},
	GateFlip: {
		{0, -1i},
		{1i, 0},
	},
	GatePhase: {
		{1, 0},
		{0, -1},
	},
	GateRotate: {
		{invSqrt2, -invSqrt2},
		{invSqrt2, invSqrt2},
	},
	GateSuperposition: {
		{invSqrt2, invSqrt2},
		{invSqrt2, -invSqrt2},
	},
}

var gateNames = [...]string{
	GateNot:           "NOT",
	GateFlip:          "FLIP",
	GatePhase:         "PHASE",
	GateRotate:        "ROTATE",
	GateSuperposition: "SUPERPOSITION",
}

var gateAliases = map[string]Gate{
	"X": GateNot,
	"Y": GateFlip,
	"Z": GatePhase,
	"H": GateSuperposition,
}

// A non-unitary table entry would break normalization after every Apply.
func init() {
	for _, g := range Gates() {
		if !g.IsUnitary() {
			panic(fmt.Sprintf("qsim: gate %s is not unitary", g))
		}
	}
}

// Gates returns the closed gate set in declaration order.
func Gates() []Gate {
	gates := make([]Gate, len(gateMatrices))
	for i := range gateMatrices {
		gates[i] = Gate(i)
	}
	return gates
}

/*
ParseGate looks a gate up by name. Matching is case-insensitive and also
accepts the conventional single-letter names X, Y, Z and H.
*/
func ParseGate(name string) (Gate, error) {
	key := strings.ToUpper(strings.TrimSpace(name))

	for i, n := range gateNames {
		if n == key {
			return Gate(i), nil
		}
	}

	if g, ok := gateAliases[key]; ok {
		return g, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownGate, name)
}

func (g Gate) valid() bool {
	return g >= 0 && int(g) < len(gateMatrices)
}

// Matrix returns the gate's constant matrix. An out-of-range tag is a
// programming error and panics.
func (g Gate) Matrix() Matrix {
	if !g.valid() {
		panic(fmt.Sprintf("qsim: invalid gate tag %d", int(g)))
	}
	return gateMatrices[g]
}

func (g Gate) String() string {
	if !g.valid() {
		return fmt.Sprintf("Gate(%d)", int(g))
	}
	return gateNames[g]
}

// IsUnitary reports whether M†M equals the identity within Tolerance.
func (g Gate) IsUnitary() bool {
	m := g.Matrix()

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			var sum Amplitude
			for k := 0; k < 2; k++ {
				sum += conj(m[k][i]) * m[k][j]
			}

			var want Amplitude
			if i == j {
				want = 1
			}

			if !sum.approxEqual(want, Tolerance) {
				return false
			}
		}
	}

	return true
}

/*
Apply multiplies the gate matrix with the state vector and returns the new
state:

	[m00 m01] [alpha]   [m00*alpha + m01*beta]
	[m10 m11] [beta ] = [m10*alpha + m11*beta]

The result is not re-validated; the gate table is unitary by construction,
so a normalized input always yields a normalized output.
*/
func (g Gate) Apply(qs QuantumState) QuantumState {
	m := g.Matrix()

	return QuantumState{
		alpha: m[0][0]*qs.alpha + m[0][1]*qs.beta,
		beta:  m[1][0]*qs.alpha + m[1][1]*qs.beta,
	}
}

// Apply is the function form of Gate.Apply.
func Apply(g Gate, qs QuantumState) QuantumState {
	return g.Apply(qs)
}

// Not is shorthand for Apply(GateNot, qs).
func Not(qs QuantumState) QuantumState {
	return GateNot.Apply(qs)
}

func (m Matrix) String() string {
	cells := [2][2]string{}
	width := 0

	for i := range m {
		for j := range m[i] {
			cells[i][j] = m[i][j].String()
			width = max(width, len(cells[i][j]))
		}
	}

	inner := 2*width + 3
	var sb strings.Builder

	sb.WriteString("┏" + strings.Repeat(" ", inner) + "┓\n")
	for _, row := range cells {
		fmt.Fprintf(&sb, "┃ %-*s %-*s ┃\n", width, row[0], width, row[1])
	}
	sb.WriteString("┗" + strings.Repeat(" ", inner) + "┛")

	return sb.String()
}

func conj(a Amplitude) Amplitude {
	return Amplitude(complex(real(a), -imag(a)))
}
