package qsim

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func sampleStates() []QuantumState {
	return []QuantumState{
		Zero(),
		One(),
		PhasedOne(),
		QuarterTurn(),
		BackQuarterTurn(),
		{alpha: invSqrt2, beta: complex(0, invSqrt2)},
		{alpha: 0.6, beta: 0.8i},
		{alpha: complex(0.6, 0), beta: complex(0, -0.8)},
	}
}

func TestGateTable(t *testing.T) {
	Convey("Given the gate table", t, func() {
		Convey("Every gate should be unitary", func() {
			for _, g := range Gates() {
				So(g.IsUnitary(), ShouldBeTrue)
			}
		})

		Convey("Gates should enumerate the closed set in order", func() {
			So(Gates(), ShouldResemble, []Gate{
				GateNot, GateFlip, GatePhase, GateRotate, GateSuperposition,
			})
		})

		Convey("Gate names should be stable", func() {
			So(GateNot.String(), ShouldEqual, "NOT")
			So(GateSuperposition.String(), ShouldEqual, "SUPERPOSITION")
			So(Gate(42).String(), ShouldEqual, "Gate(42)")
		})

		Convey("An invalid tag should panic on Matrix", func() {
			So(func() { Gate(-1).Matrix() }, ShouldPanic)
		})
	})
}

func TestParseGate(t *testing.T) {
	Convey("Given gate names", t, func() {
		Convey("Canonical names should resolve case-insensitively", func() {
			g, err := ParseGate("superposition")
			So(err, ShouldBeNil)
			So(g, ShouldEqual, GateSuperposition)

			g, err = ParseGate(" Rotate ")
			So(err, ShouldBeNil)
			So(g, ShouldEqual, GateRotate)
		})

		Convey("Pauli and Hadamard letters should resolve", func() {
			for name, want := range map[string]Gate{
				"x": GateNot, "Y": GateFlip, "z": GatePhase, "H": GateSuperposition,
			} {
				g, err := ParseGate(name)
				So(err, ShouldBeNil)
				So(g, ShouldEqual, want)
			}
		})

		Convey("Unknown names should fail", func() {
			_, err := ParseGate("toffoli")
			So(errors.Is(err, ErrUnknownGate), ShouldBeTrue)
		})
	})
}

func TestApply(t *testing.T) {
	Convey("Given the NOT gate", t, func() {
		Convey("It should map Zero to One and One to Zero exactly", func() {
			one := Apply(GateNot, Zero())
			So(one.Alpha(), ShouldEqual, Amplitude(0))
			So(one.Beta(), ShouldEqual, Amplitude(1))

			zero := Not(One())
			So(zero.Alpha(), ShouldEqual, Amplitude(1))
			So(zero.Beta(), ShouldEqual, Amplitude(0))
		})

		Convey("It should be an involution", func() {
			for _, qs := range sampleStates() {
				So(Not(Not(qs)).Equal(qs), ShouldBeTrue)
			}
		})
	})

	Convey("Given the PHASE gate", t, func() {
		Convey("It should leave Zero unchanged", func() {
			So(GatePhase.Apply(Zero()).Equal(Zero()), ShouldBeTrue)
		})

		Convey("It should flip the phase of One", func() {
			So(GatePhase.Apply(One()).Equal(PhasedOne()), ShouldBeTrue)
		})
	})

	Convey("Given the FLIP gate", t, func() {
		Convey("It should send One to -i|0⟩", func() {
			So(GateFlip.Apply(One()).Equal(QuantumState{alpha: -1i, beta: 0}), ShouldBeTrue)
		})

		Convey("It should send Zero to i|1⟩", func() {
			So(GateFlip.Apply(Zero()).Equal(QuantumState{alpha: 0, beta: 1i}), ShouldBeTrue)
		})
	})

	Convey("Given the SUPERPOSITION gate", t, func() {
		Convey("It should put Zero and One into equal superposition", func() {
			plus := GateSuperposition.Apply(Zero())
			minus := GateSuperposition.Apply(One())

			So(plus.Equal(QuantumState{alpha: invSqrt2, beta: invSqrt2}), ShouldBeTrue)
			So(minus.Equal(QuantumState{alpha: invSqrt2, beta: -invSqrt2}), ShouldBeTrue)
			So(minus.Probability(BitOne), ShouldAlmostEqual, 0.5, Tolerance)
		})

		Convey("Applying it twice should return the input", func() {
			for _, qs := range sampleStates() {
				twice := GateSuperposition.Apply(GateSuperposition.Apply(qs))
				So(twice.Equal(qs), ShouldBeTrue)
			}
		})
	})

	Convey("Given the ROTATE gate", t, func() {
		Convey("It should rotate Zero onto the equal superposition", func() {
			So(GateRotate.Apply(Zero()).Equal(QuantumState{alpha: invSqrt2, beta: invSqrt2}), ShouldBeTrue)
		})

		Convey("Four applications should negate the state", func() {
			qs := One()
			for i := 0; i < 4; i++ {
				qs = GateRotate.Apply(qs)
			}
			So(qs.Equal(QuantumState{alpha: 0, beta: -1}), ShouldBeTrue)
		})
	})

	Convey("Given any gate and any valid state", t, func() {
		Convey("The result should stay normalized", func() {
			for _, g := range Gates() {
				for _, qs := range sampleStates() {
					So(g.Apply(qs).Norm(), ShouldAlmostEqual, 1, Tolerance)
				}
			}
		})

		Convey("The input state should not change", func() {
			qs := One()
			_ = GateSuperposition.Apply(qs)
			So(qs.Alpha(), ShouldEqual, Amplitude(0))
			So(qs.Beta(), ShouldEqual, Amplitude(1))
		})
	})
}

func TestMatrixString(t *testing.T) {
	Convey("Given the NOT matrix", t, func() {
		out := GateNot.Matrix().String()

		Convey("It should render a boxed 2x2 matrix", func() {
			So(out, ShouldStartWith, "┏")
			So(out, ShouldEndWith, "┛")
			So(out, ShouldContainSubstring, "┃ 0 + 0i 1 + 0i ┃")
			So(out, ShouldContainSubstring, "┃ 1 + 0i 0 + 0i ┃")
		})
	})
}
