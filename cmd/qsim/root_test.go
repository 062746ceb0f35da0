package main

import (
	"bytes"
	"errors"
	"os"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/theapemachine/qsim"
)

func execute(args ...string) (string, error) {
	var out bytes.Buffer

	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestRootCmd(t *testing.T) {
	Convey("Given the root command", t, func() {
		cmd := NewRootCmd()

		Convey("It should register every subcommand", func() {
			names := []string{}
			for _, sub := range cmd.Commands() {
				names = append(names, sub.Name())
			}
			So(names, ShouldContain, "states")
			So(names, ShouldContain, "gates")
			So(names, ShouldContain, "simulate")
		})
	})
}

func TestStatesCmd(t *testing.T) {
	Convey("Given the states command", t, func() {
		out, err := execute("states")

		Convey("It should print the basis states and their NOT images", func() {
			So(err, ShouldBeNil)
			So(out, ShouldContainSubstring, "Zero qubit\n  "+qsim.Zero().String())
			So(out, ShouldContainSubstring, "One qubit\n  "+qsim.One().String())
			So(out, ShouldContainSubstring, "Zero qubit with NOT gate\n  "+qsim.One().String())
			So(out, ShouldContainSubstring, "One qubit with NOT gate\n  "+qsim.Zero().String())
		})
	})
}

func TestGatesCmd(t *testing.T) {
	Convey("Given the gates command", t, func() {
		out, err := execute("gates")

		Convey("It should list every gate with its matrix", func() {
			So(err, ShouldBeNil)
			for _, g := range qsim.Gates() {
				So(out, ShouldContainSubstring, g.String())
				So(out, ShouldContainSubstring, g.Matrix().String())
			}
		})
	})
}

func TestSimulateCmd(t *testing.T) {
	Convey("Given the simulate command", t, func() {
		for _, key := range []string{"QSIM_TRIALS", "QSIM_WORKERS", "QSIM_SEED", "QSIM_REPORT_TOLERANCE"} {
			t.Setenv(key, "")
			os.Unsetenv(key)
		}

		Convey("Simulating One should observe only ones", func() {
			out, err := execute("simulate", "--input", "one", "--trials", "1000", "--seed", "7", "--plain")
			So(err, ShouldBeNil)
			So(out, ShouldContainSubstring, "trials : 1000")
			So(out, ShouldContainSubstring, "1      : 1000 observed 100.00% theoretical 100.00%")
		})

		Convey("Gates should be applied in order", func() {
			out, err := execute("simulate", "-i", "zero", "-g", "x", "-g", "not", "-n", "500", "--plain")
			So(err, ShouldBeNil)
			So(out, ShouldContainSubstring, "0      : 500 observed 100.00% theoretical 100.00%")
		})

		Convey("A superposition should report both outcomes", func() {
			out, err := execute("simulate", "-g", "superposition", "-n", "20000", "-w", "2", "-s", "3", "--plain")
			So(err, ShouldBeNil)
			So(out, ShouldContainSubstring, "theoretical 50.00%")
		})

		Convey("The styled report should be the default", func() {
			out, err := execute("simulate", "-i", "one", "-n", "10")
			So(err, ShouldBeNil)
			So(out, ShouldContainSubstring, "Simulation report")
			So(out, ShouldContainSubstring, "10 observed 100.00% theoretical 100.00%")
		})

		Convey("An unknown gate should fail", func() {
			_, err := execute("simulate", "-g", "toffoli")
			So(errors.Is(err, qsim.ErrUnknownGate), ShouldBeTrue)
		})

		Convey("The phased input should measure like One", func() {
			out, err := execute("simulate", "-i", "phased", "-n", "100", "--plain")
			So(err, ShouldBeNil)
			So(out, ShouldContainSubstring, "1      : 100 observed 100.00% theoretical 100.00%")
		})

		Convey("Flag overrides should take precedence over the environment", func() {
			t.Setenv("QSIM_TRIALS", "5")
			out, err := execute("simulate", "-i", "one", "-n", "40", "--plain")
			So(err, ShouldBeNil)
			So(out, ShouldContainSubstring, "trials : 40")
		})

		Convey("A malformed trial count should fail", func() {
			_, err := execute("simulate", "-n", "lots")
			So(err, ShouldNotBeNil)
		})

		Convey("An unknown input state should fail", func() {
			_, err := execute("simulate", "-i", "plus")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "unknown input state")
		})
	})
}
