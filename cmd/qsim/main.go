// Package main provides the qsim command.
//
// qsim prints canonical qubit states and gate matrices and runs measurement
// simulations that compare observed outcome frequencies against theory.
//
// Usage:
//
//	qsim states
//	qsim gates
//	qsim simulate --input one --gate superposition --trials 100000
package main

func main() {
	Execute()
}
