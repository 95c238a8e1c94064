package circuit_test

import (
	"fmt"

	"github.com/lowqbit/readout/circuit"
)

// ExampleCircuit_QASM prints the calibration circuit for basis state |10⟩
// on two qubits (X on qubit 1, then a full measurement).
func ExampleCircuit_QASM() {
	set, _ := circuit.CalibrationSet(2)
	fmt.Print(set[2].QASM())
	// Output:
	// OPENQASM 2.0;
	// include "qelib1.inc";
	//
	// qreg q[2];
	// creg c[2];
	//
	// x q[1];
	// measure q[0] -> c[0];
	// measure q[1] -> c[1];
}
