// Package circuit provides the minimal quantum-circuit model the readout
// calibration scheme needs: deterministic basis-state preparation (X gates)
// followed by a full measurement. It deliberately models nothing else (no
// entangling gates, no parametrized rotations): readout calibration
// prepares each qubit independently and any correlated readout error is
// absorbed into the aggregate confusion matrix rather than factorized away.
//
// CalibrationSet(n) builds the 2^n calibration circuits in basis-index order;
// QASM() serializes a circuit as OpenQASM 2.0 for backends that accept text
// programs.
package circuit
