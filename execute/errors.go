package execute

import "errors"

var (
	// ErrNoCircuits indicates an empty circuit batch.
	ErrNoCircuits = errors.New("execute: no circuits to execute")
	// ErrNilCircuit indicates a nil circuit inside a batch.
	ErrNilCircuit = errors.New("execute: nil circuit in batch")
	// ErrShotCount indicates a non-positive shot count.
	ErrShotCount = errors.New("execute: shots must be >= 1")
	// ErrBadNoise indicates a noise model that is malformed or does not
	// cover the circuit's register.
	ErrBadNoise = errors.New("execute: invalid readout-noise model")
)
