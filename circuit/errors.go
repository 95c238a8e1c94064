package circuit

import "errors"

// ErrQubitIndex indicates a gate target outside [0, n).
var ErrQubitIndex = errors.New("circuit: qubit index out of range")
