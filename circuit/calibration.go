package circuit

import "github.com/lowqbit/readout/basis"

// CalibrationSet builds the 2^n readout-calibration circuits, ordered by
// basis index. Circuit j flips qubit k for every set bit k of j (bit 0 is
// the least-significant bit of j and targets qubit 0), then measures all
// qubits. Repeated calls with the same n produce identical sets.
//
// Errors: basis.ErrQubitCount.
func CalibrationSet(n int) ([]*Circuit, error) {
	if err := basis.ValidateQubits(n); err != nil {
		return nil, err
	}
	set := make([]*Circuit, basis.Dim(n))
	for j := range set {
		c, err := New(n)
		if err != nil {
			return nil, err
		}
		for k := 0; k < n; k++ {
			if j>>uint(k)&1 == 1 {
				if err = c.X(k); err != nil {
					return nil, err
				}
			}
		}
		c.MeasureAll()
		set[j] = c
	}
	return set, nil
}
