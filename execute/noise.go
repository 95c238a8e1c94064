package execute

// ReadoutNoise models classical measurement error per qubit: each qubit's
// readout flips independently with state-dependent probability. P0M1[k] is
// the probability qubit k is prepared in |0⟩ but read as 1; P1M0[k] the
// probability it is prepared in |1⟩ but read as 0.
type ReadoutNoise struct {
	P0M1 []float64
	P1M0 []float64
}

// Uniform builds a ReadoutNoise applying the same flip probabilities to all
// n qubits.
//
// Errors: ErrBadNoise on probabilities outside [0, 1].
func Uniform(n int, p0m1, p1m0 float64) (*ReadoutNoise, error) {
	if n < 1 || !isProb(p0m1) || !isProb(p1m0) {
		return nil, ErrBadNoise
	}
	rn := &ReadoutNoise{
		P0M1: make([]float64, n),
		P1M0: make([]float64, n),
	}
	for k := 0; k < n; k++ {
		rn.P0M1[k] = p0m1
		rn.P1M0[k] = p1m0
	}
	return rn, nil
}

// covers reports whether the model is well-formed for an n-qubit register.
func (rn *ReadoutNoise) covers(n int) bool {
	if len(rn.P0M1) != n || len(rn.P1M0) != n {
		return false
	}
	for k := 0; k < n; k++ {
		if !isProb(rn.P0M1[k]) || !isProb(rn.P1M0[k]) {
			return false
		}
	}
	return true
}

func isProb(p float64) bool { return p >= 0 && p <= 1 }
