package mitigation

import "github.com/lowqbit/readout/basis"

// SolveMethod identifies which numerical path produced a correction.
type SolveMethod int

const (
	// SolveDirect — LU factorization, taken when the confusion matrix is
	// well-conditioned.
	SolveDirect SolveMethod = iota

	// SolveLeastSquares — SVD pseudo-inverse minimizing ‖Mx − v‖, taken when
	// the matrix is ill-conditioned or singular.
	SolveLeastSquares
)

// String implements fmt.Stringer for diagnostics.
func (m SolveMethod) String() string {
	switch m {
	case SolveDirect:
		return "direct"
	case SolveLeastSquares:
		return "least-squares"
	default:
		return "unknown"
	}
}

// Result is the detailed outcome of one correction.
type Result struct {
	// Counts is the corrected outcome-count mapping.
	Counts basis.Counts
	// Method is the solve path that ran.
	Method SolveMethod
	// Residual is ‖M·x − v‖₂ of the raw (pre-clamp) solution; zero for an
	// exact direct solve up to floating point.
	Residual float64
	// Total is the noisy input's shot total, retained for the count
	// conversion and any renormalization.
	Total float64
}

// CalibrationReport summarizes the quality of the stored confusion matrix.
// The diagonal entry of column j is the probability basis state j is read
// back correctly (its assignment fidelity).
type CalibrationReport struct {
	// AssignmentFidelity is the mean diagonal entry.
	AssignmentFidelity float64
	// MinFidelity and MaxFidelity bound the per-basis-state fidelities.
	MinFidelity float64
	MaxFidelity float64
	// FidelityStdDev is the sample standard deviation of the diagonal.
	FidelityStdDev float64
	// MeanPeakLeakage is the mean, over columns, of the largest single
	// misassignment probability in that column.
	MeanPeakLeakage float64
}
