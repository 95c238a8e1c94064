// Package mitigation: sentinel error set. All public operations return these
// (possibly wrapped with context via fmt.Errorf("...: %w", ...)); tests and
// callers match with errors.Is. Failures fall into three families:
// configuration (dimension), precondition (calibration state), and numerical.
package mitigation

import "errors"

var (
	// ErrDimensionMismatch indicates data whose implied qubit count or shape
	// disagrees with the engine's configured register.
	ErrDimensionMismatch = errors.New("mitigation: dimension mismatch")

	// ErrNotCalibrated is returned by every correction requested before a
	// confusion matrix has been built or restored.
	ErrNotCalibrated = errors.New("mitigation: mitigation matrix not initialized")

	// ErrZeroShots indicates a calibration result with no recorded shots for
	// some basis state; its column cannot be normalized.
	ErrZeroShots = errors.New("mitigation: calibration basis state has zero shots")

	// ErrBadMatrix indicates a restored or injected matrix that is not a
	// valid confusion matrix (non-finite entries, values outside [0,1], or
	// columns not summing to 1 within tolerance).
	ErrBadMatrix = errors.New("mitigation: not a valid confusion matrix")

	// ErrNumericalFailure indicates the solve produced no usable result
	// (degenerate matrix even for least squares, or a correction whose mass
	// vanished entirely under clamping).
	ErrNumericalFailure = errors.New("mitigation: numerical solve failed")

	// ErrNilExecutor indicates Calibrate was handed a nil collaborator.
	ErrNilExecutor = errors.New("mitigation: executor is nil")
)
