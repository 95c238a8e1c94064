// Package mitigation estimates and corrects readout error on a multi-qubit
// device via the full confusion-matrix scheme.
//
// 🚀 What it does
//
//	Hardware misreports basis states: a device prepared in |j⟩ is sometimes
//	read out as i ≠ j. Executing the 2^n calibration circuits (one per basis
//	state) and normalizing their outcome distributions yields the confusion
//	matrix M, where M[i][j] = Pr(observe i | prepared j) and every column is
//	a probability distribution. Inverting the linear system M·x = v then
//	recovers an unbiased estimate x of the true outcome counts from a noisy
//	observation v of any later circuit.
//
// ✨ Engine shape
//
//	Mitigator is an explicit stateful engine: the qubit count is fixed at
//	construction, the confusion matrix starts unset, is published atomically
//	by BuildMatrix (or Calibrate, or Restore), and is read but never mutated
//	by Mitigate calls. Rebuilds are exclusive; concurrent mitigations
//	against a published matrix are safe and run in parallel.
//
// ⚙️ Numerics
//
//	The solve goes through LU factorization when the matrix is
//	well-conditioned and falls back to an SVD pseudo-inverse (minimum-norm
//	least squares) when it is not; MitigateDetailed reports which path ran.
//	Negative entries of the solution are sampling artifacts and are clamped
//	to zero; whether the survivors are rescaled to preserve the shot total
//	is the explicit WithRenormalize option, not a silent default.
//
// Typical use:
//
//	mit, _ := mitigation.New(2)
//	if err := mit.Calibrate(ctx, backend, 8192); err != nil { ... }
//	corrected, err := mit.Mitigate(noisyCounts)
//
// All failures surface as sentinel errors (errors.Is); nothing is retried
// and no partial result is ever returned.
package mitigation
