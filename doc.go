// Package readout is a measurement-error-mitigation toolkit for multi-qubit
// devices: characterize how often each computational basis state is
// misreported as another, then use that characterization to recover an
// unbiased estimate of the true outcome distribution from noisy counts.
//
// 🚀 How it works
//
//	Prepare every basis state |j⟩ with a deterministic circuit, measure it
//	many times, and collect how often each state i was actually read back.
//	Normalizing those histograms column-wise yields the confusion matrix M
//	(M[i][j] = Pr(observe i | prepared j)). Solving M·x = v for a later
//	noisy observation v recovers the mitigated counts x.
//
// ✨ Packages
//
//	basis/      — basis index ↔ bit-label ↔ count-map ↔ vector conversions
//	circuit/    — minimal prep-and-measure circuit model, calibration set,
//	              OpenQASM 2.0 export
//	execute/    — the executor boundary plus a local readout-noise sampler
//	mitigation/ — the engine: matrix assembly, conditioned solve with
//	              least-squares fallback, physicality clamp, calibration
//	              report, YAML snapshots
//
// Quick start:
//
//	mit, _ := mitigation.New(2)
//	_ = mit.Calibrate(ctx, backend, 8192) // backend implements execute.Executor
//	corrected, err := mit.Mitigate(noisyCounts)
//
// The scheme is the full 2^n confusion matrix: correlated readout error is
// captured in aggregate, not factorized per qubit, and matrix inversion at
// O(2^3n) is the practical scaling limit.
//
// See examples/ for a runnable end-to-end demo.
package readout
