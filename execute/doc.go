// Package execute defines the single boundary the mitigation core crosses:
// hand an ordered set of circuits to an Executor, get back one outcome-count
// mapping per circuit. How the collaborator batches, parallelizes or
// authenticates is its own business; the core only sees counts.
//
// The package ships one Executor: Sampler, a local stochastic backend that
// stands in for a hardware device. It computes the ideal outcome of a
// deterministic preparation circuit and then pushes every shot through a
// per-qubit readout-noise channel (independent 0→1 and 1→0 flip
// probabilities). With no noise attached it is an ideal measurement device,
// which makes it the reference backend for identity-calibration tests.
//
// Sampling is deterministic for a fixed seed: each circuit gets an
// independent RNG stream derived from the seed and the circuit's position,
// so results do not depend on goroutine scheduling.
package execute
