package mitigation

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/lowqbit/readout/basis"
	"github.com/lowqbit/readout/circuit"
	"github.com/lowqbit/readout/execute"
)

// Mitigator is the readout error-mitigation engine for a fixed register
// size. The confusion matrix is its only mutable state: unset until the
// first BuildMatrix/Calibrate/Restore, then swapped wholesale under the
// write lock. Published matrices are never mutated in place, so Mitigate
// only needs the read lock to snapshot the current pointer.
type Mitigator struct {
	qubits int
	dim    int
	opts   options

	mu sync.RWMutex
	m  *mat.Dense
}

// New builds an engine for n qubits. The register size is immutable for the
// engine's lifetime and fixes the 2^n dimension of all vectors and matrices.
//
// Errors: basis.ErrQubitCount.
func New(n int, opts ...Option) (*Mitigator, error) {
	if err := basis.ValidateQubits(n); err != nil {
		return nil, err
	}
	return &Mitigator{
		qubits: n,
		dim:    basis.Dim(n),
		opts:   gatherOptions(opts...),
	}, nil
}

// Qubits returns the configured register size.
func (mt *Mitigator) Qubits() int { return mt.qubits }

// Dim returns 2^n, the dimension of the confusion matrix.
func (mt *Mitigator) Dim() int { return mt.dim }

// Calibrated reports whether a confusion matrix is currently stored.
func (mt *Mitigator) Calibrated() bool {
	mt.mu.RLock()
	defer mt.mu.RUnlock()
	return mt.m != nil
}

// BuildMatrix assembles and stores the confusion matrix from calibration
// results, one outcome-count mapping per basis index in order. Column j is
// the outcome distribution of calibration circuit j, normalized by that
// circuit's own shot total, so every column sums to 1 by construction. Any
// previously stored matrix is discarded.
//
// Errors: ErrDimensionMismatch (wrong result count or label width),
// ErrZeroShots, basis sentinels on malformed count maps.
func (mt *Mitigator) BuildMatrix(results []basis.Counts) error {
	if len(results) != mt.dim {
		return fmt.Errorf("got %d calibration results, want %d: %w", len(results), mt.dim, ErrDimensionMismatch)
	}
	m := mat.NewDense(mt.dim, mt.dim, nil)
	for j, res := range results {
		vec, err := mt.vector(res)
		if err != nil {
			return fmt.Errorf("calibration result %d: %w", j, err)
		}
		shots := floats.Sum(vec)
		if shots == 0 {
			return fmt.Errorf("basis state %d: %w", j, ErrZeroShots)
		}
		for i := 0; i < mt.dim; i++ {
			m.Set(i, j, vec[i]/shots)
		}
	}

	mt.mu.Lock()
	mt.m = m
	mt.mu.Unlock()
	return nil
}

// Calibrate runs the full calibration flow against an execution
// collaborator: build the 2^n calibration circuits, execute them for the
// given shot count, and assemble the confusion matrix from the results.
//
// Errors: ErrNilExecutor, executor errors, and everything BuildMatrix can
// return.
func (mt *Mitigator) Calibrate(ctx context.Context, exec execute.Executor, shots int) error {
	if exec == nil {
		return ErrNilExecutor
	}
	circs, err := circuit.CalibrationSet(mt.qubits)
	if err != nil {
		return err
	}
	results, err := exec.Execute(ctx, circs, shots)
	if err != nil {
		return err
	}
	return mt.BuildMatrix(results)
}

// Matrix returns a defensive copy of the stored confusion matrix.
//
// Errors: ErrNotCalibrated.
func (mt *Mitigator) Matrix() (*mat.Dense, error) {
	mt.mu.RLock()
	defer mt.mu.RUnlock()
	if mt.m == nil {
		return nil, ErrNotCalibrated
	}
	return mat.DenseCopyOf(mt.m), nil
}

// SetMatrix stores a caller-provided confusion matrix, validating shape and
// stochasticity (finite entries in [0,1], columns summing to 1 within the
// configured epsilon). This is the restore path for externally persisted
// matrices; calibration should go through BuildMatrix.
//
// Errors: ErrDimensionMismatch, ErrBadMatrix.
func (mt *Mitigator) SetMatrix(src mat.Matrix) error {
	if src == nil {
		return ErrBadMatrix
	}
	r, c := src.Dims()
	if r != mt.dim || c != mt.dim {
		return fmt.Errorf("matrix is %dx%d, want %dx%d: %w", r, c, mt.dim, mt.dim, ErrDimensionMismatch)
	}
	for j := 0; j < c; j++ {
		sum := 0.0
		for i := 0; i < r; i++ {
			v := src.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || v > 1 {
				return fmt.Errorf("entry (%d,%d)=%v: %w", i, j, v, ErrBadMatrix)
			}
			sum += v
		}
		if math.Abs(sum-1) > mt.opts.eps {
			return fmt.Errorf("column %d sums to %v: %w", j, sum, ErrBadMatrix)
		}
	}

	m := mat.DenseCopyOf(src)
	mt.mu.Lock()
	mt.m = m
	mt.mu.Unlock()
	return nil
}

// Mitigate corrects a noisy outcome-count mapping through the stored
// confusion matrix and returns the corrected counts. See MitigateDetailed
// for the solve-path diagnostics.
func (mt *Mitigator) Mitigate(noisy basis.Counts) (basis.Counts, error) {
	res, err := mt.MitigateDetailed(noisy)
	if err != nil {
		return nil, err
	}
	return res.Counts, nil
}

// MitigateDetailed corrects a noisy outcome-count mapping and reports which
// numerical path produced the correction.
//
// Pipeline: counts → raw (unnormalized) vector v with shot total T; solve
// M·x = v directly when M is well-conditioned, otherwise by SVD least
// squares; clamp negative entries of x to zero; optionally rescale the
// survivors back to T (WithRenormalize); convert x back to counts.
//
// The stored matrix is never mutated; repeated calls with the same input
// and the same stored matrix return identical results.
//
// Errors: ErrNotCalibrated, ErrDimensionMismatch, ErrNumericalFailure,
// basis sentinels on malformed count maps.
func (mt *Mitigator) MitigateDetailed(noisy basis.Counts) (Result, error) {
	mt.mu.RLock()
	m := mt.m
	mt.mu.RUnlock()
	if m == nil {
		return Result{}, ErrNotCalibrated
	}

	vData, err := mt.vector(noisy)
	if err != nil {
		return Result{}, err
	}
	total := floats.Sum(vData)

	xData, method, err := solve(m, vData, mt.opts.condLimit)
	if err != nil {
		return Result{}, err
	}
	residual := residualNorm(m, xData, vData)

	clampedSum := 0.0
	for i, x := range xData {
		if x < 0 {
			xData[i] = 0
			continue
		}
		clampedSum += x
	}
	if mt.opts.renormalize && total > 0 {
		if clampedSum <= 0 {
			return Result{}, fmt.Errorf("correction mass vanished under clamping: %w", ErrNumericalFailure)
		}
		floats.Scale(total/clampedSum, xData)
	}

	counts, err := basis.VectorToCounts(xData, mt.qubits)
	if err != nil {
		return Result{}, err
	}
	return Result{Counts: counts, Method: method, Residual: residual, Total: total}, nil
}

// vector converts a count mapping for this engine's register, translating
// label-width violations into the engine's dimension-mismatch kind.
func (mt *Mitigator) vector(counts basis.Counts) ([]float64, error) {
	vec, err := basis.CountsToVector(counts, mt.qubits)
	if err != nil {
		if errors.Is(err, basis.ErrLabelWidth) {
			return nil, fmt.Errorf("count labels do not match %d qubits: %w", mt.qubits, ErrDimensionMismatch)
		}
		return nil, err
	}
	return vec, nil
}
