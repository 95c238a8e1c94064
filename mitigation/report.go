package mitigation

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// Report summarizes the stored confusion matrix: how faithfully each basis
// state is read back (the diagonal) and how concentrated the misassignment
// is (the largest off-diagonal entry per column).
//
// Errors: ErrNotCalibrated.
func (mt *Mitigator) Report() (CalibrationReport, error) {
	mt.mu.RLock()
	m := mt.m
	mt.mu.RUnlock()
	if m == nil {
		return CalibrationReport{}, ErrNotCalibrated
	}

	diag := make([]float64, mt.dim)
	peaks := make([]float64, mt.dim)
	for j := 0; j < mt.dim; j++ {
		peak := 0.0
		for i := 0; i < mt.dim; i++ {
			v := m.At(i, j)
			if i == j {
				diag[j] = v
				continue
			}
			if v > peak {
				peak = v
			}
		}
		peaks[j] = peak
	}

	var (
		rep CalibrationReport
		err error
	)
	if rep.AssignmentFidelity, err = stats.Mean(diag); err != nil {
		return CalibrationReport{}, fmt.Errorf("report: %w", err)
	}
	if rep.MinFidelity, err = stats.Min(diag); err != nil {
		return CalibrationReport{}, fmt.Errorf("report: %w", err)
	}
	if rep.MaxFidelity, err = stats.Max(diag); err != nil {
		return CalibrationReport{}, fmt.Errorf("report: %w", err)
	}
	if rep.FidelityStdDev, err = stats.StandardDeviationSample(diag); err != nil {
		return CalibrationReport{}, fmt.Errorf("report: %w", err)
	}
	if rep.MeanPeakLeakage, err = stats.Mean(peaks); err != nil {
		return CalibrationReport{}, fmt.Errorf("report: %w", err)
	}
	return rep, nil
}
