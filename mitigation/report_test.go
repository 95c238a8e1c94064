package mitigation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lowqbit/readout/basis"
	"github.com/lowqbit/readout/mitigation"
)

// TestReport_NotCalibrated: no matrix, no report.
func TestReport_NotCalibrated(t *testing.T) {
	mit, err := mitigation.New(1)
	require.NoError(t, err)

	_, err = mit.Report()
	assert.ErrorIs(t, err, mitigation.ErrNotCalibrated)
}

// TestReport_Values on a known 1-qubit matrix:
// diagonal (0.95, 0.96), off-diagonal peaks (0.05, 0.04).
func TestReport_Values(t *testing.T) {
	mit, err := mitigation.New(1)
	require.NoError(t, err)
	require.NoError(t, mit.BuildMatrix([]basis.Counts{
		{"0": 950, "1": 50},
		{"0": 40, "1": 960},
	}))

	rep, err := mit.Report()
	require.NoError(t, err)
	assert.InDelta(t, 0.955, rep.AssignmentFidelity, 1e-12)
	assert.InDelta(t, 0.95, rep.MinFidelity, 1e-12)
	assert.InDelta(t, 0.96, rep.MaxFidelity, 1e-12)
	assert.InDelta(t, 0.045, rep.MeanPeakLeakage, 1e-12)
	assert.Greater(t, rep.FidelityStdDev, 0.0)
}

// TestReport_PerfectDevice: identity calibration reports unit fidelity and
// zero leakage.
func TestReport_PerfectDevice(t *testing.T) {
	mit, err := mitigation.New(2)
	require.NoError(t, err)

	results := make([]basis.Counts, 4)
	for j := range results {
		label, lerr := basis.IndexToLabel(j, 2)
		require.NoError(t, lerr)
		results[j] = basis.Counts{label: 1024}
	}
	require.NoError(t, mit.BuildMatrix(results))

	rep, err := mit.Report()
	require.NoError(t, err)
	assert.InDelta(t, 1.0, rep.AssignmentFidelity, 1e-12)
	assert.InDelta(t, 1.0, rep.MinFidelity, 1e-12)
	assert.InDelta(t, 0.0, rep.MeanPeakLeakage, 1e-12)
	assert.InDelta(t, 0.0, rep.FidelityStdDev, 1e-12)
}
