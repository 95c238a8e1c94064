package mitigation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/lowqbit/readout/basis"
	"github.com/lowqbit/readout/mitigation"
)

// TestSnapshot_RoundTrip: a persisted calibration restores into a working
// engine that corrects identically.
func TestSnapshot_RoundTrip(t *testing.T) {
	src, err := mitigation.New(1)
	require.NoError(t, err)
	require.NoError(t, src.BuildMatrix([]basis.Counts{
		{"0": 950, "1": 50},
		{"0": 40, "1": 960},
	}))

	data, err := src.Snapshot()
	require.NoError(t, err)

	dst, err := mitigation.New(1)
	require.NoError(t, err)
	require.NoError(t, dst.Restore(data))
	require.True(t, dst.Calibrated())

	noisy := basis.Counts{"0": 495, "1": 505}
	want, err := src.Mitigate(noisy)
	require.NoError(t, err)
	got, err := dst.Mitigate(noisy)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// TestSnapshot_NotCalibrated: nothing to persist before calibration.
func TestSnapshot_NotCalibrated(t *testing.T) {
	mit, err := mitigation.New(1)
	require.NoError(t, err)

	_, err = mit.Snapshot()
	assert.ErrorIs(t, err, mitigation.ErrNotCalibrated)
}

// TestRestore_WrongRegister: a snapshot for another register size is a
// dimension mismatch, not a silent reshape.
func TestRestore_WrongRegister(t *testing.T) {
	src, err := mitigation.New(1)
	require.NoError(t, err)
	require.NoError(t, src.SetMatrix(mat.NewDense(2, 2, []float64{
		1, 0,
		0, 1,
	})))
	data, err := src.Snapshot()
	require.NoError(t, err)

	dst, err := mitigation.New(2)
	require.NoError(t, err)
	assert.ErrorIs(t, dst.Restore(data), mitigation.ErrDimensionMismatch)
}

// TestRestore_BadData: undecodable and non-stochastic snapshots are rejected
// and leave the engine uncalibrated.
func TestRestore_BadData(t *testing.T) {
	mit, err := mitigation.New(1)
	require.NoError(t, err)

	assert.Error(t, mit.Restore([]byte("{not yaml")))

	bad := []byte("qubits: 1\nmatrix:\n  - [0.6, 0.6]\n  - [0.6, 0.6]\n")
	assert.ErrorIs(t, mit.Restore(bad), mitigation.ErrBadMatrix)

	ragged := []byte("qubits: 1\nmatrix:\n  - [0.5]\n  - [0.5, 0.5]\n")
	assert.ErrorIs(t, mit.Restore(ragged), mitigation.ErrDimensionMismatch)

	assert.False(t, mit.Calibrated())
}
