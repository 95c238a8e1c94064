package mitigation_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lowqbit/readout/basis"
	"github.com/lowqbit/readout/execute"
	"github.com/lowqbit/readout/mitigation"
)

// TestCalibrate_NoiselessBackend: calibrating against an ideal sampler
// yields the identity matrix and identity mitigation.
func TestCalibrate_NoiselessBackend(t *testing.T) {
	mit, err := mitigation.New(2)
	require.NoError(t, err)
	require.NoError(t, mit.Calibrate(context.Background(), execute.NewSampler(), 2048))

	m, err := mit.Matrix()
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			assert.InDelta(t, want, m.At(i, j), 1e-12)
		}
	}

	noisy := basis.Counts{"00": 300, "10": 700}
	out, err := mit.Mitigate(noisy)
	require.NoError(t, err)
	assert.Equal(t, noisy, out)
}

// TestCalibrate_NoisyBackend runs the full loop: calibrate against a noisy
// sampler, derive a synthetic noisy observation by pushing a known truth
// through the learned matrix, and verify mitigation recovers the truth.
func TestCalibrate_NoisyBackend(t *testing.T) {
	noise, err := execute.Uniform(2, 0.05, 0.08)
	require.NoError(t, err)
	backend := execute.NewSampler(execute.WithNoise(noise), execute.WithSeed(1234))

	mit, err := mitigation.New(2)
	require.NoError(t, err)
	require.NoError(t, mit.Calibrate(context.Background(), backend, 8192))

	m, err := mit.Matrix()
	require.NoError(t, err)

	truth := []float64{2000, 0, 0, 2000}
	vNoisy := make([]float64, 4)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			vNoisy[i] += m.At(i, j) * truth[j]
		}
	}
	noisyCounts, err := basis.VectorToCounts(vNoisy, 2)
	require.NoError(t, err)

	res, err := mit.MitigateDetailed(noisyCounts)
	require.NoError(t, err)
	assert.Equal(t, mitigation.SolveDirect, res.Method, "a mildly noisy matrix stays well-conditioned")

	trueCounts := basis.Counts{"00": 2000, "11": 2000}
	for _, label := range []string{"00", "01", "10", "11"} {
		assert.InDelta(t, float64(trueCounts[label]), float64(res.Counts[label]), 5,
			"label %s", label)
	}

	// The correction must land closer to the truth than the noisy input.
	assert.Less(t, l1Distance(res.Counts, trueCounts), l1Distance(noisyCounts, trueCounts))
}

// TestCalibrate_NilExecutor fails fast.
func TestCalibrate_NilExecutor(t *testing.T) {
	mit, err := mitigation.New(1)
	require.NoError(t, err)
	assert.ErrorIs(t, mit.Calibrate(context.Background(), nil, 1024), mitigation.ErrNilExecutor)
}

// TestCalibrate_ExecutorFailure: collaborator errors propagate and leave the
// engine uncalibrated.
func TestCalibrate_ExecutorFailure(t *testing.T) {
	mit, err := mitigation.New(1)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = mit.Calibrate(ctx, execute.NewSampler(), 1024)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, mit.Calibrated())
}

func l1Distance(a, b basis.Counts) float64 {
	sum := 0.0
	seen := make(map[string]struct{})
	for label, av := range a {
		sum += math.Abs(float64(av - b[label]))
		seen[label] = struct{}{}
	}
	for label, bv := range b {
		if _, ok := seen[label]; ok {
			continue
		}
		sum += math.Abs(float64(bv))
	}
	return sum
}
