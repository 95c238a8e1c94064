package mitigation

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gopkg.in/yaml.v3"
)

// snapshot is the on-disk shape of a persisted confusion matrix: the qubit
// count plus a plain row-major 2D float array. The core mandates no file
// format; this is the library's own convenience encoding.
type snapshot struct {
	Qubits int         `yaml:"qubits"`
	Matrix [][]float64 `yaml:"matrix"`
}

// Snapshot serializes the stored confusion matrix as YAML so a caller can
// persist a calibration and restore it after a restart.
//
// Errors: ErrNotCalibrated.
func (mt *Mitigator) Snapshot() ([]byte, error) {
	mt.mu.RLock()
	m := mt.m
	mt.mu.RUnlock()
	if m == nil {
		return nil, ErrNotCalibrated
	}

	rows := make([][]float64, mt.dim)
	for i := range rows {
		rows[i] = make([]float64, mt.dim)
		mat.Row(rows[i], i, m)
	}
	return yaml.Marshal(snapshot{Qubits: mt.qubits, Matrix: rows})
}

// Restore replaces the stored matrix with a previously snapshotted one,
// running the full SetMatrix validation so a corrupt or foreign snapshot
// cannot silently poison the engine.
//
// Errors: ErrDimensionMismatch, ErrBadMatrix, decode errors.
func (mt *Mitigator) Restore(data []byte) error {
	var snap snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("mitigation: decode snapshot: %w", err)
	}
	if snap.Qubits != mt.qubits || len(snap.Matrix) != mt.dim {
		return fmt.Errorf("snapshot is for %d qubits, engine has %d: %w", snap.Qubits, mt.qubits, ErrDimensionMismatch)
	}
	flat := make([]float64, 0, mt.dim*mt.dim)
	for i, row := range snap.Matrix {
		if len(row) != mt.dim {
			return fmt.Errorf("snapshot row %d has %d entries, want %d: %w", i, len(row), mt.dim, ErrDimensionMismatch)
		}
		flat = append(flat, row...)
	}
	return mt.SetMatrix(mat.NewDense(mt.dim, mt.dim, flat))
}
