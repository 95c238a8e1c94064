package execute

import (
	"context"

	"github.com/lowqbit/readout/basis"
	"github.com/lowqbit/readout/circuit"
)

// Executor runs a batch of circuits for a number of shots and returns one
// outcome-count mapping per circuit, in batch order. Counts sum to shots
// modulo backend-specific discard. Implementations decide how to batch or
// parallelize; they must respect ctx cancellation on the whole batch.
type Executor interface {
	Execute(ctx context.Context, circuits []*circuit.Circuit, shots int) ([]basis.Counts, error)
}
