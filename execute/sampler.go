package execute

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/lowqbit/readout/basis"
	"github.com/lowqbit/readout/circuit"
)

// defaultSamplerSeed is the fixed seed substituted when callers pass seed==0,
// so the zero-configured Sampler is still reproducible.
const defaultSamplerSeed int64 = 1

// Sampler is a local stochastic Executor. It evaluates the ideal outcome of a
// deterministic preparation circuit and samples shots through an optional
// per-qubit readout-noise channel.
//
// Execute is safe for concurrent use; LastJobIDs reports the job IDs of the
// most recent batch.
type Sampler struct {
	noise *ReadoutNoise
	seed  int64

	mu       sync.Mutex
	lastJobs []string
}

// SamplerOption configures a Sampler at construction.
type SamplerOption func(*Sampler)

// WithNoise attaches a readout-noise model. A nil model means ideal readout.
func WithNoise(rn *ReadoutNoise) SamplerOption {
	return func(s *Sampler) { s.noise = rn }
}

// WithSeed fixes the sampling seed. Seed 0 selects the package default, so
// all seeds give reproducible runs.
func WithSeed(seed int64) SamplerOption {
	return func(s *Sampler) { s.seed = seed }
}

// NewSampler builds a Sampler. Without options it is an ideal, deterministic
// measurement device.
func NewSampler(opts ...SamplerOption) *Sampler {
	s := &Sampler{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Execute samples every circuit in the batch for the given shot count.
// Circuits are sampled concurrently, one RNG stream per batch position, so
// the output is independent of scheduling order.
//
// Errors: ErrNoCircuits, ErrNilCircuit, ErrShotCount, ErrBadNoise (wrapped
// with the failing job's ID), or ctx.Err() on cancellation.
func (s *Sampler) Execute(ctx context.Context, circuits []*circuit.Circuit, shots int) ([]basis.Counts, error) {
	if len(circuits) == 0 {
		return nil, ErrNoCircuits
	}
	if shots < 1 {
		return nil, ErrShotCount
	}

	out := make([]basis.Counts, len(circuits))
	jobs := make([]string, len(circuits))
	for i := range jobs {
		jobs[i] = newJobID()
	}

	g, ctx := errgroup.WithContext(ctx)
	for i, c := range circuits {
		i, c := i, c
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			counts, err := s.sample(c, shots, s.rngFor(int64(i)))
			if err != nil {
				return fmt.Errorf("execute: job %s: %w", jobs[i], err)
			}
			out[i] = counts
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.lastJobs = jobs
	s.mu.Unlock()
	return out, nil
}

// LastJobIDs returns the job IDs assigned to the most recently completed
// batch, in batch order.
func (s *Sampler) LastJobIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.lastJobs))
	copy(out, s.lastJobs)
	return out
}

// sample draws shots measurements of a single circuit.
func (s *Sampler) sample(c *circuit.Circuit, shots int, rng *rand.Rand) (basis.Counts, error) {
	if c == nil {
		return nil, ErrNilCircuit
	}
	n := c.Qubits()
	if s.noise != nil && !s.noise.covers(n) {
		return nil, ErrBadNoise
	}

	ideal := c.PreparedIndex()
	counts := make(basis.Counts)

	if s.noise == nil {
		label, err := basis.IndexToLabel(ideal, n)
		if err != nil {
			return nil, err
		}
		counts[label] = shots
		return counts, nil
	}

	for shot := 0; shot < shots; shot++ {
		observed := ideal
		for k := 0; k < n; k++ {
			var p float64
			if ideal>>uint(k)&1 == 0 {
				p = s.noise.P0M1[k]
			} else {
				p = s.noise.P1M0[k]
			}
			if rng.Float64() < p {
				observed ^= 1 << uint(k)
			}
		}
		label, err := basis.IndexToLabel(observed, n)
		if err != nil {
			return nil, err
		}
		counts[label]++
	}
	return counts, nil
}

// rngFor derives an independent deterministic RNG stream for one batch
// position. math/rand.Rand is not goroutine-safe, so every stream gets its
// own instance.
func (s *Sampler) rngFor(stream int64) *rand.Rand {
	seed := s.seed
	if seed == 0 {
		seed = defaultSamplerSeed
	}
	return rand.New(rand.NewSource(mixSeed(seed, uint64(stream))))
}

// mixSeed avalanches a parent seed and a stream index into a fresh 64-bit
// seed (SplitMix64 finalizer constants), keeping substreams uncorrelated.
func mixSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// newJobID mints a sortable job identifier, falling back to a random UUID if
// the clock-based variant is unavailable.
func newJobID() string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return id.String()
}
