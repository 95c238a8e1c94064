package mitigation

import "math"

// Defaults — single source of truth for zero-value option behavior.
const (
	// DefaultEpsilon is the tolerance used when validating that restored
	// matrix columns sum to 1.
	DefaultEpsilon = 1e-6

	// DefaultConditionLimit is the condition-number threshold above which
	// the direct LU solve is abandoned for the least-squares fallback.
	DefaultConditionLimit = 1e8

	// DefaultRenormalize keeps the post-clamp rescale off: clamped negative
	// mass is dropped and the corrected total may undershoot the shot total.
	DefaultRenormalize = false
)

// Internal panic messages for option constructors (programmer errors).
const (
	panicEpsilonInvalid   = "mitigation: WithEpsilon: eps must be finite and non-negative"
	panicCondLimitInvalid = "mitigation: WithConditionLimit: limit must be finite and >= 1"
)

// Option mutates engine options at construction. Constructors panic only on
// nonsensical parameter values; all data-dependent failures are errors.
type Option func(*options)

type options struct {
	eps         float64
	condLimit   float64
	renormalize bool
}

// WithEpsilon sets the column-sum tolerance used by SetMatrix and Restore.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}
	return func(o *options) { o.eps = eps }
}

// WithConditionLimit sets the condition-number ceiling for the direct solve.
// Lower values fail over to least squares earlier.
func WithConditionLimit(limit float64) Option {
	if math.IsNaN(limit) || math.IsInf(limit, 0) || limit < 1 {
		panic(panicCondLimitInvalid)
	}
	return func(o *options) { o.condLimit = limit }
}

// WithRenormalize rescales the clamped correction so its sum equals the
// noisy input's shot total, preserving total probability mass at the cost of
// slightly redistributing it.
func WithRenormalize() Option {
	return func(o *options) { o.renormalize = true }
}

// gatherOptions resolves setters against the documented defaults,
// last-writer-wins.
func gatherOptions(opts ...Option) options {
	o := options{
		eps:         DefaultEpsilon,
		condLimit:   DefaultConditionLimit,
		renormalize: DefaultRenormalize,
	}
	for _, set := range opts {
		set(&o)
	}
	return o
}
