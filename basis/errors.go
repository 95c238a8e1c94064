package basis

import "errors"

var (
	// ErrQubitCount indicates a qubit count outside [1, MaxQubits].
	ErrQubitCount = errors.New("basis: qubit count must be in [1, MaxQubits]")
	// ErrIndexRange indicates a basis index outside [0, 2^n).
	ErrIndexRange = errors.New("basis: basis index out of range")
	// ErrBadLabel indicates a label that is not a non-empty binary string.
	ErrBadLabel = errors.New("basis: label must be a non-empty binary string")
	// ErrLabelWidth indicates a label whose width disagrees with the expected qubit count.
	ErrLabelWidth = errors.New("basis: label width does not match qubit count")
	// ErrNegativeCount indicates a negative shot count in a count mapping.
	ErrNegativeCount = errors.New("basis: negative count")
	// ErrVectorLength indicates a vector whose length is not 2^n.
	ErrVectorLength = errors.New("basis: vector length must be 2^n")
	// ErrNonFinite indicates a NaN or ±Inf vector entry.
	ErrNonFinite = errors.New("basis: NaN or Inf vector entry")
	// ErrEmptyCounts indicates a count mapping with no keys where one is required.
	ErrEmptyCounts = errors.New("basis: empty count mapping")
)
