package basis

import (
	"math"
	"strconv"
	"strings"
)

// Counts maps a fixed-width binary outcome label to the number of shots that
// produced it. Keys absent from the map are implicitly zero-count outcomes.
type Counts map[string]int

// MaxQubits bounds the supported register size. Every dense structure in the
// library is 2^n wide (the confusion matrix is 2^n x 2^n), so the ceiling
// turns an otherwise certain allocation blow-up into an explicit ErrQubitCount.
const MaxQubits = 24

// ValidateQubits checks that n is a usable qubit count.
// Returns ErrQubitCount when n < 1 or n > MaxQubits.
func ValidateQubits(n int) error {
	if n < 1 || n > MaxQubits {
		return ErrQubitCount
	}
	return nil
}

// Dim returns 2^n, the dimension of all vectors and matrices for n qubits.
// The caller is expected to have validated n via ValidateQubits.
func Dim(n int) int {
	return 1 << uint(n)
}

// IndexToLabel returns the n-character zero-padded binary label of basis
// index i, most-significant qubit first.
//
// Errors: ErrQubitCount, ErrIndexRange.
func IndexToLabel(i, n int) (string, error) {
	if err := ValidateQubits(n); err != nil {
		return "", err
	}
	if i < 0 || i >= Dim(n) {
		return "", ErrIndexRange
	}
	s := strconv.FormatInt(int64(i), 2)
	if pad := n - len(s); pad > 0 {
		s = strings.Repeat("0", pad) + s
	}
	return s, nil
}

// LabelToIndex parses a bit-label back into its basis index. The label width
// implies the qubit count, so "01" and "1" are distinct labels with the same
// index.
//
// Errors: ErrBadLabel on empty or non-binary input, ErrQubitCount on labels
// wider than MaxQubits.
func LabelToIndex(label string) (int, error) {
	if label == "" {
		return 0, ErrBadLabel
	}
	if len(label) > MaxQubits {
		return 0, ErrQubitCount
	}
	idx := 0
	for _, c := range label {
		idx <<= 1
		switch c {
		case '0':
		case '1':
			idx |= 1
		default:
			return 0, ErrBadLabel
		}
	}
	return idx, nil
}

// Width infers the qubit count from a count mapping: the common width of all
// keys. Backends omit zero-count outcomes, so the remaining keys must agree.
//
// Errors: ErrEmptyCounts when no keys exist, ErrLabelWidth when keys disagree.
func Width(counts Counts) (int, error) {
	w := 0
	for label := range counts {
		if w == 0 {
			w = len(label)
			continue
		}
		if len(label) != w {
			return 0, ErrLabelWidth
		}
	}
	if w == 0 {
		return 0, ErrEmptyCounts
	}
	return w, nil
}

// CountsToVector expands a count mapping into a dense length-2^n vector where
// position i holds the count of label(i), or 0 for absent labels. The input
// map is not mutated.
//
// Errors: ErrQubitCount, ErrLabelWidth on keys of the wrong width,
// ErrBadLabel on non-binary keys, ErrNegativeCount.
func CountsToVector(counts Counts, n int) ([]float64, error) {
	if err := ValidateQubits(n); err != nil {
		return nil, err
	}
	vec := make([]float64, Dim(n))
	for label, c := range counts {
		if len(label) != n {
			return nil, ErrLabelWidth
		}
		if c < 0 {
			return nil, ErrNegativeCount
		}
		idx, err := LabelToIndex(label)
		if err != nil {
			return nil, err
		}
		vec[idx] = float64(c)
	}
	return vec, nil
}

// VectorToCounts collapses a dense length-2^n vector into a count mapping,
// rounding each entry to the nearest integer. Entries that round to zero or
// below are omitted, matching the absent-key-means-zero convention of Counts.
//
// Errors: ErrQubitCount, ErrVectorLength, ErrNonFinite.
func VectorToCounts(vec []float64, n int) (Counts, error) {
	if err := ValidateQubits(n); err != nil {
		return nil, err
	}
	if len(vec) != Dim(n) {
		return nil, ErrVectorLength
	}
	counts := make(Counts)
	for i, v := range vec {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrNonFinite
		}
		c := int(math.Round(v))
		if c <= 0 {
			continue
		}
		label, err := IndexToLabel(i, n)
		if err != nil {
			return nil, err
		}
		counts[label] = c
	}
	return counts, nil
}
