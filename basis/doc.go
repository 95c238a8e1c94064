// Package basis converts between the three representations of multi-qubit
// measurement outcomes used throughout the library:
//
//   - basis index   — integer in [0, 2^n), the canonical ordering used for
//     all matrix rows/columns and vector positions;
//   - bit-label     — fixed-width binary string of exactly n characters,
//     most-significant qubit first (this is the key format hardware
//     backends report counts in);
//   - count mapping — Counts, a map from bit-label to the number of shots
//     that produced that outcome. Absent keys read as zero.
//
// Backends routinely omit zero-count outcomes from their result maps, so
// CountsToVector fills the gaps and VectorToCounts drops zero entries again;
// the two directions are inverse for integer-valued inputs.
//
// All functions are pure and return sentinel errors (matched via errors.Is)
// on invalid input; nothing in this package panics or mutates its arguments.
package basis
