// Package intseq implements small, stateless scans over integer sequences.
//
// FirstMissingPositive answers "what is the smallest integer >= 1 that does
// not occur in this sequence". It sorts its argument in place and then walks
// it once in ascending order, advancing a candidate each time the next
// consecutive positive value is confirmed present:
//
//	input   [2000 0 1 1 50 1000]
//	sorted  [0 1 1 50 1000 2000]
//	scan    0 skipped (non-positive), 1 accepted (candidate 1 -> 2),
//	        1 skipped (duplicate), 50/1000/2000 skipped (beyond candidate)
//	result  2
//
// FirstMissingPositiveOf returns the same answer without reordering the
// caller's slice.
//
// GetMin is a threshold accumulator kept for compatibility. Its accumulator
// starts at zero, so only values in (d, 0) can ever be returned; see its
// documentation for the exact rule.
//
// A nil slice is the empty sequence: FirstMissingPositive returns 1 and
// GetMin returns 0.
package intseq
