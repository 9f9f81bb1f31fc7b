package intseq

import "slices"

// Signed is the set of integer types the scans accept. Narrower widths are
// left out: a slice of 127 distinct int8 values would already push the
// candidate past max(T).
type Signed interface {
	~int | ~int64
}

// FirstMissingPositive returns the smallest positive integer that does not
// occur in nums.
//
// nums is sorted in place; callers must not rely on its original order
// afterwards. Use FirstMissingPositiveOf to leave the input untouched.
// The result is always >= 1: reaching max(T)+1 would need a slice of
// max(T) distinct positive values.
func FirstMissingPositive[T Signed](nums []T) T {
	slices.Sort(nums)

	var (
		result T = 1
		last   T // 0: no positive value accepted yet
	)
	for _, num := range nums {
		if num > result || num == last || num <= 0 {
			continue
		}
		last = num
		result++
	}
	return result
}

// FirstMissingPositiveOf is FirstMissingPositive on a copy of nums.
func FirstMissingPositiveOf[T Signed](nums []T) T {
	return FirstMissingPositive(slices.Clone(nums))
}
