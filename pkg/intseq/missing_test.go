package intseq

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstMissingPositive(t *testing.T) {
	tests := []struct {
		name  string
		input []int
		want  int
	}{
		{
			name:  "nil slice",
			input: nil,
			want:  1,
		},
		{
			name:  "empty slice",
			input: []int{},
			want:  1,
		},
		{
			name:  "single one",
			input: []int{1},
			want:  2,
		},
		{
			name:  "consecutive run",
			input: []int{1, 2, 3},
			want:  4,
		},
		{
			name:  "sample with duplicates and large values",
			input: []int{2000, 0, 1, 1, 50, 1000},
			want:  2,
		},
		{
			name:  "only non-positive",
			input: []int{-5, -3, 0},
			want:  1,
		},
		{
			name:  "one missing below all present",
			input: []int{2, 3, 4},
			want:  1,
		},
		{
			name:  "unsorted with gap",
			input: []int{3, 4, -1, 1},
			want:  2,
		},
		{
			name:  "unsorted full run",
			input: []int{7, 8, 9, 11, 12, 1, 2, 3, 4, 5, 6},
			want:  10,
		},
		{
			name:  "duplicates inside run",
			input: []int{1, 1, 2, 2, 2, 3, 3},
			want:  4,
		},
		{
			name:  "extreme values",
			input: []int{math.MinInt, math.MaxInt, 1},
			want:  2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FirstMissingPositive(tt.input)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFirstMissingPositive_SortsInput(t *testing.T) {
	nums := []int{2000, 0, 1, 1, 50, 1000}

	require.Equal(t, 2, FirstMissingPositive(nums))
	require.True(t, slices.IsSorted(nums), "input should be sorted in place: %v", nums)
	require.Equal(t, []int{0, 1, 1, 50, 1000, 2000}, nums)
}

func TestFirstMissingPositive_Idempotent(t *testing.T) {
	nums := []int{5, 3, -2, 1, 2, 2, 9}

	first := FirstMissingPositive(nums)
	second := FirstMissingPositive(nums)

	assert.Equal(t, 4, first)
	assert.Equal(t, first, second)
}

func TestFirstMissingPositive_Int64(t *testing.T) {
	assert.Equal(t, int64(1), FirstMissingPositive([]int64{}))
	assert.Equal(t, int64(4), FirstMissingPositive([]int64{3, 2, 1}))
	assert.Equal(t, int64(2), FirstMissingPositive([]int64{math.MaxInt64, 1}))
}

func TestFirstMissingPositive_UpperBoundary(t *testing.T) {
	// A long run followed by the largest values of the type must still
	// yield the first gap, never a wrapped candidate.
	const run = 1 << 12
	nums := make([]int64, 0, run+3)
	for i := int64(run); i >= 1; i-- {
		nums = append(nums, i)
	}
	nums = append(nums, math.MaxInt64, math.MaxInt64-1, math.MinInt64)

	got := FirstMissingPositive(nums)

	require.GreaterOrEqual(t, got, int64(1))
	assert.Equal(t, int64(run+1), got)

	// The run itself may end at the top of the type.
	top := []int{1, 2, math.MaxInt - 1, math.MaxInt}
	assert.Equal(t, 3, FirstMissingPositive(top))
}

func TestFirstMissingPositive_NamedType(t *testing.T) {
	type height int64

	got := FirstMissingPositive([]height{1, 2, 4})
	assert.Equal(t, height(3), got)
}

func TestFirstMissingPositiveOf(t *testing.T) {
	nums := []int{2000, 0, 1, 1, 50, 1000}
	original := slices.Clone(nums)

	got := FirstMissingPositiveOf(nums)

	require.Equal(t, 2, got)
	assert.Equal(t, original, nums, "input should keep its order")
	assert.Equal(t, 1, FirstMissingPositiveOf[int](nil))
}
