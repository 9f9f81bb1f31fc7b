package intseq

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetMin(t *testing.T) {
	tests := []struct {
		name      string
		input     []int
		threshold int
		want      int
	}{
		{
			name:      "nil slice",
			input:     nil,
			threshold: 5,
			want:      0,
		},
		{
			name:      "empty slice negative threshold",
			input:     []int{},
			threshold: -100,
			want:      0,
		},
		{
			name:      "negatives with one below threshold",
			input:     []int{-5, -2, -10},
			threshold: -8,
			want:      -5,
		},
		{
			name:      "only positives",
			input:     []int{1, 2, 3},
			threshold: 0,
			want:      0,
		},
		{
			name:      "order does not matter",
			input:     []int{-2, -5, -3},
			threshold: -8,
			want:      -5,
		},
		{
			name:      "value equal to threshold is excluded",
			input:     []int{-8, -4},
			threshold: -8,
			want:      -4,
		},
		{
			name:      "zero is never picked",
			input:     []int{0, 0},
			threshold: -1,
			want:      0,
		},
		{
			name:      "threshold above zero blocks everything",
			input:     []int{-1, -2, 7},
			threshold: 3,
			want:      0,
		},
		{
			name:      "minimum int threshold",
			input:     []int{math.MinInt + 1, -1},
			threshold: math.MinInt,
			want:      math.MinInt + 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetMin(tt.input, tt.threshold)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetMin_DoesNotModifyInput(t *testing.T) {
	nums := []int{-2, -5, 4, -3}

	GetMin(nums, -10)

	assert.Equal(t, []int{-2, -5, 4, -3}, nums)
}

func TestGetMin_OtherWidths(t *testing.T) {
	assert.Equal(t, int64(math.MinInt64+1), GetMin([]int64{math.MinInt64 + 1, math.MinInt64, 5}, math.MinInt64))
	assert.Equal(t, int64(0), GetMin([]int64{10, 20}, -1))
}
