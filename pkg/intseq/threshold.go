package intseq

// GetMin scans nums with an accumulator m that starts at 0 and replaces m with
// num whenever num < m and num > d. It returns m.
//
// Because m starts at 0, only negative values strictly above d can ever be
// picked, so the result is the smallest value of nums in the open interval
// (d, 0), or 0 when there is none:
//
//	GetMin([]int{-5, -2, -10}, -8) == -5
//	GetMin([]int{1, 2, 3}, 0)      == 0
//
// The rule is kept as is; it is not a general "minimum above d".
func GetMin[T Signed](nums []T, d T) T {
	var m T
	for _, num := range nums {
		if num < m && num > d {
			m = num
		}
	}
	return m
}
