package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ErrInvalidInteger is returned when a token in an integer list cannot be parsed.
var ErrInvalidInteger = errors.New("invalid integer")

// ParseInts parses a list of base-10 integers separated by commas and/or whitespace.
// An empty or blank string yields an empty slice.
func ParseInts(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	nums := make([]int, 0, len(fields))
	for _, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrInvalidInteger, field, err)
		}
		nums = append(nums, n)
	}
	return nums, nil
}

// ParseIntArgs parses every argument with ParseInts and concatenates the results,
// so both `1 2 3` and `1,2,3` are accepted.
func ParseIntArgs(args []string) ([]int, error) {
	var nums []int
	for _, arg := range args {
		parsed, err := ParseInts(arg)
		if err != nil {
			return nil, err
		}
		nums = append(nums, parsed...)
	}
	return nums, nil
}

// FormatInts renders nums the way ParseInts reads them back.
func FormatInts(nums []int) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}
