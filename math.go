package aoc

import (
	"cmp"
	"log"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Digit returns the digit value of the rune.
func Digit(r rune) int {
	if r < '0' || r > '9' {
		log.Fatalf("not a digit: %q", r)
	}
	return int(r - '0')
}

type Number interface {
	constraints.Float | constraints.Integer
}

// Sum returns the sum of nums.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// Max returns the largest of nums, or the zero value if there are none.
func Max[T constraints.Ordered](nums ...T) T {
	if len(nums) == 0 {
		var zero T
		return zero
	}
	return slices.Max(nums)
}

// TopN returns the n largest values of nums in descending order. It
// returns fewer than n if nums is shorter.
func TopN[T constraints.Ordered](nums []T, n int) []T {
	s := slices.Clone(nums)
	slices.SortFunc(s, func(a, b T) int { return cmp.Compare(b, a) })
	return s[:min(n, len(s))]
}

// AbsDiff returns the absolute difference between x and y.
func AbsDiff[T Number](x, y T) T {
	v := x - y
	if v < 0 {
		v = -v
	}
	return v
}

// Sign returns -1, 0 or 1 according to the sign of x.
func Sign[T constraints.Signed](x T) T {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}

// Int returns the int value of the string.
func Int(s string) int {
	return MustGet(strconv.Atoi(strings.TrimSpace(s)))
}
