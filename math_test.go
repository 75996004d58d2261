package aoc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTopN(t *testing.T) {
	in := []int{6000, 4000, 11000, 24000, 10000}
	if diff := cmp.Diff([]int{24000, 11000, 10000}, TopN(in, 3)); diff != "" {
		t.Errorf("TopN mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{6000, 4000, 11000, 24000, 10000}, in); diff != "" {
		t.Errorf("TopN modified its input (-want +got):\n%s", diff)
	}
	if got := TopN([]int{5}, 3); len(got) != 1 {
		t.Errorf("TopN of one value returned %d values", len(got))
	}
}

func TestSumMax(t *testing.T) {
	if got := Sum(1000, 2000, 3000); got != 6000 {
		t.Errorf("Sum = %d; want 6000", got)
	}
	if got := Max(3, 9, 4); got != 9 {
		t.Errorf("Max = %d; want 9", got)
	}
	if got := Max[int](); got != 0 {
		t.Errorf("Max() = %d; want 0", got)
	}
}

func TestSign(t *testing.T) {
	for x, want := range map[int]int{-7: -1, 0: 0, 3: 1} {
		if got := Sign(x); got != want {
			t.Errorf("Sign(%d) = %d; want %d", x, got, want)
		}
	}
}
