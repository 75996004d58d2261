package main

import (
	"testing"

	aoc "github.com/maisem/aoc2022"
)

func TestSamples(t *testing.T) {
	aoc.Test(t, source, &solver{})
}

func TestSpan(t *testing.T) {
	tests := []struct {
		a, b              span
		contains, overlap bool
	}{
		{span{2, 8}, span{3, 7}, true, true},
		{span{6, 6}, span{4, 6}, false, true},
		{span{4, 6}, span{6, 6}, true, true},
		{span{5, 7}, span{7, 9}, false, true},
		{span{2, 4}, span{6, 8}, false, false},
		{span{2, 3}, span{4, 5}, false, false},
	}
	for _, tt := range tests {
		if got := tt.a.contains(tt.b); got != tt.contains {
			t.Errorf("%v.contains(%v) = %v; want %v", tt.a, tt.b, got, tt.contains)
		}
		if got := tt.a.overlaps(tt.b); got != tt.overlap {
			t.Errorf("%v.overlaps(%v) = %v; want %v", tt.a, tt.b, got, tt.overlap)
		}
		if got := tt.b.overlaps(tt.a); got != tt.overlap {
			t.Errorf("%v.overlaps(%v) = %v; want %v", tt.b, tt.a, got, tt.overlap)
		}
	}
}

func TestParsePairsErrors(t *testing.T) {
	for _, in := range []string{"2-4", "2-4,68", "a-4,6-8", "2-4,6-x"} {
		if _, err := parsePairs(in); err == nil {
			t.Errorf("parsePairs(%q) succeeded", in)
		}
	}
}
