package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	aoc "github.com/maisem/aoc2022"
)

func TestSamples(t *testing.T) {
	aoc.Test(t, source, &solver{})
}

func TestElfTotals(t *testing.T) {
	tests := []struct {
		in      string
		want    []int
		wantErr bool
	}{
		{in: "1000\n2000\n\n4000\n", want: []int{3000, 4000}},
		{in: "\n\n1\n\n\n2", want: []int{1, 2}},
		{in: "", want: nil},
		{in: "1000\nabc\n", wantErr: true},
	}
	for _, tt := range tests {
		got, err := elfTotals(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("elfTotals(%q) error = %v; wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("elfTotals(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}
