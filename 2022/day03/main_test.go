package main

import (
	"testing"

	aoc "github.com/maisem/aoc2022"
)

func TestSamples(t *testing.T) {
	aoc.Test(t, source, &solver{})
}

func TestPriority(t *testing.T) {
	tests := []struct {
		c       byte
		want    int
		wantErr bool
	}{
		{c: 'a', want: 1},
		{c: 'p', want: 16},
		{c: 'z', want: 26},
		{c: 'A', want: 27},
		{c: 'L', want: 38},
		{c: 'Z', want: 52},
		{c: '1', wantErr: true},
	}
	for _, tt := range tests {
		got, err := priority(tt.c)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("priority(%q) = %d, %v; want %d, wantErr %v", tt.c, got, err, tt.want, tt.wantErr)
		}
	}
}

func TestCommon(t *testing.T) {
	tests := []struct {
		groups  []string
		want    byte
		wantErr bool
	}{
		{groups: []string{"vJrwpWtwJgWr", "hcsFMMfFFhFp"}, want: 'p'},
		{groups: []string{
			"vJrwpWtwJgWrhcsFMMfFFhFp",
			"jqHRNqRjqzjGDLGLrsFMfFZSrLrFZsSL",
			"PmmdzqPrVvPwwTWBwg",
		}, want: 'r'},
		{groups: []string{"abc", "def"}, wantErr: true},
	}
	for _, tt := range tests {
		got, err := common(tt.groups...)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("common(%q) = %q, %v; want %q, wantErr %v", tt.groups, got, err, tt.want, tt.wantErr)
		}
	}
}

func TestCompartmentsOddLength(t *testing.T) {
	if _, err := compartments([]string{"abcd", "abc"}); err == nil {
		t.Error("compartments accepted an odd-length line")
	}
}

func TestPartialGroupIgnored(t *testing.T) {
	lines := []string{"ab", "bc", "bd", "zz"}
	got, err := sumPriorities(aoc.Chunks(lines, 3))
	if err != nil || got != 2 {
		t.Errorf("sumPriorities = %d, %v; want 2", got, err)
	}
}
