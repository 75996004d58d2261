// Command day04 solves Advent of Code 2022 day 4, Camp Cleanup.
package main

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"

	aoc "github.com/maisem/aoc2022"
)

func main() {
	aoc.Run(2022, source, &solver{})
}

//go:embed main.go
var source []byte

type solver struct {
	*aoc.Puzzle
}

// span is an inclusive range of section IDs.
type span struct {
	lo, hi int
}

func (a span) contains(b span) bool {
	return a.lo <= b.lo && b.hi <= a.hi
}

func (a span) overlaps(b span) bool {
	return a.lo <= b.hi && b.lo <= a.hi
}

func parseSpan(s string) (span, error) {
	lo, hi, ok := strings.Cut(s, "-")
	if !ok {
		return span{}, fmt.Errorf("invalid range %q", s)
	}
	a, err := strconv.Atoi(lo)
	if err != nil {
		return span{}, fmt.Errorf("invalid range %q: %w", s, err)
	}
	b, err := strconv.Atoi(hi)
	if err != nil {
		return span{}, fmt.Errorf("invalid range %q: %w", s, err)
	}
	return span{a, b}, nil
}

func parsePairs(in string) ([][2]span, error) {
	var pairs [][2]span
	for i, line := range aoc.Lines(in) {
		l, r, ok := strings.Cut(line, ",")
		if !ok {
			return nil, fmt.Errorf("line %d: missing comma in %q", i+1, line)
		}
		a, err := parseSpan(l)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		b, err := parseSpan(r)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		pairs = append(pairs, [2]span{a, b})
	}
	return pairs, nil
}

func countPairs(pairs [][2]span, f func(a, b span) bool) int {
	var n int
	for _, p := range pairs {
		if f(p[0], p[1]) {
			n++
		}
	}
	return n
}

/*
want=2

2-4,6-8
2-3,4-5
5-7,7-9
2-8,3-7
6-6,4-6
2-6,4-8
*/
func (s solver) D4p1() any {
	return countPairs(aoc.MustGet(parsePairs(s.Text())), func(a, b span) bool {
		return a.contains(b) || b.contains(a)
	})
}

// want=4
func (s solver) D4p2() any {
	return countPairs(aoc.MustGet(parsePairs(s.Text())), span.overlaps)
}
