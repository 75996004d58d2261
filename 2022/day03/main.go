// Command day03 solves Advent of Code 2022 day 3, Rucksack Reorganization.
package main

import (
	_ "embed"
	"fmt"

	aoc "github.com/maisem/aoc2022"
	"tailscale.com/util/set"
)

func main() {
	aoc.Run(2022, source, &solver{})
}

//go:embed main.go
var source []byte

type solver struct {
	*aoc.Puzzle
}

// priority maps a-z to 1-26 and A-Z to 27-52.
func priority(c byte) (int, error) {
	switch {
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 1, nil
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 27, nil
	}
	return 0, fmt.Errorf("invalid item %q", c)
}

// common returns the first item of the last group that appears in every
// other group.
func common(groups ...string) (byte, error) {
	if len(groups) < 2 {
		return 0, fmt.Errorf("need at least 2 groups, got %d", len(groups))
	}
	shared := make(set.Set[byte])
	for i := 0; i < len(groups[0]); i++ {
		shared.Add(groups[0][i])
	}
	for _, g := range groups[1 : len(groups)-1] {
		next := make(set.Set[byte])
		for i := 0; i < len(g); i++ {
			if shared.Contains(g[i]) {
				next.Add(g[i])
			}
		}
		shared = next
	}
	last := groups[len(groups)-1]
	for i := 0; i < len(last); i++ {
		if shared.Contains(last[i]) {
			return last[i], nil
		}
	}
	return 0, fmt.Errorf("no common item in %q", groups)
}

func sumPriorities(groups [][]string) (int, error) {
	var sum int
	for i, g := range groups {
		c, err := common(g...)
		if err != nil {
			return 0, fmt.Errorf("group %d: %w", i+1, err)
		}
		p, err := priority(c)
		if err != nil {
			return 0, fmt.Errorf("group %d: %w", i+1, err)
		}
		sum += p
	}
	return sum, nil
}

// compartments splits each rucksack into its two halves.
func compartments(lines []string) ([][]string, error) {
	var out [][]string
	for i, line := range lines {
		if len(line)%2 != 0 {
			return nil, fmt.Errorf("line %d: odd length %d", i+1, len(line))
		}
		h := len(line) / 2
		out = append(out, []string{line[:h], line[h:]})
	}
	return out, nil
}

/*
want=157

vJrwpWtwJgWrhcsFMMfFFhFp
jqHRNqRjqzjGDLGLrsFMfFZSrLrFZsSL
PmmdzqPrVvPwwTWBwg
wMqvLMZHhHMvwLHjbvcjnnSBnvTQFn
ttgJtRGJQctTZtZT
CrZsJsPPZsGzwwsLwLmpwMDw
*/
func (s solver) D3p1() any {
	groups := aoc.MustGet(compartments(aoc.Lines(s.Text())))
	return aoc.MustGet(sumPriorities(groups))
}

// want=70
func (s solver) D3p2() any {
	return aoc.MustGet(sumPriorities(aoc.Chunks(aoc.Lines(s.Text()), 3)))
}
