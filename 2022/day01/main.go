// Command day01 solves Advent of Code 2022 day 1, Calorie Counting.
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

// elfTotals returns the calorie total carried by each elf. Elves are
// separated by blank lines.
func elfTotals(in string) ([]int, error) {
	var totals []int
	for i, para := range aoc.Paragraphs(in) {
		var sum int
		for _, line := range para {
			n, err := strconv.Atoi(strings.TrimSpace(line))
			if err != nil {
				return nil, fmt.Errorf("elf %d: bad calories %q: %w", i+1, line, err)
			}
			sum += n
		}
		totals = append(totals, sum)
	}
	return totals, nil
}

/*
want=24000

1000
2000
3000

4000

5000
6000

7000
8000
9000

10000
*/
func (s solver) D1p1() any {
	return aoc.Max(aoc.MustGet(elfTotals(s.Text()))...)
}

// want=45000
func (s solver) D1p2() any {
	totals := aoc.MustGet(elfTotals(s.Text()))
	return aoc.Sum(aoc.TopN(totals, 3)...)
}
