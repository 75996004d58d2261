// Command day06 solves Advent of Code 2022 day 6, Tuning Trouble.
package main

import (
	_ "embed"
	"fmt"

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

// marker returns the number of characters processed when the last n
// characters are first all distinct.
func marker(buf string, n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("window size %d", n)
	}
	var counts [256]int
	distinct := 0
	for i := 0; i < len(buf); i++ {
		if counts[buf[i]]++; counts[buf[i]] == 1 {
			distinct++
		}
		if i >= n {
			old := buf[i-n]
			if counts[old]--; counts[old] == 0 {
				distinct--
			}
		}
		if distinct == n {
			return i + 1, nil
		}
	}
	return 0, fmt.Errorf("no run of %d distinct characters in %d bytes", n, len(buf))
}

/*
want=7

mjqjpqmgbljsphdztnvjfqwrcgsmlb
*/
func (s solver) D6p1() any {
	return aoc.MustGet(marker(s.Text(), 4))
}

// want=19
func (s solver) D6p2() any {
	return aoc.MustGet(marker(s.Text(), 14))
}
