// Command day09 solves Advent of Code 2022 day 9, Rope Bridge.
package main

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"

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

type motion struct {
	dir   aoc.Direction
	steps int
}

func parseMotions(in string) ([]motion, error) {
	var out []motion
	for i, line := range aoc.Lines(in) {
		ds, ns, ok := strings.Cut(line, " ")
		if !ok {
			return nil, fmt.Errorf("line %d: invalid motion %q", i+1, line)
		}
		d, err := aoc.ParseDirection(ds)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		n, err := strconv.Atoi(ns)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("line %d: invalid step count %q", i+1, ns)
		}
		out = append(out, motion{dir: d, steps: n})
	}
	return out, nil
}

// tailVisits pulls a rope of the given number of knots through the
// motions and returns how many distinct positions its tail visits.
func tailVisits(motions []motion, knots int) int {
	rope := make([]aoc.Pt, knots)
	visited := make(set.Set[aoc.Pt])
	visited.Add(rope[knots-1])
	for _, m := range motions {
		for i := 0; i < m.steps; i++ {
			rope[0] = rope[0].Step(m.dir)
			for k := 1; k < knots; k++ {
				if rope[k].Touching(rope[k-1]) {
					break
				}
				rope[k] = rope[k].Toward(rope[k-1])
			}
			visited.Add(rope[knots-1])
		}
	}
	return len(visited)
}

/*
want=13

R 4
U 4
L 3
D 1
R 4
D 1
L 5
R 2
*/
func (s solver) D9p1() any {
	return tailVisits(aoc.MustGet(parseMotions(s.Text())), 2)
}

// want=1
func (s solver) D9p2() any {
	return tailVisits(aoc.MustGet(parseMotions(s.Text())), 10)
}
