// Command day08 solves Advent of Code 2022 day 8, Treetop Tree House.
package main

import (
	_ "embed"
	"fmt"
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

type forest = aoc.Grid[int]

func parseForest(in string) (forest, error) {
	lines := aoc.Lines(in)
	for y, line := range lines {
		if i := strings.IndexFunc(line, func(r rune) bool { return r < '0' || r > '9' }); i >= 0 {
			return nil, fmt.Errorf("line %d: %q is not a tree height", y+1, line[i])
		}
	}
	g, err := aoc.ParseGrid(lines, aoc.Digit)
	if err != nil {
		return nil, err
	}
	if len(g) == 0 {
		return nil, fmt.Errorf("empty forest")
	}
	return g, nil
}

// look walks from p toward the edge in direction d. It returns how many
// trees are seen, stopping at the first one at least as tall as p's, and
// whether the view reached the edge unblocked.
func look(g forest, p aoc.Pt, d aoc.Direction) (seen int, clear bool) {
	h := g.At(p)
	path := aoc.Path{Pt: p, Dir: d}
	for {
		next, ok := g.Move(path)
		if !ok {
			return seen, true
		}
		seen++
		if g.At(next.Pt) >= h {
			return seen, false
		}
		path = next
	}
}

func visible(g forest, p aoc.Pt) bool {
	for _, d := range aoc.Directions {
		if _, clear := look(g, p, d); clear {
			return true
		}
	}
	return false
}

func scenicScore(g forest, p aoc.Pt) int {
	score := 1
	for _, d := range aoc.Directions {
		seen, _ := look(g, p, d)
		score *= seen
	}
	return score
}

func forEachTree(g forest, f func(aoc.Pt)) {
	size := g.Size()
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			f(aoc.Pt{X: x, Y: y})
		}
	}
}

/*
want=21

30373
25512
65332
33549
35390
*/
func (s solver) D8p1() any {
	g := aoc.MustGet(parseForest(s.Text()))
	var n int
	forEachTree(g, func(p aoc.Pt) {
		if visible(g, p) {
			n++
		}
	})
	return n
}

// want=8
func (s solver) D8p2() any {
	g := aoc.MustGet(parseForest(s.Text()))
	var best int
	forEachTree(g, func(p aoc.Pt) {
		best = max(best, scenicScore(g, p))
	})
	return best
}
