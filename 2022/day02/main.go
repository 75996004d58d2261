// Command day02 solves Advent of Code 2022 day 2, Rock Paper Scissors.
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

type shape int

const (
	rock shape = iota
	paper
	scissors
)

func (s shape) score() int { return int(s) + 1 }

// beats returns the shape that s defeats.
func (s shape) beats() shape { return (s + 2) % 3 }

// losesTo returns the shape that defeats s.
func (s shape) losesTo() shape { return (s + 1) % 3 }

// outcome is the score for playing us against them.
func outcome(them, us shape) int {
	switch {
	case us == them:
		return 3
	case us.beats() == them:
		return 6
	}
	return 0
}

// round is one line of the strategy guide. col is the second column,
// X=0, Y=1, Z=2, whose meaning differs between parts.
type round struct {
	them shape
	col  int
}

func parseRound(line string) (round, error) {
	f := strings.Fields(line)
	if len(f) != 2 || len(f[0]) != 1 || len(f[1]) != 1 {
		return round{}, fmt.Errorf("invalid round %q", line)
	}
	them, col := f[0][0], f[1][0]
	if them < 'A' || them > 'C' || col < 'X' || col > 'Z' {
		return round{}, fmt.Errorf("invalid round %q", line)
	}
	return round{them: shape(them - 'A'), col: int(col - 'X')}, nil
}

func parseGuide(in string) ([]round, error) {
	var rounds []round
	for i, line := range aoc.Lines(in) {
		r, err := parseRound(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		rounds = append(rounds, r)
	}
	return rounds, nil
}

// totalScore plays every round with the shape chosen by pick.
func totalScore(rounds []round, pick func(round) shape) int {
	var total int
	for _, r := range rounds {
		us := pick(r)
		total += us.score() + outcome(r.them, us)
	}
	return total
}

/*
want=15

A Y
B X
C Z
*/
func (s solver) D2p1() any {
	return totalScore(aoc.MustGet(parseGuide(s.Text())), func(r round) shape {
		return shape(r.col)
	})
}

// want=12
func (s solver) D2p2() any {
	return totalScore(aoc.MustGet(parseGuide(s.Text())), func(r round) shape {
		switch r.col {
		case 0:
			return r.them.beats()
		case 1:
			return r.them
		}
		return r.them.losesTo()
	})
}
