// Command day10 solves Advent of Code 2022 day 10, Cathode-Ray Tube.
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

const (
	screenWidth  = 40
	screenHeight = 6
)

// xTrace runs the program and returns the X register during each cycle:
// xTrace[i] is X during cycle i+1. The final entry is X once the program
// has finished.
func xTrace(in string) ([]int, error) {
	x := 1
	var out []int
	for i, line := range aoc.Lines(in) {
		if line == "noop" {
			out = append(out, x)
			continue
		}
		arg, ok := strings.CutPrefix(line, "addx ")
		if !ok {
			return nil, fmt.Errorf("line %d: unknown instruction %q", i+1, line)
		}
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad addx operand: %w", i+1, err)
		}
		out = append(out, x, x)
		x += v
	}
	return append(out, x), nil
}

// signalStrength sums cycle*X for cycles 20, 60, 100 and so on.
func signalStrength(trace []int) int {
	var sum int
	for i := 19; i < len(trace); i += screenWidth {
		sum += (i + 1) * trace[i]
	}
	return sum
}

// render draws the CRT. A pixel is lit when the 3-wide sprite centered on
// X covers the column being drawn.
func render(trace []int) string {
	n := min(len(trace), screenWidth*screenHeight)
	screen := make(aoc.Grid[rune], 0, screenHeight)
	for i := 0; i < n; i++ {
		col := i % screenWidth
		if col == 0 {
			screen = append(screen, make([]rune, 0, screenWidth))
		}
		px := ' '
		if aoc.AbsDiff(trace[i], col) <= 1 {
			px = '#'
		}
		row := len(screen) - 1
		screen[row] = append(screen[row], px)
	}
	return screen.String()
}

/*
want=13140

addx 15
addx -11
addx 6
addx -3
addx 5
addx -1
addx -8
addx 13
addx 4
noop
addx -1
addx 5
addx -1
addx 5
addx -1
addx 5
addx -1
addx 5
addx -1
addx -35
addx 1
addx 24
addx -19
addx 1
addx 16
addx -11
noop
noop
addx 21
addx -15
noop
noop
addx -3
addx 9
addx 1
addx -3
addx 8
addx 1
addx 5
noop
noop
noop
noop
noop
addx -36
noop
addx 1
addx 7
noop
noop
noop
addx 2
addx 6
noop
noop
noop
noop
noop
addx 1
noop
noop
addx 7
addx 1
noop
addx -13
addx 13
addx 7
noop
addx 1
addx -33
noop
noop
noop
addx 2
noop
noop
noop
addx 8
noop
addx -1
addx 2
addx 1
noop
addx 17
addx -9
addx 1
addx 1
addx -3
addx 11
noop
noop
addx 1
noop
addx 1
noop
noop
addx -13
addx -19
addx 1
addx 3
addx 26
addx -30
addx 12
addx -1
addx 3
addx 1
noop
noop
noop
addx -9
addx 18
addx 1
addx 2
noop
noop
addx 9
noop
noop
noop
addx -1
addx 2
addx -37
addx 1
addx 3
noop
addx 15
addx -21
addx 22
addx -6
addx 1
noop
addx 2
addx 1
noop
addx -10
noop
noop
addx 20
addx 1
addx 2
addx 2
addx -6
addx -11
noop
noop
noop
*/
func (s solver) D10p1() any {
	return signalStrength(aoc.MustGet(xTrace(s.Text())))
}

// want="##  ##  ##  ##  ##  ##  ##  ##  ##  ##  \n###   ###   ###   ###   ###   ###   ### \n####    ####    ####    ####    ####    \n#####     #####     #####     #####     \n######      ######      ######      ####\n#######       #######       #######     "
func (s solver) D10p2() any {
	return render(aoc.MustGet(xTrace(s.Text())))
}
