package aoc

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// Grid is a rectangular grid indexed as g[y][x].
type Grid[T any] [][]T

func (g Grid[T]) At(p Pt) T {
	return g[p.Y][p.X]
}

func (g Grid[T]) Set(p Pt, v T) {
	g[p.Y][p.X] = v
}

func (g Grid[T]) AtOk(p Pt) (T, bool) {
	if !g.In(p) {
		var zero T
		return zero, false
	}
	return g[p.Y][p.X], true
}

// In reports whether p lies within the grid.
func (g Grid[T]) In(p Pt) bool {
	size := g.Size()
	return p.X >= 0 && p.Y >= 0 && p.X < size.X && p.Y < size.Y
}

func MakeGrid[T any](x, y int) Grid[T] {
	out := make(Grid[T], y)
	for i := range out {
		out[i] = make([]T, x)
	}
	return out
}

// ParseGrid builds a grid from lines, mapping each rune through f. All
// lines must have the same length.
func ParseGrid[T any](lines []string, f func(rune) T) (Grid[T], error) {
	g := make(Grid[T], 0, len(lines))
	for y, line := range lines {
		row := make([]T, 0, len(line))
		for _, r := range line {
			row = append(row, f(r))
		}
		if y > 0 && len(row) != len(g[0]) {
			return nil, fmt.Errorf("line %d: width %d; want %d", y+1, len(row), len(g[0]))
		}
		g = append(g, row)
	}
	return g, nil
}

func (g Grid[T]) Size() Pt {
	if len(g) == 0 {
		return Pt{}
	}
	return Pt{len(g[0]), len(g)}
}

// String renders the grid one row per line, without a trailing newline.
func (g Grid[T]) String() string {
	var sb strings.Builder
	for y, row := range g {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, v := range row {
			switch v := any(v).(type) {
			case rune:
				sb.WriteRune(v)
			case byte:
				sb.WriteByte(v)
			default:
				fmt.Fprint(&sb, v)
			}
		}
	}
	return sb.String()
}

// Path is a point and a direction.
type Path struct {
	Pt  Pt
	Dir Direction
}

// Move advances p one step in its direction. It reports false if that
// leaves the grid.
func (g Grid[T]) Move(p Path) (Path, bool) {
	p.Pt = p.Pt.Step(p.Dir)
	if !g.In(p.Pt) {
		return Path{}, false
	}
	return p, true
}

type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists the four directions clockwise from Up.
var Directions = [...]Direction{Up, Right, Down, Left}

// ParseDirection maps U/R/D/L to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "U":
		return Up, nil
	case "R":
		return Right, nil
	case "D":
		return Down, nil
	case "L":
		return Left, nil
	}
	return 0, fmt.Errorf("bad direction %q", s)
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "<"
	case Right:
		return ">"
	case Up:
		return "^"
	case Down:
		return "v"
	}
	return ""
}

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}

// Step returns the neighbor of p in direction d. Up is toward smaller Y.
func (p Pt2[T]) Step(d Direction) Pt2[T] {
	switch d {
	case Up:
		p.Y--
	case Right:
		p.X++
	case Down:
		p.Y++
	case Left:
		p.X--
	}
	return p
}

// Touching reports whether a and b are the same point or neighbors,
// diagonals included.
func (a Pt2[T]) Touching(b Pt2[T]) bool {
	return AbsDiff(a.X, b.X) <= 1 && AbsDiff(a.Y, b.Y) <= 1
}

// Toward returns a point moving from p to b in max 1 step in the X
// and/or Y direction.
func (p Pt2[T]) Toward(b Pt2[T]) Pt2[T] {
	return Pt2[T]{p.X + Sign(b.X-p.X), p.Y + Sign(b.Y-p.Y)}
}
