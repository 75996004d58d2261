// Command day05 solves Advent of Code 2022 day 5, Supply Stacks.
package main

import (
	_ "embed"
	"fmt"
	"regexp"
	"slices"
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

// move is one crane instruction. from and to are 0-based stack indexes.
type move struct {
	n, from, to int
}

type ship struct {
	stacks []aoc.Stack[byte]
	moves  []move
}

var moveRx = regexp.MustCompile(`^move (\d+) from (\d+) to (\d+)$`)

// isLabelLine reports whether line is the row of stack numbers under the
// crate diagram.
func isLabelLine(line string) bool {
	f := strings.Fields(line)
	return len(f) > 0 && f[0] == "1" && !strings.Contains(line, "[")
}

func parseShip(in string) (*ship, error) {
	var (
		diagram []string
		sh      *ship
	)
	for i, line := range aoc.Lines(in) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if sh == nil {
			if !isLabelLine(line) {
				diagram = append(diagram, line)
				continue
			}
			var err error
			if sh, err = parseDiagram(diagram, line); err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
			continue
		}
		m := moveRx.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			return nil, fmt.Errorf("line %d: invalid move %q", i+1, line)
		}
		mv := move{n: aoc.Int(m[1]), from: aoc.Int(m[2]) - 1, to: aoc.Int(m[3]) - 1}
		if mv.from < 0 || mv.from >= len(sh.stacks) || mv.to < 0 || mv.to >= len(sh.stacks) {
			return nil, fmt.Errorf("line %d: move %q names a missing stack", i+1, line)
		}
		sh.moves = append(sh.moves, mv)
	}
	if sh == nil {
		return nil, fmt.Errorf("no stack label line")
	}
	return sh, nil
}

// parseDiagram builds the stacks from the crate rows, top row first.
// Crate letters sit at columns 1, 5, 9 and so on.
func parseDiagram(rows []string, labels string) (*ship, error) {
	f := strings.Fields(labels)
	n, err := strconv.Atoi(f[len(f)-1])
	if err != nil {
		return nil, fmt.Errorf("bad stack labels %q: %w", labels, err)
	}
	sh := &ship{stacks: make([]aoc.Stack[byte], n)}
	for i := len(rows) - 1; i >= 0; i-- {
		row := rows[i]
		for pos := 1; pos < len(row); pos += 4 {
			c := row[pos]
			if c == ' ' {
				continue
			}
			if !('A' <= c && c <= 'Z' || 'a' <= c && c <= 'z') {
				return nil, fmt.Errorf("bad crate %q in row %q", c, row)
			}
			idx := pos / 4
			if idx >= n {
				return nil, fmt.Errorf("crate %q beyond stack %d", c, n)
			}
			sh.stacks[idx].Push(c)
		}
	}
	return sh, nil
}

// run applies every move. With batch set, the crane moves a whole pile at
// once and keeps its order; otherwise crates move one at a time.
func (sh *ship) run(batch bool) error {
	for i, m := range sh.moves {
		crates, ok := sh.stacks[m.from].PopN(m.n)
		if !ok {
			return fmt.Errorf("move %d: stack %d holds %d crates, want %d", i+1, m.from+1, sh.stacks[m.from].Len(), m.n)
		}
		if !batch {
			slices.Reverse(crates)
		}
		sh.stacks[m.to].Push(crates...)
	}
	return nil
}

// tops returns the top crate of each stack. Empty stacks are skipped.
func (sh *ship) tops() string {
	var sb strings.Builder
	for i := range sh.stacks {
		if c, ok := sh.stacks[i].Peek(); ok {
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

func (s solver) rearrange(batch bool) string {
	sh := aoc.MustGet(parseShip(s.Text()))
	aoc.MustDo(sh.run(batch))
	return sh.tops()
}

/*
want=CMZ

input="    [D]    \n[N] [C]    \n[Z] [M] [P]\n 1   2   3 \n\nmove 1 from 2 to 1\nmove 3 from 1 to 3\nmove 2 from 2 to 1\nmove 1 from 1 to 2\n"
*/
func (s solver) D5p1() any {
	return s.rearrange(false)
}

// want=MCD
func (s solver) D5p2() any {
	return s.rearrange(true)
}
