// Command day07 solves Advent of Code 2022 day 7, No Space Left On Device.
//
// The input is a terminal session that walks a filesystem depth first:
//
//	session := "$ cd " NAME NL ls session* ["$ cd .." NL]
//	ls      := "$ ls" NL entry*
//	entry   := "dir " NAME NL | SIZE " " NAME NL
//
// Directories only gain children by being entered with cd; "dir" entries
// in a listing are ignored.
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
	diskSize   = 70000000
	updateSize = 30000000
	smallDir   = 100000
)

type file struct {
	name string
	size int
}

type dir struct {
	name  string
	dirs  []*dir
	files []file
}

// walk calls visit with the total size of d and of every directory below
// it, children first, and returns the total size of d.
func (d *dir) walk(visit func(d *dir, size int)) int {
	var total int
	for _, f := range d.files {
		total += f.size
	}
	for _, c := range d.dirs {
		total += c.walk(visit)
	}
	visit(d, total)
	return total
}

type sessionParser struct {
	lines  aoc.Queue[string]
	lineNo int // of the last line consumed
}

func (p *sessionParser) peek() (string, bool) {
	return p.lines.Peek()
}

func (p *sessionParser) next() (string, bool) {
	line, ok := p.lines.Pop()
	if ok {
		p.lineNo++
	}
	return line, ok
}

func (p *sessionParser) errorf(format string, args ...any) error {
	return fmt.Errorf("line %d: %s", p.lineNo+1, fmt.Sprintf(format, args...))
}

func parseSession(in string) (*dir, error) {
	p := &sessionParser{lines: aoc.NewQueue(aoc.Lines(in)...)}
	root, err := p.parseDir()
	if err != nil {
		return nil, err
	}
	if line, ok := p.peek(); ok {
		return nil, p.errorf("unexpected %q after the root directory", line)
	}
	return root, nil
}

func (p *sessionParser) parseDir() (*dir, error) {
	line, _ := p.peek()
	name, ok := strings.CutPrefix(line, "$ cd ")
	if !ok || name == ".." || name == "" {
		return nil, p.errorf(`want "$ cd <dir>", got %q`, line)
	}
	p.next()
	d := &dir{name: name}
	if err := p.parseListing(d); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	for {
		line, ok := p.peek()
		if !ok {
			return d, nil
		}
		if line == "$ cd .." {
			p.next()
			return d, nil
		}
		if !strings.HasPrefix(line, "$ cd ") {
			return d, nil
		}
		child, err := p.parseDir()
		if err != nil {
			return nil, err
		}
		d.dirs = append(d.dirs, child)
	}
}

func (p *sessionParser) parseListing(d *dir) error {
	if line, _ := p.peek(); line != "$ ls" {
		return p.errorf(`want "$ ls", got %q`, line)
	}
	p.next()
	for {
		line, ok := p.peek()
		if !ok || strings.HasPrefix(line, "$") {
			return nil
		}
		if strings.HasPrefix(line, "dir ") {
			p.next()
			continue
		}
		size, name, ok := strings.Cut(line, " ")
		n, err := strconv.Atoi(size)
		if !ok || err != nil || name == "" {
			return p.errorf("invalid listing entry %q", line)
		}
		p.next()
		d.files = append(d.files, file{name: name, size: n})
	}
}

/*
want=95437

$ cd /
$ ls
dir a
14848514 b.txt
8504156 c.dat
dir d
$ cd a
$ ls
dir e
29116 f
2557 g
62596 h.lst
$ cd e
$ ls
584 i
$ cd ..
$ cd ..
$ cd d
$ ls
4060174 j
8033020 d.log
5626152 d.ext
7214296 k
*/
func (s solver) D7p1() any {
	root := aoc.MustGet(parseSession(s.Text()))
	var sum int
	root.walk(func(d *dir, size int) {
		if size <= smallDir {
			s.Logf("%s: %d", d.name, size)
			sum += size
		}
	})
	return sum
}

// want=24933642
func (s solver) D7p2() any {
	return smallestToFree(aoc.MustGet(parseSession(s.Text())))
}

// smallestToFree returns the size of the smallest directory whose removal
// leaves room for the update, or 0 if there is room already.
func smallestToFree(root *dir) int {
	var sizes []int
	used := root.walk(func(_ *dir, size int) {
		sizes = append(sizes, size)
	})
	needed := updateSize - (diskSize - used)
	if needed <= 0 {
		return 0
	}
	best := used
	for _, size := range sizes {
		if size > needed && size < best {
			best = size
		}
	}
	return best
}
