// Package aoc are quick & dirty utilities for solving the 2022 Advent of
// Code puzzles. Each day is its own main package under 2022/ that hands its
// solver to Run.
package aoc

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"log"
	"os"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"golang.org/x/exp/maps"
	"tailscale.com/types/logger"
)

// defaultInput is read when no input path is given on the command line.
const defaultInput = "./input"

type sample struct {
	input string
	want  string
}

// sampleRx matches a want= line optionally followed by blank lines and
// the sample input. Leading whitespace on the first input line is kept,
// but gofmt reindents doc comments, so whitespace-sensitive samples are
// written as a single input="..." line holding a Go quoted string.
var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\n(?:[ \t]*\n)*(.+\n))?`)

func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	m := sampleRx.FindStringSubmatch(text)
	if m == nil {
		var zero sample
		return zero, false
	}
	want := strings.TrimSpace(m[1])
	if strings.HasPrefix(want, `"`) {
		uq, err := strconv.Unquote(want)
		if err != nil {
			log.Fatalf("bad quoted want %s: %v", want, err)
		}
		want = uq
	}
	input := m[2]
	if v, ok := strings.CutPrefix(input, "input="); ok {
		uq, err := strconv.Unquote(strings.TrimSpace(v))
		if err != nil {
			log.Fatalf("bad quoted input %s: %v", v, err)
		}
		input = uq
	}
	return sample{
		want:  want,
		input: input,
	}, true
}

func extractSamples(src []byte) map[string]sample {
	fs := token.NewFileSet()
	f, err := parser.ParseFile(fs, "main.go", src, parser.ParseComments)
	if err != nil {
		log.Fatalf("parsing source to extract samples: %v", err)
	}
	var lastInput string
	samples := make(map[string]sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if ok {
				s.input = Or(s.input, lastInput)
				samples[fd.Name.Name] = s
				lastInput = s.input
				break
			}
		}
	}
	return samples
}

// Puzzle is embedded by a day's solver struct. It gives the D{day}p{part}
// methods access to the input of the part currently running.
type Puzzle struct {
	year       int
	day        day
	SampleMode bool

	// Logf is where solvers send debug output. It discards everything
	// unless -debug is set.
	Logf logger.Logf

	solver    partSolver
	samples   map[string]sample
	inputPath string
	input     []byte // cached contents of inputPath
}

// Input returns the sample input in sample mode and the contents of the
// input file otherwise.
func (p *Puzzle) Input() []byte {
	if p.SampleMode {
		return []byte(p.Sample().input)
	}
	if p.input == nil {
		b, err := os.ReadFile(p.inputPath)
		if err != nil {
			log.Fatalf("reading input: %v", err)
		}
		p.input = b
	}
	return p.input
}

// Text returns the input as a string without its trailing newline.
func (p *Puzzle) Text() string {
	return strings.TrimRight(string(p.Input()), "\r\n")
}

func (p *Puzzle) Scanner() *bufio.Scanner {
	return bufio.NewScanner(bytes.NewReader(p.Input()))
}

func (p *Puzzle) ForLinesY(onLine func(int, string)) {
	s := p.Scanner()
	y := -1
	for s.Scan() {
		y++
		onLine(y, s.Text())
	}
	if err := s.Err(); err != nil {
		log.Fatal(err)
	}
}

// ForLines calls onLine for each line of input.
func (p *Puzzle) ForLines(onLine func(line string)) {
	p.ForLinesY(func(_ int, line string) { onLine(line) })
}

func (p *Puzzle) Sample() sample {
	sample, ok := p.samples[p.solver.Name]
	if !ok {
		log.Fatalf("no sample found for %v", p.solver.Name)
	}
	return sample
}

type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	fn   func() any
	Part string
	Name string
}

// extractMethods registers a struct with methods named D{day}p{part} for
// each day/part of Advent of Code. The methods must have the signature
// func() any.
func extractMethods(x any) map[int]day {
	rx := regexp.MustCompile(`^D(\d+)p(\d+.*)$`)
	v := reflect.ValueOf(x).Elem()
	if v.Kind() != reflect.Struct {
		log.Fatalf("Register: got %T; want struct", x)
	}
	vt := v.Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mn := vt.Method(i).Name
		matches := rx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		m, ok := v.Method(i).Interface().(func() any)
		if !ok {
			log.Fatalf("%v: got %v; want func() any", mn, v.Method(i).Type())
		}
		day, part := matches[1], matches[2]
		d := Int(day)
		byDays[d] = append(byDays[d], partSolver{
			fn:   m,
			Part: part,
			Name: mn,
		})
	}
	days := make(map[int]day, len(byDays))
	for d, parts := range byDays {
		slices.SortFunc(parts, func(i, j partSolver) int {
			return strings.Compare(i.Part, j.Part)
		})
		days[d] = day{parts: parts, day: d}
	}
	return days
}

var (
	flagPart       string
	flagDebug      bool
	flagOnlySample bool
	flagSkipSample bool
)

func init() {
	flag.BoolVar(&flagOnlySample, "sample", false, "only run sample")
	flag.BoolVar(&flagSkipSample, "skip-sample", false, "skip sample")
	flag.BoolVar(&flagDebug, "debug", false, "debug mode")
	flag.StringVar(&flagPart, "part", "", "part to run")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [input-file (default %s)]\n", os.Args[0], defaultInput)
		flag.PrintDefaults()
	}
}

var initFlags = sync.OnceFunc(flag.Parse)

// setPuzzle points the solver's embedded *Puzzle at p.
func setPuzzle(slvr any, p *Puzzle) {
	reflect.ValueOf(slvr).Elem().FieldByName("Puzzle").Set(reflect.ValueOf(p))
}

func sortedDays(days map[int]day) []int {
	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	return dayNums
}

func runDay(w io.Writer, slvr any, year int, day day, samples map[string]sample, inputPath string) {
	logf := logger.WithPrefix(log.Printf, fmt.Sprintf("%d day %d: ", year, day.day))
	p := &Puzzle{
		year:      year,
		day:       day,
		samples:   samples,
		inputPath: inputPath,
		Logf:      logger.Discard,
	}
	if flagDebug {
		p.Logf = logf
	}
	setPuzzle(slvr, p)
	for _, ps := range day.parts {
		if flagPart != "" && ps.Part != flagPart {
			continue
		}
		p.solver = ps
		if !flagSkipSample {
			p.SampleMode = true
			checkSample(p, ps, logf)
		}
		if flagOnlySample {
			continue
		}
		p.SampleMode = false
		// Prime the input so a missing file fails before the clock starts.
		p.Input()
		t0 := time.Now()
		got := ps.fn()
		logf("part %s took %v", ps.Part, time.Since(t0).Round(time.Microsecond))
		io.WriteString(w, formatAnswer(ps.Part, got))
	}
}

func checkSample(p *Puzzle, ps partSolver, logf logger.Logf) {
	s, ok := p.samples[ps.Name]
	if !ok {
		logf("⚠️ no sample for %v", ps.Name)
		return
	}
	t0 := time.Now()
	got := fmt.Sprint(ps.fn())
	if got != s.want {
		fmt.Fprintf(os.Stderr, "❌ part %s sample: got %v; want %v\n", ps.Part, got, s.want)
		os.Exit(1)
	}
	logf("part %s sample: %v ✅ (%v)", ps.Part, got, time.Since(t0).Round(time.Microsecond))
}

// formatAnswer renders one answer line. Multi-line answers start on the
// line after the label.
func formatAnswer(part string, v any) string {
	s := fmt.Sprint(v)
	if strings.Contains(s, "\n") {
		return fmt.Sprintf("Solution to part%s: \n%s\n", part, s)
	}
	return fmt.Sprintf("Solution to part%s: %s\n", part, s)
}

// Run solves every registered part of slvr against the input file named by
// the first command line argument, after checking it against its sample.
// Any panic from a solver is fatal.
func Run(year int, src []byte, slvr any) {
	samples := extractSamples(src)
	days := extractMethods(slvr)
	initFlags()
	inputPath := Or(flag.Arg(0), defaultInput)

	defer func() {
		if r := recover(); r != nil {
			log.Fatalf("%v", r)
		}
	}()
	for _, d := range sortedDays(days) {
		runDay(os.Stdout, slvr, year, days[d], samples, inputPath)
	}
}

// Test checks every registered part of slvr against the sample in its doc
// comment, one subtest per method. Parts without a sample are skipped.
func Test(t *testing.T, src []byte, slvr any) {
	t.Helper()
	samples := extractSamples(src)
	days := extractMethods(slvr)
	if len(days) == 0 {
		t.Fatalf("no D{day}p{part} methods on %T", slvr)
	}
	for _, dn := range sortedDays(days) {
		d := days[dn]
		p := &Puzzle{
			day:        d,
			samples:    samples,
			SampleMode: true,
		}
		setPuzzle(slvr, p)
		for _, ps := range d.parts {
			t.Run(ps.Name, func(t *testing.T) {
				s, ok := samples[ps.Name]
				if !ok {
					t.Skipf("no sample for %v", ps.Name)
				}
				p.solver = ps
				p.Logf = t.Logf
				if got := fmt.Sprint(ps.fn()); got != s.want {
					t.Errorf("%v = %q; want %q", ps.Name, got, s.want)
				}
			})
		}
	}
}

// MustDo panics if err is non-nil.
func MustDo(err error) {
	if err != nil {
		panic(err)
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(v).IsZero() {
			return v
		}
	}
	var zero T
	return zero
}

// Lines splits s into lines, ignoring a trailing newline.
func Lines(s string) []string {
	s = strings.TrimRight(s, "\r\n")
	if s == "" {
		return nil
	}
	return strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
}

// Paragraphs splits s into blocks of lines separated by blank lines.
func Paragraphs(s string) [][]string {
	var out [][]string
	var cur []string
	for _, line := range Lines(s) {
		if strings.TrimSpace(line) == "" {
			if len(cur) > 0 {
				out = append(out, cur)
			}
			cur = nil
			continue
		}
		cur = append(cur, line)
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}

// Chunks splits in into consecutive groups of n. A short final group is
// dropped.
func Chunks[T any](in []T, n int) [][]T {
	if n <= 0 {
		panic("aoc: Chunks with non-positive size")
	}
	var out [][]T
	for i := 0; i+n <= len(in); i += n {
		out = append(out, in[i:i+n:i+n])
	}
	return out
}
