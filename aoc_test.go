package aoc

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseSample(t *testing.T) {
	tests := []struct {
		comment string
		want    sample
	}{
		{
			comment: `/*
want=1

some-input
*/`,
			want: sample{
				want: "1",
				input: `some-input
`,
			},
		},
		{
			comment: `/*
want=1234

multi-line-input
other-line
other-line-2
*/`,
			want: sample{
				want: "1234",
				input: `multi-line-input
other-line
other-line-2
`,
			},
		},
		{
			// Leading indentation of the first input line is significant.
			comment: `/*
want=CMZ

    [D]
[N] [C]
*/`,
			want: sample{
				want: "CMZ",
				input: `    [D]
[N] [C]
`,
			},
		},
		{
			comment: `/*
want=CMZ

input="    [D]    \n 1 \n"
*/`,
			want: sample{
				want:  "CMZ",
				input: "    [D]    \n 1 \n",
			},
		},
		{
			comment: `// want=45000`,
			want:    sample{want: "45000"},
		},
		{
			comment: `// want="a\nb"`,
			want:    sample{want: "a\nb"},
		},
	}

	for _, tt := range tests {
		got, ok := parseSample(tt.comment)
		if !ok {
			t.Errorf("parseSample(%q) found no sample", tt.comment)
			continue
		}
		if diff := cmp.Diff(tt.want, got, cmp.AllowUnexported(sample{})); diff != "" {
			t.Errorf("parseSample(%q) mismatch (-want +got):\n%s", tt.comment, diff)
		}
	}
}

func TestParseSampleNone(t *testing.T) {
	if got, ok := parseSample("// D1p1 solves part 1."); ok {
		t.Errorf("parseSample = %+v; want none", got)
	}
}

const testSource = `package main

/*
want=6

1
2
3
*/
func (s solver) D1p1() any { return nil }

// want=3
func (s solver) D1p2() any { return nil }

func (s solver) D1p3() any { return nil }
`

func TestExtractSamples(t *testing.T) {
	got := extractSamples([]byte(testSource))
	want := map[string]sample{
		"D1p1": {want: "6", input: "1\n2\n3\n"},
		"D1p2": {want: "3", input: "1\n2\n3\n"},
	}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(sample{})); diff != "" {
		t.Errorf("extractSamples mismatch (-want +got):\n%s", diff)
	}
}

type testSolver struct {
	*Puzzle
}

/*
want=6

1
2
3
*/
func (s testSolver) D1p1() any {
	var sum int
	s.ForLines(func(line string) {
		sum += Int(line)
	})
	return sum
}

// want=3
func (s testSolver) D1p2() any {
	return len(Lines(s.Text()))
}

func (s testSolver) Helper() any { return nil }

func TestExtractMethods(t *testing.T) {
	days := extractMethods(&testSolver{})
	if len(days) != 1 {
		t.Fatalf("got %d days; want 1", len(days))
	}
	var names []string
	for _, ps := range days[1].parts {
		names = append(names, ps.Name)
	}
	if diff := cmp.Diff([]string{"D1p1", "D1p2"}, names); diff != "" {
		t.Errorf("parts mismatch (-want +got):\n%s", diff)
	}
}

func TestSolverSamples(t *testing.T) {
	src := strings.Replace(testSource, "func (s solver)", "func (s testSolver)", -1)
	Test(t, []byte(src), &testSolver{})
}

func TestFormatAnswer(t *testing.T) {
	tests := []struct {
		part string
		v    any
		want string
	}{
		{"1", 24000, "Solution to part1: 24000\n"},
		{"2", "MCD", "Solution to part2: MCD\n"},
		{"2", "#.\n.#", "Solution to part2: \n#.\n.#\n"},
	}
	for _, tt := range tests {
		if got := formatAnswer(tt.part, tt.v); got != tt.want {
			t.Errorf("formatAnswer(%q, %v) = %q; want %q", tt.part, tt.v, got, tt.want)
		}
	}
}

func TestLines(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"\n", nil},
		{"a", []string{"a"}},
		{"a\nb\n", []string{"a", "b"}},
		{"a\r\nb\r\n", []string{"a", "b"}},
		{"a\n\nb", []string{"a", "", "b"}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, Lines(tt.in)); diff != "" {
			t.Errorf("Lines(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestParagraphs(t *testing.T) {
	got := Paragraphs("1\n2\n\n3\n\n\n4\n5\n")
	want := [][]string{{"1", "2"}, {"3"}, {"4", "5"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Paragraphs mismatch (-want +got):\n%s", diff)
	}
}

func TestChunks(t *testing.T) {
	got := Chunks([]int{1, 2, 3, 4, 5, 6, 7}, 3)
	want := [][]int{{1, 2, 3}, {4, 5, 6}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Chunks mismatch (-want +got):\n%s", diff)
	}
}

func TestOr(t *testing.T) {
	if got := Or("", "./input"); got != "./input" {
		t.Errorf("Or = %q; want %q", got, "./input")
	}
	if got := Or("day5.txt", "./input"); got != "day5.txt" {
		t.Errorf("Or = %q; want %q", got, "day5.txt")
	}
}
