// Package aoc runs Advent of Code style solvers. It finds the part methods
// of a solver, checks each one against the sample declared in its doc
// comment and then runs it on a local input file.
package aoc

import (
	"bufio"
	"bytes"
	"cmp"
	"errors"
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"
)

var ErrSampleMismatch = errors.New("sample mismatch")

// Sample is the example declared in a part's doc comment:
//
//	want=ANSWER
//
//	INPUT LINES
//
// A part without input lines reuses the input of the part declared before
// it.
type Sample struct {
	Want  string
	Input string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?`)

func parseSample(text string) (Sample, bool) {
	m := sampleRx.FindStringSubmatch(text)
	if m == nil {
		return Sample{}, false
	}
	return Sample{Want: strings.TrimSpace(m[1]), Input: m[2]}, true
}

// extractSamples returns the samples declared on the functions in src, keyed
// by function name.
func extractSamples(src []byte) (map[string]Sample, error) {
	f, err := parser.ParseFile(token.NewFileSet(), "", src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing source for samples: %w", err)
	}
	var prev string
	samples := make(map[string]Sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		s, ok := parseSample(fd.Doc.Text())
		if !ok {
			continue
		}
		s.Input = Or(s.Input, prev)
		prev = s.Input
		samples[fd.Name.Name] = s
	}
	return samples, nil
}

// part is a solver method named D{day}p{part}.
type part struct {
	day    int
	name   string
	method string
	index  int // in the solver's method set
}

type partFunc = func() (any, error)

var partRx = regexp.MustCompile(`^D(\d+)p(\d+.*)$`)

func findParts(slvr any) ([]part, error) {
	v := reflect.ValueOf(slvr)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("solver is %T; want pointer to struct", slvr)
	}
	var parts []part
	for i := 0; i < v.NumMethod(); i++ {
		name := v.Type().Method(i).Name
		m := partRx.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		if _, ok := v.Method(i).Interface().(partFunc); !ok {
			return nil, fmt.Errorf("%s is %v; want func() (any, error)", name, v.Method(i).Type())
		}
		day, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		parts = append(parts, part{day: day, name: m[2], method: name, index: i})
	}
	slices.SortFunc(parts, func(a, b part) int {
		if c := cmp.Compare(a.day, b.day); c != 0 {
			return c
		}
		return strings.Compare(a.name, b.name)
	})
	return parts, nil
}

// Puzzle is embedded (as a pointer) in solver structs passed to Run. It gives
// each part access to its input.
type Puzzle struct {
	SampleMode bool

	year, day int
	sample    Sample
	opts      *options
}

// Input returns the sample input in sample mode and the contents of the
// input file otherwise.
func (p *Puzzle) Input() ([]byte, error) {
	if p.SampleMode {
		return []byte(p.sample.Input), nil
	}
	name := p.opts.input
	if name == "" {
		name = filepath.Join(strconv.Itoa(p.year), strconv.Itoa(p.day)+".input")
	}
	b, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return b, nil
}

// ParseLines calls parse on every non-blank line of p's input, trimmed of
// surrounding space. Errors carry the 1-based line number.
func ParseLines[T any](p *Puzzle, parse func(string) (T, error)) ([]T, error) {
	in, err := p.Input()
	if err != nil {
		return nil, err
	}
	var out []T
	s := bufio.NewScanner(bytes.NewReader(in))
	for n := 1; s.Scan(); n++ {
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}
		v, err := parse(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		out = append(out, v)
	}
	return out, s.Err()
}

// Debugging reports whether debug output is wanted: -debug is set and the
// sample is being solved.
func (p *Puzzle) Debugging() bool {
	return p.opts.debug && p.SampleMode
}

func (p *Puzzle) Debugf(format string, args ...any) {
	if p.Debugging() {
		fmt.Fprintf(p.opts.out, format+"\n", args...)
	}
}

// Sample modes.
const (
	sampleCheck = "check"
	sampleOnly  = "only"
	sampleSkip  = "skip"
)

type options struct {
	day    int
	part   string
	input  string
	sample string
	debug  bool
	out    io.Writer
}

var (
	flagDay    = flag.Int("day", -1, "day to run; -1 runs every day")
	flagPart   = flag.String("part", "", "part to run")
	flagInput  = flag.String("input", "", "input file; defaults to YEAR/DAY.input")
	flagSample = flag.String("sample", sampleCheck, "sample handling: check, only or skip")
	flagDebug  = flag.Bool("debug", false, "print debug output while solving samples")
)

var initFlags = sync.OnceFunc(flag.Parse)

// Run runs the parts of slvr selected on the command line. src is the
// source of the file declaring slvr; samples are read from the doc comments
// of its methods. Each part is checked against its sample before it runs on
// the real input.
func Run(year int, src []byte, slvr any) error {
	initFlags()
	return run(year, src, slvr, &options{
		day:    *flagDay,
		part:   *flagPart,
		input:  *flagInput,
		sample: *flagSample,
		debug:  *flagDebug,
		out:    os.Stdout,
	})
}

func run(year int, src []byte, slvr any, opts *options) error {
	switch opts.sample {
	case sampleCheck, sampleOnly, sampleSkip:
	default:
		return fmt.Errorf("unknown sample mode %q", opts.sample)
	}
	samples, err := extractSamples(src)
	if err != nil {
		return err
	}
	parts, err := findParts(slvr)
	if err != nil {
		return err
	}
	field := reflect.ValueOf(slvr).Elem().FieldByName("Puzzle")
	if !field.IsValid() {
		return fmt.Errorf("%T has no Puzzle field", slvr)
	}
	ran := 0
	for _, pt := range parts {
		if opts.day != -1 && pt.day != opts.day || opts.part != "" && pt.name != opts.part {
			continue
		}
		ran++
		sample, ok := samples[pt.method]
		if !ok && opts.sample != sampleSkip {
			return fmt.Errorf("no sample for %s", pt.method)
		}
		p := &Puzzle{year: year, day: pt.day, sample: sample, opts: opts}
		field.Set(reflect.ValueOf(p))
		fn := reflect.ValueOf(slvr).Method(pt.index).Interface().(partFunc)
		if err := runPart(pt, p, fn); err != nil {
			return fmt.Errorf("day %d part %s: %w", pt.day, pt.name, err)
		}
	}
	if ran == 0 {
		return fmt.Errorf("no parts match day %d part %q", opts.day, opts.part)
	}
	return nil
}

func runPart(pt part, p *Puzzle, fn partFunc) error {
	out := p.opts.out
	if p.opts.sample != sampleSkip {
		p.SampleMode = true
		got, took, err := timed(fn)
		if err != nil {
			return fmt.Errorf("sample: %w", err)
		}
		if fmt.Sprint(got) != p.sample.Want {
			return fmt.Errorf("%w: got %v, want %v", ErrSampleMismatch, got, p.sample.Want)
		}
		fmt.Fprintf(out, "day %d part %s sample: %v ✅ (%v)\n", pt.day, pt.name, got, took)
	}
	if p.opts.sample == sampleOnly {
		return nil
	}
	p.SampleMode = false
	got, took, err := timed(fn)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "day %d part %s: %v (took %v)\n", pt.day, pt.name, got, took)
	return nil
}

func timed(fn partFunc) (any, time.Duration, error) {
	t0 := time.Now()
	v, err := fn()
	return v, time.Since(t0).Round(time.Microsecond), err
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Or returns the first non-zero value in list.
func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(v).IsZero() {
			return v
		}
	}
	var zero T
	return zero
}

// Parallel calls f on every element of in, each in its own goroutine, and
// returns the results in input order.
func Parallel[I, O any](in []I, f func(I) O) []O {
	var wg sync.WaitGroup
	wg.Add(len(in))
	out := make([]O, len(in))
	for i, v := range in {
		go func(i int, v I) {
			defer wg.Done()
			out[i] = f(v)
		}(i, v)
	}
	wg.Wait()
	return out
}

func Fold[T any, R any](in []T, f func(R, T) R, defVal R) R {
	out := defVal
	for _, v := range in {
		out = f(out, v)
	}
	return out
}

// ParallelMapFold maps in with f in parallel, then folds the results in
// input order with f2.
func ParallelMapFold[A, B, C any](in []A, f func(A) B, f2 func(C, B) C, defVal C) C {
	return Fold(Parallel(in, f), f2, defVal)
}
