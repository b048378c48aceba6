// Package aoc are quick & dirty utilities for running Maisem's
// Advent of Code 2022 solvers. (forked from bradfitz/aoc)
package aoc

import (
	"bufio"
	"bytes"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/exp/maps"
	"tailscale.com/util/mak"
)

type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		s := sample{
			want:  strings.TrimSpace(m[1]),
			input: m[2],
		}
		return s, true
	}
	var zero sample
	return zero, false
}

func extractSamples(src []byte) (map[string]sample, error) {
	fs := token.NewFileSet()
	f, err := parser.ParseFile(fs, "main.go", src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing source to extract samples: %w", err)
	}
	var lastInput string
	var samples map[string]sample
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if ok {
				s.input = Or(s.input, lastInput)
				mak.Set(&samples, fd.Name.Name, s)
				lastInput = s.input
				break
			}
		}
	}
	return samples, nil
}

// Day describes a single day's executable.
type Day struct {
	Year int
	Day  int

	// Source is the Go source of the solver, used to extract samples
	// from method doc comments.
	Source []byte
	// Input is the puzzle input.
	Input []byte

	// Labels maps a part ("1", "2") to the label its answer is
	// printed with. Unlabelled parts print as "part N".
	Labels map[string]string
	// ShowTime prints the total solve time after the answers.
	ShowTime bool
}

func (d Day) label(part string) string {
	if l, ok := d.Labels[part]; ok {
		return l
	}
	return "part " + part
}

type Puzzle struct {
	SampleMode bool

	input   []byte
	solver  partSolver
	samples map[string]sample
	log     *zap.SugaredLogger
}

// NewPuzzle returns a Puzzle over input that is not attached to a runner.
// Debug output is discarded.
func NewPuzzle(input []byte) *Puzzle {
	return &Puzzle{
		input: input,
		log:   zap.NewNop().Sugar(),
	}
}

func (p *Puzzle) Input() []byte {
	if p.SampleMode {
		return []byte(p.samples[p.solver.Name].input)
	}
	return p.input
}

// Scanner returns a line scanner over the input. Its buffer holds the
// whole input, so no single line can overflow it.
func (p *Puzzle) Scanner() *bufio.Scanner {
	in := p.Input()
	s := bufio.NewScanner(bytes.NewReader(in))
	s.Buffer(nil, max(len(in)+1, bufio.MaxScanTokenSize))
	return s
}

// Lines returns the lines of input. Trailing empty lines are dropped.
func (p *Puzzle) Lines() ([]string, error) {
	var lines []string
	s := p.Scanner()
	for s.Scan() {
		lines = append(lines, s.Text())
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("reading line %d: %w", len(lines)+1, err)
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines, nil
}

// ForLinesY calls onLine for each line of input.
// The y value is the row number, starting with 0.
// Iteration stops at the first error, which is returned annotated
// with the offending line.
func (p *Puzzle) ForLinesY(onLine func(y int, line string) error) error {
	lines, err := p.Lines()
	if err != nil {
		return err
	}
	for y, line := range lines {
		if err := onLine(y, line); err != nil {
			return lineError(y, line, err)
		}
	}
	return nil
}

// ForLines calls onLine for each line of input.
func (p *Puzzle) ForLines(onLine func(line string) error) error {
	return p.ForLinesY(func(_ int, line string) error { return onLine(line) })
}

// ParseLines parses every line of the puzzle input with parse.
func ParseLines[T any](p *Puzzle, parse func(line string) (T, error)) ([]T, error) {
	lines, err := p.Lines()
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(lines))
	for y, line := range lines {
		v, err := parse(line)
		if err != nil {
			return nil, lineError(y, line, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func lineError(y int, line string, err error) error {
	return fmt.Errorf("line %d %q: %w", y+1, line, err)
}

func (p *Puzzle) Debugf(format string, args ...any) {
	p.log.Debugf(format, args...)
}

type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	fn   func() (any, error)
	Part string
	Name string
}

var methodRx = regexp.MustCompile(`^D(\d+)p(\d+.*)$`)

// extractMethods finds the methods of the struct x named D{day}p{part}.
// The methods must have the signature func() (any, error).
func extractMethods(x any) (map[int]day, error) {
	v := reflect.ValueOf(x)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("got %T; want pointer to struct", x)
	}
	v = v.Elem()
	vt := v.Type()
	var byDays map[int][]partSolver
	for i := 0; i < vt.NumMethod(); i++ {
		mn := vt.Method(i).Name
		matches := methodRx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		m, ok := v.Method(i).Interface().(func() (any, error))
		if !ok {
			return nil, fmt.Errorf("method %s has type %v; want func() (any, error)", mn, v.Method(i).Type())
		}
		d, err := ParseInt(matches[1])
		if err != nil {
			return nil, fmt.Errorf("method %s: %w", mn, err)
		}
		mak.Set(&byDays, d, append(byDays[d], partSolver{
			fn:   m,
			Part: matches[2],
			Name: mn,
		}))
	}
	days := make(map[int]day, len(byDays))
	for d, parts := range byDays {
		slices.SortFunc(parts, func(i, j partSolver) int {
			return strings.Compare(i.Part, j.Part)
		})
		days[d] = day{parts: parts, day: d}
	}
	return days, nil
}

type runOptions struct {
	part       string
	sampleOnly bool
}

// attach points the solver's embedded *Puzzle field at p.
func attach(slvr any, p *Puzzle) error {
	f := reflect.ValueOf(slvr).Elem().FieldByName("Puzzle")
	if !f.IsValid() || f.Type() != reflect.TypeOf(p) {
		return fmt.Errorf("%T does not embed *aoc.Puzzle", slvr)
	}
	f.Set(reflect.ValueOf(p))
	return nil
}

func run(w io.Writer, log *zap.SugaredLogger, d Day, slvr any, opts runOptions) error {
	samples, err := extractSamples(d.Source)
	if err != nil {
		return err
	}
	p := &Puzzle{
		input:   d.Input,
		samples: samples,
		log:     log,
	}
	if err := attach(slvr, p); err != nil {
		return err
	}
	days, err := extractMethods(slvr)
	if err != nil {
		return err
	}
	dd, ok := days[d.Day]
	if !ok {
		return fmt.Errorf("no solvers for day %d; have days %v", d.Day, sortedKeys(days))
	}
	log.Debugf("running %d day %d", d.Year, d.Day)

	t0 := time.Now()
	for _, ps := range dd.parts {
		if opts.part != "" && ps.Part != opts.part {
			continue
		}
		p.solver = ps
		if opts.sampleOnly {
			if err := runSample(w, p, ps); err != nil {
				return err
			}
			continue
		}
		p.SampleMode = false
		got, err := ps.fn()
		if err != nil {
			return fmt.Errorf("part %s: %w", ps.Part, err)
		}
		fmt.Fprintf(w, "%s: %v\n", d.label(ps.Part), got)
	}
	if d.ShowTime && !opts.sampleOnly {
		fmt.Fprintf(w, "Time: %v\n", time.Since(t0).Round(time.Microsecond))
	}
	return nil
}

// CheckSamples runs every part of d with slvr against the sample in
// the part's doc comment, writing results to w.
func CheckSamples(w io.Writer, d Day, slvr any) error {
	return run(w, zap.NewNop().Sugar(), d, slvr, runOptions{sampleOnly: true})
}

func runSample(w io.Writer, p *Puzzle, ps partSolver) error {
	s, ok := p.samples[ps.Name]
	if !ok {
		p.log.Warnf("no sample found for %v", ps.Name)
		return nil
	}
	p.SampleMode = true
	defer func() { p.SampleMode = false }()
	t0 := time.Now()
	got, err := ps.fn()
	if err != nil {
		return fmt.Errorf("part %s sample: %w", ps.Part, err)
	}
	if fmt.Sprint(got) != s.want {
		fmt.Fprintf(w, "part %s: %v ❌; want %v\n", ps.Part, got, s.want)
		return fmt.Errorf("part %s sample: got %v; want %v", ps.Part, got, s.want)
	}
	fmt.Fprintf(w, "part %s sample: %v ✅ (%v)\n", ps.Part, got, time.Since(t0).Round(time.Microsecond))
	return nil
}

func sortedKeys[V any](m map[int]V) []int {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
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
