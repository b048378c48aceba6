package main

import (
	"fmt"
	"strings"

	aoc "github.com/maisem/aoc2022"
)

// Assignment is an inclusive range of section IDs.
type Assignment struct {
	Start, End int
}

func (a Assignment) String() string {
	return fmt.Sprintf("%d-%d", a.Start, a.End)
}

// Contains reports whether b lies entirely within a.
func (a Assignment) Contains(b Assignment) bool {
	return a.Start <= b.Start && a.End >= b.End
}

// ParseAssignment parses "start-end".
func ParseAssignment(s string) (Assignment, error) {
	start, end, ok := strings.Cut(s, "-")
	if !ok {
		return Assignment{}, fmt.Errorf("assignment %q: missing '-'", s)
	}
	var a Assignment
	var err error
	if a.Start, err = sectionID(start); err != nil {
		return Assignment{}, fmt.Errorf("assignment %q: %w", s, err)
	}
	if a.End, err = sectionID(end); err != nil {
		return Assignment{}, fmt.Errorf("assignment %q: %w", s, err)
	}
	return a, nil
}

// sectionID parses a section number written as plain decimal digits.
func sectionID(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("empty section")
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("bad section %q", s)
		}
	}
	return aoc.ParseInt(s)
}

// Relation is how the two assignments of a pair relate.
type Relation int

const (
	Disjoint Relation = iota
	// Overlapping pairs share at least one section but neither
	// contains the other.
	Overlapping
	// Containing pairs have one assignment fully inside the other.
	Containing
)

func (r Relation) String() string {
	switch r {
	case Disjoint:
		return "disjoint"
	case Overlapping:
		return "overlapping"
	case Containing:
		return "containing"
	}
	return fmt.Sprintf("Relation(%d)", int(r))
}

// Pair is the two assignments of one input line.
type Pair struct {
	A, B Assignment
}

// ParsePair parses "a-b,c-d".
func ParsePair(line string) (Pair, error) {
	a, b, ok := strings.Cut(line, ",")
	if !ok {
		return Pair{}, fmt.Errorf("missing ','")
	}
	var p Pair
	var err error
	if p.A, err = ParseAssignment(a); err != nil {
		return Pair{}, err
	}
	if p.B, err = ParseAssignment(b); err != nil {
		return Pair{}, err
	}
	return p, nil
}

// FullyContained reports whether either assignment contains the other.
func (p Pair) FullyContained() bool {
	return p.A.Contains(p.B) || p.B.Contains(p.A)
}

// OverlapLength returns the number of sections in both assignments.
func (p Pair) OverlapLength() int {
	latestStart := max(p.A.Start, p.B.Start)
	earliestEnd := min(p.A.End, p.B.End)
	return max(earliestEnd-latestStart+1, 0)
}

func (p Pair) Relation() Relation {
	switch {
	case p.FullyContained():
		return Containing
	case p.OverlapLength() > 0:
		return Overlapping
	}
	return Disjoint
}
