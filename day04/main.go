package main

import (
	_ "embed"

	aoc "github.com/maisem/aoc2022"
)

var puzzle = aoc.Day{
	Year:   2022,
	Day:    4,
	Source: source,
	Input:  input,
	Labels: map[string]string{
		"1": "Overlapping assignments",
		"2": "Somewhere overlapping assignments",
	},
}

func main() {
	aoc.Run(puzzle, &solver{})
}

//go:embed main.go
var source []byte

//go:embed input.txt
var input []byte

type solver struct {
	*aoc.Puzzle
}

// countPairs returns the number of pairs for which match is true.
func (s solver) countPairs(match func(Pair) bool) (int, error) {
	n := 0
	err := s.ForLines(func(line string) error {
		p, err := ParsePair(line)
		if err != nil {
			return err
		}
		if match(p) {
			n++
		}
		return nil
	})
	return n, err
}

/*
want=2

2-4,6-8
2-3,4-5
5-7,7-9
2-8,3-7
6-6,4-6
2-6,4-8
*/
func (s solver) D4p1() (any, error) {
	return s.countPairs(Pair.FullyContained)
}

// want=4
func (s solver) D4p2() (any, error) {
	return s.countPairs(func(p Pair) bool {
		n := p.OverlapLength()
		s.Debugf("%d overlaps with %v %v (%v)", n, p.A, p.B, p.Relation())
		return n > 0
	})
}
