package main

import (
	_ "embed"
	"fmt"

	aoc "github.com/maisem/aoc2022"
)

var puzzle = aoc.Day{
	Year:   2022,
	Day:    3,
	Source: source,
	Input:  input,
	Labels: map[string]string{
		"1": "score1",
		"2": "score2",
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

const groupSize = 3

/*
want=157

vJrwpWtwJgWrhcsFMMfFFhFp
jqHRNqRjqzjGDLGLrsFMfFZSrLrFZsSL
PmmdzqPrVvPwwTWBwg
wMqvLMZHhHMvwLHjbvcjnnSBnvTQFn
ttgJtRGJQctTZtZT
CrZsJsPPZsGzwwsLwLmpwMDw
*/
func (s solver) D3p1() (any, error) {
	rs, err := aoc.ParseLines(s.Puzzle, ParseRucksack)
	if err != nil {
		return nil, err
	}
	scores := make([]int, len(rs))
	for i, r := range rs {
		scores[i] = r.Shared().Sum()
	}
	return aoc.Sum(scores...), nil
}

// want=70
func (s solver) D3p2() (any, error) {
	rs, err := aoc.ParseLines(s.Puzzle, ParseRucksack)
	if err != nil {
		return nil, err
	}
	groups, err := aoc.Chunks(rs, groupSize)
	if err != nil {
		return nil, fmt.Errorf("grouping rucksacks: %w", err)
	}
	total := 0
	for i, g := range groups {
		p, err := Badge(g)
		if err != nil {
			first := i*groupSize + 1
			return nil, fmt.Errorf("lines %d-%d: %w", first, first+groupSize-1, err)
		}
		s.Debugf("group %d badge priority %d", i+1, p)
		total += p
	}
	return total, nil
}
