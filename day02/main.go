package main

import (
	_ "embed"

	aoc "github.com/maisem/aoc2022"
)

var puzzle = aoc.Day{
	Year:   2022,
	Day:    2,
	Source: source,
	Input:  input,
	Labels: map[string]string{
		"1": "Score part1",
		"2": "Score part2",
	},
	ShowTime: true,
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

func (s solver) totalScore(parse func(string) (Round, error)) (int, error) {
	total := 0
	err := s.ForLines(func(line string) error {
		r, err := parse(line)
		if err != nil {
			return err
		}
		total += r.Score()
		return nil
	})
	return total, err
}

/*
want=15

A Y
B X
C Z
*/
func (s solver) D2p1() (any, error) {
	return s.totalScore(parseRound)
}

// want=12
func (s solver) D2p2() (any, error) {
	return s.totalScore(parseStrategy)
}
