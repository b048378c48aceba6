package main

import (
	"fmt"
	"strings"
)

// Move is a rock/paper/scissors shape.
type Move int

const (
	Rock Move = iota + 1
	Paper
	Scissors
)

var moves = []Move{Rock, Paper, Scissors}

func (m Move) String() string {
	switch m {
	case Rock:
		return "Rock"
	case Paper:
		return "Paper"
	case Scissors:
		return "Scissors"
	}
	return fmt.Sprintf("Move(%d)", int(m))
}

// Beats returns the move that m defeats.
func (m Move) Beats() Move {
	switch m {
	case Rock:
		return Scissors
	case Paper:
		return Rock
	case Scissors:
		return Paper
	}
	panic(fmt.Sprintf("bad move %v", m))
}

// BeatenBy returns the move that defeats m.
func (m Move) BeatenBy() Move {
	switch m {
	case Rock:
		return Paper
	case Paper:
		return Scissors
	case Scissors:
		return Rock
	}
	panic(fmt.Sprintf("bad move %v", m))
}

// Score is the shape score of m.
func (m Move) Score() int {
	switch m {
	case Rock:
		return 1
	case Paper:
		return 2
	case Scissors:
		return 3
	}
	panic(fmt.Sprintf("bad move %v", m))
}

// Outcome is the result of a round from the player's side.
type Outcome int

const (
	Loss Outcome = iota + 1
	Draw
	Win
)

var outcomes = []Outcome{Loss, Draw, Win}

func (o Outcome) String() string {
	switch o {
	case Loss:
		return "Loss"
	case Draw:
		return "Draw"
	case Win:
		return "Win"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

func (o Outcome) Score() int {
	switch o {
	case Loss:
		return 0
	case Draw:
		return 3
	case Win:
		return 6
	}
	panic(fmt.Sprintf("bad outcome %v", o))
}

// ParseOpponent decodes the opponent's column: A, B or C.
func ParseOpponent(tok string) (Move, error) {
	switch tok {
	case "A":
		return Rock, nil
	case "B":
		return Paper, nil
	case "C":
		return Scissors, nil
	}
	return 0, fmt.Errorf("bad opponent move %q", tok)
}

// ParseMove decodes the second column as the player's move: X, Y or Z.
func ParseMove(tok string) (Move, error) {
	switch tok {
	case "X":
		return Rock, nil
	case "Y":
		return Paper, nil
	case "Z":
		return Scissors, nil
	}
	return 0, fmt.Errorf("bad player move %q", tok)
}

// ParseOutcome decodes the second column as the desired outcome: X, Y or Z.
func ParseOutcome(tok string) (Outcome, error) {
	switch tok {
	case "X":
		return Loss, nil
	case "Y":
		return Draw, nil
	case "Z":
		return Win, nil
	}
	return 0, fmt.Errorf("bad outcome %q", tok)
}

type Round struct {
	Player   Move
	Opponent Move
}

// RoundFor returns the round in which the player gets want against opponent.
func RoundFor(opponent Move, want Outcome) Round {
	switch want {
	case Win:
		return Round{Player: opponent.BeatenBy(), Opponent: opponent}
	case Loss:
		return Round{Player: opponent.Beats(), Opponent: opponent}
	case Draw:
		return Round{Player: opponent, Opponent: opponent}
	}
	panic(fmt.Sprintf("bad outcome %v", want))
}

func (r Round) Winner() Outcome {
	switch r.Opponent {
	case r.Player:
		return Draw
	case r.Player.Beats():
		return Win
	}
	return Loss
}

func (r Round) Score() int {
	return r.Player.Score() + r.Winner().Score()
}

// columns splits a strategy guide line into its two columns.
func columns(line string) (string, string, error) {
	f := strings.Fields(line)
	if len(f) != 2 {
		return "", "", fmt.Errorf("got %d fields; want 2", len(f))
	}
	return f[0], f[1], nil
}

// parseRound reads line as "<opponent> <player move>".
func parseRound(line string) (Round, error) {
	a, b, err := columns(line)
	if err != nil {
		return Round{}, err
	}
	opp, err := ParseOpponent(a)
	if err != nil {
		return Round{}, err
	}
	player, err := ParseMove(b)
	if err != nil {
		return Round{}, err
	}
	return Round{Player: player, Opponent: opp}, nil
}

// parseStrategy reads line as "<opponent> <desired outcome>".
func parseStrategy(line string) (Round, error) {
	a, b, err := columns(line)
	if err != nil {
		return Round{}, err
	}
	opp, err := ParseOpponent(a)
	if err != nil {
		return Round{}, err
	}
	want, err := ParseOutcome(b)
	if err != nil {
		return Round{}, err
	}
	return RoundFor(opp, want), nil
}
