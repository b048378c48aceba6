package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	aoc "github.com/maisem/aoc2022"
)

const sampleGuide = "A Y\nB X\nC Z\n"

func TestBeatsInverse(t *testing.T) {
	for _, m := range moves {
		assert.Equal(t, m, m.BeatenBy().Beats(), "%v.BeatenBy().Beats()", m)
		assert.Equal(t, m, m.Beats().BeatenBy(), "%v.Beats().BeatenBy()", m)
		assert.NotEqual(t, m, m.Beats())
	}
}

func TestWinner(t *testing.T) {
	tests := []struct {
		player, opponent Move
		want             Outcome
	}{
		{Rock, Scissors, Win},
		{Paper, Rock, Win},
		{Scissors, Paper, Win},
		{Rock, Paper, Loss},
		{Paper, Scissors, Loss},
		{Scissors, Rock, Loss},
		{Rock, Rock, Draw},
		{Paper, Paper, Draw},
		{Scissors, Scissors, Draw},
	}
	for _, tt := range tests {
		r := Round{Player: tt.player, Opponent: tt.opponent}
		assert.Equal(t, tt.want, r.Winner(), "%v vs %v", tt.player, tt.opponent)
	}
}

func TestRoundScore(t *testing.T) {
	for _, p := range moves {
		for _, o := range moves {
			r := Round{Player: p, Opponent: o}
			got := r.Score()
			assert.Equal(t, p.Score()+r.Winner().Score(), got)
			assert.GreaterOrEqual(t, got, 1)
			assert.LessOrEqual(t, got, 9)
		}
	}
}

func TestRoundFor(t *testing.T) {
	for _, o := range moves {
		for _, want := range outcomes {
			r := RoundFor(o, want)
			assert.Equal(t, o, r.Opponent)
			assert.Equal(t, want, r.Winner(), "RoundFor(%v, %v) = %+v", o, want, r)
		}
	}
}

func TestParse(t *testing.T) {
	r, err := parseRound("A Y")
	require.NoError(t, err)
	assert.Equal(t, Round{Player: Paper, Opponent: Rock}, r)
	assert.Equal(t, 8, r.Score())

	r, err = parseStrategy("C Z")
	require.NoError(t, err)
	assert.Equal(t, Round{Player: Rock, Opponent: Scissors}, r)
	assert.Equal(t, 7, r.Score())

	for _, line := range []string{"", "A", "A Y Z", "X Y", "D X", "A A", "A W", "a y"} {
		_, err := parseRound(line)
		assert.Error(t, err, "parseRound(%q)", line)
		_, err = parseStrategy(line)
		assert.Error(t, err, "parseStrategy(%q)", line)
	}
}

func TestSolver(t *testing.T) {
	s := solver{aoc.NewPuzzle([]byte(sampleGuide))}

	got, err := s.D2p1()
	require.NoError(t, err)
	assert.Equal(t, 15, got)

	got, err = s.D2p2()
	require.NoError(t, err)
	assert.Equal(t, 12, got)
}

func TestSolverBadLine(t *testing.T) {
	s := solver{aoc.NewPuzzle([]byte("A Y\nB Q\n"))}
	_, err := s.D2p1()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestSolverInput(t *testing.T) {
	s := solver{aoc.NewPuzzle(input)}
	for _, part := range []func() (any, error){s.D2p1, s.D2p2} {
		got, err := part()
		require.NoError(t, err)
		assert.Positive(t, got)
	}
}

func TestSamples(t *testing.T) {
	require.NoError(t, aoc.CheckSamples(io.Discard, puzzle, &solver{}))
}

func TestOutput(t *testing.T) {
	d := puzzle
	d.Input = []byte(sampleGuide)
	var out bytes.Buffer
	cmd := aoc.NewCommand(d, &solver{})
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"Score part1: 15", "Score part2: 12"}, lines[:2])
	assert.True(t, strings.HasPrefix(lines[2], "Time: "), "last line %q", lines[2])
}
