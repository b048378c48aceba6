package aoc

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Run solves every part of d with slvr, which must be a pointer to a
// struct embedding *Puzzle with methods named D{day}p{part}.
// It exits the process with a non-zero status on failure.
func Run(d Day, slvr any) {
	lvl := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	log := newLogger(lvl)
	defer log.Sync()

	if err := newCommand(d, slvr, lvl, log).Execute(); err != nil {
		log.Fatalf("day %d: %v", d.Day, err)
	}
}

// NewCommand returns the command Run executes, logging to stderr.
func NewCommand(d Day, slvr any) *cobra.Command {
	lvl := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	return newCommand(d, slvr, lvl, newLogger(lvl))
}

func newCommand(d Day, slvr any, lvl zap.AtomicLevel, log *zap.SugaredLogger) *cobra.Command {
	var (
		opts  runOptions
		debug bool
	)
	cmd := &cobra.Command{
		Use:           fmt.Sprintf("day%02d", d.Day),
		Short:         fmt.Sprintf("Advent of Code %d, day %d", d.Year, d.Day),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if debug {
				lvl.SetLevel(zapcore.DebugLevel)
			}
			return run(cmd.OutOrStdout(), log, d, slvr, opts)
		},
	}
	cmd.Flags().BoolVar(&opts.sampleOnly, "sample", false, "only run samples")
	cmd.Flags().StringVar(&opts.part, "part", "", "part to run")
	cmd.Flags().BoolVar(&debug, "debug", false, "debug mode")
	return cmd
}
