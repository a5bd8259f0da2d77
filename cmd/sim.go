package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/they4kman/gosnake/game"
)

func newSimCmd(opts *options) *cobra.Command {
	var ticks int

	simCmd := &cobra.Command{
		Use:   "sim",
		Short: "Let a director play headless and print the final snapshot",
		Long: `sim runs a game without a display or clock, as fast as it
can, and prints the final state as a snapshot. The same seed
always plays the same game.

	gosnake sim --ticks 2000 --director pathfind --seed 42

Victory is continued automatically. The game stops at game over or
after the given number of ticks.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if ticks < 1 {
				return errors.Errorf("--ticks must be positive, got %d", ticks)
			}
			if opts.director == noDirector {
				opts.director = pathfindDirector
			}

			logger, closeLog, err := newLogger(opts, false)
			if err != nil {
				return err
			}
			defer closeLog()

			config, err := gameConfig(cmd, opts, logger)
			if err != nil {
				return err
			}
			scheduler := game.NewManualScheduler()
			config.Scheduler = scheduler

			engine, err := game.NewEngine(config)
			if err != nil {
				return err
			}
			defer engine.Close()

			played := simulate(engine, scheduler, ticks)

			fmt.Fprintf(cmd.OutOrStdout(), "# ticks: %d\n%s", played, engine.Snapshot().Serialize())
			return nil
		},
	}

	simCmd.Flags().IntVar(&ticks, "ticks", 1000, "Maximum number of ticks to play")
	return simCmd
}

// simulate plays up to ticks ticks and returns how many were played
func simulate(engine *game.Engine, scheduler *game.ManualScheduler, ticks int) int {
	engine.Start()

	played := 0
	for played < ticks {
		switch engine.Phase() {
		case game.Victory:
			engine.Continue()
		case game.GameOver:
			return played
		}
		scheduler.Advance(1)
		played++
	}
	return played
}
