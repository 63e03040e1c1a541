package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordgrid/board"
)

func newPlayCmd(a *app) *cobra.Command {
	var (
		limit time.Duration
		seed  int64
	)
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Show a random board, wait out the timer, then reveal every word",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("time") {
				limit = a.cfg.GameTime
			}
			b, err := a.newBoard(nil, seed)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprint(out, b.String())
			fmt.Fprintf(out, "You have %s. Press Ctrl+C to reveal early.\n", limit)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			waitRound(ctx, limit)
			stop()

			res, err := a.solve(cmd, b, board.Grid)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, "Time's up!")
			printWords(cmd, res.Words)
			return nil
		},
	}
	cmd.Flags().DurationVar(&limit, "time", 0, "round length (defaults to game_time)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random board seed (0 picks one)")
	return cmd
}

// waitRound blocks until d has elapsed or ctx is done.
func waitRound(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}
