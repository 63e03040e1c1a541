package main

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordgrid/board"
	"github.com/katalvlaran/wordgrid/solver"
)

func newSolveCmd(a *app) *cobra.Command {
	var (
		mode string
		seed int64
	)
	cmd := &cobra.Command{
		Use:   "solve [tiles...]",
		Short: "Solve a board given row by row, or a random one",
		Long: `Solve lists every dictionary word on the board.

Tiles are given row by row and may be more than one letter ("qu").
Without tiles a random board is drawn from the dictionary's letters.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := board.ParseMode(mode)
			if err != nil {
				return err
			}
			b, err := a.newBoard(args, seed)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), b.String())

			res, err := a.solve(cmd, b, m)
			if err != nil {
				return err
			}
			printWords(cmd, res.Words)
			return nil
		},
	}
	cmd.Flags().StringVar(&mode, "mode", "grid", "adjacency: grid or bag")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random board seed (0 picks one)")
	return cmd
}

func newWordsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "words <tiles...>",
		Short: "List words that can be made from a rack of tiles in any order",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tiles := strings.Fields(strings.Join(args, " "))
			b, err := board.Parse(1, len(tiles), strings.Join(tiles, " "))
			if err != nil {
				return err
			}
			res, err := a.solve(cmd, b, board.Bag)
			if err != nil {
				return err
			}
			printWords(cmd, res.Words)
			return nil
		},
	}
}

// newBoard parses args as a rows×columns board, or generates one from the
// dictionary when args is empty.
func (a *app) newBoard(args []string, seed int64) (*board.Board, error) {
	if len(args) > 0 {
		return board.Parse(a.cfg.Rows, a.cfg.Columns, strings.Join(args, " "))
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	a.logger.Debug("generating board", "rows", a.cfg.Rows, "columns", a.cfg.Columns, "seed", seed)
	return board.Generate(a.cfg.Rows, a.cfg.Columns, a.dict.AllWords(), rand.New(rand.NewSource(seed)))
}

func (a *app) solve(cmd *cobra.Command, b *board.Board, m board.Mode) (*solver.Result, error) {
	return solver.Solve(b, a.dict,
		solver.WithContext(cmd.Context()),
		solver.WithMode(m),
		solver.WithMinWordLength(a.cfg.MinWordLength),
		solver.WithParallelism(a.cfg.Parallelism),
		solver.WithLogger(a.logger),
	)
}
