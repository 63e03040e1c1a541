package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLookupCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <word...>",
		Short: "Report whether each argument is a word or a live prefix",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, w := range args {
				fmt.Fprintf(out, "%s\tword=%t\tprefix=%t\n",
					w, a.dict.IsWord(w), a.dict.IsStillPotentiallyValid(w))
			}
			return nil
		},
	}
}
