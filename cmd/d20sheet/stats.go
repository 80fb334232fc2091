package main

import (
	"github.com/spf13/cobra"

	"github.com/cory-johannsen/d20sheet/internal/game/character"
	"github.com/cory-johannsen/d20sheet/internal/game/engine"
)

func newStatsCmd(a *app, flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "stats <character.yaml>...",
		Short: "Print the derived statistics of one or more characters",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snaps := make([]engine.Snapshot, 0, len(args))
			for _, path := range args {
				c, err := character.Load(path)
				if err != nil {
					return err
				}
				snaps = append(snaps, a.engine.CalculateAllStats(c))
			}
			if len(snaps) == 1 {
				return render(cmd.OutOrStdout(), flags.format, snaps[0])
			}
			return render(cmd.OutOrStdout(), flags.format, snaps)
		},
	}
}
