package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cory-johannsen/d20sheet/internal/game/character"
	"github.com/cory-johannsen/d20sheet/internal/game/epic"
)

func newAdvanceCmd(a *app, flags *rootFlags) *cobra.Command {
	var (
		level int
		class string
		write bool
	)
	cmd := &cobra.Command{
		Use:   "advance <character.yaml>",
		Short: "Advance a character to an epic level",
		Long: `Advance raises a character above level 20 one level at a time, by default in its
highest-level class, and prints the updated character. With --write the file is
updated in place.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			c, err := character.Load(path)
			if err != nil {
				return err
			}
			var opts []epic.Option
			if class != "" {
				opts = append(opts, epic.WithClass(class))
			}
			if _, err := a.engine.AdvanceToEpicLevel(c, level, opts...); err != nil {
				return err
			}
			if write {
				if err := character.Save(path, c); err != nil {
					return err
				}
				a.logger.Info("character updated", zap.String("path", path), zap.Int("level", c.TotalLevel()))
			}
			return render(cmd.OutOrStdout(), flags.format, c)
		},
	}
	cmd.Flags().IntVar(&level, "level", 0, "target character level (21 or higher)")
	cmd.Flags().StringVar(&class, "class", "", "class to advance instead of the highest-level class")
	cmd.Flags().BoolVar(&write, "write", false, "write the advanced character back to its file")
	_ = cmd.MarkFlagRequired("level")
	return cmd
}
