package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newValidateRulesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate-rules",
		Short: "Load the rule content and evaluate every scaling feature",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			maxLevel := a.book.Tables().Epic.MaxLevel
			for _, name := range a.book.ClassNames() {
				class, _ := a.book.Class(name)
				for i := range class.ScalingFeatures {
					f := &class.ScalingFeatures[i]
					for level := 1; level <= maxLevel; level++ {
						if _, err := f.Value(level); err != nil {
							return fmt.Errorf("class %s level %d: %w", name, level, err)
						}
					}
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d races, %d classes, %d armor entries\n",
				len(a.book.RaceNames()), len(a.book.ClassNames()), a.book.Armor().Len())
			return nil
		},
	}
}
