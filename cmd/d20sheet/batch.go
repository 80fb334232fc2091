package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/cory-johannsen/d20sheet/internal/game/character"
	"github.com/cory-johannsen/d20sheet/internal/game/engine"
	"github.com/cory-johannsen/d20sheet/internal/game/ruleset"
)

func newBatchCmd(a *app) *cobra.Command {
	var workers int
	cmd := &cobra.Command{
		Use:   "batch <dir|character.yaml>...",
		Short: "Summarize many characters concurrently",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := characterFiles(args)
			if err != nil {
				return err
			}
			snaps, err := calculateAll(cmd, a.engine, paths, workers)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprint(w, "NAME\tRACE\tLEVEL")
			for _, ability := range ruleset.Abilities {
				fmt.Fprintf(w, "\t%s", character.AbilityName(ability))
			}
			fmt.Fprintln(w, "\tHP\tAC\tBAB\tVALID")
			for _, s := range snaps {
				fmt.Fprintf(w, "%s\t%s\t%d", s.Name, s.Race, s.Level)
				for _, ability := range ruleset.Abilities {
					fmt.Fprintf(w, "\t%d", s.Abilities.Get(ability))
				}
				fmt.Fprintf(w, "\t%d\t%d\t%d\t%t\n",
					s.HitPoints, s.ArmorClass.Total, s.Attacks.BaseAttackBonus, s.Validation.Valid)
			}
			return w.Flush()
		},
	}
	cmd.Flags().IntVar(&workers, "workers", 4, "number of characters computed concurrently")
	return cmd
}

// calculateAll loads and computes every character concurrently. Results keep
// the order of paths; the first load error cancels the rest.
func calculateAll(cmd *cobra.Command, e *engine.Engine, paths []string, workers int) ([]engine.Snapshot, error) {
	snaps := make([]engine.Snapshot, len(paths))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(max(1, workers))
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			c, err := character.Load(path)
			if err != nil {
				return err
			}
			snaps[i] = e.CalculateAllStats(c)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return snaps, nil
}

// characterFiles expands directories into the YAML files they contain.
func characterFiles(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			paths = append(paths, arg)
			continue
		}
		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if !e.IsDir() && (strings.HasSuffix(e.Name(), ".yaml") || strings.HasSuffix(e.Name(), ".yml")) {
				paths = append(paths, filepath.Join(arg, e.Name()))
			}
		}
	}
	return paths, nil
}
