package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cory-johannsen/d20sheet/internal/config"
	"github.com/cory-johannsen/d20sheet/internal/game/engine"
	"github.com/cory-johannsen/d20sheet/internal/game/ruleset"
	"github.com/cory-johannsen/d20sheet/internal/observability"
)

// app carries what every subcommand needs, built once per invocation.
type app struct {
	cfg    config.Config
	logger *zap.Logger
	book   *ruleset.Rulebook
	engine *engine.Engine
}

type rootFlags struct {
	configPath string
	envFile    string
	contentDir string
	format     string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	a := &app{}

	cmd := &cobra.Command{
		Use:   "d20sheet",
		Short: "Derived statistics for d20 characters",
		Long: `d20sheet computes hit points, armor class, attacks, saves, spells and carrying
capacity for d20 characters described in YAML, and advances them into epic levels.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(flags)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "path to a YAML configuration file")
	pf.StringVar(&flags.envFile, "env-file", ".env", "optional .env file loaded before configuration")
	pf.StringVar(&flags.contentDir, "content", "", "rule content directory (overrides rules.content_dir)")
	pf.StringVarP(&flags.format, "output", "o", "yaml", "output format: yaml or json")

	cmd.AddCommand(newStatsCmd(a, flags))
	cmd.AddCommand(newAdvanceCmd(a, flags))
	cmd.AddCommand(newBatchCmd(a))
	cmd.AddCommand(newValidateRulesCmd(a))
	return cmd
}

// setup loads the environment, configuration, logger and rulebook.
func (a *app) setup(flags *rootFlags) error {
	if flags.format != "yaml" && flags.format != "json" {
		return fmt.Errorf("output format must be yaml or json, got %q", flags.format)
	}
	if flags.envFile != "" {
		if err := godotenv.Load(flags.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading %s: %w", flags.envFile, err)
		}
	}

	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return err
	}
	if flags.contentDir != "" {
		cfg.Rules.ContentDir = flags.contentDir
	}
	a.cfg = cfg

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		return err
	}
	a.logger = logger

	var book *ruleset.Rulebook
	if cfg.Rules.TablesFile != "" {
		book, err = ruleset.LoadWithTables(cfg.Rules.ContentDir, cfg.Rules.TablesFile)
	} else {
		book, err = ruleset.Load(cfg.Rules.ContentDir)
	}
	if err != nil {
		return fmt.Errorf("loading rules from %s: %w", cfg.Rules.ContentDir, err)
	}
	applyEngineConfig(book.Tables(), cfg.Engine)
	if err := book.Tables().Validate(); err != nil {
		return err
	}
	a.book = book

	a.engine = engine.NewFromRulebook(book,
		engine.WithLogger(logger),
		engine.WithCache(cfg.Engine.Cache),
	)
	logger.Debug("rules loaded",
		zap.String("content_dir", cfg.Rules.ContentDir),
		zap.Int("races", len(book.RaceNames())),
		zap.Int("classes", len(book.ClassNames())),
		zap.Int("armor", book.Armor().Len()),
	)
	return nil
}

// applyEngineConfig overlays the non-zero engine settings onto t.
func applyEngineConfig(t *ruleset.Tables, e config.EngineConfig) {
	if e.MaxLevel != 0 {
		t.Epic.MaxLevel = e.MaxLevel
	}
	if e.AbilityMin != 0 {
		t.AbilityRange.Min = e.AbilityMin
	}
	if e.AbilityMax != 0 {
		t.AbilityRange.Max = e.AbilityMax
	}
}
