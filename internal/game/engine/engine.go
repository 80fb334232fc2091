// Package engine composes the stat resolvers into a single snapshot
// computation and exposes epic advancement.
package engine

import (
	"go.uber.org/zap"

	"github.com/cory-johannsen/d20sheet/internal/game/character"
	"github.com/cory-johannsen/d20sheet/internal/game/epic"
	"github.com/cory-johannsen/d20sheet/internal/game/inventory"
	"github.com/cory-johannsen/d20sheet/internal/game/ruleset"
	"github.com/cory-johannsen/d20sheet/internal/game/stats"
)

// Engine computes derived statistics against one set of rules.
//
// An Engine is safe for concurrent use.
type Engine struct {
	rules   ruleset.Source
	tables  *ruleset.Tables
	catalog *inventory.Registry
	logger  *zap.Logger
	cache   *lastResult
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithCatalog sets the equipment catalog used to resolve item refs.
func WithCatalog(catalog *inventory.Registry) Option {
	return func(e *Engine) { e.catalog = catalog }
}

// WithCache enables the last-result cache.
func WithCache(enabled bool) Option {
	return func(e *Engine) {
		if enabled {
			e.cache = &lastResult{}
		} else {
			e.cache = nil
		}
	}
}

// New returns an Engine over rules and tables.
//
// Precondition: rules must be non-nil; tables may be nil for the standard tables.
// Postcondition: Returns a ready Engine.
func New(rules ruleset.Source, tables *ruleset.Tables, opts ...Option) *Engine {
	if rules == nil {
		panic("engine.New: precondition violated: rules must be non-nil")
	}
	if tables == nil {
		tables = ruleset.StandardTables()
	}
	e := &Engine{rules: rules, tables: tables, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewFromRulebook returns an Engine using book's tables and armor catalog.
func NewFromRulebook(book *ruleset.Rulebook, opts ...Option) *Engine {
	return New(book, book.Tables(), append([]Option{WithCatalog(book.Armor())}, opts...)...)
}

// CalculateAllStats derives the full snapshot for c. Bad or missing data is
// reported in the snapshot's validation result instead of failing.
//
// Postcondition: c is not modified; the result shares no memory with c.
func (e *Engine) CalculateAllStats(c *character.Character) Snapshot {
	if c == nil {
		return Snapshot{Validation: stats.Validation{Errors: []string{"no character supplied"}}}
	}
	key, cacheable := "", false
	if e.cache != nil {
		key, cacheable = cacheKey(c)
		if cacheable {
			if s, hit := e.cache.get(key); hit {
				e.logger.Debug("snapshot cache hit", zap.String("character", c.Name))
				return s
			}
		}
	}
	s := e.calculate(c)
	if cacheable {
		e.cache.put(key, s)
	}
	e.logger.Debug("calculated stats",
		zap.String("character", c.Name),
		zap.Int("level", s.Level),
		zap.Int("hit_points", s.HitPoints),
		zap.Bool("valid", s.Validation.Valid),
	)
	return s
}

func (e *Engine) calculate(c *character.Character) Snapshot {
	t := e.tables
	race, raceKnown := e.rules.Race(c.Race)
	if !raceKnown || race == nil {
		race, raceKnown = ruleset.DefaultRace(), false
	}
	size := race.EffectiveSize()

	scores := stats.ApplyRacialAdjustments(c.Abilities, c.Race, e.rules)
	scores = stats.ApplyAgeAdjustments(scores, race, c.Age)
	mods := stats.Modifiers(scores)

	entries, _ := stats.ResolveClasses(c.Classes, e.rules)
	totals := stats.Aggregate(t, entries)
	epicLevel := epic.Level(t, totals.Level)
	epicSave := epic.SaveBonus(epicLevel)

	items := c.Equipment
	var unknownRefs []string
	if e.catalog != nil {
		items, unknownRefs = e.catalog.Resolve(c.Equipment)
	}

	penalty, offending := stats.MulticlassPenalty(t, c.Classes, race.FavoredClass)
	features, featureWarnings := stats.ScalingFeatures(entries)
	carrying := stats.CarryingCapacity(t, scores.Strength, size)
	weight := inventory.TotalWeight(items)

	s := Snapshot{
		Name:        c.Name,
		Race:        race.Name,
		Size:        size,
		Level:       totals.Level,
		EpicLevel:   epicLevel,
		Abilities:   scores,
		Modifiers:   mods,
		HitPoints:   stats.HitPoints(entries, mods["constitution"]),
		ArmorClass:  stats.ResolveArmorClass(items, mods["dexterity"], size, race.NaturalArmor, c.AC),
		Attacks:     stats.ResolveAttacks(totals.BaseAttackBonus, epic.AttackBonus(epicLevel), mods["strength"], mods["dexterity"], stats.SizeModifier(size)),
		SkillPoints: stats.SkillPoints(entries, mods["intelligence"]),
		Saves: stats.Saves{
			Fortitude: totals.BaseSaves.Fortitude + mods["constitution"] + epicSave,
			Reflex:    totals.BaseSaves.Reflex + mods["dexterity"] + epicSave,
			Will:      totals.BaseSaves.Will + mods["wisdom"] + epicSave,
		},
		Carrying:      carrying,
		CarriedWeight: weight,
		Encumbrance:   stats.EncumbranceFor(carrying, weight),
		Experience:    stats.ResolveExperience(t, totals.Level, c.Experience, penalty, offending),
		Spells:        stats.ResolveSpells(entries, scores, c),
		Features:      features,
	}
	if !raceKnown {
		s.Race = c.Race
	}
	if c.Epic != nil && c.Epic.DivineRank != nil {
		r := *c.Epic.DivineRank
		s.DivineRank = &r
	}
	s.Validation = stats.Validate(stats.ValidationInput{
		Character:        c,
		Scores:           scores,
		RaceKnown:        raceKnown,
		Classes:          entries,
		Penalty:          penalty,
		Offending:        offending,
		UnknownEquipment: unknownRefs,
		Tables:           t,
	})
	s.Validation.Warnings = append(s.Validation.Warnings, featureWarnings...)
	return s
}

// AdvanceToEpicLevel advances c to newLevel in place and returns it.
//
// Precondition: the caller serializes calls for the same character.
// Postcondition: On error c is unchanged and the error wraps
// epic.ErrInvalidTransition, epic.ErrLevelRegression or epic.ErrUnknownClass.
func (e *Engine) AdvanceToEpicLevel(c *character.Character, newLevel int, opts ...epic.Option) (*character.Character, error) {
	if c == nil {
		return nil, epic.ErrInvalidTransition
	}
	from := c.TotalLevel()
	if err := epic.Advance(c, newLevel, e.rules, e.tables, opts...); err != nil {
		e.logger.Warn("epic advancement rejected",
			zap.String("character", c.Name),
			zap.Int("from", from),
			zap.Int("to", newLevel),
			zap.Error(err),
		)
		return c, err
	}
	e.logger.Info("epic advancement",
		zap.String("character", c.Name),
		zap.Int("from", from),
		zap.Int("to", newLevel),
		zap.Int("epic_level", c.Epic.EpicLevel),
	)
	return c, nil
}
