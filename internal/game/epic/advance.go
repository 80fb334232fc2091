package epic

import (
	"fmt"

	"github.com/cory-johannsen/d20sheet/internal/game/character"
	"github.com/cory-johannsen/d20sheet/internal/game/ruleset"
	"github.com/cory-johannsen/d20sheet/internal/game/stats"
)

type options struct {
	class string
}

// Option customizes Advance.
type Option func(*options)

// WithClass advances class instead of the highest-level class. The class is
// added to the character if it holds no levels in it yet.
func WithClass(class string) Option {
	return func(o *options) { o.class = class }
}

// Advance raises c to newLevel one level at a time, accruing hit points,
// skill points, feats, ability increases and divine status, then refreshing
// the epic bonuses, scaling features, caster levels and spells-known bonus.
//
// Precondition: the caller owns c for the duration of the call.
// Postcondition: On success c holds the advanced state. On error c is unchanged.
func Advance(c *character.Character, newLevel int, rules ruleset.Source, t *ruleset.Tables, opts ...Option) error {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	e := t.Epic
	maxLevel := min(e.MaxLevel, ruleset.MaxCharacterLevel)
	if newLevel <= e.StartLevel || newLevel > maxLevel {
		return fmt.Errorf("%w: level %d outside %d-%d", ErrInvalidTransition, newLevel, e.StartLevel+1, maxLevel)
	}
	current := c.TotalLevel()
	if newLevel < current {
		return fmt.Errorf("%w: %d < %d", ErrLevelRegression, newLevel, current)
	}
	if len(c.Classes) == 0 {
		return fmt.Errorf("%w: character %q has no classes", ErrInvalidTransition, c.Name)
	}

	next := c.Clone()
	if next.Epic == nil {
		next.Epic = &character.EpicState{}
	}
	idx := advancingClass(next, o.class)
	def, ok := rules.Class(next.Classes[idx].Class)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownClass, next.Classes[idx].Class)
	}

	scores := adjustedScores(next, rules)
	conMod := stats.Modifier(scores.Constitution)
	intMod := stats.Modifier(scores.Intelligence)
	s := next.Epic
	for lvl := current + 1; lvl <= newLevel; lvl++ {
		next.Classes[idx].Level++
		if lvl <= e.StartLevel {
			// Pre-epic levels raise the class only; EpicState counts epic levels.
			continue
		}
		classLevel := next.Classes[idx].Level
		s.HitPointsGained += stats.AverageHitDie(def.HitDie) + conMod
		s.SkillPointsGained += stats.SkillPointsPerLevel(def.SkillPoints, intMod)
		if lvl%e.FeatEvery == 0 {
			s.RegularFeats++
		}
		if lvl%e.AbilityIncreaseEvery == 0 {
			s.AbilityIncreases++
		}
		if classEpic := classLevel - e.StartLevel; def.EpicFeatEvery > 0 && classEpic > 0 && classEpic%def.EpicFeatEvery == 0 {
			s.EpicFeats++
			if s.EpicFeatsByClass == nil {
				s.EpicFeatsByClass = make(map[string]int)
			}
			s.EpicFeatsByClass[def.Name]++
		}
		evaluateDivine(t, next, lvl)
	}
	evaluateDivine(t, next, newLevel)

	s.EpicLevel = Level(t, newLevel)
	s.AttackBonus = AttackBonus(s.EpicLevel)
	s.SaveBonus = SaveBonus(s.EpicLevel)

	if err := refreshClasses(next, rules); err != nil {
		return err
	}
	*c = *next
	return nil
}

// advancingClass returns the index of the class to advance, appending want
// if the character does not hold it yet.
func advancingClass(c *character.Character, want string) int {
	if want != "" {
		for i, cl := range c.Classes {
			if cl.Class == want {
				return i
			}
		}
		c.Classes = append(c.Classes, character.ClassLevel{Class: want})
		return len(c.Classes) - 1
	}
	best := 0
	for i, cl := range c.Classes {
		if cl.Level > c.Classes[best].Level {
			best = i
		}
	}
	return best
}

func adjustedScores(c *character.Character, rules ruleset.Source) character.AbilityScores {
	scores := stats.ApplyRacialAdjustments(c.Abilities, c.Race, rules)
	race, _ := rules.Race(c.Race)
	return stats.ApplyAgeAdjustments(scores, race, c.Age)
}

// refreshClasses recomputes the per-class epic state: scaling features,
// caster levels and the spells-known bonus. Earlier values are discarded.
func refreshClasses(c *character.Character, rules ruleset.Source) error {
	s := c.Epic
	s.Features = nil
	s.CasterLevels = nil
	s.SpellsKnownBonus = nil
	for _, cl := range c.Classes {
		def, ok := rules.Class(cl.Class)
		if !ok {
			continue
		}
		for i := range def.ScalingFeatures {
			f := &def.ScalingFeatures[i]
			v, err := f.Value(cl.Level)
			if err != nil {
				return fmt.Errorf("epic: class %s: %w", cl.Class, err)
			}
			if v == "" {
				continue
			}
			if s.Features == nil {
				s.Features = make(map[string]map[string]string)
			}
			if s.Features[cl.Class] == nil {
				s.Features[cl.Class] = make(map[string]string)
			}
			s.Features[cl.Class][f.Name] = v
		}
		sc := def.Spellcasting
		if sc == nil {
			continue
		}
		if s.CasterLevels == nil {
			s.CasterLevels = make(map[string]int)
		}
		s.CasterLevels[cl.Class] = cl.Level
		if sc.GrowsKnown {
			if bonus := distributeKnown(c.SpellsKnown[cl.Class], SpellsKnownBonus(s.EpicLevel)); bonus != nil {
				if s.SpellsKnownBonus == nil {
					s.SpellsKnownBonus = make(map[string][]int)
				}
				s.SpellsKnownBonus[cl.Class] = bonus
			}
		}
	}
	return nil
}

// distributeKnown spreads total extra spells one at a time over the spell
// levels that already have known spells, highest level first.
//
// Postcondition: Returns nil if total is 0 or no spell level has known spells.
func distributeKnown(known []int, total int) []int {
	var levels []int
	for lvl := len(known) - 1; lvl >= 0; lvl-- {
		if known[lvl] > 0 {
			levels = append(levels, lvl)
		}
	}
	if total <= 0 || len(levels) == 0 {
		return nil
	}
	out := make([]int, len(known))
	for i := 0; i < total; i++ {
		out[levels[i%len(levels)]]++
	}
	return out
}
