package stats

import (
	"math"

	"github.com/cory-johannsen/d20sheet/internal/game/character"
	"github.com/cory-johannsen/d20sheet/internal/game/ruleset"
)

// ClassEntry pairs a character's class level with its definition. Def is nil
// when the class is not in the rulebook; such entries contribute only levels.
type ClassEntry struct {
	character.ClassLevel
	Def *ruleset.Class
}

// ResolveClasses looks up every class the character holds.
//
// Postcondition: Returns one entry per class level in order, plus the names
// of classes missing from rules.
func ResolveClasses(classes []character.ClassLevel, rules ruleset.Source) (entries []ClassEntry, unknown []string) {
	entries = make([]ClassEntry, 0, len(classes))
	for _, cl := range classes {
		e := ClassEntry{ClassLevel: cl}
		if rules != nil {
			if def, ok := rules.Class(cl.Class); ok {
				e.Def = def
			}
		}
		if e.Def == nil {
			unknown = append(unknown, cl.Class)
		}
		entries = append(entries, e)
	}
	return entries, unknown
}

// Saves holds the three saving throws.
type Saves struct {
	Fortitude int `yaml:"fortitude" json:"fortitude"`
	Reflex    int `yaml:"reflex" json:"reflex"`
	Will      int `yaml:"will" json:"will"`
}

// Totals are the base values summed across all classes.
type Totals struct {
	Level           int   `yaml:"level" json:"level"`
	BaseAttackBonus int   `yaml:"base_attack_bonus" json:"base_attack_bonus"`
	BaseSaves       Saves `yaml:"base_saves" json:"base_saves"`
}

// Aggregate sums each class's base attack bonus and base saves at that
// class's own level. Contributions are independent.
func Aggregate(t *ruleset.Tables, entries []ClassEntry) Totals {
	var out Totals
	for _, e := range entries {
		if e.Level > 0 {
			out.Level += e.Level
		}
		if e.Def == nil {
			continue
		}
		out.BaseAttackBonus += BaseAttackBonus(t, e.Def.BAB, e.Level)
		out.BaseSaves.Fortitude += SaveBonus(t, e.Def.Saves.Fortitude, e.Level)
		out.BaseSaves.Reflex += SaveBonus(t, e.Def.Saves.Reflex, e.Level)
		out.BaseSaves.Will += SaveBonus(t, e.Def.Saves.Will, e.Level)
	}
	return out
}

// SkillPointsPerLevel returns max(1, base + intMod).
func SkillPointsPerLevel(base, intMod int) int {
	return max(1, base+intMod)
}

// SkillPoints returns the total skill points earned across all classes. The
// first character level, taken in the first listed class, earns four times
// the usual amount.
func SkillPoints(entries []ClassEntry, intMod int) int {
	total := 0
	first := true
	for _, e := range entries {
		if e.Def == nil || e.Level < 1 {
			continue
		}
		per := SkillPointsPerLevel(e.Def.SkillPoints, intMod)
		levels := e.Level
		if first {
			total += per * 4
			levels--
			first = false
		}
		total += per * levels
	}
	return total
}

// MulticlassPenalty returns the experience penalty fraction and the classes
// that incur it. The highest-level class and the favored class are exempt;
// any other class more than one level behind the highest costs t's
// MulticlassPenalty each. The result is capped at 1.
func MulticlassPenalty(t *ruleset.Tables, classes []character.ClassLevel, favored string) (float64, []string) {
	highest := 0
	for _, cl := range classes {
		highest = max(highest, cl.Level)
	}
	var offending []string
	exemptHighest := true
	for _, cl := range classes {
		if cl.Level == highest && exemptHighest {
			exemptHighest = false
			continue
		}
		if favored != "" && favored != ruleset.AnyClass && cl.Class == favored {
			continue
		}
		if cl.Level < highest-1 {
			offending = append(offending, cl.Class)
		}
	}
	return math.Min(1, t.MulticlassPenalty*float64(len(offending))), offending
}
