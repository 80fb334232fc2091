package stats

import (
	"github.com/cory-johannsen/d20sheet/internal/game/character"
)

// SpellLevels is the number of spell levels, 0 through 9.
const SpellLevels = 10

// BonusSpell returns the bonus slots an ability modifier grants at
// spellLevel: max(0, floor((mod-spellLevel+4)/4)) for levels 1-9.
// Cantrips never receive bonus slots.
func BonusSpell(mod, spellLevel int) int {
	if spellLevel < 1 || spellLevel >= SpellLevels {
		return 0
	}
	return max(0, floorDiv(mod-spellLevel+4, 4))
}

// BonusSpells returns the bonus slots for every spell level.
func BonusSpells(mod int) []int {
	out := make([]int, SpellLevels)
	for lvl := range out {
		out[lvl] = BonusSpell(mod, lvl)
	}
	return out
}

// SpellsPerDay adds bonus slots to the base row, only where the base row
// already grants at least one slot.
//
// Postcondition: base is not modified; the result has len(base) entries.
func SpellsPerDay(base []int, mod int) []int {
	out := make([]int, len(base))
	for lvl, n := range base {
		out[lvl] = n
		if n > 0 {
			out[lvl] += BonusSpell(mod, lvl)
		}
	}
	return out
}

// ClassSpells is one spellcasting class's slots and spells known.
type ClassSpells struct {
	Class       string `yaml:"class" json:"class"`
	Ability     string `yaml:"ability" json:"ability"`
	CasterLevel int    `yaml:"caster_level" json:"caster_level"`
	PerDay      []int  `yaml:"per_day" json:"per_day"`
	Known       []int  `yaml:"known,omitempty" json:"known,omitempty"`
}

// ResolveSpells returns spells per day for each class with a spellcasting
// descriptor. Classes without one yield no entry. Known spells are the
// character's own list plus any epic bonus.
func ResolveSpells(entries []ClassEntry, scores character.AbilityScores, c *character.Character) []ClassSpells {
	var out []ClassSpells
	for _, e := range entries {
		if e.Def == nil || e.Def.Spellcasting == nil || e.Level < 1 {
			continue
		}
		sc := e.Def.Spellcasting
		cs := ClassSpells{
			Class:       e.Class,
			Ability:     sc.Ability,
			CasterLevel: e.Level,
			PerDay:      SpellsPerDay(sc.Row(e.Level), Modifier(scores.Get(sc.Ability))),
		}
		if c != nil {
			cs.Known = knownSpells(c, e.Class)
		}
		out = append(out, cs)
	}
	return out
}

func knownSpells(c *character.Character, class string) []int {
	base := c.SpellsKnown[class]
	var bonus []int
	if c.Epic != nil {
		bonus = c.Epic.SpellsKnownBonus[class]
	}
	if len(base) == 0 && len(bonus) == 0 {
		return nil
	}
	out := make([]int, max(len(base), len(bonus)))
	copy(out, base)
	for i, b := range bonus {
		out[i] += b
	}
	return out
}
