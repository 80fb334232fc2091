package engine

import (
	"slices"

	"github.com/cory-johannsen/d20sheet/internal/game/character"
	"github.com/cory-johannsen/d20sheet/internal/game/ruleset"
	"github.com/cory-johannsen/d20sheet/internal/game/stats"
)

// Snapshot is every statistic derived from one character at one moment.
// A Snapshot shares no memory with the character or with other snapshots.
type Snapshot struct {
	Name      string       `yaml:"name" json:"name"`
	Race      string       `yaml:"race" json:"race"`
	Size      ruleset.Size `yaml:"size" json:"size"`
	Level     int          `yaml:"level" json:"level"`
	EpicLevel int          `yaml:"epic_level" json:"epic_level"`

	// Abilities are the scores after racial and age adjustments.
	Abilities character.AbilityScores `yaml:"abilities" json:"abilities"`
	Modifiers map[string]int          `yaml:"modifiers" json:"modifiers"`

	HitPoints   int              `yaml:"hit_points" json:"hit_points"`
	ArmorClass  stats.ArmorClass `yaml:"armor_class" json:"armor_class"`
	Attacks     stats.Attacks    `yaml:"attacks" json:"attacks"`
	Saves       stats.Saves      `yaml:"saves" json:"saves"`
	SkillPoints int              `yaml:"skill_points" json:"skill_points"`

	Carrying      stats.Capacity    `yaml:"carrying_capacity" json:"carrying_capacity"`
	CarriedWeight float64           `yaml:"carried_weight" json:"carried_weight"`
	Encumbrance   stats.Encumbrance `yaml:"encumbrance" json:"encumbrance"`

	Experience stats.Experience      `yaml:"experience" json:"experience"`
	Spells     []stats.ClassSpells   `yaml:"spells,omitempty" json:"spells,omitempty"`
	Features   []stats.ClassFeatures `yaml:"features,omitempty" json:"features,omitempty"`
	DivineRank *int                  `yaml:"divine_rank,omitempty" json:"divine_rank,omitempty"`

	Validation stats.Validation `yaml:"validation" json:"validation"`
}

// Clone returns a deep copy of s.
func (s Snapshot) Clone() Snapshot {
	out := s
	if s.Modifiers != nil {
		out.Modifiers = make(map[string]int, len(s.Modifiers))
		for k, v := range s.Modifiers {
			out.Modifiers[k] = v
		}
	}
	if s.ArmorClass.MaxDex != nil {
		v := *s.ArmorClass.MaxDex
		out.ArmorClass.MaxDex = &v
	}
	out.Attacks.Melee = slices.Clone(s.Attacks.Melee)
	out.Attacks.Ranged = slices.Clone(s.Attacks.Ranged)
	out.Experience.Offending = slices.Clone(s.Experience.Offending)
	if s.Spells != nil {
		out.Spells = make([]stats.ClassSpells, len(s.Spells))
		for i, sp := range s.Spells {
			sp.PerDay = slices.Clone(sp.PerDay)
			sp.Known = slices.Clone(sp.Known)
			out.Spells[i] = sp
		}
	}
	if s.Features != nil {
		out.Features = make([]stats.ClassFeatures, len(s.Features))
		for i, f := range s.Features {
			fs := make(map[string]string, len(f.Features))
			for k, v := range f.Features {
				fs[k] = v
			}
			f.Features = fs
			out.Features[i] = f
		}
	}
	if s.DivineRank != nil {
		r := *s.DivineRank
		out.DivineRank = &r
	}
	out.Validation.Errors = slices.Clone(s.Validation.Errors)
	out.Validation.Warnings = slices.Clone(s.Validation.Warnings)
	return out
}
