package stats

import (
	"fmt"

	"github.com/cory-johannsen/d20sheet/internal/game/character"
	"github.com/cory-johannsen/d20sheet/internal/game/ruleset"
)

// Validation collects problems found in a character. Errors mark data the
// rules do not allow; warnings mark data the engine had to work around.
// Neither stops a snapshot from being computed.
type Validation struct {
	Valid    bool     `yaml:"valid" json:"valid"`
	Errors   []string `yaml:"errors,omitempty" json:"errors,omitempty"`
	Warnings []string `yaml:"warnings,omitempty" json:"warnings,omitempty"`
}

// ValidationInput is everything Validate inspects, already resolved.
type ValidationInput struct {
	Character *character.Character
	// Scores are the ability scores after racial and age adjustments.
	Scores           character.AbilityScores
	RaceKnown        bool
	Classes          []ClassEntry
	Penalty          float64
	Offending        []string
	UnknownEquipment []string
	Tables           *ruleset.Tables
}

// Validate runs every check against in.
//
// Postcondition: Valid is true iff Errors is empty.
func Validate(in ValidationInput) Validation {
	var v Validation
	c := in.Character

	if len(in.Classes) == 0 {
		v.Warnings = append(v.Warnings, "character has no classes")
	}

	epic := c.TotalLevel() > in.Tables.Epic.StartLevel || (c.Epic != nil && c.Epic.DivineRank != nil)
	rng := in.Tables.AbilityRange
	for _, ability := range ruleset.Abilities {
		score := in.Scores.Get(ability)
		if score < rng.Min {
			v.Errors = append(v.Errors, fmt.Sprintf("%s %d is below the minimum of %d", ability, score, rng.Min))
		}
		if !epic && score > rng.Max {
			v.Errors = append(v.Errors, fmt.Sprintf("%s %d exceeds the maximum of %d", ability, score, rng.Max))
		}
	}

	if !in.RaceKnown {
		v.Warnings = append(v.Warnings, fmt.Sprintf("unknown race %q, using human defaults", c.Race))
	}

	align, alignOK := ParseAlignment(c.Alignment)
	if c.Alignment != "" && !alignOK {
		v.Warnings = append(v.Warnings, fmt.Sprintf("unrecognized alignment %q, restrictions not checked", c.Alignment))
	}
	for _, e := range in.Classes {
		if e.Level < 1 {
			v.Errors = append(v.Errors, fmt.Sprintf("class %s has level %d, must be >= 1", e.Class, e.Level))
		}
		if e.Def == nil {
			v.Warnings = append(v.Warnings, fmt.Sprintf("unknown class %q ignored", e.Class))
			continue
		}
		if alignOK && !AllowsAlignment(e.Def.Alignment, align) {
			v.Errors = append(v.Errors, fmt.Sprintf("class %s requires %s alignment, character is %s", e.Class, e.Def.Alignment, align))
		}
	}

	if in.Penalty > 0 {
		v.Warnings = append(v.Warnings, fmt.Sprintf("multiclass experience penalty %.0f%% from %v", in.Penalty*100, in.Offending))
	}
	for _, ref := range in.UnknownEquipment {
		v.Warnings = append(v.Warnings, fmt.Sprintf("unknown equipment %q, using listed values", ref))
	}

	v.Valid = len(v.Errors) == 0
	return v
}
