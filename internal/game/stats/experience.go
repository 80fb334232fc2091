package stats

import "github.com/cory-johannsen/d20sheet/internal/game/ruleset"

// Experience holds the experience thresholds around the current level.
type Experience struct {
	Current   int `yaml:"current" json:"current"`
	ThisLevel int `yaml:"this_level" json:"this_level"`
	NextLevel int `yaml:"next_level" json:"next_level"`
	// Penalty is the multiclass experience penalty fraction, 0 to 1.
	Penalty   float64  `yaml:"penalty" json:"penalty"`
	Offending []string `yaml:"offending,omitempty" json:"offending,omitempty"`
}

// XPForLevel returns the experience needed to reach level:
// step * level*(level-1)/2.
//
// Postcondition: Returns 0 for level <= 1.
func XPForLevel(t *ruleset.Tables, level int) int {
	if level <= 1 {
		return 0
	}
	return t.ExperienceStep * level * (level - 1) / 2
}

// ResolveExperience builds the thresholds for a character of the given level.
func ResolveExperience(t *ruleset.Tables, level, current int, penalty float64, offending []string) Experience {
	return Experience{
		Current:   current,
		ThisLevel: XPForLevel(t, level),
		NextLevel: XPForLevel(t, level+1),
		Penalty:   penalty,
		Offending: offending,
	}
}
