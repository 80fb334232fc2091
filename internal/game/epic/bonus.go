// Package epic advances characters beyond level 20 and derives the epic
// bonuses layered on top of the standard progression tables.
package epic

import (
	"errors"

	"github.com/cory-johannsen/d20sheet/internal/game/ruleset"
)

var (
	// ErrInvalidTransition is returned for a target level outside the epic range
	// or a character that cannot advance.
	ErrInvalidTransition = errors.New("epic: invalid level transition")
	// ErrLevelRegression is returned when the target level is below the current level.
	ErrLevelRegression = errors.New("epic: target level below current level")
	// ErrUnknownClass is returned when the advancing class is not in the rulebook.
	ErrUnknownClass = errors.New("epic: unknown class")
)

// Level returns the number of character levels above the epic start level.
//
// Postcondition: Returns 0 for non-epic characters.
func Level(t *ruleset.Tables, totalLevel int) int {
	return max(0, totalLevel-t.Epic.StartLevel)
}

// AttackBonus returns the epic attack bonus: floor((epicLevel+1)/2).
func AttackBonus(epicLevel int) int {
	if epicLevel <= 0 {
		return 0
	}
	return (epicLevel + 1) / 2
}

// SaveBonus returns the epic saving-throw bonus: floor(epicLevel/2).
func SaveBonus(epicLevel int) int {
	if epicLevel <= 0 {
		return 0
	}
	return epicLevel / 2
}

// SpellsKnownBonus returns the extra spells known a growing caster gains:
// floor(floor(epicLevel/2)/2).
func SpellsKnownBonus(epicLevel int) int {
	if epicLevel <= 0 {
		return 0
	}
	return epicLevel / 2 / 2
}
