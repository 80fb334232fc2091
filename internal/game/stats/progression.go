package stats

import "github.com/cory-johannsen/d20sheet/internal/game/ruleset"

// BaseAttackBonus returns the base attack bonus of a single class at level
// for progression p.
//
// Postcondition: Returns 0 for level < 1; levels above 20 use the 20th entry.
// An unknown progression resolves as Poor.
func BaseAttackBonus(t *ruleset.Tables, p ruleset.Progression, level int) int {
	row, ok := t.BAB[p]
	if !ok {
		row = t.BAB[ruleset.Poor]
	}
	return lookup(row, level)
}

// SaveBonus returns the base saving-throw bonus of a single class at level
// for progression p. Saves have no Medium curve; anything but Good is Poor.
func SaveBonus(t *ruleset.Tables, p ruleset.Progression, level int) int {
	row, ok := t.Saves[p]
	if !ok {
		row = t.Saves[ruleset.Poor]
	}
	return lookup(row, level)
}

func lookup(row []int, level int) int {
	if level < 1 || len(row) == 0 {
		return 0
	}
	if level > len(row) {
		level = len(row)
	}
	return row[level-1]
}
