// Package stats holds the pure resolvers that turn a character's base
// attributes and the rule tables into derived statistics. Nothing here keeps
// state between calls.
package stats

import (
	"github.com/cory-johannsen/d20sheet/internal/game/character"
	"github.com/cory-johannsen/d20sheet/internal/game/ruleset"
)

// Modifier returns the ability modifier for score: floor((score-10)/2).
//
// Postcondition: Returns 0 for scores below 1.
func Modifier(score int) int {
	if score < 1 {
		return 0
	}
	return floorDiv(score-10, 2)
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Modifiers returns the modifier of each ability keyed by ability name.
func Modifiers(scores character.AbilityScores) map[string]int {
	out := make(map[string]int, len(ruleset.Abilities))
	for _, a := range ruleset.Abilities {
		out[a] = Modifier(scores.Get(a))
	}
	return out
}

// ApplyRacialAdjustments looks up raceName in rules and adds its ability
// adjustments to scores. An unknown race leaves scores unchanged.
//
// Postcondition: scores is not modified; the adjusted copy is returned.
func ApplyRacialAdjustments(scores character.AbilityScores, raceName string, rules ruleset.Source) character.AbilityScores {
	if rules == nil {
		return scores
	}
	race, ok := rules.Race(raceName)
	if !ok || race == nil {
		return scores
	}
	for ability, delta := range race.Adjustments {
		scores = scores.Add(ability, delta)
	}
	return scores
}

// AgeCategory is a creature's aging bracket.
type AgeCategory string

// Age categories, youngest first.
const (
	AgeAdult     AgeCategory = "adult"
	AgeMiddle    AgeCategory = "middle age"
	AgeOld       AgeCategory = "old"
	AgeVenerable AgeCategory = "venerable"
)

// AgeCategoryOf returns the aging bracket of age for race. A nil race, a
// non-positive age, or zero thresholds all yield AgeAdult.
func AgeCategoryOf(race *ruleset.Race, age int) AgeCategory {
	if race == nil || age <= 0 {
		return AgeAdult
	}
	a := race.Age
	switch {
	case a.Venerable > 0 && age >= a.Venerable:
		return AgeVenerable
	case a.Old > 0 && age >= a.Old:
		return AgeOld
	case a.Middle > 0 && age >= a.Middle:
		return AgeMiddle
	}
	return AgeAdult
}

// ageEffects holds the cumulative physical and mental adjustment per bracket.
var ageEffects = map[AgeCategory][2]int{
	AgeAdult:     {0, 0},
	AgeMiddle:    {-1, 1},
	AgeOld:       {-3, 2},
	AgeVenerable: {-6, 3},
}

// ApplyAgeAdjustments applies the cumulative aging penalties to the physical
// abilities and bonuses to the mental abilities.
//
// Postcondition: scores is not modified; the adjusted copy is returned.
func ApplyAgeAdjustments(scores character.AbilityScores, race *ruleset.Race, age int) character.AbilityScores {
	eff := ageEffects[AgeCategoryOf(race, age)]
	scores.Strength += eff[0]
	scores.Dexterity += eff[0]
	scores.Constitution += eff[0]
	scores.Intelligence += eff[1]
	scores.Wisdom += eff[1]
	scores.Charisma += eff[1]
	return scores
}
