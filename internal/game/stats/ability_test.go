package stats_test

import (
	"math"
	"testing"

	"github.com/cory-johannsen/d20sheet/internal/game/character"
	"github.com/cory-johannsen/d20sheet/internal/game/ruleset"
	"github.com/cory-johannsen/d20sheet/internal/game/stats"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func dwarf() *ruleset.Race {
	return &ruleset.Race{
		Name:         "Dwarf",
		Adjustments:  map[string]int{"constitution": 2, "charisma": -2},
		Size:         ruleset.SizeMedium,
		FavoredClass: "Fighter",
		Age:          ruleset.AgeThresholds{Middle: 125, Old: 188, Venerable: 250},
	}
}

func TestModifier_FixedPoints(t *testing.T) {
	assert.Equal(t, 0, stats.Modifier(10))
	assert.Equal(t, 0, stats.Modifier(11))
	assert.Equal(t, 4, stats.Modifier(18))
	assert.Equal(t, -1, stats.Modifier(8))
	assert.Equal(t, -1, stats.Modifier(9))
	assert.Equal(t, -5, stats.Modifier(1))
	assert.Equal(t, 0, stats.Modifier(0))
	assert.Equal(t, 0, stats.Modifier(-3))
	assert.Equal(t, 15, stats.Modifier(40))
}

// Property: Modifier(s) == floor((s-10)/2) for every s >= 1.
func TestModifier_IsFloor(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		s := rapid.IntRange(1, 200).Draw(rt, "score")
		want := int(math.Floor(float64(s-10) / 2))
		if got := stats.Modifier(s); got != want {
			rt.Fatalf("Modifier(%d) = %d, want %d", s, got, want)
		}
	})
}

func TestApplyRacialAdjustments_Dwarf(t *testing.T) {
	book := ruleset.NewRulebook(nil)
	book.RegisterRace(dwarf())
	got := stats.ApplyRacialAdjustments(character.AbilityScores{Constitution: 13, Charisma: 8}, "Dwarf", book)
	assert.Equal(t, 15, got.Constitution)
	assert.Equal(t, 6, got.Charisma)
}

func TestApplyRacialAdjustments_UnknownRaceUnchanged(t *testing.T) {
	book := ruleset.NewRulebook(nil)
	book.RegisterRace(dwarf())
	in := character.AbilityScores{Strength: 12, Constitution: 13}
	assert.Equal(t, in, stats.ApplyRacialAdjustments(in, "dwarf", book), "lookup is case-sensitive")
	assert.Equal(t, in, stats.ApplyRacialAdjustments(in, "Dwarf", nil))
}

func TestAgeCategoryOf(t *testing.T) {
	d := dwarf()
	assert.Equal(t, stats.AgeAdult, stats.AgeCategoryOf(d, 60))
	assert.Equal(t, stats.AgeMiddle, stats.AgeCategoryOf(d, 125))
	assert.Equal(t, stats.AgeOld, stats.AgeCategoryOf(d, 200))
	assert.Equal(t, stats.AgeVenerable, stats.AgeCategoryOf(d, 300))
	assert.Equal(t, stats.AgeAdult, stats.AgeCategoryOf(nil, 300))
	assert.Equal(t, stats.AgeAdult, stats.AgeCategoryOf(d, 0))
}

func TestApplyAgeAdjustments_Venerable(t *testing.T) {
	base := character.AbilityScores{Strength: 14, Dexterity: 14, Constitution: 14, Intelligence: 10, Wisdom: 10, Charisma: 10}
	got := stats.ApplyAgeAdjustments(base, dwarf(), 260)
	assert.Equal(t, character.AbilityScores{Strength: 8, Dexterity: 8, Constitution: 8, Intelligence: 13, Wisdom: 13, Charisma: 13}, got)
	assert.Equal(t, base, stats.ApplyAgeAdjustments(base, dwarf(), 40))
}

func TestModifiers_AllAbilities(t *testing.T) {
	m := stats.Modifiers(character.AbilityScores{Strength: 18, Dexterity: 8, Constitution: 10, Intelligence: 13, Wisdom: 3, Charisma: 25})
	assert.Equal(t, map[string]int{
		"strength": 4, "dexterity": -1, "constitution": 0,
		"intelligence": 1, "wisdom": -4, "charisma": 7,
	}, m)
}
