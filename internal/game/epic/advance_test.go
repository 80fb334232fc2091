package epic_test

import (
	"testing"

	"github.com/cory-johannsen/d20sheet/internal/game/character"
	"github.com/cory-johannsen/d20sheet/internal/game/epic"
	"github.com/cory-johannsen/d20sheet/internal/game/ruleset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func rulebook() *ruleset.Rulebook {
	book := ruleset.NewRulebook(nil)
	book.RegisterRace(&ruleset.Race{Name: "Human", Size: ruleset.SizeMedium, FavoredClass: ruleset.AnyClass})
	book.RegisterRace(&ruleset.Race{Name: "Dwarf", Adjustments: map[string]int{"constitution": 2}})
	book.RegisterClass(&ruleset.Class{
		Name: "Fighter", HitDie: 10, BAB: ruleset.Good, SkillPoints: 2, EpicFeatEvery: 2,
		Saves: ruleset.SaveProgressions{Fortitude: ruleset.Good, Reflex: ruleset.Poor, Will: ruleset.Poor},
	})
	book.RegisterClass(&ruleset.Class{
		Name: "Monk", HitDie: 8, BAB: ruleset.Medium, SkillPoints: 4, EpicFeatEvery: 5,
		Saves: ruleset.SaveProgressions{Fortitude: ruleset.Good, Reflex: ruleset.Good, Will: ruleset.Good},
		ScalingFeatures: []ruleset.ScalingFeature{
			{Name: "unarmed_damage", Table: map[int]string{1: "1d6", 20: "2d10", 24: "4d8"}},
			{Name: "ki_pool", Script: "function feature(level) return math.floor(level / 2) end"},
		},
	})
	book.RegisterClass(&ruleset.Class{
		Name: "Sorcerer", HitDie: 4, BAB: ruleset.Poor, SkillPoints: 2, EpicFeatEvery: 3,
		Saves:        ruleset.SaveProgressions{Fortitude: ruleset.Poor, Reflex: ruleset.Poor, Will: ruleset.Good},
		Spellcasting: &ruleset.Spellcasting{Ability: "charisma", GrowsKnown: true, SpellsPerDay: [][]int{{5, 3}}},
	})
	book.RegisterClass(&ruleset.Class{
		Name: "Wizard", HitDie: 4, BAB: ruleset.Poor, SkillPoints: 2, EpicFeatEvery: 3,
		Saves:        ruleset.SaveProgressions{Fortitude: ruleset.Poor, Reflex: ruleset.Poor, Will: ruleset.Good},
		Spellcasting: &ruleset.Spellcasting{Ability: "intelligence", SpellsPerDay: [][]int{{3, 1}}},
	})
	return book
}

func fighter20() *character.Character {
	return &character.Character{
		Name:      "Brunhild",
		Race:      "Human",
		Classes:   []character.ClassLevel{{Class: "Fighter", Level: 20}},
		Abilities: character.AbilityScores{Strength: 18, Dexterity: 12, Constitution: 14, Intelligence: 10, Wisdom: 10, Charisma: 10},
	}
}

func TestAdvance_BelowEpicFailsUnchanged(t *testing.T) {
	book := rulebook()
	for _, lvl := range []int{0, 10, 20} {
		c := fighter20()
		before := c.Clone()
		err := epic.Advance(c, lvl, book, book.Tables())
		require.ErrorIs(t, err, epic.ErrInvalidTransition)
		assert.Equal(t, before, c)
	}
}

func TestAdvance_AboveMaxFails(t *testing.T) {
	book := rulebook()
	c := fighter20()
	require.ErrorIs(t, epic.Advance(c, 101, book, book.Tables()), epic.ErrInvalidTransition)
}

func TestAdvance_CapsAtHundredWhateverTheTables(t *testing.T) {
	book := rulebook()
	tbl := ruleset.StandardTables()
	tbl.Epic.MaxLevel = 150
	c := fighter20()
	before := c.Clone()
	require.ErrorIs(t, epic.Advance(c, 120, book, tbl), epic.ErrInvalidTransition)
	assert.Equal(t, before, c)

	require.NoError(t, epic.Advance(c, ruleset.MaxCharacterLevel, book, tbl))
	assert.Equal(t, 80, c.Epic.EpicLevel)
}

func TestAdvance_FromLowLevelCountsOnlyEpicLevels(t *testing.T) {
	book := rulebook()
	c := fighter20()
	c.Classes[0].Level = 5
	require.NoError(t, epic.Advance(c, 21, book, book.Tables()))

	assert.Equal(t, 21, c.ClassLevel("Fighter"))
	s := c.Epic
	assert.Equal(t, 1, s.EpicLevel)
	assert.Equal(t, 1, s.RegularFeats, "level 21 only")
	assert.Equal(t, 0, s.AbilityIncreases)
	assert.Equal(t, 6+2, s.HitPointsGained, "one d10 average plus Con 14")
	assert.Equal(t, 2, s.SkillPointsGained)
}

func TestAdvance_RegressionFails(t *testing.T) {
	book := rulebook()
	c := fighter20()
	c.Classes[0].Level = 30
	before := c.Clone()
	require.ErrorIs(t, epic.Advance(c, 25, book, book.Tables()), epic.ErrLevelRegression)
	assert.Equal(t, before, c)
}

func TestAdvance_NoClassesFails(t *testing.T) {
	book := rulebook()
	c := &character.Character{Name: "Nobody"}
	require.ErrorIs(t, epic.Advance(c, 25, book, book.Tables()), epic.ErrInvalidTransition)
}

func TestAdvance_UnknownClassFailsUnchanged(t *testing.T) {
	book := rulebook()
	c := fighter20()
	before := c.Clone()
	require.ErrorIs(t, epic.Advance(c, 22, book, book.Tables(), epic.WithClass("Psion")), epic.ErrUnknownClass)
	assert.Equal(t, before, c)
}

func TestAdvance_Fighter24(t *testing.T) {
	book := rulebook()
	c := fighter20()
	require.NoError(t, epic.Advance(c, 24, book, book.Tables()))

	assert.Equal(t, 24, c.TotalLevel())
	s := c.Epic
	require.NotNil(t, s)
	assert.Equal(t, 4, s.EpicLevel)
	assert.Equal(t, 2, s.AttackBonus)
	assert.Equal(t, 2, s.SaveBonus)
	assert.Equal(t, 4*(6+2), s.HitPointsGained)
	assert.Equal(t, 4*2, s.SkillPointsGained)
	assert.Equal(t, 2, s.RegularFeats, "levels 21 and 24")
	assert.Equal(t, 1, s.AbilityIncreases, "level 24")
	assert.Equal(t, 2, s.EpicFeats, "fighter levels 22 and 24")
	assert.Equal(t, map[string]int{"Fighter": 2}, s.EpicFeatsByClass)
	assert.Nil(t, s.DivineRank)
	assert.Zero(t, s.PotentialRank)
}

func TestAdvance_Incremental(t *testing.T) {
	book := rulebook()
	stepwise := fighter20()
	require.NoError(t, epic.Advance(stepwise, 22, book, book.Tables()))
	require.NoError(t, epic.Advance(stepwise, 27, book, book.Tables()))

	direct := fighter20()
	require.NoError(t, epic.Advance(direct, 27, book, book.Tables()))
	assert.Equal(t, direct, stepwise)
}

func TestAdvance_WithClassAddsClass(t *testing.T) {
	book := rulebook()
	c := fighter20()
	require.NoError(t, epic.Advance(c, 23, book, book.Tables(), epic.WithClass("Monk")))
	assert.Equal(t, []character.ClassLevel{{Class: "Fighter", Level: 20}, {Class: "Monk", Level: 3}}, c.Classes)
	assert.Equal(t, map[string]string{"unarmed_damage": "1d6", "ki_pool": "1"}, c.Epic.Features["Monk"])
	assert.Equal(t, 0, c.Epic.EpicFeats)
}

func TestAdvance_TiesAdvanceFirstClass(t *testing.T) {
	book := rulebook()
	c := fighter20()
	c.Classes = []character.ClassLevel{{Class: "Monk", Level: 10}, {Class: "Fighter", Level: 10}}
	require.NoError(t, epic.Advance(c, 21, book, book.Tables()))
	assert.Equal(t, 11, c.Classes[0].Level)
	assert.Equal(t, 10, c.Classes[1].Level)
}

func TestAdvance_MonkFeatures(t *testing.T) {
	book := rulebook()
	c := fighter20()
	c.Classes = []character.ClassLevel{{Class: "Monk", Level: 20}}
	require.NoError(t, epic.Advance(c, 25, book, book.Tables()))
	assert.Equal(t, map[string]string{"unarmed_damage": "4d8", "ki_pool": "12"}, c.Epic.Features["Monk"])
	assert.Equal(t, map[string]int{"Monk": 1}, c.Epic.EpicFeatsByClass)
}

func TestAdvance_SorcererSpellsKnown(t *testing.T) {
	book := rulebook()
	c := fighter20()
	c.Classes = []character.ClassLevel{{Class: "Sorcerer", Level: 20}, {Class: "Wizard", Level: 1}}
	c.SpellsKnown = map[string][]int{"Sorcerer": {9, 5, 5, 0, 4}, "Wizard": {4, 2}}
	require.NoError(t, epic.Advance(c, 33, book, book.Tables()))

	s := c.Epic
	// Sorcerer 20 + Wizard 1 starts at level 21, so level 33 is epic level 13.
	assert.Equal(t, 13, s.EpicLevel)
	assert.Equal(t, map[string]int{"Sorcerer": 32, "Wizard": 1}, s.CasterLevels)
	// floor(floor(13/2)/2) = 3 extra spells over levels 4, 2, 1.
	assert.Equal(t, map[string][]int{"Sorcerer": {0, 1, 1, 0, 1}}, s.SpellsKnownBonus)
	assert.Equal(t, []int{9, 5, 5, 0, 4}, c.SpellsKnown["Sorcerer"], "known spells untouched")

	require.NoError(t, epic.Advance(c, 41, book, book.Tables()))
	// floor(floor(21/2)/2) = 5, recomputed from scratch: 4, 2, 1, 0, 4.
	assert.Equal(t, []int{1, 1, 1, 0, 2}, c.Epic.SpellsKnownBonus["Sorcerer"])
}

func TestAdvance_DivineAscension(t *testing.T) {
	book := rulebook()
	c := fighter20()
	c.Feats = []string{"Epic Leadership"}
	c.Followers = 12000
	require.NoError(t, epic.Advance(c, 36, book, book.Tables()))
	s := c.Epic
	require.NotNil(t, s.DivineRank)
	assert.Equal(t, 0, *s.DivineRank)
	assert.Equal(t, &character.Ascension{Level: 21, Reason: "feat:Epic Leadership"}, s.Ascension)
	assert.Equal(t, 8, s.PotentialRank, "step 6 + follower bonus 2")

	require.NoError(t, epic.Advance(c, 40, book, book.Tables()))
	assert.Equal(t, 21, c.Epic.Ascension.Level, "first qualifying level is kept")
}

func TestAdvance_ExistingRankKept(t *testing.T) {
	book := rulebook()
	c := fighter20()
	rank := 4
	c.Achievements = []string{"divine_quest_completed"}
	c.Epic = &character.EpicState{DivineRank: &rank}
	require.NoError(t, epic.Advance(c, 22, book, book.Tables()))
	assert.Equal(t, 4, *c.Epic.DivineRank)
	assert.Nil(t, c.Epic.Ascension)
}

func TestAdvance_RacialConstitution(t *testing.T) {
	book := rulebook()
	c := fighter20()
	c.Race = "Dwarf"
	require.NoError(t, epic.Advance(c, 21, book, book.Tables()))
	assert.Equal(t, 6+3, c.Epic.HitPointsGained, "con 14+2 -> +3")
}

// Property: advancing either succeeds at exactly the target level or fails
// leaving the character untouched.
func TestAdvance_AllOrNothing(t *testing.T) {
	book := rulebook()
	rapid.Check(t, func(rt *rapid.T) {
		start := rapid.IntRange(1, 40).Draw(rt, "start")
		target := rapid.IntRange(-5, 110).Draw(rt, "target")
		c := fighter20()
		c.Classes[0].Level = start
		before := c.Clone()
		err := epic.Advance(c, target, book, book.Tables())
		if err != nil {
			if !assert.ObjectsAreEqual(before, c) {
				rt.Fatalf("failed advance to %d mutated the character", target)
			}
			return
		}
		if c.TotalLevel() != target {
			rt.Fatalf("advanced to %d, want %d", c.TotalLevel(), target)
		}
		if c.Epic.AttackBonus != epic.AttackBonus(target-20) {
			rt.Fatalf("attack bonus %d at level %d", c.Epic.AttackBonus, target)
		}
	})
}
